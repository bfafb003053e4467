package colors

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		// Primary accent color
		Accent: "#8992A7", // dragonViolet

		// Semantic colors
		Create: "#87A987", // dragonGreen2
		Delete: "#C4746E", // dragonRed
		Done:   "#87A987",
		Todo:   "#C4B28A", // dragonYellow

		// UI element colors
		Border:         "#625E5A", // dragonBlack6
		DialogBorder:   "#8BA4B0", // dragonBlue2
		SelectedBorder: "#8EA4A2", // dragonAqua
		SelectedBg:     "#223249", // waveBlue1

		// Text colors
		Title:  "#8BA4B0",
		Subtle: "#737C73", // dragonAsh
		Normal: "#C5C9C5", // dragonWhite

		// Notification colors
		InfoFg:    "#658594", // dragonBlue
		InfoBg:    "#252535", // winterBlue
		WarningFg: "#FF9E3B", // roninYellow
		WarningBg: "#49443C", // winterYellow
		ErrorFg:   "#E82424", // samuraiRed
		ErrorBg:   "#43242B", // winterRed

		// Status bar
		StatusBarBg:   "#8992A7",
		StatusBarText: "#C5C9C5",
	}
}
