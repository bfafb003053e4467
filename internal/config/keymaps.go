package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tasks
	Refresh      string `yaml:"refresh"`
	AddTask      string `yaml:"add_task"`
	ToggleTask   string `yaml:"toggle_task"`
	DeleteTask   string `yaml:"delete_task"`
	ViewComments string `yaml:"view_comments"`

	// Forms
	SaveForm       string `yaml:"save_form"`
	SwitchAuthMode string `yaml:"switch_auth_mode"`

	// Navigation
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`

	// Session
	Logout string `yaml:"logout"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		Refresh:      "r",
		AddTask:      "a",
		ToggleTask:   "space",
		DeleteTask:   "d",
		ViewComments: "c",

		// Forms
		SaveForm:       "ctrl+s",
		SwitchAuthMode: "ctrl+t",

		// Navigation
		PrevTask: "k",
		NextTask: "j",

		// Session
		Logout: "L",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.AddTask == "" {
		k.AddTask = defaults.AddTask
	}
	if k.ToggleTask == "" {
		k.ToggleTask = defaults.ToggleTask
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.ViewComments == "" {
		k.ViewComments = defaults.ViewComments
	}
	if k.SaveForm == "" {
		k.SaveForm = defaults.SaveForm
	}
	if k.SwitchAuthMode == "" {
		k.SwitchAuthMode = defaults.SwitchAuthMode
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.Logout == "" {
		k.Logout = defaults.Logout
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}

// Conflicts returns the keys bound to more than one action, mapped to those actions.
// Form-only bindings are excluded since they are never active on the task list.
func (k KeyMappings) Conflicts() map[string][]string {
	bound := []struct {
		action string
		key    string
	}{
		{"refresh", k.Refresh},
		{"add_task", k.AddTask},
		{"toggle_task", k.ToggleTask},
		{"delete_task", k.DeleteTask},
		{"view_comments", k.ViewComments},
		{"prev_task", k.PrevTask},
		{"next_task", k.NextTask},
		{"logout", k.Logout},
		{"show_help", k.ShowHelp},
		{"quit", k.Quit},
	}

	byKey := make(map[string][]string)
	for _, b := range bound {
		byKey[b.key] = append(byKey[b.key], b.action)
	}

	conflicts := make(map[string][]string)
	for key, actions := range byKey {
		if len(actions) > 1 {
			conflicts[key] = actions
		}
	}
	return conflicts
}
