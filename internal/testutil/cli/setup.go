package cli

import (
	"testing"

	"github.com/thenoetrevino/todolink/internal/app"
	"github.com/thenoetrevino/todolink/internal/config"
	"github.com/thenoetrevino/todolink/internal/logging"
	"github.com/thenoetrevino/todolink/internal/models"
	"github.com/thenoetrevino/todolink/internal/testutil/fakeapi"
)

// Seeded account credentials from SetupCLITest
const (
	AdminName     = "root"
	AdminPassword = "rootpw"
	MemberName    = "bob"
	MemberPass    = "bobpw"
)

// SetupCLITest starts a fake API with an admin (ID 1) and a member (ID 2)
// and returns it together with an App pointed at it.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) (*fakeapi.Server, *app.App) {
	t.Helper()
	logging.Discard()
	server := fakeapi.New(t)
	server.AddUser(AdminName, AdminPassword, models.RoleAdmin)
	server.AddUser(MemberName, MemberPass, models.RoleMember)

	cfg := &config.Config{
		API:         config.APIConfig{BaseURL: server.URL()},
		KeyMappings: config.DefaultKeyMappings(),
		ColorScheme: config.DefaultColorScheme(),
	}
	appInstance, err := app.New(cfg)
	if err != nil {
		t.Fatalf("Failed to create app: %v", err)
	}
	return server, appInstance
}

// AsAdmin returns credential flags for the seeded admin
func AsAdmin(args ...string) []string {
	return append([]string{"--username", AdminName, "--password", AdminPassword}, args...)
}

// AsMember returns credential flags for the seeded member
func AsMember(args ...string) []string {
	return append([]string{"--username", MemberName, "--password", MemberPass}, args...)
}
