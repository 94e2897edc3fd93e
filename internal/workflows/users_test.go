package workflows

import (
	"context"
	"testing"

	"github.com/PolarWolf314/quick-gist/internal/configs"
	qerrors "github.com/PolarWolf314/quick-gist/internal/errors"
	"github.com/PolarWolf314/quick-gist/internal/history"
)

func TestListUsers(t *testing.T) {
	settings := useTempSettings(t)
	config := configs.NewUserConfig()
	config.Default.Publish = configs.PublishPublic
	_ = config.AddUser("alice", configs.UserEntry{Auth: "ghp_a"})
	_ = config.AddUser("bob", configs.UserEntry{Auth: configs.AuthFromEnv})
	_ = config.AddUser("carol", configs.UserEntry{Auth: "Zm9v", Encrypted: true})
	writeConfig(t, settings, config)

	result, err := ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers() error = %v", err)
	}
	if !result.PublishPublic {
		t.Error("expected public default")
	}

	want := []UserSummary{
		{Name: "alice", Source: SourcePlaintext},
		{Name: "bob", Source: SourceEnv},
		{Name: "carol", Source: SourceEncrypted},
	}
	if len(result.Users) != len(want) {
		t.Fatalf("expected %d users, got %+v", len(want), result.Users)
	}
	for i := range want {
		if result.Users[i] != want[i] {
			t.Errorf("user %d: expected %+v, got %+v", i, want[i], result.Users[i])
		}
	}
}

func TestListUsersWithoutConfig(t *testing.T) {
	useTempSettings(t)

	_, err := ListUsers(context.Background())
	assertErrorIs(t, err, qerrors.ErrConfigNotFound)
}

func TestRemoveUser(t *testing.T) {
	settings := useTempSettings(t)
	config := configs.NewUserConfig()
	_ = config.AddUser("alice", configs.UserEntry{Auth: "ghp_a"})
	_ = config.AddUser("bob", configs.UserEntry{Auth: "ghp_b"})
	writeConfig(t, settings, config)

	if err := RemoveUser(context.Background(), "alice"); err != nil {
		t.Fatalf("RemoveUser() error = %v", err)
	}

	loaded, _ := configs.LoadUserConfig(settings.ConfigPath)
	names := loaded.Usernames()
	if len(names) != 1 || names[0] != "bob" {
		t.Errorf("expected only bob to remain, got %v", names)
	}

	entries, _ := history.ReadEntries(settings.HistoryPath)
	if len(entries) != 1 || entries[0].Operation != history.OpRemoveUser || entries[0].User != "alice" {
		t.Errorf("unexpected history: %+v", entries)
	}
}

func TestRemoveUserUnknown(t *testing.T) {
	settings := useTempSettings(t)
	writeConfig(t, settings, configs.NewUserConfig())

	err := RemoveUser(context.Background(), "nobody")
	assertErrorIs(t, err, qerrors.ErrUserNotFound)
}
