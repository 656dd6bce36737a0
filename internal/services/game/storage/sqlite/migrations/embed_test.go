package migrations

import (
	"io/fs"
	"testing"
)

func TestGamesMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(GamesFS, "games")
	if err != nil {
		t.Fatalf("read games migrations: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected games migrations to be embedded")
	}
	want := []string{"001_games.sql", "002_game_seed_source.sql"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d games migrations, got %d", len(want), len(entries))
	}
	for i, name := range want {
		if entries[i].Name() != name {
			t.Fatalf("migration %d = %s, want %s", i, entries[i].Name(), name)
		}
	}
}
