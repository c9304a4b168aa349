package main

import (
	"path/filepath"
	"strings"
	"testing"
)

// TestColorsCommand tests the single-file palette lookup command.
func TestColorsCommand(t *testing.T) {
	t.Run("prints the stored palette", func(t *testing.T) {
		dbPath := seedFixtureDB(t, defaultFixtureRows)

		output, err := runCommand(t, "colors", "--db", dbPath, "/photos/a.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, want := range []string{
			"File:    /photos/a.jpg",
			"Status:  extracted",
			"Colors:  1",
			"#FF0000",
			"rgb(255, 0, 0)",
			"light",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected output to contain %q, got:\n%s", want, output)
			}
		}
	})

	t.Run("empty palette prints the placeholder", func(t *testing.T) {
		dbPath := seedFixtureDB(t, defaultFixtureRows)

		output, err := runCommand(t, "colors", "--db", dbPath, "/photos/e.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, "no color data") {
			t.Errorf("expected placeholder, got:\n%s", output)
		}
	})

	t.Run("unknown file prints a no-record message", func(t *testing.T) {
		dbPath := seedFixtureDB(t, defaultFixtureRows)

		output, err := runCommand(t, "colors", "--db", dbPath, "/photos/unknown.jpg")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(output, "no record for file: /photos/unknown.jpg") {
			t.Errorf("expected no-record message, got:\n%s", output)
		}
	})

	t.Run("missing database is an error", func(t *testing.T) {
		_, err := runCommand(t, "colors",
			"--db", filepath.Join(t.TempDir(), "nope.db"), "/photos/a.jpg")
		if err == nil {
			t.Fatal("expected error for missing database")
		}
	})

	t.Run("requires a file path argument", func(t *testing.T) {
		if _, err := runCommand(t, "colors"); err == nil {
			t.Fatal("expected error for missing argument")
		}
	})
}
