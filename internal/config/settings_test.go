package config

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestPerPage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	perPage := settings.GetPerPage()
	if perPage != DefaultPerPage {
		t.Errorf("Expected default per-page %d, got %d", DefaultPerPage, perPage)
	}

	// Test setting custom value
	settings.SetPerPage(21)
	if settings.GetPerPage() != 21 {
		t.Errorf("Expected per-page 21, got %d", settings.GetPerPage())
	}

	// Test boundary values
	settings.SetPerPage(1) // Should be clamped to MinPerPage
	if settings.GetPerPage() != MinPerPage {
		t.Errorf("Per-page should be clamped to minimum %d, got %d", MinPerPage, settings.GetPerPage())
	}

	settings.SetPerPage(1000) // Should be clamped to MaxPerPage
	if settings.GetPerPage() != MaxPerPage {
		t.Errorf("Per-page should be clamped to maximum %d, got %d", MaxPerPage, settings.GetPerPage())
	}
}

func TestColumns(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	columns := settings.GetColumns()
	if columns != DefaultColumns {
		t.Errorf("Expected default columns %d, got %d", DefaultColumns, columns)
	}

	// Test setting custom value
	settings.SetColumns(3)
	if settings.GetColumns() != 3 {
		t.Errorf("Expected columns 3, got %d", settings.GetColumns())
	}

	// Test boundary values
	settings.SetColumns(0)
	if settings.GetColumns() != MinColumns {
		t.Errorf("Columns should be clamped to minimum %d, got %d", MinColumns, settings.GetColumns())
	}

	settings.SetColumns(99)
	if settings.GetColumns() != MaxColumns {
		t.Errorf("Columns should be clamped to maximum %d, got %d", MaxColumns, settings.GetColumns())
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("it")
	if settings.GetLanguage() != "it" {
		t.Errorf("Expected language 'it', got %s", settings.GetLanguage())
	}
}

func TestAPIKeyPreference(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAPIKey() != "" {
		t.Errorf("Expected empty stored API key, got %q", settings.GetAPIKey())
	}

	settings.SetAPIKey("stored-key")
	if settings.GetAPIKey() != "stored-key" {
		t.Errorf("Expected stored API key 'stored-key', got %q", settings.GetAPIKey())
	}
}

func TestResolveAPIKey(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// No env, no preference
	t.Setenv(EnvAPIKey, "")
	_, err := settings.ResolveAPIKey()
	if !errors.Is(err, ErrAPIKeyMissing) {
		t.Errorf("Expected ErrAPIKeyMissing, got %v", err)
	}

	// Preference fallback
	settings.SetAPIKey("pref-key")
	key, err := settings.ResolveAPIKey()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if key != "pref-key" {
		t.Errorf("Expected key 'pref-key', got %q", key)
	}

	// Environment wins over preference
	t.Setenv(EnvAPIKey, "env-key")
	key, err = settings.ResolveAPIKey()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if key != "env-key" {
		t.Errorf("Expected key 'env-key', got %q", key)
	}
}

func TestGetPerPageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetPerPageOptions()
	expected := []int{21, 24}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d per-page options, got %d", len(expected), len(options))
	}
	for i, want := range expected {
		if options[i] != want {
			t.Errorf("Per-page option %d: expected %d, got %d", i, want, options[i])
		}
	}
}
