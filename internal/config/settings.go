package config

import (
	"errors"
	"os"

	"fyne.io/fyne/v2"
	"github.com/joho/godotenv"
)

// Settings keys for Fyne preferences
const (
	KeyAPIKey   = "pixabay_api_key"
	KeyPerPage  = "results_per_page"
	KeyColumns  = "grid_columns"
	KeyLanguage = "app_language"
)

// EnvAPIKey is the environment variable holding the Pixabay API key. It may
// also be supplied through a .env file in the working directory.
const EnvAPIKey = "PIXABAY_API_KEY"

// Default values
const (
	DefaultPerPage  = 24
	DefaultColumns  = 4
	DefaultLanguage = "en"

	// Pixabay accepts per_page values between 3 and 200.
	MinPerPage = 3
	MaxPerPage = 200

	MinColumns = 1
	MaxColumns = 6
)

// ErrAPIKeyMissing is returned when no API key can be resolved from the
// environment, a .env file, or stored preferences.
var ErrAPIKeyMissing = errors.New("PIXABAY_API_KEY is not set")

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// ResolveAPIKey returns the Pixabay API key, preferring the process
// environment (optionally populated from a .env file) over the stored
// preference. Absence is a fatal startup condition for the caller.
func (s *Settings) ResolveAPIKey() (string, error) {
	// Best effort; a missing .env file is not an error.
	_ = godotenv.Load()

	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	if key := s.GetAPIKey(); key != "" {
		return key, nil
	}
	return "", ErrAPIKeyMissing
}

// GetAPIKey returns the API key stored in preferences, if any
func (s *Settings) GetAPIKey() string {
	return s.app.Preferences().String(KeyAPIKey)
}

// SetAPIKey stores the API key in preferences
func (s *Settings) SetAPIKey(key string) {
	s.app.Preferences().SetString(KeyAPIKey, key)
}

// GetPerPage returns the number of results requested per page
func (s *Settings) GetPerPage() int {
	value := s.app.Preferences().Int(KeyPerPage)
	if value <= 0 {
		s.SetPerPage(DefaultPerPage)
		return DefaultPerPage
	}
	return value
}

// SetPerPage sets the number of results requested per page
func (s *Settings) SetPerPage(count int) {
	if count < MinPerPage {
		count = MinPerPage
	}
	if count > MaxPerPage {
		count = MaxPerPage
	}
	s.app.Preferences().SetInt(KeyPerPage, count)
}

// GetColumns returns the results grid column count
func (s *Settings) GetColumns() int {
	value := s.app.Preferences().Int(KeyColumns)
	if value <= 0 {
		s.SetColumns(DefaultColumns)
		return DefaultColumns
	}
	return value
}

// SetColumns sets the results grid column count
func (s *Settings) SetColumns(count int) {
	if count < MinColumns {
		count = MinColumns
	}
	if count > MaxColumns {
		count = MaxColumns
	}
	s.app.Preferences().SetInt(KeyColumns, count)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetPerPageOptions returns the selectable per-page sizes
func (s *Settings) GetPerPageOptions() []int {
	return []int{21, 24}
}

// GetColumnOptions returns the selectable grid column counts
func (s *Settings) GetColumnOptions() []int {
	return []int{3, 4}
}
