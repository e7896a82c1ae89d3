package ui

import (
	"strings"
	"sync"
)

// Localization manages UI text translations. Lookups and language switches
// may happen on different goroutines; the texts maps themselves are built
// once and never mutated afterwards.
type Localization struct {
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization. Keys are dot-delimited message ids; templates
// use {name} placeholders expanded by GetTextf.
const (
	KeyAppTitle    = "app_title"
	KeySearchLabel = "search_label"
	KeySearch      = "search_button"
	KeyStop        = "stop_button"
	KeyPrevious    = "previous_button"
	KeyNext        = "next_button"
	KeyPageInfo    = "page_info"
	KeyImageID     = "image_id"
	KeyTags        = "tags"
	KeyBy          = "by"
	KeyLikes       = "likes"

	KeyReady             = "ready"
	KeyNoImages          = "no_images"
	KeySearchingFor      = "searching_for"
	KeyContactingAPI     = "contacting_api"
	KeyFetchingPage      = "fetching_page"
	KeyLoadingImage      = "loading_image"
	KeySearchStopped     = "search_stopped"
	KeyCopiedToClipboard = "copied_to_clipboard"

	KeyMenuFile     = "menu.file"
	KeyMenuSettings = "menu.settings"
	KeyMenuLanguage = "menu.language"

	KeySettingsTitle   = "settings.title"
	KeySettingsAPIKey  = "settings.api_key"
	KeySettingsPerPage = "settings.per_page"
	KeySettingsColumns = "settings.columns"
	KeySettingsSave    = "settings.save"
	KeySettingsCancel  = "settings.cancel"
	KeySettingsSaved   = "settings.saved"

	KeyErrAPIError        = "error.api_error"
	KeyErrEmptyQuery      = "error.empty_query"
	KeyErrInvalidResponse = "error.invalid_response"
	KeyErrTimeout         = "error.timeout"
	KeyErrNetwork         = "error.network_error"
	KeyErrNetworkDetail   = "error.network_error_detail"
	KeyErrUnexpected      = "error.unexpected_error"
	KeyErrMissingAPIKey   = "error.missing_api_key"
	KeyErrValidation      = "error.validation"
)

// DefaultLanguage is the fallback language for missing keys and unknown
// language codes.
const DefaultLanguage = "en"

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown languages keep the current
// one.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.mu.Lock()
		l.currentLanguage = lang
		l.mu.Unlock()
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.GetCurrentLanguage()]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetTextf returns localized text with {name} placeholders expanded
func (l *Localization) GetTextf(key string, args map[string]string) string {
	text := l.GetText(key)
	if len(args) == 0 {
		return text
	}

	pairs := make([]string, 0, len(args)*2)
	for name, value := range args {
		pairs = append(pairs, "{"+name+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"it": "Italiano",
	}
}

// MissingKeys returns the keys present in the default language but absent
// from lang. Used as a startup completeness check for locale resources.
func (l *Localization) MissingKeys(lang string) []string {
	base, ok := l.texts[DefaultLanguage]
	if !ok {
		return nil
	}
	target := l.texts[lang]

	var missing []string
	for key := range base {
		if _, found := target[key]; !found {
			missing = append(missing, key)
		}
	}
	return missing
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:    "Pixabay Viewer",
		KeySearchLabel: "Search images:",
		KeySearch:      "Search",
		KeyStop:        "Stop",
		KeyPrevious:    "Previous",
		KeyNext:        "Next",
		KeyPageInfo:    "Page {current} of {total}",
		KeyImageID:     "ID: {id}",
		KeyTags:        "Tags: {tags}",
		KeyBy:          "By {user}",
		KeyLikes:       IconHeart + " {likes}",

		KeyReady:             "Ready",
		KeyNoImages:          "No images found",
		KeySearchingFor:      "Searching for '{query}'...",
		KeyContactingAPI:     "Contacting Pixabay...",
		KeyFetchingPage:      "Fetching page {page}...",
		KeyLoadingImage:      "Loading image {current} of {total}...",
		KeySearchStopped:     "Search stopped",
		KeyCopiedToClipboard: "Copied {text} to clipboard",

		KeyMenuFile:     "File",
		KeyMenuSettings: "Settings",
		KeyMenuLanguage: "Language",

		KeySettingsTitle:   "Settings",
		KeySettingsAPIKey:  "Pixabay API key",
		KeySettingsPerPage: "Images per page",
		KeySettingsColumns: "Grid columns",
		KeySettingsSave:    "Save",
		KeySettingsCancel:  "Cancel",
		KeySettingsSaved:   "Settings saved",

		KeyErrAPIError:        "API Error",
		KeyErrEmptyQuery:      "Please enter a search query",
		KeyErrInvalidResponse: "Invalid response from the Pixabay API",
		KeyErrTimeout:         "The request timed out. Please try again.",
		KeyErrNetwork:         "Network Error",
		KeyErrNetworkDetail:   "Could not reach Pixabay: {error}",
		KeyErrUnexpected:      "Unexpected error: {error}",
		KeyErrMissingAPIKey:   "PIXABAY_API_KEY not found. Set it in the environment, a .env file, or the settings.",
		KeyErrValidation:      "Invalid Input",
	}

	// Italian texts
	l.texts["it"] = map[string]string{
		KeyAppTitle:    "Visualizzatore Pixabay",
		KeySearchLabel: "Cerca immagini:",
		KeySearch:      "Cerca",
		KeyStop:        "Interrompi",
		KeyPrevious:    "Precedente",
		KeyNext:        "Successivo",
		KeyPageInfo:    "Pagina {current} di {total}",
		KeyImageID:     "ID: {id}",
		KeyTags:        "Tag: {tags}",
		KeyBy:          "Di {user}",
		KeyLikes:       IconHeart + " {likes}",

		KeyReady:             "Pronto",
		KeyNoImages:          "Nessuna immagine trovata",
		KeySearchingFor:      "Ricerca di '{query}'...",
		KeyContactingAPI:     "Connessione a Pixabay...",
		KeyFetchingPage:      "Caricamento pagina {page}...",
		KeyLoadingImage:      "Caricamento immagine {current} di {total}...",
		KeySearchStopped:     "Ricerca interrotta",
		KeyCopiedToClipboard: "{text} copiato negli appunti",

		KeyMenuFile:     "File",
		KeyMenuSettings: "Impostazioni",
		KeyMenuLanguage: "Lingua",

		KeySettingsTitle:   "Impostazioni",
		KeySettingsAPIKey:  "Chiave API Pixabay",
		KeySettingsPerPage: "Immagini per pagina",
		KeySettingsColumns: "Colonne della griglia",
		KeySettingsSave:    "Salva",
		KeySettingsCancel:  "Annulla",
		KeySettingsSaved:   "Impostazioni salvate",

		KeyErrAPIError:        "Errore API",
		KeyErrEmptyQuery:      "Inserisci una query di ricerca",
		KeyErrInvalidResponse: "Risposta non valida dall'API di Pixabay",
		KeyErrTimeout:         "La richiesta è scaduta. Riprova.",
		KeyErrNetwork:         "Errore di rete",
		KeyErrNetworkDetail:   "Impossibile raggiungere Pixabay: {error}",
		KeyErrUnexpected:      "Errore imprevisto: {error}",
		KeyErrMissingAPIKey:   "PIXABAY_API_KEY non trovata. Impostala nell'ambiente, in un file .env o nelle impostazioni.",
		KeyErrValidation:      "Input non valido",
	}
}
