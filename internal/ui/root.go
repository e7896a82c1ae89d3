package ui

import (
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Magneticdud/pixaview/internal/config"
	"github.com/Magneticdud/pixaview/internal/model"
	"github.com/Magneticdud/pixaview/internal/search"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	searchEntry *widget.Entry
	searchLabel *widget.Label
	searchBtn   *widget.Button
	stopBtn     *widget.Button
	progress    *widget.ProgressBarInfinite
	statusLabel *widget.Label

	resultsGrid   *ResultsGrid
	paginationBar *PaginationBar

	searchSvc    search.Searcher
	settings     *config.Settings
	localization *Localization

	currentQuery string
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, searchSvc search.Searcher, settings *config.Settings) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())
	for lang := range localization.GetAvailableLanguages() {
		if missing := localization.MissingKeys(lang); len(missing) > 0 {
			log.Printf("Locale %s is missing keys: %v", lang, missing)
		}
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		searchSvc:    searchSvc,
		settings:     settings,
		localization: localization,
	}

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callbacks for search session updates
	ui.searchSvc.SetCallbacks(
		ui.onSearchStatus,
		ui.onSearchResult,
		ui.onSearchError,
		ui.onSearchFinished,
	)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create search row
	ui.searchLabel = widget.NewLabel(ui.localization.GetText(KeySearchLabel))

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchLabel))
	// Trigger search when user presses Enter in the query field
	ui.searchEntry.OnSubmitted = func(string) {
		ui.onSearchClick()
	}

	ui.searchBtn = widget.NewButton(ui.localization.GetText(KeySearch), ui.onSearchClick)
	ui.searchBtn.Importance = widget.HighImportance

	ui.stopBtn = widget.NewButton(ui.localization.GetText(KeyStop), ui.onStopClick)
	ui.stopBtn.Importance = widget.DangerImportance
	ui.stopBtn.Hide()

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	searchRow := container.NewBorder(nil, nil,
		container.NewHBox(settingsBtn, ui.searchLabel),
		container.NewHBox(ui.searchBtn, ui.stopBtn),
		ui.searchEntry,
	)

	// Indeterminate progress indicator, shown only while a search is in flight
	ui.progress = widget.NewProgressBarInfinite()
	ui.progress.Hide()

	topPanel := container.NewVBox(searchRow, ui.progress)

	// Status line
	idleText, _ := ui.statusText(search.Progress{Status: model.StatusIdle})
	ui.statusLabel = widget.NewLabel(idleText)
	ui.statusLabel.Alignment = fyne.TextAlignLeading
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	// Results grid
	ui.resultsGrid = NewResultsGrid(ui.localization, ui.settings.GetColumns(), ui.onCopyID)

	// Pagination controls
	ui.paginationBar = NewPaginationBar(ui.localization, ui.onPageRequest)

	bottomPanel := container.NewVBox(ui.paginationBar.Container(), ui.statusLabel)

	content := container.NewBorder(
		topPanel,                   // top
		bottomPanel,                // bottom
		nil,                        // left
		nil,                        // right
		ui.resultsGrid.Container(), // center
	)

	ui.window.SetContent(content)
}

// createMenu creates and installs the application menu
func (ui *RootUI) createMenu() {
	ui.window.SetMainMenu(ui.buildMainMenu())
}

// buildMainMenu builds the menu tree for the current language
func (ui *RootUI) buildMainMenu() *fyne.MainMenu {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeyMenuSettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(KeyMenuLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range []string{"en", "it"} {
		name, ok := availableLanguages[code]
		if !ok {
			continue
		}

		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	return fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyMenuFile), settingsItem),
		languageMenu,
	)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	if ui.localization.GetCurrentLanguage() == langCode {
		return
	}

	log.Printf("Changing language to %s", langCode)
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.searchLabel.SetText(ui.localization.GetText(KeySearchLabel))
	ui.searchEntry.SetPlaceHolder(ui.localization.GetText(KeySearchLabel))
	ui.searchBtn.SetText(ui.localization.GetText(KeySearch))
	ui.stopBtn.SetText(ui.localization.GetText(KeyStop))

	ui.resultsGrid.RefreshTexts()
	ui.paginationBar.RefreshTexts()

	if ui.resultsGrid.Count() > 0 {
		ui.statusLabel.SetText(ui.localization.GetText(KeyReady))
	} else {
		ui.statusLabel.SetText(ui.localization.GetText(KeyNoImages))
	}
}

// onSearchClick handles the search button click
func (ui *RootUI) onSearchClick() {
	query := strings.TrimSpace(ui.searchEntry.Text)
	if query == "" {
		ui.showErrorDialog(
			ui.localization.GetText(KeyErrValidation),
			ui.localization.GetText(KeyErrEmptyQuery),
		)
		return
	}

	ui.startSearch(query, 1)
}

// onPageRequest handles prev/next activation from the pagination bar
func (ui *RootUI) onPageRequest(page int) {
	if ui.currentQuery == "" {
		return
	}
	ui.startSearch(ui.currentQuery, page)
}

// startSearch clears displayed results and dispatches a new search session
func (ui *RootUI) startSearch(query string, page int) {
	log.Printf("Starting search: query=%q page=%d", query, page)

	// Clear previous results; the grid releases prior bitmaps wholesale.
	ui.resultsGrid.Clear()

	ui.setInProgress()
	ui.statusLabel.SetText(ui.localization.GetTextf(KeySearchingFor, map[string]string{
		"query": query,
	}))

	var err error
	if page <= 1 {
		_, err = ui.searchSvc.Start(query)
	} else {
		_, err = ui.searchSvc.RequestPage(query, page)
	}
	if err != nil {
		ui.setIdle()
		ui.showSearchError(search.Classify(err))
	}
}

// onStopClick handles the stop button click. The UI returns to idle
// immediately; the in-flight session delivers nothing further.
func (ui *RootUI) onStopClick() {
	log.Printf("Stop requested")
	ui.searchSvc.Cancel()
	ui.setIdle()
	if text, ok := ui.statusText(search.Progress{Status: model.StatusStopped}); ok {
		ui.statusLabel.SetText(text)
	}
}

// setInProgress disables re-submission and shows the cancel affordance and
// progress indicator
func (ui *RootUI) setInProgress() {
	ui.searchBtn.Disable()
	ui.stopBtn.Show()
	ui.progress.Show()
}

// setIdle restores the idle UI state
func (ui *RootUI) setIdle() {
	ui.searchBtn.Enable()
	ui.stopBtn.Hide()
	ui.progress.Hide()
}

// onSearchStatus handles status updates from the search service.
// Called from the session goroutine; the text is resolved inside fyne.Do so
// a concurrent language switch on the UI thread is observed consistently.
func (ui *RootUI) onSearchStatus(p search.Progress) {
	fyne.Do(func() {
		if text, ok := ui.statusText(p); ok {
			ui.statusLabel.SetText(text)
		}
	})
}

// statusText renders a progress update into the localized status line
func (ui *RootUI) statusText(p search.Progress) (string, bool) {
	switch p.Status {
	case model.StatusIdle:
		return ui.localization.GetText(KeyReady), true
	case model.StatusContacting:
		return ui.localization.GetText(KeyContactingAPI), true
	case model.StatusFetchingPage:
		return ui.localization.GetTextf(KeyFetchingPage, map[string]string{
			"page": strconv.Itoa(p.Page),
		}), true
	case model.StatusLoadingImages:
		return ui.localization.GetTextf(KeyLoadingImage, map[string]string{
			"current": strconv.Itoa(p.ImageIndex),
			"total":   strconv.Itoa(p.ImageCount),
		}), true
	case model.StatusDone:
		if p.ImageCount == 0 {
			return ui.localization.GetText(KeyNoImages), true
		}
		return ui.localization.GetText(KeyReady), true
	case model.StatusStopped:
		return ui.localization.GetText(KeySearchStopped), true
	case model.StatusError:
		return ui.localization.GetText(KeyReady), true
	}
	return "", false
}

// onSearchResult handles a completed page from the search service.
// Called from the session goroutine.
func (ui *RootUI) onSearchResult(result *model.PageResult) {
	log.Printf("Search result: query=%q page=%d/%d items=%d totalHits=%d",
		result.Query, result.Page, result.TotalPages, len(result.Items), result.TotalHits)

	fyne.Do(func() {
		ui.currentQuery = result.Query
		ui.resultsGrid.SetItems(result.Items)
		ui.paginationBar.Update(model.PaginationState{
			Query:       result.Query,
			CurrentPage: result.Page,
			TotalPages:  result.TotalPages,
		})
	})
}

// onSearchError surfaces a terminal search failure. The status line is reset
// by the error progress update that precedes this callback.
// Called from the session goroutine.
func (ui *RootUI) onSearchError(serr *search.Error) {
	fyne.Do(func() {
		ui.showSearchError(serr)
	})
}

// onSearchFinished restores the idle UI once the session is over, whatever
// the outcome. Called from the session goroutine.
func (ui *RootUI) onSearchFinished() {
	fyne.Do(func() {
		ui.setIdle()
	})
}

// showSearchError maps the error taxonomy onto localized dialog texts
func (ui *RootUI) showSearchError(serr *search.Error) {
	var title, message string

	switch serr.Kind {
	case search.KindValidation:
		title = ui.localization.GetText(KeyErrValidation)
		message = ui.localization.GetText(KeyErrEmptyQuery)
	case search.KindTimeout:
		title = ui.localization.GetText(KeyErrAPIError)
		message = ui.localization.GetText(KeyErrTimeout)
	case search.KindNetwork:
		title = ui.localization.GetText(KeyErrNetwork)
		message = ui.localization.GetTextf(KeyErrNetworkDetail, map[string]string{
			"error": serr.Err.Error(),
		})
	case search.KindMalformed:
		title = ui.localization.GetText(KeyErrAPIError)
		message = ui.localization.GetText(KeyErrInvalidResponse)
	default:
		title = ui.localization.GetText(KeyErrAPIError)
		message = ui.localization.GetTextf(KeyErrUnexpected, map[string]string{
			"error": serr.Err.Error(),
		})
	}

	ui.showErrorDialog(title, message)
}

// showErrorDialog shows a modal notification with a localized title
func (ui *RootUI) showErrorDialog(title, message string) {
	content := widget.NewLabel(message)
	content.Wrapping = fyne.TextWrapWord
	dialog.ShowCustom(title, ui.localization.GetText(KeySettingsCancel), content, ui.window)
}

// onCopyID copies an image identifier to the system clipboard
func (ui *RootUI) onCopyID(id int) {
	text := strconv.Itoa(id)
	ui.app.Clipboard().SetContent(text)
	ui.statusLabel.SetText(ui.localization.GetTextf(KeyCopiedToClipboard, map[string]string{
		"text": text,
	}))
	log.Printf("Copied image id %s to clipboard", text)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		// Apply saved settings to the running services
		ui.searchSvc.SetPerPage(ui.settings.GetPerPage())
		ui.resultsGrid.SetColumns(ui.settings.GetColumns())
		ui.onLanguageChange(ui.settings.GetLanguage())

		ui.statusLabel.SetText(ui.localization.GetText(KeySettingsSaved))
	})
}
