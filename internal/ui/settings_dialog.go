package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/Magneticdud/pixaview/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	onSaved      func()

	// UI components
	apiKeyEntry    *widget.Entry
	perPageSelect  *widget.Select
	columnsSelect  *widget.Select
	languageSelect *widget.Select
}

// ShowSettingsDialog creates and shows the settings dialog. onSaved runs
// after the new values have been stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}
	sd.show()
}

func (sd *SettingsDialog) show() {
	sd.apiKeyEntry = widget.NewPasswordEntry()
	sd.apiKeyEntry.SetPlaceHolder(config.EnvAPIKey)
	sd.apiKeyEntry.SetText(sd.settings.GetAPIKey())

	sd.perPageSelect = widget.NewSelect(intOptions(sd.settings.GetPerPageOptions()), nil)
	sd.perPageSelect.SetSelected(strconv.Itoa(sd.settings.GetPerPage()))

	sd.columnsSelect = widget.NewSelect(intOptions(sd.settings.GetColumnOptions()), nil)
	sd.columnsSelect.SetSelected(strconv.Itoa(sd.settings.GetColumns()))

	languages := sd.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(languages))
	names := make([]string, 0, len(languages))
	for _, code := range []string{"en", "it"} {
		if name, ok := languages[code]; ok {
			codes = append(codes, code)
			names = append(names, name)
		}
	}
	sd.languageSelect = widget.NewSelect(names, nil)
	for i, code := range codes {
		if code == sd.localization.GetCurrentLanguage() {
			sd.languageSelect.SetSelectedIndex(i)
		}
	}

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel(sd.localization.GetText(KeySettingsAPIKey)), sd.apiKeyEntry,
		widget.NewLabel(sd.localization.GetText(KeySettingsPerPage)), sd.perPageSelect,
		widget.NewLabel(sd.localization.GetText(KeySettingsColumns)), sd.columnsSelect,
		widget.NewLabel(sd.localization.GetText(KeyMenuLanguage)), sd.languageSelect,
	)

	d := dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettingsTitle),
		sd.localization.GetText(KeySettingsSave),
		sd.localization.GetText(KeySettingsCancel),
		form,
		func(save bool) {
			if !save {
				return
			}
			sd.apply(codes)
		},
		sd.window,
	)
	d.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
	d.Show()
}

func (sd *SettingsDialog) apply(languageCodes []string) {
	sd.settings.SetAPIKey(sd.apiKeyEntry.Text)

	if perPage, err := strconv.Atoi(sd.perPageSelect.Selected); err == nil {
		sd.settings.SetPerPage(perPage)
	}
	if columns, err := strconv.Atoi(sd.columnsSelect.Selected); err == nil {
		sd.settings.SetColumns(columns)
	}

	idx := sd.languageSelect.SelectedIndex()
	if idx >= 0 && idx < len(languageCodes) {
		sd.settings.SetLanguage(languageCodes[idx])
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

func intOptions(values []int) []string {
	options := make([]string, len(values))
	for i, v := range values {
		options[i] = strconv.Itoa(v)
	}
	return options
}
