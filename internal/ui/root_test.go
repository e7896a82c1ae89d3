package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/Magneticdud/pixaview/internal/config"
	"github.com/Magneticdud/pixaview/internal/model"
	"github.com/Magneticdud/pixaview/internal/search"
)

// stubSearcher satisfies search.Searcher without running any sessions.
type stubSearcher struct {
	perPage   int
	cancelled bool
}

func (s *stubSearcher) SetCallbacks(func(search.Progress), func(*model.PageResult), func(*search.Error), func()) {
}

func (s *stubSearcher) Start(query string) (*search.Session, error) {
	return nil, nil
}

func (s *stubSearcher) RequestPage(query string, page int) (*search.Session, error) {
	return nil, nil
}

func (s *stubSearcher) Cancel() {
	s.cancelled = true
}

func (s *stubSearcher) State() model.PaginationState {
	return model.PaginationState{}
}

func (s *stubSearcher) SetPerPage(perPage int) {
	s.perPage = perPage
}

func newTestRootUI(t *testing.T) *RootUI {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(func() { test.NewApp() })

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	return NewRootUI(w, a, &stubSearcher{}, config.NewSettings(a))
}

func TestRootUI_StatusText(t *testing.T) {
	ui := newTestRootUI(t)

	tests := []struct {
		progress search.Progress
		expected string
	}{
		{search.Progress{Status: model.StatusIdle}, "Ready"},
		{search.Progress{Status: model.StatusContacting}, "Contacting Pixabay..."},
		{search.Progress{Status: model.StatusFetchingPage, Page: 2}, "Fetching page 2..."},
		{search.Progress{Status: model.StatusLoadingImages, ImageIndex: 3, ImageCount: 24}, "Loading image 3 of 24..."},
		{search.Progress{Status: model.StatusDone, ImageCount: 5}, "Ready"},
		{search.Progress{Status: model.StatusDone, ImageCount: 0}, "No images found"},
		{search.Progress{Status: model.StatusStopped}, "Search stopped"},
		{search.Progress{Status: model.StatusError}, "Ready"},
	}

	for _, tt := range tests {
		text, ok := ui.statusText(tt.progress)
		if !ok {
			t.Errorf("statusText(%s) not rendered", tt.progress.Status)
			continue
		}
		if text != tt.expected {
			t.Errorf("statusText(%s) = %q, expected %q", tt.progress.Status, text, tt.expected)
		}
	}

	if _, ok := ui.statusText(search.Progress{Status: model.SearchStatus("bogus")}); ok {
		t.Error("statusText should not render an unknown status")
	}
}

func TestRootUI_LanguageMenu(t *testing.T) {
	ui := newTestRootUI(t)

	menu := ui.buildMainMenu()
	if len(menu.Items) != 2 {
		t.Fatalf("Expected 2 top-level menus, got %d", len(menu.Items))
	}

	languageMenu := menu.Items[1]
	if languageMenu.Label != IconLanguage+" Language" {
		t.Errorf("Language menu label = %q, expected %q", languageMenu.Label, IconLanguage+" Language")
	}
	if len(languageMenu.Items) != 2 {
		t.Fatalf("Expected 2 language entries, got %d", len(languageMenu.Items))
	}
	if !languageMenu.Items[0].Checked || languageMenu.Items[1].Checked {
		t.Error("Expected English checked and Italiano unchecked initially")
	}

	ui.onLanguageChange("it")

	menu = ui.buildMainMenu()
	languageMenu = menu.Items[1]
	if languageMenu.Label != IconLanguage+" Lingua" {
		t.Errorf("Language menu label = %q, expected %q", languageMenu.Label, IconLanguage+" Lingua")
	}
	if languageMenu.Items[0].Checked || !languageMenu.Items[1].Checked {
		t.Error("Expected Italiano checked after language change")
	}
}
