package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/Magneticdud/pixaview/internal/model"
)

func TestPaginationBar_HiddenForSinglePage(t *testing.T) {
	_ = test.NewApp()
	defer test.NewApp()

	bar := NewPaginationBar(NewLocalization(), nil)

	if bar.Container().Visible() {
		t.Error("New pagination bar should be hidden")
	}

	bar.Update(model.PaginationState{Query: "cats", CurrentPage: 1, TotalPages: 1})
	if bar.Container().Visible() {
		t.Error("Pagination bar should stay hidden with a single page")
	}

	bar.Update(model.PaginationState{Query: "cats", CurrentPage: 1, TotalPages: 3})
	if !bar.Container().Visible() {
		t.Error("Pagination bar should be visible with multiple pages")
	}

	bar.Update(model.PaginationState{})
	if bar.Container().Visible() {
		t.Error("Pagination bar should hide again with no result")
	}
}

func TestPaginationBar_ButtonStates(t *testing.T) {
	_ = test.NewApp()
	defer test.NewApp()

	tests := []struct {
		currentPage  int
		totalPages   int
		prevDisabled bool
		nextDisabled bool
	}{
		{1, 5, true, false},
		{3, 5, false, false},
		{5, 5, false, true},
	}

	bar := NewPaginationBar(NewLocalization(), nil)
	for _, tt := range tests {
		bar.Update(model.PaginationState{Query: "cats", CurrentPage: tt.currentPage, TotalPages: tt.totalPages})

		if bar.prevBtn.Disabled() != tt.prevDisabled {
			t.Errorf("page %d/%d: prev disabled = %v, expected %v",
				tt.currentPage, tt.totalPages, bar.prevBtn.Disabled(), tt.prevDisabled)
		}
		if bar.nextBtn.Disabled() != tt.nextDisabled {
			t.Errorf("page %d/%d: next disabled = %v, expected %v",
				tt.currentPage, tt.totalPages, bar.nextBtn.Disabled(), tt.nextDisabled)
		}
	}
}

func TestPaginationBar_PageLabel(t *testing.T) {
	_ = test.NewApp()
	defer test.NewApp()

	bar := NewPaginationBar(NewLocalization(), nil)
	bar.Update(model.PaginationState{Query: "cats", CurrentPage: 2, TotalPages: 21})

	if bar.pageLabel.Text != "Page 2 of 21" {
		t.Errorf("Page label = %q, expected %q", bar.pageLabel.Text, "Page 2 of 21")
	}
}

func TestPaginationBar_NextRequestsFollowingPage(t *testing.T) {
	_ = test.NewApp()
	defer test.NewApp()

	var requested int
	bar := NewPaginationBar(NewLocalization(), func(page int) {
		requested = page
	})
	bar.Update(model.PaginationState{Query: "cats", CurrentPage: 1, TotalPages: 3})

	test.Tap(bar.nextBtn)
	if requested != 2 {
		t.Errorf("Next requested page %d, expected 2", requested)
	}

	bar.Update(model.PaginationState{Query: "cats", CurrentPage: 2, TotalPages: 3})
	test.Tap(bar.prevBtn)
	if requested != 1 {
		t.Errorf("Previous requested page %d, expected 1", requested)
	}
}

func TestPaginationBar_RefreshTexts(t *testing.T) {
	_ = test.NewApp()
	defer test.NewApp()

	localization := NewLocalization()
	bar := NewPaginationBar(localization, nil)
	bar.Update(model.PaginationState{Query: "cats", CurrentPage: 2, TotalPages: 3})

	localization.SetLanguage("it")
	bar.RefreshTexts()

	if bar.prevBtn.Text != "Precedente" {
		t.Errorf("Previous button text = %q, expected %q", bar.prevBtn.Text, "Precedente")
	}
	if bar.pageLabel.Text != "Pagina 2 di 3" {
		t.Errorf("Page label = %q, expected %q", bar.pageLabel.Text, "Pagina 2 di 3")
	}
}
