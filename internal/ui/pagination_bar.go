package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Magneticdud/pixaview/internal/model"
)

// PaginationBar renders the Previous / "page X of Y" / Next controls. The
// bar is hidden entirely while there is a single page or no result at all.
type PaginationBar struct {
	localization *Localization
	onPage       func(page int)

	state model.PaginationState

	prevBtn   *widget.Button
	nextBtn   *widget.Button
	pageLabel *widget.Label
	box       *fyne.Container
}

// NewPaginationBar creates a hidden pagination bar. onPage receives the
// already-clamped target page on Previous/Next activation.
func NewPaginationBar(localization *Localization, onPage func(page int)) *PaginationBar {
	p := &PaginationBar{
		localization: localization,
		onPage:       onPage,
	}

	p.prevBtn = widget.NewButton(localization.GetText(KeyPrevious), p.onPrevious)
	p.nextBtn = widget.NewButton(localization.GetText(KeyNext), p.onNext)
	p.pageLabel = widget.NewLabel("")

	p.box = container.NewCenter(container.NewHBox(p.prevBtn, p.pageLabel, p.nextBtn))
	p.box.Hide()
	return p
}

// Container returns the bar for embedding in a layout
func (p *PaginationBar) Container() fyne.CanvasObject {
	return p.box
}

// Update re-renders the bar for the given pagination state. Must be called
// on the UI thread.
func (p *PaginationBar) Update(state model.PaginationState) {
	p.state = state

	if state.TotalPages <= 1 {
		p.box.Hide()
		return
	}

	p.pageLabel.SetText(p.localization.GetTextf(KeyPageInfo, map[string]string{
		"current": strconv.Itoa(state.CurrentPage),
		"total":   strconv.Itoa(state.TotalPages),
	}))

	if state.CurrentPage <= 1 {
		p.prevBtn.Disable()
	} else {
		p.prevBtn.Enable()
	}
	if state.CurrentPage >= state.TotalPages {
		p.nextBtn.Disable()
	} else {
		p.nextBtn.Enable()
	}

	p.box.Show()
	p.box.Refresh()
}

// RefreshTexts re-applies button labels and the page label with the current
// language.
func (p *PaginationBar) RefreshTexts() {
	p.prevBtn.SetText(p.localization.GetText(KeyPrevious))
	p.nextBtn.SetText(p.localization.GetText(KeyNext))
	p.Update(p.state)
}

func (p *PaginationBar) onPrevious() {
	if p.onPage != nil {
		p.onPage(model.ClampPage(p.state.CurrentPage-1, p.state.TotalPages))
	}
}

func (p *PaginationBar) onNext() {
	if p.onPage != nil {
		p.onPage(model.ClampPage(p.state.CurrentPage+1, p.state.TotalPages))
	}
}
