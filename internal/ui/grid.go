package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Magneticdud/pixaview/internal/model"
)

// ResultsGrid lays fetched thumbnails out into a fixed-column grid, one cell
// per surviving result, in original result order. The grid exclusively owns
// the currently displayed thumbnail set; SetItems replaces it wholesale.
type ResultsGrid struct {
	localization *Localization
	onCopyID     func(id int)

	columns int
	items   []model.Thumbnail

	grid   *fyne.Container
	scroll *container.Scroll
}

// NewResultsGrid creates an empty results grid
func NewResultsGrid(localization *Localization, columns int, onCopyID func(id int)) *ResultsGrid {
	if columns < 1 {
		columns = 1
	}

	g := &ResultsGrid{
		localization: localization,
		onCopyID:     onCopyID,
		columns:      columns,
	}
	g.grid = container.New(layout.NewGridLayout(columns))
	g.scroll = container.NewScroll(g.grid)
	return g
}

// Container returns the scrollable grid for embedding in a layout
func (g *ResultsGrid) Container() fyne.CanvasObject {
	return g.scroll
}

// Count returns the number of currently displayed items
func (g *ResultsGrid) Count() int {
	return len(g.items)
}

// SetColumns changes the fixed column count and re-renders
func (g *ResultsGrid) SetColumns(columns int) {
	if columns < 1 {
		columns = 1
	}
	g.columns = columns
	g.grid.Layout = layout.NewGridLayout(columns)
	g.rebuild()
}

// SetItems replaces the displayed content. The prior cells - and with them
// the prior bitmaps - are dropped in one step, then the view scrolls back to
// the top. Must be called on the UI thread.
func (g *ResultsGrid) SetItems(items []model.Thumbnail) {
	g.items = items
	g.rebuild()
	g.scroll.ScrollToTop()
}

// Clear removes all displayed content
func (g *ResultsGrid) Clear() {
	g.SetItems(nil)
}

// RefreshTexts re-renders cell labels with the current language
func (g *ResultsGrid) RefreshTexts() {
	g.rebuild()
}

func (g *ResultsGrid) rebuild() {
	objects := make([]fyne.CanvasObject, 0, len(g.items))
	for _, item := range g.items {
		objects = append(objects, g.newCell(item))
	}
	g.grid.Objects = objects
	g.grid.Refresh()
}

// newCell builds one grid cell: thumbnail, derived title, id with a
// copy-to-clipboard button, tags, author, and likes.
func (g *ResultsGrid) newCell(item model.Thumbnail) fyne.CanvasObject {
	record := item.Record

	img := canvas.NewImageFromImage(item.Image)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(CellImageWidth, CellImageHeight))

	title := widget.NewLabelWithStyle(record.Title(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	title.Wrapping = fyne.TextWrapWord

	idLabel := widget.NewLabel(g.localization.GetTextf(KeyImageID, map[string]string{
		"id": strconv.Itoa(record.ID),
	}))
	copyBtn := widget.NewButtonWithIcon("", theme.ContentCopyIcon(), func() {
		if g.onCopyID != nil {
			g.onCopyID(record.ID)
		}
	})
	copyBtn.Importance = widget.LowImportance
	idRow := container.NewCenter(container.NewHBox(idLabel, copyBtn))

	tags := widget.NewLabel(g.localization.GetTextf(KeyTags, map[string]string{
		"tags": record.Tags,
	}))
	tags.Wrapping = fyne.TextWrapWord
	tags.Alignment = fyne.TextAlignCenter

	author := widget.NewLabel(g.localization.GetTextf(KeyBy, map[string]string{
		"user": record.User,
	}))
	author.Alignment = fyne.TextAlignCenter

	likes := widget.NewLabel(g.localization.GetTextf(KeyLikes, map[string]string{
		"likes": strconv.Itoa(record.Likes),
	}))
	likes.Alignment = fyne.TextAlignCenter

	return container.NewVBox(img, title, idRow, tags, author, likes)
}
