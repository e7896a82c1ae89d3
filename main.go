package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"github.com/Magneticdud/pixaview/internal/config"
	"github.com/Magneticdud/pixaview/internal/imgfetch"
	"github.com/Magneticdud/pixaview/internal/pixabay"
	"github.com/Magneticdud/pixaview/internal/search"
	"github.com/Magneticdud/pixaview/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.magneticdud.pixaview"
	AppName = "PixaView"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)

	apiKey, err := settings.ResolveAPIKey()
	if err != nil {
		log.Printf("API key resolution failed: %v", err)
		showFatalError(myApp, myWindow, settings)
		return
	}

	apiClient := pixabay.NewClient(apiKey)
	fetcher := imgfetch.NewFetcher()
	searchSvc := search.NewService(apiClient, fetcher, settings.GetPerPage())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, searchSvc, settings)

	// Show and run
	myWindow.ShowAndRun()
}

// showFatalError tells the user the API key is missing and exits once the
// dialog is dismissed. The window must still run for the dialog to render.
func showFatalError(myApp fyne.App, myWindow fyne.Window, settings *config.Settings) {
	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	d := dialog.NewError(
		fmt.Errorf("%s", localization.GetText(ui.KeyErrMissingAPIKey)),
		myWindow,
	)
	d.SetOnClosed(func() {
		myApp.Quit()
	})
	d.Show()

	myWindow.ShowAndRun()
}
