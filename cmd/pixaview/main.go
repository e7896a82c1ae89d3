package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/Magneticdud/pixaview/internal/config"
	"github.com/Magneticdud/pixaview/internal/imgfetch"
	"github.com/Magneticdud/pixaview/internal/pixabay"
	"github.com/Magneticdud/pixaview/internal/search"
	"github.com/Magneticdud/pixaview/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.magneticdud.pixaview")
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("PixaView")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)

	apiKey, err := settings.ResolveAPIKey()
	if err != nil {
		log.Fatalf("API key resolution failed: %v", err)
	}

	searchSvc := search.NewService(pixabay.NewClient(apiKey), imgfetch.NewFetcher(), settings.GetPerPage())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, searchSvc, settings)

	// Show and run
	myWindow.ShowAndRun()
}
