// Package main provides the entry point for the seat map designer.
package main

import (
	"crypto/rand"
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"seatmap/internal/app"
	"seatmap/internal/version"
	"seatmap/ui/mainwindow"
	"seatmap/ui/prefs"
)

const appTitle = "Seat Map Designer"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting %s v%s", appTitle, version.Version)

	fyneApp := fyneapp.New()

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("generating ticket key: %v", err)
	}

	appState := app.NewState(key)
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, appState, appPrefs)
	win.SetTitle(appTitle)

	// Handle command line arguments
	if len(os.Args) > 1 {
		venuePath := os.Args[1]
		if err := appState.LoadVenue(venuePath); err != nil {
			log.Printf("Failed to load venue %s: %v", venuePath, err)
		}
	}

	win.ShowAndRun()
}
