package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/ytget/yt-transcript-qa/internal/config"
	"github.com/ytget/yt-transcript-qa/internal/platform"
	"github.com/ytget/yt-transcript-qa/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.yt-transcript-qa"
	AppName = "YT Transcript Q&A"

	WindowWidth  = 900
	WindowHeight = 700
)

func main() {
	// Log version information
	fmt.Printf("YT Transcript Q&A v%s starting...\n", version)

	// Optional .env seeds the YTQA_* defaults
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment and saved settings")
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadAppIcon(); err == nil {
		myApp.SetIcon(icon)
	}

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		fmt.Printf("failed to ensure downloads dir: %v\n", err)
	}

	videos := platform.NewOEmbedService()

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, settings, videos)
	rootUI.CheckBackend()

	// Show and run
	myWindow.ShowAndRun()
}
