package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "yt-transcript-qa.png"
)

// LoadAppIcon loads the window icon from the working directory. The icon is
// optional; callers fall back to the default Fyne icon on error.
func LoadAppIcon() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
