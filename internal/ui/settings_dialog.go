package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-transcript-qa/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	backendURLEntry  *widget.Entry
	downloadDirEntry *widget.Entry
	timeoutEntry     *widget.Entry
	languageSelect   *widget.Select
	revealCheck      *widget.Check
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	sd := NewSettingsDialog(settings, localization, window)
	sd.onSaved = onSaved
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.backendURLEntry = widget.NewEntry()
	sd.backendURLEntry.SetPlaceHolder(config.DefaultBackendURL)

	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton(text(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("0")

	// Language selection, sorted for a stable order
	languageLabels := sd.settings.GetLanguageOptions()
	languageOptions := make([]string, 0, len(languageLabels))
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	sd.revealCheck = widget.NewCheck(text(KeyRevealAfterDownload), nil)

	form := container.NewVBox(
		widget.NewLabel(text(KeyBackendURL)+":"),
		sd.backendURLEntry,

		widget.NewLabel(text(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyDownloadDirectory)+":"),
		downloadDirRow,
		sd.revealCheck,

		widget.NewSeparator(),

		widget.NewLabel(text(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(500, 420))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.backendURLEntry.SetText(sd.settings.GetBackendURL())
	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout() / time.Second)))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.revealCheck.SetChecked(sd.settings.GetRevealAfterDownload())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// apply writes the form values to settings; invalid numbers are ignored
func (sd *SettingsDialog) apply() {
	sd.settings.SetBackendURL(sd.backendURLEntry.Text)

	if downloadDir := strings.TrimSpace(sd.downloadDirEntry.Text); downloadDir != "" {
		sd.settings.SetDownloadDirectory(downloadDir)
	}

	if timeoutStr := strings.TrimSpace(sd.timeoutEntry.Text); timeoutStr != "" {
		if seconds, err := strconv.Atoi(timeoutStr); err == nil {
			sd.settings.SetRequestTimeout(time.Duration(seconds) * time.Second)
		}
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	sd.settings.SetRevealAfterDownload(sd.revealCheck.Checked)
}
