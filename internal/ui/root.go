package ui

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-transcript-qa/internal/api"
	"github.com/ytget/yt-transcript-qa/internal/config"
	"github.com/ytget/yt-transcript-qa/internal/model"
	"github.com/ytget/yt-transcript-qa/internal/platform"
	"github.com/ytget/yt-transcript-qa/internal/viewer"
)

// RootUI represents the main UI structure. It is the View and Notifier of
// the viewer.Service it owns.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	videos       viewer.VideoLookup
	service      *viewer.Service
	toasts       *toastManager

	// URL row
	urlEntry    *widget.Entry
	fetchBtn    *widget.Button
	settingsBtn *widget.Button

	// Notification panel
	notificationContainer *fyne.Container
	notificationIcon      *widget.Icon
	notificationLabel     *widget.Label
	notificationSeq       int

	// Video preview
	videoContainer *fyne.Container
	videoTitle     *widget.Label
	videoThumb     *canvas.Image
	watchLink      *widget.Hyperlink
	playerLink     *widget.Hyperlink
	currentVideoID string

	// Transcript
	transcriptCard  *widget.Card
	transcriptLabel *widget.Label
	statsLabel      *widget.Label
	downloadBtn     *widget.Button

	// Q&A
	qaSection      *widget.Card
	questionEntry  *widget.Entry
	askBtn         *widget.Button
	suggestionBtns map[string]*widget.Button
	answerCard     *widget.Card
	answerQuestion *widget.Label
	answerLabel    *widget.Label

	// History
	historyCard     *widget.Card
	historyList     *fyne.Container
	clearHistoryBtn *widget.Button

	// Loading overlay
	overlay      *widget.PopUp
	overlayLabel *widget.Label
	busy         map[viewer.Action]bool
}

var (
	_ viewer.View     = (*RootUI)(nil)
	_ viewer.Notifier = (*RootUI)(nil)
)

// suggestionKeys are the prefilled questions offered under the question field
var suggestionKeys = []string{KeySuggestSummary, KeySuggestKeyPoints, KeySuggestConclusion}

// NewRootUI creates and initializes the main UI. videos may be nil, in which
// case the preview card shows the video ID instead of its title.
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, videos viewer.VideoLookup) *RootUI {
	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:         window,
		settings:       settings,
		localization:   localization,
		mobile:         NewMobileUI(app),
		videos:         videos,
		toasts:         newToastManager(window.Canvas()),
		suggestionBtns: make(map[string]*widget.Button),
		busy:           make(map[viewer.Action]bool),
	}

	ui.service = ui.newService(model.NewSession())
	log.Printf("RootUI initialized with backend: %s", settings.GetBackendURL())

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// Service returns the controller driving this UI
func (ui *RootUI) Service() *viewer.Service {
	return ui.service
}

// newService builds a controller for the current settings around session
func (ui *RootUI) newService(session *model.Session) *viewer.Service {
	client := api.NewClient(
		ui.settings.GetBackendURL(),
		api.WithTimeout(ui.settings.GetRequestTimeout()),
	)

	opts := []viewer.Option{
		viewer.WithSession(session),
		viewer.WithTranslator(ui.localization),
		viewer.WithFileSaver(viewer.SaverFunc(ui.saveTranscript)),
	}
	if ui.videos != nil {
		opts = append(opts, viewer.WithVideoLookup(ui.videos))
	}

	return viewer.NewService(client, ui, ui, opts...)
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// URL row; Enter in the URL field also triggers a fetch
	ui.urlEntry = ui.mobile.CreateMobileEntry(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onFetchClick()
	}
	ui.fetchBtn = ui.mobile.CreateMobileButton(ui.localization.GetText(KeyExtract), ui.onFetchClick)
	ui.fetchBtn.Importance = widget.HighImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	topPanel := ui.mobile.CreateInputRow(ui.settingsBtn, ui.urlEntry, ui.fetchBtn)

	// Create notification panel under URL input (hidden by default)
	ui.notificationIcon = widget.NewIcon(nil)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationLabel.Wrapping = fyne.TextWrapWord
	ui.notificationContainer = container.NewBorder(nil, nil, ui.notificationIcon, nil, ui.notificationLabel)
	ui.notificationContainer.Hide()

	topCombined := container.NewVBox(topPanel, ui.notificationContainer)

	content := container.NewBorder(
		topCombined, // top
		nil,         // bottom
		nil,         // left
		nil,         // right
		container.NewVScroll(container.NewVBox(
			ui.createVideoPreview(),
			ui.createTranscriptCard(),
			ui.createQASection(),
			ui.createAnswerCard(),
			ui.createHistoryCard(),
		)),
	)

	ui.createOverlay()
	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

func (ui *RootUI) createVideoPreview() fyne.CanvasObject {
	ui.videoTitle = widget.NewLabel("")
	ui.videoTitle.TextStyle = fyne.TextStyle{Bold: true}
	ui.videoTitle.Truncation = fyne.TextTruncateEllipsis

	ui.watchLink = widget.NewHyperlink(ui.localization.GetText(KeyWatchOnYouTube), nil)
	ui.playerLink = widget.NewHyperlink(ui.localization.GetText(KeyOpenPlayer), nil)

	ui.videoThumb = canvas.NewImageFromResource(nil)
	ui.videoThumb.FillMode = canvas.ImageFillContain
	ui.videoThumb.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	ui.videoThumb.Hide()

	ui.videoContainer = container.NewBorder(nil, nil, ui.videoThumb,
		container.NewHBox(ui.watchLink, ui.playerLink),
		ui.videoTitle,
	)
	ui.videoContainer.Hide()
	return ui.videoContainer
}

func (ui *RootUI) createTranscriptCard() fyne.CanvasObject {
	ui.transcriptLabel = widget.NewLabel("")
	ui.transcriptLabel.Wrapping = fyne.TextWrapWord

	ui.statsLabel = widget.NewLabel("")
	ui.statsLabel.Importance = widget.LowImportance

	ui.downloadBtn = widget.NewButton(IconSave+" "+ui.localization.GetText(KeyDownloadTranscript), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.LowImportance

	scroll := container.NewVScroll(ui.transcriptLabel)
	scroll.SetMinSize(fyne.NewSize(0, TranscriptMinHeight))

	ui.transcriptCard = widget.NewCard(ui.localization.GetText(KeyTranscript), "",
		container.NewBorder(nil, container.NewBorder(nil, nil, nil, ui.downloadBtn, ui.statsLabel), nil, nil, scroll),
	)
	ui.transcriptCard.Hide()
	return ui.transcriptCard
}

func (ui *RootUI) createQASection() fyne.CanvasObject {
	ui.questionEntry = ui.mobile.CreateMobileEntry(ui.localization.GetText(KeyEnterQuestion))
	ui.questionEntry.OnSubmitted = func(string) {
		ui.onAskClick()
	}
	ui.askBtn = ui.mobile.CreateMobileButton(ui.localization.GetText(KeyAsk), ui.onAskClick)
	ui.askBtn.Importance = widget.HighImportance

	suggestions := make([]fyne.CanvasObject, 0, len(suggestionKeys))
	for _, key := range suggestionKeys {
		textKey := key // Capture for closure
		btn := widget.NewButton(ui.localization.GetText(textKey), func() {
			ui.SetQuestion(ui.localization.GetText(textKey))
		})
		btn.Importance = widget.LowImportance
		ui.suggestionBtns[textKey] = btn
		suggestions = append(suggestions, btn)
	}

	ui.qaSection = widget.NewCard(ui.localization.GetText(KeyAskTitle), "",
		container.NewVBox(
			ui.mobile.CreateInputRow(nil, ui.questionEntry, ui.askBtn),
			ui.mobile.CreateSuggestionRow(suggestions...),
		),
	)
	ui.qaSection.Hide()
	return ui.qaSection
}

func (ui *RootUI) createAnswerCard() fyne.CanvasObject {
	ui.answerQuestion = widget.NewLabel("")
	ui.answerQuestion.TextStyle = fyne.TextStyle{Bold: true}
	ui.answerQuestion.Wrapping = fyne.TextWrapWord

	ui.answerLabel = widget.NewLabel("")
	ui.answerLabel.Wrapping = fyne.TextWrapWord

	ui.answerCard = widget.NewCard(ui.localization.GetText(KeyAnswer), "",
		container.NewVBox(ui.answerQuestion, ui.answerLabel),
	)
	ui.answerCard.Hide()
	return ui.answerCard
}

func (ui *RootUI) createHistoryCard() fyne.CanvasObject {
	ui.historyList = container.NewVBox()
	ui.clearHistoryBtn = widget.NewButton(ui.localization.GetText(KeyClearHistory), ui.onClearHistoryClick)
	ui.clearHistoryBtn.Importance = widget.LowImportance

	ui.historyCard = widget.NewCard(ui.localization.GetText(KeyHistory), "",
		container.NewBorder(container.NewHBox(ui.clearHistoryBtn), nil, nil, nil, ui.historyList),
	)
	ui.historyCard.Hide()
	return ui.historyCard
}

func (ui *RootUI) createOverlay() {
	ui.overlayLabel = widget.NewLabel("")
	ui.overlayLabel.Alignment = fyne.TextAlignCenter

	ui.overlay = widget.NewModalPopUp(
		container.NewVBox(ui.overlayLabel, widget.NewProgressBarInfinite()),
		ui.window.Canvas(),
	)
	ui.overlay.Resize(fyne.NewSize(OverlayWidth, OverlayHeight))
	ui.overlay.Hide()
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.questionEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterQuestion))
	if !ui.busy[viewer.ActionFetch] {
		ui.fetchBtn.SetText(ui.localization.GetText(KeyExtract))
	}
	if !ui.busy[viewer.ActionAsk] {
		ui.askBtn.SetText(ui.localization.GetText(KeyAsk))
	}

	ui.watchLink.SetText(ui.localization.GetText(KeyWatchOnYouTube))
	ui.playerLink.SetText(ui.localization.GetText(KeyOpenPlayer))
	ui.downloadBtn.SetText(IconSave + " " + ui.localization.GetText(KeyDownloadTranscript))
	ui.clearHistoryBtn.SetText(ui.localization.GetText(KeyClearHistory))

	ui.transcriptCard.SetTitle(ui.localization.GetText(KeyTranscript))
	ui.qaSection.SetTitle(ui.localization.GetText(KeyAskTitle))
	ui.answerCard.SetTitle(ui.localization.GetText(KeyAnswer))
	ui.historyCard.SetTitle(ui.localization.GetText(KeyHistory))

	for key, btn := range ui.suggestionBtns {
		btn.SetText(ui.localization.GetText(key))
	}
}

// onFetchClick handles the extract button and Enter in the URL field
func (ui *RootUI) onFetchClick() {
	svc := ui.service
	rawURL := ui.urlEntry.Text
	go func() {
		_ = svc.FetchTranscript(context.Background(), rawURL)
	}()
}

// onAskClick handles the ask button and Enter in the question field
func (ui *RootUI) onAskClick() {
	svc := ui.service
	question := ui.questionEntry.Text
	go func() {
		_ = svc.AskQuestion(context.Background(), question)
	}()
}

func (ui *RootUI) onClearHistoryClick() {
	svc := ui.service
	go svc.ClearHistory()
}

func (ui *RootUI) onDownloadClick() {
	svc := ui.service
	go func() {
		_, _ = svc.DownloadTranscript()
	}()
}

// SetQuestion prefills the question field and focuses it
func (ui *RootUI) SetQuestion(question string) {
	ui.questionEntry.SetText(question)
	ui.window.Canvas().Focus(ui.questionEntry)
}

// CheckBackend checks the backend in the background; problems surface as
// warning toasts
func (ui *RootUI) CheckBackend() {
	svc := ui.service
	go func() {
		_ = svc.CheckBackend(context.Background())
	}()
}

// saveTranscript writes a downloaded transcript into the configured
// directory and optionally reveals it
func (ui *RootUI) saveTranscript(filename, content string) (string, error) {
	path, err := platform.SaveTextFile(ui.settings.GetDownloadDirectory(), filename, content)
	if err != nil {
		return "", err
	}

	if ui.settings.GetRevealAfterDownload() {
		if err := platform.OpenFileInManager(path); err != nil {
			log.Printf("Failed to reveal %s: %v", path, err)
			ui.Notify(ui.localization.GetText(KeyErrorOpeningFile)+": "+err.Error(), model.NotificationWarning)
		}
	}
	return path, nil
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings rebuilds the controller for changed settings, keeping the session
func (ui *RootUI) applySettings() {
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()

	ui.rebuildService()
	ui.CheckBackend()
}

// rebuildService swaps in a controller for the current backend settings.
// Requests already in flight finish on the old one.
func (ui *RootUI) rebuildService() {
	ui.service = ui.newService(ui.service.Session())
	log.Printf("Settings applied: backend=%s timeout=%v", ui.settings.GetBackendURL(), ui.settings.GetRequestTimeout())
}
