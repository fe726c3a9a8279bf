package ui

import (
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/yt-transcript-qa/internal/model"
	"github.com/ytget/yt-transcript-qa/internal/viewer"
)

// busyTexts are the button label and overlay text keys for each action
var busyTexts = map[viewer.Action]struct{ idle, busy, overlay string }{
	viewer.ActionFetch: {KeyExtract, KeyExtracting, KeyExtractingOverlay},
	viewer.ActionAsk:   {KeyAsk, KeyThinking, KeyThinkingOverlay},
}

// Notify shows a toast and mirrors it to the notification panel under the URL row
func (ui *RootUI) Notify(message string, kind model.NotificationType) {
	logNotification(message, kind)
	fyne.Do(func() {
		ui.toasts.Show(message, kind)
		ui.showNotification(message, kind)
	})
}

// showNotification displays a message in the notification panel under the
// URL input. The panel hides together with the toast it mirrors.
func (ui *RootUI) showNotification(message string, kind model.NotificationType) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil {
		return
	}
	style := notificationStyle(kind)
	ui.notificationIcon.SetResource(style.icon)
	ui.notificationLabel.Importance = style.importance
	ui.notificationLabel.SetText(message)
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()

	ui.notificationSeq++
	seq := ui.notificationSeq
	if ui.toasts.autoHide > 0 {
		time.AfterFunc(ui.toasts.autoHide, func() {
			fyne.Do(func() {
				if ui.notificationSeq == seq {
					ui.hideNotification()
				}
			})
		})
	}
}

// hideNotification hides the notification panel
func (ui *RootUI) hideNotification() {
	ui.notificationSeq++
	ui.notificationContainer.Hide()
}

// SetBusy disables the action button, swaps its label and toggles the overlay
func (ui *RootUI) SetBusy(action viewer.Action, busy bool) {
	fyne.Do(func() {
		texts, ok := busyTexts[action]
		if !ok {
			log.Printf("SetBusy: unknown action %q", action)
			return
		}

		btn := ui.actionButton(action)
		if busy {
			// A new request makes the previous outcome stale
			ui.hideNotification()
			ui.busy[action] = true
			btn.Disable()
			btn.SetText(ui.localization.GetText(texts.busy))
			ui.overlayLabel.SetText(ui.localization.GetText(texts.overlay))
			ui.overlay.Show()
			return
		}

		delete(ui.busy, action)
		btn.SetText(ui.localization.GetText(texts.idle))
		btn.Enable()

		// Another action may still be running
		for other := range ui.busy {
			ui.overlayLabel.SetText(ui.localization.GetText(busyTexts[other].overlay))
			return
		}
		ui.overlay.Hide()
	})
}

func (ui *RootUI) actionButton(action viewer.Action) *widget.Button {
	if action == viewer.ActionAsk {
		return ui.askBtn
	}
	return ui.fetchBtn
}

// ShowTranscript renders the transcript and its statistics
func (ui *RootUI) ShowTranscript(transcript string, stats model.TranscriptStats) {
	fyne.Do(func() {
		ui.transcriptLabel.SetText(transcript)
		ui.statsLabel.SetText(stats.String())
		ui.transcriptCard.Show()
	})
}

// ShowVideoPreview shows the preview card for a video; the thumbnail
// appears once ShowThumbnail delivers it
func (ui *RootUI) ShowVideoPreview(preview viewer.VideoPreview) {
	fyne.Do(func() {
		ui.currentVideoID = preview.VideoID
		ui.videoTitle.SetText(IconVideo + " " + preview.VideoID)
		ui.videoThumb.Resource = nil
		ui.videoThumb.Hide()
		if err := ui.watchLink.SetURLFromString(preview.WatchURL); err != nil {
			log.Printf("Invalid watch URL %s: %v", preview.WatchURL, err)
		}
		if err := ui.playerLink.SetURLFromString(preview.EmbedURL); err != nil {
			log.Printf("Invalid embed URL %s: %v", preview.EmbedURL, err)
		}
		ui.videoContainer.Show()
	})
}

// UpdateVideoTitle replaces the preview heading if videoID is still shown
func (ui *RootUI) UpdateVideoTitle(videoID, title, author string) {
	fyne.Do(func() {
		if ui.currentVideoID != videoID {
			return
		}
		ui.videoTitle.SetText(videoHeading(title, author))
	})
}

func videoHeading(title, author string) string {
	if author == "" {
		return IconVideo + " " + title
	}
	return IconVideo + " " + title + MiddleDotSeparator + author
}

// ShowThumbnail shows the preview image if videoID is still shown
func (ui *RootUI) ShowThumbnail(videoID string, image []byte) {
	fyne.Do(func() {
		if ui.currentVideoID != videoID {
			return
		}
		ui.videoThumb.Resource = fyne.NewStaticResource("thumbnail_"+videoID+".jpg", image)
		ui.videoThumb.Show()
		ui.videoThumb.Refresh()
	})
}

// ShowQASection reveals the question section once the session allows asking
func (ui *RootUI) ShowQASection() {
	fyne.Do(ui.syncPhase)
}

// syncPhase derives section visibility from the session phase
func (ui *RootUI) syncPhase() {
	phase := ui.service.Session().Phase()
	setVisible(ui.qaSection, phase.CanAsk())
	setVisible(ui.answerCard, phase == model.PhaseAnswered)
	setVisible(ui.historyCard, phase == model.PhaseAnswered)
}

func setVisible(obj fyne.CanvasObject, visible bool) {
	if visible {
		obj.Show()
	} else {
		obj.Hide()
	}
}

// ShowAnswer renders the latest question and answer
func (ui *RootUI) ShowAnswer(question, answer string) {
	fyne.Do(func() {
		ui.answerQuestion.SetText(IconQuestion + " " + question)
		ui.answerLabel.SetText(IconAnswer + " " + answer)
		ui.syncPhase()
	})
}

// ClearQuestion empties the question field
func (ui *RootUI) ClearQuestion() {
	fyne.Do(func() {
		ui.questionEntry.SetText("")
	})
}

// RenderHistory rebuilds the chat history list; the card follows the phase
func (ui *RootUI) RenderHistory(items []model.HistoryItem) {
	fyne.Do(func() {
		ui.historyList.RemoveAll()
		for _, item := range items {
			ui.historyList.Add(newHistoryItem(item))
		}
		ui.historyList.Refresh()
		ui.syncPhase()
	})
}

// newHistoryItem renders one numbered history entry
func newHistoryItem(item model.HistoryItem) fyne.CanvasObject {
	header := widget.NewLabel(fmt.Sprintf(HistoryItemFormat, item.Number, item.TimeOfDay))
	header.Importance = widget.LowImportance

	question := widget.NewLabel(IconQuestion + " " + item.Question)
	question.TextStyle = fyne.TextStyle{Bold: true}
	question.Wrapping = fyne.TextWrapWord

	answer := widget.NewLabel(IconAnswer + " " + item.Answer)
	answer.Wrapping = fyne.TextWrapWord

	return container.NewVBox(header, question, answer, widget.NewSeparator())
}
