package ui

import (
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/yt-transcript-qa/internal/model"
)

// toastStyle is the icon and text importance of one notification type
type toastStyle struct {
	icon       fyne.Resource
	importance widget.Importance
}

// notificationStyle maps a notification type to its toast style.
// Unknown types render as info.
func notificationStyle(kind model.NotificationType) toastStyle {
	switch kind.Normalize() {
	case model.NotificationSuccess:
		return toastStyle{icon: theme.ConfirmIcon(), importance: widget.SuccessImportance}
	case model.NotificationError:
		return toastStyle{icon: theme.ErrorIcon(), importance: widget.DangerImportance}
	case model.NotificationWarning:
		return toastStyle{icon: theme.WarningIcon(), importance: widget.WarningImportance}
	default:
		return toastStyle{icon: theme.InfoIcon(), importance: widget.HighImportance}
	}
}

// toastPosition places the index-th toast in the top-right corner, stacking downwards
func toastPosition(canvasSize fyne.Size, index int) fyne.Position {
	x := canvasSize.Width - ToastWidth - ToastMargin
	if x < 0 {
		x = 0
	}
	y := ToastMargin + float32(index)*(ToastHeight+ToastSpacing)
	return fyne.NewPos(x, y)
}

type toast struct {
	id    string
	popup *widget.PopUp
}

// toastManager shows stacked, self-dismissing toasts on a canvas.
// Show and dismiss run on the Fyne goroutine.
type toastManager struct {
	canvas   fyne.Canvas
	autoHide time.Duration

	mu     sync.Mutex
	toasts []*toast
}

func newToastManager(canvas fyne.Canvas) *toastManager {
	return &toastManager{canvas: canvas, autoHide: ToastAutoHide}
}

// Show adds a toast below the ones already visible and returns its ID
func (m *toastManager) Show(message string, kind model.NotificationType) string {
	style := notificationStyle(kind)
	id := uuid.NewString()

	icon := widget.NewIcon(style.icon)
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = style.importance

	closeBtn := widget.NewButton(IconClose, func() {
		m.dismiss(id)
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewBorder(nil, nil, icon, closeBtn, label)
	popup := widget.NewPopUp(content, m.canvas)
	popup.Resize(fyne.NewSize(ToastWidth, ToastHeight))

	m.mu.Lock()
	m.pruneLocked()
	popup.Move(toastPosition(m.canvas.Size(), len(m.toasts)))
	popup.Show()
	m.toasts = append(m.toasts, &toast{id: id, popup: popup})
	m.mu.Unlock()
	m.layout()

	if m.autoHide > 0 {
		time.AfterFunc(m.autoHide, func() {
			fyne.Do(func() {
				m.dismiss(id)
			})
		})
	}

	return id
}

// dismiss hides the toast with id; unknown or already dismissed IDs are ignored
func (m *toastManager) dismiss(id string) {
	m.mu.Lock()
	var removed *toast
	for i, t := range m.toasts {
		if t.id == id {
			removed = t
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	if removed == nil {
		return
	}
	removed.popup.Hide()
	m.layout()
}

// Count returns the number of visible toasts
func (m *toastManager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pruneLocked()
	return len(m.toasts)
}

// pruneLocked drops toasts the popup hid on its own, such as after a tap
// outside it; caller holds mu
func (m *toastManager) pruneLocked() {
	visible := m.toasts[:0]
	for _, t := range m.toasts {
		if t.popup.Visible() {
			visible = append(visible, t)
		}
	}
	for i := len(visible); i < len(m.toasts); i++ {
		m.toasts[i] = nil
	}
	m.toasts = visible
}

func (m *toastManager) layout() {
	m.mu.Lock()
	m.pruneLocked()
	toasts := append([]*toast(nil), m.toasts...)
	m.mu.Unlock()

	canvasSize := m.canvas.Size()
	for i, t := range toasts {
		t.popup.Move(toastPosition(canvasSize, i))
	}
}

// logNotification writes a notification to the log with its type
func logNotification(message string, kind model.NotificationType) {
	log.Printf("Notification [%s]: %s", kind.Normalize(), message)
}
