package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// MobileUI adapts input rows and buttons to touch devices
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	device := fyne.CurrentDevice()
	return device != nil && device.IsMobile()
}

// CreateMobileButton creates a button optimized for mobile touch
func (m *MobileUI) CreateMobileButton(text string, onTapped func()) *widget.Button {
	btn := widget.NewButton(text, onTapped)

	// For mobile devices, set minimum size for touch targets
	if m.IsMobileDevice() {
		btn.Resize(fyne.NewSize(MobileButtonWidth, MobileButtonHeight))
	}

	return btn
}

// CreateMobileEntry creates a single-line entry with a placeholder
func (m *MobileUI) CreateMobileEntry(placeholder string) *widget.Entry {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(placeholder)
	return entry
}

// CreateInputRow lays out an entry with its action button. Desktop keeps them
// on one line; mobile stacks the button under the entry.
func (m *MobileUI) CreateInputRow(leading fyne.CanvasObject, entry *widget.Entry, action *widget.Button) *fyne.Container {
	if m.IsMobileDevice() {
		top := fyne.CanvasObject(entry)
		if leading != nil {
			top = container.NewBorder(nil, nil, leading, nil, entry)
		}
		return container.NewVBox(top, action)
	}

	return container.NewBorder(nil, nil, leading, action, entry)
}

// CreateSuggestionRow lays out suggestion buttons, one per line on mobile
func (m *MobileUI) CreateSuggestionRow(buttons ...fyne.CanvasObject) *fyne.Container {
	if m.IsMobileDevice() {
		return container.NewVBox(buttons...)
	}
	return container.NewHBox(buttons...)
}
