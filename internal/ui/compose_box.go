package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Paoox/redsocial-desktop/internal/logx"
	"github.com/Paoox/redsocial-desktop/internal/platform"
)

var errPostTooLong = errors.New("post exceeds the 500 character limit")

// ComposeBox is the new-post form shown at the top of the feed and on
// the viewer's own profile.
type ComposeBox struct {
	widget.BaseWidget

	window       fyne.Window
	localization *Localization

	entry        *widget.Entry
	attachBtn    *widget.Button
	removeBtn    *widget.Button
	publishBtn   *widget.Button
	attachedName *widget.Label

	imageName string
	imageData []byte

	content *fyne.Container

	// Callback
	onPublish func(content, imageName string, image []byte)
}

// NewComposeBox creates the compose form.
func NewComposeBox(window fyne.Window, localization *Localization) *ComposeBox {
	cb := &ComposeBox{
		window:       window,
		localization: localization,
	}
	cb.ExtendBaseWidget(cb)
	cb.createUI()
	return cb
}

// SetPublishCallback sets the callback invoked with the composed post.
func (cb *ComposeBox) SetPublishCallback(onPublish func(content, imageName string, image []byte)) {
	cb.onPublish = onPublish
}

// Clear resets the form after a successful publish.
func (cb *ComposeBox) Clear() {
	cb.entry.SetText("")
	cb.clearAttachment()
}

func (cb *ComposeBox) createUI() {
	cb.entry = widget.NewMultiLineEntry()
	cb.entry.SetPlaceHolder(cb.localization.GetText(KeyComposePlaceholder))
	cb.entry.Wrapping = fyne.TextWrapWord
	cb.entry.Validator = func(text string) error {
		if len(text) > MaxPostLength {
			return errPostTooLong
		}
		return nil
	}

	cb.attachedName = widget.NewLabel("")
	cb.attachedName.Importance = widget.LowImportance
	cb.attachedName.Hide()

	cb.attachBtn = widget.NewButton(IconAttach+" "+cb.localization.GetText(KeyAttachImage), cb.onAttachClick)
	cb.attachBtn.Importance = widget.LowImportance

	cb.removeBtn = widget.NewButton(IconClose, func() {
		cb.clearAttachment()
	})
	cb.removeBtn.Importance = widget.LowImportance
	cb.removeBtn.Hide()

	cb.publishBtn = widget.NewButton(cb.localization.GetText(KeyPublish), cb.onPublishClick)
	cb.publishBtn.Importance = widget.HighImportance

	actions := container.NewBorder(nil, nil,
		container.NewHBox(cb.attachBtn, cb.attachedName, cb.removeBtn),
		cb.publishBtn,
	)

	cb.content = container.NewVBox(
		cb.entry,
		actions,
		widget.NewSeparator(),
	)
}

// onAttachClick opens the image picker and reads the chosen file.
func (cb *ComposeBox) onAttachClick() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		name := reader.URI().Name()
		data, err := platform.ReadImage(name, reader)
		if err != nil {
			logx.Warn("image attach rejected", "file", name)
			dialog.ShowError(err, cb.window)
			return
		}

		cb.imageName = name
		cb.imageData = data
		cb.attachedName.SetText(name)
		cb.attachedName.Show()
		cb.removeBtn.Show()
		cb.Refresh()
	}, cb.window)
}

// onPublishClick hands the composed post to the callback.
func (cb *ComposeBox) onPublishClick() {
	text := cb.entry.Text
	if text == "" && cb.imageData == nil {
		return
	}
	if len(text) > MaxPostLength {
		dialog.ShowError(errPostTooLong, cb.window)
		return
	}

	if cb.onPublish != nil {
		cb.onPublish(text, cb.imageName, cb.imageData)
	}
}

func (cb *ComposeBox) clearAttachment() {
	cb.imageName = ""
	cb.imageData = nil
	cb.attachedName.SetText("")
	cb.attachedName.Hide()
	cb.removeBtn.Hide()
	cb.Refresh()
}

// CreateRenderer creates the widget renderer
func (cb *ComposeBox) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(cb.content)
}
