package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LoginView is the email/password sign-in form.
type LoginView struct {
	widget.BaseWidget

	localization *Localization

	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	loginBtn      *widget.Button
	errorLabel    *widget.Label
	infoLabel     *widget.Label

	content *fyne.Container

	// Callbacks
	onLogin        func(email, password string)
	onShowRegister func()
	onShowReset    func()
}

// NewLoginView creates the login form.
func NewLoginView(localization *Localization) *LoginView {
	lv := &LoginView{localization: localization}
	lv.ExtendBaseWidget(lv)
	lv.createUI()
	return lv
}

// SetCallbacks sets the form callbacks.
func (lv *LoginView) SetCallbacks(onLogin func(email, password string), onShowRegister, onShowReset func()) {
	lv.onLogin = onLogin
	lv.onShowRegister = onShowRegister
	lv.onShowReset = onShowReset
}

// ShowError displays an error banner above the form.
func (lv *LoginView) ShowError(message string) {
	lv.infoLabel.Hide()
	lv.errorLabel.SetText(message)
	lv.errorLabel.Show()
	lv.Refresh()
}

// ShowInfo displays a success banner, used after registration and
// password resets redirect here.
func (lv *LoginView) ShowInfo(message string) {
	lv.errorLabel.Hide()
	lv.infoLabel.SetText(message)
	lv.infoLabel.Show()
	lv.Refresh()
}

// Clear resets the form.
func (lv *LoginView) Clear() {
	lv.emailEntry.SetText("")
	lv.passwordEntry.SetText("")
	lv.errorLabel.Hide()
	lv.infoLabel.Hide()
	lv.SetBusy(false)
	lv.Refresh()
}

// SetBusy disables the submit button while a request is in flight.
func (lv *LoginView) SetBusy(busy bool) {
	if busy {
		lv.loginBtn.Disable()
	} else {
		lv.loginBtn.Enable()
	}
}

func (lv *LoginView) createUI() {
	lv.emailEntry = widget.NewEntry()
	lv.emailEntry.SetPlaceHolder(lv.localization.GetText(KeyEmail))

	lv.passwordEntry = widget.NewPasswordEntry()
	lv.passwordEntry.SetPlaceHolder(lv.localization.GetText(KeyPassword))
	lv.passwordEntry.OnSubmitted = func(string) {
		lv.onLoginClick()
	}

	lv.loginBtn = widget.NewButton(lv.localization.GetText(KeyLogin), lv.onLoginClick)
	lv.loginBtn.Importance = widget.HighImportance

	registerLink := widget.NewButton(lv.localization.GetText(KeyNoAccountYet), func() {
		if lv.onShowRegister != nil {
			lv.onShowRegister()
		}
	})
	registerLink.Importance = widget.LowImportance

	resetLink := widget.NewButton(lv.localization.GetText(KeyForgotPassword), func() {
		if lv.onShowReset != nil {
			lv.onShowReset()
		}
	})
	resetLink.Importance = widget.LowImportance

	lv.errorLabel = widget.NewLabel("")
	lv.errorLabel.Importance = widget.DangerImportance
	lv.errorLabel.Wrapping = fyne.TextWrapWord
	lv.errorLabel.Hide()

	lv.infoLabel = widget.NewLabel("")
	lv.infoLabel.Importance = widget.SuccessImportance
	lv.infoLabel.Wrapping = fyne.TextWrapWord
	lv.infoLabel.Hide()

	title := widget.NewLabel(lv.localization.GetText(KeyAppTitle))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	form := container.NewVBox(
		title,
		lv.errorLabel,
		lv.infoLabel,
		lv.emailEntry,
		lv.passwordEntry,
		lv.loginBtn,
		widget.NewSeparator(),
		registerLink,
		resetLink,
	)

	lv.content = container.NewCenter(container.NewGridWrap(
		fyne.NewSize(FormMinWidth, form.MinSize().Height), form))
}

func (lv *LoginView) onLoginClick() {
	if lv.onLogin != nil {
		lv.onLogin(lv.emailEntry.Text, lv.passwordEntry.Text)
	}
}

// CreateRenderer creates the widget renderer
func (lv *LoginView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(lv.content)
}
