package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Paoox/redsocial-desktop/internal/validate"
)

// ResetPasswordView is the two-step recovery form: first the email is
// verified against the backend, then the new password is set.
type ResetPasswordView struct {
	widget.BaseWidget

	localization *Localization
	emailChecked bool

	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	confirmEntry  *widget.Entry
	submitBtn     *widget.Button
	errorLabel    *widget.Label

	content *fyne.Container

	// Callbacks
	onCheckEmail func(email string)
	onReset      func(email, newPassword string)
	onShowLogin  func()
}

// NewResetPasswordView creates the password recovery form.
func NewResetPasswordView(localization *Localization) *ResetPasswordView {
	rv := &ResetPasswordView{localization: localization}
	rv.ExtendBaseWidget(rv)
	rv.createUI()
	return rv
}

// SetCallbacks sets the form callbacks.
func (rv *ResetPasswordView) SetCallbacks(onCheckEmail func(email string), onReset func(email, newPassword string), onShowLogin func()) {
	rv.onCheckEmail = onCheckEmail
	rv.onReset = onReset
	rv.onShowLogin = onShowLogin
}

// EmailVerified unlocks the password fields after the backend confirmed
// the address exists.
func (rv *ResetPasswordView) EmailVerified() {
	rv.emailChecked = true
	rv.emailEntry.Disable()
	rv.passwordEntry.Show()
	rv.confirmEntry.Show()
	rv.submitBtn.SetText(rv.localization.GetText(KeyResetPassword))
	rv.errorLabel.Hide()
	rv.Refresh()
}

// ShowError displays an error banner above the form.
func (rv *ResetPasswordView) ShowError(message string) {
	rv.errorLabel.SetText(message)
	rv.errorLabel.Show()
	rv.Refresh()
}

// Clear resets the form back to the email step.
func (rv *ResetPasswordView) Clear() {
	rv.emailChecked = false
	rv.emailEntry.SetText("")
	rv.emailEntry.Enable()
	rv.passwordEntry.SetText("")
	rv.passwordEntry.Hide()
	rv.confirmEntry.SetText("")
	rv.confirmEntry.Hide()
	rv.submitBtn.SetText(rv.localization.GetText(KeyCheckEmail))
	rv.errorLabel.Hide()
	rv.SetBusy(false)
	rv.Refresh()
}

// SetBusy disables the submit button while a request is in flight.
func (rv *ResetPasswordView) SetBusy(busy bool) {
	if busy {
		rv.submitBtn.Disable()
	} else {
		rv.submitBtn.Enable()
	}
}

func (rv *ResetPasswordView) createUI() {
	rv.emailEntry = widget.NewEntry()
	rv.emailEntry.SetPlaceHolder(rv.localization.GetText(KeyEmail))

	rv.passwordEntry = widget.NewPasswordEntry()
	rv.passwordEntry.SetPlaceHolder(rv.localization.GetText(KeyNewPassword))
	rv.passwordEntry.Hide()

	rv.confirmEntry = widget.NewPasswordEntry()
	rv.confirmEntry.SetPlaceHolder(rv.localization.GetText(KeyConfirmPassword))
	rv.confirmEntry.Hide()

	rv.errorLabel = widget.NewLabel("")
	rv.errorLabel.Importance = widget.DangerImportance
	rv.errorLabel.Wrapping = fyne.TextWrapWord
	rv.errorLabel.Hide()

	rv.submitBtn = widget.NewButton(rv.localization.GetText(KeyCheckEmail), rv.onSubmitClick)
	rv.submitBtn.Importance = widget.HighImportance

	loginLink := widget.NewButton(rv.localization.GetText(KeyBackToLogin), func() {
		if rv.onShowLogin != nil {
			rv.onShowLogin()
		}
	})
	loginLink.Importance = widget.LowImportance

	title := widget.NewLabel(rv.localization.GetText(KeyResetPassword))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	form := container.NewVBox(
		title,
		rv.errorLabel,
		rv.emailEntry,
		rv.passwordEntry,
		rv.confirmEntry,
		rv.submitBtn,
		widget.NewSeparator(),
		loginLink,
	)

	rv.content = container.NewCenter(container.NewGridWrap(
		fyne.NewSize(FormMinWidth, form.MinSize().Height), form))
}

func (rv *ResetPasswordView) onSubmitClick() {
	if !rv.emailChecked {
		if !validate.Email(rv.emailEntry.Text) {
			rv.ShowError(rv.localization.GetText(KeyEmailNotFound))
			return
		}
		if rv.onCheckEmail != nil {
			rv.onCheckEmail(rv.emailEntry.Text)
		}
		return
	}

	form := validate.PasswordReset{
		Email:           rv.emailEntry.Text,
		Password:        rv.passwordEntry.Text,
		ConfirmPassword: rv.confirmEntry.Text,
	}
	if errs := validate.CheckPasswordReset(form); len(errs) > 0 {
		rv.ShowError(errs[0].Message)
		return
	}

	if rv.onReset != nil {
		rv.onReset(form.Email, form.Password)
	}
}

// CreateRenderer creates the widget renderer
func (rv *ResetPasswordView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(rv.content)
}
