package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Paoox/redsocial-desktop/internal/validate"
)

// RegisterView is the sign-up form with inline per-field validation.
type RegisterView struct {
	widget.BaseWidget

	localization *Localization

	nameEntry     *widget.Entry
	nicknameEntry *widget.Entry
	emailEntry    *widget.Entry
	passwordEntry *widget.Entry
	confirmEntry  *widget.Entry
	phoneEntry    *widget.Entry

	fieldErrors map[string]*widget.Label
	errorLabel  *widget.Label
	registerBtn *widget.Button

	content *fyne.Container

	// Callbacks
	onRegister  func(form validate.Registration)
	onShowLogin func()
}

// NewRegisterView creates the registration form.
func NewRegisterView(localization *Localization) *RegisterView {
	rv := &RegisterView{
		localization: localization,
		fieldErrors:  make(map[string]*widget.Label),
	}
	rv.ExtendBaseWidget(rv)
	rv.createUI()
	return rv
}

// SetCallbacks sets the form callbacks.
func (rv *RegisterView) SetCallbacks(onRegister func(form validate.Registration), onShowLogin func()) {
	rv.onRegister = onRegister
	rv.onShowLogin = onShowLogin
}

// ShowFieldError marks one field with an error message, used for
// duplicate email/nickname responses from the backend.
func (rv *RegisterView) ShowFieldError(field, message string) {
	if label, ok := rv.fieldErrors[field]; ok {
		label.SetText(message)
		label.Show()
		rv.Refresh()
	}
}

// ShowError displays a form-wide error banner.
func (rv *RegisterView) ShowError(message string) {
	rv.errorLabel.SetText(message)
	rv.errorLabel.Show()
	rv.Refresh()
}

// Clear resets the form.
func (rv *RegisterView) Clear() {
	for _, entry := range []*widget.Entry{
		rv.nameEntry, rv.nicknameEntry, rv.emailEntry,
		rv.passwordEntry, rv.confirmEntry, rv.phoneEntry,
	} {
		entry.SetText("")
	}
	rv.clearErrors()
	rv.SetBusy(false)
	rv.Refresh()
}

// SetBusy disables the submit button while a request is in flight.
func (rv *RegisterView) SetBusy(busy bool) {
	if busy {
		rv.registerBtn.Disable()
	} else {
		rv.registerBtn.Enable()
	}
}

func (rv *RegisterView) createUI() {
	rv.nameEntry = widget.NewEntry()
	rv.nameEntry.SetPlaceHolder(rv.localization.GetText(KeyName))

	rv.nicknameEntry = widget.NewEntry()
	rv.nicknameEntry.SetPlaceHolder(rv.localization.GetText(KeyNickname))

	rv.emailEntry = widget.NewEntry()
	rv.emailEntry.SetPlaceHolder(rv.localization.GetText(KeyEmail))

	rv.passwordEntry = widget.NewPasswordEntry()
	rv.passwordEntry.SetPlaceHolder(rv.localization.GetText(KeyPassword))

	rv.confirmEntry = widget.NewPasswordEntry()
	rv.confirmEntry.SetPlaceHolder(rv.localization.GetText(KeyConfirmPassword))

	rv.phoneEntry = widget.NewEntry()
	rv.phoneEntry.SetPlaceHolder(rv.localization.GetText(KeyPhone))

	rv.errorLabel = widget.NewLabel("")
	rv.errorLabel.Importance = widget.DangerImportance
	rv.errorLabel.Wrapping = fyne.TextWrapWord
	rv.errorLabel.Hide()

	rv.registerBtn = widget.NewButton(rv.localization.GetText(KeyRegister), rv.onRegisterClick)
	rv.registerBtn.Importance = widget.HighImportance

	loginLink := widget.NewButton(rv.localization.GetText(KeyAlreadyRegistered), func() {
		if rv.onShowLogin != nil {
			rv.onShowLogin()
		}
	})
	loginLink.Importance = widget.LowImportance

	title := widget.NewLabel(rv.localization.GetText(KeyRegister))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	form := container.NewVBox(title, rv.errorLabel)
	fields := []struct {
		name  string
		entry *widget.Entry
	}{
		{"name", rv.nameEntry},
		{"nickname", rv.nicknameEntry},
		{"email", rv.emailEntry},
		{"password", rv.passwordEntry},
		{"confirmPassword", rv.confirmEntry},
		{"phone", rv.phoneEntry},
	}
	for _, field := range fields {
		errLabel := widget.NewLabel("")
		errLabel.Importance = widget.DangerImportance
		errLabel.Hide()
		rv.fieldErrors[field.name] = errLabel

		form.Add(field.entry)
		form.Add(errLabel)
	}

	form.Add(rv.registerBtn)
	form.Add(widget.NewSeparator())
	form.Add(loginLink)

	rv.content = container.NewCenter(container.NewGridWrap(
		fyne.NewSize(FormMinWidth, form.MinSize().Height), form))
}

// onRegisterClick validates the form locally before handing it to the
// callback. Backend-side duplicates come back via ShowFieldError.
func (rv *RegisterView) onRegisterClick() {
	rv.clearErrors()

	form := validate.Registration{
		Name:            rv.nameEntry.Text,
		Nickname:        rv.nicknameEntry.Text,
		Email:           rv.emailEntry.Text,
		Password:        rv.passwordEntry.Text,
		ConfirmPassword: rv.confirmEntry.Text,
		Phone:           rv.phoneEntry.Text,
	}

	if errs := validate.CheckRegistration(form); len(errs) > 0 {
		for field, message := range validate.ByField(errs) {
			rv.ShowFieldError(field, message)
		}
		return
	}

	if rv.onRegister != nil {
		rv.onRegister(form)
	}
}

func (rv *RegisterView) clearErrors() {
	rv.errorLabel.Hide()
	for _, label := range rv.fieldErrors {
		label.SetText("")
		label.Hide()
	}
}

// CreateRenderer creates the widget renderer
func (rv *RegisterView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(rv.content)
}
