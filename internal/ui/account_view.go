package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Paoox/redsocial-desktop/internal/logx"
	"github.com/Paoox/redsocial-desktop/internal/model"
	"github.com/Paoox/redsocial-desktop/internal/platform"
	"github.com/Paoox/redsocial-desktop/internal/validate"
)

// AccountView is the account configuration screen: profile fields,
// avatar upload, password change, and account deletion.
type AccountView struct {
	widget.BaseWidget

	window       fyne.Window
	localization *Localization
	origin       string
	user         model.User

	avatar        *canvas.Image
	nameEntry     *widget.Entry
	nicknameEntry *widget.Entry
	emailEntry    *widget.Entry
	phoneEntry    *widget.Entry
	descEntry     *widget.Entry
	passwordEntry *widget.Entry

	saveBtn    *widget.Button
	deleteBtn  *widget.Button
	errorLabel *widget.Label
	infoLabel  *widget.Label

	content *fyne.Container

	// Callbacks
	onSave         func(upd model.ProfileUpdate)
	onUploadAvatar func(fileName string, data []byte)
	onDelete       func()
}

// NewAccountView creates the account settings view.
func NewAccountView(window fyne.Window, origin string, localization *Localization) *AccountView {
	av := &AccountView{
		window:       window,
		localization: localization,
		origin:       origin,
	}
	av.ExtendBaseWidget(av)
	av.createUI()
	return av
}

// SetCallbacks sets the view callbacks.
func (av *AccountView) SetCallbacks(onSave func(upd model.ProfileUpdate), onUploadAvatar func(fileName string, data []byte), onDelete func()) {
	av.onSave = onSave
	av.onUploadAvatar = onUploadAvatar
	av.onDelete = onDelete
}

// SetUser loads the user's current data into the form.
func (av *AccountView) SetUser(user model.User) {
	av.user = user
	av.nameEntry.SetText(user.Name)
	av.nicknameEntry.SetText(user.Nickname)
	av.emailEntry.SetText(user.Email)
	av.phoneEntry.SetText(user.Phone)
	av.descEntry.SetText(user.Description)
	av.passwordEntry.SetText("")
	av.errorLabel.Hide()
	av.infoLabel.Hide()
	loadRemoteImage(user.AvatarSource(av.origin), av.avatar)
	av.Refresh()
}

// ShowError displays an error banner.
func (av *AccountView) ShowError(message string) {
	av.infoLabel.Hide()
	av.errorLabel.SetText(message)
	av.errorLabel.Show()
	av.Refresh()
}

// ShowInfo displays a success banner.
func (av *AccountView) ShowInfo(message string) {
	av.errorLabel.Hide()
	av.infoLabel.SetText(message)
	av.infoLabel.Show()
	av.Refresh()
}

// SetBusy disables the mutating buttons while a request is in flight.
func (av *AccountView) SetBusy(busy bool) {
	if busy {
		av.saveBtn.Disable()
		av.deleteBtn.Disable()
	} else {
		av.saveBtn.Enable()
		av.deleteBtn.Enable()
	}
}

func (av *AccountView) createUI() {
	av.avatar = canvas.NewImageFromResource(nil)
	av.avatar.FillMode = canvas.ImageFillContain
	av.avatar.SetMinSize(fyne.NewSize(AvatarSizeLarge, AvatarSizeLarge))

	uploadBtn := widget.NewButton(av.localization.GetText(KeyUploadAvatar), av.onUploadClick)

	av.nameEntry = widget.NewEntry()
	av.nameEntry.SetPlaceHolder(av.localization.GetText(KeyName))

	av.nicknameEntry = widget.NewEntry()
	av.nicknameEntry.SetPlaceHolder(av.localization.GetText(KeyNickname))

	av.emailEntry = widget.NewEntry()
	av.emailEntry.SetPlaceHolder(av.localization.GetText(KeyEmail))

	av.phoneEntry = widget.NewEntry()
	av.phoneEntry.SetPlaceHolder(av.localization.GetText(KeyPhone))

	av.descEntry = widget.NewMultiLineEntry()
	av.descEntry.SetPlaceHolder(av.localization.GetText(KeyDescription))
	av.descEntry.Wrapping = fyne.TextWrapWord

	av.passwordEntry = widget.NewPasswordEntry()
	av.passwordEntry.SetPlaceHolder(av.localization.GetText(KeyNewPassword))

	av.errorLabel = widget.NewLabel("")
	av.errorLabel.Importance = widget.DangerImportance
	av.errorLabel.Wrapping = fyne.TextWrapWord
	av.errorLabel.Hide()

	av.infoLabel = widget.NewLabel("")
	av.infoLabel.Importance = widget.SuccessImportance
	av.infoLabel.Hide()

	av.saveBtn = widget.NewButton(av.localization.GetText(KeySaveChanges), av.onSaveClick)
	av.saveBtn.Importance = widget.HighImportance

	av.deleteBtn = widget.NewButton(IconDelete+" "+av.localization.GetText(KeyDeleteAccount), func() {
		if av.onDelete != nil {
			av.onDelete()
		}
	})
	av.deleteBtn.Importance = widget.DangerImportance

	title := widget.NewLabel(av.localization.GetText(KeyAccount))
	title.TextStyle = fyne.TextStyle{Bold: true}

	form := container.NewVBox(
		title,
		av.errorLabel,
		av.infoLabel,
		container.NewHBox(av.avatar, uploadBtn),
		av.nameEntry,
		av.nicknameEntry,
		av.emailEntry,
		av.phoneEntry,
		av.descEntry,
		av.passwordEntry,
		av.saveBtn,
		widget.NewSeparator(),
		av.deleteBtn,
	)

	av.content = container.NewPadded(form)
}

// onUploadClick opens the image picker and hands the file to the upload
// callback.
func (av *AccountView) onUploadClick() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		name := reader.URI().Name()
		data, err := platform.ReadImage(name, reader)
		if err != nil {
			logx.Warn("avatar upload rejected", "file", name)
			dialog.ShowError(err, av.window)
			return
		}

		if av.onUploadAvatar != nil {
			av.onUploadAvatar(name, data)
		}
	}, av.window)
}

// onSaveClick validates the form and hands the update to the callback.
func (av *AccountView) onSaveClick() {
	av.errorLabel.Hide()
	av.infoLabel.Hide()

	form := validate.Registration{
		Name:            av.nameEntry.Text,
		Nickname:        av.nicknameEntry.Text,
		Email:           av.emailEntry.Text,
		Password:        av.passwordEntry.Text,
		ConfirmPassword: av.passwordEntry.Text,
		Phone:           av.phoneEntry.Text,
	}
	errs := validate.CheckRegistration(form)
	if av.passwordEntry.Text == "" {
		// No password change requested, drop the password errors
		var kept []validate.FieldError
		for _, e := range errs {
			if e.Field != "password" && e.Field != "confirmPassword" {
				kept = append(kept, e)
			}
		}
		errs = kept
	}
	if len(errs) > 0 {
		av.ShowError(errs[0].Message)
		return
	}

	upd := model.ProfileUpdate{
		Name:        av.nameEntry.Text,
		Nickname:    av.nicknameEntry.Text,
		Email:       av.emailEntry.Text,
		Phone:       av.phoneEntry.Text,
		Description: av.descEntry.Text,
		AvatarURL:   av.user.AvatarURL,
		Password:    model.EffectivePassword(av.passwordEntry.Text),
	}

	if av.onSave != nil {
		av.onSave(upd)
	}
}

// CreateRenderer creates the widget renderer
func (av *AccountView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVScroll(av.content))
}
