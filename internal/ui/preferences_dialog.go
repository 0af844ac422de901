package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Paoox/redsocial-desktop/internal/config"
)

// PreferencesDialog represents the application preferences dialog
type PreferencesDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	backendURLEntry *widget.Entry
	timeoutEntry    *widget.Entry
	languageSelect  *widget.Select
	shuffleCheck    *widget.Check
	confirmCheck    *widget.Check
}

// NewPreferencesDialog creates a new preferences dialog
func NewPreferencesDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *PreferencesDialog {
	pd := &PreferencesDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	pd.createUI()
	return pd
}

// Show displays the preferences dialog
func (pd *PreferencesDialog) Show() {
	pd.loadCurrentSettings()
	pd.dialog.Show()
}

// createUI creates the preferences dialog UI
func (pd *PreferencesDialog) createUI() {
	pd.backendURLEntry = widget.NewEntry()
	pd.backendURLEntry.SetPlaceHolder(config.DefaultBackendURL)

	pd.timeoutEntry = widget.NewEntry()
	pd.timeoutEntry.SetPlaceHolder("5-60")

	languageOptions := []string{}
	for code := range pd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	pd.languageSelect = widget.NewSelect(languageOptions, nil)
	pd.languageSelect.PlaceHolder = "Select language"

	pd.shuffleCheck = widget.NewCheck(pd.localization.GetText(KeyShuffleFeed), nil)
	pd.confirmCheck = widget.NewCheck(pd.localization.GetText(KeyConfirmBeforeDelete), nil)

	form := container.NewVBox(
		widget.NewLabel(pd.localization.GetText(KeyBackendURL)+":"),
		pd.backendURLEntry,

		widget.NewLabel(pd.localization.GetText(KeyRequestTimeout)+":"),
		pd.timeoutEntry,

		widget.NewSeparator(),

		widget.NewLabel(pd.localization.GetText(KeyLanguage)+":"),
		pd.languageSelect,

		pd.shuffleCheck,
		pd.confirmCheck,
	)

	pd.dialog = dialog.NewCustomConfirm(
		pd.localization.GetText(KeyPreferences),
		pd.localization.GetText(KeySave),
		pd.localization.GetText(KeyCancel),
		form,
		pd.onSave,
		pd.window,
	)

	pd.dialog.Resize(fyne.NewSize(PreferencesDialogWidth, PreferencesDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (pd *PreferencesDialog) loadCurrentSettings() {
	pd.backendURLEntry.SetText(pd.settings.GetBackendURL())
	pd.timeoutEntry.SetText(strconv.Itoa(int(pd.settings.GetRequestTimeout().Seconds())))
	pd.languageSelect.SetSelected(pd.settings.GetLanguage())
	pd.shuffleCheck.SetChecked(pd.settings.GetFeedShuffle())
	pd.confirmCheck.SetChecked(pd.settings.GetConfirmBeforeDelete())
}

// onSave handles saving the preferences
func (pd *PreferencesDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if pd.backendURLEntry.Text != "" {
		pd.settings.SetBackendURL(pd.backendURLEntry.Text)
	}

	if pd.timeoutEntry.Text != "" {
		if secs, err := strconv.Atoi(pd.timeoutEntry.Text); err == nil {
			pd.settings.SetRequestTimeoutSec(secs)
		}
	}

	if pd.languageSelect.Selected != "" {
		pd.settings.SetLanguage(pd.languageSelect.Selected)
	}

	pd.settings.SetFeedShuffle(pd.shuffleCheck.Checked)
	pd.settings.SetConfirmBeforeDelete(pd.confirmCheck.Checked)

	dialog.ShowInformation(
		pd.localization.GetText(KeyPreferences),
		pd.localization.GetText(KeySettingsSaved),
		pd.window,
	)

	if pd.onSaved != nil {
		pd.onSaved()
	}
}
