package ui

import (
	"bytes"
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/Paoox/redsocial-desktop/internal/api"
	"github.com/Paoox/redsocial-desktop/internal/config"
	"github.com/Paoox/redsocial-desktop/internal/feed"
	"github.com/Paoox/redsocial-desktop/internal/logx"
	"github.com/Paoox/redsocial-desktop/internal/model"
	"github.com/Paoox/redsocial-desktop/internal/session"
	"github.com/Paoox/redsocial-desktop/internal/validate"
)

// View identifies one of the switchable screens.
type View string

const (
	ViewLogin    View = "login"
	ViewRegister View = "register"
	ViewReset    View = "reset"
	ViewFeed     View = "feed"
	ViewProfile  View = "profile"
	ViewAccount  View = "account"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	client       *api.Client
	sessions     *session.Store
	feedSvc      *feed.Service

	currentView View
	currentUser model.User
	loggedIn    bool

	// Navigation bar
	searchEntry *widget.Entry
	feedBtn     *widget.Button
	profileBtn  *widget.Button
	accountBtn  *widget.Button
	logoutBtn   *widget.Button
	navBar      *fyne.Container

	// Views
	loginView    *LoginView
	registerView *RegisterView
	resetView    *ResetPasswordView
	feedView     *FeedView
	profileView  *ProfileView
	accountView  *AccountView

	content *fyne.Container

	// Per-view request lifetime; cancelled on every navigation
	viewCtx    context.Context
	viewCancel context.CancelFunc

	unsubscribe func()
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, client *api.Client, sessions *session.Store, feedSvc *feed.Service) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		client:       client,
		sessions:     sessions,
		feedSvc:      feedSvc,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	feedSvc.SetShuffle(settings.GetFeedShuffle())
	feedSvc.SetUpdateCallback(func() {
		fyne.Do(ui.onFeedUpdate)
	})

	ui.setupUI()
	ui.createMenu()

	ui.unsubscribe = sessions.Subscribe(func(s model.Session, loggedIn bool) {
		fyne.Do(func() {
			ui.onSessionChange(s, loggedIn)
		})
	})

	// Restore a previous session, otherwise land on the login form
	if s, ok := sessions.Read(); ok {
		ui.onSessionChange(s, true)
	} else {
		ui.onSessionChange(model.Session{}, false)
	}

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(IconSearch + " " + ui.localization.GetText(KeySearch))
	ui.searchEntry.OnChanged = func(term string) {
		if ui.currentView == ViewFeed {
			ui.feedView.SetSearchTerm(term)
		}
	}

	ui.feedBtn = widget.NewButton(ui.localization.GetText(KeyFeed), func() {
		ui.showFeed()
	})
	ui.profileBtn = widget.NewButton(ui.localization.GetText(KeyProfile), func() {
		ui.showProfile(ui.currentUser.ID)
	})
	ui.accountBtn = widget.NewButton(ui.localization.GetText(KeyAccount), func() {
		ui.showView(ViewAccount)
	})
	ui.logoutBtn = widget.NewButton(ui.localization.GetText(KeyLogout), ui.onLogout)
	ui.logoutBtn.Importance = widget.LowImportance

	prefsBtn := widget.NewButton(IconSettings, ui.onShowPreferences)
	prefsBtn.Importance = widget.LowImportance

	ui.navBar = container.NewBorder(nil, nil,
		container.NewHBox(ui.feedBtn, ui.profileBtn, ui.accountBtn),
		container.NewHBox(prefsBtn, ui.logoutBtn),
		ui.searchEntry,
	)

	ui.buildViews()

	ui.content = container.NewStack()

	layout := container.NewBorder(ui.navBar, nil, nil, nil, ui.content)
	ui.window.SetContent(layout)
}

// buildViews constructs all views and wires their callbacks. Called
// again when settings that affect the views change.
func (ui *RootUI) buildViews() {
	origin := ui.settings.GetBackendURL()

	ui.loginView = NewLoginView(ui.localization)
	ui.loginView.SetCallbacks(ui.onLogin,
		func() { ui.showView(ViewRegister) },
		func() { ui.showView(ViewReset) },
	)

	ui.registerView = NewRegisterView(ui.localization)
	ui.registerView.SetCallbacks(ui.onRegister, func() { ui.showView(ViewLogin) })

	ui.resetView = NewResetPasswordView(ui.localization)
	ui.resetView.SetCallbacks(ui.onCheckEmail, ui.onResetPassword, func() { ui.showView(ViewLogin) })

	ui.feedView = NewFeedView(ui.window, ui.feedSvc, origin, ui.localization)
	ui.feedView.SetCallbacks(ui.onLikePost, ui.onReactPost, ui.onEditPost, ui.onDeletePost,
		ui.showProfile, ui.retryFeed)
	ui.feedView.Compose().SetPublishCallback(ui.onPublish)

	ui.profileView = NewProfileView(ui.window, ui.feedSvc, origin, ui.localization)
	ui.profileView.SetCallbacks(ui.onLikePost, ui.onReactPost, ui.onEditPost, ui.onDeletePost,
		ui.retryProfile)
	ui.profileView.Compose().SetPublishCallback(ui.onPublish)

	ui.accountView = NewAccountView(ui.window, origin, ui.localization)
	ui.accountView.SetCallbacks(ui.onSaveProfile, ui.onUploadAvatar, ui.onDeleteAccount)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	prefsItem := fyne.NewMenuItem(ui.localization.GetText(KeyPreferences), ui.onShowPreferences)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyAppTitle), prefsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.applySettings()
	ui.createMenu()
}

// applySettings rebuilds the client and views after preferences change.
func (ui *RootUI) applySettings() {
	ui.client = api.New(ui.settings.GetBackendURL(), ui.settings.GetRequestTimeout())
	ui.feedSvc.SetLister(ui.client)
	ui.feedSvc.SetShuffle(ui.settings.GetFeedShuffle())
	ui.localization.SetLanguage(ui.settings.GetLanguage())

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.searchEntry.SetPlaceHolder(IconSearch + " " + ui.localization.GetText(KeySearch))
	ui.feedBtn.SetText(ui.localization.GetText(KeyFeed))
	ui.profileBtn.SetText(ui.localization.GetText(KeyProfile))
	ui.accountBtn.SetText(ui.localization.GetText(KeyAccount))
	ui.logoutBtn.SetText(ui.localization.GetText(KeyLogout))

	ui.buildViews()
	ui.showView(ui.currentView)
}

// onShowPreferences shows the preferences dialog
func (ui *RootUI) onShowPreferences() {
	NewPreferencesDialog(ui.settings, ui.window, ui.localization, func() {
		ui.applySettings()
		ui.createMenu()
	}).Show()
}

// onSessionChange reacts to login/logout from the session store.
func (ui *RootUI) onSessionChange(s model.Session, loggedIn bool) {
	ui.loggedIn = loggedIn
	ui.currentUser = s.User

	ui.feedView.SetViewer(s.User.ID)
	ui.profileView.SetViewer(s.User.ID)

	if loggedIn {
		logx.Info("session active", "user_id", s.User.ID)
		ui.navBar.Show()
		ui.accountView.SetUser(s.User)
		ui.showFeed()
	} else {
		ui.navBar.Hide()
		ui.loginView.Clear()
		ui.showView(ViewLogin)
	}
}

// showView swaps the visible view and cancels the previous view's
// in-flight requests.
func (ui *RootUI) showView(view View) {
	if ui.viewCancel != nil {
		ui.viewCancel()
	}
	ui.viewCtx, ui.viewCancel = context.WithCancel(context.Background())

	// Route guard: the main screens need a session
	if !ui.loggedIn {
		switch view {
		case ViewRegister, ViewReset:
		default:
			view = ViewLogin
		}
	}

	ui.currentView = view
	ui.content.RemoveAll()

	switch view {
	case ViewLogin:
		ui.content.Add(ui.loginView)
	case ViewRegister:
		ui.registerView.Clear()
		ui.content.Add(ui.registerView)
	case ViewReset:
		ui.resetView.Clear()
		ui.content.Add(ui.resetView)
	case ViewFeed:
		ui.content.Add(ui.feedView)
	case ViewProfile:
		ui.content.Add(ui.profileView)
	case ViewAccount:
		ui.accountView.SetUser(ui.currentUser)
		ui.content.Add(ui.accountView)
	}

	ui.content.Refresh()
}

// showFeed navigates to the timeline and starts loading it.
func (ui *RootUI) showFeed() {
	ui.showView(ViewFeed)
	ui.searchEntry.SetText("")
	ui.feedView.SetSearchTerm("")

	ctx := ui.viewCtx
	go ui.feedSvc.Refresh(ctx)

	go func() {
		users, err := ui.client.ListUsers(ctx)
		if err != nil {
			logx.Error(err, "user list load failed")
			return
		}
		fyne.Do(func() {
			ui.feedView.SetUsers(users)
		})
	}()
}

// showProfile navigates to a user's profile, fetching the header data
// when it is not the viewer's own.
func (ui *RootUI) showProfile(userID int64) {
	if userID == 0 {
		return
	}
	ui.showView(ViewProfile)

	ctx := ui.viewCtx
	if userID == ui.currentUser.ID {
		ui.profileView.SetUser(ui.currentUser)
	} else {
		go func() {
			user, err := ui.client.GetUser(ctx, userID)
			if err != nil {
				logx.Error(err, "profile load failed", "user_id", userID)
				return
			}
			fyne.Do(func() {
				ui.profileView.SetUser(user)
			})
		}()
	}

	go ui.feedSvc.RefreshUser(ctx, userID)
}

// retryFeed reloads the timeline after a failure.
func (ui *RootUI) retryFeed() {
	ctx := ui.viewCtx
	go ui.feedSvc.Refresh(ctx)
}

// retryProfile reloads the displayed profile's posts after a failure.
func (ui *RootUI) retryProfile() {
	ctx := ui.viewCtx
	userID := ui.profileView.User().ID
	if userID == 0 {
		return
	}
	go ui.feedSvc.RefreshUser(ctx, userID)
}

// onFeedUpdate re-renders whichever view shows posts. Runs on the UI
// thread.
func (ui *RootUI) onFeedUpdate() {
	switch ui.currentView {
	case ViewFeed:
		ui.feedView.Rebuild()
	case ViewProfile:
		ui.profileView.Rebuild()
	}
}

// Authentication handlers

// onLogin handles the login form submission.
func (ui *RootUI) onLogin(email, password string) {
	ui.loginView.SetBusy(true)
	ctx := ui.viewCtx

	go func() {
		s, err := ui.client.Login(ctx, email, password)

		fyne.Do(func() {
			ui.loginView.SetBusy(false)
			if err != nil {
				logx.Warn("login failed")
				ui.loginView.ShowError(api.Message(err, ui.localization.GetText(KeyInvalidCredentials)))
				return
			}
			if err := ui.sessions.Write(s); err != nil {
				ui.loginView.ShowError(ui.localization.GetText(KeyGenericError))
			}
		})
	}()
}

// onRegister handles the sign-up form submission.
func (ui *RootUI) onRegister(form validate.Registration) {
	ui.registerView.SetBusy(true)
	ctx := ui.viewCtx

	reg := model.NewRegistration(form.Name, form.Nickname, form.Email, form.Password, form.Phone)

	go func() {
		_, err := ui.client.Register(ctx, reg)

		fyne.Do(func() {
			ui.registerView.SetBusy(false)
			if err != nil {
				if api.IsConflict(err) {
					switch api.ConflictField(err) {
					case "email":
						ui.registerView.ShowFieldError("email", ui.localization.GetText(KeyEmailTaken))
					case "nickname":
						ui.registerView.ShowFieldError("nickname", ui.localization.GetText(KeyNicknameTaken))
					default:
						ui.registerView.ShowError(ui.localization.GetText(KeyUserExists))
					}
					return
				}
				ui.registerView.ShowError(api.Message(err, ui.localization.GetText(KeyGenericError)))
				return
			}

			ui.showView(ViewLogin)
			ui.loginView.ShowInfo(ui.localization.GetText(KeyAccountCreated))
		})
	}()
}

// onCheckEmail verifies the recovery email exists before allowing a
// password reset.
func (ui *RootUI) onCheckEmail(email string) {
	ui.resetView.SetBusy(true)
	ctx := ui.viewCtx

	go func() {
		err := ui.client.CheckEmail(ctx, email)

		fyne.Do(func() {
			ui.resetView.SetBusy(false)
			if err != nil {
				if api.IsNotFound(err) {
					ui.resetView.ShowError(ui.localization.GetText(KeyEmailNotFound))
				} else {
					ui.resetView.ShowError(api.Message(err, ui.localization.GetText(KeyGenericError)))
				}
				return
			}
			ui.resetView.EmailVerified()
		})
	}()
}

// onResetPassword submits the new password.
func (ui *RootUI) onResetPassword(email, newPassword string) {
	ui.resetView.SetBusy(true)
	ctx := ui.viewCtx

	go func() {
		err := ui.client.ResetPassword(ctx, email, newPassword)

		fyne.Do(func() {
			ui.resetView.SetBusy(false)
			if err != nil {
				ui.resetView.ShowError(api.Message(err, ui.localization.GetText(KeyGenericError)))
				return
			}

			ui.showView(ViewLogin)
			ui.loginView.ShowInfo(ui.localization.GetText(KeyPasswordUpdated))
		})
	}()
}

// onLogout clears the stored session; the subscription handles the rest.
func (ui *RootUI) onLogout() {
	ui.sessions.Clear()
}

// Post handlers

// onPublish creates a new post and prepends it to the cache.
func (ui *RootUI) onPublish(content, imageName string, image []byte) {
	ctx := ui.viewCtx
	userID := ui.currentUser.ID
	fromProfile := ui.currentView == ViewProfile

	go func() {
		var reader *bytes.Reader
		if image != nil {
			reader = bytes.NewReader(image)
		}

		var post model.Post
		var err error
		if reader != nil {
			post, err = ui.client.CreatePost(ctx, userID, content, imageName, reader)
		} else {
			post, err = ui.client.CreatePost(ctx, userID, content, "", nil)
		}
		if err != nil {
			logx.Error(err, "publish failed")
			fyne.Do(func() {
				dialog.ShowError(err, ui.window)
			})
			return
		}

		fyne.Do(func() {
			if fromProfile {
				ui.profileView.Compose().Clear()
			} else {
				ui.feedView.Compose().Clear()
			}
		})
		ui.feedSvc.Prepend(post)
	}()
}

// onLikePost sends a like and splices the updated post back in.
func (ui *RootUI) onLikePost(postID int64) {
	ctx := ui.viewCtx
	go func() {
		post, err := ui.client.LikePost(ctx, postID)
		if err != nil {
			logx.Error(err, "like failed", "post_id", postID)
			return
		}
		ui.feedSvc.ApplyUpdate(post)
	}()
}

// onReactPost sends a reaction and splices the updated post back in.
func (ui *RootUI) onReactPost(postID int64) {
	ctx := ui.viewCtx
	go func() {
		post, err := ui.client.ReactPost(ctx, postID)
		if err != nil {
			logx.Error(err, "reaction failed", "post_id", postID)
			return
		}
		ui.feedSvc.ApplyUpdate(post)
	}()
}

// onEditPost saves an in-place edit.
func (ui *RootUI) onEditPost(postID int64, newContent string) {
	ctx := ui.viewCtx
	go func() {
		post, err := ui.client.UpdatePost(ctx, postID, newContent, "", nil, false)
		if err != nil {
			logx.Error(err, "post edit failed", "post_id", postID)
			fyne.Do(func() {
				dialog.ShowError(err, ui.window)
			})
			return
		}
		ui.feedSvc.ApplyUpdate(post)
	}()
}

// onDeletePost removes a post, asking first when configured to.
func (ui *RootUI) onDeletePost(postID int64) {
	if !ui.settings.GetConfirmBeforeDelete() {
		ui.deletePost(postID)
		return
	}

	dialog.ShowConfirm(
		ui.localization.GetText(KeyDelete),
		ui.localization.GetText(KeyConfirmDeletePost),
		func(confirmed bool) {
			if confirmed {
				ui.deletePost(postID)
			}
		},
		ui.window,
	)
}

func (ui *RootUI) deletePost(postID int64) {
	ctx := ui.viewCtx
	go func() {
		if err := ui.client.DeletePost(ctx, postID); err != nil {
			logx.Error(err, "post delete failed", "post_id", postID)
			fyne.Do(func() {
				dialog.ShowError(err, ui.window)
			})
			return
		}
		ui.feedSvc.Remove(postID)
	}()
}

// Account handlers

// onSaveProfile saves the account form and refreshes the session user.
func (ui *RootUI) onSaveProfile(upd model.ProfileUpdate) {
	ui.accountView.SetBusy(true)
	ctx := ui.viewCtx
	userID := ui.currentUser.ID

	go func() {
		user, err := ui.client.UpdateUser(ctx, userID, upd)

		fyne.Do(func() {
			ui.accountView.SetBusy(false)
			if err != nil {
				if api.IsConflict(err) {
					ui.accountView.ShowError(ui.localization.GetText(KeyUserExists))
				} else {
					ui.accountView.ShowError(api.Message(err, ui.localization.GetText(KeyGenericError)))
				}
				return
			}

			ui.currentUser = user
			ui.accountView.SetUser(user)
			ui.accountView.ShowInfo(ui.localization.GetText(KeyProfileUpdated))
			if err := ui.sessions.UpdateUser(user); err != nil {
				logx.Error(err, "session user update failed")
			}
		})
	}()
}

// onUploadAvatar uploads the picked image, then persists the returned
// URL on the profile.
func (ui *RootUI) onUploadAvatar(fileName string, data []byte) {
	ui.accountView.SetBusy(true)
	ctx := ui.viewCtx
	user := ui.currentUser

	go func() {
		url, err := ui.client.UploadAvatar(ctx, user.ID, fileName, bytes.NewReader(data))
		if err != nil {
			fyne.Do(func() {
				ui.accountView.SetBusy(false)
				ui.accountView.ShowError(api.Message(err, ui.localization.GetText(KeyGenericError)))
			})
			return
		}

		upd := model.ProfileUpdate{
			Name:        user.Name,
			Nickname:    user.Nickname,
			Email:       user.Email,
			Phone:       user.Phone,
			Description: user.Description,
			AvatarURL:   url,
			Password:    model.PasswordFallback,
		}
		updated, err := ui.client.UpdateUser(ctx, user.ID, upd)

		fyne.Do(func() {
			ui.accountView.SetBusy(false)
			if err != nil {
				ui.accountView.ShowError(api.Message(err, ui.localization.GetText(KeyGenericError)))
				return
			}

			ui.currentUser = updated
			ui.accountView.SetUser(updated)
			ui.accountView.ShowInfo(ui.localization.GetText(KeyProfileUpdated))
			if err := ui.sessions.UpdateUser(updated); err != nil {
				logx.Error(err, "session user update failed")
			}
		})
	}()
}

// onDeleteAccount deletes the account after an explicit confirmation.
// Account deletion always asks, regardless of the delete preference.
func (ui *RootUI) onDeleteAccount() {
	dialog.ShowConfirm(
		ui.localization.GetText(KeyDeleteAccount),
		ui.localization.GetText(KeyConfirmDeleteAccount),
		func(confirmed bool) {
			if !confirmed {
				return
			}

			ctx := ui.viewCtx
			userID := ui.currentUser.ID
			ui.accountView.SetBusy(true)

			go func() {
				err := ui.client.DeleteUser(ctx, userID)

				fyne.Do(func() {
					ui.accountView.SetBusy(false)
					if err != nil {
						ui.accountView.ShowError(api.Message(err, ui.localization.GetText(KeyGenericError)))
						return
					}
					logx.Info("account deleted", "user_id", userID)
					ui.sessions.Clear()
				})
			}()
		},
		ui.window,
	)
}
