package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Paoox/redsocial-desktop/internal/api"
	"github.com/Paoox/redsocial-desktop/internal/feed"
	"github.com/Paoox/redsocial-desktop/internal/model"
)

// FeedView renders the timeline with its load states. The feed service
// owns the data; the view only draws whatever the service holds.
type FeedView struct {
	widget.BaseWidget

	svc          *feed.Service
	localization *Localization
	origin       string
	viewerID     int64
	searchTerm   string

	compose     *ComposeBox
	postList    *fyne.Container
	usersHeader *widget.Label
	userList    *fyne.Container
	statusLabel *widget.Label
	retryBtn    *widget.Button
	spinner     *widget.ProgressBarInfinite

	content *fyne.Container

	// Callbacks
	onLike      func(postID int64)
	onReact     func(postID int64)
	onEdit      func(postID int64, newContent string)
	onDelete    func(postID int64)
	onAuthorTap func(userID int64)
	onRetry     func()
}

// NewFeedView creates the feed view.
func NewFeedView(window fyne.Window, svc *feed.Service, origin string, localization *Localization) *FeedView {
	fv := &FeedView{
		svc:          svc,
		localization: localization,
		origin:       origin,
	}
	fv.ExtendBaseWidget(fv)

	fv.compose = NewComposeBox(window, localization)

	fv.postList = container.NewVBox()

	fv.usersHeader = widget.NewLabel(localization.GetText(KeyUsersSection))
	fv.usersHeader.TextStyle = fyne.TextStyle{Bold: true}
	fv.usersHeader.Hide()

	fv.userList = container.NewVBox()

	fv.statusLabel = widget.NewLabel("")
	fv.statusLabel.Alignment = fyne.TextAlignCenter
	fv.statusLabel.Hide()

	fv.spinner = widget.NewProgressBarInfinite()
	fv.spinner.Hide()

	fv.retryBtn = widget.NewButton(IconRetry+" "+localization.GetText(KeyRetry), func() {
		if fv.onRetry != nil {
			fv.onRetry()
		}
	})
	fv.retryBtn.Hide()

	statusArea := container.NewVBox(fv.spinner, fv.statusLabel, container.NewCenter(fv.retryBtn))

	fv.content = container.NewBorder(
		fv.compose, // top
		nil, nil, nil,
		container.NewVScroll(container.NewVBox(
			statusArea, fv.postList,
			fv.usersHeader, fv.userList,
		)),
	)

	return fv
}

// Compose returns the embedded compose box so the root can wire publishing.
func (fv *FeedView) Compose() *ComposeBox {
	return fv.compose
}

// SetCallbacks sets the post action callbacks and the retry handler.
func (fv *FeedView) SetCallbacks(
	onLike func(postID int64),
	onReact func(postID int64),
	onEdit func(postID int64, newContent string),
	onDelete func(postID int64),
	onAuthorTap func(userID int64),
	onRetry func(),
) {
	fv.onLike = onLike
	fv.onReact = onReact
	fv.onEdit = onEdit
	fv.onDelete = onDelete
	fv.onAuthorTap = onAuthorTap
	fv.onRetry = onRetry
}

// SetViewer updates which user the action buttons are gated on.
func (fv *FeedView) SetViewer(viewerID int64) {
	fv.viewerID = viewerID
	if viewerID == 0 {
		fv.compose.Hide()
	} else {
		fv.compose.Show()
	}
	fv.Rebuild()
}

// SetUsers renders the community members section below the timeline.
// Must run on the UI thread.
func (fv *FeedView) SetUsers(users []model.User) {
	fv.userList.RemoveAll()

	if len(users) == 0 {
		fv.usersHeader.Hide()
		fv.Refresh()
		return
	}

	fv.usersHeader.Show()
	for _, user := range users {
		fv.userList.Add(fv.newUserRow(user))
	}
	fv.Refresh()
}

// newUserRow builds one tappable row of the users section.
func (fv *FeedView) newUserRow(user model.User) fyne.CanvasObject {
	avatar := newAvatarImage(user.AvatarSource(fv.origin), AvatarSizeMedium)

	nameLabel := widget.NewLabel(user.Name + MiddleDotSeparator + user.Handle())
	nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	nameLabel.Truncation = fyne.TextTruncateEllipsis

	registered := user.RegisteredShort()
	if registered == "" {
		registered = DashPlaceholder
	}
	metaLabel := widget.NewLabel(fmt.Sprintf("%s: %d%s%s",
		fv.localization.GetText(KeyViews), user.Views, MiddleDotSeparator, registered))
	metaLabel.Importance = widget.LowImportance

	userID := user.ID
	openBtn := widget.NewButton("", func() {
		if fv.onAuthorTap != nil {
			fv.onAuthorTap(userID)
		}
	})
	openBtn.Importance = widget.LowImportance

	return container.NewBorder(nil, nil, avatar, metaLabel,
		container.NewStack(nameLabel, openBtn))
}

// SetSearchTerm filters the rendered posts. Must be followed by Rebuild
// via the caller's update path; it rebuilds directly for convenience.
func (fv *FeedView) SetSearchTerm(term string) {
	fv.searchTerm = term
	fv.Rebuild()
}

// Rebuild re-renders the view from the feed service state. Must run on
// the UI thread.
func (fv *FeedView) Rebuild() {
	fv.postList.RemoveAll()

	switch fv.svc.State() {
	case model.LoadStateLoading:
		fv.spinner.Show()
		fv.statusLabel.SetText(fv.localization.GetText(KeyLoadingFeed))
		fv.statusLabel.Show()
		fv.retryBtn.Hide()

	case model.LoadStateFailed:
		fv.spinner.Hide()
		fv.statusLabel.SetText(fv.localization.GetText(KeyFeedFailed) + ": " +
			api.Message(fv.svc.LastError(), fv.localization.GetText(KeyGenericError)))
		fv.statusLabel.Show()
		fv.retryBtn.Show()

	case model.LoadStateLoaded:
		fv.spinner.Hide()
		fv.retryBtn.Hide()

		posts := fv.svc.Filter(fv.searchTerm)
		if len(posts) == 0 {
			if fv.searchTerm != "" {
				fv.statusLabel.SetText(fv.localization.GetText(KeyNoResults))
			} else {
				fv.statusLabel.SetText(fv.localization.GetText(KeyFeedEmpty))
			}
			fv.statusLabel.Show()
		} else {
			fv.statusLabel.Hide()
			for _, post := range posts {
				card := NewPostCard(post, fv.viewerID, fv.origin, fv.localization)
				card.SetCallbacks(fv.onLike, fv.onReact, fv.onEdit, fv.onDelete, fv.onAuthorTap)
				fv.postList.Add(card)
			}
		}

	default:
		fv.spinner.Hide()
		fv.statusLabel.Hide()
		fv.retryBtn.Hide()
	}

	fv.Refresh()
}

// CreateRenderer creates the widget renderer
func (fv *FeedView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(fv.content)
}
