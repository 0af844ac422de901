package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Paoox/redsocial-desktop/internal/api"
	"github.com/Paoox/redsocial-desktop/internal/feed"
	"github.com/Paoox/redsocial-desktop/internal/model"
)

// ProfileView shows a user's header card and their posts. When the
// profile belongs to the viewer a compose box is included.
type ProfileView struct {
	widget.BaseWidget

	svc          *feed.Service
	localization *Localization
	origin       string
	viewerID     int64
	user         model.User

	nameLabel   *widget.Label
	handleLabel *widget.Label
	descLabel   *widget.Label
	statsLabel  *widget.Label

	compose     *ComposeBox
	postList    *fyne.Container
	statusLabel *widget.Label
	retryBtn    *widget.Button
	spinner     *widget.ProgressBarInfinite

	header  *fyne.Container
	content *fyne.Container

	// Callbacks
	onLike   func(postID int64)
	onReact  func(postID int64)
	onEdit   func(postID int64, newContent string)
	onDelete func(postID int64)
	onRetry  func()
}

// NewProfileView creates the profile view.
func NewProfileView(window fyne.Window, svc *feed.Service, origin string, localization *Localization) *ProfileView {
	pv := &ProfileView{
		svc:          svc,
		localization: localization,
		origin:       origin,
	}
	pv.ExtendBaseWidget(pv)

	pv.nameLabel = widget.NewLabel("")
	pv.nameLabel.TextStyle = fyne.TextStyle{Bold: true}

	pv.handleLabel = widget.NewLabel("")
	pv.handleLabel.Importance = widget.LowImportance

	pv.descLabel = widget.NewLabel("")
	pv.descLabel.Wrapping = fyne.TextWrapWord

	pv.statsLabel = widget.NewLabel("")
	pv.statsLabel.Importance = widget.LowImportance

	pv.compose = NewComposeBox(window, localization)
	pv.compose.Hide()

	pv.postList = container.NewVBox()

	pv.statusLabel = widget.NewLabel("")
	pv.statusLabel.Alignment = fyne.TextAlignCenter
	pv.statusLabel.Hide()

	pv.spinner = widget.NewProgressBarInfinite()
	pv.spinner.Hide()

	pv.retryBtn = widget.NewButton(IconRetry+" "+localization.GetText(KeyRetry), func() {
		if pv.onRetry != nil {
			pv.onRetry()
		}
	})
	pv.retryBtn.Hide()

	pv.header = container.NewVBox()

	statusArea := container.NewVBox(pv.spinner, pv.statusLabel, container.NewCenter(pv.retryBtn))

	pv.content = container.NewVBox(
		pv.header,
		widget.NewSeparator(),
		pv.compose,
		statusArea,
		pv.postList,
	)

	return pv
}

// Compose returns the embedded compose box so the root can wire publishing.
func (pv *ProfileView) Compose() *ComposeBox {
	return pv.compose
}

// SetCallbacks sets the post action callbacks and the retry handler.
func (pv *ProfileView) SetCallbacks(
	onLike func(postID int64),
	onReact func(postID int64),
	onEdit func(postID int64, newContent string),
	onDelete func(postID int64),
	onRetry func(),
) {
	pv.onLike = onLike
	pv.onReact = onReact
	pv.onEdit = onEdit
	pv.onDelete = onDelete
	pv.onRetry = onRetry
}

// SetViewer updates which user the action buttons are gated on.
func (pv *ProfileView) SetViewer(viewerID int64) {
	pv.viewerID = viewerID
}

// SetUser sets whose profile is displayed and rebuilds the header.
func (pv *ProfileView) SetUser(user model.User) {
	pv.user = user

	pv.nameLabel.SetText(user.Name)
	pv.handleLabel.SetText(user.Handle())
	pv.descLabel.SetText(user.Description)

	pv.header.RemoveAll()
	avatar := newAvatarImage(user.AvatarSource(pv.origin), AvatarSizeLarge)
	pv.header.Add(container.NewBorder(nil, nil, avatar, nil,
		container.NewVBox(pv.nameLabel, pv.handleLabel, pv.descLabel, pv.statsLabel)))

	if user.ID == pv.viewerID && pv.viewerID != 0 {
		pv.compose.Show()
	} else {
		pv.compose.Hide()
	}

	pv.Rebuild()
}

// User returns the currently displayed user.
func (pv *ProfileView) User() model.User {
	return pv.user
}

// Rebuild re-renders the post list from the feed service state. Must
// run on the UI thread.
func (pv *ProfileView) Rebuild() {
	pv.postList.RemoveAll()

	switch pv.svc.State() {
	case model.LoadStateLoading:
		pv.spinner.Show()
		pv.statusLabel.SetText(pv.localization.GetText(KeyLoadingFeed))
		pv.statusLabel.Show()
		pv.retryBtn.Hide()

	case model.LoadStateFailed:
		pv.spinner.Hide()
		pv.statusLabel.SetText(pv.localization.GetText(KeyFeedFailed) + ": " +
			api.Message(pv.svc.LastError(), pv.localization.GetText(KeyGenericError)))
		pv.statusLabel.Show()
		pv.retryBtn.Show()

	case model.LoadStateLoaded:
		pv.spinner.Hide()
		pv.retryBtn.Hide()

		posts := pv.svc.Posts()
		if len(posts) == 0 {
			pv.statusLabel.SetText(pv.localization.GetText(KeyFeedEmpty))
			pv.statusLabel.Show()
		} else {
			pv.statusLabel.Hide()
			for _, post := range posts {
				card := NewPostCard(post, pv.viewerID, pv.origin, pv.localization)
				card.SetCallbacks(pv.onLike, pv.onReact, pv.onEdit, pv.onDelete, nil)
				pv.postList.Add(card)
			}
		}
		pv.updateStats(len(posts))

	default:
		pv.spinner.Hide()
		pv.statusLabel.Hide()
		pv.retryBtn.Hide()
	}

	pv.Refresh()
}

// updateStats refreshes the views/posts/member-since line.
func (pv *ProfileView) updateStats(postCount int) {
	parts := fmt.Sprintf("%s: %s%s%s: %s",
		pv.localization.GetText(KeyViews), strconv.Itoa(pv.user.Views),
		MiddleDotSeparator,
		pv.localization.GetText(KeyPosts), strconv.Itoa(postCount),
	)
	if since := pv.user.MemberSince(); since != "" {
		parts += MiddleDotSeparator + pv.localization.GetText(KeyMemberSince) + ": " + since
	}
	pv.statsLabel.SetText(parts)
}

// CreateRenderer creates the widget renderer
func (pv *ProfileView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewVScroll(pv.content))
}
