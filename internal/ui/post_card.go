package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/Paoox/redsocial-desktop/internal/model"
)

// PostCard renders a single post with its action row. Edit and delete
// are only offered on the viewer's own posts.
type PostCard struct {
	widget.BaseWidget

	post         model.Post
	viewerID     int64
	origin       string
	localization *Localization
	editing      bool

	// UI components
	avatar       *canvas.Image
	authorLabel  *widget.Label
	dateLabel    *widget.Label
	contentLabel *widget.Label
	postImage    *canvas.Image
	editEntry    *widget.Entry

	likeBtn   *widget.Button
	reactBtn  *widget.Button
	editBtn   *widget.Button
	deleteBtn *widget.Button
	saveBtn   *widget.Button
	cancelBtn *widget.Button

	content *fyne.Container

	// Callbacks
	onLike      func(postID int64)
	onReact     func(postID int64)
	onEdit      func(postID int64, newContent string)
	onDelete    func(postID int64)
	onAuthorTap func(userID int64)
}

// NewPostCard creates a post card for the given post. viewerID is zero
// when nobody is logged in, which hides every mutating action.
func NewPostCard(post model.Post, viewerID int64, origin string, localization *Localization) *PostCard {
	pc := &PostCard{
		post:         post,
		viewerID:     viewerID,
		origin:       origin,
		localization: localization,
	}
	pc.ExtendBaseWidget(pc)
	pc.createUI()
	pc.updateFromPost()
	return pc
}

// SetCallbacks sets the action callbacks
func (pc *PostCard) SetCallbacks(
	onLike func(postID int64),
	onReact func(postID int64),
	onEdit func(postID int64, newContent string),
	onDelete func(postID int64),
	onAuthorTap func(userID int64),
) {
	pc.onLike = onLike
	pc.onReact = onReact
	pc.onEdit = onEdit
	pc.onDelete = onDelete
	pc.onAuthorTap = onAuthorTap
}

// UpdatePost updates the card with new post data
func (pc *PostCard) UpdatePost(post model.Post) {
	pc.post = post
	pc.updateFromPost()
	pc.Refresh()
}

// createUI creates the UI components
func (pc *PostCard) createUI() {
	pc.avatar = newAvatarImage(pc.post.Author.AvatarSource(pc.origin), AvatarSizeSmall)

	pc.authorLabel = widget.NewLabel("")
	pc.authorLabel.TextStyle = fyne.TextStyle{Bold: true}
	pc.authorLabel.Truncation = fyne.TextTruncateEllipsis

	pc.dateLabel = widget.NewLabel("")
	pc.dateLabel.Importance = widget.LowImportance

	pc.contentLabel = widget.NewLabel("")
	pc.contentLabel.Wrapping = fyne.TextWrapWord

	pc.postImage = canvas.NewImageFromResource(nil)
	pc.postImage.FillMode = canvas.ImageFillContain
	pc.postImage.SetMinSize(fyne.NewSize(0, PostImageMaxHeight))
	pc.postImage.Hide()

	pc.editEntry = widget.NewMultiLineEntry()
	pc.editEntry.Wrapping = fyne.TextWrapWord
	pc.editEntry.Hide()

	pc.likeBtn = widget.NewButton("", func() {
		if pc.onLike != nil {
			pc.onLike(pc.post.ID)
		}
	})
	pc.likeBtn.Importance = widget.LowImportance

	pc.reactBtn = widget.NewButton("", func() {
		if pc.onReact != nil {
			pc.onReact(pc.post.ID)
		}
	})
	pc.reactBtn.Importance = widget.LowImportance

	pc.editBtn = widget.NewButton(IconEdit, pc.startEdit)
	pc.editBtn.Importance = widget.LowImportance

	pc.deleteBtn = widget.NewButton(IconDelete, func() {
		if pc.onDelete != nil {
			pc.onDelete(pc.post.ID)
		}
	})
	pc.deleteBtn.Importance = widget.LowImportance

	pc.saveBtn = widget.NewButton(pc.localization.GetText(KeySave), pc.finishEdit)
	pc.saveBtn.Importance = widget.HighImportance
	pc.saveBtn.Hide()

	pc.cancelBtn = widget.NewButton(pc.localization.GetText(KeyCancel), pc.cancelEdit)
	pc.cancelBtn.Hide()

	authorBtn := widget.NewButton("", func() {
		if pc.onAuthorTap != nil {
			pc.onAuthorTap(pc.post.Author.ID)
		}
	})
	authorBtn.Importance = widget.LowImportance
	// Invisible overlay so the whole header is tappable
	header := container.NewBorder(nil, nil, pc.avatar, pc.dateLabel,
		container.NewStack(pc.authorLabel, authorBtn))

	actions := container.NewHBox(
		pc.likeBtn,
		pc.reactBtn,
		pc.editBtn,
		pc.deleteBtn,
		pc.saveBtn,
		pc.cancelBtn,
	)

	pc.content = container.NewVBox(
		header,
		pc.contentLabel,
		pc.editEntry,
		pc.postImage,
		actions,
		widget.NewSeparator(),
	)
}

// updateFromPost updates UI components based on post state
func (pc *PostCard) updateFromPost() {
	author := pc.post.Author
	pc.authorLabel.SetText(author.Name + MiddleDotSeparator + author.Handle())
	pc.dateLabel.SetText(pc.post.CreatedShort())
	pc.contentLabel.SetText(pc.post.Content)

	pc.likeBtn.SetText(fmt.Sprintf(CountLabelFormat, IconLike, pc.post.Likes))
	pc.reactBtn.SetText(fmt.Sprintf(CountLabelFormat, IconReact, pc.post.Reactions))

	if src := pc.post.ImageSource(pc.origin); src != "" {
		pc.postImage.Show()
		loadRemoteImage(src, pc.postImage)
	} else {
		pc.postImage.Hide()
	}

	owned := pc.post.OwnedBy(pc.viewerID)
	if owned && !pc.editing {
		pc.editBtn.Show()
		pc.deleteBtn.Show()
	} else {
		pc.editBtn.Hide()
		pc.deleteBtn.Hide()
	}

	loggedIn := pc.viewerID != 0
	if loggedIn {
		pc.likeBtn.Enable()
		pc.reactBtn.Enable()
	} else {
		pc.likeBtn.Disable()
		pc.reactBtn.Disable()
	}
}

// startEdit swaps the content label for an entry pre-filled with the
// current text.
func (pc *PostCard) startEdit() {
	if !pc.post.OwnedBy(pc.viewerID) {
		return
	}

	pc.editing = true
	pc.editEntry.SetText(pc.post.Content)
	pc.contentLabel.Hide()
	pc.editEntry.Show()
	pc.editBtn.Hide()
	pc.deleteBtn.Hide()
	pc.saveBtn.Show()
	pc.cancelBtn.Show()
	pc.Refresh()
}

// finishEdit submits the edited text through the callback.
func (pc *PostCard) finishEdit() {
	text := pc.editEntry.Text
	pc.stopEditing()

	if text != pc.post.Content && pc.onEdit != nil {
		pc.onEdit(pc.post.ID, text)
	}
}

// cancelEdit discards the edit and restores the label.
func (pc *PostCard) cancelEdit() {
	pc.stopEditing()
}

func (pc *PostCard) stopEditing() {
	pc.editing = false
	pc.editEntry.Hide()
	pc.contentLabel.Show()
	pc.saveBtn.Hide()
	pc.cancelBtn.Hide()
	pc.updateFromPost()
	pc.Refresh()
}

// CreateRenderer creates the widget renderer
func (pc *PostCard) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(pc.content)
}
