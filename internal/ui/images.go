package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/Paoox/redsocial-desktop/internal/logx"
)

// loadRemoteImage fetches url in the background and swaps the fetched
// resource into img on the UI thread. An empty url leaves img untouched.
func loadRemoteImage(url string, img *canvas.Image) {
	if url == "" || img == nil {
		return
	}

	go func() {
		res, err := fyne.LoadResourceFromURLString(url)
		if err != nil {
			logx.Debug("image load failed", "url", url)
			return
		}

		fyne.Do(func() {
			img.Resource = res
			img.Refresh()
		})
	}()
}

// newAvatarImage builds a square image placeholder sized for avatars and
// starts loading the remote picture.
func newAvatarImage(url string, size float32) *canvas.Image {
	img := canvas.NewImageFromResource(nil)
	img.FillMode = canvas.ImageFillContain
	img.SetMinSize(fyne.NewSize(size, size))
	loadRemoteImage(url, img)
	return img
}
