package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"github.com/Paoox/redsocial-desktop/internal/api"
	"github.com/Paoox/redsocial-desktop/internal/config"
	"github.com/Paoox/redsocial-desktop/internal/feed"
	"github.com/Paoox/redsocial-desktop/internal/logx"
	"github.com/Paoox/redsocial-desktop/internal/session"
	"github.com/Paoox/redsocial-desktop/internal/ui"
)

func main() {
	_ = godotenv.Load()
	logx.Init(os.Getenv("REDSOCIAL_ENV") != "production")

	myApp := app.NewWithID("com.paoox.redsocial-desktop")
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow("Red Social")
	myWindow.Resize(fyne.NewSize(960, 680))

	settings := config.NewSettings(myApp)
	client := api.New(settings.GetBackendURL(), settings.GetRequestTimeout())
	sessions := session.NewStore(myApp.Preferences())
	feedSvc := feed.NewService(client)

	ui.NewRootUI(myWindow, myApp, client, sessions, feedSvc)

	myWindow.ShowAndRun()
}
