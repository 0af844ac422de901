package main

import (
	"fmt"
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

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.paoox.redsocial-desktop"
	AppName = "Red Social"

	WindowWidth  = 960
	WindowHeight = 680
)

func main() {
	// A .env file can point development builds at a local backend
	_ = godotenv.Load()

	logx.Init(os.Getenv("REDSOCIAL_ENV") != "production")
	logx.Info("starting", "version", version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	client := api.New(settings.GetBackendURL(), settings.GetRequestTimeout())
	sessions := session.NewStore(myApp.Preferences())
	feedSvc := feed.NewService(client)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, client, sessions, feedSvc)

	// Show and run
	myWindow.ShowAndRun()
}
