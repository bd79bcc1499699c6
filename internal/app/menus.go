package app

import (
	"fmt"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

func (app *Application) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Refresh Records", func() {
			app.controller.SubmitView()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			app.fyneApp.Quit()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("Operation Timings", func() {
			dialog.ShowInformation("Operation Timings", app.timings.Report(), app.window)
		}),
		fyne.NewMenuItem("About", func() {
			about := fmt.Sprintf("%s %s\nDatabase: %s (%s)\nBuilt with %s",
				AppName, AppVersion, app.store.Path(), app.store.Driver(), runtime.Version())
			dialog.ShowInformation("About", about, app.window)
		}),
	)

	app.window.SetMainMenu(fyne.NewMainMenu(fileMenu, helpMenu))
}
