package ui

import (
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pylauncher/pkg/core"
	"pylauncher/pkg/launch"
)

// buildLauncherTab assembles the app management tab: the descriptor
// form on the left, the saved-apps list with actions on the right, and
// the activity console along the bottom.
func (la *LauncherApp) buildLauncherTab() fyne.CanvasObject {
	la.nameEntry = widget.NewEntry()
	la.nameEntry.SetPlaceHolder("My Python App")

	la.venvEntry = widget.NewEntry()
	la.venvEntry.SetPlaceHolder("/path/to/venv")
	venvRow := container.NewBorder(nil, nil, nil, container.NewHBox(
		widget.NewButton("Browse", func() { la.browseFolder(la.venvEntry) }),
		widget.NewButton("Detect", la.detectVenvs),
	), la.venvEntry)

	la.scriptEntry = widget.NewEntry()
	la.scriptEntry.SetPlaceHolder("/path/to/script.py")
	scriptRow := container.NewBorder(nil, nil, nil,
		widget.NewButton("Browse", func() { la.browseFile(la.scriptEntry) }),
		la.scriptEntry)

	la.argsEntry = widget.NewEntry()
	la.argsEntry.SetPlaceHolder("--optional --arguments")

	la.workdirEntry = widget.NewEntry()
	la.workdirEntry.SetPlaceHolder("defaults to the script's directory")
	workdirRow := container.NewBorder(nil, nil, nil,
		widget.NewButton("Browse", func() { la.browseFolder(la.workdirEntry) }),
		la.workdirEntry)

	form := widget.NewForm(
		widget.NewFormItem("Name", la.nameEntry),
		widget.NewFormItem("Virtual Env", venvRow),
		widget.NewFormItem("Script", scriptRow),
		widget.NewFormItem("Arguments", la.argsEntry),
		widget.NewFormItem("Working Dir", workdirRow),
	)

	saveButton := widget.NewButtonWithIcon("Save Application", theme.DocumentSaveIcon(), la.saveApp)
	saveButton.Importance = widget.HighImportance
	clearButton := widget.NewButton("Clear Form", la.clearForm)

	formPanel := container.NewVBox(
		widget.NewLabel("Application Details"),
		form,
		container.NewHBox(saveButton, clearButton),
	)

	la.appList = la.newAppList(func(i int) { la.selectedLauncher = i })

	runButton := widget.NewButtonWithIcon("Run", theme.MediaPlayIcon(), la.runSelected)
	editButton := widget.NewButtonWithIcon("Edit", theme.DocumentCreateIcon(), la.editSelected)
	deleteButton := widget.NewButtonWithIcon("Delete", theme.DeleteIcon(), la.deleteSelected)

	listPanel := container.NewBorder(
		widget.NewLabel("Saved Applications"),
		container.NewHBox(runButton, editButton, deleteButton),
		nil, nil,
		la.appList,
	)

	split := container.NewHSplit(formPanel, listPanel)
	split.SetOffset(0.5)

	consolePanel := container.NewBorder(
		container.NewBorder(nil, nil, widget.NewLabel("Console"),
			widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), la.launcherConsole.clear), nil),
		nil, nil, nil,
		la.launcherConsole.entry,
	)

	vsplit := container.NewVSplit(split, consolePanel)
	vsplit.SetOffset(0.65)
	return vsplit
}

func (la *LauncherApp) saveApp() {
	app := core.NewApp(
		la.nameEntry.Text,
		la.venvEntry.Text,
		la.scriptEntry.Text,
		la.argsEntry.Text,
		la.workdirEntry.Text,
	)
	if err := app.ValidateForSave(); err != nil {
		dialog.ShowError(err, la.Window)
		return
	}

	// Surface suspicious inputs before generating anything.
	if _, err := core.CheckVenv(app.VenvPath); err != nil {
		la.launcherConsole.Warnf("Venv check: %v", err)
	}
	if check, err := core.CheckScript(app.ScriptPath); err != nil {
		la.launcherConsole.Warnf("Script check: %v", err)
	} else if !check.HasPySuffix {
		la.launcherConsole.Warnf("Script does not end in .py: %s", app.ScriptPath)
	}

	if err := la.Generator.GenerateScripts(app); err != nil {
		dialog.ShowError(err, la.Window)
		return
	}
	if err := la.Registry.Upsert(app); err != nil {
		dialog.ShowError(err, la.Window)
		return
	}

	la.launcherConsole.Successf("Saved application: %s", app.Name)
	la.refreshApps()
}

func (la *LauncherApp) clearForm() {
	for _, entry := range []*widget.Entry{
		la.nameEntry, la.venvEntry, la.scriptEntry, la.argsEntry, la.workdirEntry,
	} {
		entry.SetText("")
	}
}

func (la *LauncherApp) runSelected() {
	app, ok := la.appAt(la.selectedLauncher)
	if !ok {
		la.launcherConsole.Warnf("Select an application first")
		return
	}

	if err := la.Generator.EnsureScripts(app); err != nil {
		dialog.ShowError(err, la.Window)
		return
	}
	if err := la.Runner.Run(app); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			la.launcherConsole.Errorf("Cannot run %s: %v", app.Name, err)
			return
		}
		dialog.ShowError(err, la.Window)
		return
	}
	if err := la.Registry.MarkRun(app.Name); err != nil {
		la.launcherConsole.Warnf("Could not record run time: %v", err)
	}
	la.launcherConsole.Successf("Started %s", app.Name)
}

func (la *LauncherApp) editSelected() {
	app, ok := la.appAt(la.selectedLauncher)
	if !ok {
		la.launcherConsole.Warnf("Select an application first")
		return
	}
	la.nameEntry.SetText(app.Name)
	la.venvEntry.SetText(app.VenvPath)
	la.scriptEntry.SetText(app.ScriptPath)
	la.argsEntry.SetText(app.Args)
	la.workdirEntry.SetText(app.WorkDir)
	la.launcherConsole.Infof("Editing %s", app.Name)
}

func (la *LauncherApp) deleteSelected() {
	app, ok := la.appAt(la.selectedLauncher)
	if !ok {
		la.launcherConsole.Warnf("Select an application first")
		return
	}

	dialog.ShowConfirm("Delete Application",
		fmt.Sprintf("Delete %q and its generated scripts?", app.Name),
		func(confirmed bool) {
			if !confirmed {
				return
			}
			la.deleteApp(app)
		}, la.Window)
}

func (la *LauncherApp) deleteApp(app *core.App) {
	if err := launch.RemoveApp(la.Registry, app, la.launcherConsole); err != nil {
		dialog.ShowError(err, la.Window)
		return
	}
	la.selectedLauncher = -1
	la.appList.UnselectAll()
	la.refreshApps()
}

// detectVenvs scans the usual places and offers what it finds.
func (la *LauncherApp) detectVenvs() {
	venvs := core.FindVirtualEnvs()
	if len(venvs) == 0 {
		dialog.ShowInformation("Detect Virtual Environments",
			"No virtual environments found in the usual locations.", la.Window)
		return
	}

	var d dialog.Dialog
	buttons := make([]fyne.CanvasObject, 0, len(venvs))
	for _, venv := range venvs {
		path := venv
		buttons = append(buttons, widget.NewButton(path, func() {
			la.venvEntry.SetText(path)
			d.Hide()
		}))
	}
	d = dialog.NewCustom("Select Virtual Environment", "Cancel",
		container.NewVScroll(container.NewVBox(buttons...)), la.Window)
	d.Resize(fyne.NewSize(600, 400))
	d.Show()
}

func (la *LauncherApp) browseFolder(target *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, la.Window)
			return
		}
		if uri == nil {
			return // User cancelled
		}
		target.SetText(uri.Path())
	}, la.Window)
}

func (la *LauncherApp) browseFile(target *widget.Entry) {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, la.Window)
			return
		}
		if reader == nil {
			return // User cancelled
		}
		defer reader.Close()
		target.SetText(reader.URI().Path())
	}, la.Window)
}
