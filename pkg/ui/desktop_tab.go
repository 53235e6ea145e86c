package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pylauncher/pkg/core"
	"pylauncher/pkg/launch"
)

// buildDesktopTab assembles the menu-integration tab: the saved-apps
// list on the left, icon options on the right, and its own console.
func (la *LauncherApp) buildDesktopTab() fyne.CanvasObject {
	la.desktopList = la.newAppList(func(i int) { la.selectedDesktop = i })

	bgEntry := widget.NewEntry()
	bgEntry.SetText("#4285f4")
	fgEntry := widget.NewEntry()
	fgEntry.SetText("#ffffff")
	boldCheck := widget.NewCheck("Bold initials", nil)
	gradientCheck := widget.NewCheck("Gradient background", nil)

	customEntry := widget.NewEntry()
	customEntry.SetPlaceHolder("/path/to/icon.png")
	customRow := container.NewBorder(nil, nil, nil,
		widget.NewButton("Browse", func() { la.browseFile(customEntry) }),
		customEntry)

	systemEntry := widget.NewEntry()
	systemEntry.SetPlaceHolder(launch.DefaultIconName)

	categoriesEntry := widget.NewEntry()
	categoriesEntry.SetText("Development")
	terminalCheck := widget.NewCheck("Run in terminal", nil)

	generatedForm := widget.NewForm(
		widget.NewFormItem("Background", bgEntry),
		widget.NewFormItem("Text", fgEntry),
	)
	generatedPanel := container.NewVBox(generatedForm, boldCheck, gradientCheck)
	customPanel := widget.NewForm(widget.NewFormItem("Icon file", customRow))
	systemPanel := widget.NewForm(widget.NewFormItem("Icon name", systemEntry))

	customPanel.Hide()
	systemPanel.Hide()

	source := launch.SourceGenerate
	sourceRadio := widget.NewRadioGroup(
		[]string{"Generate icon", "Custom icon file", "System icon name"},
		func(selected string) {
			generatedPanel.Hide()
			customPanel.Hide()
			systemPanel.Hide()
			switch selected {
			case "Custom icon file":
				source = launch.SourceCustom
				customPanel.Show()
			case "System icon name":
				source = launch.SourceSystem
				systemPanel.Show()
			default:
				source = launch.SourceGenerate
				generatedPanel.Show()
			}
		},
	)
	sourceRadio.SetSelected("Generate icon")

	createButton := widget.NewButtonWithIcon("Create Desktop Entry", theme.ConfirmIcon(), func() {
		la.createDesktopEntry(launch.EntryOptions{
			IconSource:     source,
			BgColor:        bgEntry.Text,
			TextColor:      fgEntry.Text,
			Bold:           boldCheck.Checked,
			Gradient:       gradientCheck.Checked,
			CustomIconPath: customEntry.Text,
			SystemIconName: systemEntry.Text,
			Categories:     categoriesEntry.Text,
			Terminal:       terminalCheck.Checked,
		})
	})
	createButton.Importance = widget.HighImportance

	removeButton := widget.NewButtonWithIcon("Remove Desktop Entry", theme.DeleteIcon(), la.removeDesktopEntry)
	openButton := widget.NewButton("Open Applications Folder", func() {
		if err := launch.OpenFolder(la.Paths.ApplicationsDir); err != nil {
			la.desktopConsole.Warnf("Could not open folder: %v", err)
		}
	})

	optionsPanel := container.NewVBox(
		widget.NewLabel("Icon"),
		sourceRadio,
		generatedPanel,
		customPanel,
		systemPanel,
		widget.NewSeparator(),
		widget.NewForm(widget.NewFormItem("Categories", categoriesEntry)),
		terminalCheck,
		container.NewHBox(createButton, removeButton),
		openButton,
	)

	split := container.NewHSplit(
		container.NewBorder(widget.NewLabel("Saved Applications"), nil, nil, nil, la.desktopList),
		optionsPanel,
	)
	split.SetOffset(0.4)

	consolePanel := container.NewBorder(
		container.NewBorder(nil, nil, widget.NewLabel("Console"),
			widget.NewButtonWithIcon("Clear", theme.ContentClearIcon(), la.desktopConsole.clear), nil),
		nil, nil, nil,
		la.desktopConsole.entry,
	)

	vsplit := container.NewVSplit(split, consolePanel)
	vsplit.SetOffset(0.65)
	return vsplit
}

func (la *LauncherApp) createDesktopEntry(opts launch.EntryOptions) {
	app, ok := la.appAt(la.selectedDesktop)
	if !ok {
		la.desktopConsole.Warnf("Select an application first")
		return
	}

	// Build off the main thread; rendering and script writes can take a
	// moment.
	go func() {
		result, err := la.Builder.Build(app, opts)
		if err != nil {
			la.desktopConsole.Errorf("Create desktop entry: %v", err)
			return
		}
		if result.Font.Builtin {
			la.desktopConsole.Warnf("No TrueType font found, used builtin bitmap font")
		}

		if err := la.Registry.Update(app.Name, func(stored *core.App) {
			stored.ActivationScript = app.ActivationScript
			stored.LauncherScript = app.LauncherScript
			stored.DesktopFile = app.DesktopFile
			stored.Icon = app.Icon
		}); err != nil {
			la.desktopConsole.Errorf("Record desktop entry: %v", err)
			return
		}

		la.Refresher.Refresh(context.Background(), la.Paths.ApplicationsDir)
	}()
}

func (la *LauncherApp) removeDesktopEntry() {
	app, ok := la.appAt(la.selectedDesktop)
	if !ok {
		la.desktopConsole.Warnf("Select an application first")
		return
	}
	if app.DesktopFile == "" {
		la.desktopConsole.Warnf("%s has no desktop entry", app.Name)
		return
	}

	dialog.ShowConfirm("Remove Desktop Entry",
		"Remove the desktop entry for "+app.Name+"?",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			path, err := la.Registry.RemoveDesktopEntry(app.Name)
			if err != nil {
				dialog.ShowError(err, la.Window)
				return
			}
			launch.RemoveIconFile(app)
			la.desktopConsole.Successf("Removed desktop file: %s", path)
			la.Refresher.Refresh(context.Background(), la.Paths.ApplicationsDir)
		}, la.Window)
}
