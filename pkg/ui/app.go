package ui

import (
	"bytes"
	"fmt"
	"image/png"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"pylauncher/pkg/config"
	"pylauncher/pkg/core"
	"pylauncher/pkg/icon"
	"pylauncher/pkg/launch"
)

// LauncherApp is the desktop front end: one window with a launcher tab
// for managing and running applications and a desktop-files tab for
// menu integration.
type LauncherApp struct {
	FyneApp fyne.App
	Window  fyne.Window

	Registry  *core.Registry
	Paths     *config.Paths
	Generator *launch.Generator
	Builder   *launch.Builder
	Runner    *launch.Runner
	Refresher *launch.DatabaseRefresher

	status *widget.Label

	// Shared snapshot both tabs' lists render from.
	appNames []string

	launcherConsole *console
	desktopConsole  *console

	appList     *widget.List
	desktopList *widget.List

	selectedLauncher int
	selectedDesktop  int

	nameEntry    *widget.Entry
	venvEntry    *widget.Entry
	scriptEntry  *widget.Entry
	argsEntry    *widget.Entry
	workdirEntry *widget.Entry
}

func NewLauncherApp(registry *core.Registry, paths *config.Paths) *LauncherApp {
	a := app.NewWithID("com.github.pylauncher")
	w := a.NewWindow("Python App Launcher")
	w.Resize(fyne.NewSize(1024, 768))

	la := &LauncherApp{
		FyneApp:  a,
		Window:   w,
		Registry: registry,
		Paths:    paths,

		status:           widget.NewLabel(""),
		launcherConsole:  newConsole("Launcher activity will appear here."),
		desktopConsole:   newConsole("Desktop-file activity will appear here."),
		selectedLauncher: -1,
		selectedDesktop:  -1,
	}

	tmpl := launch.TemplateForOS(runtime.GOOS)
	la.Generator = launch.NewGenerator(paths, tmpl, la.launcherConsole)
	la.Builder = launch.NewBuilder(paths, launch.NewGenerator(paths, tmpl, la.desktopConsole), icon.NewRenderer(icon.DefaultSize), la.desktopConsole)
	la.Runner = launch.NewRunner(la.launcherConsole)
	la.Refresher = launch.NewDatabaseRefresher(la.desktopConsole)

	la.setupUI()
	la.refreshApps()

	return la
}

func (la *LauncherApp) Run() {
	la.Window.ShowAndRun()
}

func (la *LauncherApp) setupUI() {
	if res := windowIcon(); res != nil {
		la.Window.SetIcon(res)
	}

	tabs := container.NewAppTabs(
		container.NewTabItem("App Launcher", la.buildLauncherTab()),
		container.NewTabItem("Desktop Files", la.buildDesktopTab()),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	la.Window.SetContent(container.NewBorder(nil, la.status, nil, nil, tabs))
}

// refreshApps resnapshots the registry and redraws both lists.
func (la *LauncherApp) refreshApps() {
	apps := la.Registry.Apps()
	names := make([]string, 0, len(apps))
	for _, app := range apps {
		names = append(names, app.Name)
	}
	la.appNames = names

	if la.appList != nil {
		la.appList.Refresh()
	}
	if la.desktopList != nil {
		la.desktopList.Refresh()
	}
	la.setStatus(fmt.Sprintf("%d application(s)", len(names)))
}

func (la *LauncherApp) setStatus(text string) {
	la.status.SetText(text)
}

// newAppList builds a list widget over the shared name snapshot.
func (la *LauncherApp) newAppList(onSelect func(int)) *widget.List {
	list := widget.NewList(
		func() int { return len(la.appNames) },
		func() fyne.CanvasObject { return widget.NewLabel("app") },
		func(i widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(la.appNames[i])
		},
	)
	list.OnSelected = func(id widget.ListItemID) { onSelect(id) }
	return list
}

func (la *LauncherApp) appAt(index int) (*core.App, bool) {
	if index < 0 || index >= len(la.appNames) {
		return nil, false
	}
	return la.Registry.Get(la.appNames[index])
}

// windowIcon renders the launcher's own icon with the generator it
// ships, so the binary carries no image assets.
func windowIcon() fyne.Resource {
	renderer := icon.NewRenderer(128)
	img, _ := renderer.Render("Py Launcher", icon.Options{
		Background: icon.DefaultBackground,
		Text:       icon.DefaultText,
		Bold:       true,
		Gradient:   true,
	})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return fyne.NewStaticResource("pylauncher.png", buf.Bytes())
}
