package main

import (
	"log"
	"runtime"

	"pylauncher/pkg/config"
	"pylauncher/pkg/core"
	"pylauncher/pkg/launch"
	"pylauncher/pkg/ui"
)

func main() {
	paths, err := config.DefaultPaths(launch.TemplateForOS(runtime.GOOS).Ext())
	if err != nil {
		log.Fatal("Failed to resolve user directories:", err)
	}
	if err := paths.EnsureDirs(); err != nil {
		log.Fatal("Failed to create data directories:", err)
	}

	registry := core.NewRegistry(paths.RegistryFile())
	if err := registry.Load(); err != nil {
		log.Fatal("Failed to load registry:", err)
	}

	app := ui.NewLauncherApp(registry, paths)
	app.Run()
}
