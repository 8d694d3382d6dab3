package main

import (
	"errors"
	"os"
	"time"

	"greenhouse/internal/core/bus"
	"greenhouse/internal/core/greenhouse"
	"greenhouse/internal/core/timekeeper"
	"greenhouse/internal/platform"
	"greenhouse/internal/storage"
	"greenhouse/internal/ui/greenhouseview"
	"greenhouse/internal/ui/preferences"
	"greenhouse/internal/ui/timerview"
	"greenhouse/internal/ui/tray"
	"greenhouse/internal/watcher"
	"greenhouse/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	appName = "Greenhouse"
	tabKey  = "tab"
)

func main() {
	setupLogging()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Info().Msg("greenhouse is already open")
		} else {
			log.Error().Err(err).Msg("single instance")
		}
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	paths, err := storage.ResolvePaths(appName)
	if err != nil {
		log.Error().Err(err).Msg("resolve data directory")
		return
	}
	if err := paths.Ensure(); err != nil {
		log.Warn().Err(err).Str("path", paths.Dir).Msg("data directory unavailable, changes will not be saved")
	}

	prefs, err := storage.OpenSettings(paths.Settings())
	if err != nil {
		log.Warn().Err(err).Str("path", paths.Settings()).Msg("settings unreadable, using defaults")
	}

	fyneApp := app.NewWithID("com.greenhouse.studybuddy")
	fyneApp.SetIcon(resources.MustLogo("greenhouse.svg"))

	events := bus.New()
	store := greenhouse.New(storage.NewPlantFile(paths.Plants()), prefs, greenhouse.Options{})
	store.Attach(events)

	keeper := timekeeper.New(prefs, events, platform.NewDesktopNotifier(fyneApp), timekeeper.Config{
		TickInterval: time.Second,
		Dispatch:     fyne.Do,
	})

	fileWatcher := startWatcher(paths.Plants(), store)

	window := fyneApp.NewWindow("Greenhouse Study Buddy")
	timerView := timerview.New(keeper)
	greenhouseView := greenhouseview.New(store, window.Canvas)
	settingsView := preferences.New(
		preferences.FromTimerConfig(timekeeper.LoadConfig(prefs)),
		func(settings preferences.Settings) preferences.Settings {
			applied := keeper.SetDurations(settings.WorkMinutes, settings.BreakMinutes)
			timerView.Refresh()
			return preferences.FromTimerConfig(applied)
		},
		func() {
			store.ResetFlowers()
		},
	)

	tabs := container.NewAppTabs(
		container.NewTabItem("Timer", timerView.Content()),
		container.NewTabItem("Greenhouse", greenhouseView.Content()),
		container.NewTabItem("Settings", settingsView.Content()),
	)
	tabs.SelectIndex(fyneApp.Preferences().IntWithFallback(tabKey, 0))
	tabs.OnSelected = func(*container.TabItem) {
		fyneApp.Preferences().SetInt(tabKey, tabs.SelectedIndex())
	}

	window.SetContent(tabs)
	window.Resize(fyne.NewSize(400, 560))

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		activeIcon := resources.MustLogo("greenhouse.svg")
		pausedIcon := resources.MustLogo("greenhouse_paused.svg")
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: func() {
				window.Show()
				window.RequestFocus()
			},
			OnToggle: func() {
				if keeper.Snapshot().Running {
					keeper.Stop()
				} else {
					keeper.Start()
				}
			},
			OnReset: keeper.Reset,
			OnQuit:  fyneApp.Quit,
		})
		desktopApp.SetSystemTrayIcon(pausedIcon)
		snapshot := keeper.Snapshot()
		trayManager.SetStatus(statusLine(timekeeper.Event{
			State:     snapshot.State,
			Running:   snapshot.Running,
			Remaining: time.Duration(snapshot.Remaining) * time.Second,
		}))
		window.SetCloseIntercept(window.Hide)

		timerEvents := keeper.Subscribe(8)
		go func() {
			for event := range timerEvents {
				event := event
				fyne.Do(func() {
					timerView.Refresh()
					trayManager.SetRunning(event.Running)
					trayManager.SetStatus(statusLine(event))
					if event.Running {
						desktopApp.SetSystemTrayIcon(activeIcon)
					} else {
						desktopApp.SetSystemTrayIcon(pausedIcon)
					}
				})
			}
		}()
	} else {
		timerEvents := keeper.Subscribe(8)
		go func() {
			for range timerEvents {
				fyne.Do(timerView.Refresh)
			}
		}()
	}

	plantEvents := store.Subscribe(8)
	go func() {
		for range plantEvents {
			fyne.Do(greenhouseView.Refresh)
		}
	}()

	fyneApp.Lifecycle().SetOnStopped(func() {
		keeper.Close()
		store.Close()
		if fileWatcher != nil {
			_ = fileWatcher.Stop()
		}
	})

	window.ShowAndRun()
}

func setupLogging() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("GREENHOUSE_DEBUG") == "1" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

func startWatcher(path string, store *greenhouse.Store) *watcher.Watcher {
	fileWatcher, err := watcher.New(path, func() {
		fyne.Do(store.Persist)
	})
	if err != nil {
		log.Warn().Err(err).Msg("create greenhouse file watcher")
		return nil
	}
	if err := fileWatcher.Start(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("watch greenhouse file")
		_ = fileWatcher.Stop()
		return nil
	}
	return fileWatcher
}

func statusLine(event timekeeper.Event) string {
	phase := "Work"
	if event.State == timekeeper.StateBreak {
		phase = "Break"
	}
	line := phase + " " + timekeeper.FormatRemaining(int(event.Remaining/time.Second))
	if !event.Running {
		line += " (stopped)"
	}
	return line
}
