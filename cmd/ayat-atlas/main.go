package main

import (
	"fmt"
	"os"

	"ayat-atlas/internal/api"
	"ayat-atlas/internal/dataset"
	"ayat-atlas/internal/logging"
	"ayat-atlas/internal/settings"
	"ayat-atlas/internal/theme"
	"ayat-atlas/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	env := LoadEnvironment()

	if err := logging.Setup(env.Debug); err != nil {
		fmt.Printf("Error setting up logging: %v\n", err)
		os.Exit(1)
	}

	saved, _ := settings.Load()
	th := theme.GetTheme(saved.CurrentTheme)

	// Dataset path precedence: CLI argument, then environment, then the
	// last used path from settings.
	path := env.DatasetPath
	if saved.DatasetPath != "" && os.Getenv("AYAT_DATASET") == "" {
		path = saved.DatasetPath
	}
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	records, err := dataset.LoadFile(path)
	if err != nil {
		// Fatal: the app runs only to show the error, with no retry path.
		p := tea.NewProgram(ui.NewFatalModel(err, th.Error, th.Muted))
		if _, rerr := p.Run(); rerr != nil {
			fmt.Printf("Error running program: %v\n", rerr)
		}
		os.Exit(1)
	}

	client := api.NewClientWithBaseURL(env.APIBase)

	p := tea.NewProgram(
		ui.NewModel(records, client, th),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	if m, ok := final.(ui.Model); ok {
		_ = settings.Save(settings.Settings{
			DatasetPath:  path,
			CurrentTheme: m.ThemeName(),
			ShowLabels:   m.LabelsShown(),
		})
	}
}
