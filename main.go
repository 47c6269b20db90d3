package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mbaird/drift/internal/particles"
	"github.com/mbaird/drift/internal/ui"
	"github.com/mbaird/drift/internal/window"
)

func main() {
	windowed := flag.Bool("w", false, "render in a window instead of the terminal")
	count := flag.Int("n", particles.DefaultCount, "particle count for the particles demo")
	flag.Usage = usage
	flag.Parse()

	demo := flag.Arg(0)
	if demo == "" {
		if *windowed {
			demo = ui.DemoParticles
		} else {
			picker := ui.NewPicker()
			p := tea.NewProgram(picker, tea.WithAltScreen())
			finalModel, err := p.Run()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}

			pm, ok := finalModel.(ui.PickerModel)
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: unexpected model type from picker\n")
				os.Exit(1)
			}
			result := pm.Result()
			if result.Cancelled {
				os.Exit(0)
			}
			demo = result.Demo
		}
	}

	switch demo {
	case ui.DemoParticles, ui.DemoBars:
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown demo %q (want %s or %s)\n", demo, ui.DemoParticles, ui.DemoBars)
		os.Exit(1)
	}

	if *windowed {
		var err error
		if demo == ui.DemoBars {
			err = window.RunBars()
		} else {
			err = window.RunParticles(*count)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var model tea.Model
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if demo == ui.DemoBars {
		model = ui.NewBars()
		opts = append(opts, tea.WithMouseCellMotion())
	} else {
		model = ui.NewParticles(*count)
	}

	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: drift [flags] [%s|%s]\n\n", ui.DemoParticles, ui.DemoBars)
	fmt.Fprintf(os.Stderr, "With no demo named, an interactive picker opens.\n\nFlags:\n")
	flag.PrintDefaults()
}
