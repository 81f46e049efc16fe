package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/schollz/progressbar/v3"

	"github.com/handiism/jalali-stickers/internal/calendar"
	"github.com/handiism/jalali-stickers/internal/config"
	"github.com/handiism/jalali-stickers/internal/generate"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFE66D"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#95E1A3"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8DADC"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C757D"))
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ECDC4"))
)

func main() {
	// Command line flags
	var (
		configFlag  = flag.String("config", "", "Path to config file")
		forceFlag   = flag.Bool("force", false, "Generate even if the output directory already exists")
		verboseFlag = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *forceFlag {
		settings.Force = true
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, stopping after the current sticker...")
		cancel()
	}()

	year := calendar.CurrentYear(time.Now())

	var (
		g   *generate.Generator
		bar *progressbar.ProgressBar
	)
	g = generate.NewGenerator(settings, func(event generate.ProgressEvent) {
		written, total := g.Progress()
		if bar == nil && total > 0 {
			bar = progressbar.NewOptions(int(total),
				progressbar.OptionSetDescription("Rendering"),
				progressbar.OptionSetWidth(30),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWriter(os.Stderr),
			)
		}
		if bar != nil {
			defer bar.Set(int(written))
		}

		if event.Level == generate.LevelVerbose && !*verboseFlag {
			return
		}
		fmt.Println(formatEvent(event))
	})

	fmt.Println(titleStyle.Render(fmt.Sprintf("Jalali sticker generator, year %d", year)))
	fmt.Println()

	summary, err := g.Run(ctx, year)
	if bar != nil {
		_ = bar.Finish()
		fmt.Println()
	}
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("\nGeneration cancelled.")
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error during generation: %v", err)))
		os.Exit(1)
	}

	if summary.Skipped {
		return
	}
	fmt.Println(successStyle.Render(fmt.Sprintf("DONE: %d/%d stickers written to %s", summary.Written, summary.Days, summary.OutputDir)))
}

func formatEvent(event generate.ProgressEvent) string {
	switch event.Level {
	case generate.LevelError:
		return errorStyle.Render("✗ " + event.Message)
	case generate.LevelWarning:
		return warningStyle.Render("! " + event.Message)
	case generate.LevelSuccess:
		return successStyle.Render("✓ " + event.Message)
	case generate.LevelInfo:
		return infoStyle.Render("› " + event.Message)
	default:
		return dimStyle.Render("  " + event.Message)
	}
}
