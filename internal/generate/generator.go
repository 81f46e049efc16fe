package generate

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"

	"github.com/handiism/jalali-stickers/internal/calendar"
	"github.com/handiism/jalali-stickers/internal/config"
	ioutils "github.com/handiism/jalali-stickers/internal/io"
	"github.com/handiism/jalali-stickers/internal/jalali"
	"github.com/handiism/jalali-stickers/internal/render"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a generation progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Summary describes a finished run.
type Summary struct {
	Year      int
	Days      int
	Written   int
	OutputDir string

	// Skipped is set when the output directory already existed and the
	// run did nothing.
	Skipped bool
}

// Generator renders the stickers of a Jalali year.
//
// A Generator runs the whole batch sequentially on the calling goroutine.
// Progress may be polled from another goroutine.
type Generator struct {
	settings *config.Settings
	images   *ioutils.ImageService
	layout   render.Layout

	written int32
	total   int32

	onProgress func(ProgressEvent)
}

// NewGenerator creates a new Generator.
func NewGenerator(settings *config.Settings, onProgress func(ProgressEvent)) *Generator {
	return &Generator{
		settings:   settings,
		images:     ioutils.NewImageService(),
		layout:     render.DefaultLayout(),
		onProgress: onProgress,
	}
}

// Run generates one sticker per day of year.
//
// If the output directory already exists and settings.Force is not set,
// Run does nothing and returns a Summary with Skipped set. Any other
// failure stops the run and is returned; files written so far are kept.
func (g *Generator) Run(ctx context.Context, year int) (*Summary, error) {
	if err := g.settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	summary := &Summary{Year: year, OutputDir: g.settings.OutputDir}

	if ioutils.DirExists(g.settings.OutputDir) && !g.settings.Force {
		g.progress(ProgressEvent{
			Message: fmt.Sprintf("Output directory %s already exists, skipping generation (use force to regenerate)", g.settings.OutputDir),
			Level:   LevelWarning,
		})
		summary.Skipped = true
		return summary, nil
	}

	if err := g.Provision(); err != nil {
		return nil, err
	}

	days, err := calendar.BuildYear(year)
	if err != nil {
		return nil, fmt.Errorf("build calendar: %w", err)
	}
	summary.Days = len(days)
	atomic.StoreInt32(&g.total, int32(len(days)))
	atomic.StoreInt32(&g.written, 0)
	g.progress(ProgressEvent{Message: fmt.Sprintf("Generating %d stickers for year %d", len(days), year), Level: LevelInfo})

	templates, err := g.settings.TemplateSet()
	if err != nil {
		return nil, err
	}
	fonts, err := render.LoadFontSet(g.settings.FontPath, g.layout.Sizes()...)
	if err != nil {
		return nil, err
	}
	defer fonts.Close()

	composer := render.NewComposer(templates, fonts, g.images, g.layout, g.settings.OutputWidth, g.settings.OutputHeight)

	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		img, err := composer.Compose(ctx, day)
		if err != nil {
			return summary, fmt.Errorf("compose %v: %w", day.Date, err)
		}
		data, err := g.images.EncodePNG(ctx, img)
		if err != nil {
			return summary, fmt.Errorf("encode %v: %w", day.Date, err)
		}
		path := day.OutputPath(g.settings.OutputDir)
		if err := ioutils.WriteFile(ctx, path, data); err != nil {
			return summary, fmt.Errorf("write %s: %w", path, err)
		}

		summary.Written++
		atomic.AddInt32(&g.written, 1)
		g.progress(ProgressEvent{Message: fmt.Sprintf("Saved: %s", path), Level: LevelVerbose})
	}

	g.progress(ProgressEvent{Message: fmt.Sprintf("Generated %d stickers in %s", summary.Written, g.settings.OutputDir), Level: LevelSuccess})
	return summary, nil
}

// Provision creates the output directory and one folder per month.
// Folders that already exist are reported and left as they are.
func (g *Generator) Provision() error {
	root := g.settings.OutputDir
	if ioutils.DirExists(root) {
		g.progress(ProgressEvent{Message: fmt.Sprintf("%s folder already exists, creating sub-folders...", root), Level: LevelInfo})
	} else if err := ioutils.EnsureDir(root); err != nil {
		g.progress(ProgressEvent{Message: fmt.Sprintf("Error creating directory: %v", err), Level: LevelError})
		return err
	}

	for _, month := range jalali.Months() {
		name := month.String()
		created, err := ioutils.EnsureFolder(filepath.Join(root, name))
		if err != nil {
			g.progress(ProgressEvent{Message: fmt.Sprintf("Error creating folder %s: %v", name, err), Level: LevelError})
			return err
		}
		if created {
			g.progress(ProgressEvent{Message: fmt.Sprintf("Folder '%s' created at '%s'", name, root), Level: LevelVerbose})
		} else {
			g.progress(ProgressEvent{Message: fmt.Sprintf("Folder '%s' already exists at '%s'", name, root), Level: LevelVerbose})
		}
	}
	return nil
}

// Progress returns the number of stickers written and the number planned
// by the current run.
func (g *Generator) Progress() (written, total int32) {
	return atomic.LoadInt32(&g.written), atomic.LoadInt32(&g.total)
}

func (g *Generator) progress(event ProgressEvent) {
	if g.onProgress != nil {
		g.onProgress(event)
	}
}
