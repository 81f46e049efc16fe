// Package generate runs the sticker batch for a Jalali year.
//
// # Generator
//
// The Generator coordinates the whole run:
//
//  1. Skip everything if the output directory already exists
//  2. Create the output directory and one folder per month
//  3. Build the day descriptors of the year
//  4. Load the font once and compose each day on its seasonal template
//  5. Write <output>/<Month>/<Day>.png for every day
//
// # Basic Usage
//
//	g := generate.NewGenerator(settings, func(event generate.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	summary, err := g.Run(ctx, calendar.CurrentYear(time.Now()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if summary.Skipped {
//	    fmt.Println("already generated")
//	}
//
// # Output guard
//
// The existence check on the output directory is coarse: a directory left
// behind by an interrupted run also suppresses generation. Set
// settings.Force to regenerate into an existing tree; files are
// overwritten and nothing is removed.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent,
// and can be polled with Progress from another goroutine.
package generate
