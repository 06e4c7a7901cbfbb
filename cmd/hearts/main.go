package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"gioui.org/app"
	"github.com/esimov/hearts"
	"github.com/esimov/hearts/utils"
)

const HelpBanner = `
┬ ┬┌─┐┌─┐┬─┐┌┬┐┌─┐
├─┤├┤ ├─┤├┬┘ │ └─┐
┴ ┴└─┘┴ ┴┴└─ ┴ └─┘

Heart of hearts generator.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	defaults = hearts.DefaultParams()

	// Flags
	destination   = flag.String("out", "", "Destination file (.svg, .png, .jpg, .bmp, .gif, .tif), default "+hearts.DefaultExportName+"; directory with -count, default "+hearts.DefaultBatchDir)
	centralSize   = flag.Float64("size", defaults.Central.Size, "Central heart size")
	aberration    = flag.Float64("aberration", defaults.Aberration, "Central heart aberration [0, 0.5]")
	smallSize     = flag.Float64("small", defaults.Small.Size, "Small heart size")
	centralPoints = flag.Int("points", defaults.Central.Points, "Number of points of the central heart")
	smallPoints   = flag.Int("small-points", defaults.Small.Points, "Number of points of each small heart")
	canvasWidth   = flag.Float64("width", defaults.Canvas.Width, "Canvas width")
	canvasHeight  = flag.Float64("height", defaults.Canvas.Height, "Canvas height")
	strokeWidth   = flag.Float64("stroke", hearts.DefaultStyle().StrokeWidth, "Stroke width")
	strokeColor   = flag.String("color", "#000000", "Stroke color")
	bgColor       = flag.String("bg", "#ffffff", "Background color")
	scale         = flag.Float64("scale", 1, "Output pixels per canvas unit (raster formats only)")
	seed          = flag.Int64("seed", 0, "Seed of the aberration jitter (0 picks a random one)")
	exact         = flag.Bool("exact", false, "Sample exactly points+1 values per half")
	preview       = flag.Bool("preview", false, "Open the interactive preview window")
	format        = flag.String("format", "svg", "Output format of the variants generated with -count")
	count         = flag.Int("count", 1, "Number of variants to generate into the -out directory")
	workers       = flag.Int("conc", runtime.NumCPU(), "Number of variants to generate concurrently")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, HelpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	proc := &hearts.Processor{
		Params: hearts.Params{
			Central:       hearts.HeartParameters{Size: *centralSize, Points: *centralPoints},
			Small:         hearts.HeartParameters{Size: *smallSize, Points: *smallPoints},
			Aberration:    *aberration,
			Canvas:        hearts.Canvas{Width: *canvasWidth, Height: *canvasHeight},
			ExactSampling: *exact,
		},
		Style:   hearts.ParseStyle(*strokeWidth, *strokeColor, *bgColor),
		Scale:   *scale,
		Seed:    *seed,
		Preview: *preview,
	}

	if err := proc.Params.Validate(); err != nil {
		flag.Usage()
		log.Fatalf(utils.DecorateText("\n%v", utils.ErrorMessage), err)
	}

	if proc.Preview {
		// Gio takes over the main goroutine, the preview runs aside.
		go func() {
			if err := proc.ShowPreview(); err != nil {
				log.Fatalf(utils.DecorateText("preview error: %v", utils.ErrorMessage), err)
			}
			os.Exit(0)
		}()
		app.Main()
		return
	}

	op := &hearts.Ops{
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
		Count:    *count,
	}
	if op.Count > 1 {
		proc.Format = "." + strings.TrimPrefix(*format, ".")
	}
	if err := proc.Execute(op); err != nil {
		os.Exit(1)
	}
}
