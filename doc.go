/*
Package hearts generates a "heart of hearts": a large Holzapfel heart curve whose
outline is traced by small copies of the same curve.

Each heart is sampled from two closed-form halves, the upper lobes
sqrt(1-(|x|-1)²) and the lower tip acos(1-|x|)-π, over x in [-2, 2]. A frame
places the central heart on the canvas, optionally jitters its points and
stamps one small heart at every one of them.

The package provides a command line interface, supporting various flags for
the heart parameters and the output format. To check the supported commands type:

	$ hearts --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"
		"os"

		"github.com/esimov/hearts"
	)

	func main() {
		p := hearts.NewProcessor()
		p.Params.Aberration = 0.05

		if err := p.Process(os.Stdout); err != nil {
			log.Fatalf("error generating the hearts: %v", err)
		}
	}
*/
package hearts
