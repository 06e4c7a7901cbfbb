package hearts

import (
	"gioui.org/app"
	"gioui.org/unit"
	"github.com/esimov/hearts/utils"
)

const (
	maxScreenX = 1366
	maxScreenY = 768

	// panelWidth is the width of the controls column, in dp.
	panelWidth = 240
)

// ShowPreview opens the interactive window and blocks until it is closed.
// Gio needs the main goroutine, so callers run this in a separate goroutine
// and hand the main one to app.Main.
func (p *Processor) ShowPreview() error {
	gui := NewGUI(p)

	w := app.NewWindow(
		app.Title(gui.cfg.window.title),
		app.Size(unit.Dp(gui.cfg.window.w), unit.Dp(gui.cfg.window.h)),
	)
	return gui.Run(w)
}

// previewSize returns the window size for the canvas, the controls column
// included. The sheet is scaled down, keeping its aspect ratio, when it does
// not fit the predefined screen.
func previewSize(c Canvas) (float64, float64) {
	w, h := c.Width, c.Height
	r := getRatio(w+panelWidth, h)
	return w*r + panelWidth, h * r
}

// getRatio returns the scale factor fitting w x h into the max screen size.
func getRatio(w, h float64) float64 {
	var r float64 = 1
	if w > maxScreenX || h > maxScreenY {
		wr := maxScreenX / w // width ratio
		hr := maxScreenY / h // height ratio

		r = utils.Min(wr, hr)
	}
	return r
}
