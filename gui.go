package hearts

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/font/gofont"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/esimov/hearts/utils"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// Slider bounds of the interactive controls.
const (
	minCentralSize = 30
	maxCentralSize = 200
	minSmallSize   = 1
	maxSmallSize   = 50
)

var (
	defaultBkgColor   = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	defaultErrorColor = color.NRGBA{R: 0xc0, G: 0x20, B: 0x20, A: 0xff}
)

// Gui is the interactive preview. It keeps the controls in sync with the
// session parameters and recomposes the frame only when something changed or
// when the user asks for it, like a sketch that stops looping after each frame.
type Gui struct {
	cfg struct {
		window struct {
			w     float64
			h     float64
			title string
		}
		color struct {
			background color.NRGBA
		}
		exportDir string
	}
	controls struct {
		centralSize   widget.Float
		aberration    widget.Float
		smallSize     widget.Float
		centralPoints widget.Editor
		smallPoints   widget.Editor
	}
	session *Session
	proc    *Processor
	theme   *material.Theme
	frame   *Frame
	status  string
	exports int
	focused bool
	dirty   bool
}

// NewGUI initializes the Gio interface for the processor's parameters.
func NewGUI(p *Processor) *Gui {
	gui := &Gui{
		proc:    p,
		session: NewSession(p.composerOrNew(), p.Params),
		theme:   material.NewTheme(gofont.Collection()),
		dirty:   true,
	}
	gui.initWindow(p.Params.Canvas)
	gui.initControls(p.Params)

	return gui
}

// initWindow sets up the window geometry and colors.
func (g *Gui) initWindow(c Canvas) {
	g.cfg.window.w, g.cfg.window.h = previewSize(c)
	g.cfg.window.title = "Heart of hearts"
	g.cfg.color.background = defaultBkgColor
	g.cfg.exportDir = "."
}

func (g *Gui) initControls(p Params) {
	g.controls.centralSize.Value = float32(p.Central.Size)
	g.controls.aberration.Value = float32(p.Aberration)
	g.controls.smallSize.Value = float32(p.Small.Size)

	for _, ed := range []*widget.Editor{&g.controls.centralPoints, &g.controls.smallPoints} {
		ed.SingleLine = true
		ed.Filter = "0123456789"
	}
	g.controls.centralPoints.SetText(strconv.Itoa(p.Central.Points))
	g.controls.smallPoints.SetText(strconv.Itoa(p.Small.Points))
}

// Run is the core method of the Gio GUI application.
// It returns when the window is closed, either by the user or with the ESC key.
func (g *Gui) Run(w *app.Window) error {
	var ops op.Ops

	for e := range w.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			g.handleKeys(gtx, w)

			if g.dirty {
				g.compose()
			}
			g.layout(gtx)

			// The controls are read after the layout processed their input.
			if g.syncParams() {
				w.Invalidate()
			}
			e.Frame(gtx.Ops)
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}

// handleKeys processes the key events of the previous frame and registers the
// key handler for the next one.
func (g *Gui) handleKeys(gtx C, w *app.Window) {
	for _, e := range gtx.Events(g) {
		e, ok := e.(key.Event)
		if !ok || e.State != key.Press {
			continue
		}
		switch e.Name {
		case "S":
			g.session.RequestExport()
			g.dirty = true
		case key.NameSpace:
			g.dirty = true
		case key.NameEscape:
			w.Perform(system.ActionClose)
		}
	}
	key.InputOp{
		Tag:  g,
		Keys: key.Set("S|" + key.NameSpace + "|" + key.NameEscape),
	}.Add(gtx.Ops)
	if !g.focused {
		key.FocusOp{Tag: g}.Add(gtx.Ops)
		g.focused = true
	}
}

// syncParams copies the control values into the session. It reports whether
// the parameters changed.
func (g *Gui) syncParams() bool {
	p := g.session.Params()
	next := p
	next.Central.Size = float64(g.controls.centralSize.Value)
	next.Aberration = float64(g.controls.aberration.Value)
	next.Small.Size = float64(g.controls.smallSize.Value)

	var invalid []string
	if n, err := parsePoints(g.controls.centralPoints.Text()); err == nil {
		next.Central.Points = n
	} else {
		invalid = append(invalid, "central")
	}
	if n, err := parsePoints(g.controls.smallPoints.Text()); err == nil {
		next.Small.Points = n
	} else {
		invalid = append(invalid, "small")
	}
	if len(invalid) > 0 {
		g.status = fmt.Sprintf("invalid %v point count, keeping the previous value", invalid)
	}

	if next == p {
		return false
	}
	g.session.SetParams(next)
	g.dirty = true
	return true
}

func parsePoints(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("point count must be positive, got %d", n)
	}
	return n, nil
}

// compose builds the next frame and exports it when an export was requested.
// A failed frame draws nothing.
func (g *Gui) compose() {
	g.dirty = false
	g.status = ""

	f, export, err := g.session.Frame()
	if err != nil {
		log.Printf(utils.DecorateText("frame skipped: %v", utils.ErrorMessage), err)
		g.frame = nil
		g.status = err.Error()
		return
	}
	g.frame = f

	if export {
		name, err := g.export(f)
		if err != nil {
			log.Printf(utils.DecorateText("export failed: %v", utils.ErrorMessage), err)
			g.status = err.Error()
			return
		}
		g.status = "saved " + name
	}
}

// export writes the frame as an SVG document next to the previous exports.
// Names taken by earlier sessions are skipped, an existing file is never replaced.
func (g *Gui) export(f *Frame) (string, error) {
	var (
		name string
		out  *os.File
		err  error
	)
	for {
		name = filepath.Join(g.cfg.exportDir, exportName(g.exports))
		g.exports++

		out, err = os.OpenFile(name, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
		if !os.IsExist(err) {
			break
		}
	}
	if err != nil {
		return "", err
	}
	if err := Record(f, NewSVGExporter(out, f.Params.Canvas, g.proc.Style)); err != nil {
		out.Close()
		return "", err
	}
	return name, out.Close()
}

// exportName returns the file name of the n-th export of a session.
func exportName(n int) string {
	if n == 0 {
		return DefaultExportName
	}
	ext := filepath.Ext(DefaultExportName)
	return fmt.Sprintf("%s-%d%s", DefaultExportName[:len(DefaultExportName)-len(ext)], n, ext)
}

func (g *Gui) layout(gtx C) D {
	paint.Fill(gtx.Ops, g.cfg.color.background)

	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(g.layoutControls),
		layout.Flexed(1, g.layoutCanvas),
	)
}

func (g *Gui) layoutControls(gtx C) D {
	gtx.Constraints.Min.X = gtx.Dp(panelWidth)
	gtx.Constraints.Max.X = gtx.Constraints.Min.X

	return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			g.slider("Center Heart Size", &g.controls.centralSize, minCentralSize, maxCentralSize, "%.0f"),
			g.slider("Center Heart Aberration", &g.controls.aberration, 0, MaxAberration, "%.2f"),
			g.slider("Small Heart Size", &g.controls.smallSize, minSmallSize, maxSmallSize, "%.1f"),
			g.editor("num points central heart", &g.controls.centralPoints),
			g.editor("num points small heart", &g.controls.smallPoints),
			layout.Rigid(func(gtx C) D {
				return layout.Inset{Top: unit.Dp(12)}.Layout(gtx,
					material.Caption(g.theme, "S: export svg · Space: redraw · Esc: quit").Layout,
				)
			}),
			layout.Rigid(func(gtx C) D {
				if g.status == "" {
					return D{}
				}
				lbl := material.Caption(g.theme, g.status)
				lbl.Color = defaultErrorColor
				return layout.Inset{Top: unit.Dp(8)}.Layout(gtx, lbl.Layout)
			}),
		)
	})
}

func (g *Gui) slider(label string, f *widget.Float, min, max float32, format string) layout.FlexChild {
	return layout.Rigid(func(gtx C) D {
		return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.Body2(g.theme, fmt.Sprintf("%s: "+format, label, f.Value)).Layout),
				layout.Rigid(func(gtx C) D {
					gtx.Constraints.Min.X = gtx.Constraints.Max.X
					return material.Slider(g.theme, f, min, max).Layout(gtx)
				}),
			)
		})
	})
}

func (g *Gui) editor(label string, ed *widget.Editor) layout.FlexChild {
	return layout.Rigid(func(gtx C) D {
		return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, func(gtx C) D {
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
				layout.Rigid(material.Body2(g.theme, label).Layout),
				layout.Rigid(func(gtx C) D {
					return widget.Border{
						Color:        g.theme.Palette.ContrastBg,
						Width:        unit.Dp(1),
						CornerRadius: unit.Dp(2),
					}.Layout(gtx, func(gtx C) D {
						return layout.UniformInset(unit.Dp(4)).Layout(gtx, material.Editor(g.theme, ed, "").Layout)
					})
				}),
			)
		})
	})
}

// layoutCanvas draws the sheet scaled to fit the available space, then the frame on top.
func (g *Gui) layoutCanvas(gtx C) D {
	size := gtx.Constraints.Max
	c := g.session.Params().Canvas
	s := math.Min(float64(size.X)/c.Width, float64(size.Y)/c.Height)

	sheet := image.Rect(0, 0, int(c.Width*s), int(c.Height*s))
	defer clip.Rect(sheet).Push(gtx.Ops).Pop()
	paint.Fill(gtx.Ops, g.proc.Style.Background)

	if g.frame != nil {
		tr := f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(float32(s), float32(s)))
		defer op.Affine(tr).Push(gtx.Ops).Pop()

		r := &gioRenderer{ops: gtx.Ops, style: g.proc.Style}
		if err := Draw(g.frame, r); err != nil {
			g.status = err.Error()
		}
	}
	return D{Size: size}
}
