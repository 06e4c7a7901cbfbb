package hearts

import (
	"io"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/esimov/hearts/utils"
	"github.com/pkg/errors"
)

// SupportedExtensions lists the output file types the processor can encode.
var SupportedExtensions = []string{".svg", ".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff"}

// Processor options
type Processor struct {
	Params  Params
	Style   Style
	Scale   float64
	Seed    int64
	Format  string
	Preview bool
	Spinner *utils.Spinner

	composer *Composer
}

// NewProcessor returns a processor with the default parameters and style
// producing SVG output.
func NewProcessor() *Processor {
	return &Processor{
		Params: DefaultParams(),
		Style:  DefaultStyle(),
		Scale:  1,
		Format: ".svg",
	}
}

// Frame composes the next frame. Consecutive frames of the same processor
// continue the random sequence started from Seed.
func (p *Processor) Frame() (*Frame, error) {
	return p.composerOrNew().Compose(p.Params)
}

func (p *Processor) composerOrNew() *Composer {
	if p.composer == nil {
		seed := p.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		p.composer = NewComposer(seed)
	}
	return p.composer
}

// variant returns the processor of the i-th variant of a batch. Its jitter is
// seeded with Seed+i, a zero sum included.
func (p *Processor) variant(i int, format string) *Processor {
	seed := p.Seed + int64(i)
	return &Processor{
		Params:   p.Params,
		Style:    p.Style,
		Scale:    p.Scale,
		Seed:     seed,
		Format:   format,
		composer: NewComposer(seed),
	}
}

// Process composes one frame and encodes it into w in the processor's format.
// We are using the io package, since we can provide different output types,
// as long as they implement the io.Writer interface.
func (p *Processor) Process(w io.Writer) error {
	f, err := p.Frame()
	if err != nil {
		return err
	}
	return p.Encode(w, f)
}

// Encode writes an already composed frame into w.
func (p *Processor) Encode(w io.Writer, f *Frame) error {
	ext := strings.ToLower(p.Format)
	if ext == "" || ext == ".svg" {
		return Record(f, NewSVGExporter(w, f.Params.Canvas, p.Style))
	}

	format, err := imaging.FormatFromExtension(strings.TrimPrefix(ext, "."))
	if err != nil {
		return errors.Wrapf(err, "%v file type not supported", ext)
	}
	r := NewRasterRenderer(f.Params.Canvas, p.Style, p.Scale)
	if err := Draw(f, r); err != nil {
		return err
	}
	return r.Encode(w, format)
}

// isValidExtension checks for the supported extensions.
func isValidExtension(ext string, extensions []string) bool {
	ext = strings.ToLower(ext)
	for _, ex := range extensions {
		if ex == ext {
			return true
		}
	}
	return false
}
