package hearts

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVG_Document(t *testing.T) {
	f := testFrame(t)
	var buf bytes.Buffer

	require.NoError(t, Record(f, NewSVGExporter(&buf, f.Params.Canvas, DefaultStyle())))
	doc := buf.String()

	assert.Contains(t, doc, `width="528" height="816"`)
	assert.Contains(t, doc, `viewBox="0 0 52800 81600"`)
	assert.Contains(t, doc, "<title>heart-of-hearts</title>")
	assert.Contains(t, doc, "fill:#ffffff")
	assert.Contains(t, doc, "stroke:#000000;stroke-opacity:1.000;stroke-width:300")
	assert.Equal(t, len(f.Hearts), strings.Count(doc, "<polygon points="))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(doc), "</svg>"))
}

func TestSVG_Coordinates(t *testing.T) {
	var buf bytes.Buffer
	e := NewSVGExporter(&buf, DefaultCanvas, DefaultStyle())

	require.NoError(t, e.Begin())
	require.NoError(t, e.DrawPolygon(Path{Pt(1.234, 5), Pt(10, 20.006)}))
	require.NoError(t, e.End())

	assert.Contains(t, buf.String(), `points="123,500 1000,2001"`)
}

func TestSVG_Lifecycle(t *testing.T) {
	var buf bytes.Buffer
	e := NewSVGExporter(&buf, DefaultCanvas, DefaultStyle())

	assert.Error(t, e.DrawPolygon(Path{Pt(0, 0)}))
	assert.Error(t, e.End())

	require.NoError(t, e.Begin())
	assert.Error(t, e.Begin())
	assert.NoError(t, e.DrawPolygon(nil))
	require.NoError(t, e.End())
	assert.Error(t, e.End())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestSVG_WriteError(t *testing.T) {
	f := testFrame(t)

	err := Record(f, NewSVGExporter(failingWriter{}, f.Params.Canvas, DefaultStyle()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
