package hearts

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/esimov/hearts/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietProcessor() *Processor {
	p := NewProcessor()
	p.Seed = 1
	p.Spinner = utils.NewSpinner("", time.Millisecond, false)
	p.Spinner.SetWriter(io.Discard)
	return p
}

func TestExec_SingleFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "hearts.svg")
	p := quietProcessor()

	require.NoError(t, p.Execute(&Ops{Dst: dst, PipeName: "-"}))

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<?xml"))
}

func TestExec_Batch(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "variants")
	p := quietProcessor()
	p.Format = ".png"
	p.Params.Aberration = 0.1

	require.NoError(t, p.Execute(&Ops{Dst: dir, PipeName: "-", Count: 3, Workers: 2}))

	for i := 0; i < 3; i++ {
		f, err := os.Open(filepath.Join(dir, fmt.Sprintf("variant-%03d.png", i)))
		require.NoError(t, err)
		_, err = png.Decode(f)
		f.Close()
		assert.NoError(t, err)
	}
}

func TestExec_BatchVariantsDiffer(t *testing.T) {
	dir := t.TempDir()
	p := quietProcessor()
	p.Params.Aberration = 0.2

	require.NoError(t, p.Execute(&Ops{Dst: dir, PipeName: "-", Count: 2, Workers: 1}))

	a, err := os.ReadFile(filepath.Join(dir, "variant-000.svg"))
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "variant-001.svg"))
	require.NoError(t, err)
	assert.NotEqual(t, string(a), string(b))
}

func TestExec_UnsupportedExtension(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "hearts.xyz")
	p := quietProcessor()

	assert.Error(t, p.Execute(&Ops{Dst: dst, PipeName: "-"}))
	_, err := os.Stat(dst)
	assert.True(t, os.IsNotExist(err))
}

func TestExec_FailedRunLeavesNoFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "hearts.svg")
	p := quietProcessor()
	p.Params.Central.Points = 0

	assert.Error(t, p.Execute(&Ops{Dst: dst, PipeName: "-"}))
	_, err := os.Stat(dst)
	assert.True(t, os.IsNotExist(err))
}

func TestExec_DefaultDestination(t *testing.T) {
	assert.Equal(t, DefaultExportName, (&Ops{}).destination())
	assert.Equal(t, DefaultExportName, (&Ops{Count: 1}).destination())
	assert.Equal(t, DefaultBatchDir, (&Ops{Count: 3}).destination())
	assert.Equal(t, "out", (&Ops{Dst: "out", Count: 3}).destination())
}

func TestExec_BatchIntoFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "hearts.svg")
	require.NoError(t, os.WriteFile(dst, []byte("keep"), 0644))
	p := quietProcessor()

	assert.Error(t, p.Execute(&Ops{Dst: dst, PipeName: "-", Count: 3, Workers: 2}))

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(b))
}

func TestExec_BatchReproducible(t *testing.T) {
	run := func() string {
		dir := t.TempDir()
		p := quietProcessor()
		p.Seed = -1
		p.Params.Aberration = 0.2
		require.NoError(t, p.Execute(&Ops{Dst: dir, PipeName: "-", Count: 2, Workers: 2}))

		b, err := os.ReadFile(filepath.Join(dir, "variant-001.svg"))
		require.NoError(t, err)
		return string(b)
	}
	assert.Equal(t, run(), run())
}
