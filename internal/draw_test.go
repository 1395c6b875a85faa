package internal

import (
	"bytes"
	"errors"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawPNG(t *testing.T) {
	fixture := LoadFixture("spiral")
	d, err := NewDiagram(fixture.Width, fixture.Height, fixture.Points)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.DrawPNG(&buf, 2))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, int(2*fixture.Width)+2*drawPadding, img.Bounds().Dx())
	assert.Equal(t, int(2*fixture.Height)+2*drawPadding, img.Bounds().Dy())
}

func TestSavePNG(t *testing.T) {
	d, err := NewDiagram(100, 100, []Point{{10, 10}, {10, 70}, {30, 50}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "diagram.png")
	require.NoError(t, d.SavePNG(path, 1))
	assert.FileExists(t, path)

	err = d.SavePNG(filepath.Join(t.TempDir(), "missing", "diagram.png"), 1)
	assert.Error(t, err)
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestPreview(t *testing.T) {
	d, err := NewDiagram(100, 100, []Point{{10, 10}, {10, 70}, {30, 50}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, d.Preview(&buf, 1))
	assert.Contains(t, buf.String(), "1337;File=;inline=1:")

	err = d.Preview(brokenWriter{}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
