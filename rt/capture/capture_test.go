package capture

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_Path(t *testing.T) {
	c := NewCursor(3)
	assert.Equal(t, filepath.Join("out", "3_1_1.jpg"), c.Path("out"))

	c.Advance()
	assert.Equal(t, "3_1_2.jpg", c.FileName())
	assert.Equal(t, Capturing, c.State)
}

func TestCursor_ShotCyclesBeforeLight(t *testing.T) {
	c := NewCursor(1)

	for shot := 1; shot < ShotsPerLight; shot++ {
		assert.False(t, c.Advance(), "shot %d", shot)
		assert.Equal(t, 1, c.Light)
	}
	assert.True(t, c.Advance())
	assert.Equal(t, 2, c.Light)
	assert.Equal(t, 1, c.Shot)
	assert.Equal(t, ShotsPerLight, c.Taken())
}

func TestCursor_DoneAfterFullGrid(t *testing.T) {
	c := NewCursor(2)
	seen := map[string]bool{}

	for !c.Done() {
		name := c.FileName()
		if seen[name] {
			t.Fatalf("duplicate capture name %s", name)
		}
		seen[name] = true
		c.Advance()
	}

	assert.Len(t, seen, LightCount*ShotsPerLight)
	assert.True(t, seen["2_10_10.jpg"])
	assert.Equal(t, LightCount*ShotsPerLight, c.Taken())

	assert.False(t, c.Advance())
	assert.Equal(t, Done, c.State)
}

func TestFrameFromRGB(t *testing.T) {
	pix := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 10, 20, 30,
	}
	img, err := FrameFromRGB(2, 2, pix)
	require.NoError(t, err)

	assert.Equal(t, color.RGBA{255, 0, 0, 255}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, img.RGBAAt(1, 1))

	_, err = FrameFromRGB(2, 2, pix[:5])
	assert.Error(t, err)

	_, err = FrameFromRGB(0, 2, pix)
	assert.ErrorIs(t, err, ErrNoFrame)
}

// stripes returns a frame whose bottom half (first rows in GL order) is red
// and top half blue.
func stripes(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.RGBA{0, 0, 255, 255}
		if y < h/2 {
			c = color.RGBA{255, 0, 0, 255}
		}
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestWriter_FlipsAndEncodes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "1_1_1.jpg")

	require.NoError(t, NewWriter(100).Write(path, stripes(16, 16)))

	img, err := imgio.Open(path)
	require.NoError(t, err)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())

	top := color.RGBAModel.Convert(img.At(8, 2)).(color.RGBA)
	bottom := color.RGBAModel.Convert(img.At(8, 13)).(color.RGBA)
	assert.Greater(t, top.B, top.R, "top of the file should hold the last GL rows")
	assert.Greater(t, bottom.R, bottom.B)
}

type fakeSource struct {
	frame *image.RGBA
	err   error
	calls int
}

func (f *fakeSource) ReadFrame() (*image.RGBA, error) {
	f.calls++
	return f.frame, f.err
}

func TestController_Trigger(t *testing.T) {
	dir := t.TempDir()
	ctl := NewController(3, dir, 100)
	src := &fakeSource{frame: stripes(4, 4)}

	first, err := ctl.Trigger(src)
	require.NoError(t, err)
	second, err := ctl.Trigger(src)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "3_1_1.jpg"), first.Path)
	assert.Equal(t, filepath.Join(dir, "3_1_2.jpg"), second.Path)
	assert.FileExists(t, first.Path)
	assert.FileExists(t, second.Path)
}

func TestController_FailureDoesNotAdvance(t *testing.T) {
	dir := t.TempDir()
	ctl := NewController(1, dir, 100)

	src := &fakeSource{err: errors.New("lost context")}
	res, err := ctl.Trigger(src)
	assert.Error(t, err)
	assert.Equal(t, filepath.Join(dir, "1_1_1.jpg"), res.Path)
	assert.Equal(t, 1, ctl.Cursor.Shot)

	// A file where the directory should be makes the write fail.
	blocked := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocked, nil, 0o644))
	ctl.Dir = filepath.Join(blocked, "sub")
	_, err = ctl.Trigger(&fakeSource{frame: stripes(4, 4)})
	assert.Error(t, err)
	assert.Equal(t, 1, ctl.Cursor.Shot)

	ctl.Dir = dir
	res, err = ctl.Trigger(&fakeSource{frame: stripes(4, 4)})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "1_1_1.jpg"), res.Path)
	assert.Equal(t, 2, ctl.Cursor.Shot)
}

func TestController_FinishesGrid(t *testing.T) {
	ctl := NewController(1, t.TempDir(), 50)
	src := &fakeSource{frame: stripes(2, 2)}

	var last Result
	for i := 0; i < LightCount*ShotsPerLight; i++ {
		res, err := ctl.Trigger(src)
		require.NoError(t, err)
		last = res
	}
	assert.True(t, last.Done)

	res, err := ctl.Trigger(src)
	require.NoError(t, err)
	assert.True(t, res.Done)
	assert.Equal(t, LightCount*ShotsPerLight, src.calls)
}
