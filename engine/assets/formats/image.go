package formats

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"golang.org/x/image/bmp"

	"github.com/anvil-engine/anvil/engine/systems"
)

// ImageData is the intermediate representation every image format decodes
// to: tightly packed RGBA8 pixels, top-left origin unless flipped.
type ImageData struct {
	ChannelCount uint8
	Width        uint32
	Height       uint32
	Pixels       []uint8
}

// PNG decodes .png files. FlipY flips the rows for backends with a
// bottom-left origin.
type PNG struct {
	FlipY bool
}

func (PNG) Extension() string {
	return "png"
}

func (f PNG) Parse(b []byte, pool *systems.JobSystem) (*ImageData, error) {
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decoding png: %w", err)
	}
	return imageData(img, f.FlipY), nil
}

// BMP decodes .bmp files.
type BMP struct {
	FlipY bool
}

func (BMP) Extension() string {
	return "bmp"
}

func (f BMP) Parse(b []byte, pool *systems.JobSystem) (*ImageData, error) {
	img, err := bmp.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decoding bmp: %w", err)
	}
	return imageData(img, f.FlipY), nil
}

func imageData(img image.Image, flipY bool) *ImageData {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	pixels := rgba.Pix
	if flipY {
		pixels = flipRows(pixels, rgba.Stride, bounds.Dy())
	}

	return &ImageData{
		ChannelCount: 4,
		Width:        uint32(bounds.Dx()),
		Height:       uint32(bounds.Dy()),
		Pixels:       pixels,
	}
}

func flipRows(pixels []uint8, stride, rows int) []uint8 {
	flipped := make([]uint8, len(pixels))
	for y := 0; y < rows; y++ {
		copy(flipped[(rows-1-y)*stride:(rows-y)*stride], pixels[y*stride:(y+1)*stride])
	}
	return flipped
}
