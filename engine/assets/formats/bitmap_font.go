package formats

import (
	"bytes"
	"fmt"

	"github.com/fzipp/bmfont"

	"github.com/anvil-engine/anvil/engine/systems"
)

type FontGlyph struct {
	Codepoint rune
	X         uint16
	Y         uint16
	Width     uint16
	Height    uint16
	XOffset   int16
	YOffset   int16
	XAdvance  int16
	PageID    uint8
}

type FontKerning struct {
	Codepoint0 rune
	Codepoint1 rune
	Amount     int16
}

type FontPage struct {
	ID   int8
	File string
}

// FontData is the parsed form of a bitmap font descriptor. The page files
// it references are atlas images loaded separately.
type FontData struct {
	Face       string
	Size       uint32
	LineHeight int32
	Baseline   int32
	AtlasSizeX int32
	AtlasSizeY int32
	Glyphs     []FontGlyph
	Kernings   []FontKerning
	Pages      []FontPage
}

// BitmapFont parses AngelCode .fnt descriptors (text variant).
type BitmapFont struct{}

func (BitmapFont) Extension() string {
	return "fnt"
}

func (BitmapFont) Parse(b []byte, pool *systems.JobSystem) (*FontData, error) {
	desc, err := bmfont.ReadDescriptor(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("reading fnt descriptor: %w", err)
	}

	data := &FontData{
		Face:       desc.Info.Face,
		Size:       uint32(desc.Info.Size),
		LineHeight: int32(desc.Common.LineHeight),
		Baseline:   int32(desc.Common.Base),
		AtlasSizeX: int32(desc.Common.ScaleH),
		AtlasSizeY: int32(desc.Common.ScaleW),
		Glyphs:     make([]FontGlyph, 0, len(desc.Chars)),
		Kernings:   make([]FontKerning, 0, len(desc.Kerning)),
		Pages:      make([]FontPage, 0, len(desc.Pages)),
	}

	for _, p := range desc.Pages {
		data.Pages = append(data.Pages, FontPage{
			ID:   int8(p.ID),
			File: p.File,
		})
	}

	for _, g := range desc.Chars {
		data.Glyphs = append(data.Glyphs, FontGlyph{
			Codepoint: g.ID,
			X:         uint16(g.X),
			Y:         uint16(g.Y),
			Width:     uint16(g.Width),
			Height:    uint16(g.Height),
			XOffset:   int16(g.XOffset),
			YOffset:   int16(g.YOffset),
			XAdvance:  int16(g.XAdvance),
			PageID:    uint8(g.Page),
		})
	}

	for p, k := range desc.Kerning {
		data.Kernings = append(data.Kernings, FontKerning{
			Codepoint0: p.First,
			Codepoint1: p.Second,
			Amount:     int16(k.Amount),
		})
	}

	return data, nil
}
