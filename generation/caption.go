package generation

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
)

// MeasureCaptionPadding renders the caption over a solid magenta frame and
// scans the decoded PNG for rows that differ from the background to measure
// the rendered text height. The returned padding is the measured height plus
// the vertical margin on both sides; 0 when the caption renders to nothing.
func (g *Generator) MeasureCaptionPadding(ctx context.Context, style TextStyle, text string, width, height int) (int, error) {
	tmp, err := os.MkdirTemp("", "sub2clip-caption-")
	if err != nil {
		return 0, fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmp)

	assPath := filepath.Join(tmp, "caption.ass")
	pngPath := filepath.Join(tmp, "caption.png")

	doc := captionASS(style, text, width, height)
	if err := os.WriteFile(assPath, []byte(doc), 0644); err != nil {
		return 0, fmt.Errorf("write caption ass: %w", err)
	}

	vf := fmt.Sprintf("subtitles=%s,format=rgba", assPath)
	if err := g.exec.RenderCaptionFrame(ctx, width, height, vf, pngPath); err != nil {
		return 0, err
	}

	measured, err := measureTextHeight(pngPath)
	if err != nil {
		return 0, err
	}
	if measured == 0 {
		return 0, nil
	}
	return measured + style.MarginV*2, nil
}

// measureTextHeight returns the height in pixels of the region that differs
// from the background color (sampled at the top-left pixel).
func measureTextHeight(pngPath string) (int, error) {
	f, err := os.Open(pngPath)
	if err != nil {
		return 0, fmt.Errorf("open caption frame: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return 0, fmt.Errorf("decode caption frame: %w", err)
	}

	bounds := img.Bounds()
	bgR, bgG, bgB, _ := img.At(bounds.Min.X, bounds.Min.Y).RGBA()

	top, bottom := -1, -1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		rowHas := false
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != bgR || g != bgG || b != bgB {
				rowHas = true
				break
			}
		}
		if rowHas {
			if top < 0 {
				top = y
			}
			bottom = y
		}
	}

	if top < 0 {
		return 0, nil
	}
	return bottom - top + 1, nil
}
