package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/taigrr/glint/pkg/math3d"
)

// Draw converts the framebuffer to terminal cells and draws them on the
// screen.
// The framebuffer height should be 2x the terminal height.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	// Each terminal row represents 2 framebuffer rows
	// We use ▀ (upper half block) with fg=top color and bg=bottom color

	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= fb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X && col-area.Min.X < fb.Width; col++ {
			x := col - area.Min.X
			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: TerminalColor(fb.GetPixel(x, topY)),
				},
			}
			if botY < fb.Height {
				cell.Style.Bg = TerminalColor(fb.GetPixel(x, botY))
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// TerminalColor converts a linear framebuffer color to a displayable
// color, clamping each channel to [0,1].
func TerminalColor(c math3d.Vec3) color.Color {
	if c.IsNaN() {
		return colorful.Color{}
	}
	return colorful.Color{R: c.X, G: c.Y, B: c.Z}.Clamped()
}
