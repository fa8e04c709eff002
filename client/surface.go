package client

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Surface draws onto an ebiten image.
type Surface struct {
	image *ebiten.Image
}

func NewSurface(image *ebiten.Image) *Surface {
	return &Surface{image: image}
}

func (s *Surface) Clear() {
	s.image.Clear()
}

func (s *Surface) FillRect(x, y, width, height float64, c color.Color) {
	ebitenutil.DrawRect(s.image, x, y, width, height, c)
}
