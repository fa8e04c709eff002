package object

import (
	"encoding/json"
	"fmt"
	"image/color"
)

const Size = 50

var Color = color.RGBA{255, 0, 0, 255}

// Surface is an immediate-mode 2D drawing target.
type Surface interface {
	Clear()
	FillRect(x, y, width, height float64, c color.Color)
}

// ID identifies an entity at the remote store. Stores hand out either
// strings or numbers, so both decode into the same form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

type Coords struct {
	X, Y float64
}

type Entity struct {
	Coords
	ID       ID
	Occupied bool
}

func New(x, y float64, id ID, occupied bool) *Entity {
	return &Entity{
		Coords:   Coords{X: x, Y: y},
		ID:       id,
		Occupied: occupied,
	}
}

func (e *Entity) Draw(s Surface) {
	s.FillRect(e.X, e.Y, Size, Size, Color)
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s (%0.0f,%0.0f)", e.ID, e.X, e.Y)
}
