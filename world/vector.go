package world

type Vector struct {
	X, Y float64
}

func (v Vector) IsZero() bool {
	return v.X == 0 && v.Y == 0
}
