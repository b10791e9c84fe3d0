package component

// Transform stores position in world space. The collision engine reads and
// writes it directly during resolution.
type Transform struct {
	X, Y float64
}
