package component

// Gravity scales world gravity for a moving entity.
// 1.0 = normal gravity, 0.0 = none.
type Gravity struct {
	Scale float64
}
