package component

// Velocity stores linear velocity in units per second.
type Velocity struct {
	VX, VY float64
}
