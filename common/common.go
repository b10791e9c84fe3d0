package common

const (
	BaseWidth  = 640
	BaseHeight = 360

	// Step is the fixed simulation timestep in seconds.
	Step = 1.0 / 60.0

	// Gravity is world gravity in units per second squared, Y-down.
	Gravity = 600.0
)
