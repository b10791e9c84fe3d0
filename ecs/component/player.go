package component

// PlayerControl holds platformer movement tuning for the demo player.
type PlayerControl struct {
	MoveSpeed float64
	JumpSpeed float64

	// Grounded is refreshed each tick from a box-overlap probe under the
	// collider, independent of the resolution loop.
	Grounded bool
}
