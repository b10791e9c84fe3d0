package component

// Sprite is a flat-color debug quad. The demo has no art assets; volumes are
// drawn directly from their collider dimensions.
type Sprite struct {
	R, G, B, A uint8
}
