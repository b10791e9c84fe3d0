package component

// Collider declares a collision volume for an entity. The collision system
// registers a physics volume from it on first sight.
type Collider struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	Layer   string
	Trigger bool
	Static  bool
}
