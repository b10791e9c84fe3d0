package physics

import "github.com/jakecoffman/cp"

// PointCast returns the first enabled volume, in registration order, whose
// layer is in mask and whose cached bounds contain p. Read-only; bounds are
// as of the last Tick (or the volume's last refresh).
func (s *System) PointCast(p cp.Vector, mask Layer) *Volume {
	if s == nil {
		return nil
	}
	for _, v := range s.volumes {
		if !v.Enabled || v.Transform == nil || v.Layer&mask == 0 {
			continue
		}
		if v.ContainsPoint(p) {
			return v
		}
	}
	return nil
}

// BoxOverlap returns every enabled volume whose layer is in mask and whose
// cached bounds strictly intersect the query rectangle, given by its center
// and extents. Used for derived sensing, e.g. a probe under an entity's feet
// for ground detection, with no effect on resolution or events.
func (s *System) BoxOverlap(center cp.Vector, w, h float64, mask Layer) []*Volume {
	if s == nil {
		return nil
	}
	q := cp.BB{
		L: center.X - w/2, R: center.X + w/2,
		B: center.Y - h/2, T: center.Y + h/2,
	}
	var out []*Volume
	for _, v := range s.volumes {
		if !v.Enabled || v.Transform == nil || v.Layer&mask == 0 {
			continue
		}
		if v.bb.L < q.R && v.bb.R > q.L && v.bb.B < q.T && v.bb.T > q.B {
			out = append(out, v)
		}
	}
	return out
}
