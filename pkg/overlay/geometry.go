package overlay

// Point is an absolute position in host coordinates (pixels in a browser
// host, character cells in a terminal host).
type Point struct {
	X, Y int
}

// Rect is an axis-aligned bounding rectangle in host coordinates.
type Rect struct {
	X, Y, W, H int
}

// Right returns the x coordinate just past the rectangle's right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the y coordinate just past the rectangle's bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Clip describes the nearest overflow-clipping ancestor of a field: its
// bounds plus the size of its visible client area.
type Clip struct {
	Bounds  Rect
	ClientW int
	ClientH int
}

// Placement offsets. dropGap separates the overlay from the field's bottom
// edge; flipGap is the extra distance applied when flipping above the field.
const (
	dropGap = 2
	flipGap = 6
)

// Place computes the overlay origin for a field. The default placement is
// below-left of the field. When the inner table would overflow the clipping
// ancestor's visible area vertically, the overlay flips above the field;
// when it would overflow horizontally, it shifts left until the table's
// right edge aligns with the field's right edge. The two axis decisions are
// independent. A nil clip applies no constraint.
//
// overlay and table are the overlay's current bounds and its inner table's
// bounds; their relative offset is preserved, so fit is judged on the table
// while the returned point positions the overlay itself. Positions are not
// cached: callers re-invoke Place on every focus, scroll, resize or
// ancestor box change.
func Place(field, overlay, table Rect, clip *Clip) Point {
	p := Point{X: field.X, Y: field.Bottom() + dropGap}

	insetX := table.X - overlay.X
	insetY := table.Y - overlay.Y

	if clip != nil {
		if p.Y+insetY+table.H > clip.Bounds.Y+clip.ClientH {
			p.Y -= field.H + table.H + flipGap
		}
		if p.X+insetX+table.W > clip.Bounds.X+clip.ClientW {
			p.X = field.Right() - (insetX + table.W)
		}
	}
	return p
}
