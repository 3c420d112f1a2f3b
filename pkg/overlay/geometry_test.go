package overlay

import "testing"

func TestPlaceDefaultBelowLeft(t *testing.T) {
	field := Rect{X: 40, Y: 10, W: 20, H: 2}
	overlay := Rect{W: 30, H: 16}
	table := Rect{W: 30, H: 16}

	got := Place(field, overlay, table, nil)
	want := Point{X: 40, Y: 14} // field bottom (12) + dropGap
	if got != want {
		t.Errorf("Place = %+v, want %+v", got, want)
	}
}

func TestPlaceFlipsAboveWhenNoRoomBelow(t *testing.T) {
	field := Rect{X: 0, Y: 90, W: 20, H: 2}
	table := Rect{W: 30, H: 16}
	clip := &Clip{Bounds: Rect{W: 100, H: 100}, ClientW: 100, ClientH: 100}

	got := Place(field, table, table, clip)
	// Default y = 94; 94+16 overflows 100, so shift up by field.H + table.H + flipGap.
	want := Point{X: 0, Y: 94 - (2 + 16 + 6)}
	if got != want {
		t.Errorf("Place = %+v, want %+v", got, want)
	}
}

func TestPlaceShiftsLeftWhenNoRoomRight(t *testing.T) {
	field := Rect{X: 85, Y: 10, W: 10, H: 1}
	table := Rect{W: 30, H: 16}
	clip := &Clip{Bounds: Rect{W: 100, H: 100}, ClientW: 100, ClientH: 100}

	got := Place(field, table, table, clip)
	// Table right edge aligns with field right edge (95).
	want := Point{X: 95 - 30, Y: 13}
	if got != want {
		t.Errorf("Place = %+v, want %+v", got, want)
	}
}

func TestPlaceAxesAreIndependent(t *testing.T) {
	field := Rect{X: 85, Y: 90, W: 10, H: 1}
	table := Rect{W: 30, H: 16}
	clip := &Clip{Bounds: Rect{W: 100, H: 100}, ClientW: 100, ClientH: 100}

	got := Place(field, table, table, clip)
	want := Point{X: 65, Y: 93 - (1 + 16 + 6)}
	if got != want {
		t.Errorf("Place = %+v, want both axes adjusted: %+v", got, want)
	}
}

func TestPlaceNoClipMeansNoConstraint(t *testing.T) {
	field := Rect{X: 999, Y: 999, W: 10, H: 1}
	table := Rect{W: 30, H: 16}

	got := Place(field, table, table, nil)
	want := Point{X: 999, Y: 1002}
	if got != want {
		t.Errorf("Place = %+v, want unconstrained %+v", got, want)
	}
}

func TestPlaceHonorsTableInset(t *testing.T) {
	// The table sits 2 right / 3 down inside the overlay; fit is judged on
	// the table but the returned point positions the overlay.
	field := Rect{X: 0, Y: 80, W: 20, H: 2}
	overlay := Rect{X: 10, Y: 10, W: 34, H: 22}
	table := Rect{X: 12, Y: 13, W: 30, H: 16}
	clip := &Clip{Bounds: Rect{W: 100, H: 100}, ClientW: 100, ClientH: 100}

	got := Place(field, overlay, table, clip)
	// Default y = 84; table top would be 87, bottom 103 > 100: flip.
	want := Point{X: 0, Y: 84 - (2 + 16 + 6)}
	if got != want {
		t.Errorf("Place = %+v, want %+v", got, want)
	}
}

func TestPlaceScrolledClipAncestor(t *testing.T) {
	// A clipping ancestor lower on the page: the overlay fits below the
	// field inside its client area, no flip.
	field := Rect{X: 10, Y: 210, W: 20, H: 2}
	table := Rect{W: 30, H: 16}
	clip := &Clip{Bounds: Rect{X: 0, Y: 200, W: 200, H: 120}, ClientW: 200, ClientH: 120}

	got := Place(field, table, table, clip)
	want := Point{X: 10, Y: 214}
	if got != want {
		t.Errorf("Place = %+v, want %+v", got, want)
	}
}
