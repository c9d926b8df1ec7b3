package overlay

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Centered returns a width x height rect centered in a screen of the given
// size, clamped to the top-left corner.
func Centered(screenWidth, screenHeight, width, height int) Rect {
	x := (screenWidth - width) / 2
	if x < 0 {
		x = 0
	}
	y := (screenHeight - height) / 2
	if y < 0 {
		y = 0
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// HitTest maps a click at (x, y) to the panel or the backdrop.
func HitTest(panel Rect, x, y int) Target {
	if panel.Contains(x, y) {
		return TargetPanel
	}
	return TargetBackdrop
}
