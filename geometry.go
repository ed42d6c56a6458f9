package arbor

// Point is a pair of integer screen coordinates.
type Point struct {
	X, Y int
}

// PtZero is the zero point.
var PtZero = Point{}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p translated by the negation of q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Size is an integer width/height pair. Either dimension may be negative,
// which flips the orientation of a Rect built from it.
type Size struct {
	Width, Height int
}

// SzZero is the zero size.
var SzZero = Size{}

// Abs returns the size with both dimensions made non-negative.
func (s Size) Abs() Size { return Size{abs(s.Width), abs(s.Height)} }

// Align is one of nine anchor positions describing how a child rectangle is
// placed within its parent's rectangle: a 3x3 grid of top/middle/bottom by
// left/center/right.
type Align uint8

const (
	AlignTopLeft Align = iota
	AlignTopCenter
	AlignTopRight
	AlignMiddleLeft
	AlignMiddleCenter
	AlignMiddleRight
	AlignBottomLeft
	AlignBottomCenter
	AlignBottomRight
)

// Rect is an axis-aligned integer rectangle. Width and Height may be
// negative: the sign selects which corner (X, Y) names, giving four
// orientation classes. Edge accessors normalize the orientation, so
// Left/Top always resolve the lower coordinate regardless of sign.
//
// Edges are inclusive pixel coordinates: a Rect at (0,0) sized 10x10 spans
// columns 0..9 and rows 0..9.
type Rect struct {
	X, Y          int
	Width, Height int
}

// RectZero is the empty rectangle with every field 0.
var RectZero = Rect{}

// NewRect builds a rectangle from a corner point and a (possibly negative)
// size.
func NewRect(p Point, s Size) Rect {
	return Rect{p.X, p.Y, s.Width, s.Height}
}

// Pos returns the stored corner point (not necessarily the top-left).
func (r Rect) Pos() Point { return Point{r.X, r.Y} }

// Size returns the stored size, sign included.
func (r Rect) Size() Size { return Size{r.Width, r.Height} }

// IsTopLeft reports whether (X, Y) names the top-left corner.
func (r Rect) IsTopLeft() bool { return r.Width >= 0 && r.Height >= 0 }

// IsTopRight reports whether (X, Y) names the top-right corner.
func (r Rect) IsTopRight() bool { return r.Width < 0 && r.Height >= 0 }

// IsBottomLeft reports whether (X, Y) names the bottom-left corner.
func (r Rect) IsBottomLeft() bool { return r.Width >= 0 && r.Height < 0 }

// IsBottomRight reports whether (X, Y) names the bottom-right corner.
func (r Rect) IsBottomRight() bool { return r.Width < 0 && r.Height < 0 }

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int {
	if r.Width < 0 {
		return r.X + r.Width + 1
	}
	return r.X
}

// Right returns the x coordinate of the right edge (inclusive).
func (r Rect) Right() int {
	if r.Width > 0 {
		return r.X + r.Width - 1
	}
	return r.X
}

// CenterX returns the x coordinate midway between the left and right edges.
func (r Rect) CenterX() int { return r.X + r.Width/2 }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int {
	if r.Height < 0 {
		return r.Y + r.Height + 1
	}
	return r.Y
}

// Bottom returns the y coordinate of the bottom edge (inclusive).
func (r Rect) Bottom() int {
	if r.Height > 0 {
		return r.Y + r.Height - 1
	}
	return r.Y
}

// CenterY returns the y coordinate midway between the top and bottom edges.
func (r Rect) CenterY() int { return r.Y + r.Height/2 }

// TopLeft returns the normalized top-left corner.
func (r Rect) TopLeft() Point { return Point{r.Left(), r.Top()} }

// BottomRight returns the normalized bottom-right corner.
func (r Rect) BottomRight() Point { return Point{r.Right(), r.Bottom()} }

// Center returns the center point.
func (r Rect) Center() Point { return Point{r.CenterX(), r.CenterY()} }

// Normalized returns the same area expressed as a top-left rectangle with
// non-negative dimensions.
func (r Rect) Normalized() Rect {
	return Rect{r.Left(), r.Top(), abs(r.Width), abs(r.Height)}
}

// Contains reports whether p lies inside the rectangle. Edges are inclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

// ContainsRect reports whether the whole of o lies inside r.
func (r Rect) ContainsRect(o Rect) bool {
	tl, br := o.TopLeft(), o.BottomRight()
	return r.Contains(tl) && r.Contains(br)
}

// LocalToGlobalPoint maps a point expressed in r's local space (origin at
// r's top-left) into r's own coordinate space.
func (r Rect) LocalToGlobalPoint(local Point) Point {
	return Point{local.X + r.Left(), local.Y + r.Top()}
}

// GlobalToLocalPoint maps a point in r's coordinate space into r's local
// space, where (0, 0) is r's top-left corner.
func (r Rect) GlobalToLocalPoint(global Point) Point {
	return Point{global.X - r.Left(), global.Y - r.Top()}
}

// LocalToGlobal resolves a child rectangle expressed in r's local space into
// r's own coordinate space, anchored by a. The child's Left/Top offset is
// added on top of the anchor-computed base, and the result always carries
// absolute (top-left oriented) dimensions. Both rectangles may be stored in
// any orientation; edges are normalized before the arithmetic.
func (r Rect) LocalToGlobal(local Rect, a Align) Rect {
	w, h := abs(local.Width), abs(local.Height)
	x := r.Left() + local.Left()
	y := r.Top() + local.Top()
	switch a {
	case AlignTopCenter, AlignMiddleCenter, AlignBottomCenter:
		x += (abs(r.Width) - w) / 2
	case AlignTopRight, AlignMiddleRight, AlignBottomRight:
		x += abs(r.Width) - w
	}
	switch a {
	case AlignMiddleLeft, AlignMiddleCenter, AlignMiddleRight:
		y += (abs(r.Height) - h) / 2
	case AlignBottomLeft, AlignBottomCenter, AlignBottomRight:
		y += abs(r.Height) - h
	}
	return Rect{x, y, w, h}
}

// RectFromCorners returns the smallest rectangle containing both points.
func RectFromCorners(a, b Point) Rect {
	return Rect{min(a.X, b.X), min(a.Y, b.Y), abs(b.X-a.X) + 1, abs(b.Y-a.Y) + 1}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	x := min(r.Left(), o.Left())
	y := min(r.Top(), o.Top())
	return Rect{x, y, max(r.Right(), o.Right()) - x + 1, max(r.Bottom(), o.Bottom()) - y + 1}
}

// Intersect returns the overlap of r and o, or RectZero when they are
// disjoint.
func (r Rect) Intersect(o Rect) Rect {
	left := max(r.Left(), o.Left())
	top := max(r.Top(), o.Top())
	right := min(r.Right(), o.Right())
	bottom := min(r.Bottom(), o.Bottom())
	if right < left || bottom < top {
		return RectZero
	}
	return Rect{left, top, right - left + 1, bottom - top + 1}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
