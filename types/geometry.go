package types

// PointD is a two dimensional double precision vector, used for render scales
type PointD struct {
	X float64
	Y float64
}

// RectD is a double precision rectangle, bounds are stored x1,y1,x2,y2
type RectD struct {
	X1 float64
	Y1 float64
	X2 float64
	Y2 float64
}

// RectI is an integer rectangle, the range is half open so x2 and y2 are not
// part of the rectangle
type RectI struct {
	X1 int
	Y1 int
	X2 int
	Y2 int
}

// Width of the rectangle
func (r RectI) Width() int {
	return r.X2 - r.X1
}

// Height of the rectangle
func (r RectI) Height() int {
	return r.Y2 - r.Y1
}

// Empty returns true when the rectangle covers no pixels
func (r RectI) Empty() bool {
	return r.X2 <= r.X1 || r.Y2 <= r.Y1
}

// RangeD is an inclusive double precision range, typically frames
type RangeD struct {
	Min float64
	Max float64
}
