// Package raster holds the integer circle algorithms used by the circle demos.
package raster

import "math"

// PlotFunc receives one rasterized point.
type PlotFunc func(x, y int)

// Midpoint plots the outline of a circle using the midpoint algorithm.
// Every octant point is emitted; points on the axes and diagonals may be
// emitted more than once.
func Midpoint(cx, cy, r int, plot PlotFunc) {
	if r < 0 {
		return
	}
	if r == 0 {
		plot(cx, cy)
		return
	}

	x, y := r, 0
	d := 1 - r
	for x >= y {
		plot(cx+x, cy+y)
		plot(cx+y, cy+x)
		plot(cx-y, cy+x)
		plot(cx-x, cy+y)
		plot(cx-x, cy-y)
		plot(cx-y, cy-x)
		plot(cx+y, cy-x)
		plot(cx+x, cy-y)

		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// ColumnScan plots a circle by walking every column in [-r, r] and placing
// one point above and one below the center at height floor(sqrt(r²-x²)).
// Steep parts of the outline come out sparse.
func ColumnScan(cx, cy, r int, plot PlotFunc) {
	if r < 0 {
		return
	}
	for x := -r; x <= r; x++ {
		h := int(math.Sqrt(float64(r*r - x*x)))
		plot(cx+x, cy+h)
		plot(cx+x, cy-h)
	}
}

// CirclesOverlap reports whether two circles of equal radius r centered at
// (ax, ay) and (bx, by) touch or overlap.
func CirclesOverlap(ax, ay, bx, by, r int) bool {
	total := 2 * r
	dx := ax - bx
	dy := ay - by
	return dx*dx+dy*dy <= total*total
}
