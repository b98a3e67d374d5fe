package snake

import (
	"slices"

	"github.com/2022831007/SDL-Game-Project/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the direct reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the offset of one step of the given size.
func (d Direction) Delta(step int) core.Point {
	switch d {
	case DirUp:
		return core.Point{Y: -step}
	case DirDown:
		return core.Point{Y: step}
	case DirLeft:
		return core.Point{X: -step}
	default:
		return core.Point{X: step}
	}
}

// directionFor maps a directional action to a Direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// Body is the snake's segment list. Index 0 is the head.
type Body struct {
	segs []core.Point
}

// NewBody lays out length segments leftwards from head, step apart.
func NewBody(head core.Point, length, step int) Body {
	segs := make([]core.Point, length)
	for i := range segs {
		segs[i] = core.Point{X: head.X - i*step, Y: head.Y}
	}
	return Body{segs: segs}
}

// Shift moves every segment into the position of the one ahead of it,
// tail first. The head stays where it is.
func (b *Body) Shift() {
	for i := len(b.segs) - 1; i > 0; i-- {
		b.segs[i] = b.segs[i-1]
	}
}

// Advance moves the head one step in d.
func (b *Body) Advance(d Direction, step int) {
	if len(b.segs) == 0 {
		return
	}
	b.segs[0] = b.segs[0].Add(d.Delta(step))
}

// Grow appends a segment on top of the current tail. The two overlap until
// the next Shift pulls them apart.
func (b *Body) Grow() {
	if len(b.segs) == 0 {
		return
	}
	b.segs = append(b.segs, b.segs[len(b.segs)-1])
}

// HitsSelf reports whether the head shares a position with any other segment.
func (b Body) HitsSelf() bool {
	if len(b.segs) == 0 {
		return false
	}
	return slices.Contains(b.segs[1:], b.segs[0])
}

// Contains reports whether any segment is at p.
func (b Body) Contains(p core.Point) bool {
	return slices.Contains(b.segs, p)
}

// Head returns the head position.
func (b Body) Head() core.Point {
	if len(b.segs) == 0 {
		return core.Point{}
	}
	return b.segs[0]
}

// Len returns the number of segments.
func (b Body) Len() int {
	return len(b.segs)
}

// Segments returns a copy of the segments, head first.
func (b Body) Segments() []core.Point {
	return slices.Clone(b.segs)
}
