package raster

import (
	"testing"

	"github.com/2022831007/SDL-Game-Project/internal/core"
)

func collect(draw func(PlotFunc)) map[core.Point]bool {
	pts := make(map[core.Point]bool)
	draw(func(x, y int) {
		pts[core.Point{X: x, Y: y}] = true
	})
	return pts
}

func TestMidpointPointsLieNearRadius(t *testing.T) {
	const cx, cy, r = 50, 40, 30
	pts := collect(func(p PlotFunc) { Midpoint(cx, cy, r, p) })

	if len(pts) == 0 {
		t.Fatal("Midpoint produced no points")
	}
	for p := range pts {
		dx, dy := p.X-cx, p.Y-cy
		d2 := dx*dx + dy*dy
		// Every outline point must be within one unit of the true radius.
		if d2 < (r-1)*(r-1) || d2 > (r+1)*(r+1) {
			t.Errorf("point %+v is %d² away from center, expected about %d²", p, d2, r)
		}
	}
}

func TestMidpointHitsCardinalPoints(t *testing.T) {
	pts := collect(func(p PlotFunc) { Midpoint(0, 0, 10, p) })

	for _, want := range []core.Point{{X: 10}, {X: -10}, {Y: 10}, {Y: -10}} {
		if !pts[want] {
			t.Errorf("expected cardinal point %+v", want)
		}
	}
}

func TestMidpointDegenerate(t *testing.T) {
	pts := collect(func(p PlotFunc) { Midpoint(3, 4, 0, p) })
	if len(pts) != 1 || !pts[core.Point{X: 3, Y: 4}] {
		t.Errorf("radius 0 should plot only the center, got %v", pts)
	}

	pts = collect(func(p PlotFunc) { Midpoint(3, 4, -1, p) })
	if len(pts) != 0 {
		t.Errorf("negative radius should plot nothing, got %v", pts)
	}
}

func TestColumnScan(t *testing.T) {
	const cx, cy, r = 320, 240, 100
	count := 0
	pts := collect(func(p PlotFunc) {
		ColumnScan(cx, cy, r, func(x, y int) {
			count++
			p(x, y)
		})
	})

	// Two plots per column.
	if count != 2*(2*r+1) {
		t.Errorf("expected %d plots, got %d", 2*(2*r+1), count)
	}
	if !pts[core.Point{X: cx, Y: cy + r}] || !pts[core.Point{X: cx, Y: cy - r}] {
		t.Error("top and bottom of the circle should be plotted")
	}
	if !pts[core.Point{X: cx - r, Y: cy}] || !pts[core.Point{X: cx + r, Y: cy}] {
		t.Error("leftmost and rightmost columns should plot the center row")
	}
	for p := range pts {
		if p.X < cx-r || p.X > cx+r {
			t.Errorf("point %+v outside column range", p)
		}
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		ax, ay, bx, by int
		expected       bool
	}{
		{"same center", 0, 0, 0, 0, true},
		{"exactly touching", 0, 0, 60, 0, true},
		{"one unit apart", 0, 0, 61, 0, false},
		{"diagonal overlap", 0, 0, 30, 30, true},
		{"far apart", 30, 300, 400, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := CirclesOverlap(tc.ax, tc.ay, tc.bx, tc.by, 30); got != tc.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", got, tc.expected)
			}
		})
	}
}
