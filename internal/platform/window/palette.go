// Package window runs arcade games in a desktop window using ebiten.
// One logical unit is one pixel.
package window

import (
	"image/color"
	"time"

	"github.com/2022831007/SDL-Game-Project/internal/core"
)

var palette = map[core.Color]color.RGBA{
	core.ColorBlack:   {0, 0, 0, 255},
	core.ColorWhite:   {255, 255, 255, 255},
	core.ColorRed:     {255, 0, 0, 255},
	core.ColorGreen:   {0, 255, 0, 255},
	core.ColorBlue:    {0, 0, 255, 255},
	core.ColorSkyBlue: {135, 206, 235, 255},
	core.ColorYellow:  {255, 255, 0, 255},
	core.ColorGray:    {128, 128, 128, 255},
}

// RGBA maps a palette entry to its pixel color. ColorDefault is black.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorBlack]
}

// PollTPS is the ebiten tick rate. Input is polled every tick; the game
// steps every StepTicks(delay) ticks.
const PollTPS = 60

// StepTicks converts a frame delay to a number of ebiten ticks at PollTPS,
// rounded to the nearest whole tick and never below one.
func StepTicks(delay time.Duration) int {
	tick := time.Second / PollTPS
	return max(int((delay+tick/2)/tick), 1)
}
