package snake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Phase    Phase
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	TailX    int
	TailY    int
	Dir      Direction
	FoodX    int
	FoodY    int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	var headX, headY, tailX, tailY int
	if n := len(g.body.segs); n > 0 {
		headX, headY = g.body.segs[0].X, g.body.segs[0].Y
		tailX, tailY = g.body.segs[n-1].X, g.body.segs[n-1].Y
	}

	return Snapshot{
		Tick:     g.tick,
		Phase:    g.phase,
		Score:    g.score,
		SnakeLen: len(g.body.segs),
		HeadX:    headX,
		HeadY:    headY,
		TailX:    tailX,
		TailY:    tailY,
		Dir:      g.dir,
		FoodX:    g.food.X,
		FoodY:    g.food.Y,
	}
}
