package shooter

// Snapshot contains the complete game state for replay verification.
// Uses primitive types only for stable serialization.
type Snapshot struct {
	Phase        int
	EndReason    int
	PlayFrames   int
	Score        int
	PlayerX      int
	SpawnCounter int

	// Each bullet is 2 ints: X, Y
	BulletData []int

	// Each enemy is 2 ints: X, Y
	EnemyData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bulletData := make([]int, 0, len(g.bullets)*2)
	for _, b := range g.bullets {
		bulletData = append(bulletData, b.Rect.X, b.Rect.Y)
	}

	enemyData := make([]int, 0, len(g.enemies)*2)
	for _, e := range g.enemies {
		enemyData = append(enemyData, e.Rect.X, e.Rect.Y)
	}

	return Snapshot{
		Phase:        int(g.phase),
		EndReason:    int(g.endReason),
		PlayFrames:   g.playFrames,
		Score:        g.score,
		PlayerX:      g.player.X,
		SpawnCounter: g.spawner.Counter(),
		BulletData:   bulletData,
		EnemyData:    enemyData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v int) {
		h = h*31 + uint64(int64(v)) //#nosec G115 -- hash computation
	}

	mix(snap.Phase)
	mix(snap.EndReason)
	mix(snap.PlayFrames)
	mix(snap.Score)
	mix(snap.PlayerX)
	mix(snap.SpawnCounter)
	mix(len(snap.BulletData))
	for _, v := range snap.BulletData {
		mix(v)
	}
	mix(len(snap.EnemyData))
	for _, v := range snap.EnemyData {
		mix(v)
	}
	return h
}
