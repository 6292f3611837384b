package shooter

// resolveBulletHits pairs bullets with enemies. Each bullet is matched with
// the first live enemy in insertion order that it overlaps; both are removed
// and the pair counts as one hit. A bullet never scores twice and an enemy
// is never hit twice.
//
// Removals are marked during the scan and applied afterwards. The returned
// slices reuse the input backing arrays and keep the surviving order.
func resolveBulletHits(bullets []Bullet, enemies []Enemy) ([]Bullet, []Enemy, int) {
	if len(bullets) == 0 || len(enemies) == 0 {
		return bullets, enemies, 0
	}

	deadBullets := make([]bool, len(bullets))
	deadEnemies := make([]bool, len(enemies))
	hits := 0

	for bi := range bullets {
		for ei := range enemies {
			if deadEnemies[ei] {
				continue
			}
			if bullets[bi].Rect.Intersects(enemies[ei].Rect) {
				deadBullets[bi] = true
				deadEnemies[ei] = true
				hits++
				break
			}
		}
	}

	if hits == 0 {
		return bullets, enemies, 0
	}
	return sweep(bullets, deadBullets), sweep(enemies, deadEnemies), hits
}

// sweep compacts items in place, dropping those marked dead.
func sweep[T any](items []T, dead []bool) []T {
	kept := items[:0]
	for i, item := range items {
		if !dead[i] {
			kept = append(kept, item)
		}
	}
	// Drop references left in the tail
	var zero T
	for i := len(kept); i < len(items); i++ {
		items[i] = zero
	}
	return kept
}
