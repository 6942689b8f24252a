package rules

// CheckCollision looks at the snake after a move and reports whether it has
// died, and why. Walls are checked before the body so a head that leaves the
// board is always reported as a wall collision.
func CheckCollision(grid Grid, s *Snake) (string, bool) {
	if deathByOutOfBounds(grid, s) {
		return DeathCauseWallCollision, true
	}
	if deathBySelfCollision(s) {
		return DeathCauseSnakeSelfCollision, true
	}
	return "", false
}

func deathByOutOfBounds(grid Grid, s *Snake) bool {
	return s.CollidesWithWalls(grid)
}

func deathBySelfCollision(s *Snake) bool {
	return s.CollidesWithSelf()
}
