package rules

const (
	// DeathCauseWallCollision is when a snake runs off the board
	DeathCauseWallCollision = "wall-collision"
	// DeathCauseSnakeSelfCollision is when a snake runs into its own body
	DeathCauseSnakeSelfCollision = "snake-self-collision"
)
