package rules

import (
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// MaxSpawnAttempts is how many random cells Spawn samples before it gives up
// looking for a free one.
const MaxSpawnAttempts = 100

// ErrInvalidCatalog is returned when food probabilities do not sum to 1.
var ErrInvalidCatalog = errors.New("rules: invalid food catalog")

// Shape is the visual tag of a food category.
type Shape string

// Food shapes, one per category.
const (
	ShapeSquare  Shape = "square"
	ShapeCircle  Shape = "circle"
	ShapeDiamond Shape = "diamond"
	ShapeCrown   Shape = "crown"
)

// FoodCategory is one scoring tier of food.
type FoodCategory struct {
	Name        string
	Value       int
	Probability float64
	Shape       Shape
	Color       string
}

// Rare reports whether the category is one of the high value tiers.
func (c FoodCategory) Rare() bool {
	return c.Shape == ShapeDiamond || c.Shape == ShapeCrown
}

// The food catalog, in the order ChooseCategory walks it.
var (
	RedPacket = FoodCategory{Name: "red-packet", Value: 10, Probability: 0.50, Shape: ShapeSquare, Color: "#ff4444"}
	Coin      = FoodCategory{Name: "coin", Value: 20, Probability: 0.30, Shape: ShapeCircle, Color: "#ffd700"}
	Diamond   = FoodCategory{Name: "diamond", Value: 50, Probability: 0.15, Shape: ShapeDiamond, Color: "#00bfff"}
	Crown     = FoodCategory{Name: "crown", Value: 100, Probability: 0.05, Shape: ShapeCrown, Color: "#9932cc"}

	FoodCatalog = []FoodCategory{RedPacket, Coin, Diamond, Crown}
)

// ValidateCatalog checks that a catalog is non-empty and its probabilities
// sum to 1.
func ValidateCatalog(catalog []FoodCategory) error {
	if len(catalog) == 0 {
		return errors.Wrap(ErrInvalidCatalog, "no categories")
	}
	sum := 0.0
	for _, c := range catalog {
		if c.Probability < 0 {
			return errors.Wrapf(ErrInvalidCatalog, "%s has negative probability", c.Name)
		}
		sum += c.Probability
	}
	if math.Abs(sum-1) > 1e-9 {
		return errors.Wrapf(ErrInvalidCatalog, "probabilities sum to %v", sum)
	}
	return nil
}

// Food is the single item on the board.
type Food struct {
	Position Cell
	Category FoodCategory
}

// Rand is the random source used for spawning. *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// FoodSpawner picks where the next food appears and what it is worth.
type FoodSpawner struct {
	grid     Grid
	catalog  []FoodCategory
	rnd      Rand
	attempts int
	starved  bool
}

// NewFoodSpawner returns a spawner over grid using the default catalog.
func NewFoodSpawner(grid Grid, rnd Rand) *FoodSpawner {
	return NewFoodSpawnerWithCatalog(grid, rnd, FoodCatalog)
}

// NewFoodSpawnerWithCatalog returns a spawner that draws categories from
// catalog. The catalog is expected to have passed ValidateCatalog.
func NewFoodSpawnerWithCatalog(grid Grid, rnd Rand, catalog []FoodCategory) *FoodSpawner {
	return &FoodSpawner{grid: grid, catalog: catalog, rnd: rnd}
}

// Spawn samples random cells until it finds one not in occupied. After
// MaxSpawnAttempts misses the last sample is returned even though it is
// occupied.
func (fs *FoodSpawner) Spawn(occupied []Cell) Food {
	var p Cell
	fs.attempts = 0
	fs.starved = false
	for fs.attempts < MaxSpawnAttempts {
		p = Cell{X: fs.rnd.Intn(fs.grid.Cols), Y: fs.rnd.Intn(fs.grid.Rows)}
		fs.attempts++
		if !containsCell(occupied, p) {
			return Food{Position: p, Category: fs.ChooseCategory(fs.rnd.Float64())}
		}
	}
	fs.starved = true
	log.WithFields(log.Fields{
		"Attempts": fs.attempts,
		"Cell":     p,
		"Occupied": len(occupied),
	}).Warn("no free cell found for food, using an occupied one")
	return Food{Position: p, Category: fs.ChooseCategory(fs.rnd.Float64())}
}

// SpawnAttempts is the number of cells sampled by the last Spawn.
func (fs *FoodSpawner) SpawnAttempts() int { return fs.attempts }

// Starved reports whether the last Spawn ran out of attempts.
func (fs *FoodSpawner) Starved() bool { return fs.starved }

// ChooseCategory maps r in [0,1) onto the catalog by cumulative probability.
// The first category whose cumulative mass reaches r wins, so r equal to a
// boundary belongs to the lower category.
func (fs *FoodSpawner) ChooseCategory(r float64) FoodCategory {
	return ChooseCategory(fs.catalog, r)
}

// ChooseCategory is the catalog walk behind FoodSpawner.ChooseCategory.
func ChooseCategory(catalog []FoodCategory, r float64) FoodCategory {
	cumulative := 0.0
	for _, c := range catalog {
		cumulative += c.Probability
		if r <= cumulative {
			return c
		}
	}
	return catalog[0]
}

func containsCell(cells []Cell, c Cell) bool {
	for _, o := range cells {
		if o.Equal(c) {
			return true
		}
	}
	return false
}
