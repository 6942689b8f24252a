package rules

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// scriptedRand replays fixed values and counts how often it was asked.
type scriptedRand struct {
	ints     []int
	floats   []float64
	intCalls int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.ints[r.intCalls%len(r.ints)] % n
	r.intCalls++
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func TestFoodCatalogIsValid(t *testing.T) {
	require.NoError(t, ValidateCatalog(FoodCatalog))
	require.Len(t, FoodCatalog, 4)
	require.Equal(t, "red-packet", FoodCatalog[0].Name)
	require.Equal(t, "crown", FoodCatalog[3].Name)
}

func TestValidateCatalog(t *testing.T) {
	err := ValidateCatalog(nil)
	require.Equal(t, ErrInvalidCatalog, errors.Cause(err))

	err = ValidateCatalog([]FoodCategory{{Name: "a", Probability: 0.5}, {Name: "b", Probability: 0.4}})
	require.Equal(t, ErrInvalidCatalog, errors.Cause(err))

	err = ValidateCatalog([]FoodCategory{{Name: "a", Probability: 1.5}, {Name: "b", Probability: -0.5}})
	require.Equal(t, ErrInvalidCatalog, errors.Cause(err))
}

func TestChooseCategory(t *testing.T) {
	tests := []struct {
		R        float64
		Expected FoodCategory
	}{
		{R: 0, Expected: RedPacket},
		{R: 0.49, Expected: RedPacket},
		{R: 0.50, Expected: RedPacket},
		{R: 0.51, Expected: Coin},
		{R: 0.80, Expected: Coin},
		{R: 0.81, Expected: Diamond},
		{R: 0.94, Expected: Diamond},
		{R: 0.96, Expected: Crown},
		{R: 0.999999, Expected: Crown},
	}

	fs := NewFoodSpawner(Grid{Cols: 10, Rows: 10, CellSize: 20}, rand.New(rand.NewSource(1)))
	for _, test := range tests {
		require.Equal(t, test.Expected, fs.ChooseCategory(test.R), "r=%v", test.R)
	}
}

func TestChooseCategoryFallsBackToFirst(t *testing.T) {
	catalog := []FoodCategory{
		{Name: "a", Probability: 0.4},
		{Name: "b", Probability: 0.4},
	}
	require.Equal(t, "a", ChooseCategory(catalog, 0.95).Name)
}

func TestFoodCategoryRare(t *testing.T) {
	require.False(t, RedPacket.Rare())
	require.False(t, Coin.Rare())
	require.True(t, Diamond.Rare())
	require.True(t, Crown.Rare())
}

func TestSpawnAvoidsOccupiedCells(t *testing.T) {
	r := &scriptedRand{
		// (1,1) and (2,2) are occupied, (3,3) is free.
		ints:   []int{1, 1, 2, 2, 3, 3},
		floats: []float64{0.51},
	}
	fs := NewFoodSpawner(Grid{Cols: 10, Rows: 10, CellSize: 20}, r)
	food := fs.Spawn([]Cell{{X: 1, Y: 1}, {X: 2, Y: 2}})
	require.Equal(t, Cell{X: 3, Y: 3}, food.Position)
	require.Equal(t, Coin, food.Category)
	require.Equal(t, 3, fs.SpawnAttempts())
	require.False(t, fs.Starved())
}

func TestSpawnRetryBudget(t *testing.T) {
	r := &scriptedRand{ints: []int{0}}
	fs := NewFoodSpawner(Grid{Cols: 2, Rows: 2, CellSize: 20}, r)

	// Every sample lands on (0,0), which is occupied.
	food := fs.Spawn([]Cell{{X: 0, Y: 0}})
	require.Equal(t, MaxSpawnAttempts, fs.SpawnAttempts())
	require.Equal(t, 2*MaxSpawnAttempts, r.intCalls, "one Intn per axis per attempt")
	require.True(t, fs.Starved())
	require.Equal(t, Cell{X: 0, Y: 0}, food.Position, "the last sample is accepted")
}

func TestSpawnFullBoard(t *testing.T) {
	g := Grid{Cols: 3, Rows: 3, CellSize: 20}
	occupied := []Cell{}
	for x := 0; x < g.Cols; x++ {
		for y := 0; y < g.Rows; y++ {
			occupied = append(occupied, Cell{X: x, Y: y})
		}
	}
	fs := NewFoodSpawner(g, rand.New(rand.NewSource(7)))
	food := fs.Spawn(occupied)
	require.True(t, g.Contains(food.Position))
	require.Equal(t, MaxSpawnAttempts, fs.SpawnAttempts())
}

func TestSpawnIsDeterministicForASeed(t *testing.T) {
	g := Grid{Cols: 23, Rows: 23, CellSize: 20}
	body := NewSnake(g).Body()
	a := NewFoodSpawner(g, rand.New(rand.NewSource(42)))
	b := NewFoodSpawner(g, rand.New(rand.NewSource(42)))
	for i := 0; i < 20; i++ {
		fa, fb := a.Spawn(body), b.Spawn(body)
		require.Equal(t, fa, fb)
		require.True(t, g.Contains(fa.Position))
		require.False(t, containsCell(body, fa.Position))
	}
}
