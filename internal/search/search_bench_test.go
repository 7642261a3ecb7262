package search

import (
	"context"
	"testing"

	"github.com/ehrlich-b/cube/internal/coord"
	"github.com/ehrlich-b/cube/internal/cube"
	"github.com/ehrlich-b/cube/internal/moveset"
	"github.com/ehrlich-b/cube/internal/prune"
)

func BenchmarkEOSearch(b *testing.B) {
	c := coord.EOFB{}
	ms := moveset.ForKind(moveset.EO)
	table := prune.Build(c, ms)
	scramble, _ := cube.ParseTurns("R U R' U' F2 D")

	opts := Options{
		MoveSet:    ms,
		Coordinate: c,
		Table:      table,
		IsGoal:     func(cb *cube.Cube) bool { return c.Encode(cb) == 0 },
		MaxLength:  8,
		Quality:    1,
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root := cube.NewSolved()
		root.TurnAll(scramble)
		ch := Search(context.Background(), root, opts)
		for range ch {
		}
	}
}
