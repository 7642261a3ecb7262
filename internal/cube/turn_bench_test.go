package cube

import "testing"

func BenchmarkTurn(b *testing.B) {
	c := NewSolved()
	moves := [4]Turn{{Face: R, Direction: CW}, {Face: U, Direction: CW}, {Face: R, Direction: CCW}, {Face: U, Direction: CCW}}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Turn(moves[i%4])
	}
}

func BenchmarkTransform(b *testing.B) {
	c := NewSolved()
	c.TurnAll([]Turn{{Face: R, Direction: CW}, {Face: U, Direction: CW}})
	tr := Transformation{Axis: Y, Direction: CW}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Transform(tr)
	}
}

func BenchmarkFacelets(b *testing.B) {
	c := NewSolved()
	c.TurnAll([]Turn{{Face: R, Direction: CW}, {Face: U, Direction: CW}, {Face: F, Direction: Half}})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Facelets()
	}
}
