package cubestate

import "math/rand"

// Scramble draws n moves uniformly at random, with replacement, from the
// 18 face turns. The caller owns the random source so results can be
// reproduced.
func Scramble(rng *rand.Rand, n int) []Move {
	if n <= 0 {
		return nil
	}
	all := AllMoves()
	moves := make([]Move, n)
	for i := range moves {
		moves[i] = all[rng.Intn(len(all))]
	}
	return moves
}

// ScrambleSeed returns the scramble produced by a fresh source seeded with seed.
func ScrambleSeed(seed int64, n int) []Move {
	return Scramble(rand.New(rand.NewSource(seed)), n)
}
