package cubestate

// normalizeTurn maps a quarter-turn count to a Turn.
// -3 -> CW, -2 -> Double, -1 -> CCW, 0 -> 0, 1 -> CW, 2 -> Double, 3 -> CCW
func normalizeTurn(quarters int) Turn {
	quarters = ((quarters % 4) + 4) % 4
	switch quarters {
	case 1:
		return CW
	case 2:
		return Double
	case 3:
		return CCW
	}
	return 0
}

// quarters returns the number of clockwise quarter turns in a move.
func (m Move) quarters() int {
	if m.Turn == CCW {
		return 3
	}
	return int(m.Turn)
}

// Simplify merges runs of turns on the same face and drops runs that cancel.
// The result leaves a cube in the same state as the input.
//
//	R R      -> R2
//	R R'     -> (nothing)
//	U R R' U -> U2
func Simplify(moves []Move) []Move {
	out := make([]Move, 0, len(moves))
	for _, m := range moves {
		if !m.Valid() {
			continue
		}
		if n := len(out); n > 0 && out[n-1].Face == m.Face {
			turn := normalizeTurn(out[n-1].quarters() + m.quarters())
			if turn == 0 {
				out = out[:n-1]
			} else {
				out[n-1].Turn = turn
			}
			continue
		}
		out = append(out, m)
	}
	return out
}
