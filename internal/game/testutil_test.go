package game

// scriptedRand replays seq, then keeps returning 0.
type scriptedRand struct {
	seq []int
	pos int
}

func (r *scriptedRand) IntN(n int) int {
	if r.pos >= len(r.seq) {
		return 0
	}
	v := r.seq[r.pos] % n
	r.pos++
	return v
}
