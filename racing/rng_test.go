package racing_test

// seqRNG replays fixed sequences so outcomes can be asserted exactly.
type seqRNG struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *seqRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *seqRNG) IntN(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}
