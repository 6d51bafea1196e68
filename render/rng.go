package render

// xorshift is the 32-bit star-field generator (shift triple 13/17/5). It is
// advanced exactly once per background cell, so star placement is
// reproducible given a fixed seed and a fixed cell-visitation order. It is
// never reseeded across resizes.
type xorshift struct {
	state uint32
}

// newXorshift seeds the generator. Zero is a fixed point of the shift
// sequence and is replaced with one.
func newXorshift(seed uint32) *xorshift {
	if seed == 0 {
		seed = 1
	}
	return &xorshift{state: seed}
}

func (r *xorshift) next() uint32 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return r.state
}
