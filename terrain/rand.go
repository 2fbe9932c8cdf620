package terrain

// DecorSeed seeds the decoration generator at the start of every decode.
const DecorSeed int32 = 0x2F6E

// RandState is a small xorshift generator. It is deterministic across
// platforms: the same seed always yields the same sequence.
type RandState struct {
	state int32
}

func NewRandState(seed int32) RandState {
	return RandState{state: seed}
}

// Next advances the generator and returns the new state.
func (r *RandState) Next() int32 {
	r.state++
	r.state ^= r.state >> 6
	r.state ^= r.state << 12
	r.state ^= r.state >> 13
	return r.state
}
