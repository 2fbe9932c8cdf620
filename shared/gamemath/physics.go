package gamemath

// Approach moves speed toward zero by friction without crossing it.
func Approach(speed, friction int32) int32 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampAbs clamps a value to [-limit, limit].
func ClampAbs(speed, limit int32) int32 {
	return Clamp(speed, -limit, limit)
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi int32) int32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

// Sign returns -1, 0 or 1.
func Sign(v int32) int32 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Smooth blends current toward target, keeping (den-1)/den of the old value.
func Smooth(current, target, den int32) int32 {
	return current + (target-current)/den
}
