package input

// Threshold values are packed into an int16 so that Atom remains a
// comparable value type. The packing clamps to [-1, 1] and loses a
// little precision; round-tripping a value stays within 0.0002 of the
// original.

func packSnorm16(v float64) int16 {
	a := v * 32767.0
	if v >= 0 {
		a += 0.5
	} else {
		a -= 0.5
	}
	if a > 32767.0 {
		a = 32767.0
	}
	if a < -32768.0 {
		a = -32768.0
	}
	return int16(a)
}

func unpackSnorm16(v int16) float64 {
	f := float64(v) / 32767.0
	if f < -1.0 {
		return -1.0
	}
	return f
}
