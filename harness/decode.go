package harness

import (
	"encoding/binary"
	"math"
)

// maxInputMagnitude clamps decoded inputs: huge magnitudes make every
// expression overflow immediately, which teaches the oracle nothing.
const maxInputMagnitude = 1e6

// decodeInputs reads n little-endian float64 values from the front of
// data. It reports false when data is too short or any decoded value is
// non-finite; the caller skips the whole input in that case, mirroring how
// the mutation engine expects unusable value bytes to be handled.
func decodeInputs(data []byte, n int) ([]float64, bool) {
	if len(data) < n*8 {
		return nil, false
	}

	inputs := make([]float64, n)
	for i := 0; i < n; i++ {
		f := math.Float64frombits(binary.LittleEndian.Uint64(data[i*8:]))
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, false
		}
		if f > maxInputMagnitude {
			f = maxInputMagnitude
		}
		if f < -maxInputMagnitude {
			f = -maxInputMagnitude
		}
		inputs[i] = f
	}

	return inputs, true
}
