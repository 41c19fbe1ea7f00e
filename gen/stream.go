package gen

import (
	"encoding/binary"
	"math"
)

// stream is an incremental, never-overreading cursor over the fuzzer bytes.
// Every draw consumes from the front; once the bytes run out, every draw
// fails with ErrInsufficientEntropy.
type stream struct {
	data []byte
	off  int
}

// next consumes one byte.
func (s *stream) next() (byte, error) {
	if s.off >= len(s.data) {
		return 0, ErrInsufficientEntropy
	}
	b := s.data[s.off]
	s.off++

	return b, nil
}

// intn draws an integer in [0, n) from a single byte. n must be in (0, 256].
func (s *stream) intn(n int) (int, error) {
	b, err := s.next()
	if err != nil {
		return 0, err
	}

	return int(b) % n, nil
}

// ratio reports true with probability num/den, one byte consumed.
func (s *stream) ratio(num, den int) (bool, error) {
	b, err := s.next()
	if err != nil {
		return false, err
	}

	return int(b)%den < num, nil
}

// float64 decodes eight little-endian bytes as a float64 bit pattern.
// Non-finite patterns are regularized to 0 so generated constants stay
// comparable under structural equality.
func (s *stream) float64() (float64, error) {
	if s.off+8 > len(s.data) {
		return 0, ErrInsufficientEntropy
	}
	bits := binary.LittleEndian.Uint64(s.data[s.off:])
	s.off += 8

	f := math.Float64frombits(bits)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, nil
	}

	return f, nil
}
