package checksum_test

import (
	"testing"

	"github.com/nsrg-lab/attackgen/checksum"
)

func TestSumReferenceVector(t *testing.T) {

	// Worked example from RFC 1071 section 3.
	data := []byte{0x00, 0x01, 0xf2, 0x03, 0xf4, 0xf5, 0xf6, 0xf7}

	if got := checksum.Sum(data); got != 0x220d {
		t.Errorf("Sum(%x) = %#04x, want 0x220d", data, got)
	}
}

func TestSumAllZeroWords(t *testing.T) {

	if got := checksum.Sum(make([]byte, 20)); got != 0xffff {
		t.Errorf("Sum of all-zero buffer = %#04x, want 0xffff", got)
	}
}

func TestSumOddLength(t *testing.T) {

	// {0x01, 0x02, 0x03} == {0x01, 0x02, 0x03, 0x00} with RFC padding.
	odd := checksum.Sum([]byte{0x01, 0x02, 0x03})
	padded := checksum.Sum([]byte{0x01, 0x02, 0x03, 0x00})

	if odd != padded {
		t.Errorf("odd-length Sum = %#04x, zero-padded Sum = %#04x", odd, padded)
	}
}

func TestSumIsPure(t *testing.T) {

	data := []byte{0xde, 0xad, 0xbe, 0xef, 0x01}

	first := checksum.Sum(data)
	second := checksum.Sum(data)

	if first != second {
		t.Errorf("Sum not deterministic: %#04x then %#04x", first, second)
	}

	if data[0] != 0xde || data[4] != 0x01 {
		t.Errorf("Sum modified its input: %x", data)
	}
}

func TestSumVerifiesFilledHeader(t *testing.T) {

	// A buffer carrying its own correct checksum sums to zero.
	data := []byte{0x45, 0x00, 0x00, 0x28, 0x1c, 0x46, 0x00, 0x00, 0x40, 0x06,
		0x00, 0x00, 0xc0, 0xa8, 0x00, 0x01, 0xc0, 0xa8, 0x00, 0xc7}

	c := checksum.Sum(data)
	data[10] = byte(c >> 8)
	data[11] = byte(c)

	if got := checksum.Sum(data); got != 0 {
		t.Errorf("Sum over header with checksum in place = %#04x, want 0", got)
	}
}
