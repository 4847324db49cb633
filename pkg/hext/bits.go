package hext

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// bitBuffer collects the bits of a bitstream group, packed most significant
// bit first.
type bitBuffer struct {
	buf []byte
	n   int
}

func (b *bitBuffer) push(bit bool) {
	if b.n%8 == 0 {
		b.buf = append(b.buf, 0)
	}
	if bit {
		b.buf[b.n/8] |= 0x80 >> (b.n % 8)
	}
	b.n++
}

func (b *bitBuffer) len() int {
	return b.n
}

func (b *bitBuffer) reset() {
	b.buf = b.buf[:0]
	b.n = 0
}

// drain returns the collected bits as octets and empties the buffer. An
// unaligned group is left-padded with zero bits when pad is set.
func (b *bitBuffer) drain(pad bool) ([]byte, error) {
	defer b.reset()

	rem := b.n % 8
	if rem != 0 && !pad {
		return nil, &Error{Kind: UnalignedBits}
	}

	var out bytes.Buffer
	w := bitio.NewWriter(&out)
	if rem != 0 {
		if err := w.WriteBits(0, uint8(8-rem)); err != nil {
			return nil, fmt.Errorf("padding bitstream: %w", err)
		}
	}
	whole := b.n / 8
	if _, err := w.Write(b.buf[:whole]); err != nil {
		return nil, fmt.Errorf("writing bitstream: %w", err)
	}
	if rem != 0 {
		if err := w.WriteBits(uint64(b.buf[whole]>>(8-rem)), uint8(rem)); err != nil {
			return nil, fmt.Errorf("writing bitstream: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("writing bitstream: %w", err)
	}
	return out.Bytes(), nil
}
