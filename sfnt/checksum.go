package sfnt

import "encoding/binary"

// check accumulates the sfnt table checksum: the sum, modulo 2^32, of
// the table's data interpreted as big-endian uint32 words, with the
// final partial word (if any) zero-padded on the right.
//
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff#calculating-checksums
type check struct {
	sum  uint32
	buf  [4]byte
	used int
}

func (c *check) Write(p []byte) (int, error) {
	n := 0
	for len(p) > 0 {
		k := copy(c.buf[c.used:], p)
		p = p[k:]
		n += k
		c.used += k

		if c.used == 4 {
			c.sum += binary.BigEndian.Uint32(c.buf[:])
			c.used = 0
		}
	}
	return n, nil
}

func (c *check) Sum() uint32 {
	if c.used != 0 {
		var zero [4]byte
		_, _ = c.Write(zero[:4-c.used])
	}
	return c.sum
}

// Checksum computes the sfnt checksum of a single table's data.
func Checksum(data []byte) uint32 {
	c := &check{}
	_, _ = c.Write(data)
	return c.Sum()
}
