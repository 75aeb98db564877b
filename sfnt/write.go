package sfnt

import (
	"bytes"
	"encoding/binary"
	"math/bits"
	"sort"
)

// Write serialises the container to its binary sfnt representation:
// header, tag-sorted table directory, then table payloads in their
// original relative order (existing tables keep their position;
// tables added via Replace are appended at the end), each padded to a
// 4-byte boundary. If a "head" table is present, its checksum
// adjustment field is patched to make the whole-file checksum equal
// 0xB1B0AFBA, per the OpenType spec.
func (c *Container) Write() ([]byte, error) {
	numTables := len(c.order)
	if numTables == 0 {
		return nil, &ErrMalformed{Reason: "no tables to write"}
	}

	sel := bits.Len(uint(numTables)) - 1
	searchRange := uint16(1 << (sel + 4))
	entrySelector := uint16(sel)
	rangeShift := uint16(16*numTables) - searchRange

	// The "head" checksum adjustment must be computed against the
	// final file with the adjustment field itself zeroed, so that
	// patch has to happen before we know any table's final checksum.
	if headData := c.Tables["head"]; headData != nil && len(headData) >= 12 {
		zeroed := make([]byte, len(headData))
		copy(zeroed, headData)
		binary.BigEndian.PutUint32(zeroed[8:12], 0)
		c.Tables["head"] = zeroed
	}

	type record struct {
		tag      string
		checksum uint32
		offset   uint32
		length   uint32
	}
	records := make([]record, numTables)
	offset := uint32(headerSize + numTables*recordSize)
	for i, tag := range c.order {
		data := c.Tables[tag]
		records[i] = record{
			tag:      tag,
			checksum: Checksum(data),
			offset:   offset,
			length:   uint32(len(data)),
		}
		offset += 4 * uint32((len(data)+3)/4)
	}

	dirOrder := make([]int, numTables)
	for i := range dirOrder {
		dirOrder[i] = i
	}
	sort.Slice(dirOrder, func(i, j int) bool {
		return records[dirOrder[i]].tag < records[dirOrder[j]].tag
	})

	var hdr [headerSize]byte
	binary.BigEndian.PutUint32(hdr[0:4], c.ScalerType)
	binary.BigEndian.PutUint16(hdr[4:6], uint16(numTables))
	binary.BigEndian.PutUint16(hdr[6:8], searchRange)
	binary.BigEndian.PutUint16(hdr[8:10], entrySelector)
	binary.BigEndian.PutUint16(hdr[10:12], rangeShift)

	dir := make([]byte, 0, recordSize*numTables)
	var rec [recordSize]byte
	for _, idx := range dirOrder {
		r := records[idx]
		copy(rec[0:4], r.tag)
		binary.BigEndian.PutUint32(rec[4:8], r.checksum)
		binary.BigEndian.PutUint32(rec[8:12], r.offset)
		binary.BigEndian.PutUint32(rec[12:16], r.length)
		dir = append(dir, rec[:]...)
	}

	var totalSum uint32
	for _, r := range records {
		totalSum += r.checksum
	}
	totalSum += Checksum(hdr[:])
	totalSum += Checksum(dir)

	if headData := c.Tables["head"]; headData != nil && len(headData) >= 12 {
		adjustment := 0xB1B0AFBA - totalSum
		binary.BigEndian.PutUint32(headData[8:12], adjustment)
	}

	buf := &bytes.Buffer{}
	buf.Grow(int(offset))
	buf.Write(hdr[:])
	buf.Write(dir)

	var pad [3]byte
	for _, tag := range c.order {
		data := c.Tables[tag]
		buf.Write(data)
		if k := len(data) % 4; k != 0 {
			buf.Write(pad[:4-k])
		}
	}

	return buf.Bytes(), nil
}
