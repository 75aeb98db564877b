// Package sfnt reads and rewrites the table-directory container format
// shared by TrueType and OpenType font files: a 12-byte header, a
// directory of (tag, checksum, offset, length) records, and the table
// payloads themselves. It knows nothing about the contents of any
// table except "head", whose checksum-adjustment field it must patch
// after a rewrite.
package sfnt

import (
	"encoding/binary"
	"errors"
	"sort"
)

const (
	headerSize = 12
	recordSize = 16
)

// Container is an in-memory copy of an sfnt file's tables, indexed by
// tag. It is read whole, modified in place via Replace/Strip, and
// written whole via Write; there is no lazy/streaming access, since
// PUAA tables and the fonts that carry them are small.
type Container struct {
	ScalerType uint32
	Tables     map[string][]byte
	order      []string // tag order for payload emission
}

// Read parses an sfnt container from data, copying every known table's
// payload into memory.
func Read(data []byte) (*Container, error) {
	if len(data) < headerSize {
		return nil, &ErrMalformed{Reason: "file shorter than sfnt header"}
	}
	scalerType := binary.BigEndian.Uint32(data[0:4])
	switch scalerType {
	case scalerTypeTrueType, scalerTypeOpenType, scalerTypeApple, scalerTypePUAA:
	default:
		return nil, &ErrMalformed{Reason: "unrecognised scaler type"}
	}
	numTables := int(binary.BigEndian.Uint16(data[4:6]))
	if numTables > 280 {
		return nil, &ErrMalformed{Reason: "too many tables"}
	}
	if len(data) < headerSize+numTables*recordSize {
		return nil, &ErrMalformed{Reason: "table directory extends beyond EOF"}
	}

	c := &Container{
		ScalerType: scalerType,
		Tables:     make(map[string][]byte, numTables),
	}

	type span struct{ start, end uint32 }
	var coverage []span
	for i := 0; i < numTables; i++ {
		rec := data[headerSize+i*recordSize : headerSize+(i+1)*recordSize]
		tag := string(rec[0:4])
		offset := binary.BigEndian.Uint32(rec[8:12])
		length := binary.BigEndian.Uint32(rec[12:16])
		end := uint64(offset) + uint64(length)
		if end > uint64(len(data)) {
			return nil, &ErrMalformed{Reason: "table " + tag + " extends beyond EOF"}
		}
		if _, dup := c.Tables[tag]; dup {
			return nil, &ErrMalformed{Reason: "duplicate table tag " + tag}
		}
		c.Tables[tag] = append([]byte(nil), data[offset:end]...)
		c.order = append(c.order, tag)
		coverage = append(coverage, span{offset, offset + length})
	}
	if numTables == 0 {
		return nil, &ErrMalformed{Reason: "no tables found"}
	}

	sort.Slice(coverage, func(i, j int) bool {
		if coverage[i].start != coverage[j].start {
			return coverage[i].start < coverage[j].start
		}
		return coverage[i].end < coverage[j].end
	})
	if coverage[0].start < headerSize+uint32(numTables)*recordSize {
		return nil, &ErrMalformed{Reason: "table overlaps directory"}
	}
	for i := 1; i < len(coverage); i++ {
		if coverage[i-1].end > coverage[i].start {
			return nil, &ErrMalformed{Reason: "overlapping tables"}
		}
	}

	return c, nil
}

// Has reports whether tag is present in the container.
func (c *Container) Has(tag string) bool {
	_, ok := c.Tables[tag]
	return ok
}

// Find returns the raw bytes of the named table, or *ErrNoTable if it
// is absent.
func (c *Container) Find(tag string) ([]byte, error) {
	data, ok := c.Tables[tag]
	if !ok {
		return nil, &ErrNoTable{Tag: tag}
	}
	return data, nil
}

// Replace installs data as the payload for tag, overwriting any
// existing table with that tag, or appending a new one.
func (c *Container) Replace(tag string, data []byte) error {
	if len(tag) != 4 {
		return errors.New("sfnt: table tag must be 4 bytes")
	}
	if _, ok := c.Tables[tag]; !ok {
		c.order = append(c.order, tag)
	}
	c.Tables[tag] = data
	return nil
}

// Strip removes tag from the container. It is not an error to strip a
// tag that is not present.
func (c *Container) Strip(tag string) {
	if _, ok := c.Tables[tag]; !ok {
		return
	}
	delete(c.Tables, tag)
	for i, t := range c.order {
		if t == tag {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
