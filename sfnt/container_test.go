package sfnt

import (
	"encoding/binary"
	"testing"
)

// buildRaw assembles a minimal, independently-constructed sfnt file
// from a tag->payload map, without going through Container.Write, so
// that Read/Write can be tested against a byte layout this package
// didn't produce itself.
func buildRaw(t *testing.T, scalerType uint32, tables map[string][]byte) []byte {
	t.Helper()

	tags := make([]string, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	// table directory records must be sorted by tag
	for i := 0; i < len(tags); i++ {
		for j := i + 1; j < len(tags); j++ {
			if tags[j] < tags[i] {
				tags[i], tags[j] = tags[j], tags[i]
			}
		}
	}

	numTables := len(tags)
	offset := uint32(12 + 16*numTables)
	buf := make([]byte, offset)
	binary.BigEndian.PutUint32(buf[0:4], scalerType)
	binary.BigEndian.PutUint16(buf[4:6], uint16(numTables))

	for i, tag := range tags {
		data := tables[tag]
		rec := buf[12+16*i : 12+16*(i+1)]
		copy(rec[0:4], tag)
		binary.BigEndian.PutUint32(rec[4:8], Checksum(data))
		binary.BigEndian.PutUint32(rec[8:12], offset)
		binary.BigEndian.PutUint32(rec[12:16], uint32(len(data)))

		buf = append(buf, data...)
		for len(buf)%4 != 0 {
			buf = append(buf, 0)
		}
		offset = uint32(len(buf))
	}

	return buf
}

func makeHead(adjustment uint32) []byte {
	head := make([]byte, 54)
	binary.BigEndian.PutUint32(head[0:4], 0x00010000) // version
	binary.BigEndian.PutUint32(head[8:12], adjustment)
	binary.BigEndian.PutUint32(head[12:16], 0x5F0F3CF5) // magic number
	return head
}

func TestReadFindHasStrip(t *testing.T) {
	raw := buildRaw(t, scalerTypeTrueType, map[string][]byte{
		"head": makeHead(0xDEADBEEF),
		"PUAA": []byte("hello puaa"),
	})

	c, err := Read(raw)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if !c.Has("PUAA") {
		t.Fatal("expected PUAA table to be present")
	}
	data, err := c.Find("PUAA")
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if string(data) != "hello puaa" {
		t.Fatalf("unexpected PUAA payload: %q", data)
	}

	c.Strip("PUAA")
	if c.Has("PUAA") {
		t.Fatal("expected PUAA table to be removed")
	}
	if _, err := c.Find("PUAA"); !IsMissing(err) {
		t.Fatalf("expected ErrNoTable, got %v", err)
	}
}

// TestChecksumFixup mirrors the "checksum fix-up from DEADBEEF"
// scenario: a head table with a stale/garbage checksum adjustment
// must be patched on Write so that the whole file's checksum equals
// 0xB1B0AFBA.
func TestChecksumFixup(t *testing.T) {
	raw := buildRaw(t, scalerTypeTrueType, map[string][]byte{
		"head": makeHead(0xDEADBEEF),
		"PUAA": []byte("some replacement payload"),
	})

	c, err := Read(raw)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	out, err := c.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got := Checksum(out); got != 0xB1B0AFBA {
		t.Fatalf("whole-file checksum = %08x, want B1B0AFBA", got)
	}

	c2, err := Read(out)
	if err != nil {
		t.Fatalf("re-Read written file: %v", err)
	}
	puaa, err := c2.Find("PUAA")
	if err != nil || string(puaa) != "some replacement payload" {
		t.Fatalf("PUAA payload did not survive round trip: %q, %v", puaa, err)
	}
}

func TestReplaceAddsNewTable(t *testing.T) {
	raw := buildRaw(t, scalerTypeTrueType, map[string][]byte{
		"head": makeHead(0),
	})
	c, err := Read(raw)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if err := c.Replace("PUAA", []byte{1, 2, 3}); err != nil {
		t.Fatalf("Replace: %v", err)
	}

	out, err := c.Write()
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	c2, err := Read(out)
	if err != nil {
		t.Fatalf("re-Read: %v", err)
	}
	if !c2.Has("PUAA") {
		t.Fatal("expected newly added PUAA table to survive a round trip")
	}
	if got := Checksum(out); got != 0xB1B0AFBA {
		t.Fatalf("whole-file checksum = %08x, want B1B0AFBA", got)
	}
}

func TestReadRejectsTableBeyondEOF(t *testing.T) {
	raw := buildRaw(t, scalerTypeTrueType, map[string][]byte{
		"head": makeHead(0),
	})
	// Corrupt the single table record so its length reaches past EOF.
	binary.BigEndian.PutUint32(raw[12+12:12+16], uint32(len(raw)))
	if _, err := Read(raw); err == nil {
		t.Fatal("expected Read to reject a table claiming to extend beyond EOF")
	}
}
