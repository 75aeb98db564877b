package puaa

import (
	"encoding/binary"
	"fmt"
)

const (
	version1      = 1
	headerSize    = 4  // version uint16, propertyCount uint16
	subtableSize  = 8  // propertyNameRef uint32, subtableOffset uint32
	entryHdrSize  = 2  // entryCount uint16
	entryRecSize  = 10 // type u8, plane u8, firstLow u16, lastLow u16, data u32
	auxCountSize  = 2  // valueCount uint16, preceding each aux array
	auxEntrySize  = 4  // each aux array element is a uint32
)

// ErrUnknownVersion is returned by Decompile when the blob's version
// field is not 1.
type ErrUnknownVersion struct {
	Version uint16
}

func (e *ErrUnknownVersion) Error() string {
	return fmt.Sprintf("puaa: unknown table version %d", e.Version)
}

// entryPlan holds the per-entry values computed during the first pass
// of Compile, before string/aux offsets are resolved.
type entryPlan struct {
	typ       EntryType
	data      uint32 // final entryData word, once resolved
	auxOffset uint32 // offset of this entry's aux array, 0 if none
	auxCount  int
	auxValues []uint32 // resolved aux array contents, once known

	needsStrAddr      bool // data is a single strAddr(entry value)
	strValue          string
	strPresent        bool
	needsMultiStrAddr bool // aux values come from per-element strAddr calls
	multiStrValues    []string
	multiStrPresent   []bool
	caseCondition     string
	caseHasCondition  bool
	caseMapping       []uint32
	nameAlias         string
	nameAliasType     string
}

// Compile serialises the table to its binary PUAA representation.
// Empty subtables are dropped and sortable subtables' entries are
// reordered by (first, last) code point as a side effect.
func (t *Table) Compile() []byte {
	t.removeEmpty()
	t.sortSubtables()

	n := len(t.Subtables)
	p := uint32(headerSize + n*subtableSize)

	subtableHeaderOffset := make([]uint32, n)
	plans := make([][]*entryPlan, n)

	for i, st := range t.Subtables {
		subtableHeaderOffset[i] = p
		p += entryHdrSize + uint32(len(st.Entries))*entryRecSize

		subPlans := make([]*entryPlan, len(st.Entries))
		for j, e := range st.Entries {
			plan := &entryPlan{typ: e.entryType()}
			switch v := e.(type) {
			case *SingleEntry:
				plan.needsStrAddr = true
				plan.strValue = v.Value
				plan.strPresent = true
			case *MultipleEntry:
				plan.auxOffset = p
				plan.auxCount = len(v.Values)
				plan.needsMultiStrAddr = true
				plan.multiStrValues = v.Values
				plan.multiStrPresent = presentAll(len(v.Values))
				p += auxCountSize + uint32(plan.auxCount)*auxEntrySize
			case *BooleanEntry:
				if v.Value {
					plan.data = 0xFFFFFFFF
				}
			case *DecimalEntry:
				plan.data = uint32(v.Value)
			case *HexadecimalEntry:
				plan.data = v.Value
			case *HexMultipleEntry:
				plan.auxOffset = p
				plan.auxCount = len(v.Values)
				plan.auxValues = append([]uint32(nil), v.Values...)
				p += auxCountSize + uint32(plan.auxCount)*auxEntrySize
			case *HexSequenceEntry:
				plan.auxOffset = p
				plan.auxCount = len(v.Values)
				plan.auxValues = append([]uint32(nil), v.Values...)
				p += auxCountSize + uint32(plan.auxCount)*auxEntrySize
			case *CaseMappingEntry:
				plan.auxOffset = p
				plan.auxCount = len(v.Mapping) + 1
				plan.caseMapping = v.Mapping
				plan.caseCondition = v.Condition
				plan.caseHasCondition = v.Condition != ""
				p += auxCountSize + uint32(plan.auxCount)*auxEntrySize
			case *NameAliasEntry:
				plan.auxOffset = p
				plan.auxCount = 2
				plan.nameAlias = v.Alias
				plan.nameAliasType = v.AliasType
				p += auxCountSize + uint32(plan.auxCount)*auxEntrySize
			}
			subPlans[j] = plan
		}
		plans[i] = subPlans
	}

	pool := newStringPool(p)

	propertyNameRef := make([]uint32, n)
	for i, st := range t.Subtables {
		propertyNameRef[i] = pool.addr(st.PropertyName, true, true)
	}

	for i, st := range t.Subtables {
		for j := range st.Entries {
			plan := plans[i][j]
			switch {
			case plan.needsStrAddr:
				plan.data = pool.addr(plan.strValue, plan.strPresent, false)
			case plan.needsMultiStrAddr:
				plan.auxValues = make([]uint32, len(plan.multiStrValues))
				for k, v := range plan.multiStrValues {
					plan.auxValues[k] = pool.addr(v, plan.multiStrPresent[k], false)
				}
			case plan.typ == CaseMapping:
				plan.auxValues = append(append([]uint32(nil), plan.caseMapping...),
					pool.addr(plan.caseCondition, plan.caseHasCondition, false))
			case plan.typ == NameAlias:
				plan.auxValues = []uint32{
					pool.addr(plan.nameAlias, true, false),
					pool.addr(plan.nameAliasType, true, false),
				}
			}
		}
	}

	buf := make([]byte, 0, p+pool.next)
	var b4 [4]byte
	var b2 [2]byte

	binary.BigEndian.PutUint16(b2[:], version1)
	buf = append(buf, b2[:]...)
	binary.BigEndian.PutUint16(b2[:], uint16(n))
	buf = append(buf, b2[:]...)

	for i := range t.Subtables {
		binary.BigEndian.PutUint32(b4[:], propertyNameRef[i])
		buf = append(buf, b4[:]...)
		binary.BigEndian.PutUint32(b4[:], subtableHeaderOffset[i])
		buf = append(buf, b4[:]...)
	}

	for i, st := range t.Subtables {
		binary.BigEndian.PutUint16(b2[:], uint16(len(st.Entries)))
		buf = append(buf, b2[:]...)
		for j, e := range st.Entries {
			plan := plans[i][j]
			first, last := e.FirstCodePoint(), e.LastCodePoint()
			var entryData uint32
			if plan.auxOffset != 0 {
				entryData = plan.auxOffset
			} else {
				entryData = plan.data
			}
			buf = append(buf, byte(plan.typ), byte(first>>16))
			binary.BigEndian.PutUint16(b2[:], uint16(first&0xFFFF))
			buf = append(buf, b2[:]...)
			binary.BigEndian.PutUint16(b2[:], uint16(last&0xFFFF))
			buf = append(buf, b2[:]...)
			binary.BigEndian.PutUint32(b4[:], entryData)
			buf = append(buf, b4[:]...)
		}
	}

	for _, subPlans := range plans {
		for _, plan := range subPlans {
			if plan.auxOffset == 0 {
				continue
			}
			binary.BigEndian.PutUint16(b2[:], uint16(plan.auxCount))
			buf = append(buf, b2[:]...)
			for _, v := range plan.auxValues {
				binary.BigEndian.PutUint32(b4[:], v)
				buf = append(buf, b4[:]...)
			}
		}
	}

	buf = append(buf, pool.bytes()...)

	return buf
}

func presentAll(n int) []bool {
	p := make([]bool, n)
	for i := range p {
		p[i] = true
	}
	return p
}

func getInts(data []byte, offset uint32) []uint32 {
	n := int(binary.BigEndian.Uint16(data[offset : offset+2]))
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		start := offset + auxCountSize + uint32(i)*auxEntrySize
		out[i] = binary.BigEndian.Uint32(data[start : start+4])
	}
	return out
}

// Decompile parses a binary PUAA blob into a Table.
func Decompile(data []byte) (t *Table, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("puaa: malformed blob: %v", r)
		}
	}()
	return decompile(data)
}

func decompile(data []byte) (*Table, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("puaa: blob shorter than header")
	}
	version := binary.BigEndian.Uint16(data[0:2])
	if version != version1 {
		return nil, &ErrUnknownVersion{Version: version}
	}
	propertyCount := int(binary.BigEndian.Uint16(data[2:4]))

	t := New()
	for i := 0; i < propertyCount; i++ {
		recOff := headerSize + i*subtableSize
		nameRef := binary.BigEndian.Uint32(data[recOff : recOff+4])
		subOff := binary.BigEndian.Uint32(data[recOff+4 : recOff+8])

		name, _ := getStr(data, nameRef)
		entryCount := int(binary.BigEndian.Uint16(data[subOff : subOff+2]))
		st := &Subtable{PropertyName: name}

		for j := 0; j < entryCount; j++ {
			recStart := subOff + entryHdrSize + uint32(j)*entryRecSize
			typ := EntryType(data[recStart])
			plane := uint32(data[recStart+1])
			firstLow := binary.BigEndian.Uint16(data[recStart+2 : recStart+4])
			lastLow := binary.BigEndian.Uint16(data[recStart+4 : recStart+6])
			entryData := binary.BigEndian.Uint32(data[recStart+6 : recStart+10])

			first := int(plane<<16) | int(firstLow)
			last := int(plane<<16) | int(lastLow)

			entry, err := decodeEntry(data, typ, first, last, entryData)
			if err != nil {
				return nil, err
			}
			st.Entries = append(st.Entries, entry)
		}

		t.Subtables = append(t.Subtables, st)
	}

	return t, nil
}

func decodeEntry(data []byte, typ EntryType, first, last int, ed uint32) (Entry, error) {
	switch typ {
	case Single:
		v, _ := getStr(data, ed)
		return NewSingleEntry(first, last, v), nil
	case Multiple:
		refs := getInts(data, ed)
		values := make([]string, len(refs))
		for i, r := range refs {
			values[i], _ = getStr(data, r)
		}
		return NewMultipleEntry(first, last, values), nil
	case Boolean:
		return NewBooleanEntry(first, last, ed != 0), nil
	case Decimal:
		return NewDecimalEntry(first, last, int32(ed)), nil
	case Hexadecimal:
		return NewHexadecimalEntry(first, last, ed), nil
	case HexMultiple:
		return NewHexMultipleEntry(first, last, getInts(data, ed)), nil
	case HexSequence:
		return NewHexSequenceEntry(first, last, getInts(data, ed)), nil
	case CaseMapping:
		values := getInts(data, ed)
		if len(values) == 0 {
			return nil, fmt.Errorf("puaa: malformed CaseMapping entry")
		}
		condRef := values[len(values)-1]
		mapping := values[:len(values)-1]
		condition, _ := getStr(data, condRef)
		return NewCaseMappingEntry(first, last, mapping, condition), nil
	case NameAlias:
		values := getInts(data, ed)
		if len(values) != 2 {
			return nil, fmt.Errorf("puaa: malformed NameAlias entry")
		}
		alias, _ := getStr(data, values[0])
		aliasType, _ := getStr(data, values[1])
		return NewNameAliasEntry(first, last, alias, aliasType), nil
	default:
		return nil, fmt.Errorf("puaa: unknown entry type %d", typ)
	}
}
