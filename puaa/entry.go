// Package puaa implements the Private Use Area Augmentation table: an
// in-memory property model, its compact binary encoding, and the
// sortability/run-merging rules used to build and query it.
package puaa

import (
	"fmt"
	"strconv"
	"strings"
)

// EntryType tags the kind of value an Entry carries, matching the
// one-byte discriminator stored in the binary entry record.
type EntryType uint8

const (
	Single EntryType = iota + 1
	Multiple
	Boolean
	Decimal
	Hexadecimal
	HexMultiple
	HexSequence
	CaseMapping
	NameAlias
)

// Entry is a code point range together with a property value. Each
// concrete type below is a distinct member of the tagged union; the
// binary codec switches on entryType() to choose how to serialise and
// deserialise it.
type Entry interface {
	FirstCodePoint() int
	LastCodePoint() int
	Contains(cp int) bool
	PropertyValue(cp int) (string, bool)

	entryType() EntryType
	setLastCodePoint(cp int)
	extend(cp int, value any) bool
}

type base struct {
	first, last int
}

func (b *base) FirstCodePoint() int { return b.first }
func (b *base) LastCodePoint() int  { return b.last }
func (b *base) Contains(cp int) bool {
	return b.first <= cp && cp <= b.last
}
func (b *base) setLastCodePoint(cp int) { b.last = cp }

// SingleEntry carries one string value shared by every code point in
// its range.
type SingleEntry struct {
	base
	Value string
}

// NewSingleEntry constructs a SingleEntry covering [first, last].
func NewSingleEntry(first, last int, value string) *SingleEntry {
	return &SingleEntry{base{first, last}, value}
}

func (e *SingleEntry) PropertyValue(cp int) (string, bool) { return e.Value, true }
func (e *SingleEntry) entryType() EntryType                { return Single }
func (e *SingleEntry) extend(cp int, value any) bool {
	v, ok := value.(string)
	if !ok || v != e.Value {
		return false
	}
	e.last = cp
	return true
}

// MultipleEntry carries one string value per code point in its range.
type MultipleEntry struct {
	base
	Values []string
}

func NewMultipleEntry(first, last int, values []string) *MultipleEntry {
	return &MultipleEntry{base{first, last}, values}
}

func (e *MultipleEntry) PropertyValue(cp int) (string, bool) {
	return e.Values[cp-e.first], true
}
func (e *MultipleEntry) entryType() EntryType { return Multiple }
func (e *MultipleEntry) extend(cp int, value any) bool {
	v, ok := value.(string)
	if !ok {
		return false
	}
	e.Values = append(e.Values, v)
	e.last = cp
	return true
}

// BooleanEntry carries a single Y/N flag for its range.
type BooleanEntry struct {
	base
	Value bool
}

func NewBooleanEntry(first, last int, value bool) *BooleanEntry {
	return &BooleanEntry{base{first, last}, value}
}

func (e *BooleanEntry) PropertyValue(cp int) (string, bool) {
	if e.Value {
		return "Y", true
	}
	return "N", true
}
func (e *BooleanEntry) entryType() EntryType { return Boolean }
func (e *BooleanEntry) extend(cp int, value any) bool {
	v, ok := value.(bool)
	if !ok || v != e.Value {
		return false
	}
	e.last = cp
	return true
}

// DecimalEntry carries a signed decimal value for its range.
type DecimalEntry struct {
	base
	Value int32
}

func NewDecimalEntry(first, last int, value int32) *DecimalEntry {
	return &DecimalEntry{base{first, last}, value}
}

func (e *DecimalEntry) PropertyValue(cp int) (string, bool) {
	return strconv.FormatInt(int64(e.Value), 10), true
}
func (e *DecimalEntry) entryType() EntryType { return Decimal }
func (e *DecimalEntry) extend(cp int, value any) bool {
	v, ok := value.(int32)
	if !ok || v != e.Value {
		return false
	}
	e.last = cp
	return true
}

// HexadecimalEntry carries a single hexadecimal value for its range,
// formatted with at least four digits.
type HexadecimalEntry struct {
	base
	Value uint32
}

func NewHexadecimalEntry(first, last int, value uint32) *HexadecimalEntry {
	return &HexadecimalEntry{base{first, last}, value}
}

func (e *HexadecimalEntry) PropertyValue(cp int) (string, bool) {
	return fmt.Sprintf("%04X", e.Value), true
}
func (e *HexadecimalEntry) entryType() EntryType { return Hexadecimal }
func (e *HexadecimalEntry) extend(cp int, value any) bool {
	v, ok := value.(uint32)
	if !ok || v != e.Value {
		return false
	}
	e.last = cp
	return true
}

// HexMultipleEntry carries one hexadecimal value per code point.
type HexMultipleEntry struct {
	base
	Values []uint32
}

func NewHexMultipleEntry(first, last int, values []uint32) *HexMultipleEntry {
	return &HexMultipleEntry{base{first, last}, values}
}

func (e *HexMultipleEntry) PropertyValue(cp int) (string, bool) {
	return fmt.Sprintf("%04X", e.Values[cp-e.first]), true
}
func (e *HexMultipleEntry) entryType() EntryType { return HexMultiple }
func (e *HexMultipleEntry) extend(cp int, value any) bool {
	v, ok := value.(uint32)
	if !ok {
		return false
	}
	e.Values = append(e.Values, v)
	e.last = cp
	return true
}

// HexSequenceEntry carries the same sequence of hexadecimal values
// (e.g. a decomposition mapping) for every code point in its range.
type HexSequenceEntry struct {
	base
	Values []uint32
}

func NewHexSequenceEntry(first, last int, values []uint32) *HexSequenceEntry {
	return &HexSequenceEntry{base{first, last}, values}
}

func (e *HexSequenceEntry) PropertyValue(cp int) (string, bool) {
	parts := make([]string, len(e.Values))
	for i, v := range e.Values {
		parts[i] = fmt.Sprintf("%04X", v)
	}
	return strings.Join(parts, " "), true
}
func (e *HexSequenceEntry) entryType() EntryType { return HexSequence }
func (e *HexSequenceEntry) extend(cp int, value any) bool {
	v, ok := value.([]uint32)
	if !ok || !equalUint32(v, e.Values) {
		return false
	}
	e.last = cp
	return true
}

func equalUint32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// CaseMappingEntry carries a code point mapping plus an optional
// textual condition (as in SpecialCasing.txt).
type CaseMappingEntry struct {
	base
	Mapping   []uint32
	Condition string // empty means no condition
}

func NewCaseMappingEntry(first, last int, mapping []uint32, condition string) *CaseMappingEntry {
	return &CaseMappingEntry{base{first, last}, mapping, condition}
}

func (e *CaseMappingEntry) PropertyValue(cp int) (string, bool) {
	parts := make([]string, len(e.Mapping))
	for i, v := range e.Mapping {
		parts[i] = fmt.Sprintf("%04X", v)
	}
	v := strings.Join(parts, " ")
	if e.Condition != "" {
		return v + "; " + e.Condition, true
	}
	return v, true
}
func (e *CaseMappingEntry) entryType() EntryType { return CaseMapping }
func (e *CaseMappingEntry) extend(cp int, value any) bool { return false }

// NameAliasEntry carries a Unicode name alias and its alias type (as
// in NameAliases.txt).
type NameAliasEntry struct {
	base
	Alias     string
	AliasType string
}

func NewNameAliasEntry(first, last int, alias, aliasType string) *NameAliasEntry {
	return &NameAliasEntry{base{first, last}, alias, aliasType}
}

func (e *NameAliasEntry) PropertyValue(cp int) (string, bool) {
	return e.Alias + ";" + e.AliasType, true
}
func (e *NameAliasEntry) entryType() EntryType { return NameAlias }
func (e *NameAliasEntry) extend(cp int, value any) bool { return false }
