package sfnt

import "fmt"

// ErrNoTable is returned when a requested table is absent from a
// container's directory.
type ErrNoTable struct {
	Tag string
}

func (e *ErrNoTable) Error() string {
	return fmt.Sprintf("sfnt: no %q table", e.Tag)
}

// IsMissing reports whether err is an *ErrNoTable.
func IsMissing(err error) bool {
	_, ok := err.(*ErrNoTable)
	return ok
}

// ErrMalformed is returned for structurally invalid sfnt containers:
// bad scaler types, overlapping or out-of-range table records, or a
// table directory that claims more data than the file contains.
type ErrMalformed struct {
	Reason string
}

func (e *ErrMalformed) Error() string {
	return "sfnt: malformed container: " + e.Reason
}
