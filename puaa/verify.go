package puaa

import "fmt"

// VerifyRoundTrip decompiles data and re-compiles the result, checking
// that every property value it exposes is unchanged. It catches
// codec bugs that a plain Decompile-without-error can't: a subtly
// wrong entry reconstruction still produces a valid-looking Table,
// but re-compiling and comparing property values surfaces the
// mismatch.
func VerifyRoundTrip(data []byte) error {
	t, err := Decompile(data)
	if err != nil {
		return fmt.Errorf("puaa: decompile failed: %w", err)
	}

	recompiled := t.Compile()
	t2, err := Decompile(recompiled)
	if err != nil {
		return fmt.Errorf("puaa: re-decompile failed: %w", err)
	}

	if len(t.Subtables) != len(t2.Subtables) {
		return fmt.Errorf("puaa: subtable count changed on re-compile: %d -> %d",
			len(t.Subtables), len(t2.Subtables))
	}
	for _, st := range t.Subtables {
		st2 := t2.Subtable(st.PropertyName, false)
		if st2 == nil {
			return fmt.Errorf("puaa: subtable %q disappeared on re-compile", st.PropertyName)
		}
		for _, e := range st.Entries {
			for cp := e.FirstCodePoint(); cp <= e.LastCodePoint(); cp++ {
				want, wantOK := st.PropertyValue(cp)
				got, gotOK := st2.PropertyValue(cp)
				if wantOK != gotOK || want != got {
					return fmt.Errorf("puaa: %s value at U+%04X changed on re-compile: %q -> %q",
						st.PropertyName, cp, want, got)
				}
			}
		}
	}
	return nil
}
