package ucd

import (
	"bufio"
	"io"

	"github.com/kreativekorp/openrelay-tools/puaa"
)

// Codec translates between one UCD text file family and the subtables
// of a puaa.Table. Compile reads UCD text and adds entries to t;
// Decompile writes t's subtables back out as UCD text.
type Codec interface {
	FileName() string
	PropertyNames() []string
	Compile(t *puaa.Table, r io.Reader) error
	Decompile(t *puaa.Table, w io.Writer) error
}

// eachLine scans r line by line, calling fn with each line's
// semicolon-delimited fields. Malformed individual lines are skipped,
// matching the reference compiler's best-effort parsing.
func eachLine(r io.Reader, fn func(fields []string)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		fields, ok := splitLine(sc.Text())
		if !ok {
			continue
		}
		fn(fields)
	}
	return sc.Err()
}

// Registry maps a lowercased UCD file name to the Codec that handles
// it, mirroring pypuaa.py's CODEC_MAP/getCodec.
type Registry struct {
	codecs  []Codec
	byFile  map[string]Codec
}

// NewRegistry builds the registry of every known codec.
func NewRegistry() *Registry {
	reg := &Registry{byFile: make(map[string]Codec)}
	reg.add(allCodecs()...)
	return reg
}

func (r *Registry) add(codecs ...Codec) {
	for _, c := range codecs {
		r.codecs = append(r.codecs, c)
		r.byFile[lower(c.FileName())] = c
	}
}

// Lookup returns the codec registered for fileName (case-insensitive),
// or nil if none matches.
func (r *Registry) Lookup(fileName string) Codec {
	return r.byFile[lower(fileName)]
}

// Codecs returns every registered codec, in registration order.
func (r *Registry) Codecs() []Codec {
	return r.codecs
}

func lower(s string) string {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		out[i] = c
	}
	return string(out)
}
