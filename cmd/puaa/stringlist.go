package main

import "strings"

// stringList is a flag.Value that accumulates one string per
// occurrence of its flag, so -d/-i/-o/-p/-c can each be repeated on
// the command line instead of only accepting a single value.
type stringList []string

func (l *stringList) String() string {
	if l == nil {
		return ""
	}
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}
