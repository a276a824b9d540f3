// Package collation sorts display names the way Brazilian Portuguese users expect,
// so "Ávila" sorts next to "Avenida" rather than after "Zé".
package collation

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Compare returns -1, 0 or +1. A collator is not safe for concurrent use, so one is built per call.
func Compare(a, b string) int {
	return collate.New(language.BrazilianPortuguese, collate.IgnoreCase).CompareString(a, b)
}

// Sorter reuses a single collator across the comparisons of one sort.
type Sorter struct {
	c *collate.Collator
}

func NewSorter() *Sorter {
	return &Sorter{c: collate.New(language.BrazilianPortuguese, collate.IgnoreCase)}
}

func (s *Sorter) Compare(a, b string) int {
	return s.c.CompareString(a, b)
}
