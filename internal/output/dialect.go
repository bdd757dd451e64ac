// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"sort"
	"strings"
)

// Dialect is a named set of CSV formatting conventions.
type Dialect struct {
	Name     string
	Comma    rune
	UseCRLF  bool
	QuoteAll bool
}

var dialects = map[string]Dialect{
	"excel":     {Name: "excel", Comma: ',', UseCRLF: true},
	"excel-tab": {Name: "excel-tab", Comma: '\t', UseCRLF: true},
	"unix":      {Name: "unix", Comma: ',', QuoteAll: true},
}

// LookupDialect returns the dialect registered under name.
func LookupDialect(name string) (Dialect, error) {
	d, ok := dialects[name]
	if !ok {
		return Dialect{}, fmt.Errorf("unknown CSV dialect %q (want one of %s)", name, strings.Join(DialectNames(), ", "))
	}
	return d, nil
}

// DialectNames lists the registered dialects in sorted order.
func DialectNames() []string {
	names := make([]string, 0, len(dialects))
	for n := range dialects {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func (d Dialect) lineTerminator() string {
	if d.UseCRLF {
		return "\r\n"
	}
	return "\n"
}
