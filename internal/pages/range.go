// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pages parses page range arguments and drives paginated searches.
// Pages at Stack Exchange are numbered from 1.
package pages

import (
	"fmt"
	"regexp"
	"strconv"
)

// Pattern is the accepted form of a page range: START[-][STOP].
const Pattern = `^([1-9]\d*)(?:(-)([1-9]\d*)?)?$`

var pageRangeRe = regexp.MustCompile(Pattern)

// ValidationError reports a page range string that does not match Pattern.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("PAGES needs to be START[-][STOP] (%q) but is %q: %s", Pattern, e.Input, e.Reason)
	}
	return fmt.Sprintf("PAGES needs to be START[-][STOP] (%q) but is %q", Pattern, e.Input)
}

// Stop is the last page of a range. The zero value is unbounded.
type Stop struct {
	page    int
	bounded bool
}

// Unbounded returns a Stop that never matches a page number.
func Unbounded() Stop { return Stop{} }

// At returns a Stop at page n.
func At(n int) Stop { return Stop{page: n, bounded: true} }

// Bounded reports whether the stop is a concrete page.
func (s Stop) Bounded() bool { return s.bounded }

// Page returns the stop page and whether it is bounded.
func (s Stop) Page() (int, bool) { return s.page, s.bounded }

// Reached reports whether page is the stop page. Always false when unbounded.
func (s Stop) Reached(page int) bool {
	return s.bounded && page == s.page
}

func (s Stop) String() string {
	if !s.bounded {
		return ""
	}
	return strconv.Itoa(s.page)
}

// Range is an immutable start page and stop.
type Range struct {
	start int
	stop  Stop
}

// Start returns the first page to read.
func (r Range) Start() int { return r.start }

// Stop returns the last page to read.
func (r Range) Stop() Stop { return r.stop }

// String formats r back into START[-][STOP] form.
func (r Range) String() string {
	switch {
	case !r.stop.bounded:
		return strconv.Itoa(r.start) + "-"
	case r.stop.page == r.start:
		return strconv.Itoa(r.start)
	default:
		return strconv.Itoa(r.start) + "-" + r.stop.String()
	}
}

// Parse decodes a page range.
//
//	"N"   reads page N only
//	"N-"  reads from page N until the service reports no more pages
//	"N-M" reads pages N through M
func Parse(s string) (Range, error) {
	m := pageRangeRe.FindStringSubmatch(s)
	if m == nil {
		return Range{}, &ValidationError{Input: s}
	}

	start, err := strconv.Atoi(m[1])
	if err != nil {
		return Range{}, &ValidationError{Input: s, Reason: err.Error()}
	}

	if m[2] == "" {
		return Range{start: start, stop: At(start)}, nil
	}
	if m[3] == "" {
		return Range{start: start, stop: Unbounded()}, nil
	}

	stop, err := strconv.Atoi(m[3])
	if err != nil {
		return Range{}, &ValidationError{Input: s, Reason: err.Error()}
	}
	return Range{start: start, stop: At(stop)}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Range {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}
