// Package report turns an astar.Result into a route report: the traversed
// hops with their weights, line segments for highlighting, and text, JSON or
// YAML renderings.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
)

// Sentinel errors.
var (
	// ErrNilInput indicates a nil graph or result.
	ErrNilInput = errors.New("report: graph and result must be non-nil")

	// ErrBrokenPath indicates a result path that does not follow the graph's edges.
	ErrBrokenPath = errors.New("report: path does not follow graph edges")

	// ErrUnknownFormat indicates an unsupported output format.
	ErrUnknownFormat = errors.New("report: unknown format")
)

// Format selects a Report rendering.
type Format string

// Supported formats.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists the supported formats in display order.
var Formats = []Format{FormatText, FormatJSON, FormatYAML}

// ParseFormat maps a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Hop is one traversed edge of a route.
type Hop struct {
	From   int   `json:"from" yaml:"from"`
	To     int   `json:"to" yaml:"to"`
	Weight int64 `json:"weight" yaml:"weight"`
}

// Segment is the drawable straight line of a Hop.
type Segment struct {
	From orb.Point `json:"from" yaml:"from,flow"`
	To   orb.Point `json:"to" yaml:"to,flow"`
}

// Report describes the outcome of one search in map terms.
type Report struct {
	Start    int       `json:"start" yaml:"start"`
	Goal     int       `json:"goal" yaml:"goal"`
	Status   string    `json:"status" yaml:"status"`
	Nodes    []int     `json:"nodes" yaml:"nodes,flow"`
	Hops     []Hop     `json:"hops" yaml:"hops"`
	Segments []Segment `json:"segments" yaml:"segments"`
	Cost     int64     `json:"cost" yaml:"cost"`
	Expanded int       `json:"expanded" yaml:"expanded"`

	found bool
}

// Found reports whether the report describes a route.
func (r *Report) Found() bool { return r.found }

// LineString returns the route as one polyline; empty when no route exists.
func (r *Report) LineString() orb.LineString {
	if !r.found || len(r.Segments) == 0 {
		return orb.LineString{}
	}
	ls := make(orb.LineString, 0, len(r.Segments)+1)
	ls = append(ls, r.Segments[0].From)
	for _, s := range r.Segments {
		ls = append(ls, s.To)
	}

	return ls
}
