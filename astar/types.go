// Package astar defines result types, sentinel errors and functional options
// for the A* search.
package astar

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrInvalidNodeID indicates that start or goal is outside [0, N).
	ErrInvalidNodeID = errors.New("astar: node ID out of range")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrExpansionLimit indicates that WithMaxExpansions stopped the search
	// before it reached a terminal state.
	ErrExpansionLimit = errors.New("astar: expansion limit reached")

	// ErrUnreachable is returned by Result.Err for StatusUnreachable results.
	// FindPath itself never returns it.
	ErrUnreachable = errors.New("astar: goal unreachable from start")
)

// Status is the terminal state of a search.
type Status int

const (
	// StatusFound means the goal was popped from the frontier (GOAL_FOUND).
	StatusFound Status = iota
	// StatusUnreachable means the frontier emptied first (FRONTIER_EXHAUSTED).
	StatusUnreachable
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusUnreachable:
		return "unreachable"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Result is the outcome of one search.
type Result struct {
	Start, Goal int
	Status      Status
	// Path lists node IDs from Start to Goal inclusive; empty when unreachable.
	Path []int
	// Cost is the sum of edge weights along Path.
	Cost int64
	// Expanded counts nodes closed during the search.
	Expanded int
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r.Status == StatusFound }

// Err returns ErrUnreachable (wrapped with the endpoints) for unreachable
// results and nil otherwise, for callers that prefer error flow.
func (r *Result) Err() error {
	if r.Status == StatusUnreachable {
		return fmt.Errorf("%w: %d→%d", ErrUnreachable, r.Start, r.Goal)
	}

	return nil
}

// Options configures FindPath.
//
// Heuristic     – estimate of remaining cost; default Euclidean.
// MaxExpansions – cap on closed nodes; 0 means unlimited.
// OnExpand      – called when a node is closed, with its g and f values.
// OnRelax       – called when a neighbor's best cost improves.
type Options struct {
	Heuristic     Heuristic
	MaxExpansions int
	OnExpand      func(id int, g, f float64)
	OnRelax       func(from, to int, g float64)

	err error
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Euclidean heuristic, no expansion limit and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		OnExpand:  func(int, float64, float64) {},
		OnRelax:   func(int, int, float64) {},
	}
}

// WithHeuristic replaces the heuristic. A nil heuristic is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: nil heuristic", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}

// WithMaxExpansions bounds the number of closed nodes.
//
//	k > 0:  stop with ErrExpansionLimit once k nodes are closed without termination
//	k == 0: no limit
//	k < 0:  ErrOptionViolation
func WithMaxExpansions(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxExpansions = k
	}
}

// WithOnExpand registers a callback run each time a node is closed.
func WithOnExpand(fn func(id int, g, f float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback run each time a node's best cost improves.
func WithOnRelax(fn func(from, to int, g float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
