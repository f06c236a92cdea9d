package models

import (
	"fmt"
	"strings"
)

// Priority represents a task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// DefaultPriority is used when no priority is given
const DefaultPriority = PriorityMedium

// unknownRank sorts unrecognized values (hand-edited store files) below
// every recognized level.
const unknownRank = 999

// ParsePriority maps a raw priority string to its enum value
func ParsePriority(s string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return p, nil
	}
	return "", fmt.Errorf("invalid priority '%s' (must be: high, medium, low)", s)
}

// Valid reports whether p is one of the three recognized levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Rank returns the sort order of the priority: high before medium before
// low, anything else last.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	}
	return unknownRank
}

func (p Priority) String() string {
	return string(p)
}
