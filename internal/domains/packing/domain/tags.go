// Package domain holds the packing tag model.
package domain

import (
	"strings"
	"time"
)

// PackedTagPrefix starts every daily packing tag.
const PackedTagPrefix = "Packed-"

// PackedTag returns the daily packing tag for the given moment, e.g.
// "Packed-2024-06-01". Callers are expected to pass a time already shifted
// into the warehouse timezone.
func PackedTag(at time.Time) string {
	return PackedTagPrefix + at.Format("2006-01-02")
}

// TagSet is an ordered, duplicate-free list of order tags. The commerce
// platform serializes tags as one comma-separated string; TagSet preserves
// insertion order for display and guarantees appends are idempotent.
type TagSet struct {
	tags []string
}

// ParseTagSet splits a comma-separated tag string, trimming whitespace and
// dropping empty entries while preserving order.
func ParseTagSet(raw string) TagSet {
	var set TagSet
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			set.Append(trimmed)
		}
	}
	return set
}

// Contains reports whether the exact tag is present.
func (s TagSet) Contains(tag string) bool {
	for _, existing := range s.tags {
		if existing == tag {
			return true
		}
	}
	return false
}

// Append adds the tag unless it is already present. It reports whether the
// set changed.
func (s *TagSet) Append(tag string) bool {
	if s.Contains(tag) {
		return false
	}
	s.tags = append(s.tags, tag)
	return true
}

// Tags returns a copy of the tags in insertion order.
func (s TagSet) Tags() []string {
	return append([]string{}, s.tags...)
}

// String serializes the set the way the commerce platform stores it.
func (s TagSet) String() string {
	return strings.Join(s.tags, ", ")
}
