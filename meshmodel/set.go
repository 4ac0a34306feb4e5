package meshmodel

import "github.com/T4r4sB/puzzlemesh/label"

// Set collects one Model per non-zero label encountered during a run,
// remembering the order labels were first seen so callers can honor
// spec.md §5's "labels are processed in the insertion order of the
// per-run label map" reproducibility contract.
type Set struct {
	order []label.Label
	byTag map[label.Label]*Model
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{byTag: make(map[label.Label]*Model)}
}

// GetOrCreate returns the Model for tag, creating and recording it (at
// the end of the insertion order) on first use. tag must not be
// label.Background; callers filter that out before calling this.
func (s *Set) GetOrCreate(tag label.Label) *Model {
	m, ok := s.byTag[tag]
	if !ok {
		m = New()
		s.byTag[tag] = m
		s.order = append(s.order, tag)
	}
	return m
}

// Labels returns the labels seen so far, in insertion order.
func (s *Set) Labels() []label.Label {
	return s.order
}

// Model returns the model for tag, or nil if tag was never seen.
func (s *Set) Model(tag label.Label) *Model {
	return s.byTag[tag]
}
