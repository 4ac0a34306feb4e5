package geoindex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/T4r4sB/puzzlemesh/geoindex"
	"github.com/T4r4sB/puzzlemesh/vec2"
)

func TestCandidatesFindsContainingBoxes(t *testing.T) {
	boxes := []vec2.Box{
		{Min: vec2.Vec{X: 0, Y: 0}, Max: vec2.Vec{X: 10, Y: 10}},
		{Min: vec2.Vec{X: 20, Y: 20}, Max: vec2.Vec{X: 30, Y: 30}},
	}
	idx := geoindex.NewIndex(boxes)

	assert.ElementsMatch(t, []int{0}, idx.Candidates(vec2.Vec{X: 5, Y: 5}))
	assert.ElementsMatch(t, []int{1}, idx.Candidates(vec2.Vec{X: 25, Y: 25}))
	assert.Empty(t, idx.Candidates(vec2.Vec{X: 100, Y: 100}))
}

func TestCandidatesOverlappingBoxes(t *testing.T) {
	boxes := []vec2.Box{
		{Min: vec2.Vec{X: 0, Y: 0}, Max: vec2.Vec{X: 10, Y: 10}},
		{Min: vec2.Vec{X: 5, Y: 5}, Max: vec2.Vec{X: 15, Y: 15}},
	}
	idx := geoindex.NewIndex(boxes)
	assert.ElementsMatch(t, []int{0, 1}, idx.Candidates(vec2.Vec{X: 7, Y: 7}))
}
