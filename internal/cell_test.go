package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCellOrder_Ring(t *testing.T) {
	c := Cell{Center: Point{5, 5}}
	c.addEdge(Edge{Point{0, 0}, Point{10, 0}})
	c.addEdge(Edge{Point{10, 0}, Point{10, 10}})
	c.addEdge(Edge{Point{10, 10}, Point{0, 10}})
	c.addEdge(Edge{Point{0, 10}, Point{0, 0}})
	require.NoError(t, c.order())

	expected := []Point{{10, 10}, {0, 10}, {0, 0}, {10, 0}, {10, 10}}
	if diff := cmp.Diff(expected, c.Vertices); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, c.Closed())
	if diff := cmp.Diff(expected[:4], c.Polygon()); diff != "" {
		t.Errorf("polygon mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, pointInPolygon(c.Center, c.Polygon()))
}

func TestCellOrder_OpenChain(t *testing.T) {
	// Edges arrive in no particular order or direction
	c := Cell{Center: Point{5, 5}}
	c.addEdge(Edge{Point{20, 0}, Point{10, 0}})
	c.addEdge(Edge{Point{30, 5}, Point{20, 0}})
	c.addEdge(Edge{Point{0, 0}, Point{10, 0}})
	require.NoError(t, c.order())

	expected := []Point{{0, 0}, {10, 0}, {20, 0}, {30, 5}}
	if diff := cmp.Diff(expected, c.Vertices); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
	assert.False(t, c.Closed())
	assert.Equal(t, expected, c.Polygon())
}

func TestCellAddEdge_DropsZeroLength(t *testing.T) {
	c := Cell{Center: Point{5, 5}}
	c.addEdge(Edge{Point{3, 3}, Point{3, 3}})
	assert.Empty(t, c.edges)

	require.NoError(t, c.order())
	assert.Empty(t, c.Vertices)
	assert.False(t, c.Closed())
	assert.Empty(t, c.Polygon())
}

func TestCellOrder_Disconnected(t *testing.T) {
	c := Cell{Center: Point{5, 5}}
	c.addEdge(Edge{Point{0, 0}, Point{1, 1}})
	c.addEdge(Edge{Point{5, 5}, Point{6, 6}})
	err := c.order()
	assert.ErrorIs(t, err, ErrCellOrder)
}

func TestCellPolygon_Copies(t *testing.T) {
	c := Cell{Vertices: []Point{{0, 0}, {1, 0}, {0, 1}, {0, 0}}}
	polygon := c.Polygon()
	polygon[0] = Point{9, 9}
	assert.Equal(t, Point{0, 0}, c.Vertices[0])
}

func TestCellSelfIntersecting(t *testing.T) {
	square := Cell{Vertices: []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}}}
	assert.False(t, selfIntersecting(square))

	bowtie := Cell{Vertices: []Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}, {0, 0}}}
	require.True(t, bowtie.Closed())
	assert.True(t, selfIntersecting(bowtie))

	// The same zigzag left open still crosses itself
	zigzag := Cell{Vertices: []Point{{0, 0}, {10, 10}, {10, 0}, {0, 10}}}
	require.False(t, zigzag.Closed())
	assert.True(t, selfIntersecting(zigzag))

	// Touching at a shared vertex is not a crossing
	hook := Cell{Vertices: []Point{{0, 0}, {10, 0}, {10, 10}, {5, 0}}}
	assert.False(t, selfIntersecting(hook))
}
