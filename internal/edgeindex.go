package internal

import "github.com/osuushi/voronoi/internal/dbg"

// Triangles and edges live in arenas and refer to each other by handle. Handles
// are never reused, so a stale handle always resolves to a dead record.
type TriangleID int

type EdgeID int

const noTriangle TriangleID = -1

func (id TriangleID) String() string {
	if id == noTriangle {
		return "Ø"
	}
	return dbg.Name(id)
}

func (id EdgeID) String() string {
	return dbg.Name(id)
}

// An indexed edge: the endpoint pair plus the two triangle slots. An empty slot
// holds noTriangle.
type edgeRecord struct {
	Edge
	m, n  TriangleID
	alive bool
}

func (r *edgeRecord) triangleCount() int {
	count := 0
	if r.m != noTriangle {
		count++
	}
	if r.n != noTriangle {
		count++
	}
	return count
}

func (r *edgeRecord) hasTriangle(t TriangleID) bool {
	return t != noTriangle && (r.m == t || r.n == t)
}

// Edges are bucketed by the minimum x and minimum y of their endpoints. Distinct
// edges can share a bucket, so lookups still compare endpoints.
type bucket struct {
	x, y int
}

func bucketOf(e Edge) bucket {
	return bucket{x: minInt(e.A.X, e.B.X), y: minInt(e.A.Y, e.B.Y)}
}

// The edge index is the single source of truth for how many triangles touch an
// edge. Every triangle creation and destruction goes through supplement and
// deprive; nothing else writes to the triangle slots.
type EdgeIndex struct {
	records []edgeRecord
	buckets map[bucket][]EdgeID
	size    int
}

func NewEdgeIndex() *EdgeIndex {
	return &EdgeIndex{buckets: make(map[bucket][]EdgeID)}
}

// Look up the handle of the indexed edge with the same endpoints as e.
func (ei *EdgeIndex) lookup(e Edge) (EdgeID, bool) {
	for _, id := range ei.buckets[bucketOf(e)] {
		if ei.records[id].Equal(e) {
			return id, true
		}
	}
	return 0, false
}

func (ei *EdgeIndex) record(id EdgeID) *edgeRecord {
	return &ei.records[id]
}

func (ei *EdgeIndex) alive(id EdgeID) bool {
	return int(id) < len(ei.records) && ei.records[id].alive
}

// Remove the edge, no questions asked. Reports whether it was present.
func (ei *EdgeIndex) remove(e Edge) bool {
	key := bucketOf(e)
	list := ei.buckets[key]
	for i, id := range list {
		if !ei.records[id].Equal(e) {
			continue
		}
		list = append(list[:i], list[i+1:]...)
		if len(list) == 0 {
			delete(ei.buckets, key)
		} else {
			ei.buckets[key] = list
		}
		ei.records[id].alive = false
		ei.size--
		return true
	}
	return false
}

// Register triangle t on edge e. If the edge isn't indexed yet, it is inserted
// with t as its only triangle; otherwise t fills the empty slot. A third
// triangle claiming an edge is an invariant violation.
func (ei *EdgeIndex) supplement(e Edge, t TriangleID) (EdgeID, error) {
	if id, ok := ei.lookup(e); ok {
		r := ei.record(id)
		if r.hasTriangle(t) {
			return id, failf(ErrEdgeOverfull, "triangle %d registered twice on edge %v", t, e)
		}
		switch {
		case r.m == noTriangle:
			r.m = t
		case r.n == noTriangle:
			r.n = t
		default:
			return id, failf(ErrEdgeOverfull, "edge %v cannot take triangle %d", e, t)
		}
		return id, nil
	}

	id := EdgeID(len(ei.records))
	ei.records = append(ei.records, edgeRecord{Edge: e, m: t, n: noTriangle, alive: true})
	key := bucketOf(e)
	ei.buckets[key] = append(ei.buckets[key], id)
	ei.size++
	return id, nil
}

// Deprive edge e of triangle t. Once an edge has no triangles left, it is
// removed from the index.
func (ei *EdgeIndex) deprive(e Edge, t TriangleID) error {
	id, ok := ei.lookup(e)
	if !ok {
		return failf(ErrUnrelated, "edge %v not present for deprive", e)
	}
	r := ei.record(id)
	switch {
	case t != noTriangle && r.m == t:
		r.m = noTriangle
	case t != noTriangle && r.n == t:
		r.n = noTriangle
	default:
		return failf(ErrUnrelated, "edge %v does not belong to triangle %d", e, t)
	}

	if r.triangleCount() == 0 {
		ei.remove(e)
	}
	return nil
}

// Call fn for every indexed edge, in creation order. fn must not add or remove
// edges; callers that need to mutate should collect handles first (see ids).
func (ei *EdgeIndex) forEach(fn func(EdgeID, *edgeRecord)) {
	for i := range ei.records {
		if ei.records[i].alive {
			fn(EdgeID(i), &ei.records[i])
		}
	}
}

// Snapshot of the live edge handles, in creation order.
func (ei *EdgeIndex) ids() []EdgeID {
	result := make([]EdgeID, 0, ei.size)
	ei.forEach(func(id EdgeID, _ *edgeRecord) {
		result = append(result, id)
	})
	return result
}

func (ei *EdgeIndex) Len() int {
	return ei.size
}

// How many triangles currently touch e? Zero means e isn't indexed.
func (ei *EdgeIndex) TriangleCount(e Edge) int {
	id, ok := ei.lookup(e)
	if !ok {
		return 0
	}
	return ei.record(id).triangleCount()
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
