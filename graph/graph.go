// Package graph implements an undirected weighted graph with
// breadth-first and depth-first visits, a connectivity check and
// shortest-path queries, both unweighted and by edge weight.
package graph

import (
	"errors"

	"github.com/GaelEmiliano/edd/abstract"
	"github.com/GaelEmiliano/edd/queue"
	"github.com/GaelEmiliano/edd/stack"
)

var (
	// ErrVertexExists is returned by AddVertex for a value already present.
	ErrVertexExists = errors.New("graph: vertex already exists")
	// ErrNoSuchVertex is returned for operations naming an absent vertex.
	ErrNoSuchVertex = errors.New("graph: no such vertex")
	// ErrEdgeExists is returned by Connect for vertices already connected.
	ErrEdgeExists = errors.New("graph: edge already exists")
	// ErrNoSuchEdge is returned for operations naming an absent edge.
	ErrNoSuchEdge = errors.New("graph: no such edge")
	// ErrBadEdge is returned for a self-loop or a non-positive weight.
	ErrBadEdge = errors.New("graph: invalid edge")
)

type vertex[V comparable] struct {
	value     V
	neighbors map[*vertex[V]]float64
}

// Graph is an undirected graph with positively weighted edges.
type Graph[V comparable] struct {
	vertices map[V]*vertex[V]
	edges    int
}

// New returns an empty graph.
func New[V comparable]() *Graph[V] {
	return &Graph[V]{vertices: make(map[V]*vertex[V])}
}

// Len returns the number of vertices.
func (g *Graph[V]) Len() int { return len(g.vertices) }

// Edges returns the number of edges.
func (g *Graph[V]) Edges() int { return g.edges }

// IsEmpty reports whether the graph has no vertices.
func (g *Graph[V]) IsEmpty() bool { return len(g.vertices) == 0 }

// Contains reports whether v is a vertex of the graph.
func (g *Graph[V]) Contains(v V) bool {
	_, ok := g.vertices[v]
	return ok
}

// AddVertex adds v as an isolated vertex. A nil value is rejected with
// abstract.ErrNilValue; a value already present with ErrVertexExists.
func (g *Graph[V]) AddVertex(v V) error {
	if abstract.IsNil(v) {
		return abstract.ErrNilValue
	}
	if _, ok := g.vertices[v]; ok {
		return ErrVertexExists
	}
	g.vertices[v] = &vertex[V]{value: v, neighbors: make(map[*vertex[V]]float64)}
	return nil
}

// RemoveVertex removes v and every edge incident to it.
func (g *Graph[V]) RemoveVertex(v V) error {
	vx, ok := g.vertices[v]
	if !ok {
		return ErrNoSuchVertex
	}
	for n := range vx.neighbors {
		delete(n.neighbors, vx)
		g.edges--
	}
	delete(g.vertices, v)
	return nil
}

// Connect adds an edge of weight 1 between a and b.
func (g *Graph[V]) Connect(a, b V) error {
	return g.ConnectWeighted(a, b, 1)
}

// ConnectWeighted adds an edge of weight w between a and b. Self-loops
// and non-positive weights fail with ErrBadEdge.
func (g *Graph[V]) ConnectWeighted(a, b V, w float64) error {
	if a == b || w <= 0 {
		return ErrBadEdge
	}
	va, vb, err := g.pair(a, b)
	if err != nil {
		return err
	}
	if _, ok := va.neighbors[vb]; ok {
		return ErrEdgeExists
	}
	va.neighbors[vb] = w
	vb.neighbors[va] = w
	g.edges++
	return nil
}

// Disconnect removes the edge between a and b.
func (g *Graph[V]) Disconnect(a, b V) error {
	va, vb, err := g.pair(a, b)
	if err != nil {
		return err
	}
	if _, ok := va.neighbors[vb]; !ok {
		return ErrNoSuchEdge
	}
	delete(va.neighbors, vb)
	delete(vb.neighbors, va)
	g.edges--
	return nil
}

// AreConnected reports whether an edge joins a and b.
func (g *Graph[V]) AreConnected(a, b V) bool {
	va, vb, err := g.pair(a, b)
	if err != nil {
		return false
	}
	_, ok := va.neighbors[vb]
	return ok
}

// Weight returns the weight of the edge between a and b.
func (g *Graph[V]) Weight(a, b V) (float64, error) {
	va, vb, err := g.pair(a, b)
	if err != nil {
		return 0, err
	}
	w, ok := va.neighbors[vb]
	if !ok {
		return 0, ErrNoSuchEdge
	}
	return w, nil
}

// SetWeight changes the weight of an existing edge between a and b.
func (g *Graph[V]) SetWeight(a, b V, w float64) error {
	if w <= 0 {
		return ErrBadEdge
	}
	va, vb, err := g.pair(a, b)
	if err != nil {
		return err
	}
	if _, ok := va.neighbors[vb]; !ok {
		return ErrNoSuchEdge
	}
	va.neighbors[vb] = w
	vb.neighbors[va] = w
	return nil
}

// Neighbors returns the values adjacent to v.
func (g *Graph[V]) Neighbors(v V) ([]V, error) {
	vx, ok := g.vertices[v]
	if !ok {
		return nil, ErrNoSuchVertex
	}
	out := make([]V, 0, len(vx.neighbors))
	for n := range vx.neighbors {
		out = append(out, n.value)
	}
	return out, nil
}

// Walk visits every vertex in unspecified order.
func (g *Graph[V]) Walk(fn func(V)) {
	for v := range g.vertices {
		fn(v)
	}
}

// BFS visits every vertex reachable from start in breadth-first order.
func (g *Graph[V]) BFS(start V, fn func(V)) error {
	vx, ok := g.vertices[start]
	if !ok {
		return ErrNoSuchVertex
	}
	q := queue.New[*vertex[V]]()
	_ = q.Enqueue(vx)
	seen := map[*vertex[V]]bool{vx: true}
	for !q.IsEmpty() {
		n, _ := q.Dequeue()
		fn(n.value)
		for nb := range n.neighbors {
			if !seen[nb] {
				seen[nb] = true
				_ = q.Enqueue(nb)
			}
		}
	}
	return nil
}

// DFS visits every vertex reachable from start in depth-first order.
func (g *Graph[V]) DFS(start V, fn func(V)) error {
	vx, ok := g.vertices[start]
	if !ok {
		return ErrNoSuchVertex
	}
	s := stack.New[*vertex[V]]()
	_ = s.Push(vx)
	seen := map[*vertex[V]]bool{vx: true}
	for !s.IsEmpty() {
		n, _ := s.Pop()
		fn(n.value)
		for nb := range n.neighbors {
			if !seen[nb] {
				seen[nb] = true
				_ = s.Push(nb)
			}
		}
	}
	return nil
}

// IsConnected reports whether every vertex is reachable from every
// other. The empty graph is connected.
func (g *Graph[V]) IsConnected() bool {
	if len(g.vertices) == 0 {
		return true
	}
	var start V
	for v := range g.vertices {
		start = v
		break
	}
	count := 0
	_ = g.BFS(start, func(V) { count++ })
	return count == len(g.vertices)
}

func (g *Graph[V]) pair(a, b V) (*vertex[V], *vertex[V], error) {
	va, ok := g.vertices[a]
	if !ok {
		return nil, nil, ErrNoSuchVertex
	}
	vb, ok := g.vertices[b]
	if !ok {
		return nil, nil, ErrNoSuchVertex
	}
	return va, vb, nil
}
