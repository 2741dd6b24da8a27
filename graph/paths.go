package graph

import (
	"github.com/GaelEmiliano/edd/heap"
	"github.com/GaelEmiliano/edd/queue"
)

// ShortestPath returns a path from a to b crossing the fewest edges,
// found by breadth-first search. An unreachable b yields a nil path and
// no error; a == b yields the one-vertex path.
func (g *Graph[V]) ShortestPath(a, b V) ([]V, error) {
	va, vb, err := g.pair(a, b)
	if err != nil {
		return nil, err
	}
	prev := map[*vertex[V]]*vertex[V]{va: nil}
	found := va == vb
	q := queue.New[*vertex[V]]()
	_ = q.Enqueue(va)
	for !found && !q.IsEmpty() {
		n, _ := q.Dequeue()
		for nb := range n.neighbors {
			if _, seen := prev[nb]; seen {
				continue
			}
			prev[nb] = n
			if nb == vb {
				found = true
				break
			}
			_ = q.Enqueue(nb)
		}
	}
	if !found {
		return nil, nil
	}
	return rebuild(prev, vb), nil
}

// Dijkstra returns a path from a to b of minimal total edge weight. An
// unreachable b yields a nil path and no error.
func (g *Graph[V]) Dijkstra(a, b V) ([]V, error) {
	va, vb, err := g.pair(a, b)
	if err != nil {
		return nil, err
	}
	dist := map[*vertex[V]]float64{va: 0}
	prev := map[*vertex[V]]*vertex[V]{va: nil}
	items := make(map[*vertex[V]]*heap.Item[*vertex[V]])
	h := heap.New(func(x, y *vertex[V]) int {
		switch dx, dy := dist[x], dist[y]; {
		case dx < dy:
			return -1
		case dx > dy:
			return 1
		}
		return 0
	})
	items[va] = h.Push(va)
	for !h.IsEmpty() {
		n, _ := h.Pop()
		delete(items, n)
		if n == vb {
			return rebuild(prev, vb), nil
		}
		for nb, w := range n.neighbors {
			d := dist[n] + w
			old, seen := dist[nb]
			if seen && old <= d {
				continue
			}
			dist[nb] = d
			prev[nb] = n
			if it, pending := items[nb]; pending {
				h.Fix(it)
			} else if !seen {
				items[nb] = h.Push(nb)
			}
		}
	}
	return nil, nil
}

// rebuild walks the predecessor links from the target back to the
// source and reverses them into a path.
func rebuild[V comparable](prev map[*vertex[V]]*vertex[V], target *vertex[V]) []V {
	var path []V
	for n := target; n != nil; n = prev[n] {
		path = append(path, n.value)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
