package apsp

import (
	"sort"

	"github.com/haldane-labs/nysm-stn/internal/interval"
)

// Edge identifies a directed pair of nodes.
type Edge struct {
	From, To int64
}

// Matrix is a dense distance mapping: Matrix[u][v] is the shortest known
// signed delay from u to v. A missing entry is implicitly interval.HUGE.
type Matrix map[int64]map[int64]float64

// Get returns the distance from u to v, or interval.HUGE if unknown.
func (m Matrix) Get(u, v int64) float64 {
	if row, ok := m[u]; ok {
		if d, ok := row[v]; ok {
			return d
		}
	}
	return interval.HUGE
}

// FloydWarshall computes all-pairs shortest paths over nodes given the
// initial edge weights. Self-distances start at 0; any pair without an
// explicit edge starts at interval.HUGE. Iteration order is ascending
// node id at every level (k, then i, then j) so identical inputs always
// produce a byte-identical matrix.
//
// Returns a *NegativeCycle, wrapped, the instant any self-distance is
// driven below zero — no partial relaxation is returned on failure.
func FloydWarshall(nodes []int64, edges map[Edge]float64) (Matrix, error) {
	ordered := make([]int64, len(nodes))
	copy(ordered, nodes)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	dist := make(Matrix, len(ordered))
	for _, n := range ordered {
		dist[n] = make(map[int64]float64, len(ordered))
	}
	for _, n := range ordered {
		dist[n][n] = 0
	}
	for e, w := range edges {
		dist[e.From][e.To] = w
	}

	get := func(u, v int64) float64 {
		if d, ok := dist[u][v]; ok {
			return d
		}
		return interval.HUGE
	}

	for _, k := range ordered {
		for _, i := range ordered {
			dik := get(i, k)
			if dik >= interval.HUGE {
				continue
			}
			for _, j := range ordered {
				dkj := get(k, j)
				if dkj >= interval.HUGE {
					continue
				}
				candidate := dik + dkj
				if candidate < get(i, j) {
					dist[i][j] = candidate
					if i == j && candidate < 0 {
						return nil, &NegativeCycle{
							At:     i,
							Via:    k,
							LegOut: dik,
							LegIn:  dkj,
						}
					}
				}
			}
		}
	}

	return dist, nil
}
