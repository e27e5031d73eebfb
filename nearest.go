package deltae

import (
	"container/heap"
	"math"
	"sort"
)

// LabNode represents a node in a KD-tree over CIE L*a*b* coordinates.
// Each node contains a coordinate, a left child, a right child, and
// the axis along which its subtree is split.
type LabNode struct {
	Lab         Triplet
	Left, Right *LabNode
	SplitAxis   int
}

// BuildLabTree constructs a KD-tree from a set of L*a*b* coordinates,
// choosing each split axis as the dimension with the largest variance.
// The tree supports nearest-candidate queries under Euclidean (CIE
// 1976) distance; exact re-ranking under another metric is layered on
// top by NearestByMethod.
func BuildLabTree(labs []Triplet) *LabNode {
	if len(labs) == 0 {
		return nil
	}
	own := append([]Triplet(nil), labs...)
	return buildLabTree(own)
}

func buildLabTree(labs []Triplet) *LabNode {
	if len(labs) == 0 {
		return nil
	}
	axis := chooseSplitAxis(labs)
	sort.Slice(labs, func(i, j int) bool {
		return labs[i][axis] < labs[j][axis]
	})
	median := len(labs) / 2
	return &LabNode{
		Lab:       labs[median],
		Left:      buildLabTree(labs[:median]),
		Right:     buildLabTree(labs[median+1:]),
		SplitAxis: axis,
	}
}

// chooseSplitAxis selects the axis with the largest variance across
// the given coordinates.
func chooseSplitAxis(labs []Triplet) int {
	var mean, variance [3]float64
	for _, l := range labs {
		for i := 0; i < 3; i++ {
			mean[i] += l[i]
		}
	}
	for i := 0; i < 3; i++ {
		mean[i] /= float64(len(labs))
	}
	for _, l := range labs {
		for i := 0; i < 3; i++ {
			d := l[i] - mean[i]
			variance[i] += d * d
		}
	}
	if variance[0] > variance[1] && variance[0] > variance[2] {
		return 0
	} else if variance[1] > variance[2] {
		return 1
	}
	return 2
}

// labDistanceHeap is a max-heap of candidate coordinates ordered by
// distance, used to keep the k best candidates during tree search.
type labCandidate struct {
	lab      Triplet
	distance float64
}

type labDistanceHeap []labCandidate

func (h labDistanceHeap) Len() int            { return len(h) }
func (h labDistanceHeap) Less(i, j int) bool  { return h[i].distance > h[j].distance }
func (h labDistanceHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *labDistanceHeap) Push(x interface{}) { *h = append(*h, x.(labCandidate)) }
func (h *labDistanceHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// KNearest finds the k nearest coordinates to the target under
// Euclidean (CIE 1976) distance. The function returns the candidates
// sorted from nearest to farthest; fewer than k are returned when the
// tree is smaller than k.
func (node *LabNode) KNearest(target Triplet, k int) []Triplet {
	if node == nil || k <= 0 {
		return nil
	}
	pq := make(labDistanceHeap, 0, k)
	heap.Init(&pq)

	var search func(*LabNode)
	search = func(n *LabNode) {
		if n == nil {
			return
		}
		dist := CIE1976(n.Lab, target)
		if pq.Len() < k {
			heap.Push(&pq, labCandidate{n.Lab, dist})
		} else if dist < pq[0].distance {
			heap.Pop(&pq)
			heap.Push(&pq, labCandidate{n.Lab, dist})
		}

		axisDist := target[n.SplitAxis] - n.Lab[n.SplitAxis]
		first, second := n.Left, n.Right
		if axisDist >= 0 {
			first, second = n.Right, n.Left
		}
		search(first)
		// The far branch can only improve the result when the
		// splitting plane is closer than the current worst candidate.
		if pq.Len() < k || math.Abs(axisDist) < pq[0].distance {
			search(second)
		}
	}
	search(node)

	result := make([]Triplet, pq.Len())
	for i := len(result) - 1; i >= 0; i-- {
		result[i] = heap.Pop(&pq).(labCandidate).lab
	}
	return result
}

// Match is a palette coordinate paired with its distance to a query
// under some metric.
type Match struct {
	Lab      Triplet
	Distance float64
}

// NearestByMethod finds the palette coordinate nearest to the target
// under any registered method. The KD-tree supplies candidates under
// Euclidean distance, which are then re-ranked exactly under the
// requested method; candidates is the number of Euclidean neighbors to
// re-rank (values around 8 cover the divergence between the Euclidean
// and perceptual orderings in practice). The function returns an
// UnknownMethodError for an unresolvable method name.
func (node *LabNode) NearestByMethod(e *Engine, target Triplet, methodName string, candidates int, opts ...Option) (Match, error) {
	if candidates < 1 {
		candidates = 8
	}
	near := node.KNearest(target, candidates)
	best := Match{Distance: math.MaxFloat64}
	for _, lab := range near {
		d, err := e.DeltaE(target, lab, methodName, opts...)
		if err != nil {
			return Match{}, err
		}
		if d < best.Distance {
			best = Match{Lab: lab, Distance: d}
		}
	}
	return best, nil
}
