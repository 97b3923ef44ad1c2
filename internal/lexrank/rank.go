package lexrank

import "math"

// RankOptions tunes the power iteration.
type RankOptions struct {
	Damping       float64
	Epsilon       float64
	MaxIterations int
}

// DefaultRankOptions returns damping 0.85, epsilon 1e-4 and 100 iterations.
func DefaultRankOptions() RankOptions {
	return RankOptions{Damping: 0.85, Epsilon: 1e-4, MaxIterations: 100}
}

// RankResult holds the centrality scores, which sum to 1.
type RankResult struct {
	Scores     []float64
	Iterations int
	Converged  bool
	// Delta is the L1 change of the last iteration.
	Delta float64
}

// Rank computes the stationary distribution of a random walk over g that
// follows edges proportionally to their weight and teleports with
// probability 1 - damping. Sentences without edges jump uniformly.
func Rank(g Graph, opts RankOptions) RankResult {
	n := g.Size
	if n == 0 {
		return RankResult{Converged: true}
	}

	rowSums := make([]float64, n)
	for i := range n {
		for _, w := range g.Adjacency[i] {
			rowSums[i] += w
		}
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}
	next := make([]float64, n)

	result := RankResult{Delta: math.Inf(1)}
	teleport := (1.0 - opts.Damping) / float64(n)

	for iter := 1; iter <= opts.MaxIterations; iter++ {
		dangling := 0.0
		for j := range n {
			if rowSums[j] == 0 {
				dangling += scores[j]
			}
		}

		delta := 0.0
		for i := range n {
			link := dangling / float64(n)
			for j := range n {
				if w := g.Adjacency[j][i]; w > 0 {
					link += scores[j] * w / rowSums[j]
				}
			}
			next[i] = teleport + opts.Damping*link
			delta += math.Abs(next[i] - scores[i])
		}

		scores, next = next, scores
		result.Iterations = iter
		result.Delta = delta

		if delta < opts.Epsilon {
			result.Converged = true
			break
		}
	}

	result.Scores = scores
	return result
}
