package lexrank

// Edge is an undirected similarity link between two sentences, A < B.
type Edge struct {
	A      int
	B      int
	Weight float64
}

// Graph is a symmetric weighted adjacency matrix without self loops.
type Graph struct {
	Size      int
	Adjacency [][]float64
}

// BuildGraph links every pair of sentences whose cosine similarity is
// positive and at least threshold.
func BuildGraph(vectors []TermVector, threshold float64) Graph {
	n := len(vectors)
	graph := Graph{Size: n, Adjacency: make([][]float64, n)}
	for i := range graph.Adjacency {
		graph.Adjacency[i] = make([]float64, n)
	}

	for i := range n {
		for j := i + 1; j < n; j++ {
			similarity := Cosine(vectors[i], vectors[j])
			if similarity > 0 && similarity >= threshold {
				graph.Adjacency[i][j] = similarity
				graph.Adjacency[j][i] = similarity
			}
		}
	}

	return graph
}

// Edges lists the links of g in row-major order.
func (g Graph) Edges() []Edge {
	var edges []Edge
	for i := range g.Size {
		for j := i + 1; j < g.Size; j++ {
			if w := g.Adjacency[i][j]; w > 0 {
				edges = append(edges, Edge{A: i, B: j, Weight: w})
			}
		}
	}
	return edges
}

// degree returns the number of links of sentence i.
func (g Graph) degree(i int) int {
	d := 0
	for _, w := range g.Adjacency[i] {
		if w > 0 {
			d++
		}
	}
	return d
}
