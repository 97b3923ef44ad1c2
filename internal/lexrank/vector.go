package lexrank

import (
	"math"
	"slices"
)

// Vocabulary is the sorted set of terms of one document.
type Vocabulary struct {
	Terms []string
	index map[string]int
}

// indexOf returns the dimension of term, or -1 when it is not in the vocabulary.
func (v Vocabulary) indexOf(term string) int {
	if i, ok := v.index[term]; ok {
		return i
	}
	return -1
}

// TermVector is a sparse non-negative weight vector over a Vocabulary.
// Indices are strictly increasing.
type TermVector struct {
	Indices []int
	Weights []float64
	norm    float64
}

// VectorSpace holds one TermVector per sentence over a shared vocabulary.
type VectorSpace struct {
	Vocabulary Vocabulary
	Vectors    []TermVector
}

// termWeights returns the vector of sentence i keyed by term.
func (vs VectorSpace) termWeights(i int) map[string]float64 {
	v := vs.Vectors[i]
	m := make(map[string]float64, len(v.Indices))
	for k, idx := range v.Indices {
		m[vs.Vocabulary.Terms[idx]] = v.Weights[k]
	}
	return m
}

// BuildVectorSpace weights each term by its frequency in the sentence,
// normalized by the most frequent term of that sentence. With idf set the
// weight is multiplied by 1 + ln(N/df), each sentence counting as a document.
func BuildVectorSpace(sentences [][]string, idf bool) VectorSpace {
	docFreq := make(map[string]int)
	termFreqs := make([]map[string]int, len(sentences))

	for i, tokens := range sentences {
		tf := make(map[string]int, len(tokens))
		for _, tok := range tokens {
			tf[tok]++
		}
		termFreqs[i] = tf
		for term := range tf {
			docFreq[term]++
		}
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	slices.Sort(terms)

	vocab := Vocabulary{Terms: terms, index: make(map[string]int, len(terms))}
	for i, term := range terms {
		vocab.index[term] = i
	}

	n := float64(len(sentences))
	vectors := make([]TermVector, len(sentences))
	for i, tf := range termFreqs {
		maxFreq := 0
		for _, c := range tf {
			maxFreq = max(maxFreq, c)
		}

		indices := make([]int, 0, len(tf))
		for term := range tf {
			indices = append(indices, vocab.indexOf(term))
		}
		slices.Sort(indices)

		weights := make([]float64, len(indices))
		sumSquares := 0.0
		for k, idx := range indices {
			term := terms[idx]
			w := float64(tf[term]) / float64(maxFreq)
			if idf {
				w *= 1 + math.Log(n/float64(docFreq[term]))
			}
			weights[k] = w
			sumSquares += w * w
		}

		vectors[i] = TermVector{
			Indices: indices,
			Weights: weights,
			norm:    math.Sqrt(sumSquares),
		}
	}

	return VectorSpace{Vocabulary: vocab, Vectors: vectors}
}

// Cosine returns the cosine similarity of a and b clamped to [0, 1].
// A zero vector is similar to nothing.
func Cosine(a, b TermVector) float64 {
	if a.norm == 0 || b.norm == 0 {
		return 0
	}

	dot := 0.0
	for i, j := 0, 0; i < len(a.Indices) && j < len(b.Indices); {
		switch {
		case a.Indices[i] == b.Indices[j]:
			dot += a.Weights[i] * b.Weights[j]
			i++
			j++
		case a.Indices[i] < b.Indices[j]:
			i++
		default:
			j++
		}
	}

	sim := dot / (a.norm * b.norm)
	return math.Min(1, math.Max(0, sim))
}
