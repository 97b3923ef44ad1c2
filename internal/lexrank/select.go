package lexrank

import (
	"cmp"
	"slices"
)

const (
	wordsPerSentence = 100
	minSentences     = 3
	maxSentences     = 20
)

// ResolveCount derives the number of highlight sentences from the word count
// of the source: one per hundred words, at least 3 and at most 20.
func ResolveCount(wordCount int) int {
	return min(max(wordCount/wordsPerSentence, minSentences), maxSentences)
}

// Select returns the indices of the k highest scores in ascending index
// order. Equal scores favour the earlier index.
func Select(scores []float64, k int) []int {
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}

	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(scores[b], scores[a])
	})

	if k < len(order) {
		order = order[:max(k, 0)]
	}
	slices.Sort(order)
	return order
}
