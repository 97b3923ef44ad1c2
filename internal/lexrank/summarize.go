package lexrank

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/highlight-flow/internal/textproc"
)

func (s *implSummarizer) Summarize(ctx context.Context, text string, count int) (Summary, error) {
	if count <= 0 {
		return Summary{}, fmt.Errorf("%w: got %d", ErrInvalidSentenceCount, count)
	}
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	sentences := s.tokenizer.Sentences(text)
	if len(sentences) == 0 {
		s.logger.Debug(ctx, "No sentences found, nothing to rank")
		return Summary{Converged: true}, nil
	}

	tokens := make([][]string, len(sentences))
	for i, sent := range sentences {
		tokens[i] = sent.Tokens
	}

	space := BuildVectorSpace(tokens, s.opts.IDF)
	graph := BuildGraph(space.Vectors, s.opts.Threshold)
	edges := len(graph.Edges())
	isolated := 0
	for i := range graph.Size {
		if graph.degree(i) == 0 {
			isolated++
		}
	}
	rank := Rank(graph, s.opts.Rank)

	s.logger.Debug(ctx, "Ranked %d sentences (%d terms, %d edges, %d isolated) in %d iterations",
		len(sentences), len(space.Vocabulary.Terms), edges, isolated, rank.Iterations)

	if !rank.Converged {
		s.logger.Warn(ctx, "Centrality did not converge after %d iterations (delta %.6f), using last scores",
			rank.Iterations, rank.Delta)
	}

	picked := Select(rank.Scores, count)
	selected := make([]textproc.Sentence, len(picked))
	for i, idx := range picked {
		selected[i] = sentences[idx]
	}

	return Summary{
		Sentences:  sentences,
		Scores:     rank.Scores,
		Selected:   selected,
		Edges:      edges,
		Iterations: rank.Iterations,
		Converged:  rank.Converged,
	}, nil
}
