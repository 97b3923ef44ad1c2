package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nguyentantai21042004/highlight-flow/internal/highlight"
	"github.com/nguyentantai21042004/highlight-flow/internal/source"
	"github.com/nguyentantai21042004/highlight-flow/internal/transcript"
)

// VideoRequest is the body of POST /highlight_video_id.
type VideoRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// HighlightRequest is the body of POST /api/v1/highlights.
type HighlightRequest struct {
	Transcript    []transcript.RawChunk `json:"transcript" validate:"required"`
	TimeField     string                `json:"time_field" validate:"omitempty,oneof=start offset"`
	SentenceCount *int                  `json:"sentence_count" validate:"omitempty,min=1"`
}

// HighlightResponse is the data of a successful POST /api/v1/highlights.
type HighlightResponse struct {
	Segments      []highlight.Segment `json:"segments"`
	SentenceCount int                 `json:"sentence_count"`
	Sentences     []SentenceResponse  `json:"sentences"`
	Warnings      []string            `json:"warnings,omitempty"`
}

type SentenceResponse struct {
	Text   string  `json:"text"`
	Score  float64 `json:"score"`
	Chunks []int   `json:"chunks"`
}

// DocumentRequest is the body of PUT /api/v1/documents/:id.
type DocumentRequest struct {
	Title      string                `json:"title"`
	Transcript []transcript.RawChunk `json:"transcript" validate:"required"`
}

func (s *implServer) hello(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"result": "Hello, I am working"})
}

// highlightVideo fetches the transcript of a video URL and answers with the
// bare segment list.
func (s *implServer) highlightVideo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if s.deps.Fetcher == nil {
		return respondWithError(c, fiber.StatusServiceUnavailable, "transcript fetcher is not configured")
	}

	var req VideoRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, "Cannot parse JSON: "+err.Error())
	}
	if err := s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  formatValidationErrors(err),
		})
	}

	videoID, err := source.ParseVideoID(req.URL)
	if err != nil {
		return respondWithError(c, statusFor(err), err.Error())
	}

	chunks, err := s.deps.Fetcher.Fetch(ctx, videoID)
	if err != nil {
		s.deps.Logger.Warn(ctx, "Fetch transcript for %s: %v", videoID, err)
		return respondWithError(c, statusFor(err), err.Error())
	}

	res, err := s.deps.Highlighter.Highlight(ctx, highlight.Request{
		Transcript: chunks,
		TimeField:  transcript.FieldStart,
	})
	if err != nil {
		return respondWithError(c, statusFor(err), err.Error())
	}

	return c.JSON(res.Segments)
}

// highlightDocument highlights the stored transcript of ?doc_id= and answers
// with the bare segment list.
func (s *implServer) highlightDocument(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if s.deps.Store == nil {
		return respondWithError(c, fiber.StatusServiceUnavailable, "document store is not configured")
	}

	docID := c.Query("doc_id")
	if docID == "" {
		return respondWithError(c, fiber.StatusBadRequest, "doc_id is required")
	}

	doc, err := s.deps.Store.Get(ctx, docID)
	if err != nil {
		return respondWithError(c, statusFor(err), err.Error())
	}
	chunks, err := doc.Transcript()
	if err != nil {
		return respondWithError(c, statusFor(err), "Transcription not found")
	}

	res, err := s.deps.Highlighter.Highlight(ctx, highlight.Request{
		Transcript: chunks,
		TimeField:  transcript.FieldOffset,
	})
	if err != nil {
		return respondWithError(c, statusFor(err), err.Error())
	}

	return c.JSON(res.Segments)
}

func (s *implServer) highlightTranscript(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req HighlightRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, "Cannot parse JSON: "+err.Error())
	}
	if err := s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  formatValidationErrors(err),
		})
	}

	res, err := s.deps.Highlighter.Highlight(ctx, highlight.Request{
		Transcript:    req.Transcript,
		TimeField:     transcript.TimeField(req.TimeField),
		SentenceCount: req.SentenceCount,
	})
	if err != nil {
		return respondWithError(c, statusFor(err), err.Error())
	}

	return respondWithJSON(c, fiber.StatusOK, newHighlightResponse(res))
}

func (s *implServer) putDocument(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if s.deps.Store == nil {
		return respondWithError(c, fiber.StatusServiceUnavailable, "document store is not configured")
	}

	var req DocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return respondWithError(c, fiber.StatusBadRequest, "Cannot parse JSON: "+err.Error())
	}
	if err := s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Validation failed",
			"errors":  formatValidationErrors(err),
		})
	}

	doc := source.NewDocument(c.Params("id"), req.Transcript)
	doc.Title = req.Title
	if err := s.deps.Store.Put(ctx, doc); err != nil {
		return respondWithError(c, statusFor(err), err.Error())
	}

	return respondWithJSON(c, fiber.StatusCreated, fiber.Map{"id": doc.ID, "chunks": len(req.Transcript)})
}

func newHighlightResponse(res highlight.Result) HighlightResponse {
	out := HighlightResponse{
		Segments:      res.Segments,
		SentenceCount: res.SentenceCount,
		Sentences:     make([]SentenceResponse, len(res.Selected)),
	}
	for i, sel := range res.Selected {
		chunks := sel.SourceChunks
		if chunks == nil {
			chunks = []int{}
		}
		out.Sentences[i] = SentenceResponse{Text: sel.Text, Score: sel.Score, Chunks: chunks}
	}
	for _, w := range res.Warnings {
		out.Warnings = append(out.Warnings, w.Error())
	}
	return out
}
