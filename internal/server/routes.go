package server

import (
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *implServer) routes() {
	s.app.Get("/", s.hello)
	s.app.Post("/highlight_video_id", s.highlightVideo)
	s.app.Post("/highlight_doc_id", s.highlightDocument)

	if s.deps.Gatherer != nil {
		s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := s.app.Group("/api/v1")
	apiV1.Post("/highlights", s.highlightTranscript)
	apiV1.Put("/documents/:id", s.putDocument)
}
