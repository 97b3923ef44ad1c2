package server

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nguyentantai21042004/highlight-flow/internal/highlight"
	"github.com/nguyentantai21042004/highlight-flow/internal/logger"
	"github.com/nguyentantai21042004/highlight-flow/internal/source"
)

// Deps are the collaborators of the HTTP handlers. Fetcher and Store may be
// nil; their endpoints then answer 503.
type Deps struct {
	Highlighter highlight.Highlighter
	Fetcher     source.Fetcher
	Store       source.Store
	Gatherer    prometheus.Gatherer
	Logger      logger.Logger
}

type implServer struct {
	addr     string
	app      *fiber.App
	deps     Deps
	validate *validator.Validate
}

// New builds the fiber app and registers every route.
func New(addr string, readTimeout time.Duration, deps Deps) Server {
	s := &implServer{
		addr:     addr,
		deps:     deps,
		validate: validator.New(),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "highlight-flow",
		ReadTimeout:           readTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          s.errorHandler,
	})

	s.app.Use(recover.New())
	s.app.Use(cors.New())
	s.app.Use(s.requestLogger())
	s.routes()

	return s
}

func (s *implServer) App() *fiber.App {
	return s.app
}
