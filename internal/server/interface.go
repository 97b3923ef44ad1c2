// Package server exposes the highlighter over HTTP.
package server

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Server serves the highlight API.
type Server interface {
	// Run listens until ctx is done, then shuts down gracefully.
	Run(ctx context.Context) error
	// App returns the underlying fiber app.
	App() *fiber.App
}
