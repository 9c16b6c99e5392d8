// Command website serves the AI-RD1 landing page and its lead-capture form.
package main

import (
	"embed"
	"io/fs"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/ai-rd1/website/internal/config"
	"github.com/ai-rd1/website/internal/content"
	"github.com/ai-rd1/website/internal/handlers"
	"github.com/ai-rd1/website/internal/lead"
	"github.com/ai-rd1/website/internal/server"
	"github.com/ai-rd1/website/internal/session"
	"github.com/ai-rd1/website/internal/tracing"
	"github.com/ai-rd1/website/pkg/logger"
)

//go:embed static
var staticFS embed.FS

func main() {
	// Load() won't overwrite existing vars, Overload() will
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	staticSub, err := fs.Sub(staticFS, "static")
	if err != nil {
		log.Fatal("Failed to access static files:", err)
	}

	fx.New(
		fx.WithLogger(func(log *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: log}
		}),
		fx.Supply(server.Assets{FS: staticSub}),

		logger.Module,
		config.Module,
		tracing.Module,
		content.Module,
		session.Module,
		lead.Module,
		handlers.Module,
		server.Module,
	).Run()
}
