// Command reindex rebuilds the search index entry of every customization.
// Use it after switching search backend or embedder.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/customtrack-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Reindex(ctx); err != nil {
		log.Printf("reindex: %v", err)
		os.Exit(1)
	}
}
