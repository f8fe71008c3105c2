// Command server runs the to-do list HTTP API.
//
// Usage:
//
//	server
//
// Configuration is read from CONFIG_PATH (YAML) or environment variables;
// DATABASE_DSN and AUTH_SESSION_SECRET are required.
package main

import (
	"context"
	"log"

	"github.com/apetrini/todolist-backend/internal/app"
)

func main() {
	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
