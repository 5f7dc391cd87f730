package main

import (
	"context"
	"log"

	"a11y-advocate-be/internal/bootstrap"
	"a11y-advocate-be/internal/config"
	"a11y-advocate-be/internal/server"
	"a11y-advocate-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)

	// 4. Start Background Services
	if err := container.MetricsService.Consume(context.Background()); err != nil {
		log.Printf("Background Metrics Consumer Error: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
