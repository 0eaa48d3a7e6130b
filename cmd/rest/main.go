package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ai-realestate-be/internal/bootstrap"
	"ai-realestate-be/internal/config"
	"ai-realestate-be/internal/server"
	"ai-realestate-be/internal/tracer"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(cfg)
	if err != nil {
		log.Fatalf("Unable to build container: %v", err)
	}
	defer container.Close()

	// 3. Initialize Tracer
	shutdownTracer := tracer.InitTracer(cfg.Tracing, container.Logger)
	defer func() { _ = shutdownTracer(context.Background()) }()

	// 4. Seed, project and start background services
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := container.Start(ctx); err != nil {
		log.Printf("Unable to start background services: %v", err)
		return
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		log.Println("Shutting down server...")
		_ = srv.Shutdown()
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
