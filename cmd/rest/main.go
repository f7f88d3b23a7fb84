package main

import (
	"context"
	"log"

	"ai-chatapp-be/internal/bootstrap"
	"ai-chatapp-be/internal/config"
	"ai-chatapp-be/internal/server"
	"ai-chatapp-be/internal/tracer"
	"ai-chatapp-be/pkg/database"
)

func main() {
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	cfg := config.Load()

	gormDB, err := database.NewGormDB(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	defer database.Close(gormDB)

	container := bootstrap.NewContainer(gormDB, cfg)

	// Background workers
	go func() {
		log.Println("Background: Starting usage consumer...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background consumer error: %v", err)
		}
	}()
	if container.NotificationService != nil {
		container.NotificationService.Start()
	}

	srv := server.New(cfg, container)

	log.Fatal(srv.Run())
}
