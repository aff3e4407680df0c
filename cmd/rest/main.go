package main

import (
	"context"
	"log"
	"time"

	"barberflow-be/internal/bootstrap"
	"barberflow-be/internal/config"
	"barberflow-be/internal/server"
	"barberflow-be/internal/tracer"
	"barberflow-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	ctx := context.Background()

	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(ctx); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// Daily automation sweep over every active barbershop.
	go container.AutomationService.Start(ctx)

	// WhatsApp session reconciliation sweep.
	go container.WhatsAppService.Start(ctx)

	// Overdue receivables sweep.
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				n, err := container.SubscriptionService.MarkOverdueRecords(ctx)
				if err != nil {
					log.Printf("Background Overdue Sweep Error: %v", err)
					continue
				}
				if n > 0 {
					log.Printf("Background: Marked %d financial records overdue", n)
				}
			}
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
