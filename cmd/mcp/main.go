package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpadapter "chatagotchi/internal/adapter/mcp"
	gormrepo "chatagotchi/internal/adapter/repo/gorm"
	memrepo "chatagotchi/internal/adapter/repo/memory"
	"chatagotchi/internal/app/game"
	"chatagotchi/internal/app/ports"
	"chatagotchi/internal/domain/pet"
	"chatagotchi/internal/platform/config"
)

// main serves the game over MCP, on stdio or streamable HTTP.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.SetPrefix("[MCP] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, events, txManager := mustBuildRepos(ctx, cfg)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gameUC := game.UseCase{
		TxManager:   txManager,
		Records:     records,
		Events:      events,
		PickSpecies: func() pet.Species { return pet.RandomSpecies(rng) },
		Now:         time.Now,
	}

	srv := mcpadapter.New(gameUC, mcpadapter.StaticUserResolver(cfg.MCPUserID))

	switch cfg.MCPTransport {
	case "stdio":
		if err := srv.Run(ctx); err != nil {
			log.Fatalf("serve mcp over stdio: %v", err)
		}
	case "http":
		httpServer := &http.Server{Addr: cfg.MCPHTTPAddr, Handler: srv.StreamableHTTPHandler()}
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = httpServer.Shutdown(shutdownCtx)
		}()
		log.Printf("mcp server listening on %s", cfg.MCPHTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("serve mcp over http: %v", err)
		}
	default:
		log.Fatalf("transport %q is not supported", cfg.MCPTransport)
	}
}

func mustBuildRepos(ctx context.Context, cfg config.Config) (ports.GameRecordRepository, ports.EventRepository, ports.TxManager) {
	if cfg.DBDSN == "" {
		log.Println("CHATAGOTCHI_DB_DSN not set, using in-memory store")
		store := memrepo.NewStore()
		return memrepo.NewGameRecordRepo(store), memrepo.NewEventRepo(store), memrepo.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return gormrepo.NewGameRecordRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewTxManager(db)
}
