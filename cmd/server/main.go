package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	httpadapter "chatagotchi/internal/adapter/http"
	metricsinmem "chatagotchi/internal/adapter/metrics/inmemory"
	gormrepo "chatagotchi/internal/adapter/repo/gorm"
	memrepo "chatagotchi/internal/adapter/repo/memory"
	"chatagotchi/internal/app/auth"
	"chatagotchi/internal/app/game"
	"chatagotchi/internal/app/ports"
	"chatagotchi/internal/domain/pet"
	"chatagotchi/internal/platform/config"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	records, events, credentials, txManager := mustBuildRepos(cfg)
	kpiRecorder := metricsinmem.NewRecorder()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gameUC := game.UseCase{
		TxManager:   txManager,
		Records:     records,
		Events:      events,
		Metrics:     kpiRecorder,
		PickSpecies: func() pet.Species { return pet.RandomSpecies(rng) },
		Now:         time.Now,
	}

	h := httpadapter.Handler{
		RegisterUC: auth.RegisterUseCase{
			Credentials: credentials,
			Records:     records,
			TxManager:   txManager,
			Now:         time.Now,
		},
		AuthUC: auth.VerifyUseCase{Credentials: credentials},
		GameUC: gameUC,
		KPI:    kpiRecorder,
	}

	s := server.Default(server.WithHostPorts(cfg.HTTPAddr))
	h.RegisterRoutes(s)

	log.Printf("chatagotchi server listening on %s", cfg.HTTPAddr)
	s.Spin()
}

func mustBuildRepos(cfg config.Config) (ports.GameRecordRepository, ports.EventRepository, ports.PlayerCredentialRepository, ports.TxManager) {
	if cfg.DBDSN == "" {
		log.Println("CHATAGOTCHI_DB_DSN not set, using in-memory store")
		store := memrepo.NewStore()
		return memrepo.NewGameRecordRepo(store), memrepo.NewEventRepo(store), memrepo.NewPlayerCredentialRepo(store), memrepo.NewTxManager(store)
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return gormrepo.NewGameRecordRepo(db), gormrepo.NewEventRepo(db), gormrepo.NewPlayerCredentialRepo(db), gormrepo.NewTxManager(db)
}
