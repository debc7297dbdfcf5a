package main

import (
	"context"
	"io/fs"
	"os"
	"time"

	httpadapter "homestead/internal/adapter/http"
	zstdjournal "homestead/internal/adapter/journal/zstd"
	metricsinmem "homestead/internal/adapter/metrics/inmemory"
	gormrepo "homestead/internal/adapter/repo/gorm"
	"homestead/internal/adapter/repo/memory"
	"homestead/internal/app/action"
	"homestead/internal/app/farmview"
	"homestead/internal/app/onboard"
	"homestead/internal/app/ports"
	"homestead/internal/app/progress"
	"homestead/internal/app/replay"
	"homestead/internal/app/status"
	"homestead/internal/domain/catalog"
	"homestead/internal/domain/reward"
	"homestead/migrations"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

type repos struct {
	tx       ports.TxManager
	players  ports.PlayerRepository
	entities ports.EntityRepository
	actions  ports.ActionExecutionRepository
	events   ports.EventRepository
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		hlog.Fatalf("load config: %v", err)
	}
	hlog.SetLevel(cfg.LogLevel)

	reg, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		hlog.Fatalf("load catalog: %v", err)
	}
	r, err := buildRepos(cfg)
	if err != nil {
		hlog.Fatalf("build repositories: %v", err)
	}
	kpiRecorder := metricsinmem.NewRecorder()

	var journal ports.ActionJournal
	if cfg.JournalDir != "" {
		w := zstdjournal.NewWriter(cfg.JournalDir, "actions")
		defer w.Close()
		journal = w
	}

	h := buildHandler(cfg, reg, r, kpiRecorder, journal)
	if cfg.DemoPlayer != "" {
		resp, err := h.OnboardUC.Execute(context.Background(), onboard.Request{PlayerID: cfg.DemoPlayer})
		if err != nil {
			hlog.Fatalf("seed demo player: %v", err)
		}
		hlog.Infof("demo player %s ready (created=%v)", resp.Player.ID, resp.Created)
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	hlog.Infof("homestead server listening on %s (storage=%s journal=%q)", cfg.Addr, storageName(cfg), cfg.JournalDir)
	s.Spin()
}

func buildHandler(cfg config, reg *catalog.Registry, r repos, kpi *metricsinmem.Recorder, journal ports.ActionJournal) httpadapter.Handler {
	return httpadapter.Handler{
		OnboardUC: onboard.UseCase{
			Players:        r.players,
			TxManager:      r.tx,
			StartResources: cfg.StartResources,
			Now:            time.Now,
		},
		ActionUC: action.UseCase{
			TxManager:  r.tx,
			Players:    r.players,
			Entities:   r.entities,
			ActionRepo: r.actions,
			EventRepo:  r.events,
			Catalog:    reg,
			Metrics:    kpi,
			Journal:    journal,
			Random:     randomSource(cfg.RandSeed),
			Now:        time.Now,
		},
		StatusUC:   status.UseCase{Players: r.players, Levels: reg.Levels(), Now: time.Now},
		FarmViewUC: farmview.UseCase{TxManager: r.tx, Entities: r.entities, Events: r.events, Catalog: reg, Now: time.Now},
		ProgressUC: progress.UseCase{Players: r.players, Entities: r.entities, Catalog: reg, Now: time.Now},
		ReplayUC:   replay.UseCase{Events: r.events},
		Catalog:    reg,
		KPI:        kpi,
	}
}

func loadCatalog(path string) (*catalog.Registry, error) {
	if path == "" {
		return catalog.MustDefault(), nil
	}
	return catalog.LoadFile(path)
}

func buildRepos(cfg config) (repos, error) {
	if cfg.DSN == "" {
		store := memory.NewStore()
		return repos{
			tx:       memory.NewTxManager(store),
			players:  memory.NewPlayerRepo(store),
			entities: memory.NewEntityRepo(store),
			actions:  memory.NewActionExecutionRepo(store),
			events:   memory.NewEventRepo(store),
		}, nil
	}
	db, err := gormrepo.OpenPostgres(cfg.DSN)
	if err != nil {
		return repos{}, err
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrationsFS(cfg.MigrationsDir)); err != nil {
		return repos{}, err
	}
	return repos{
		tx:       gormrepo.NewTxManager(db),
		players:  gormrepo.NewPlayerRepo(db),
		entities: gormrepo.NewEntityRepo(db),
		actions:  gormrepo.NewActionExecutionRepo(db),
		events:   gormrepo.NewEventRepo(db),
	}, nil
}

// migrationsFS prefers an on-disk directory so operators can add migrations
// without rebuilding.
func migrationsFS(dir string) fs.FS {
	if dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return os.DirFS(dir)
		}
	}
	return migrations.FS
}

func randomSource(seed uint64) reward.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return reward.NewLockedSource(reward.NewSeeded(seed))
}

func storageName(cfg config) string {
	if cfg.DSN == "" {
		return "memory"
	}
	return "postgres"
}
