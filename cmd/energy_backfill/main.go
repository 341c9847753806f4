package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitstats/internal/config"
	"github.com/2beens/fitstats/internal/db"
	"github.com/2beens/fitstats/internal/gymstats/dashboard"
	"github.com/2beens/fitstats/internal/gymstats/energy"
	"github.com/2beens/fitstats/internal/gymstats/events"
	"github.com/2beens/fitstats/internal/gymstats/profile"
	"github.com/2beens/fitstats/internal/logging"
	"github.com/2beens/fitstats/internal/telemetry/metrics"
	"github.com/2beens/fitstats/pkg"
)

// freecache's minimum segment size
const backfillCacheSize = 512 * 1024

var CLI struct {
	Env         string `help:"Environment section of the config file." default:"development" enum:"dev,development,prod,production"`
	Config      string `help:"Path of the TOML config file." type:"path" default:"./config.toml"`
	User        int    `help:"User to backfill." required:""`
	From        string `help:"First date to recompute (YYYY-MM-DD)." required:""`
	To          string `help:"Last date to recompute (YYYY-MM-DD)." required:""`
	Concurrency int    `help:"Dates recomputed in parallel." default:"4"`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("energy_backfill"),
		kong.Description("Recompute the energy snapshots of a user over a date range."),
		kong.UsageOnError(),
	)

	from, to, err := pkg.ParseDateRange(CLI.From, CLI.To)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(CLI.Env, CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	closeLogger := logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
		Environment: cfg.Environment,
	})
	defer closeLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
		DBUser: cfg.PostgresUser,
	})
	if err != nil {
		log.Errorf("new db pool: %s", err)
		return
	}
	defer dbPool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: os.Getenv("FITSTATS_REDIS_PASS"),
	})
	defer rdb.Close()

	metricsManager := metrics.NewManager("backend", "energy_backfill", metrics.SetupPrometheus())
	calculator := energy.NewCalculator(
		events.NewRepo(dbPool),
		profile.NewRepo(dbPool),
		energy.NewSnapshotsRepo(dbPool),
		metricsManager,
	)
	// only the shared redis version matters here, the local part stays empty
	viewCache := dashboard.NewCache(rdb, backfillCacheSize, cfg.DashboardCacheTTL.Duration, metricsManager)

	res, err := backfill(ctx, calculator, viewCache, backfillParams{
		UserID:      CLI.User,
		From:        *from,
		To:          *to,
		Concurrency: CLI.Concurrency,
	})
	log.Infof("backfill user [%d] %s..%s: %d upserted, %d deleted, %d failed",
		CLI.User, CLI.From, CLI.To, res.Upserted, res.Deleted, res.Failed)
	if err != nil {
		log.Errorf("backfill finished with errors: %s", err)
		closeLogger()
		os.Exit(1)
	}
}
