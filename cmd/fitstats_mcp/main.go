// Package main runs the fitstats MCP server over stdio (for local editor use).
// The main backend serves the same tools at /mcp when mcp_enabled is set.
package main

import (
	"context"
	"flag"

	log "github.com/sirupsen/logrus"

	"github.com/2beens/fitstats/internal/config"
	"github.com/2beens/fitstats/internal/db"
	"github.com/2beens/fitstats/internal/gymstats/dashboard"
	"github.com/2beens/fitstats/internal/gymstats/energy"
	"github.com/2beens/fitstats/internal/gymstats/exercises"
	gymstatsmcp "github.com/2beens/fitstats/internal/gymstats/mcp"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(flag.CommandLine.Output())

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
		DBUser: cfg.PostgresUser,
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	snapshotsRepo := energy.NewSnapshotsRepo(dbPool)
	server := gymstatsmcp.NewServer(gymstatsmcp.NewContextService(
		gymstatsmcp.NewPoolSchemaRepo(dbPool),
		dashboard.NewService(exercises.NewRepo(dbPool), snapshotsRepo),
		snapshotsRepo,
	))

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Errorf("mcp server: %v", err)
	}
}
