package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/SscSPs/money_valuation/internal/adapters/database/pgsql"
	"github.com/SscSPs/money_valuation/internal/cli"
	portssvc "github.com/SscSPs/money_valuation/internal/core/ports/services"
	"github.com/SscSPs/money_valuation/internal/core/services"
	"github.com/SscSPs/money_valuation/internal/platform/config"
	"github.com/SscSPs/money_valuation/pkg/database"
	"github.com/alecthomas/kong"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// Version contains the application version number. It's set via ldflags
	// when building.
	Version = "dev"

	commands struct {
		Version kong.VersionFlag `help:"Show version information"`
		cli.Commands
	}
)

func main() {
	// Logs go to stderr so stdout stays valid JSON.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx := kong.Parse(&commands,
		kong.Vars{"version": Version},
		kong.Name("valuation"),
		kong.Description("Value a multi-currency ledger in its base currency."),
		kong.UsageOnError(),
		kong.Bind(&commands.Globals),
	)

	pool, svc, err := newValuationService(&commands.Globals)
	ctx.FatalIfErrorf(err)

	ctx.BindTo(svc, (*portssvc.ValuationSvcFacade)(nil))
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))
	err = ctx.Run()
	database.ClosePgxPool(pool)
	ctx.FatalIfErrorf(err)
}

func newValuationService(g *cli.Globals) (*pgxpool.Pool, portssvc.ValuationSvcFacade, error) {
	policy, err := services.ParseJournalEntryTaxPolicy(g.JournalTaxPolicy)
	if err != nil {
		return nil, nil, err
	}

	options := []services.ValuationServiceOption{services.WithJournalEntryTaxPolicy(policy)}
	if g.ChartOfAccounts != "" {
		chart, err := config.LoadChartOfAccounts(g.ChartOfAccounts)
		if err != nil {
			return nil, nil, err
		}
		options = append(options, services.WithChartOfAccounts(chart))
	}

	ctx, cancel := context.WithTimeout(context.Background(), g.Timeout)
	defer cancel()
	pool, err := database.NewPgxPool(ctx, g.DatabaseURL, database.PoolOptions{MaxConns: 2})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repos := pgsql.NewRepositoryProvider(pool)
	return pool, services.NewValuationService(repos.Loader, repos.Indexer, options...), nil
}
