// Package cli implements the valuation command-line interface.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/SscSPs/money_valuation/internal/core/domain"
	portssvc "github.com/SscSPs/money_valuation/internal/core/ports/services"
	"github.com/SscSPs/money_valuation/internal/dto"
)

// Globals are flags shared by every command.
type Globals struct {
	DatabaseURL      string        `help:"PostgreSQL connection URL." env:"PGSQL_URL" required:""`
	ChartOfAccounts  string        `help:"YAML file mapping account IDs to category labels." type:"existingfile" optional:""`
	JournalTaxPolicy string        `help:"Tax treatment of journal entry lines." enum:"zero-tax,control-account" default:"zero-tax"`
	Timeout          time.Duration `help:"Abort the command after this long." default:"1m"`
}

type RunCmd struct {
	From time.Time `help:"First day of the period (YYYY-MM-DD)." required:"" format:"2006-01-02"`
	To   time.Time `help:"Last day of the period (YYYY-MM-DD)." required:"" format:"2006-01-02"`
}

func (cmd *RunCmd) Run(g *Globals, svc portssvc.ValuationSvcFacade, out io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), g.Timeout)
	defer cancel()

	report, err := svc.RunValuation(ctx, domain.Period{From: cmd.From, To: cmd.To})
	if err != nil {
		return err
	}
	return writeJSON(out, dto.ToValuationReportResponse(report))
}

type RevaluationsCmd struct {
	From time.Time `help:"First day of the period (YYYY-MM-DD)." required:"" format:"2006-01-02"`
	To   time.Time `help:"Last day of the period (YYYY-MM-DD)." required:"" format:"2006-01-02"`
}

func (cmd *RevaluationsCmd) Run(g *Globals, svc portssvc.ValuationSvcFacade, out io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), g.Timeout)
	defer cancel()

	entries, err := svc.ListRevaluations(ctx, domain.Period{From: cmd.From, To: cmd.To})
	if err != nil {
		return err
	}
	return writeJSON(out, dto.ListRevaluationsResponse{
		From:         cmd.From.Format(time.DateOnly),
		To:           cmd.To.Format(time.DateOnly),
		Revaluations: dto.ToListRevaluationResponse(entries),
	})
}

type BalanceCmd struct {
	Account string    `help:"Money account name." arg:""`
	AsOf    time.Time `help:"Date of the balance (YYYY-MM-DD)." required:"" format:"2006-01-02"`
}

func (cmd *BalanceCmd) Run(g *Globals, svc portssvc.ValuationSvcFacade, out io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), g.Timeout)
	defer cancel()

	balance, err := svc.BalanceAsOf(ctx, cmd.Account, cmd.AsOf)
	if err != nil {
		return err
	}
	return writeJSON(out, dto.BalanceResponse{
		AccountName: cmd.Account,
		AsOf:        cmd.AsOf.Format(time.DateOnly),
		Balance:     balance,
	})
}

// Commands is the full command tree.
type Commands struct {
	Globals

	Run          RunCmd          `cmd:"" help:"Value every transaction line in a period and derive revaluations."`
	Revaluations RevaluationsCmd `cmd:"" help:"List currency revaluation entries in a period."`
	Balance      BalanceCmd      `cmd:"" help:"Show the balance of a bank or cash account on a date."`
}

func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
