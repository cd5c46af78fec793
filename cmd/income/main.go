package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/rogerio-castellano/financial-data-api/internal/config"
	"github.com/rogerio-castellano/financial-data-api/internal/financials"
	"github.com/rogerio-castellano/financial-data-api/internal/models"
	"github.com/rogerio-castellano/financial-data-api/internal/repo"
)

type statementService interface {
	FilteredStatements(ctx context.Context, q repo.IncomeQuery) ([]models.FinancialRecord, error)
}

// connectFMP builds the same service the HTTP API uses, configured from the environment.
func connectFMP() (statementService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	statements := repo.NewFMPIncomeStatementRepository(repo.FMPConfig{
		BaseURL: cfg.UpstreamBaseURL,
		APIKey:  cfg.APIKey,
		Timeout: cfg.UpstreamTimeout,
	})
	return financials.NewService(statements), nil
}

func newRootCmd(connect func() (statementService, error)) *cobra.Command {
	var (
		q      repo.IncomeQuery
		format string
	)

	cmd := &cobra.Command{
		Use:           "income",
		Short:         "Print the AAPL annual income statements matching the given bounds",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormat(format) {
				return financials.InvalidParameter(&repo.ParamError{
					Param: "format",
					Err:   errors.New(`must be "table", "csv" or "json"`),
				})
			}

			svc, err := connect()
			if err != nil {
				return err
			}

			records, err := svc.FilteredStatements(cmd.Context(), q)
			if err != nil {
				return err
			}
			return render(cmd.OutOrStdout(), format, records)
		},
	}

	f := cmd.Flags()
	f.StringVar(&q.StartDate, "start-date", "", "earliest statement date, e.g. 2020-09-26")
	f.StringVar(&q.EndDate, "end-date", "", "latest statement date, e.g. 2024-09-28")
	f.StringVar(&q.MinRevenue, "min-revenue", "", "minimum revenue")
	f.StringVar(&q.MaxRevenue, "max-revenue", "", "maximum revenue")
	f.StringVar(&q.MinNetIncome, "min-net-income", "", "minimum net income")
	f.StringVar(&q.MaxNetIncome, "max-net-income", "", "maximum net income")
	f.StringVar(&format, "format", formatTable, "output format: table, csv or json")

	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(connectFMP).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", financials.KindOf(err).Summary(), err)
		stop()
		os.Exit(1)
	}
}
