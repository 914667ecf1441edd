package transaction

import (
	"fmt"
	"os"
	"time"

	"github.com/hance08/dompet/internal/app"
	"github.com/hance08/dompet/internal/export"
	"github.com/hance08/dompet/internal/model"
	"github.com/hance08/dompet/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type exportFlags struct {
	filterFlags
	Format string
	Output string
	All    bool
}

type exportRunner struct {
	app   *app.App
	flags *exportFlags
	cmd   *cobra.Command
}

func NewExportCmd(a *app.App) *cobra.Command {
	flags := &exportFlags{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export transactions to CSV or PDF",
		Long: `Export transactions to a CSV or PDF statement.

By default only the selected page is exported. Use --all to walk every page
(up to a safety limit).

	Examples:
	dompet tx export --format csv --output history.csv
	dompet tx export --all --format pdf --output statement.pdf`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &exportRunner{
				app:   a,
				flags: flags,
				cmd:   cmd,
			}
			return runner.Run()
		},
	}

	flags.bind(cmd, service.PageSizes[len(service.PageSizes)-1])
	cmd.Flags().StringVarP(&flags.Format, "format", "f", string(export.FormatCSV), "Output format: csv or pdf")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "Output file (default dompet-<date>.<format>)")
	cmd.Flags().BoolVar(&flags.All, "all", false, "Export every page instead of one")

	return cmd
}

func (r *exportRunner) Run() error {
	ctx := r.cmd.Context()
	user, err := r.app.RequireLogin(ctx)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(r.flags.Format)
	if err != nil {
		return err
	}

	filter, err := r.flags.filter()
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Fetching transactions...")
	txs := r.app.Service.Transaction
	var rows []model.Transaction
	if r.flags.All {
		rows, err = txs.ListAll(ctx, filter, service.MaxAnalysisPages)
	} else {
		var page *model.TransactionPage
		page, err = txs.List(ctx, filter)
		if page != nil {
			rows = page.Content
		}
	}
	if err != nil {
		spinner.Fail("Could not fetch transactions")
		return err
	}
	spinner.Success(fmt.Sprintf("Fetched %d transactions", len(rows)))

	now := time.Now()
	output := r.flags.Output
	if output == "" {
		output = fmt.Sprintf("dompet-%s.%s", now.Format("20060102"), format)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", output, err)
	}

	st := export.Statement{
		Owner:       user.DisplayName(),
		GeneratedAt: now,
		Rows:        newPresenter(r.app).Rows(rows),
	}
	if err := export.Write(f, format, st); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", output, err)
	}

	r.app.Log.Info().Str("file", output).Int("rows", len(rows)).Msg("Exported transactions")
	pterm.Success.Printf("Exported %d transactions to %s\n", len(rows), output)
	return nil
}
