package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v2"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sparseSheet/contracts"
	"syscall"
	"time"
)

const ExitCodeMainError = 1

const DefaultListenAddress = ":8080"

const DefaultSubscriptionsDbPath = "subscriptions.db"

const shutdownTimeout = 5 * time.Second

var CommandUsageError = errors.New("wrong number of arguments")

type App struct {
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func NewApp(stdout io.Writer, stderr io.Writer) *App {
	return &App{
		stdout: stdout,
		stderr: stderr,
		logger: NewLogger(stderr, false),
	}
}

func RunApp(args []string) error {
	return NewApp(os.Stdout, os.Stderr).Run(context.Background(), args)
}

func (a *App) Run(ctx context.Context, args []string) error {
	return a.cliApp().RunContext(ctx, args)
}

func (a *App) cliApp() *cli.App {
	return &cli.App{
		Name:      "sheet",
		Usage:     "a sparse spreadsheet with +/- formulas, stored in a text file",
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "sheet file",
				Value:   DefaultSheetFilePath,
				EnvVars: []string{"SHEET_FILEPATH"},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "print diagnostics to stderr",
				EnvVars: []string{"SHEET_VERBOSE"},
			},
		},
		Before: func(c *cli.Context) error {
			a.logger = NewLogger(a.stderr, c.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "write_cell",
				Usage:     "write a value or a =formula to a cell",
				ArgsUsage: "<loc> <value>",
				Action:    a.writeCellAction,
			},
			{
				Name:      "read_cell",
				Usage:     "print the raw value of a cell",
				ArgsUsage: "<loc>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "eval", Usage: "print the evaluated value of a formula"},
				},
				Action: a.readCellAction,
			},
			{
				Name:      "delete_cell",
				Usage:     "delete a cell",
				ArgsUsage: "<loc>",
				Action:    a.deleteCellAction,
			},
			{
				Name:   "read_sheet",
				Usage:  "print the dimensions and every cell, formulas evaluated",
				Action: a.readSheetAction,
			},
			{
				Name:   "clear_sheet",
				Usage:  "remove every cell",
				Action: a.clearSheetAction,
			},
			{
				Name:   "shrink",
				Usage:  "drop trailing empty columns and recompute the row count",
				Action: a.shrinkAction,
			},
			{
				Name:      "export_xlsx",
				Usage:     "write the evaluated sheet to an xlsx workbook",
				ArgsUsage: "<path>",
				Action:    a.exportXlsxAction,
			},
			{
				Name:  "serve",
				Usage: "serve the sheet over HTTP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "listen",
						Value:   DefaultListenAddress,
						EnvVars: []string{"SHEET_LISTEN"},
					},
					&cli.StringFlag{
						Name:    "subscriptions-db",
						Value:   DefaultSubscriptionsDbPath,
						EnvVars: []string{"SUBSCRIPTIONS_DB_FILEPATH"},
					},
					&cli.IntFlag{
						Name:  "webhook-workers",
						Value: DefaultWebhookWorkersCount,
					},
				},
				Action: a.serveAction,
			},
		},
	}
}

func (a *App) buildContainer(c *cli.Context) (ServiceContainer, error) {
	return BuildServiceContainer(Config{SheetFilePath: c.String("file")}, a.logger)
}

func (a *App) writeCellAction(c *cli.Context) error {
	if c.Args().Len() != 2 {
		return fmt.Errorf("%w: write_cell takes 2 args: <loc> <value>", CommandUsageError)
	}

	container, err := a.buildContainer(c)
	if err == nil {
		_, err = container.SheetRepository.SetCell(c.Args().Get(0), c.Args().Get(1))
	}

	return err
}

func (a *App) readCellAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("%w: read_cell takes 1 arg: <loc>", CommandUsageError)
	}

	container, err := a.buildContainer(c)
	if err != nil {
		return err
	}

	cell, err := container.SheetRepository.GetCell(c.Args().Get(0), c.Bool("eval"))
	if errors.Is(err, contracts.CellNotFoundError) {
		// an empty cell prints nothing
		return nil
	} else if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.stdout, cell.Result)
	return err
}

func (a *App) deleteCellAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("%w: delete_cell takes 1 arg: <loc>", CommandUsageError)
	}

	container, err := a.buildContainer(c)
	if err != nil {
		return err
	}

	deleted, err := container.SheetRepository.DeleteCell(c.Args().Get(0))
	if err == nil {
		a.logger.Debug("delete_cell", "address", c.Args().Get(0), "deleted", deleted)
	}

	return err
}

func (a *App) readSheetAction(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return fmt.Errorf("%w: read_sheet takes no args", CommandUsageError)
	}

	container, err := a.buildContainer(c)
	if err != nil {
		return err
	}

	sheet, err := container.SheetRepository.GetSheet()
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(a.stdout, "%d %d\n", sheet.Columns, sheet.Rows); err != nil {
		return err
	}
	for _, cell := range sheet.Cells {
		if _, err = fmt.Fprintf(a.stdout, "%s %s\n", cell.Address, cell.Result); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) clearSheetAction(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return fmt.Errorf("%w: clear_sheet takes no args", CommandUsageError)
	}

	container, err := a.buildContainer(c)
	if err == nil {
		err = container.SheetRepository.ClearSheet()
	}

	return err
}

func (a *App) shrinkAction(c *cli.Context) error {
	if c.Args().Len() != 0 {
		return fmt.Errorf("%w: shrink takes no args", CommandUsageError)
	}

	container, err := a.buildContainer(c)
	if err != nil {
		return err
	}

	modified, err := container.SheetRepository.ShrinkSheet()
	if err == nil {
		a.logger.Debug("shrink", "modified", modified)
	}

	return err
}

func (a *App) exportXlsxAction(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("%w: export_xlsx takes 1 arg: <path>", CommandUsageError)
	}

	container, err := a.buildContainer(c)
	if err != nil {
		return err
	}

	sheet := NewSparseSheetStore(container.FormulaEvaluator, a.logger)
	if err = container.SheetFile.Load(sheet); err != nil {
		return err
	}

	return NewXlsxExporter().Export(sheet, c.Args().Get(0))
}

func (a *App) serveAction(c *cli.Context) error {
	gin.SetMode(gin.ReleaseMode)

	container, err := BuildServiceContainer(Config{
		SheetFilePath:       c.String("file"),
		SubscriptionsDbPath: c.String("subscriptions-db"),
		WebhookWorkersCount: c.Int("webhook-workers"),
	}, a.logger)
	if err != nil {
		return err
	}
	defer container.Database.Close()

	container.WebhookDispatcher.Start()
	defer container.WebhookDispatcher.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.serve(ctx, c.String("listen"), container.Router)
}

// serve runs the HTTP server until ctx is cancelled
func (a *App) serve(ctx context.Context, listen string, handler http.Handler) error {
	server := &http.Server{Addr: listen, Handler: handler}

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()
	a.logger.Info("serving sheet", "listen", listen)

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func HandleExitError(errStream io.Writer, err error) int {
	if err != nil {
		_, _ = fmt.Fprintln(errStream, err)
		return ExitCodeMainError
	}

	return 0
}
