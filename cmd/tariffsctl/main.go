package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Gunvolt24/wb_tariffs/config"
	"github.com/Gunvolt24/wb_tariffs/internal/ports"
	"github.com/Gunvolt24/wb_tariffs/internal/repo/postgres"
	"github.com/Gunvolt24/wb_tariffs/internal/sheets"
	"github.com/Gunvolt24/wb_tariffs/internal/usecase"
	"github.com/Gunvolt24/wb_tariffs/internal/wbapi"
	"github.com/Gunvolt24/wb_tariffs/pkg/logger"
	"github.com/Gunvolt24/wb_tariffs/pkg/validate"
	"github.com/joho/godotenv"
)

// CLI-приложение для разовых операций: синхронизация, перерисовка таблиц,
// управление списком таблиц. Конфигурация — та же, что у сервера
// (окружение с префиксом TARIFFS).
func main() {
	cmd := flag.String("cmd", "", "command: sync|render|add-sheet|deactivate-sheet")
	date := flag.String("date", "", "effective date YYYY-MM-DD (sync only; empty = today UTC)")
	sheetID := flag.String("sheet-id", "", "spreadsheet id (add-sheet, deactivate-sheet)")
	sheetName := flag.String("name", "", "human-readable sheet name (add-sheet)")
	sheetDesc := flag.String("desc", "", "optional description (add-sheet)")
	flag.Parse()

	if *cmd == "" {
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fail("config: %v", err)
	}

	ctx := context.Background()

	logg, cleanup, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		fail("logger: %v", err)
	}
	defer func() { _ = cleanup() }()

	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		fail("postgres: %v", err)
	}
	defer pool.Close()

	repo := postgres.NewTariffRepository(pool)

	switch *cmd {
	case "sync":
		var sheetsSvc ports.SheetsUpdateService
		if cfg.Sheets.Enabled && cfg.Sheets.CredentialsFile != "" {
			gc, gErr := sheets.NewGoogleClient(ctx, cfg.Sheets.CredentialsFile)
			if gErr != nil {
				fail("sheets client: %v", gErr)
			}
			sheetsSvc = usecase.NewSheetsService(repo, repo, repo, gc, nil, cfg.Sheets.Tab, logg)
		}
		wbClient := wbapi.NewClient(wbapi.Config{
			BaseURL: cfg.WB.BaseURL,
			Token:   cfg.WB.Token,
			Timeout: cfg.WB.Timeout,
		}, logg)
		syncSvc := usecase.NewSyncService(wbClient, repo, repo, validate.NewSnapshotValidator(), sheetsSvc, nil, logg)

		report, err := syncSvc.SyncTariffs(ctx, *date)
		printJSON(report)
		if err != nil {
			fail("sync: %v", err)
		}

	case "render":
		if !cfg.Sheets.Enabled || cfg.Sheets.CredentialsFile == "" {
			fail("render: sheets disabled or credentials file not set")
		}
		gc, gErr := sheets.NewGoogleClient(ctx, cfg.Sheets.CredentialsFile)
		if gErr != nil {
			fail("sheets client: %v", gErr)
		}
		sheetsSvc := usecase.NewSheetsService(repo, repo, repo, gc, nil, cfg.Sheets.Tab, logg)
		if err := sheetsSvc.UpdateAllSheets(ctx); err != nil {
			fail("render: %v", err)
		}
		fmt.Fprintln(os.Stderr, "render ok")

	case "add-sheet":
		if *sheetID == "" || *sheetName == "" {
			fail("add-sheet: -sheet-id and -name are required")
		}
		id, err := repo.AddSheetConfig(ctx, *sheetID, *sheetName, *sheetDesc)
		if err != nil {
			fail("add-sheet: %v", err)
		}
		fmt.Fprintf(os.Stderr, "added sheet config id=%d\n", id)

	case "deactivate-sheet":
		if *sheetID == "" {
			fail("deactivate-sheet: -sheet-id is required")
		}
		if err := repo.DeactivateSheetConfig(ctx, *sheetID); err != nil {
			fail("deactivate-sheet: %v", err)
		}
		fmt.Fprintln(os.Stderr, "sheet config deactivated")

	default:
		fail("unknown command %q", *cmd)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
