package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/utils"
	"github.com/urfave/cli"
	"golang.org/x/exp/slog"
)

var importEntriesCommand = cli.Command{
	Name:  "import-entries",
	Usage: "enter every participant listed in a CSV file through the HTTP API",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "file, f",
			Usage: "CSV file with an address column and an optional amount column",
		},
		cli.StringFlag{
			Name:   "api",
			Value:  "http://localhost:4000/api/v1",
			Usage:  "base URL of the raffle API",
			EnvVar: "RAFFLE_API",
		},
		cli.StringFlag{
			Name:  "amount",
			Value: "0.01 ether",
			Usage: "amount sent for rows without one",
		},
		cli.BoolFlag{
			Name:  "dry-run",
			Usage: "validate the file without entering anyone",
		},
	},
	Action: importEntries,
}

func importEntries(c *cli.Context) error {
	path := c.String("file")
	if path == "" {
		return cli.NewExitError("--file is required", 2)
	}
	defaultAmount, err := utils.ParseAmount(c.String("amount"))
	if err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	rows, rowErrs, err := utils.ReadEntries(file, defaultAmount)
	if err != nil {
		return err
	}
	for _, rowErr := range rowErrs {
		slog.Warn("Skipping row", "error", rowErr)
	}
	slog.Info("Parsed entries", "valid", len(rows), "skipped", len(rowErrs))

	if c.Bool("dry-run") {
		return nil
	}

	importer := &entryImporter{
		baseURL: strings.TrimRight(c.String("api"), "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
	entered, failed := importer.run(context.Background(), rows)
	slog.Info("Import finished", "entered", entered, "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%d entries were rejected", failed)
	}
	return nil
}

type entryImporter struct {
	baseURL string
	client  *http.Client
}

// run posts rows in order and stops early once the raffle stops accepting entries
func (imp *entryImporter) run(ctx context.Context, rows []utils.EntryRow) (entered, failed int) {
	for _, row := range rows {
		err := imp.enter(ctx, row)
		if err == nil {
			entered++
			continue
		}
		failed++
		slog.Error("Entry rejected", "line", row.Line, "participant", utils.MaskAddress(row.Participant), "error", err)
		if errors.Is(err, errNotOpen) {
			failed += len(rows) - entered - failed
			break
		}
	}
	return entered, failed
}

var errNotOpen = errors.New("raffle is not open")

type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (imp *entryImporter) enter(ctx context.Context, row utils.EntryRow) error {
	body, err := json.Marshal(map[string]string{
		"participant": row.Participant.Hex(),
		"amount":      row.Amount.String(),
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, imp.baseURL+"/raffle/enter", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := imp.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusCreated {
		return nil
	}
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var apiErr apiError
	if json.Unmarshal(raw, &apiErr) != nil || apiErr.Code == "" {
		return fmt.Errorf("api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if apiErr.Code == "NOT_OPEN" {
		return fmt.Errorf("%w: %s", errNotOpen, apiErr.Error)
	}
	return fmt.Errorf("%s: %s", apiErr.Code, apiErr.Error)
}
