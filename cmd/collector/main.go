package main

import (
	"context"
	"encoding/csv"
	"flag"
	"os"
	"strconv"
	"time"

	"cardmail/internal/collector"
	"cardmail/internal/config"
	"cardmail/internal/gmailsrc"
	"cardmail/internal/logging"
	"cardmail/internal/models"
	"cardmail/internal/patterns"
	"cardmail/internal/store"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the configuration file")
	csvPath := flag.String("csv", "", "optional path for a CSV export of the collected records")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Log.Fatalf("Error reading configuration file: %v", err)
	}

	registry, err := patterns.New(cfg.Issuers)
	if err != nil {
		logging.Log.Fatalf("Error building pattern registry: %v", err)
	}

	ctx := context.Background()

	client, err := gmailsrc.NewClient(ctx, cfg.Gmail.Credentials, cfg.Gmail.Token)
	if err != nil {
		logging.Log.Fatalf("Error connecting to Gmail: %v", err)
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		logging.Log.Fatalf("Error opening database: %v", err)
	}
	defer func() { _ = db.Close() }()

	logging.Log.Infof("Collecting transaction notifications for %d issuers", len(cfg.Issuers))

	records := collector.New(client, registry, logging.Log).Collect(ctx, cfg.Search, cfg.Issuers)

	if err := db.Reset(cfg.Database.Table); err != nil {
		logging.Log.Fatalf("Error resetting table: %v", err)
	}
	if err := db.InsertRecords(cfg.Database.Table, records); err != nil {
		logging.Log.Fatalf("Error storing records: %v", err)
	}

	count, err := db.Count(cfg.Database.Table)
	if err != nil {
		logging.Log.Fatalf("Error counting records: %v", err)
	}
	logging.Log.Infof("Stored %d records in table %s", count, cfg.Database.Table)

	if *csvPath != "" {
		if err := writeCSV(*csvPath, records); err != nil {
			logging.Log.Errorf("Error writing CSV export: %v", err)
			return
		}
		logging.Log.Infof("Exported %d records to %s", len(records), *csvPath)
	}
}

// writeCSV exports the records with the same columns the history table uses
func writeCSV(path string, records []models.TransactionRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"usage_location", "price", "credit_name", "dt"}); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{"", "", r.IssuerName, ""}
		if r.MerchantLocation != nil {
			row[0] = *r.MerchantLocation
		}
		if r.Amount != nil {
			row[1] = strconv.FormatFloat(*r.Amount, 'f', -1, 64)
		}
		if r.Timestamp != nil {
			row[3] = r.Timestamp.Format(time.RFC3339)
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
