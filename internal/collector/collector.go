// Package collector orchestrates one collection run over all configured
// issuers: build query, search, fetch, decode, extract, accumulate.
package collector

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"cardmail/internal/extract"
	"cardmail/internal/gmailsrc"
	"cardmail/internal/mailbody"
	"cardmail/internal/models"
	"cardmail/internal/patterns"
)

// Collector gathers transaction records from the mail source
type Collector struct {
	source   gmailsrc.Source
	registry *patterns.Registry
	log      *logrus.Logger
}

// New creates a Collector with the provided mail source, pattern registry
// and logger
func New(source gmailsrc.Source, registry *patterns.Registry, log *logrus.Logger) *Collector {
	return &Collector{
		source:   source,
		registry: registry,
		log:      log,
	}
}

// Collect gathers transaction records for every issuer within the search
// window. Failures are absorbed where they occur: a search error empties
// that issuer's contribution, a message that cannot be fetched or decoded
// is skipped, and the run always returns the records accumulated so far.
func (c *Collector) Collect(ctx context.Context, window models.SearchWindow, issuers []models.Issuer) []models.TransactionRecord {
	runlog := c.log.WithField("run_id", uuid.New().String())

	var records []models.TransactionRecord
	for _, issuer := range issuers {
		records = append(records, c.collectIssuer(ctx, runlog, window, issuer)...)
	}
	return records
}

func (c *Collector) collectIssuer(ctx context.Context, runlog *logrus.Entry, window models.SearchWindow, issuer models.Issuer) []models.TransactionRecord {
	locallog := runlog.WithField("issuer", issuer.Name)

	query := gmailsrc.BuildQuery(window.DateFrom, window.DateTo, issuer.Address, window.Subject)

	ids, err := c.source.Search(ctx, query)
	if err != nil {
		locallog.Errorf("Search failed, skipping issuer: %v", err)
		return nil
	}
	if len(ids) == 0 {
		locallog.Info("No matching messages")
		return nil
	}

	var records []models.TransactionRecord
	for _, id := range ids {
		msglog := locallog.WithFields(logrus.Fields{
			"message_id": id,
			"trace_id":   uuid.New().String(),
		})

		msg, err := c.source.FetchDetail(ctx, id)
		if err != nil {
			msglog.Errorf("Fetch failed, skipping message: %v", err)
			continue
		}

		body, err := mailbody.Decode(&msg.Payload)
		if err != nil {
			msglog.Errorf("Skipping message: %v", err)
			continue
		}

		records = append(records, extract.Record(msg.From, body, c.registry))
	}

	locallog.Infof("Collected %d records", len(records))
	return records
}
