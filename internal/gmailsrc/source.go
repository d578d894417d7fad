// Package gmailsrc provides the mail retrieval side of the pipeline: the
// search query builder, the narrow Source interface the collector consumes,
// and the Gmail API client behind it.
package gmailsrc

import (
	"context"

	"cardmail/internal/models"
)

// Source is the retrieval interface the collector depends on.
type Source interface {
	// Search returns the IDs of messages matching the query, bounded to a
	// single page of results.
	Search(ctx context.Context, query string) ([]string, error)
	// FetchDetail retrieves one message's headers and raw body payload.
	FetchDetail(ctx context.Context, id string) (*models.RawMessage, error)
}
