package models

import "time"

// TransactionRecord is one normalized purchase event extracted from a
// notification email. Extraction is best effort: any field except the
// issuer identity may be absent, represented as a nil pointer.
type TransactionRecord struct {
	IssuerName       string
	Sender           string
	Timestamp        *time.Time
	Amount           *float64
	MerchantLocation *string
}
