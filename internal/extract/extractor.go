// Package extract turns decoded notification bodies into transaction
// records using the issuer's pattern set.
package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"cardmail/internal/models"
	"cardmail/internal/patterns"
)

// Notification bodies carry the purchase time in this fixed textual form
const dateTimeLayout = "2006/01/02 15:04"

// Matches the bare address inside a From header, which may contain a
// display name around it
var addressRegexp = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)

// Record builds a TransactionRecord from a raw From header value and a
// decoded body. Extraction is best effort per field: an unrecognized
// sender, an absent pattern slot, or a pattern that does not match leaves
// the corresponding fields absent instead of failing the record.
func Record(rawFrom, bodyText string, reg *patterns.Registry) models.TransactionRecord {
	var record models.TransactionRecord

	sender := addressRegexp.FindString(rawFrom)
	if sender == "" {
		return record
	}
	record.Sender = sender

	set, ok := reg.Lookup(sender)
	if !ok {
		return record
	}
	record.IssuerName = set.IssuerName

	if raw, ok := firstGroup(set.DateTime, bodyText); ok {
		if ts, err := time.Parse(dateTimeLayout, raw); err == nil {
			record.Timestamp = &ts
		}
	}
	if raw, ok := firstGroup(set.Amount, bodyText); ok {
		if amount, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64); err == nil {
			record.Amount = &amount
		}
	}
	if raw, ok := firstGroup(set.Location, bodyText); ok {
		location := strings.TrimRight(raw, "\r\n")
		record.MerchantLocation = &location
	}

	return record
}

// firstGroup returns the first capture of the pattern's first match in
// text, or false when the slot is absent or the pattern does not match.
func firstGroup(re *regexp.Regexp, text string) (string, bool) {
	if re == nil {
		return "", false
	}
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return "", false
	}
	return m[1], true
}
