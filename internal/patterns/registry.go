// Package patterns maps issuer sender addresses to the compiled extraction
// rules for that issuer's notification format. Each issuer's template has a
// different layout, so every field pattern is issuer-specific; resolution
// happens once per message via a single address lookup.
package patterns

import (
	"fmt"
	"regexp"

	"cardmail/internal/models"
)

// PatternSet holds one issuer's compiled field patterns. A nil pattern
// means the issuer's notifications do not carry that field.
type PatternSet struct {
	IssuerName string
	Address    string
	DateTime   *regexp.Regexp
	Amount     *regexp.Regexp
	Location   *regexp.Regexp
}

// Registry resolves a sender address to the issuer's pattern set
type Registry struct {
	byAddress map[string]*PatternSet
}

// New compiles every issuer's patterns. An invalid pattern, a pattern
// without a capture group, or a sender address registered twice is a
// configuration error and aborts construction.
func New(issuers []models.Issuer) (*Registry, error) {
	byAddress := make(map[string]*PatternSet, len(issuers))
	for _, issuer := range issuers {
		set := &PatternSet{IssuerName: issuer.Name, Address: issuer.Address}

		var err error
		if set.DateTime, err = compileField(issuer.Name, "dateTimePattern", issuer.DateTimePattern); err != nil {
			return nil, err
		}
		if set.Amount, err = compileField(issuer.Name, "amountPattern", issuer.AmountPattern); err != nil {
			return nil, err
		}
		if set.Location, err = compileField(issuer.Name, "locationPattern", issuer.LocationPattern); err != nil {
			return nil, err
		}

		if other, exists := byAddress[issuer.Address]; exists {
			return nil, fmt.Errorf("issuer %s: sender address %s already registered for %s",
				issuer.Name, issuer.Address, other.IssuerName)
		}
		byAddress[issuer.Address] = set
	}
	return &Registry{byAddress: byAddress}, nil
}

// compileField compiles one optional pattern slot. An empty slot is valid;
// a present one must compile and capture the field value in a group.
func compileField(issuer, slot, expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("issuer %s: invalid %s: %w", issuer, slot, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("issuer %s: %s has no capture group", issuer, slot)
	}
	return re, nil
}

// Lookup returns the pattern set registered for the given sender address.
// The address must be a bare email address, not a raw From header. A miss
// means the sender is not a known issuer; the caller skips extraction for
// that message rather than failing.
func (r *Registry) Lookup(senderAddress string) (*PatternSet, bool) {
	set, ok := r.byAddress[senderAddress]
	return set, ok
}
