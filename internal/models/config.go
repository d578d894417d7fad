package models

// Config represents the application configuration
type Config struct {
	Gmail    GmailConfig    `yaml:"gmail"`
	Search   SearchWindow   `yaml:"search"`
	Database DatabaseConfig `yaml:"database"`
	Issuers  []Issuer       `yaml:"issuers"`
}

// GmailConfig holds the OAuth material for the mail source
type GmailConfig struct {
	Credentials string `yaml:"credentials"`
	Token       string `yaml:"token"`
}

// SearchWindow bounds one collection run. Dates use the mail search
// grammar's own textual form and are passed through unvalidated.
type SearchWindow struct {
	DateFrom string `yaml:"dateFrom"`
	DateTo   string `yaml:"dateTo"`
	Subject  string `yaml:"subject"`
}

// DatabaseConfig locates the SQLite history database
type DatabaseConfig struct {
	Path  string `yaml:"path"`
	Table string `yaml:"table"`
}

// Issuer describes one card issuer's notification format: the sender
// address its notifications arrive from, plus the extraction pattern for
// each field. An empty pattern slot means the issuer's emails do not carry
// that field.
type Issuer struct {
	Name            string `yaml:"name"`
	Address         string `yaml:"address"`
	DateTimePattern string `yaml:"dateTimePattern"`
	AmountPattern   string `yaml:"amountPattern"`
	LocationPattern string `yaml:"locationPattern"`
}
