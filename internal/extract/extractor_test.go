package extract

import (
	"testing"
	"time"

	"cardmail/internal/models"
	"cardmail/internal/patterns"
)

const jcbBody = "Card usage notice\r\n" +
	"Used at 2023/11/05 13:20\r\n" +
	"Amount 1,234 yen\r\n" +
	"Merchant COFFEE SHOP TOKYO\r\n"

func testRegistry(t *testing.T) *patterns.Registry {
	t.Helper()
	reg, err := patterns.New([]models.Issuer{
		{
			Name:            "JCB",
			Address:         "notify@example-jcb.co.jp",
			DateTimePattern: `Used at (\d{4}/\d{2}/\d{2} \d{2}:\d{2})`,
			AmountPattern:   `Amount ([\d,]+) yen`,
			LocationPattern: `Merchant (.+)`,
		},
	})
	if err != nil {
		t.Fatalf("patterns.New() error: %v", err)
	}
	return reg
}

func TestRecordAllFields(t *testing.T) {
	reg := testRegistry(t)

	record := Record("JCB Notice <notify@example-jcb.co.jp>", jcbBody, reg)

	if record.Sender != "notify@example-jcb.co.jp" {
		t.Errorf("Sender = %q, want bare address", record.Sender)
	}
	if record.IssuerName != "JCB" {
		t.Errorf("IssuerName = %q, want JCB", record.IssuerName)
	}
	if record.Timestamp == nil {
		t.Fatal("Timestamp is absent, want parsed value")
	}
	want := time.Date(2023, 11, 5, 13, 20, 0, 0, time.UTC)
	if !record.Timestamp.Equal(want) {
		t.Errorf("Timestamp = %v, want %v", record.Timestamp, want)
	}
	if record.Amount == nil || *record.Amount != 1234 {
		t.Errorf("Amount = %v, want 1234", record.Amount)
	}
	if record.MerchantLocation == nil || *record.MerchantLocation != "COFFEE SHOP TOKYO" {
		t.Errorf("MerchantLocation = %v, want COFFEE SHOP TOKYO", record.MerchantLocation)
	}
}

func TestRecordAmountNormalization(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{
			name: "Thousands separator stripped",
			body: "Amount 1,234 yen",
			want: 1234,
		},
		{
			name: "No separator",
			body: "Amount 980 yen",
			want: 980,
		},
	}

	reg := testRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := Record("notify@example-jcb.co.jp", tt.body, reg)
			if record.Amount == nil {
				t.Fatal("Amount is absent, want a value")
			}
			if *record.Amount != tt.want {
				t.Errorf("Amount = %v, want %v", *record.Amount, tt.want)
			}
		})
	}
}

func TestRecordMalformedDate(t *testing.T) {
	reg, err := patterns.New([]models.Issuer{
		{
			Name:            "JCB",
			Address:         "notify@example-jcb.co.jp",
			DateTimePattern: `Used at (.+)`,
		},
	})
	if err != nil {
		t.Fatalf("patterns.New() error: %v", err)
	}

	record := Record("notify@example-jcb.co.jp", "Used at not-a-date", reg)
	if record.Timestamp != nil {
		t.Errorf("Timestamp = %v, want absent for malformed date text", record.Timestamp)
	}
	if record.IssuerName != "JCB" {
		t.Errorf("IssuerName = %q, a bad field must not discard the record", record.IssuerName)
	}
}

func TestRecordMissingField(t *testing.T) {
	reg := testRegistry(t)

	body := "Used at 2023/11/05 13:20\r\nAmount 500 yen\r\n"
	record := Record("notify@example-jcb.co.jp", body, reg)

	if record.MerchantLocation != nil {
		t.Errorf("MerchantLocation = %v, want absent", record.MerchantLocation)
	}
	if record.Timestamp == nil {
		t.Error("Timestamp is absent, want a value")
	}
	if record.Amount == nil {
		t.Error("Amount is absent, want a value")
	}
}

func TestRecordUnknownSender(t *testing.T) {
	reg := testRegistry(t)

	record := Record("Shop <news@shop.example>", jcbBody, reg)

	if record.Sender != "news@shop.example" {
		t.Errorf("Sender = %q, want the raw sender preserved", record.Sender)
	}
	if record.IssuerName != "" {
		t.Errorf("IssuerName = %q, want absent for unknown sender", record.IssuerName)
	}
	if record.Timestamp != nil || record.Amount != nil || record.MerchantLocation != nil {
		t.Error("Expected all pattern-derived fields to be absent for unknown sender")
	}
}

func TestRecordNoAddressInFrom(t *testing.T) {
	reg := testRegistry(t)

	record := Record("Just some text", jcbBody, reg)

	if record.Sender != "" {
		t.Errorf("Sender = %q, want empty when From has no address", record.Sender)
	}
	if record.IssuerName != "" {
		t.Errorf("IssuerName = %q, want empty when From has no address", record.IssuerName)
	}
}

func TestRecordTrimsLocationLineTerminators(t *testing.T) {
	reg, err := patterns.New([]models.Issuer{
		{
			Name:            "JCB",
			Address:         "notify@example-jcb.co.jp",
			LocationPattern: `Merchant ([^\n]+)`,
		},
	})
	if err != nil {
		t.Fatalf("patterns.New() error: %v", err)
	}

	record := Record("notify@example-jcb.co.jp", "Merchant COFFEE SHOP\r\nnext line", reg)
	if record.MerchantLocation == nil {
		t.Fatal("MerchantLocation is absent, want a value")
	}
	if *record.MerchantLocation != "COFFEE SHOP" {
		t.Errorf("MerchantLocation = %q, want %q", *record.MerchantLocation, "COFFEE SHOP")
	}
}
