package testutil

import (
	"database/sql"
	"math/rand"
	"testing"
	"time"

	"github.com/fernet/fernet-go"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/repository"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/service"
)

// TestServices bundles every service wired against one test database.
type TestServices struct {
	Bond      *service.BondService
	Interest  *service.InterestService
	Yield     *service.YieldService
	Portfolio *service.PortfolioService
	System    *service.SystemService
}

// NewTestServices wires the full service graph with plain-text notes.
func NewTestServices(t *testing.T, db *sql.DB) TestServices {
	t.Helper()

	bondService := NewTestBondService(t, db)
	return TestServices{
		Bond:      bondService,
		Interest:  service.NewInterestService(bondService),
		Yield:     service.NewYieldService(bondService),
		Portfolio: service.NewPortfolioService(bondService),
		System:    NewTestSystemService(t, db),
	}
}

func NewTestBondService(t *testing.T, db *sql.DB) *service.BondService {
	t.Helper()

	return service.NewBondService(repository.NewBondRepository(db, nil))
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db, false, false)
}

// NewTestNotesCipher returns a cipher with a freshly generated key.
func NewTestNotesCipher(t *testing.T) *repository.NotesCipher {
	t.Helper()

	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate notes key: %v", err)
	}
	cipher, err := repository.NewNotesCipher(key.Encode())
	if err != nil {
		t.Fatalf("Failed to create notes cipher: %v", err)
	}
	return cipher
}

// Date parses a YYYY-MM-DD date or fails the test.
//
// Example usage:
//
//	maturity := testutil.Date(t, "2029-06-15")
func Date(t *testing.T, s string) time.Time {
	t.Helper()

	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("Invalid test date %q: %v", s, err)
	}
	return d
}

// MakeISIN generates a well-formed ISIN for testing.
//
// Example usage:
//
//	isin := testutil.MakeISIN("US")
//	// Returns: "US1A2B3C4D57"
func MakeISIN(prefix string) string {
	if prefix == "" {
		prefix = "US"
	}
	return prefix + randomAlphanumeric(9) + "7"
}

// MakeIssuerName generates a unique issuer name for testing.
//
// Example usage:
//
//	name := testutil.MakeIssuerName("Acme Corp")
//	// Returns: "Acme Corp XYZ789"
func MakeIssuerName(base string) string {
	if base == "" {
		base = "Issuer"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
