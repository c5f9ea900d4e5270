package testsupport

import (
	"testing"

	"vidharvest/internal/config"
	"vidharvest/internal/ledger"
)

// MustOpenLedger opens the ledger under the config's ledger directory and
// registers cleanup.
func MustOpenLedger(t testing.TB, cfg *config.Config) *ledger.Ledger {
	t.Helper()

	led, err := ledger.Open(cfg.Paths.LedgerDir)
	if err != nil {
		t.Fatalf("ledger.Open: %v", err)
	}
	t.Cleanup(func() {
		_ = led.Close()
	})
	return led
}
