package ledger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"vidharvest/internal/fileutil"
	"vidharvest/internal/media"
)

const (
	csvFileName  = "ledger.csv"
	xlsxFileName = "ledger.xlsx"
)

// Ledger bundles the three persistence surfaces behind one append-only API.
type Ledger struct {
	store    *Store
	csv      *CSVWriter
	xlsxPath string
}

// XLSXPath returns the location of the spreadsheet mirror.
func (l *Ledger) XLSXPath() string {
	return l.xlsxPath
}

// Open prepares the ledger inside dir, creating files as needed. Existing
// entries are preserved; re-opening an established ledger resumes appending.
func Open(dir string) (*Ledger, error) {
	store, err := OpenStore(dir)
	if err != nil {
		return nil, err
	}
	csvWriter, err := OpenCSV(filepath.Join(dir, csvFileName))
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	return &Ledger{
		store:    store,
		csv:      csvWriter,
		xlsxPath: filepath.Join(dir, xlsxFileName),
	}, nil
}

// Append durably records one entry in the index and the CSV row file.
func (l *Ledger) Append(ctx context.Context, entry Entry) error {
	if err := l.store.Append(ctx, entry); err != nil {
		return err
	}
	return l.csv.Append(entry)
}

// HasSucceeded reports whether the identity already has a successful or
// skipped entry from a prior run.
func (l *Ledger) HasSucceeded(ctx context.Context, platform media.Platform, videoID string) (bool, error) {
	return l.store.HasSucceeded(ctx, platform, videoID)
}

// Has reports whether the identity has any entry at all.
func (l *Ledger) Has(ctx context.Context, platform media.Platform, videoID string) (bool, error) {
	return l.store.Has(ctx, platform, videoID)
}

// List returns every entry in append order.
func (l *Ledger) List(ctx context.Context) ([]Entry, error) {
	return l.store.List(ctx)
}

// Finalize rebuilds the spreadsheet mirror from the full accumulated record.
// The workbook is written to a staging file and verified into place, so a
// crash mid-rebuild never leaves a truncated mirror.
func (l *Ledger) Finalize(ctx context.Context) error {
	entries, err := l.store.List(ctx)
	if err != nil {
		return err
	}
	staging := l.xlsxPath + ".tmp.xlsx"
	if err := WriteXLSX(staging, entries); err != nil {
		return err
	}
	defer func() {
		_ = os.Remove(staging)
	}()
	if err := fileutil.CopyFileVerified(staging, l.xlsxPath); err != nil {
		return fmt.Errorf("%w: install spreadsheet mirror: %w", ErrWrite, err)
	}
	return nil
}

// Close releases both file-backed surfaces.
func (l *Ledger) Close() error {
	csvErr := l.csv.Close()
	storeErr := l.store.Close()
	if csvErr != nil {
		return csvErr
	}
	return storeErr
}
