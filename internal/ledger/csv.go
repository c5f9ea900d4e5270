package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
)

// csvHeader is the fixed column order of the row-oriented ledger file.
var csvHeader = []string{"title", "url", "duration", "uploader", "status", "downloaded_at"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

const csvTimeFormat = "2006-01-02 15:04:05"

// CSVWriter appends ledger rows to a UTF-8 (BOM-prefixed) CSV file. Every
// append is flushed and synced before returning so an interrupted process
// never leaves a syntactically torn row.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
}

// OpenCSV opens (or creates) the row file at path. A new or empty file gets
// the byte-order mark and header row first.
func OpenCSV(path string) (*CSVWriter, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrWrite, path, err)
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%w: stat %s: %w", ErrWrite, path, err)
	}

	w := &CSVWriter{file: file, writer: csv.NewWriter(file)}
	if info.Size() == 0 {
		if _, err := file.Write(utf8BOM); err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("%w: write BOM: %w", ErrWrite, err)
		}
		if err := w.writeRow(csvHeader); err != nil {
			_ = file.Close()
			return nil, err
		}
	}
	return w, nil
}

// Append writes one entry as a row, durably.
func (w *CSVWriter) Append(entry Entry) error {
	return w.writeRow([]string{
		entry.Title,
		entry.URL,
		FormatDuration(entry.DurationSeconds),
		entry.Uploader,
		string(entry.Status),
		entry.DownloadedAt.Format(csvTimeFormat),
	})
}

func (w *CSVWriter) writeRow(row []string) error {
	if err := w.writer.Write(row); err != nil {
		return fmt.Errorf("%w: write row: %w", ErrWrite, err)
	}
	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return fmt.Errorf("%w: flush row: %w", ErrWrite, err)
	}
	if err := w.file.Sync(); err != nil {
		return fmt.Errorf("%w: sync: %w", ErrWrite, err)
	}
	return nil
}

// Close releases the file handle.
func (w *CSVWriter) Close() error {
	if w == nil || w.file == nil {
		return nil
	}
	w.writer.Flush()
	err := w.file.Close()
	w.file = nil
	return err
}
