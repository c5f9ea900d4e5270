package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vidharvest/internal/textenc"
)

// ExtractFile reads a subtitle file under the encoding fallback cascade and
// returns its normalized text lines.
func ExtractFile(path string) ([]string, textenc.Encoding, error) {
	content, enc, err := textenc.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	return Normalize(content), enc, nil
}

// ConvertFile writes the normalized text of a subtitle file to a .txt file
// beside it and returns the output path.
func ConvertFile(path string) (string, error) {
	lines, _, err := ExtractFile(path)
	if err != nil {
		return "", err
	}
	outPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".txt"
	content := strings.Join(lines, "\n")
	if len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}

// ConvertDir converts every .vtt file directly inside dir and returns the
// number converted.
func ConvertDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read directory %s: %w", dir, err)
	}
	converted := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".vtt") {
			continue
		}
		if _, err := ConvertFile(filepath.Join(dir, entry.Name())); err != nil {
			return converted, err
		}
		converted++
	}
	return converted, nil
}
