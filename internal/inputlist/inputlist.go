// Package inputlist reads ordered candidate URLs from spreadsheet, CSV, or
// plain-text files so explicit download lists can drive the pipeline.
package inputlist

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"vidharvest/internal/media"
)

// Item is one row of an input list.
type Item struct {
	Number int
	Title  string
	URL    string
}

// Read loads items from path, dispatching on the file extension. Playlist
// links and rows without a URL are skipped; input order is preserved.
func Read(path string) ([]Item, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return readXLSX(path)
	case ".csv":
		return readCSV(path)
	default:
		return readText(path)
	}
}

func readXLSX(path string) ([]Item, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer book.Close()

	sheet := book.GetSheetName(0)
	rows, err := book.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	var items []Item
	for i, row := range rows {
		if i == 0 {
			// Header row.
			continue
		}
		item, ok := itemFromRow(row, len(items)+1)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func readCSV(path string) ([]Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	var items []Item
	first := true
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if first {
			first = false
			continue
		}
		item, ok := itemFromRow(row, len(items)+1)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func readText(path string) ([]Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	var items []Item
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if media.IsPlaylist(line) {
			continue
		}
		items = append(items, Item{Number: len(items) + 1, URL: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	return items, nil
}

// itemFromRow interprets a tabular row: the first cell may hold a number,
// the second a title, and the URL is the first cell that looks like a link.
func itemFromRow(row []string, fallbackNumber int) (Item, bool) {
	item := Item{Number: fallbackNumber}
	urlIdx := -1
	for i, cell := range row {
		cell = strings.TrimSpace(cell)
		if strings.HasPrefix(cell, "http://") || strings.HasPrefix(cell, "https://") {
			urlIdx = i
			item.URL = cell
			break
		}
	}
	if urlIdx == -1 || media.IsPlaylist(item.URL) {
		return Item{}, false
	}
	if len(row) > 0 {
		if n, err := strconv.Atoi(strings.TrimSpace(row[0])); err == nil && n > 0 {
			item.Number = n
		}
	}
	for i, cell := range row {
		if i == urlIdx {
			continue
		}
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, err := strconv.Atoi(cell); err == nil {
			continue
		}
		item.Title = cell
		break
	}
	return item, true
}

var (
	minsPattern = regexp.MustCompile(`(?i)(\d+)\s*mins?`)
	timePattern = regexp.MustCompile(`(\d+):(\d{1,2})`)
)

// ParseDuration interprets loose human duration notations ("84mins",
// "20:35") as seconds. Unrecognized input yields zero.
func ParseDuration(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}
	if n, err := strconv.Atoi(value); err == nil && n >= 0 {
		return n
	}
	if match := minsPattern.FindStringSubmatch(value); match != nil {
		mins, _ := strconv.Atoi(match[1])
		return mins * 60
	}
	if match := timePattern.FindStringSubmatch(value); match != nil {
		mins, _ := strconv.Atoi(match[1])
		secs, _ := strconv.Atoi(match[2])
		return mins*60 + secs
	}
	return 0
}
