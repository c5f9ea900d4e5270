package subtitle

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const timingMarker = "-->"

var (
	// inlineMarkupPattern matches styling and voice tags (<c>, <i>, <v Name>)
	// as well as inline karaoke timestamps (<00:00:01.000>).
	inlineMarkupPattern = regexp.MustCompile(`<[^>]*>`)

	numericLinePattern = regexp.MustCompile(`^\d+$`)

	timestampPattern = regexp.MustCompile(`(\d+):(\d{2})(?::(\d{2}))?\.(\d{3})`)
)

// Cue is one timed subtitle block: a time range plus its text lines.
type Cue struct {
	StartTime time.Duration
	EndTime   time.Duration
	Lines     []string
}

// Document is the parsed representation of a timed-text file.
type Document struct {
	Cues []Cue
}

// Lines flattens the document into its text lines in cue order. Blank lines
// never appear; duplicated lines are preserved each time they occur.
func (d Document) Lines() []string {
	var out []string
	for _, cue := range d.Cues {
		out = append(out, cue.Lines...)
	}
	return out
}

// Normalize extracts the readable text lines from decoded subtitle content.
// Rules are applied per physical line in order: drop the WEBVTT header, drop
// purely numeric cue identifiers, drop timing lines, drop blank lines, and
// strip inline markup from whatever remains. Output order matches input
// order with no deduplication.
func Normalize(content string) []string {
	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "WEBVTT") {
			continue
		}
		if numericLinePattern.MatchString(line) {
			continue
		}
		if strings.Contains(line, timingMarker) {
			continue
		}
		line = strings.TrimSpace(inlineMarkupPattern.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Parse builds the structured cue view of decoded subtitle content. Content
// without any cues yields an empty document, not an error.
func Parse(content string) (Document, error) {
	var doc Document
	var current *Cue

	for _, raw := range strings.Split(content, "\n") {
		line := strings.TrimSpace(strings.TrimSuffix(raw, "\r"))
		switch {
		case line == "":
			if current != nil && len(current.Lines) > 0 {
				doc.Cues = append(doc.Cues, *current)
			}
			current = nil
		case strings.HasPrefix(line, "WEBVTT"):
			continue
		case strings.Contains(line, timingMarker):
			start, end, err := parseTimingLine(line)
			if err != nil {
				return Document{}, err
			}
			current = &Cue{StartTime: start, EndTime: end}
		case current == nil:
			// Identifier line (or stray metadata) ahead of a timing line.
			continue
		default:
			text := strings.TrimSpace(inlineMarkupPattern.ReplaceAllString(line, ""))
			if text != "" {
				current.Lines = append(current.Lines, text)
			}
		}
	}
	if current != nil && len(current.Lines) > 0 {
		doc.Cues = append(doc.Cues, *current)
	}
	return doc, nil
}

func parseTimingLine(line string) (time.Duration, time.Duration, error) {
	parts := strings.SplitN(line, timingMarker, 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed timing line %q", line)
	}
	start, err := parseTimestamp(parts[0])
	if err != nil {
		return 0, 0, err
	}
	end, err := parseTimestamp(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

func parseTimestamp(value string) (time.Duration, error) {
	match := timestampPattern.FindStringSubmatch(value)
	if match == nil {
		return 0, fmt.Errorf("malformed timestamp %q", strings.TrimSpace(value))
	}
	first, _ := strconv.Atoi(match[1])
	second, _ := strconv.Atoi(match[2])
	millis, _ := strconv.Atoi(match[4])

	var hours, minutes, seconds int
	if match[3] != "" {
		third, _ := strconv.Atoi(match[3])
		hours, minutes, seconds = first, second, third
	} else {
		minutes, seconds = first, second
	}
	return time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		time.Duration(millis)*time.Millisecond, nil
}
