package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrExternalTool marks failures of the acquisition subprocess itself.
	ErrExternalTool = errors.New("external tool error")
	// ErrTimeout marks operations cut off by their deadline.
	ErrTimeout = errors.New("timeout")
	// ErrNetwork marks connectivity failures reported by the tool.
	ErrNetwork = errors.New("network failure")
	// ErrUnavailable marks media that is private, removed, or geo-blocked.
	ErrUnavailable = errors.New("media unavailable")
	// ErrRestricted marks media requiring authentication.
	ErrRestricted = errors.New("authentication required")
	// ErrNoFormat marks requests whose format selector matched nothing.
	ErrNoFormat = errors.New("no matching format")
)

// Wrap builds an error message that includes stage context while tagging it
// with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrExternalTool
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Reason returns a short stable label for a classified error, used in ledger
// rows and log fields.
func Reason(err error) string {
	switch {
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrNetwork):
		return "network"
	case errors.Is(err, ErrUnavailable):
		return "unavailable"
	case errors.Is(err, ErrRestricted):
		return "restricted"
	case errors.Is(err, ErrNoFormat):
		return "no-format"
	case err != nil:
		return "error"
	default:
		return ""
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
