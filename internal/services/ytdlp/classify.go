package ytdlp

import (
	"context"
	"errors"
	"strings"

	"vidharvest/internal/media"
	"vidharvest/internal/services"
)

// classify maps a failed tool invocation to a typed failure reason by
// inspecting the diagnostic text the tool wrote to its error channel.
func classify(operation string, item media.Candidate, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return services.Wrap(services.ErrTimeout, operation, "", item.SourceURL, err)
	}

	lowered := strings.ToLower(err.Error())
	marker := services.ErrExternalTool
	switch {
	case containsAny(lowered, "private video", "video unavailable", "is not available",
		"has been removed", "account associated", "deleted"):
		marker = services.ErrUnavailable
	case containsAny(lowered, "login required", "sign in", "cookies", "members-only",
		"age-restricted", "authentication"):
		marker = services.ErrRestricted
	case containsAny(lowered, "requested format is not available", "no video formats"):
		marker = services.ErrNoFormat
	case containsAny(lowered, "unable to download", "connection", "network",
		"timed out", "temporary failure", "name resolution", "http error 5"):
		marker = services.ErrNetwork
	}
	return services.Wrap(marker, operation, "", item.SourceURL, err)
}

func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}
