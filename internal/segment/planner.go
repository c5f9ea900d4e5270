package segment

import (
	"errors"
	"fmt"
)

// ErrInvalidDuration marks plans requested for a missing or non-positive
// duration.
var ErrInvalidDuration = errors.New("segment: invalid duration")

// Window is one slice of a longer item. Start is inclusive, End exclusive.
// Index is 1-based.
type Window struct {
	Index        int
	StartSeconds int
	EndSeconds   int
	OutputName   string
}

// Plan describes how one item is split. A split plan names segments with a
// zero-padded two-digit suffix (base_01, base_02, ...); the identity plan
// keeps the bare base name.
type Plan struct {
	BaseName        string
	DurationSeconds int
	Split           bool
	Segments        []Window
}

// Compute derives the plan for an item. Threshold and window width are in
// seconds and must be positive.
func Compute(baseName string, durationSeconds, thresholdSeconds, windowSeconds int) (Plan, error) {
	if durationSeconds <= 0 {
		return Plan{}, fmt.Errorf("%w: %d seconds", ErrInvalidDuration, durationSeconds)
	}
	if thresholdSeconds <= 0 || windowSeconds <= 0 {
		return Plan{}, fmt.Errorf("%w: threshold %ds window %ds", ErrInvalidDuration, thresholdSeconds, windowSeconds)
	}

	if durationSeconds <= thresholdSeconds {
		return Plan{
			BaseName:        baseName,
			DurationSeconds: durationSeconds,
			Segments: []Window{{
				Index:        1,
				StartSeconds: 0,
				EndSeconds:   durationSeconds,
				OutputName:   baseName,
			}},
		}, nil
	}

	count := (durationSeconds + windowSeconds - 1) / windowSeconds
	segments := make([]Window, 0, count)
	for i := 0; i < count; i++ {
		start := i * windowSeconds
		end := start + windowSeconds
		if end > durationSeconds {
			end = durationSeconds
		}
		segments = append(segments, Window{
			Index:        i + 1,
			StartSeconds: start,
			EndSeconds:   end,
			OutputName:   fmt.Sprintf("%s_%02d", baseName, i+1),
		})
	}
	return Plan{
		BaseName:        baseName,
		DurationSeconds: durationSeconds,
		Split:           true,
		Segments:        segments,
	}, nil
}
