package ytdlp

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"
)

// Executor abstracts command execution for testability.
type Executor interface {
	Run(ctx context.Context, binary string, args []string, onStdout func(string)) error
}

// stderrTailLimit caps diagnostic text carried in errors. The interesting
// part of a failed download is always at the end of the stream.
const stderrTailLimit = 2048

type commandExecutor struct{}

func (commandExecutor) Run(ctx context.Context, binary string, args []string, onStdout func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...) //nolint:gosec
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start command: %w", err)
	}

	var wg sync.WaitGroup
	var stderrTail string

	wg.Add(2)
	go func() {
		defer wg.Done()
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			if onStdout != nil {
				onStdout(scanner.Text())
			}
		}
	}()
	go func() {
		defer wg.Done()
		data, _ := io.ReadAll(stderr)
		text := strings.TrimSpace(string(data))
		if len(text) > stderrTailLimit {
			text = text[len(text)-stderrTailLimit:]
		}
		stderrTail = text
	}()
	wg.Wait()

	if err := cmd.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s: %w", binary, ctxErr)
		}
		if stderrTail != "" {
			return fmt.Errorf("%s: %w: %s", binary, err, stderrTail)
		}
		return fmt.Errorf("%s: %w", binary, err)
	}
	return nil
}
