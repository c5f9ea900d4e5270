package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"vidharvest/internal/config"
	"vidharvest/internal/deps"
)

// Result describes one preflight check.
type Result struct {
	Name    string
	OK      bool
	Detail  string
	Warning bool
}

// RunAll executes every check against the configuration and returns the
// results in display order.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return []Result{{Name: "Configuration", OK: false, Detail: "no configuration loaded"}}
	}

	results := []Result{
		CheckDirectoryAccess("Output directory", cfg.Paths.OutputDir),
		CheckDirectoryAccess("Ledger directory", cfg.Paths.LedgerDir),
		CheckDirectoryAccess("Log directory", cfg.Paths.LogDir),
	}

	for _, status := range deps.CheckBinaries(deps.Defaults(cfg.AcquireBinary())) {
		result := Result{
			Name:   status.Name,
			OK:     status.Available,
			Detail: status.Detail,
		}
		if status.Available {
			result.Detail = status.Command
		} else if status.Optional {
			result.OK = true
			result.Warning = true
		}
		results = append(results, result)
	}
	return results
}

// CheckDirectoryAccess verifies that path exists, is a directory, and is
// writable by the current user.
func CheckDirectoryAccess(name, path string) Result {
	result := Result{Name: name}
	if path == "" {
		result.Detail = "not configured"
		return result
	}

	info, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		result.Detail = fmt.Sprintf("%s does not exist", path)
		return result
	case err != nil:
		result.Detail = err.Error()
		return result
	case !info.IsDir():
		result.Detail = fmt.Sprintf("%s is not a directory", path)
		return result
	}

	probe := filepath.Join(path, ".preflight-probe")
	f, err := os.Create(probe)
	if err != nil {
		result.Detail = fmt.Sprintf("%s is not writable: %v", path, err)
		return result
	}
	_ = f.Close()
	_ = os.Remove(probe)

	result.OK = true
	result.Detail = path
	return result
}

// Failed reports whether any non-warning check failed.
func Failed(results []Result) bool {
	for _, result := range results {
		if !result.OK {
			return true
		}
	}
	return false
}
