package config

const (
	defaultOutputDir          = "~/.local/share/vidharvest/output"
	defaultLedgerDir          = "~/.local/share/vidharvest/ledger"
	defaultLogDir             = "~/.local/share/vidharvest/logs"
	defaultAcquireBinary      = "yt-dlp"
	defaultSearchTimeout      = 120
	defaultDownloadTimeout    = 900
	defaultProbeTimeout       = 30
	defaultMaxResults         = 50
	defaultRateLimitSeconds   = 3
	defaultVideoQuality       = "best[height<=360]"
	defaultSegmentThreshold   = 1800
	defaultSegmentWindow      = 600
	defaultMinDurationSeconds = 240
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

func defaultSubtitleLanguages() []string {
	return []string{"en", "zh-Hans", "zh-Hant", "zh"}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			OutputDir: defaultOutputDir,
			LedgerDir: defaultLedgerDir,
			LogDir:    defaultLogDir,
		},
		Acquire: Acquire{
			Binary:            defaultAcquireBinary,
			SearchTimeout:     defaultSearchTimeout,
			DownloadTimeout:   defaultDownloadTimeout,
			ProbeTimeout:      defaultProbeTimeout,
			MaxResults:        defaultMaxResults,
			RateLimitSeconds:  defaultRateLimitSeconds,
			VideoQuality:      defaultVideoQuality,
			SubtitleLanguages: defaultSubtitleLanguages(),
		},
		Segment: Segment{
			ThresholdSeconds: defaultSegmentThreshold,
			WindowSeconds:    defaultSegmentWindow,
		},
		Filter: Filter{
			MinDurationSeconds: defaultMinDurationSeconds,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
