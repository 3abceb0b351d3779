package coverage

// Defaults for the engine configuration
const (
	DefaultClearCloudThreshold = 0.30
	DefaultGapThresholdDays    = 10
	DefaultGapDecayDays        = 20
	DefaultPeriodDays          = 365
)

// Config carries every threshold the engine needs. It is passed explicitly
// into each computation call so that computations stay pure and
// independently testable; there is no package-level state.
type Config struct {
	// ClearCloudThreshold is the cloud-cover fraction below which a scene
	// counts as clear
	ClearCloudThreshold float64 `yaml:"clear_cloud_threshold"`
	// GapThresholdDays is the gap length in days above which (strictly) a
	// gap counts as a problematic data void
	GapThresholdDays int `yaml:"gap_threshold_days"`
	// GapDecayDays is the exponential decay parameter tau of the weighted
	// gap score
	GapDecayDays float64 `yaml:"gap_decay_days"`
	// PeriodDays normalizes the weighted gap score across sites. It is a
	// fixed analysis-period length, never derived from the scene dates.
	PeriodDays float64 `yaml:"period_days"`
	// IndexSites optionally restricts which sites receive index
	// computation; empty means every site
	IndexSites []string `yaml:"index_sites"`
	// MaxWorkers bounds concurrent site computations; values below 2 mean
	// sequential processing
	MaxWorkers int `yaml:"max_workers"`
}

// DefaultConfig returns the engine defaults
func DefaultConfig() Config {
	return Config{
		ClearCloudThreshold: DefaultClearCloudThreshold,
		GapThresholdDays:    DefaultGapThresholdDays,
		GapDecayDays:        DefaultGapDecayDays,
		PeriodDays:          DefaultPeriodDays,
	}
}

// normalized fills zero-valued thresholds with their defaults, so that a
// partially-specified config (e.g. parsed from YAML) behaves sanely
func (c Config) normalized() Config {
	if c.ClearCloudThreshold <= 0 {
		c.ClearCloudThreshold = DefaultClearCloudThreshold
	}
	if c.GapThresholdDays <= 0 {
		c.GapThresholdDays = DefaultGapThresholdDays
	}
	if c.GapDecayDays <= 0 {
		c.GapDecayDays = DefaultGapDecayDays
	}
	if c.PeriodDays <= 0 {
		c.PeriodDays = DefaultPeriodDays
	}
	return c
}

// indexEnabled reports whether the given site should receive index
// computation under this config
func (c Config) indexEnabled(siteID string) bool {
	if len(c.IndexSites) == 0 {
		return true
	}
	for _, id := range c.IndexSites {
		if id == siteID {
			return true
		}
	}
	return false
}
