package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordRule maps a set of trigger phrases to a category value.
// Rule lists are evaluated top-down; first hit wins.
type KeywordRule struct {
	Value string   `yaml:"value"`
	Any   []string `yaml:"any"`
}

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Fetch struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
		Retries        int `yaml:"retries"`

		// Pacing between non-retry requests.
		PaceMinMs       int     `yaml:"pace_min_ms"`
		PaceMaxMs       int     `yaml:"pace_max_ms"`
		ExtraPaceChance float64 `yaml:"extra_pace_chance"`
		ExtraPaceMinMs  int     `yaml:"extra_pace_min_ms"`
		ExtraPaceMaxMs  int     `yaml:"extra_pace_max_ms"`

		// Backoff windows per blocking signal.
		RateLimitWaitMinMs int `yaml:"rate_limit_wait_min_ms"` // HTTP 429
		RateLimitWaitMaxMs int `yaml:"rate_limit_wait_max_ms"`
		BlockedWaitMinMs   int `yaml:"blocked_wait_min_ms"` // HTTP 403
		BlockedWaitMaxMs   int `yaml:"blocked_wait_max_ms"`
		RetryWaitMinMs     int `yaml:"retry_wait_min_ms"` // timeout/transport
		RetryWaitMaxMs     int `yaml:"retry_wait_max_ms"`

		HostReqPerSec float64 `yaml:"host_req_per_sec"`
		HostBurst     int     `yaml:"host_burst"`
	} `yaml:"fetch"`

	Search struct {
		Locations  []string `yaml:"locations"`
		Queries    []string `yaml:"queries"`
		MaxQueries int      `yaml:"max_queries"`
		Pages      int      `yaml:"pages"`
		Sources    []string `yaml:"sources"` // "all" expands to the default subset
		Workers    int      `yaml:"workers"`
	} `yaml:"search"`

	Taxonomy  Taxonomy  `yaml:"taxonomy"`
	Companies Companies `yaml:"companies"`
}

type Taxonomy struct {
	IncludeTitles  []string      `yaml:"include_titles"`
	ExcludeTitles  []string      `yaml:"exclude_titles"`
	Skills         []string      `yaml:"skills"`
	WorkModeRules  []KeywordRule `yaml:"work_mode_rules"`
	SeniorityRules []KeywordRule `yaml:"seniority_rules"`
}

type Companies struct {
	Top          []string `yaml:"top"`
	Mid          []string `yaml:"mid"`
	StartupHints []string `yaml:"startup_hints"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Port <= 0 {
		cfg.App.Port = 38471
	}

	f := &cfg.Fetch
	if f.TimeoutSeconds <= 0 {
		f.TimeoutSeconds = 20
	}
	if f.Retries <= 0 {
		f.Retries = 3
	}
	if f.PaceMinMs <= 0 {
		f.PaceMinMs = 1500
	}
	if f.PaceMaxMs <= 0 {
		f.PaceMaxMs = 4000
	}
	if f.ExtraPaceChance <= 0 {
		f.ExtraPaceChance = 0.1
	}
	if f.ExtraPaceMinMs <= 0 {
		f.ExtraPaceMinMs = 2000
	}
	if f.ExtraPaceMaxMs <= 0 {
		f.ExtraPaceMaxMs = 5000
	}
	if f.RateLimitWaitMinMs <= 0 {
		f.RateLimitWaitMinMs = 30000
	}
	if f.RateLimitWaitMaxMs <= 0 {
		f.RateLimitWaitMaxMs = 60000
	}
	if f.BlockedWaitMinMs <= 0 {
		f.BlockedWaitMinMs = 5000
	}
	if f.BlockedWaitMaxMs <= 0 {
		f.BlockedWaitMaxMs = 10000
	}
	if f.RetryWaitMinMs <= 0 {
		f.RetryWaitMinMs = 2000
	}
	if f.RetryWaitMaxMs <= 0 {
		f.RetryWaitMaxMs = 5000
	}
	if f.HostReqPerSec <= 0 {
		f.HostReqPerSec = 0.5
	}
	if f.HostBurst <= 0 {
		f.HostBurst = 1
	}

	s := &cfg.Search
	if len(s.Locations) == 0 {
		s.Locations = []string{"India", "Bangalore", "Mumbai", "Delhi", "Hyderabad"}
	}
	if len(s.Queries) == 0 {
		s.Queries = DefaultQueries()
	}
	if s.MaxQueries <= 0 {
		s.MaxQueries = 5
	}
	if s.Pages <= 0 {
		s.Pages = 3
	}
	if len(s.Sources) == 0 {
		s.Sources = []string{"all"}
	}
	if s.Workers <= 0 {
		s.Workers = 4
	}

	t := &cfg.Taxonomy
	if len(t.IncludeTitles) == 0 {
		t.IncludeTitles = DefaultIncludeTitles()
	}
	if len(t.ExcludeTitles) == 0 {
		t.ExcludeTitles = DefaultExcludeTitles()
	}
	if len(t.Skills) == 0 {
		t.Skills = DefaultSkills()
	}
	if len(t.WorkModeRules) == 0 {
		t.WorkModeRules = DefaultWorkModeRules()
	}
	if len(t.SeniorityRules) == 0 {
		t.SeniorityRules = DefaultSeniorityRules()
	}

	c := &cfg.Companies
	if len(c.Top) == 0 && len(c.Mid) == 0 {
		c.Top, c.Mid = DefaultCompanyTiers()
	}
	if len(c.StartupHints) == 0 {
		c.StartupHints = []string{"technologies", "tech", "software", "labs", "ai", "io"}
	}
}
