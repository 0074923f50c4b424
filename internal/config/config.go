package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
	DryRun   bool   `mapstructure:"dry_run"`
}

// RedisConfig holds redis connection settings (duplicate-suppression keys).
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DatabaseConfig describes the persistent store connection.
type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

// LLMConfig configures the chat-completion collaborator. An empty APIKey
// forces fallback behavior everywhere it is checked.
type LLMConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// ImageConfig configures the prompt-to-image collaborator.
type ImageConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Timeout string `mapstructure:"timeout"` // duration string, e.g. "30s"
}

// FeedConfig describes one candidate source.
type FeedConfig struct {
	URL      string `mapstructure:"url"`
	Source   string `mapstructure:"source"`
	Category string `mapstructure:"category"`
}

// IngestConfig controls candidate collection and filtering.
type IngestConfig struct {
	Feeds              []FeedConfig `mapstructure:"feeds"`
	PerSource          int          `mapstructure:"per_source"`          // entries taken per feed
	FetchTimeout       string       `mapstructure:"fetch_timeout"`       // duration string
	PriorityCategories []string     `mapstructure:"priority_categories"` // kept regardless of title keywords
	Keywords           []string     `mapstructure:"keywords"`            // title inclusion filter
}

// TargetConfig is one output language or platform within a pipeline.
type TargetConfig struct {
	Tag            string `mapstructure:"tag"`      // e.g. "nl", "en", "linkedin"
	Language       string `mapstructure:"language"` // e.g. "Dutch (Nederlands)"
	MaxLength      int    `mapstructure:"max_length"`
	Style          string `mapstructure:"style"`
	PreferredHours []int  `mapstructure:"preferred_hours"` // UTC hours for publish-time selection
}

// PipelineConfig defines one content pipeline.
type PipelineConfig struct {
	Name             string         `mapstructure:"name"`
	Kind             string         `mapstructure:"kind"` // "article" or "post"
	Targets          []TargetConfig `mapstructure:"targets"`
	TopCandidates    int            `mapstructure:"top_candidates"`    // candidates taken after ranking
	ApproveThreshold float64        `mapstructure:"approve_threshold"` // minimum critic score to persist
	Interval         string         `mapstructure:"interval"`          // serve-mode run interval
}

// Config is the top-level configuration structure.
type Config struct {
	App       AppConfig        `mapstructure:"app"`
	Redis     RedisConfig      `mapstructure:"redis"`
	Database  DatabaseConfig   `mapstructure:"database"`
	LLM       LLMConfig        `mapstructure:"llm"`
	Image     ImageConfig      `mapstructure:"image"`
	Ingest    IngestConfig     `mapstructure:"ingest"`
	Pipelines []PipelineConfig `mapstructure:"pipelines"`
}

// FillDefaults applies default values if not provided. The default feed set
// and the two default pipelines mirror the production deployment.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.Image.BaseURL == "" {
		c.Image.BaseURL = "https://image.pollinations.ai/prompt"
	}
	if c.Image.Width == 0 {
		c.Image.Width = 1200
	}
	if c.Image.Height == 0 {
		c.Image.Height = 675
	}
	if c.Image.Timeout == "" {
		c.Image.Timeout = "30s"
	}
	if c.Ingest.PerSource == 0 {
		c.Ingest.PerSource = 5
	}
	if c.Ingest.FetchTimeout == "" {
		c.Ingest.FetchTimeout = "15s"
	}
	if len(c.Ingest.Feeds) == 0 {
		c.Ingest.Feeds = defaultFeeds()
	}
	if len(c.Ingest.PriorityCategories) == 0 {
		c.Ingest.PriorityCategories = []string{"AI"}
	}
	if len(c.Ingest.Keywords) == 0 {
		c.Ingest.Keywords = defaultKeywords()
	}
	if len(c.Pipelines) == 0 {
		c.Pipelines = defaultPipelines()
	}
	for i := range c.Pipelines {
		p := &c.Pipelines[i]
		if p.Kind == "" {
			p.Kind = "post"
		}
		if p.TopCandidates == 0 {
			p.TopCandidates = 1
		}
		if p.ApproveThreshold == 0 {
			if p.Kind == "article" {
				p.ApproveThreshold = 0.5
			} else {
				p.ApproveThreshold = 0.6
			}
		}
		if p.Interval == "" {
			if p.Kind == "article" {
				p.Interval = "24h"
			} else {
				p.Interval = "12h"
			}
		}
		for j := range p.Targets {
			t := &p.Targets[j]
			if t.Language == "" {
				t.Language = "English"
			}
			if t.MaxLength == 0 {
				if p.Kind == "article" {
					t.MaxLength = 12000
				} else {
					t.MaxLength = 2000
				}
			}
			if len(t.PreferredHours) == 0 {
				t.PreferredHours = []int{10}
			}
		}
	}
}

func defaultFeeds() []FeedConfig {
	return []FeedConfig{
		{URL: "https://hnrss.org/frontpage", Source: "hackernews", Category: "tech"},
		{URL: "https://feeds.feedburner.com/TechCrunch/", Source: "techcrunch", Category: "tech"},
		{URL: "https://www.reddit.com/r/artificial/.rss", Source: "reddit_ai", Category: "AI"},
		{URL: "https://www.reddit.com/r/MachineLearning/.rss", Source: "reddit_ml", Category: "AI"},
		{URL: "https://www.theverge.com/rss/ai-artificial-intelligence/index.xml", Source: "theverge", Category: "AI"},
		{URL: "https://feeds.arstechnica.com/arstechnica/features", Source: "arstechnica", Category: "tech"},
	}
}

func defaultKeywords() []string {
	return []string{
		"ai", "artificial intelligence", "machine learning", "chatgpt", "llm",
		"agent", "automation", "neural", "openai", "anthropic", "gemini",
		"deep learning", "gpt", "claude", "robot", "generative",
	}
}

func defaultPipelines() []PipelineConfig {
	return []PipelineConfig{
		{
			Name: "blog",
			Kind: "article",
			Targets: []TargetConfig{
				{Tag: "nl", Language: "Dutch (Nederlands)", PreferredHours: []int{8, 10, 12}},
				{Tag: "en", Language: "English", PreferredHours: []int{8, 10, 12}},
			},
			TopCandidates:    1,
			ApproveThreshold: 0.5,
			Interval:         "24h",
		},
		{
			Name: "social",
			Kind: "post",
			Targets: []TargetConfig{
				{Tag: "linkedin", MaxLength: 3000, Style: "professional, insightful", PreferredHours: []int{8, 10, 12}},
				{Tag: "twitter", MaxLength: 280, Style: "concise, engaging, with hook", PreferredHours: []int{9, 12, 17}},
				{Tag: "instagram", MaxLength: 2200, Style: "casual, visual-focused, emoji-friendly", PreferredHours: []int{11, 14, 19}},
			},
			TopCandidates:    1,
			ApproveThreshold: 0.6,
			Interval:         "12h",
		},
	}
}
