package config

// Config holds runtime settings for the quiz CLI.
//
// Fields:
//   - DatabaseDriver / DatabaseDSN: key-value store backend.
//   - ContentPath: local quiz file used instead of the built-in set.
//   - ContentS3Bucket / ContentS3Key: quiz file fetched from object storage.
//   - S3Region / S3BaseEndpoint / S3AccessKey / S3SecretKey: object storage
//     settings.
//   - LogLevel / LogFormat: diagnostic logging.
type Config struct {
	DatabaseDriver  string
	DatabaseDSN     string
	ContentPath     string
	ContentS3Bucket string
	ContentS3Key    string
	S3Region        string
	S3BaseEndpoint  string
	S3AccessKey     string
	S3SecretKey     string
	LogLevel        string
	LogFormat       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "quiz.db"
	c.S3Region = "us-east-1"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
