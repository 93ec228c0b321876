package stream

// Config holds stream settings for environment-based configuration using
// popular env parsing libraries (see core/config).
type Config struct {
	// MaxHistorySize bounds the retained event history; the oldest event
	// is evicted first once the bound is exceeded.
	MaxHistorySize int `env:"CACHE_STREAM_MAX_HISTORY" envDefault:"100"`
}

// DefaultConfig returns sensible defaults for production use.
func DefaultConfig() Config {
	return Config{
		MaxHistorySize: 100,
	}
}
