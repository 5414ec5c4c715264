package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Ledger
	StartingBalanceCents int64
	SeedDemoData         bool

	// Advice (Gemini)
	GeminiAPIKey        string
	GeminiModel         string
	AdviceTimeout       time.Duration
	AdviceFallbackDelay time.Duration

	// AMQP (optional; empty URL disables event publishing)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Voice capture simulation
	VoiceListenDelay  time.Duration
	VoiceProcessDelay time.Duration
	VoiceSessionTTL   time.Duration

	// Caching
	CacheCleanupInterval time.Duration
}

func Load() *Config {
	cfg := &Config{
		Port: getEnv("PORT", "8080"),

		StartingBalanceCents: getEnvInt64("STARTING_BALANCE_CENTS", 1245000),
		SeedDemoData:         getEnvBool("SEED_DEMO_DATA", true),

		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
		AdviceTimeout:       getEnvDuration("ADVICE_TIMEOUT", 10*time.Second),
		AdviceFallbackDelay: getEnvDuration("ADVICE_FALLBACK_DELAY", time.Second),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "aether"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "transaction_events"),

		VoiceListenDelay:  getEnvDuration("VOICE_LISTEN_DELAY", 3*time.Second),
		VoiceProcessDelay: getEnvDuration("VOICE_PROCESS_DELAY", 1500*time.Millisecond),
		VoiceSessionTTL:   getEnvDuration("VOICE_SESSION_TTL", 10*time.Minute),

		CacheCleanupInterval: getEnvDuration("CACHE_CLEANUP_INTERVAL", time.Minute),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.AdviceTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid advice timeout %v: must be at least 1 second", c.AdviceTimeout))
	} else if c.AdviceTimeout > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid advice timeout %v: must be at most 1 minute", c.AdviceTimeout))
	}

	if c.AdviceFallbackDelay < 0 || c.AdviceFallbackDelay > 10*time.Second {
		errors = append(errors, fmt.Sprintf("invalid advice fallback delay %v: must be between 0 and 10 seconds", c.AdviceFallbackDelay))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.VoiceListenDelay < 0 {
		errors = append(errors, fmt.Sprintf("invalid voice listen delay %v: must not be negative", c.VoiceListenDelay))
	}
	if c.VoiceProcessDelay < 0 {
		errors = append(errors, fmt.Sprintf("invalid voice process delay %v: must not be negative", c.VoiceProcessDelay))
	}
	if c.VoiceSessionTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid voice session TTL %v: must be at least 1 minute", c.VoiceSessionTTL))
	}

	if c.CacheCleanupInterval < time.Second {
		errors = append(errors, fmt.Sprintf("invalid cache cleanup interval %v: must be at least 1 second", c.CacheCleanupInterval))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
