package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	WeightsPath string

	JWTSecret   string
	CORSOrigins []string

	LogLevel  string
	LogFormat string
}

// Load reads process settings from the environment.
// .env and .env.local are loaded first and never override variables that are already set.
func Load() *Config {
	for _, f := range []string{".env", ".env.local"} {
		_ = godotenv.Load(f)
	}

	addr := os.Getenv("ACTIVATION_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	weights := os.Getenv("ACTIVATION_WEIGHTS")
	if weights == "" {
		weights = DefaultWeightsPath
	}

	origins := splitList(os.Getenv("ACTIVATION_CORS_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	level := strings.ToLower(strings.TrimSpace(os.Getenv("ACTIVATION_LOG_LEVEL")))
	if level == "" {
		level = "info"
	}

	format := strings.ToLower(strings.TrimSpace(os.Getenv("ACTIVATION_LOG_FORMAT")))
	if format == "" {
		format = "text"
	}

	return &Config{
		Addr:        addr,
		WeightsPath: weights,

		JWTSecret:   os.Getenv("ACTIVATION_JWT_SECRET"),
		CORSOrigins: origins,

		LogLevel:  level,
		LogFormat: format,
	}
}

// AuthEnabled reports whether bearer tokens are required on the API routes.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
