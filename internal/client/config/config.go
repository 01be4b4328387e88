// Package config handles configuration for the client component.
package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/bookstore/internal/flagx"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the bookstore CLI. The default server
// address points at the front proxy.
type Config struct {
	ServerAddr string
}

func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:8000"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// parseEnv overlays Config fields from environment variables, optionally
// loading a dotenv file named with -e/-envfile first.
//
// Recognized variables:
//
//	SERVER_ADDR   bookstore API base URL
func parseEnv(config *Config) {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		_ = godotenv.Load(envFile)
	}

	if v, ok := os.LookupEnv("SERVER_ADDR"); ok {
		config.ServerAddr = v
	}
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   bookstore API base URL (e.g., "http://localhost:8000")
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.StringVar(&config.ServerAddr, "a", config.ServerAddr, "server address")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
