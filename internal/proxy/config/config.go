// Package config handles configuration for the proxy component.
package config

import (
	"flag"
	"os"
	"strings"

	"github.com/dmitrijs2005/bookstore/internal/flagx"
	"github.com/joho/godotenv"
)

// Config holds runtime settings for the reverse proxy.
//
// Requests whose path starts with one of APIPrefixes go to APITarget;
// everything else goes to WebTarget.
type Config struct {
	Addr        string
	APITarget   string
	WebTarget   string
	APIPrefixes []string
}

func (c *Config) LoadDefaults() {
	c.Addr = ":8000"
	c.APITarget = "http://localhost:8081"
	c.WebTarget = "http://localhost:8080"
	c.APIPrefixes = []string{"/graphql", "/healthz"}
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
//	PROXY_ADDRESS       bind address
//	PROXY_API_TARGET    API backend base URL
//	PROXY_WEB_TARGET    web backend base URL
//	PROXY_API_PREFIXES  comma-separated path prefixes routed to the API
func parseEnv(config *Config) {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		_ = godotenv.Load(envFile)
	}

	if v, ok := os.LookupEnv("PROXY_ADDRESS"); ok {
		config.Addr = v
	}
	if v, ok := os.LookupEnv("PROXY_API_TARGET"); ok {
		config.APITarget = v
	}
	if v, ok := os.LookupEnv("PROXY_WEB_TARGET"); ok {
		config.WebTarget = v
	}
	if v, ok := os.LookupEnv("PROXY_API_PREFIXES"); ok {
		config.APIPrefixes = splitPrefixes(v)
	}
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   bind address (e.g., ":8000")
//	-t string   API backend base URL
//	-w string   web backend base URL
//	-p string   comma-separated path prefixes routed to the API
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-w", "-p"})

	fs := flag.NewFlagSet("proxy", flag.ContinueOnError)

	fs.StringVar(&config.Addr, "a", config.Addr, "address and port to run proxy")
	fs.StringVar(&config.APITarget, "t", config.APITarget, "API backend base URL")
	fs.StringVar(&config.WebTarget, "w", config.WebTarget, "web backend base URL")
	prefixes := fs.String("p", strings.Join(config.APIPrefixes, ","), "comma-separated API path prefixes")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.APIPrefixes = splitPrefixes(*prefixes)
}

func splitPrefixes(s string) []string {
	parts := strings.Split(s, ",")
	prefixes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			prefixes = append(prefixes, p)
		}
	}
	return prefixes
}
