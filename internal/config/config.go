// Package config loads the listen address for the hello-go-claude service.
//
// With nothing set, the service binds 0.0.0.0:5000. Two environment variables
// can override that (12-factor app style):
//   - HOST — interface to bind
//   - PORT — TCP port to listen on
//
// Values can also come from a .env file in the working directory, which is
// handy for local development. Variables already present in the environment
// win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultHost binds every interface, so the service is reachable from
	// outside its container.
	DefaultHost = "0.0.0.0"

	// DefaultPort is the port the service has always listened on.
	DefaultPort = "5000"

	// DefaultEnvFile is the optional dotenv file read by Load.
	DefaultEnvFile = ".env"
)

// Config holds the process settings.
type Config struct {
	Host string
	Port string
}

// Addr returns the host:port string passed to the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Validate reports whether the config can be used to start a listener.
func (c Config) Validate() error {
	// Atoi accepts a leading sign, which net.Listen does not.
	n, err := strconv.Atoi(c.Port)
	if err != nil || strings.TrimLeft(c.Port, "0123456789") != "" {
		return fmt.Errorf("invalid PORT %q: must be a number", c.Port)
	}
	if n < 0 || n > 65535 {
		return fmt.Errorf("invalid PORT %q: must be between 0 and 65535", c.Port)
	}
	return nil
}

// Load reads DefaultEnvFile (if present) and the environment.
func Load() (Config, error) {
	return LoadFrom(DefaultEnvFile)
}

// LoadFrom is like Load but reads the given dotenv file. A missing file is
// not an error; a file that exists but can't be parsed is.
func LoadFrom(envFile string) (Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}

	return Config{
		Host: getenv("HOST", DefaultHost),
		Port: getenv("PORT", DefaultPort),
	}, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
