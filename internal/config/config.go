// Package config loads server settings from flags, the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

type Options struct {
	Addr    string `long:"addr" description:"address to listen on" default:":3000" env:"ADDR" value-name:"HOST:PORT"`
	TLSCert string `long:"tls-cert" description:"TLS certificate file" env:"TLS_CERT" value-name:"PATH"`
	TLSKey  string `long:"tls-key" description:"TLS private key file" env:"TLS_KEY" value-name:"PATH"`

	AllowedOrigins []string `long:"allowed-origin" description:"CORS origin allowed to call the API (repeatable, * for any)" env:"ALLOWED_ORIGINS" env-delim:"," default:"http://localhost:5173" default:"http://127.0.0.1:5173"`
	MaxBodySize    int64    `long:"max-body-size" description:"maximum request body in bytes" default:"1048576" env:"MAX_BODY_SIZE"`
	StrictSecurity bool     `long:"strict-security" description:"send COOP/COEP/CORP headers" env:"STRICT_SECURITY"`

	AppEnv          string        `long:"app-env" description:"deployment environment" default:"development" env:"APP_ENV"`
	ShutdownTimeout time.Duration `long:"shutdown-timeout" description:"graceful shutdown deadline" default:"10s" env:"SHUTDOWN_TIMEOUT"`
}

// EnvFile returns the .env path to load, overridable with ENV_FILE.
func EnvFile() string {
	if p := os.Getenv("ENV_FILE"); p != "" {
		return p
	}
	return ".env"
}

// Load reads EnvFile (a missing file is ignored), parses args over the
// environment and validates the result.
func Load(args []string) (Options, error) {
	if err := godotenv.Load(EnvFile()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Options{}, fmt.Errorf("load %s: %w", EnvFile(), err)
	}

	var opts Options
	if _, err := flags.NewParser(&opts, flags.Default).ParseArgs(args); err != nil {
		return Options{}, err
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// TLS reports whether both certificate and key are configured.
func (o Options) TLS() bool {
	return o.TLSCert != "" && o.TLSKey != ""
}

func (o Options) Production() bool {
	return strings.EqualFold(o.AppEnv, "production")
}

// Validate fails fast on unusable settings.
func (o Options) Validate() error {
	if strings.TrimSpace(o.Addr) == "" {
		return errors.New("ADDR must not be empty")
	}
	if (o.TLSCert == "") != (o.TLSKey == "") {
		return errors.New("TLS_CERT and TLS_KEY must be set together")
	}
	if o.MaxBodySize <= 0 {
		return fmt.Errorf("MAX_BODY_SIZE: must be > 0, got %d", o.MaxBodySize)
	}
	if o.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT: must be > 0, got %s", o.ShutdownTimeout)
	}
	for _, origin := range o.AllowedOrigins {
		if err := validOrigin(origin); err != nil {
			return fmt.Errorf("ALLOWED_ORIGINS: %w", err)
		}
	}
	return nil
}

// HardeningWarnings returns non-fatal warnings worth logging on startup.
func (o Options) HardeningWarnings() []string {
	var warns []string

	if o.MaxBodySize > 1<<20 {
		warns = append(warns, fmt.Sprintf("MAX_BODY_SIZE=%d exceeds 1MiB; /check bodies are tiny", o.MaxBodySize))
	}

	if o.Production() {
		if !o.TLS() {
			warns = append(warns, "serving plain HTTP in production; passwords travel in clear text unless a proxy terminates TLS")
		}
		for _, origin := range o.AllowedOrigins {
			if origin == "*" {
				warns = append(warns, "ALLOWED_ORIGINS contains *; any site can call the API")
			} else if strings.HasPrefix(origin, "http://") {
				warns = append(warns, fmt.Sprintf("origin %s is not HTTPS", origin))
			}
		}
		if !o.StrictSecurity {
			warns = append(warns, "STRICT_SECURITY not enabled; cross-origin isolation headers are off")
		}
	}

	return warns
}

func validOrigin(origin string) error {
	if origin == "*" {
		return nil
	}
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin %q: %v", origin, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid origin %q: want scheme://host[:port]", origin)
	}
	if u.Path != "" || u.RawQuery != "" {
		return fmt.Errorf("invalid origin %q: must not carry a path or query", origin)
	}
	return nil
}
