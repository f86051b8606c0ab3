package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/5w1tchy/password-checker/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	opts, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":3000", opts.Addr)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, opts.AllowedOrigins)
	assert.Equal(t, int64(1<<20), opts.MaxBodySize)
	assert.Equal(t, 10*time.Second, opts.ShutdownTimeout)
	assert.False(t, opts.TLS())
	assert.False(t, opts.Production())
}

func TestLoad_EnvAndFlags(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("ADDR", ":8080")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("STRICT_SECURITY", "1")

	opts, err := config.Load([]string{"--max-body-size", "2048"})
	require.NoError(t, err)

	assert.Equal(t, ":8080", opts.Addr)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, opts.AllowedOrigins)
	assert.True(t, opts.StrictSecurity)
	assert.Equal(t, int64(2048), opts.MaxBodySize)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SHUTDOWN_TIMEOUT=3s\n"), 0o600))
	t.Setenv("ENV_FILE", path)
	require.NoError(t, os.Unsetenv("SHUTDOWN_TIMEOUT"))
	t.Cleanup(func() { os.Unsetenv("SHUTDOWN_TIMEOUT") })

	opts, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, opts.ShutdownTimeout)
}

func TestValidate(t *testing.T) {
	base := config.Options{
		Addr:            ":3000",
		MaxBodySize:     1024,
		ShutdownTimeout: time.Second,
		AllowedOrigins:  []string{"*", "https://ok.example"},
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name string
		mut  func(*config.Options)
	}{
		{"empty addr", func(o *config.Options) { o.Addr = " " }},
		{"cert without key", func(o *config.Options) { o.TLSCert = "cert.pem" }},
		{"zero body size", func(o *config.Options) { o.MaxBodySize = 0 }},
		{"zero shutdown", func(o *config.Options) { o.ShutdownTimeout = 0 }},
		{"origin with path", func(o *config.Options) { o.AllowedOrigins = []string{"https://x.example/app"} }},
		{"origin without scheme", func(o *config.Options) { o.AllowedOrigins = []string{"x.example"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := base
			tt.mut(&o)
			assert.Error(t, o.Validate())
		})
	}
}

func TestHardeningWarnings(t *testing.T) {
	dev := config.Options{AppEnv: "development", MaxBodySize: 1024}
	assert.Empty(t, dev.HardeningWarnings())

	prod := config.Options{
		AppEnv:         "Production",
		MaxBodySize:    4 << 20,
		AllowedOrigins: []string{"*", "http://plain.example"},
	}
	warns := prod.HardeningWarnings()
	assert.Len(t, warns, 5)

	hardened := config.Options{
		AppEnv:         "production",
		MaxBodySize:    1024,
		TLSCert:        "c",
		TLSKey:         "k",
		StrictSecurity: true,
		AllowedOrigins: []string{"https://app.example"},
	}
	assert.Empty(t, hardened.HardeningWarnings())
}
