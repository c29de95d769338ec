package config

import (
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/vango-dev/contactform/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "contactform.json"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "CONTACTFORM_"

	// DefaultAddr is the default listen address.
	DefaultAddr = ":8080"
)

// Config represents the complete contactform.json configuration.
type Config struct {
	Server  ServerConfig  `json:"server"`
	Log     LogConfig     `json:"log" envPrefix:"LOG_"`
	Metrics MetricsConfig `json:"metrics" envPrefix:"METRICS_"`
	Tracing TracingConfig `json:"tracing" envPrefix:"TRACING_"`
	Dialog  DialogConfig  `json:"dialog" envPrefix:"DIALOG_"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains HTTP and WebSocket settings.
type ServerConfig struct {
	// Addr is the listen address (host:port).
	Addr string `json:"addr" env:"ADDR" validate:"required,hostname_port"`

	ReadTimeout     Duration `json:"readTimeout" env:"READ_TIMEOUT"`
	WriteTimeout    Duration `json:"writeTimeout" env:"WRITE_TIMEOUT"`
	IdleTimeout     Duration `json:"idleTimeout" env:"IDLE_TIMEOUT"`
	ShutdownTimeout Duration `json:"shutdownTimeout" env:"SHUTDOWN_TIMEOUT"`

	// ListenRetry bounds how long serve waits for a busy address.
	ListenRetry Duration `json:"listenRetry" env:"LISTEN_RETRY"`

	// HeartbeatInterval is the WebSocket ping interval.
	HeartbeatInterval Duration `json:"heartbeatInterval" env:"HEARTBEAT_INTERVAL"`

	// MaxMessageSize bounds a client frame in bytes.
	MaxMessageSize int64 `json:"maxMessageSize" env:"MAX_MESSAGE_SIZE" validate:"gte=256"`

	// MaxSessions caps concurrent sessions; zero means no limit.
	MaxSessions int `json:"maxSessions" env:"MAX_SESSIONS" validate:"gte=0"`

	// AllowedOrigins lists cross-origin pages allowed to open sessions.
	AllowedOrigins []string `json:"allowedOrigins,omitempty" env:"ALLOWED_ORIGINS" envSeparator:"," validate:"dive,url"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `json:"level" env:"LEVEL" validate:"oneof=debug info warn error"`
	Format string `json:"format" env:"FORMAT" validate:"oneof=text json"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" env:"ENABLED"`
	Namespace string `json:"namespace" env:"NAMESPACE" validate:"required_if=Enabled true"`
}

// TracingConfig controls OpenTelemetry spans.
type TracingConfig struct {
	Enabled    bool   `json:"enabled" env:"ENABLED"`
	TracerName string `json:"tracerName" env:"TRACER_NAME"`
}

// DialogConfig holds user-facing texts of the dialog.
type DialogConfig struct {
	PageTitle      string `json:"pageTitle,omitempty" env:"PAGE_TITLE"`
	Title          string `json:"title,omitempty" env:"TITLE"`
	OpenLabel      string `json:"openLabel,omitempty" env:"OPEN_LABEL"`
	SubmitLabel    string `json:"submitLabel,omitempty" env:"SUBMIT_LABEL"`
	SuccessMessage string `json:"successMessage,omitempty" env:"SUCCESS_MESSAGE"`
}

// New returns a configuration with default values.
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:              DefaultAddr,
			ReadTimeout:       Duration(30 * time.Second),
			WriteTimeout:      Duration(30 * time.Second),
			IdleTimeout:       Duration(120 * time.Second),
			ShutdownTimeout:   Duration(30 * time.Second),
			ListenRetry:       Duration(5 * time.Second),
			HeartbeatInterval: Duration(30 * time.Second),
			MaxMessageSize:    64 * 1024,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "contactform",
		},
		Tracing: TracingConfig{
			TracerName: "contactform",
		},
	}
}

// LoadFile reads configuration from the specified file path on top of the
// defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New("E100").
				WithDetail("No " + ConfigFileName + " at " + path).
				Wrap(err)
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E101").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			Wrap(err)
	}
	cfg.configPath = path
	return cfg, nil
}

// Find looks for contactform.json in startDir and its parents.
func Find(startDir string) (string, bool) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false
	}
	for {
		path := filepath.Join(dir, ConfigFileName)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// UserConfigPath is the location of the per-user config file relative to
// the XDG config directories.
var UserConfigPath = filepath.Join("contactform", ConfigFileName)

// FindUser looks for the per-user config file in the XDG config
// directories (~/.config/contactform/contactform.json on Linux).
func FindUser() (string, bool) {
	path, err := xdg.SearchConfigFile(UserConfigPath)
	if err != nil {
		return "", false
	}
	return path, true
}

// Options controls Load.
type Options struct {
	// Path is an explicit config file. When empty, Load searches from Dir
	// and falls back to defaults if nothing is found.
	Path string

	// Dir is where the search starts. Default: the working directory, with
	// the per-user config file as a fallback.
	Dir string

	// EnvFile is a dotenv file loaded before reading the environment.
	// Missing files are ignored unless the path was given explicitly.
	EnvFile string

	// Environ replaces os.Environ, for tests.
	Environ map[string]string
}

// Load builds the effective configuration: defaults, then the config
// file, then environment overrides. The result is validated.
func Load(opts Options) (*Config, error) {
	var cfg *Config
	switch {
	case opts.Path != "":
		c, err := LoadFile(opts.Path)
		if err != nil {
			return nil, err
		}
		cfg = c
	default:
		dir := opts.Dir
		if dir == "" {
			dir = "."
		}
		path, ok := Find(dir)
		if !ok && opts.Dir == "" {
			path, ok = FindUser()
		}
		if ok {
			c, err := LoadFile(path)
			if err != nil {
				return nil, err
			}
			cfg = c
		} else {
			cfg = New()
		}
	}

	if opts.EnvFile != "" {
		if err := godotenv.Load(opts.EnvFile); err != nil {
			return nil, errors.New("E104").WithDetail(opts.EnvFile).Wrap(err)
		}
	}
	if err := cfg.ApplyEnv(opts.Environ); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from CONTACTFORM_* variables. A nil environ
// reads the process environment.
func (c *Config) ApplyEnv(environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(c, opts); err != nil {
		return errors.New("E102").WithDetail(err.Error()).Wrap(err)
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the configuration values.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return errors.New("E103").Wrap(err)
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fieldProblem(fe))
	}
	return errors.New("E103").
		WithDetail(strings.Join(problems, "; ")).
		Wrap(err)
}

func fieldProblem(fe validator.FieldError) string {
	name := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required", "required_if":
		return name + " is required"
	case "oneof":
		return name + " must be one of: " + fe.Param()
	case "hostname_port":
		return name + " must be host:port"
	case "url":
		return name + " must be a URL"
	default:
		return name + " failed " + fe.Tag()
	}
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E101").Wrap(err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("E101").Wrap(err)
	}
	c.configPath = path
	return nil
}
