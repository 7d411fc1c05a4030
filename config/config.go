package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath          = "."
	defaultHorizonDays   = 30
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin"
	defaultSQLitePath    = "clinic.db"

	// SnapshotStoreSQLite keeps the session snapshot in a local sqlite file.
	SnapshotStoreSQLite = "sqlite"
	// SnapshotStoreMemory keeps the session snapshot for the lifetime of the process only.
	SnapshotStoreMemory = "memory"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Session *SessionConfig `json:"session" yaml:"session"`

	// Admin holds the single administrator credential pair.
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	SQLite *SQLiteConfig `json:"sqlite" yaml:"sqlite"`

	Booking *BookingConfig `json:"booking" yaml:"booking"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SessionConfig defines how the session snapshot is kept and how long sign-in takes.
type SessionConfig struct {
	// Store is either "sqlite" or "memory".
	Store string `json:"store" yaml:"store"`

	// SimulatedLatency emulates a remote identity call on login, register and admin login.
	SimulatedLatency time.Duration `json:"simulatedLatency" yaml:"simulatedLatency"`
}

// AdminConfig is a placeholder credential, not a security control.
type AdminConfig struct {
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
}

// SQLiteConfig points at the process-local snapshot database.
type SQLiteConfig struct {
	Path string `json:"path" yaml:"path"`
}

// BookingConfig defines the booking calendar.
type BookingConfig struct {
	// HorizonDays is how many calendar days ahead dates are offered.
	HorizonDays int `json:"horizonDays" yaml:"horizonDays"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(currEnv, searchPaths)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Env keys are mapped onto the yaml tree, e.g. SESSION_SIMULATEDLATENCY -> session.simulatedLatency
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, searchPaths []string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

// ApplyDefaults fills every optional section so callers never see nil sections.
func (cfg *Config) ApplyDefaults() {
	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if strings.TrimSpace(cfg.Session.Store) == "" {
		cfg.Session.Store = SnapshotStoreSQLite
	}
	if cfg.Session.SimulatedLatency < 0 {
		cfg.Session.SimulatedLatency = 0
	}

	if cfg.Admin == nil {
		cfg.Admin = &AdminConfig{}
	}
	if cfg.Admin.Username == "" {
		cfg.Admin.Username = defaultAdminUsername
	}
	if cfg.Admin.Password == "" {
		cfg.Admin.Password = defaultAdminPassword
	}

	if cfg.SQLite == nil {
		cfg.SQLite = &SQLiteConfig{}
	}
	if strings.TrimSpace(cfg.SQLite.Path) == "" {
		cfg.SQLite.Path = defaultSQLitePath
	}

	if cfg.Booking == nil {
		cfg.Booking = &BookingConfig{}
	}
	if cfg.Booking.HorizonDays <= 0 {
		cfg.Booking.HorizonDays = defaultHorizonDays
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
