package store

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// SettingsKey is the KV key holding the settings record.
const SettingsKey = "world_calendar_settings"

// Display modes for LanguageDisplay.
const (
	DisplayNative = "native"
	DisplayApp    = "app"
)

// Settings is the persisted user preference record.
type Settings struct {
	SelectedCountries []string        `json:"selectedCountries"`
	LanguageDisplay   string          `json:"languageDisplay"`
	FRRegions         map[string]bool `json:"frRegions"`
}

// DefaultSettings returns the record used before onboarding.
func DefaultSettings() Settings {
	return Settings{
		SelectedCountries: []string{},
		LanguageDisplay:   DisplayApp,
		FRRegions:         map[string]bool{},
	}
}

// normalize fills nil collections and unknown display modes with defaults.
func (s Settings) normalize() Settings {
	if s.SelectedCountries == nil {
		s.SelectedCountries = []string{}
	}
	if s.FRRegions == nil {
		s.FRRegions = map[string]bool{}
	}
	if s.LanguageDisplay != DisplayNative {
		s.LanguageDisplay = DisplayApp
	}
	return s
}

// SettingsStore loads and saves the single settings record.
type SettingsStore struct {
	kv     KV
	logger *slog.Logger
	mu     sync.Mutex
}

func NewSettingsStore(kv KV, logger *slog.Logger) *SettingsStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsStore{kv: kv, logger: logger}
}

// Load returns the saved settings and true, or the defaults and false when
// nothing usable is stored. A false result means onboarding has not run.
func (s *SettingsStore) Load(ctx context.Context) (Settings, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, SettingsKey)
	if err != nil {
		s.logger.WarnContext(ctx, "read settings", slog.Any("error", err))
		return DefaultSettings(), false
	}
	if len(data) == 0 {
		return DefaultSettings(), false
	}

	var st Settings
	if err := json.Unmarshal(data, &st); err != nil {
		s.logger.WarnContext(ctx, "decode settings", slog.Any("error", err))
		return DefaultSettings(), false
	}
	return st.normalize(), true
}

// Save persists st. Failures are logged and dropped.
func (s *SettingsStore) Save(ctx context.Context, st Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(st.normalize())
	if err != nil {
		s.logger.ErrorContext(ctx, "encode settings", slog.Any("error", err))
		return
	}
	if err := s.kv.Set(ctx, SettingsKey, data); err != nil {
		s.logger.ErrorContext(ctx, "save settings", slog.Any("error", err))
	}
}
