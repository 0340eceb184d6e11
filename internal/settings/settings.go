// Package settings persists the small on-device preferences: the
// last-used player name, dark mode and the sound toggle. Like the score
// ledger, settings degrade to defaults when the store is absent or
// unreadable; a lost preference is never a gameplay error.
package settings

import (
	"encoding/json"

	"github.com/charmbracelet/log"
)

// Blob keys in the persistence store.
const (
	keyPlayerName = "playername"
	keyDarkMode   = "darkMode"
	keySoundOn    = "soundOn"
)

// Settings holds the persisted preferences.
type Settings struct {
	PlayerName string
	DarkMode   bool
	SoundOn    bool
}

// Store is the minimal persistence surface settings need.
// *storage.Store satisfies it.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Put(key string, value []byte) error
}

// Default returns the settings used when nothing is persisted yet.
func Default() Settings {
	return Settings{SoundOn: true}
}

// Load reads settings from store, falling back to Default for any key
// that is missing or unreadable.
func Load(store Store, logger *log.Logger) Settings {
	if logger == nil {
		logger = log.Default()
	}
	s := Default()
	if store == nil {
		return s
	}

	loadKey(store, logger, keyPlayerName, &s.PlayerName)
	loadKey(store, logger, keyDarkMode, &s.DarkMode)
	loadKey(store, logger, keySoundOn, &s.SoundOn)

	return s
}

// Save writes all settings back to store. Failures are logged and
// swallowed; the worst case is a preference not surviving this session.
func Save(store Store, logger *log.Logger, s Settings) {
	if logger == nil {
		logger = log.Default()
	}
	if store == nil {
		return
	}

	saveKey(store, logger, keyPlayerName, s.PlayerName)
	saveKey(store, logger, keyDarkMode, s.DarkMode)
	saveKey(store, logger, keySoundOn, s.SoundOn)
}

func loadKey(store Store, logger *log.Logger, key string, dst any) {
	blob, ok, err := store.Get(key)
	if err != nil {
		logger.Warn("cannot read setting, using default", "key", key, "error", err)
		return
	}
	if !ok {
		return
	}
	if err := json.Unmarshal(blob, dst); err != nil {
		logger.Warn("setting unreadable, using default", "key", key, "error", err)
	}
}

func saveKey(store Store, logger *log.Logger, key string, value any) {
	blob, err := json.Marshal(value)
	if err != nil {
		logger.Warn("cannot encode setting", "key", key, "error", err)
		return
	}
	if err := store.Put(key, blob); err != nil {
		logger.Warn("cannot save setting", "key", key, "error", err)
	}
}
