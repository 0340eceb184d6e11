// Package scores maintains the ranked best-results table for each grid
// size. The ledger is the authoritative record across sessions: it is
// loaded once at startup, mutated only on a win or an explicit reset, and
// written back after every mutation. Persistence problems degrade to an
// in-memory ledger and are never fatal.
package scores

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// MaxEntries is how many results are kept per grid size.
const MaxEntries = 5

// storageKey is the blob key the ledger persists under.
const storageKey = "highscores"

// Result is one winning session. Created only on a win, immutable after.
type Result struct {
	Name          string    `json:"name"`
	Moves         int       `json:"moves"`
	TimeRemaining int       `json:"timeRemaining"`
	Date          time.Time `json:"date"`
}

// Store is the minimal persistence surface the ledger needs.
// *storage.Store satisfies it.
type Store interface {
	// Get returns the blob for key and whether it exists.
	Get(key string) ([]byte, bool, error)
	// Put writes the blob for key, replacing any previous value.
	Put(key string, value []byte) error
}

// Ledger maps size keys ("3x3".."6x6") to up to MaxEntries results,
// sorted ascending by move count. Safe for concurrent use: the SSH
// server hands one ledger to every connection.
type Ledger struct {
	store  Store
	logger *log.Logger

	mu    sync.Mutex
	table map[string][]Result
}

// SizeKey returns the ledger key for an N×N grid, e.g. "4x4".
func SizeKey(size int) string {
	return fmt.Sprintf("%dx%d", size, size)
}

// Load reads the persisted ledger from store. A nil store, a missing key,
// or an unreadable blob all yield an empty ledger: no scores yet is never
// an error condition.
func Load(store Store, logger *log.Logger) *Ledger {
	if logger == nil {
		logger = log.Default()
	}
	l := &Ledger{
		store:  store,
		logger: logger,
		table:  make(map[string][]Result),
	}

	if store == nil {
		return l
	}

	blob, ok, err := store.Get(storageKey)
	if err != nil {
		l.logger.Warn("cannot load high scores, starting empty", "error", err)
		return l
	}
	if !ok {
		return l
	}

	var table map[string][]Result
	if err := json.Unmarshal(blob, &table); err != nil {
		l.logger.Warn("high scores blob unreadable, starting empty", "error", err)
		return l
	}
	l.table = table

	return l
}

// RecordWin appends result under sizeKey, re-ranks the list ascending by
// moves (stable, so earlier wins rank ahead on ties), truncates it to
// MaxEntries and persists the full ledger.
func (l *Ledger) RecordWin(sizeKey string, result Result) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := append(l.table[sizeKey], result)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Moves < list[j].Moves
	})
	if len(list) > MaxEntries {
		list = list[:MaxEntries]
	}
	l.table[sizeKey] = list
	l.persist()
}

// Reset clears every size key and persists the empty ledger.
func (l *Ledger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.table = make(map[string][]Result)
	l.persist()
}

// Top returns a copy of the ranked results for sizeKey.
func (l *Ledger) Top(sizeKey string) []Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]Result(nil), l.table[sizeKey]...)
}

// Best returns the lowest recorded move count for sizeKey, or 0 and false
// if nothing is recorded yet.
func (l *Ledger) Best(sizeKey string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	list := l.table[sizeKey]
	if len(list) == 0 {
		return 0, false
	}
	return list[0].Moves, true
}

// persist writes the ledger back to the store. Failures are logged and
// swallowed: losing the latest write must not block gameplay.
// Callers hold mu.
func (l *Ledger) persist() {
	if l.store == nil {
		return
	}

	blob, err := json.Marshal(l.table)
	if err != nil {
		l.logger.Warn("cannot encode high scores", "error", err)
		return
	}
	if err := l.store.Put(storageKey, blob); err != nil {
		l.logger.Warn("cannot save high scores", "error", err)
	}
}
