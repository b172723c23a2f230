package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"portfolioBot/internal/finance"
)

// FileStore persists the portfolio snapshot as a single JSON document with
// shape {"stocks": [...], "sip": [...]}. A missing or malformed file reads as
// an empty snapshot; the first Save heals it. One mutex serializes the
// command loop and the reminder job, so load-modify-save pairs through
// Update never interleave.
type FileStore struct {
	path string
	mu   sync.Mutex
	log  zerolog.Logger
}

func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{
		path: path,
		log:  log.With().Str("component", "store").Logger(),
	}
}

// Load returns the current snapshot, empty on missing or corrupt storage.
func (s *FileStore) Load() finance.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Save overwrites the durable record. The write goes to a temp file in the
// same directory and is renamed into place, so a concurrent Load never sees
// a partial document.
func (s *FileStore) Save(snap finance.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(snap)
}

// Update applies fn to the current snapshot under the store lock and saves
// the result. fn reports whether anything changed; unchanged snapshots are
// not written back.
func (s *FileStore) Update(fn func(finance.Snapshot) (finance.Snapshot, bool)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := fn(s.loadLocked())
	if !changed {
		return nil
	}
	return s.saveLocked(next)
}

func (s *FileStore) loadLocked() finance.Snapshot {
	empty := finance.Snapshot{Stocks: []finance.Holding{}, SIPs: []finance.Plan{}}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Msg("portfolio file unreadable, starting empty")
		}
		return empty
	}
	var snap finance.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		s.log.Warn().Err(err).Msg("portfolio file malformed, starting empty")
		return empty
	}
	if snap.Stocks == nil {
		snap.Stocks = []finance.Holding{}
	}
	if snap.SIPs == nil {
		snap.SIPs = []finance.Plan{}
	}
	return snap
}

func (s *FileStore) saveLocked(snap finance.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "portfolio-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
