package notes

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"jot/internal/storage"
)

// DefaultKey is the storage key the collection lives under.
const DefaultKey = "voice-notes"

// Store owns the in-memory collection and writes it back to kv after every
// mutation. It is not safe for concurrent use; one goroutine drives it.
type Store struct {
	kv     storage.KV
	key    string
	notes  Collection
	now    func() time.Time
	logger *slog.Logger
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

func NewStore(kv storage.KV, key string, opts ...Option) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{
		kv:     kv,
		key:    key,
		notes:  Collection{},
		now:    time.Now,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with what kv holds. A missing or
// blank value yields an empty collection; unparsable data yields ErrCorrupt.
func (s *Store) Load() error {
	raw, ok, err := s.kv.Get(s.key)
	if err != nil {
		return fmt.Errorf("read %s: %w", s.key, err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		s.notes = Collection{}
		s.logger.Debug("no stored notes", "key", s.key)
		return nil
	}
	c, err := Unmarshal([]byte(raw))
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrCorrupt, s.key, err)
	}
	if c == nil {
		c = Collection{}
	}
	s.notes = c
	s.logger.Debug("loaded notes", "key", s.key, "count", len(c))
	return nil
}

func (s *Store) Persist() error {
	data, err := Marshal(s.notes)
	if err != nil {
		return err
	}
	if err := s.kv.Set(s.key, string(data)); err != nil {
		s.logger.Warn("persist failed", "key", s.key, "err", err)
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	s.logger.Debug("persisted notes", "key", s.key, "count", len(s.notes))
	return nil
}

// Notes returns a snapshot; callers may keep it across later mutations.
func (s *Store) Notes() Collection {
	out := make(Collection, len(s.notes))
	copy(out, s.notes)
	return out
}

func (s *Store) Visible(f Filter) Collection {
	return s.notes.Filter(f)
}

func (s *Store) Get(id int64) (Note, bool) {
	return s.notes.Find(id)
}

func (s *Store) Add(title, content string, category Category) (Note, error) {
	title, content, err := trimFields(title, content)
	if err != nil {
		return Note{}, err
	}
	category, err = ParseCategory(string(category))
	if err != nil {
		return Note{}, err
	}
	n := Note{
		ID:       s.nextID(),
		Title:    title,
		Content:  content,
		Category: category,
	}
	if err := s.commit(s.notes.Add(n)); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (s *Store) Delete(id int64) error {
	next, ok := s.notes.Delete(id)
	if !ok {
		return nil
	}
	return s.commit(next)
}

func (s *Store) Edit(id int64, title, content string) error {
	title, content, err := trimFields(title, content)
	if err != nil {
		return err
	}
	next, ok := s.notes.Edit(id, title, content)
	if !ok {
		return nil
	}
	return s.commit(next)
}

// commit swaps in next only once it has been written, so a failed write
// leaves memory and storage in agreement.
func (s *Store) commit(next Collection) error {
	prev := s.notes
	s.notes = next
	if err := s.Persist(); err != nil {
		s.notes = prev
		return err
	}
	return nil
}

func (s *Store) nextID() int64 {
	id := s.now().UnixMilli()
	if last := s.notes.maxID(); id <= last {
		id = last + 1
	}
	return id
}
