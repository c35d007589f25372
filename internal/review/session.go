package review

import (
	"github.com/rs/zerolog"

	"codeberg.org/snonux/wordcycle/internal/words"
)

// View is a render snapshot of the session
type View struct {
	Loaded         bool // a non-empty word list is loaded
	AllDone        bool // words are loaded but none is eligible
	Index          int
	Stage          Stage
	Record         words.Record
	Progress       Progress
	LearnFavorites bool
}

// Session is the single mutable review context shared by the event
// handlers of a host UI. It owns the word store and the cursor over it.
type Session struct {
	store  *words.Store
	cursor *Cursor
	log    zerolog.Logger
}

// NewSession creates an empty session
func NewSession(logger zerolog.Logger) *Session {
	store := words.NewStore(nil)
	return &Session{
		store:  store,
		cursor: NewCursor(store),
		log:    logger,
	}
}

// Load replaces the word list with the parsed content of raw
func (s *Session) Load(raw string) {
	s.Replace(words.Load(raw))
}

// Replace swaps in an already parsed store and resets the cursor
func (s *Session) Replace(store *words.Store) {
	s.store = store
	s.cursor.Reset(store)
	idx, _ := s.cursor.Index()
	s.log.Debug().Int("words", store.Len()).Int("start", idx).Msg("word list loaded")
}

// Store returns the underlying word store
func (s *Session) Store() *words.Store {
	return s.store
}

// Cursor returns the review cursor
func (s *Session) Cursor() *Cursor {
	return s.cursor
}

// Empty reports whether no words are loaded
func (s *Session) Empty() bool {
	return s.store.Len() == 0
}

// Next handles the forward navigation event
func (s *Session) Next() {
	s.cursor.Advance()
	s.logPosition("next")
}

// Previous handles the backward navigation event
func (s *Session) Previous() {
	s.cursor.Retreat()
	s.logPosition("previous")
}

// ToggleLearned handles the toggle-learned event; it only acts on the Status stage
func (s *Session) ToggleLearned() bool {
	changed := s.cursor.ToggleLearnedIfOnStatus()
	if changed {
		s.logPosition("toggle learned")
	}
	return changed
}

// ToggleFavorited flips the favorited flag of the current word
func (s *Session) ToggleFavorited() bool {
	idx, ok := s.cursor.Index()
	if !ok {
		return false
	}
	return s.store.ToggleFavorited(idx)
}

// ToggleMastered flips the mastered flag of the current word
func (s *Session) ToggleMastered() bool {
	idx, ok := s.cursor.Index()
	if !ok {
		return false
	}
	return s.store.ToggleMastered(idx)
}

// ToggleLearnFavorites flips the global learn-favorites setting
func (s *Session) ToggleLearnFavorites() bool {
	on := s.cursor.ToggleLearnFavorites()
	s.log.Debug().Bool("learn_favorites", on).Msg("learn favorites toggled")
	return on
}

// Edit replaces an editable field of the current word. It reports whether
// the value changed.
func (s *Session) Edit(field words.Field, value string) bool {
	idx, ok := s.cursor.Index()
	if !ok {
		return false
	}
	changed := s.store.EditField(idx, field, value)
	if changed {
		s.log.Debug().Int("index", idx).Stringer("field", field).Msg("field edited")
	}
	return changed
}

// Jump moves to the 1-based index typed by the user
func (s *Session) Jump(text string) error {
	if err := s.cursor.JumpToText(text); err != nil {
		s.log.Debug().Err(err).Str("input", text).Msg("jump rejected")
		return err
	}
	s.logPosition("jump")
	return nil
}

// Export serializes the word list for download
func (s *Session) Export() (string, error) {
	if s.Empty() {
		return "", ErrEmptyStore
	}
	return s.store.Serialize(), nil
}

// View returns the snapshot a host renders
func (s *Session) View() View {
	v := View{
		Stage:          s.cursor.Stage(),
		Progress:       s.cursor.Progress(),
		LearnFavorites: s.cursor.LearnFavorites(),
	}
	idx, ok := s.cursor.Index()
	if !ok {
		return v
	}
	v.Loaded = true
	v.Index = idx
	v.Record, _ = s.cursor.Current()
	v.AllDone = !s.cursor.HasEligible()
	return v
}

func (s *Session) logPosition(event string) {
	idx, _ := s.cursor.Index()
	s.log.Debug().
		Str("event", event).
		Int("index", idx).
		Stringer("stage", s.cursor.Stage()).
		Msg("cursor moved")
}
