// Package uistate holds presentation state that is not owned by the server:
// theme, user presence, per-chat typing sets and connection status. Only the
// theme survives restarts; everything else resets to defaults on load.
package uistate

import (
	"context"
	"sync"
	"time"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "online"
	PresenceAway    PresenceStatus = "away"
	PresenceBusy    PresenceStatus = "busy"
	PresenceOffline PresenceStatus = "offline"
)

type UserPresence struct {
	UserID       string         `json:"userId"`
	Status       PresenceStatus `json:"status"`
	LastSeen     time.Time      `json:"lastSeen"`
	CustomStatus string         `json:"customStatus,omitempty"`
}

type ConnectionStatus string

const (
	ConnectionConnected    ConnectionStatus = "connected"
	ConnectionConnecting   ConnectionStatus = "connecting"
	ConnectionDisconnected ConnectionStatus = "disconnected"
	ConnectionError        ConnectionStatus = "error"
)

// Snapshot is an immutable copy handed to subscribers.
type Snapshot struct {
	Theme      Theme
	Presence   map[string]UserPresence
	Typing     map[string][]string
	Connection ConnectionStatus
}

type Store struct {
	mu           sync.RWMutex
	theme        Theme
	presence     map[string]UserPresence
	typing       map[string]map[string]struct{}
	typingTimers map[string]map[string]*time.Timer
	connection   ConnectionStatus
	listeners    map[int]func(Snapshot)
	nextListener int

	storage    Storage
	applyTheme func(Theme)
	typingTTL  time.Duration
	now        func() time.Time
}

type Option func(*Store)

// WithStorage sets the backend that persists the theme.
func WithStorage(storage Storage) Option {
	return func(s *Store) { s.storage = storage }
}

// WithApplyTheme registers the side effect run synchronously whenever the
// theme changes (the global style-scope toggle).
func WithApplyTheme(fn func(Theme)) Option {
	return func(s *Store) { s.applyTheme = fn }
}

// WithTypingTTL bounds how long a typing flag survives without a refresh.
// Zero keeps flags until an explicit stop signal arrives.
func WithTypingTTL(ttl time.Duration) Option {
	return func(s *Store) { s.typingTTL = ttl }
}

func withClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		theme:        ThemeLight,
		presence:     map[string]UserPresence{},
		typing:       map[string]map[string]struct{}{},
		typingTimers: map[string]map[string]*time.Timer{},
		connection:   ConnectionDisconnected,
		listeners:    map[int]func(Snapshot){},
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Init restores the persisted theme and applies it. Presence, typing and
// connection state are deliberately not persisted.
func (s *Store) Init(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	persisted, err := s.storage.Load(ctx)
	if err != nil {
		return err
	}
	if persisted.Theme != "" {
		s.mu.Lock()
		s.theme = persisted.Theme
		s.applyThemeLocked()
	}
	return nil
}

func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Store) SetTheme(ctx context.Context, theme Theme) error {
	s.mu.Lock()
	s.theme = theme
	s.applyThemeLocked()
	return s.persistTheme(ctx, theme)
}

func (s *Store) ToggleTheme(ctx context.Context) error {
	s.mu.Lock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	theme := s.theme
	s.applyThemeLocked()
	return s.persistTheme(ctx, theme)
}

// applyThemeLocked runs the theme side effect and notifies; called with the
// lock held, releases it.
func (s *Store) applyThemeLocked() {
	apply := s.applyTheme
	theme := s.theme
	s.notifyLocked()
	if apply != nil {
		apply(theme)
	}
}

func (s *Store) persistTheme(ctx context.Context, theme Theme) error {
	if s.storage == nil {
		return nil
	}
	return s.storage.Save(ctx, PersistedState{Theme: theme})
}

// SetUserPresence upserts the full presence record, last write wins.
func (s *Store) SetUserPresence(presence UserPresence) {
	s.mu.Lock()
	s.presence[presence.UserID] = presence
	s.notifyLocked()
}

// UpdateUserStatus changes only the status. LastSeen is stamped on the
// transition into online and left untouched otherwise.
func (s *Store) UpdateUserStatus(userID string, status PresenceStatus) {
	s.mu.Lock()
	record := s.presence[userID]
	record.UserID = userID
	if status == PresenceOnline && record.Status != PresenceOnline {
		record.LastSeen = s.now()
	}
	record.Status = status
	s.presence[userID] = record
	s.notifyLocked()
}

func (s *Store) Presence(userID string) (UserPresence, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.presence[userID]
	return record, ok
}

// SetUserTyping adds or removes a user from a chat's typing set. Both
// directions are idempotent. With a TTL configured, an unrefreshed flag is
// cleared automatically; a refresh resets the clock.
func (s *Store) SetUserTyping(chatID, userID string, typing bool) {
	s.mu.Lock()
	if typing {
		set, ok := s.typing[chatID]
		if !ok {
			set = map[string]struct{}{}
			s.typing[chatID] = set
		}
		set[userID] = struct{}{}
		s.armTypingTimer(chatID, userID)
	} else {
		if set, ok := s.typing[chatID]; ok {
			delete(set, userID)
			if len(set) == 0 {
				delete(s.typing, chatID)
			}
		}
		s.stopTypingTimer(chatID, userID)
	}
	s.notifyLocked()
}

// armTypingTimer and stopTypingTimer are called with the lock held.
func (s *Store) armTypingTimer(chatID, userID string) {
	if s.typingTTL <= 0 {
		return
	}
	s.stopTypingTimer(chatID, userID)
	timers, ok := s.typingTimers[chatID]
	if !ok {
		timers = map[string]*time.Timer{}
		s.typingTimers[chatID] = timers
	}
	timers[userID] = time.AfterFunc(s.typingTTL, func() {
		s.SetUserTyping(chatID, userID, false)
	})
}

func (s *Store) stopTypingTimer(chatID, userID string) {
	if timers, ok := s.typingTimers[chatID]; ok {
		if timer, ok := timers[userID]; ok {
			timer.Stop()
			delete(timers, userID)
		}
		if len(timers) == 0 {
			delete(s.typingTimers, chatID)
		}
	}
}

// TypingUsers returns the ids currently typing in a chat.
func (s *Store) TypingUsers(chatID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	set := s.typing[chatID]
	out := make([]string, 0, len(set))
	for userID := range set {
		out = append(out, userID)
	}
	return out
}

func (s *Store) SetConnectionStatus(status ConnectionStatus) {
	s.mu.Lock()
	s.connection = status
	s.notifyLocked()
}

func (s *Store) ConnectionStatus() ConnectionStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connection
}

func (s *Store) Connected() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.connection == ConnectionConnected
}

// Subscribe registers a listener for every state change. The returned func
// removes it.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextListener
	s.nextListener++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	presence := make(map[string]UserPresence, len(s.presence))
	for userID, record := range s.presence {
		presence[userID] = record
	}
	typing := make(map[string][]string, len(s.typing))
	for chatID, set := range s.typing {
		users := make([]string, 0, len(set))
		for userID := range set {
			users = append(users, userID)
		}
		typing[chatID] = users
	}
	return Snapshot{
		Theme:      s.theme,
		Presence:   presence,
		Typing:     typing,
		Connection: s.connection,
	}
}

// notifyLocked snapshots under the lock, releases it and invokes listeners.
func (s *Store) notifyLocked() {
	snapshot := s.snapshotLocked()
	notify := make([]func(Snapshot), 0, len(s.listeners))
	for _, fn := range s.listeners {
		notify = append(notify, fn)
	}
	s.mu.Unlock()

	for _, fn := range notify {
		fn(snapshot)
	}
}
