package uistate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SetUserTyping(t *testing.T) {
	t.Run("adding twice leaves the set unchanged", func(t *testing.T) {
		s := NewStore()

		s.SetUserTyping("ch1", "u1", true)
		s.SetUserTyping("ch1", "u1", true)

		assert.Equal(t, []string{"u1"}, s.TypingUsers("ch1"))
	})

	t.Run("removing clears the entry, removing again is a no-op", func(t *testing.T) {
		s := NewStore()

		s.SetUserTyping("ch1", "u1", true)
		s.SetUserTyping("ch1", "u1", false)
		assert.Empty(t, s.TypingUsers("ch1"))

		s.SetUserTyping("ch1", "u1", false)
		assert.Empty(t, s.TypingUsers("ch1"))
	})

	t.Run("sets are scoped per chat", func(t *testing.T) {
		s := NewStore()

		s.SetUserTyping("ch1", "u1", true)
		s.SetUserTyping("ch2", "u2", true)

		assert.Equal(t, []string{"u1"}, s.TypingUsers("ch1"))
		assert.Equal(t, []string{"u2"}, s.TypingUsers("ch2"))
	})

	t.Run("TTL clears a flag that is never refreshed", func(t *testing.T) {
		s := NewStore(WithTypingTTL(30 * time.Millisecond))

		s.SetUserTyping("ch1", "u1", true)
		require.Equal(t, []string{"u1"}, s.TypingUsers("ch1"))

		deadline := time.Now().Add(2 * time.Second)
		for len(s.TypingUsers("ch1")) > 0 && time.Now().Before(deadline) {
			time.Sleep(5 * time.Millisecond)
		}
		assert.Empty(t, s.TypingUsers("ch1"))
	})

	t.Run("without TTL a lost stop signal keeps the flag", func(t *testing.T) {
		s := NewStore()

		s.SetUserTyping("ch1", "u1", true)
		time.Sleep(50 * time.Millisecond)
		assert.Equal(t, []string{"u1"}, s.TypingUsers("ch1"))
	})
}

func TestStore_UpdateUserStatus(t *testing.T) {
	t.Run("stamps LastSeen on the transition into online", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		s := NewStore(withClock(func() time.Time { return now }))

		s.UpdateUserStatus("u1", PresenceOnline)

		record, ok := s.Presence("u1")
		require.True(t, ok)
		assert.Equal(t, PresenceOnline, record.Status)
		assert.Equal(t, now, record.LastSeen)
	})

	t.Run("going offline leaves LastSeen untouched", func(t *testing.T) {
		now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
		s := NewStore(withClock(func() time.Time { return now }))

		s.UpdateUserStatus("u1", PresenceOnline)
		s.UpdateUserStatus("u1", PresenceOffline)

		record, ok := s.Presence("u1")
		require.True(t, ok)
		assert.Equal(t, PresenceOffline, record.Status)
		assert.Equal(t, now, record.LastSeen)
	})

	t.Run("staying online does not refresh LastSeen", func(t *testing.T) {
		calls := 0
		s := NewStore(withClock(func() time.Time {
			calls++
			return time.Date(2025, 6, 1, 12, calls, 0, 0, time.UTC)
		}))

		s.UpdateUserStatus("u1", PresenceOnline)
		first, _ := s.Presence("u1")

		s.UpdateUserStatus("u1", PresenceOnline)
		second, _ := s.Presence("u1")

		assert.Equal(t, first.LastSeen, second.LastSeen)
	})
}

func TestStore_SetUserPresence(t *testing.T) {
	t.Run("upsert is last write wins", func(t *testing.T) {
		s := NewStore()

		s.SetUserPresence(UserPresence{UserID: "u1", Status: PresenceBusy, CustomStatus: "in a meeting"})
		s.SetUserPresence(UserPresence{UserID: "u1", Status: PresenceAway})

		record, ok := s.Presence("u1")
		require.True(t, ok)
		assert.Equal(t, PresenceAway, record.Status)
		assert.Empty(t, record.CustomStatus)
	})
}

func TestStore_ConnectionStatus(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Connected())

	s.SetConnectionStatus(ConnectionConnecting)
	assert.False(t, s.Connected())

	s.SetConnectionStatus(ConnectionConnected)
	assert.True(t, s.Connected())

	s.SetConnectionStatus(ConnectionError)
	assert.False(t, s.Connected())
}

func TestStore_ThemePersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	var applied []Theme
	first := NewStore(
		WithStorage(NewFileStorage(dir)),
		WithApplyTheme(func(theme Theme) { applied = append(applied, theme) }),
	)
	require.NoError(t, first.SetTheme(ctx, ThemeDark))

	// Simulate a fresh load: only the theme comes back, everything else
	// starts at defaults.
	first.SetUserPresence(UserPresence{UserID: "u1", Status: PresenceOnline})
	first.SetUserTyping("ch1", "u1", true)
	first.SetConnectionStatus(ConnectionConnected)

	second := NewStore(
		WithStorage(NewFileStorage(dir)),
		WithApplyTheme(func(theme Theme) { applied = append(applied, theme) }),
	)
	require.NoError(t, second.Init(ctx))

	assert.Equal(t, ThemeDark, second.Theme())
	assert.Equal(t, []Theme{ThemeDark, ThemeDark}, applied)

	_, ok := second.Presence("u1")
	assert.False(t, ok)
	assert.Empty(t, second.TypingUsers("ch1"))
	assert.False(t, second.Connected())
}

func TestStore_ToggleTheme(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	require.NoError(t, s.ToggleTheme(ctx))
	assert.Equal(t, ThemeDark, s.Theme())

	require.NoError(t, s.ToggleTheme(ctx))
	assert.Equal(t, ThemeLight, s.Theme())
}

func TestStore_Subscribe(t *testing.T) {
	s := NewStore()

	var snapshots []Snapshot
	unsubscribe := s.Subscribe(func(snapshot Snapshot) {
		snapshots = append(snapshots, snapshot)
	})

	s.SetConnectionStatus(ConnectionConnected)
	require.Len(t, snapshots, 1)
	assert.Equal(t, ConnectionConnected, snapshots[0].Connection)

	unsubscribe()
	s.SetConnectionStatus(ConnectionDisconnected)
	assert.Len(t, snapshots, 1)
}

func TestFileStorage_MissingFileIsEmptyState(t *testing.T) {
	storage := NewFileStorage(t.TempDir())

	state, err := storage.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, state.Theme)
}
