package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStore(t *testing.T) *SubscriptionStore {
	t.Helper()
	return Load(filepath.Join(t.TempDir(), "subs.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := testStore(t)
	assert.Empty(t, s.Snapshot())
}

func TestAddTopicCreatesSubscription(t *testing.T) {
	s := testStore(t)

	s.AddTopic(42, "space", []string{"NASA", "rocket"})

	topics := s.Topics(42)
	require.Len(t, topics, 1)
	assert.Equal(t, "space", topics[0].Name)
	assert.Equal(t, []string{"NASA", "rocket"}, topics[0].Keywords)
	assert.False(t, topics[0].AddedAt.IsZero())

	sub, ok := s.Get(42)
	require.True(t, ok)
	assert.True(t, sub.DailyDigest)
	assert.Nil(t, sub.LastDigest)

	// flips the default on
	assert.False(t, s.ToggleDigest(42))
}

func TestTopicsUnknownUser(t *testing.T) {
	s := testStore(t)
	assert.Empty(t, s.Topics(99))
}

func TestRemoveTopicRemovesAllSameNamed(t *testing.T) {
	s := testStore(t)
	s.AddTopic(1, "a", nil)
	s.AddTopic(1, "b", nil)
	s.AddTopic(1, "a", nil)

	removed, err := s.RemoveTopic(1, "a")
	require.NoError(t, err)
	assert.True(t, removed)

	topics := s.Topics(1)
	require.Len(t, topics, 1)
	assert.Equal(t, "b", topics[0].Name)
}

func TestRemoveTopicSignals(t *testing.T) {
	s := testStore(t)

	_, err := s.RemoveTopic(1, "a")
	assert.ErrorIs(t, err, ErrUnknownUser)

	s.AddTopic(1, "a", nil)
	removed, err := s.RemoveTopic(1, "nope")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemoveTopicIsCaseSensitive(t *testing.T) {
	s := testStore(t)
	s.AddTopic(1, "Space", nil)

	removed, err := s.RemoveTopic(1, "space")
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Len(t, s.Topics(1), 1)
}

func TestToggleDigestFreshUser(t *testing.T) {
	s := testStore(t)

	assert.True(t, s.ToggleDigest(7))
	assert.False(t, s.ToggleDigest(7))

	sub, ok := s.Get(7)
	require.True(t, ok)
	assert.False(t, sub.DailyDigest)
}

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.json")

	s := Load(path)
	s.AddTopic(42, "space", []string{"NASA"})
	s.AddTopic(42, "ai", nil)
	s.ToggleDigest(42)
	s.SetLastDigest(42, time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	reloaded := Load(path)

	want := s.Snapshot()
	got := reloaded.Snapshot()
	require.Len(t, got, 1)

	wantJSON, err := json.Marshal(want)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), string(gotJSON))
}

func TestLoadQuarantinesCorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "subs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Load(path)
	assert.Empty(t, s.Snapshot())

	// the corrupt content survives under the backup name
	backup, err := os.ReadFile(path + ".backup")
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(backup))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// the store is usable and persists to the original path again
	s.AddTopic(1, "a", nil)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"name": "a"`)
}

func TestOnDiskFieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subs.json")

	s := Load(path)
	s.AddTopic(5, "space", []string{"NASA"})

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	require.Contains(t, doc, "5")

	sub := doc["5"]
	assert.Contains(t, sub, "topics")
	assert.Contains(t, sub, "daily_digest")
	assert.Contains(t, sub, "last_digest")

	topics := sub["topics"].([]any)
	topic := topics[0].(map[string]any)
	assert.Contains(t, topic, "name")
	assert.Contains(t, topic, "keywords")
	assert.Contains(t, topic, "added_at")
}

func TestSetLastDigest(t *testing.T) {
	s := testStore(t)
	s.AddTopic(7, "ai", nil)

	stamp := time.Now()
	s.SetLastDigest(7, stamp)

	sub, ok := s.Get(7)
	require.True(t, ok)
	require.NotNil(t, sub.LastDigest)
	assert.WithinDuration(t, stamp, *sub.LastDigest, time.Second)
}
