// Package storage persists user subscriptions as a single flat JSON
// document keyed by user ID. The whole document is rewritten on every
// mutation; the file on disk is never the authority while the process is
// alive, so write failures are logged and tolerated.
package storage

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/snchkv/newswatcher/internal/model"
)

// ErrUnknownUser is returned by RemoveTopic when the user has no
// subscription at all, as opposed to having one without the named topic.
var ErrUnknownUser = errors.New("user has no subscription")

type SubscriptionStore struct {
	mu   sync.RWMutex
	path string
	data map[model.UserID]model.Subscription
}

// Load reads the subscription document at path. A missing file yields an
// empty store. An unparseable file is quarantined: renamed to path+".backup"
// so the corrupt content is never silently overwritten, and the process
// continues with empty state. Load never fails the caller.
func Load(path string) *SubscriptionStore {
	s := &SubscriptionStore{
		path: path,
		data: make(map[model.UserID]model.Subscription),
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		log.Printf("[INFO] subscription file %s not found, starting empty", path)
		return s
	}
	if err != nil {
		log.Printf("[ERROR] failed to read subscription file %s: %v", path, err)
		return s
	}

	parsed := make(map[string]model.Subscription)
	if err := json.Unmarshal(raw, &parsed); err != nil {
		backup := path + ".backup"
		if renameErr := os.Rename(path, backup); renameErr != nil {
			log.Printf("[ERROR] failed to quarantine corrupt file %s: %v", path, renameErr)
		} else {
			log.Printf("[ERROR] subscription file %s is corrupt (%v), moved to %s", path, err, backup)
		}
		return s
	}

	for key, sub := range parsed {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			log.Printf("[ERROR] skipping non-numeric user key %q in %s", key, path)
			continue
		}
		s.data[model.UserID(id)] = sub
	}

	log.Printf("[INFO] loaded subscriptions for %d users from %s", len(s.data), path)
	return s
}

// save serializes the full store through a temp file and rename so a crash
// mid-write cannot corrupt the previously-good document. Callers hold the
// lock.
func (s *SubscriptionStore) save() error {
	doc := make(map[string]model.Subscription, len(s.data))
	for id, sub := range s.data {
		doc[strconv.FormatInt(int64(id), 10)] = sub
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *SubscriptionStore) persist() {
	if err := s.save(); err != nil {
		log.Printf("[ERROR] failed to persist subscriptions to %s: %v", s.path, err)
	}
}

// AddTopic appends a topic to the user's subscription, creating the
// subscription with daily digests enabled if it does not exist yet.
// Same-named topics are not merged; duplicates are allowed.
func (s *SubscriptionStore) AddTopic(user model.UserID, name string, keywords []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if keywords == nil {
		keywords = []string{}
	}

	sub, ok := s.data[user]
	if !ok {
		sub = model.Subscription{DailyDigest: true}
	}
	sub.Topics = append(sub.Topics, model.Topic{
		Name:     name,
		Keywords: keywords,
		AddedAt:  time.Now(),
	})
	s.data[user] = sub

	s.persist()
}

// RemoveTopic removes every topic whose name exactly equals name. It
// returns ErrUnknownUser when the user has no subscription; otherwise the
// boolean reports whether at least one topic was removed.
func (s *SubscriptionStore) RemoveTopic(user model.UserID, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.data[user]
	if !ok {
		return false, ErrUnknownUser
	}

	kept := sub.Topics[:0:0]
	for _, t := range sub.Topics {
		if t.Name != name {
			kept = append(kept, t)
		}
	}
	removed := len(kept) != len(sub.Topics)

	sub.Topics = kept
	s.data[user] = sub
	s.persist()

	return removed, nil
}

// Topics returns the user's topics in stored order, or an empty slice for
// unknown users.
func (s *SubscriptionStore) Topics(user model.UserID) []model.Topic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.data[user]
	if !ok {
		return nil
	}
	out := make([]model.Topic, len(sub.Topics))
	copy(out, sub.Topics)
	return out
}

// Get returns the user's subscription and whether one exists.
func (s *SubscriptionStore) Get(user model.UserID) (model.Subscription, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.data[user]
	return sub, ok
}

// ToggleDigest flips the daily digest preference and returns the new value.
// For a user without a subscription the toggle is the enabling act: the
// subscription is created with digests on and true is returned.
func (s *SubscriptionStore) ToggleDigest(user model.UserID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.data[user]
	if !ok {
		sub = model.Subscription{DailyDigest: true}
	} else {
		sub.DailyDigest = !sub.DailyDigest
	}
	s.data[user] = sub
	s.persist()

	return sub.DailyDigest
}

// SetLastDigest stamps the time of the user's last completed digest run.
func (s *SubscriptionStore) SetLastDigest(user model.UserID, t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.data[user]
	if !ok {
		return
	}
	sub.LastDigest = &t
	s.data[user] = sub
	s.persist()
}

// Snapshot returns a copy of all subscriptions for batch iteration.
func (s *SubscriptionStore) Snapshot() map[model.UserID]model.Subscription {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[model.UserID]model.Subscription, len(s.data))
	for id, sub := range s.data {
		topics := make([]model.Topic, len(sub.Topics))
		copy(topics, sub.Topics)
		sub.Topics = topics
		out[id] = sub
	}
	return out
}
