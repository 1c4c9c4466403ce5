// Package bolt implements the local list and member stores on an embedded
// bbolt database. Records are stored as JSON documents keyed by local id;
// members are additionally indexed by owning list.
package bolt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
	"github.com/jsamuelsen11/listsync/internal/platform/config"
	"github.com/jsamuelsen11/listsync/internal/ports"
)

var (
	bucketLists         = []byte("lists")
	bucketMembers       = []byte("members")
	bucketMembersByList = []byte("members_by_list")
)

// indexSep separates list id and member id in index keys.
const indexSep = 0x00

var errMissingBucket = errors.New("bucket missing")

var (
	_ ports.ListStore     = (*Store)(nil)
	_ ports.MemberStore   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

// Store is a bbolt-backed implementation of ports.ListStore and
// ports.MemberStore.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the database file described by cfg.
func Open(cfg config.BoltConfig) (*bolt.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("creating bolt directory %s: %w", dir, err)
		}
	}

	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: cfg.Timeout})
	if err != nil {
		return nil, fmt.Errorf("opening bolt database %s: %w", cfg.Path, err)
	}
	return db, nil
}

// Migrate creates the buckets the store needs. Safe to run repeatedly.
func Migrate(db *bolt.DB) error {
	err := db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketLists, bucketMembers, bucketMembersByList} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("bucket %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("creating buckets: %w", err)
	}
	return nil
}

// New creates a Store on db, creating buckets if they do not exist.
func New(db *bolt.DB) (*Store, error) {
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "bolt"
}

// HealthCheck verifies the buckets are readable.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketLists, bucketMembers, bucketMembersByList} {
			if tx.Bucket(name) == nil {
				return fmt.Errorf("%s: %w", name, errMissingBucket)
			}
		}
		return nil
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// --- List operations ---

// FindList returns the list with the given id, or nil, nil when absent.
func (s *Store) FindList(ctx context.Context, id string) (*list.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *list.List
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucketLists).Get([]byte(id))
		if data == nil {
			return nil
		}
		var doc listDoc
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("decoding list %s: %w", id, err)
		}
		found = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finding list: %w", err)
	}
	return found, nil
}

// ListLists returns every stored list ordered by creation time.
func (s *Store) ListLists(ctx context.Context) ([]list.List, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lists := make([]list.List, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLists).ForEach(func(k, v []byte) error {
			var doc listDoc
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("decoding list %s: %w", k, err)
			}
			lists = append(lists, *doc.toDomain())
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}

	sort.SliceStable(lists, func(i, j int) bool {
		return createdBefore(lists[i].CreatedAt, lists[i].ID, lists[j].CreatedAt, lists[j].ID)
	})
	return lists, nil
}

// PersistList inserts or replaces the list.
func (s *Store) PersistList(ctx context.Context, l *list.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(listFromDomain(l))
	if err != nil {
		return fmt.Errorf("encoding list %s: %w", l.ID, err)
	}

	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLists).Put([]byte(l.ID), data)
	}); err != nil {
		return fmt.Errorf("persisting list: %w", err)
	}
	return nil
}

// RemoveList deletes the list. Members are not touched.
func (s *Store) RemoveList(ctx context.Context, l *list.List) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketLists).Delete([]byte(l.ID))
	}); err != nil {
		return fmt.Errorf("removing list: %w", err)
	}
	return nil
}

// --- Member operations ---

// FindMember returns the member with the given id, or nil, nil when absent.
func (s *Store) FindMember(ctx context.Context, id string) (*member.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var found *member.Member
	err := s.db.View(func(tx *bolt.Tx) error {
		doc, err := getMember(tx, id)
		if err != nil || doc == nil {
			return err
		}
		found = doc.toDomain()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finding member: %w", err)
	}
	return found, nil
}

// FindMembersByList returns the members of a list ordered by creation time.
func (s *Store) FindMembersByList(ctx context.Context, listID string) ([]member.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	members := make([]member.Member, 0)
	prefix := indexPrefix(listID)

	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketMembersByList).Cursor()
		for k, _ := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, _ = c.Next() {
			doc, err := getMember(tx, string(k[len(prefix):]))
			if err != nil {
				return err
			}
			if doc == nil {
				continue
			}
			members = append(members, *doc.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finding members of list %s: %w", listID, err)
	}

	sort.SliceStable(members, func(i, j int) bool {
		return createdBefore(members[i].CreatedAt, members[i].ID, members[j].CreatedAt, members[j].ID)
	})
	return members, nil
}

// PersistMember inserts or replaces the member and keeps the list index in
// step when the owning list changes.
func (s *Store) PersistMember(ctx context.Context, m *member.Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(memberFromDomain(m))
	if err != nil {
		return fmt.Errorf("encoding member %s: %w", m.ID, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		prev, err := getMember(tx, m.ID)
		if err != nil {
			return err
		}
		index := tx.Bucket(bucketMembersByList)
		if prev != nil && prev.ListID != m.ListID {
			if err := index.Delete(indexKey(prev.ListID, m.ID)); err != nil {
				return err
			}
		}
		if err := index.Put(indexKey(m.ListID, m.ID), nil); err != nil {
			return err
		}
		return tx.Bucket(bucketMembers).Put([]byte(m.ID), data)
	})
	if err != nil {
		return fmt.Errorf("persisting member: %w", err)
	}
	return nil
}

// RemoveMember deletes the member and its index entry.
func (s *Store) RemoveMember(ctx context.Context, m *member.Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		prev, err := getMember(tx, m.ID)
		if err != nil {
			return err
		}
		if prev == nil {
			return nil
		}
		if err := tx.Bucket(bucketMembersByList).Delete(indexKey(prev.ListID, m.ID)); err != nil {
			return err
		}
		return tx.Bucket(bucketMembers).Delete([]byte(m.ID))
	})
	if err != nil {
		return fmt.Errorf("removing member: %w", err)
	}
	return nil
}

func getMember(tx *bolt.Tx, id string) (*memberDoc, error) {
	data := tx.Bucket(bucketMembers).Get([]byte(id))
	if data == nil {
		return nil, nil
	}
	var doc memberDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding member %s: %w", id, err)
	}
	return &doc, nil
}

func indexPrefix(listID string) []byte {
	return append([]byte(listID), indexSep)
}

func indexKey(listID, memberID string) []byte {
	return append(indexPrefix(listID), memberID...)
}

func createdBefore(a time.Time, aID string, b time.Time, bID string) bool {
	if a.Equal(b) {
		return aID < bID
	}
	return a.Before(b)
}
