package bolt

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	bolt "go.etcd.io/bbolt"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
	"github.com/jsamuelsen11/listsync/internal/platform/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := Open(config.BoltConfig{
		Path:    filepath.Join(t.TempDir(), "nested", "test.db"),
		Timeout: time.Second,
	})
	require.NoError(t, err)

	store, err := New(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testList(id string, created time.Time) *list.List {
	remote := "rm-" + id
	return &list.List{
		ID:       id,
		RemoteID: &remote,
		Fields: domain.Payload{
			"name": json.RawMessage(`"List ` + id + `"`),
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func testMember(id, listID string, created time.Time) *member.Member {
	return &member.Member{
		ID:      id,
		ListID:  listID,
		EmailID: member.Fingerprint(id + "@example.com"),
		Fields: domain.Payload{
			"email_address": json.RawMessage(`"` + id + `@example.com"`),
			"status":        json.RawMessage(`"subscribed"`),
		},
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestStore_ListRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	l := testList("l1", now)
	require.NoError(t, store.PersistList(ctx, l))

	got, err := store.FindList(ctx, "l1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "l1", got.ID)
	require.NotNil(t, got.RemoteID)
	assert.Equal(t, "rm-l1", *got.RemoteID)
	name, ok := got.Fields.String("name")
	assert.True(t, ok)
	assert.Equal(t, "List l1", name)
	assert.True(t, now.Equal(got.CreatedAt))
}

func TestStore_FindListAbsent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	got, err := store.FindList(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ListListsOrdered(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.PersistList(ctx, testList("c", base.Add(2*time.Minute))))
	require.NoError(t, store.PersistList(ctx, testList("b", base)))
	require.NoError(t, store.PersistList(ctx, testList("a", base)))

	lists, err := store.ListLists(ctx)
	require.NoError(t, err)
	require.Len(t, lists, 3)
	assert.Equal(t, "a", lists[0].ID)
	assert.Equal(t, "b", lists[1].ID)
	assert.Equal(t, "c", lists[2].ID)
}

func TestStore_ListListsEmpty(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	lists, err := store.ListLists(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, lists)
	assert.Empty(t, lists)
}

func TestStore_PersistListReplaces(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC()

	l := testList("l1", now)
	require.NoError(t, store.PersistList(ctx, l))

	l.Fields["name"] = json.RawMessage(`"Renamed"`)
	l.RemoteID = nil
	require.NoError(t, store.PersistList(ctx, l))

	got, err := store.FindList(ctx, "l1")
	require.NoError(t, err)
	require.NotNil(t, got)
	name, _ := got.Fields.String("name")
	assert.Equal(t, "Renamed", name)
	assert.Nil(t, got.RemoteID)
}

func TestStore_RemoveList(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	l := testList("l1", time.Now().UTC())
	require.NoError(t, store.PersistList(ctx, l))
	require.NoError(t, store.RemoveList(ctx, l))

	got, err := store.FindList(ctx, "l1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_MembersByList(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.PersistMember(ctx, testMember("m2", "l1", base.Add(time.Second))))
	require.NoError(t, store.PersistMember(ctx, testMember("m1", "l1", base)))
	require.NoError(t, store.PersistMember(ctx, testMember("m3", "l2", base)))
	// "l1x" shares a byte prefix with "l1" and must not leak into its results.
	require.NoError(t, store.PersistMember(ctx, testMember("m4", "l1x", base)))

	members, err := store.FindMembersByList(ctx, "l1")
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "m1", members[0].ID)
	assert.Equal(t, "m2", members[1].ID)

	none, err := store.FindMembersByList(ctx, "unknown")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_MemberRoundTrip(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	m := testMember("m1", "l1", time.Now().UTC())
	unique := "u-1"
	m.UniqueEmailID = &unique
	m.Remote = domain.Payload{"member_rating": json.RawMessage(`2`)}
	require.NoError(t, store.PersistMember(ctx, m))

	got, err := store.FindMember(ctx, "m1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "l1", got.ListID)
	assert.Equal(t, m.EmailID, got.EmailID)
	require.NotNil(t, got.UniqueEmailID)
	assert.Equal(t, "u-1", *got.UniqueEmailID)
	assert.JSONEq(t, `2`, string(got.Remote["member_rating"]))

	absent, err := store.FindMember(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestStore_PersistMemberMovesIndex(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	m := testMember("m1", "l1", time.Now().UTC())
	require.NoError(t, store.PersistMember(ctx, m))

	m.ListID = "l2"
	require.NoError(t, store.PersistMember(ctx, m))

	old, err := store.FindMembersByList(ctx, "l1")
	require.NoError(t, err)
	assert.Empty(t, old)

	moved, err := store.FindMembersByList(ctx, "l2")
	require.NoError(t, err)
	require.Len(t, moved, 1)
	assert.Equal(t, "m1", moved[0].ID)
}

func TestStore_RemoveMember(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	m := testMember("m1", "l1", time.Now().UTC())
	require.NoError(t, store.PersistMember(ctx, m))
	require.NoError(t, store.RemoveMember(ctx, m))

	got, err := store.FindMember(ctx, "m1")
	require.NoError(t, err)
	assert.Nil(t, got)

	members, err := store.FindMembersByList(ctx, "l1")
	require.NoError(t, err)
	assert.Empty(t, members)

	// Removing again is a no-op.
	require.NoError(t, store.RemoveMember(ctx, m))
}

func TestStore_CanceledContext(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.FindList(ctx, "l1")
	require.ErrorIs(t, err, context.Canceled)

	err = store.PersistMember(ctx, testMember("m1", "l1", time.Now()))
	require.ErrorIs(t, err, context.Canceled)

	require.ErrorIs(t, store.HealthCheck(ctx), context.Canceled)
}

func TestStore_HealthCheck(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	assert.Equal(t, "bolt", store.Name())
	require.NoError(t, store.HealthCheck(context.Background()))
}

func TestStore_HealthCheckMissingBucket(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	require.NoError(t, store.db.Update(func(tx *bolt.Tx) error {
		return tx.DeleteBucket(bucketMembers)
	}))

	err := store.HealthCheck(context.Background())
	require.ErrorIs(t, err, errMissingBucket)
}

func TestMigrate_Idempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	require.NoError(t, Migrate(store.db))
	require.NoError(t, Migrate(store.db))
}
