package app

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
	"github.com/jsamuelsen11/listsync/internal/validation"
	"github.com/jsamuelsen11/listsync/mocks"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)

const validListJSON = `{
	"name": "New list",
	"permission_reminder": "You signed up for updates on our website",
	"email_type_option": false,
	"contact": {
		"company": "Doe Ltd.",
		"address1": "DoeStreet 1",
		"city": "Doesy",
		"state": "Doedoe",
		"zip": "1672-12",
		"country": "US"
	},
	"campaign_defaults": {
		"from_name": "John Doe",
		"from_email": "john@doe.com",
		"subject": "My new campaign!",
		"language": "US"
	},
	"visibility": "prv"
}`

const validMemberJSON = `{"email_address":"test3@gerrit.com.au","status":"subscribed","vip":false}`

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func mustPayload(t *testing.T, s string) domain.Payload {
	t.Helper()
	p, err := domain.ParsePayload([]byte(s))
	require.NoError(t, err)
	return p
}

func strPtr(s string) *string { return &s }

// sequentialIDs returns a generator yielding prefix-1, prefix-2, ...
func sequentialIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return prefix + "-" + strconv.FormatInt(n.Add(1), 10)
	}
}

func testOptions() []Option {
	return []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(sequentialIDs("id")),
	}
}

// storedList is a synced list as the store would return it.
func storedList(t *testing.T, id string, remoteID *string) *list.List {
	t.Helper()
	return &list.List{
		ID:        id,
		RemoteID:  remoteID,
		Fields:    mustPayload(t, validListJSON),
		CreatedAt: fixedNow.Add(-time.Hour),
		UpdatedAt: fixedNow.Add(-time.Hour),
	}
}

// storedMember is a member of listID as the store would return it.
func storedMember(t *testing.T, id, listID string) *member.Member {
	t.Helper()
	m := member.New(nil)
	m.Accept(mustPayload(t, validMemberJSON))
	m.Assign(id, listID, fixedNow.Add(-time.Hour))
	m.UniqueEmailID = strPtr("u-" + id)
	return m
}

func remoteJSON(t *testing.T, v any) domain.RemoteFields {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}

type listFixture struct {
	lists   *mocks.MockListStore
	members *mocks.MockMemberStore
	remote  *mocks.MockRemoteGateway
	svc     *ListService
}

func newListFixture(t *testing.T, opts ...Option) listFixture {
	t.Helper()
	f := listFixture{
		lists:   mocks.NewMockListStore(t),
		members: mocks.NewMockMemberStore(t),
		remote:  mocks.NewMockRemoteGateway(t),
	}
	f.svc = NewListService(f.lists, f.members, f.remote, validation.NewGate(), discardLogger(),
		append(testOptions(), opts...)...)
	return f
}

type memberFixture struct {
	lists   *mocks.MockListStore
	members *mocks.MockMemberStore
	remote  *mocks.MockRemoteGateway
	svc     *MemberService
}

func newMemberFixture(t *testing.T, opts ...Option) memberFixture {
	t.Helper()
	f := memberFixture{
		lists:   mocks.NewMockListStore(t),
		members: mocks.NewMockMemberStore(t),
		remote:  mocks.NewMockRemoteGateway(t),
	}
	f.svc = NewMemberService(f.lists, f.members, f.remote, validation.NewGate(), discardLogger(),
		append(testOptions(), opts...)...)
	return f
}
