package member

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/listsync/internal/domain"
)

func TestFingerprint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{name: "lower-case address", email: "test3@gerrit.com.au", want: "c86415db85ff5bf6915fc8c2ee7909fc"},
		{name: "mixed case normalizes", email: "Test3@Gerrit.COM.au", want: "c86415db85ff5bf6915fc8c2ee7909fc"},
		{name: "surrounding space trimmed", email: "  test3@gerrit.com.au \n", want: "c86415db85ff5bf6915fc8c2ee7909fc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Fingerprint(tt.email))
		})
	}
}

func TestMember_Accept(t *testing.T) {
	t.Parallel()

	m := New(domain.Payload{"email_address": json.RawMessage(`"Jane@Example.com"`)})
	assert.Empty(t, m.EmailID)

	m.Accept(m.Fields)
	assert.Equal(t, Fingerprint("jane@example.com"), m.EmailID)
}

func TestMember_MarkSynced(t *testing.T) {
	t.Parallel()

	m := New(domain.Payload{"status": json.RawMessage(`"pending"`)})
	assert.Equal(t, domain.StateLocalOnly, m.State())

	m.MarkSynced(domain.RemoteFields(`{"id":"abc","unique_email_id":"u-1","member_rating":2,"stats":{"avg_open_rate":0}}`))

	require.NotNil(t, m.UniqueEmailID)
	assert.Equal(t, "u-1", *m.UniqueEmailID)
	assert.Equal(t, domain.StateSynced, m.State())
	assert.JSONEq(t, `2`, string(m.Remote["member_rating"]))
	assert.JSONEq(t, `{"avg_open_rate":0}`, string(m.Remote["stats"]))
}

func TestMember_MarkSynced_NoUniqueEmailID(t *testing.T) {
	t.Parallel()

	m := New(domain.Payload{})
	m.MarkSynced(domain.RemoteFields(`{"id":"abc"}`))

	assert.Nil(t, m.UniqueEmailID)
	assert.Equal(t, domain.StateLocalOnly, m.State())
}

func TestMember_ExternalPayload(t *testing.T) {
	t.Parallel()

	m := New(domain.Payload{
		"email_address": json.RawMessage(`"a@b.co"`),
		"status":        json.RawMessage(`"subscribed"`),
		"merge_fields":  json.RawMessage(`{"FNAME":"A","nested":{"k":[1,2]}}`),
		"vip":           json.RawMessage(`null`),
	})
	m.Accept(m.Fields)
	m.Assign("id-1", "list-1", time.Now())

	got := m.ExternalPayload()

	assert.Equal(t, `{"FNAME":"A","nested":{"k":[1,2]}}`, string(got["merge_fields"]))
	assert.NotContains(t, got, "vip")
	assert.NotContains(t, got, "member_id")
	assert.NotContains(t, got, "list_id")
	assert.NotContains(t, got, "email_id")
	assert.Len(t, got, 3)
}

func TestMember_Record(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m := New(domain.Payload{"email_address": json.RawMessage(`"a@b.co"`), "status": json.RawMessage(`"pending"`)})
	m.Accept(m.Fields)
	m.Assign("id-1", "list-1", now)

	data, err := json.Marshal(m.Record())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "id-1", got["member_id"])
	assert.Equal(t, "list-1", got["list_id"])
	assert.Equal(t, Fingerprint("a@b.co"), got["email_id"])
	assert.Nil(t, got["unique_email_id"])
	assert.Equal(t, "local_only", got["sync_state"])
	assert.Equal(t, "a@b.co", got["email_address"])
}

func TestStatus_IsValid(t *testing.T) {
	t.Parallel()

	for _, s := range Statuses() {
		assert.True(t, Status(s).IsValid(), s)
	}
	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("").IsValid())
}
