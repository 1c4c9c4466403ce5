package member

import (
	"crypto/md5" //nolint:gosec // subscriber hash defined by the marketing API
	"encoding/hex"
	"strings"
	"time"

	"github.com/jsamuelsen11/listsync/internal/domain"
)

// Field names accepted by the marketing API for a list member.
const (
	FieldEmailAddress         = "email_address"
	FieldEmailType            = "email_type"
	FieldStatus               = "status"
	FieldStatusIfNew          = "status_if_new"
	FieldMergeFields          = "merge_fields"
	FieldInterests            = "interests"
	FieldLanguage             = "language"
	FieldVIP                  = "vip"
	FieldLocation             = "location"
	FieldMarketingPermissions = "marketing_permissions"
	FieldIPSignup             = "ip_signup"
	FieldTimestampSignup      = "timestamp_signup"
	FieldIPOpt                = "ip_opt"
	FieldTimestampOpt         = "timestamp_opt"
	FieldTags                 = "tags"
)

var externalFields = []string{
	FieldEmailAddress,
	FieldEmailType,
	FieldStatus,
	FieldStatusIfNew,
	FieldMergeFields,
	FieldInterests,
	FieldLanguage,
	FieldVIP,
	FieldLocation,
	FieldMarketingPermissions,
	FieldIPSignup,
	FieldTimestampSignup,
	FieldIPOpt,
	FieldTimestampOpt,
	FieldTags,
}

// remoteFields are owned by the marketing API and copied from its responses.
var remoteFields = []string{
	"stats",
	"member_rating",
	"last_changed",
	"email_client",
	"tags_count",
}

// Member is a subscriber belonging to exactly one List. EmailID is the
// correlation key used in remote paths; ID is the local identity.
// UniqueEmailID is nil until the first successful remote create.
type Member struct {
	ID            string
	ListID        string
	EmailID       string
	UniqueEmailID *string
	Fields        domain.Payload
	Remote        domain.Payload
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Fingerprint returns the subscriber hash of an email address: the hex MD5
// of its trimmed, lower-cased form.
func Fingerprint(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email)))) //nolint:gosec // see import
	return hex.EncodeToString(sum[:])
}

// New constructs an unvalidated member with no identity.
func New(fields domain.Payload) *Member {
	return &Member{Fields: fields.Clone()}
}

// Accept replaces the field set with a payload that passed validation and
// recomputes EmailID from the email address.
func (m *Member) Accept(fields domain.Payload) {
	m.Fields = fields.Clone()
	if email, ok := m.Fields.String(FieldEmailAddress); ok {
		m.EmailID = Fingerprint(email)
	}
}

// Assign gives the member its local identity and owning list.
func (m *Member) Assign(id, listID string, now time.Time) {
	m.ID = id
	m.ListID = listID
	m.CreatedAt = now
	m.UpdatedAt = now
}

// Touch records a local modification.
func (m *Member) Touch(now time.Time) {
	m.UpdatedAt = now
}

// MarkSynced records the identity and read-only fields returned by the
// marketing API.
func (m *Member) MarkSynced(remote domain.RemoteFields) {
	if id := remote.String("unique_email_id"); id != "" {
		m.UniqueEmailID = &id
	}
	m.Refresh(remote)
}

// Refresh copies remote-owned fields from a response without touching
// identity.
func (m *Member) Refresh(remote domain.RemoteFields) {
	collected := remote.Collect(remoteFields)
	if len(collected) == 0 {
		return
	}
	if m.Remote == nil {
		m.Remote = domain.Payload{}
	}
	for k, v := range collected {
		m.Remote[k] = v
	}
}

// State reports whether the member has a confirmed remote counterpart.
func (m *Member) State() domain.SyncState {
	if m.UniqueEmailID != nil {
		return domain.StateSynced
	}
	return domain.StateLocalOnly
}

// ExternalPayload is the field subset sent to the marketing API.
func (m *Member) ExternalPayload() domain.Payload {
	return m.Fields.Project(externalFields)
}

// Record is the full local representation returned to callers.
func (m *Member) Record() map[string]any {
	rec := make(map[string]any, len(m.Fields)+len(m.Remote)+7)
	for k, v := range m.Remote {
		rec[k] = v
	}
	for k, v := range m.Fields {
		rec[k] = v
	}
	rec["member_id"] = m.ID
	rec["list_id"] = m.ListID
	rec["email_id"] = m.EmailID
	rec["unique_email_id"] = m.UniqueEmailID
	rec["sync_state"] = m.State()
	rec["created_at"] = m.CreatedAt
	rec["updated_at"] = m.UpdatedAt
	return rec
}
