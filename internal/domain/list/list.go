package list

import (
	"time"

	"github.com/jsamuelsen11/listsync/internal/domain"
)

// Field names accepted by the marketing API for a list.
const (
	FieldName                = "name"
	FieldPermissionReminder  = "permission_reminder"
	FieldEmailTypeOption     = "email_type_option"
	FieldContact             = "contact"
	FieldCampaignDefaults    = "campaign_defaults"
	FieldNotifyOnSubscribe   = "notify_on_subscribe"
	FieldNotifyOnUnsubscribe = "notify_on_unsubscribe"
	FieldUseArchiveBar       = "use_archive_bar"
	FieldVisibility          = "visibility"
)

var externalFields = []string{
	FieldName,
	FieldPermissionReminder,
	FieldEmailTypeOption,
	FieldContact,
	FieldCampaignDefaults,
	FieldNotifyOnSubscribe,
	FieldNotifyOnUnsubscribe,
	FieldUseArchiveBar,
	FieldVisibility,
}

// List is a mailing list mirrored locally and in the marketing API.
// RemoteID is nil until the first successful remote create.
type List struct {
	ID        string
	RemoteID  *string
	Fields    domain.Payload
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New constructs an unvalidated list with no identity.
func New(fields domain.Payload) *List {
	return &List{Fields: fields.Clone()}
}

// Accept replaces the field set with a payload that passed validation.
func (l *List) Accept(fields domain.Payload) {
	l.Fields = fields.Clone()
}

// Assign gives the list its local identity.
func (l *List) Assign(id string, now time.Time) {
	l.ID = id
	l.CreatedAt = now
	l.UpdatedAt = now
}

// Touch records a local modification.
func (l *List) Touch(now time.Time) {
	l.UpdatedAt = now
}

// MarkSynced records the identity the marketing API assigned to the list.
func (l *List) MarkSynced(remote domain.RemoteFields) {
	if id := remote.String("id"); id != "" {
		l.RemoteID = &id
	}
}

// State reports whether the list has a confirmed remote counterpart.
func (l *List) State() domain.SyncState {
	if l.RemoteID != nil {
		return domain.StateSynced
	}
	return domain.StateLocalOnly
}

// ExternalPayload is the field subset sent to the marketing API.
func (l *List) ExternalPayload() domain.Payload {
	return l.Fields.Project(externalFields)
}

// Record is the full local representation returned to callers.
func (l *List) Record() map[string]any {
	rec := make(map[string]any, len(l.Fields)+5)
	for k, v := range l.Fields {
		rec[k] = v
	}
	rec["list_id"] = l.ID
	rec["mail_chimp_id"] = l.RemoteID
	rec["sync_state"] = l.State()
	rec["created_at"] = l.CreatedAt
	rec["updated_at"] = l.UpdatedAt
	return rec
}
