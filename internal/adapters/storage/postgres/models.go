package postgres

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
)

// listRow maps to the lists table. Payload columns are json, not jsonb:
// jsonb reorders object keys, and stored bags must come back byte for byte.
type listRow struct {
	ID        string          `gorm:"primaryKey;type:varchar(64)"`
	RemoteID  *string         `gorm:"type:varchar(64)"`
	Fields    json.RawMessage `gorm:"type:json;not null"`
	CreatedAt time.Time       `gorm:"not null;index"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName overrides the gorm default.
func (listRow) TableName() string { return "lists" }

// memberRow maps to the members table.
type memberRow struct {
	ID            string          `gorm:"primaryKey;type:varchar(64)"`
	ListID        string          `gorm:"type:varchar(64);not null;index:idx_members_list_created"`
	EmailID       string          `gorm:"type:char(32);not null;index"`
	UniqueEmailID *string         `gorm:"type:varchar(64)"`
	Fields        json.RawMessage `gorm:"type:json;not null"`
	Remote        json.RawMessage `gorm:"type:json"`
	CreatedAt     time.Time       `gorm:"not null;index:idx_members_list_created"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName overrides the gorm default.
func (memberRow) TableName() string { return "members" }

func listRowFromDomain(l *list.List) (*listRow, error) {
	fields, err := encodePayload(l.Fields)
	if err != nil {
		return nil, fmt.Errorf("encoding list %s: %w", l.ID, err)
	}
	return &listRow{
		ID:        l.ID,
		RemoteID:  l.RemoteID,
		Fields:    fields,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}, nil
}

func (r *listRow) toDomain() (*list.List, error) {
	fields, err := decodePayload(r.Fields)
	if err != nil {
		return nil, fmt.Errorf("decoding list %s: %w", r.ID, err)
	}
	return &list.List{
		ID:        r.ID,
		RemoteID:  r.RemoteID,
		Fields:    fields,
		CreatedAt: r.CreatedAt.UTC(),
		UpdatedAt: r.UpdatedAt.UTC(),
	}, nil
}

func memberRowFromDomain(m *member.Member) (*memberRow, error) {
	fields, err := encodePayload(m.Fields)
	if err != nil {
		return nil, fmt.Errorf("encoding member %s: %w", m.ID, err)
	}
	var remote json.RawMessage
	if len(m.Remote) > 0 {
		if remote, err = encodePayload(m.Remote); err != nil {
			return nil, fmt.Errorf("encoding member %s: %w", m.ID, err)
		}
	}
	return &memberRow{
		ID:            m.ID,
		ListID:        m.ListID,
		EmailID:       m.EmailID,
		UniqueEmailID: m.UniqueEmailID,
		Fields:        fields,
		Remote:        remote,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

func (r *memberRow) toDomain() (*member.Member, error) {
	fields, err := decodePayload(r.Fields)
	if err != nil {
		return nil, fmt.Errorf("decoding member %s: %w", r.ID, err)
	}
	var remote domain.Payload
	if len(r.Remote) > 0 {
		if remote, err = decodePayload(r.Remote); err != nil {
			return nil, fmt.Errorf("decoding member %s: %w", r.ID, err)
		}
	}
	return &member.Member{
		ID:            r.ID,
		ListID:        r.ListID,
		EmailID:       r.EmailID,
		UniqueEmailID: r.UniqueEmailID,
		Fields:        fields,
		Remote:        remote,
		CreatedAt:     r.CreatedAt.UTC(),
		UpdatedAt:     r.UpdatedAt.UTC(),
	}, nil
}

func encodePayload(p domain.Payload) (json.RawMessage, error) {
	if p == nil {
		return json.RawMessage(`{}`), nil
	}
	return json.Marshal(p)
}

func decodePayload(raw json.RawMessage) (domain.Payload, error) {
	return domain.ParsePayload(raw)
}
