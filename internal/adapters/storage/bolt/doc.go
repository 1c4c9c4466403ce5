package bolt

import (
	"time"

	"github.com/jsamuelsen11/listsync/internal/domain"
	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
)

// listDoc is the stored JSON form of a list.
type listDoc struct {
	ID        string         `json:"id"`
	RemoteID  *string        `json:"remote_id"`
	Fields    domain.Payload `json:"fields"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func listFromDomain(l *list.List) listDoc {
	return listDoc{
		ID:        l.ID,
		RemoteID:  l.RemoteID,
		Fields:    l.Fields,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func (d listDoc) toDomain() *list.List {
	fields := d.Fields
	if fields == nil {
		fields = domain.Payload{}
	}
	return &list.List{
		ID:        d.ID,
		RemoteID:  d.RemoteID,
		Fields:    fields,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// memberDoc is the stored JSON form of a member.
type memberDoc struct {
	ID            string         `json:"id"`
	ListID        string         `json:"list_id"`
	EmailID       string         `json:"email_id"`
	UniqueEmailID *string        `json:"unique_email_id"`
	Fields        domain.Payload `json:"fields"`
	Remote        domain.Payload `json:"remote,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

func memberFromDomain(m *member.Member) memberDoc {
	return memberDoc{
		ID:            m.ID,
		ListID:        m.ListID,
		EmailID:       m.EmailID,
		UniqueEmailID: m.UniqueEmailID,
		Fields:        m.Fields,
		Remote:        m.Remote,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (d memberDoc) toDomain() *member.Member {
	fields := d.Fields
	if fields == nil {
		fields = domain.Payload{}
	}
	return &member.Member{
		ID:            d.ID,
		ListID:        d.ListID,
		EmailID:       d.EmailID,
		UniqueEmailID: d.UniqueEmailID,
		Fields:        fields,
		Remote:        d.Remote,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
