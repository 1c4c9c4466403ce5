// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/jsamuelsen11/listsync/internal/domain/list"
	"github.com/jsamuelsen11/listsync/internal/domain/member"
)

// Record is the JSON object returned for a single list or member: its
// declared fields plus local identity and sync state.
type Record = map[string]any

// ToListRecords converts stored lists to response records. The result is
// never nil so an empty collection encodes as [].
func ToListRecords(lists []list.List) []Record {
	out := make([]Record, len(lists))
	for i := range lists {
		out[i] = lists[i].Record()
	}
	return out
}

// ToMemberRecords converts stored members to response records.
func ToMemberRecords(members []member.Member) []Record {
	out := make([]Record, len(members))
	for i := range members {
		out[i] = members[i].Record()
	}
	return out
}
