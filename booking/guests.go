package booking

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// GuestCount is the party size. Only adults and children are billable.
type GuestCount struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
	Infants  int `json:"infants"`
}

// Billable returns the number of guests charged per-person rates.
func (g GuestCount) Billable() int { return g.Adults + g.Children }

func AdultID(n int) string { return "adult-" + strconv.Itoa(n) }
func ChildID(n int) string { return "child-" + strconv.Itoa(n) }

// GuestIDs returns the synthesized billable guest identifiers in order:
// adult-1..adult-N followed by child-1..child-M.
func (g GuestCount) GuestIDs() []string {
	ids := make([]string, 0, max(g.Billable(), 0))
	for i := 1; i <= g.Adults; i++ {
		ids = append(ids, AdultID(i))
	}
	for i := 1; i <= g.Children; i++ {
		ids = append(ids, ChildID(i))
	}
	return ids
}

// HasGuest reports whether id names one of the party's billable guests. Only
// the canonical form is accepted: "adult-01" and "adult-+1" are not adult-1.
func (g GuestCount) HasGuest(id string) bool {
	var (
		prefix string
		limit  int
		format func(int) string
	)
	switch {
	case strings.HasPrefix(id, "adult-"):
		prefix, limit, format = "adult-", g.Adults, AdultID
	case strings.HasPrefix(id, "child-"):
		prefix, limit, format = "child-", g.Children, ChildID
	default:
		return false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, prefix))
	if err != nil || format(n) != id {
		return false
	}
	return n >= 1 && n <= limit
}

// MaxPartySize caps each guest category of one booking.
const MaxPartySize = 50

// MaxActivityDays is the most activity-days one guest can book: one fewer
// than the nights of the whole trip, never negative.
func MaxActivityDays(totalNights int) int {
	if totalNights <= 1 {
		return 0
	}
	return totalNights - 1
}

// GuestActivity is one guest's activity choice. An empty ActivityID falls back
// to the booking's default package.
type GuestActivity struct {
	ActivityID string `json:"activityId,omitempty"`
	Days       int    `json:"days"`
}

// UnmarshalJSON also accepts a bare number of days.
func (ga *GuestActivity) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] != '{' && trimmed[0] != 'n' {
		var days int
		if err := json.Unmarshal(trimmed, &days); err != nil {
			return fmt.Errorf("activity days: %w", err)
		}
		*ga = GuestActivity{Days: days}
		return nil
	}
	type plain GuestActivity
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*ga = GuestActivity(p)
	return nil
}

// ActivityAllocation maps guest identifiers to their activity choice.
type ActivityAllocation map[string]GuestActivity

// GuestIDs returns the allocated guest identifiers sorted for stable output.
func (a ActivityAllocation) GuestIDs() []string {
	ids := make([]string, 0, len(a))
	for id := range a {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// TotalDays sums every guest's activity-days.
func (a ActivityAllocation) TotalDays() int {
	total := 0
	for _, ga := range a {
		total += ga.Days
	}
	return total
}

// Prune returns a copy without entries for guests outside g. Entries for
// remaining guests are kept unchanged.
func (a ActivityAllocation) Prune(g GuestCount) ActivityAllocation {
	if a == nil {
		return nil
	}
	out := make(ActivityAllocation, len(a))
	for id, ga := range a {
		if g.HasGuest(id) {
			out[id] = ga
		}
	}
	return out
}

// Clone returns an independent copy.
func (a ActivityAllocation) Clone() ActivityAllocation {
	if a == nil {
		return nil
	}
	out := make(ActivityAllocation, len(a))
	for id, ga := range a {
		out[id] = ga
	}
	return out
}

// DefaultAllocation books every billable guest for the maximum activity-days
// on the default package.
func DefaultAllocation(g GuestCount, totalNights int) ActivityAllocation {
	days := MaxActivityDays(totalNights)
	out := make(ActivityAllocation, g.Billable())
	for _, id := range g.GuestIDs() {
		out[id] = GuestActivity{Days: days}
	}
	return out
}
