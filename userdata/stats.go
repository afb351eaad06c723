package userdata

import (
	"errors"
	"log/slog"
	"strings"
	"time"
)

// unknownDomain buckets records whose email yields no usable domain.
const unknownDomain = "unknown"

var errNotTimestamp = errors.New("value is not a timestamp string")

// Stats aggregates activity, recency and per-domain tallies over a sequence
// of user records. It returns nil when users is not an ordered sequence.
//
// A record counts as active when its effective activity timestamp (updatedAt
// when the key is present, otherwise createdAt) lies within cfg.ActiveWindow
// of the current instant. Malformed timestamps are absorbed, never raised:
// such records count as inactive and never win the newest/oldest selection.
// Ties on createdAt go to the first occurrence in input order.
func (s *Service) Stats(users any) *UserStats {
	records, ok := asSequence(users)
	if !ok {
		return nil
	}

	now := s.clock()
	stats := &UserStats{Total: len(records), ByDomain: make(map[string]int)}
	var newestAt, oldestAt time.Time

	for _, elem := range records {
		rec, _ := elem.(map[string]any)

		activity, present := rec["updatedAt"]
		if !present {
			activity = rec["createdAt"]
		}
		if at, err := parseInstant(activity); err == nil && now.Sub(at) <= s.cfg.ActiveWindow {
			stats.Active++
		} else {
			stats.Inactive++
			if err != nil && activity != nil {
				s.logger.Debug("unusable activity timestamp, counting record inactive",
					slog.Any("value", activity))
			}
		}

		if createdAt, err := parseInstant(rec["createdAt"]); err == nil {
			if stats.Newest == nil || createdAt.After(newestAt) {
				stats.Newest, newestAt = rec, createdAt
			}
			if stats.Oldest == nil || createdAt.Before(oldestAt) {
				stats.Oldest, oldestAt = rec, createdAt
			}
		}

		stats.ByDomain[emailDomain(rec["email"])]++
	}
	return stats
}

// asSequence accepts the ordered-sequence shapes callers hand over: raw
// decoded JSON ([]any) or already-shaped records.
func asSequence(v any) ([]any, bool) {
	switch seq := v.(type) {
	case []any:
		return seq, true
	case []Record:
		out := make([]any, len(seq))
		for i, rec := range seq {
			out[i] = rec
		}
		return out, true
	default:
		return nil, false
	}
}

func parseInstant(v any) (time.Time, error) {
	text, ok := v.(string)
	if !ok {
		return time.Time{}, errNotTimestamp
	}
	return time.Parse(time.RFC3339, text)
}

// emailDomain extracts the part after the first @. Missing, empty and @-less
// emails fall into the unknown bucket, as does a blank domain part ("a@"),
// which would otherwise tally under an empty key.
func emailDomain(v any) string {
	email, _ := v.(string)
	if email == "" {
		return unknownDomain
	}
	_, domain, found := strings.Cut(email, "@")
	if !found || domain == "" {
		return unknownDomain
	}
	return domain
}
