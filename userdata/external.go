package userdata

import "time"

// ProcessExternal normalizes externally sourced records. Each element is
// reduced to the id/name/email whitelist, stamped with a processedAt instant
// from the service clock, and given a metadata section restricted to its own
// whitelist (a missing or non-object source metadata reads as empty). Output
// order matches input order. Anything that is not an ordered sequence yields
// an empty result.
func (s *Service) ProcessExternal(data any) []Record {
	records, ok := asSequence(data)
	if !ok {
		return []Record{}
	}
	out := make([]Record, 0, len(records))
	for _, elem := range records {
		src, _ := elem.(map[string]any)
		rec := Project(src, externalFields)
		rec["processedAt"] = s.clock().UTC().Format(time.RFC3339)
		meta, _ := src["metadata"].(map[string]any)
		rec["metadata"] = Project(meta, metadataFields)
		out = append(out, rec)
	}
	return out
}
