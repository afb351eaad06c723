package userdata

// Project returns a new record holding only the listed keys that are present
// in rec. Keys absent from rec stay absent in the result rather than being
// filled with nil.
func Project(rec Record, keys []string) Record {
	out := make(Record, len(keys))
	for _, key := range keys {
		if value, ok := rec[key]; ok {
			out[key] = value
		}
	}
	return out
}

// FormatUser shapes a user record for an API response: only id, username,
// email, createdAt and updatedAt survive. Nested sections and any other
// caller-supplied keys are dropped.
func FormatUser(rec Record) Record {
	return Project(rec, responseFields)
}
