package userdata

// Record is a plain user record as decoded from JSON: string keys, arbitrary values.
type Record = map[string]any

// Field whitelists for the record-producing operations. Output records carry
// only keys listed here, never arbitrary caller-supplied ones.
var (
	responseFields   = []string{"id", "username", "email", "createdAt", "updatedAt"}
	mergeFields      = []string{"role", "active"}
	preferenceFields = []string{"theme", "notifications", "language"}
	metadataFields   = []string{"lastLogin", "loginCount", "createdBy"}
	externalFields   = []string{"id", "name", "email"}
)

// UserStats summarizes a collection of user records.
type UserStats struct {
	Total    int
	Active   int
	Inactive int
	Newest   Record
	Oldest   Record
	ByDomain map[string]int
}

// defaultUser returns a fresh copy of the fixed default record. A new value
// is built on every call so no caller can mutate a shared default.
func defaultUser() Record {
	return Record{
		"role":   "user",
		"active": true,
		"preferences": Record{
			"theme":         "light",
			"notifications": true,
			"language":      "en",
		},
		"metadata": Record{
			"lastLogin":  nil,
			"loginCount": 0,
			"createdBy":  "system",
		},
	}
}
