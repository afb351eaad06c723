package userdata

// MergeDefaults overlays the whitelisted parts of userData onto a fresh copy
// of the fixed defaults. Only role and active may be replaced at the top
// level, and each nested section admits only its own whitelist, so no other
// caller-supplied key (__proto__ and friends included) can reach the output
// at any level. Neither userData nor the defaults are mutated.
func MergeDefaults(userData Record) Record {
	out := defaultUser()
	for key, value := range Project(userData, mergeFields) {
		out[key] = value
	}
	mergeSection(out, userData, "preferences", preferenceFields)
	mergeSection(out, userData, "metadata", metadataFields)
	return out
}

// mergeSection overlays the whitelisted keys of userData's named sub-object
// onto the matching default sub-object. A missing or non-object section reads
// as empty.
func mergeSection(out, userData Record, section string, allowed []string) {
	src, _ := userData[section].(map[string]any)
	target := out[section].(Record)
	for key, value := range Project(src, allowed) {
		target[key] = value
	}
}
