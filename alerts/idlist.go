package alerts

import "strings"

// JoinIDs renders an id list in the comma-joined form stored in the database.
// Empty elements are dropped.
func JoinIDs(ids []string) string {
	kept := make([]string, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id != "" {
			kept = append(kept, id)
		}
	}
	return strings.Join(kept, ",")
}

// SplitIDs parses a comma-joined id list back into its elements.
// This and JoinIDs are the only places that know the storage encoding.
func SplitIDs(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ContainsAnyID reports whether the stored comma-joined list contains at
// least one of the wanted ids, comparing whole elements. "12" matches
// "3,12,45" but not "123".
func ContainsAnyID(stored string, wanted []string) bool {
	if stored == "" || len(wanted) == 0 {
		return false
	}
	elems := SplitIDs(stored)
	for _, w := range wanted {
		for _, e := range elems {
			if e == w {
				return true
			}
		}
	}
	return false
}
