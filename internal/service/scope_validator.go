package service

import "slices"

// scopesValid reports whether every requested scope is present in both the
// owned and the active sets. Ownership (granted at account creation) and
// activity (still registered system-wide) diverge independently: a scope can
// be retired after a user was granted it, and a grant can predate the
// scope's registration. Admin provisioning passes the active set as owned,
// since no owner exists yet.
func scopesValid(requested, owned, active []string) bool {
	for _, want := range requested {
		if !slices.Contains(owned, want) || !slices.Contains(active, want) {
			return false
		}
	}
	return true
}
