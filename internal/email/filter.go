package email

import "strings"

// Filters narrows a listing by folder and/or account. A zero value on either
// axis means no constraint on that axis.
type Filters struct {
	Folder  string
	Account string
}

// IsZero reports whether no filter axis is set.
func (f Filters) IsZero() bool {
	return f.Folder == "" && f.Account == ""
}

// Filter returns the ordered subset of records matching the query and
// filters. Folder and account are exact, case-sensitive matches; the query is
// trimmed, case-folded and matched as a substring of subject, body, from or
// to. The result preserves the relative order of the input and shares no
// backing array with it. Pure: identical inputs always yield identical output.
func Filter(records []Email, query string, filters Filters) []Email {
	out := make([]Email, 0, len(records))
	out = append(out, records...)

	if filters.Folder != "" {
		out = retain(out, func(e Email) bool { return e.Folder == filters.Folder })
	}
	if filters.Account != "" {
		out = retain(out, func(e Email) bool { return e.AccountID == filters.Account })
	}

	if q := strings.TrimSpace(query); q != "" {
		q = strings.ToLower(q)
		out = retain(out, func(e Email) bool {
			return strings.Contains(strings.ToLower(e.Subject), q) ||
				strings.Contains(strings.ToLower(e.Body), q) ||
				strings.Contains(strings.ToLower(e.From), q) ||
				strings.Contains(strings.ToLower(e.To), q)
		})
	}

	return out
}

// retain filters in place, keeping relative order.
func retain(records []Email, keep func(Email) bool) []Email {
	kept := records[:0]
	for _, e := range records {
		if keep(e) {
			kept = append(kept, e)
		}
	}
	return kept
}
