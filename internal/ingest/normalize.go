package ingest

import "strings"

// AbsURL turns a possibly-relative link from the dataset into an absolute
// one, resolved against base. Empty input and the literal "nan" left behind
// by spreadsheet exports collapse to "".
func AbsURL(raw, base string) string {
	u := strings.TrimSpace(raw)
	if u == "" || strings.EqualFold(u, "nan") {
		return ""
	}
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	if strings.HasPrefix(u, "//") {
		return "https:" + u
	}
	if strings.HasPrefix(u, "/") {
		return strings.TrimRight(base, "/") + u
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(u, "/")
}
