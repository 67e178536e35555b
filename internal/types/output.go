package types

import "strconv"

// Output carries the optional per-call output parameters. All fields are
// optional; unset fields produce no query pair. A nil *Output is valid
// and contributes nothing.
type Output struct {
	// Locale overrides the client locale for this call. It never becomes
	// a query pair; the URL host consumes it.
	Locale *Locale
	// Page selects a result page.
	Page *int
	// PageSize sets the page length.
	PageSize *int
	// Fields is a comma-separated projection of response fields.
	Fields string
	// NoCache asks the server to bypass its cache.
	NoCache *bool
}

// Params serializes the subset of parameters named in allow, in allow
// order. Names missing from the receiver are skipped, duplicate allow
// entries are emitted once, and unknown names are ignored. "locale" is
// not a serializable name.
func (o *Output) Params(allow ...string) Params {
	var out Params
	if o == nil {
		return out
	}
	seen := make(map[string]bool, len(allow))
	for _, name := range allow {
		if seen[name] {
			continue
		}
		seen[name] = true
		switch name {
		case "page":
			if o.Page != nil {
				out.Add("page", strconv.Itoa(*o.Page))
			}
		case "page_size":
			if o.PageSize != nil {
				out.Add("page_size", strconv.Itoa(*o.PageSize))
			}
		case "fields":
			if o.Fields != "" {
				out.Add("fields", o.Fields)
			}
		case "nocache":
			if o.NoCache != nil {
				out.Add("nocache", strconv.FormatBool(*o.NoCache))
			}
		}
	}
	return out
}

// Int returns a pointer to v, for filling optional Output fields inline.
func Int(v int) *int { return &v }

// Bool returns a pointer to v, for filling optional Output fields inline.
func Bool(v bool) *bool { return &v }
