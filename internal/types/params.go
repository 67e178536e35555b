package types

import (
	"net/url"
	"strings"
)

// Param is a single query-string pair. Values may be empty; the pair is
// still emitted as "key=".
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query-string pairs. Order is significant:
// pairs are encoded exactly in the order they were appended, which
// url.Values cannot guarantee.
type Params []Param

// Add appends one pair.
func (p *Params) Add(key, value string) {
	*p = append(*p, Param{Key: key, Value: value})
}

// Extend appends all pairs from other, preserving their order.
func (p *Params) Extend(other Params) {
	*p = append(*p, other...)
}

// Encode renders the list as a query string without the leading "?".
// Both keys and values are percent-encoded. An empty list encodes to "".
func (p Params) Encode() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for i, kv := range p {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(kv.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(kv.Value))
	}
	return b.String()
}
