package api

import (
	"net/url"
	"strings"
)

// queryParams is an ordered key/value accumulator. url.Values cannot serve
// here: its Encode sorts keys alphabetically, and the endpoints' canonical
// parameter order is positional.
type queryParams struct {
	pairs [][2]string
}

func (q *queryParams) add(key, value string) {
	q.pairs = append(q.pairs, [2]string{key, value})
}

// Encode serialises the parameters in insertion order using standard URL
// form-encoding.
func (q *queryParams) Encode() string {
	var b strings.Builder
	for i, pair := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(pair[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(pair[1]))
	}
	return b.String()
}
