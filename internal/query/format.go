package query

import (
	"strings"

	"github.com/roach88/ctsq/internal/params"
)

// Separators and wildcard of the query text syntax.
const (
	BigSeparator   = ":"
	PathSeparator  = ","
	ParamSeparator = ";"
	ParamKVSep     = "="
	Wildcard       = "*"
)

func (q FileWildcard) String() string {
	return q.Suite + BigSeparator + joinWildcard(q.File, PathSeparator)
}

func (q TestWildcard) String() string {
	return q.Suite + BigSeparator +
		strings.Join(q.File, PathSeparator) + BigSeparator +
		joinWildcard(q.Test, PathSeparator)
}

func (q CaseWildcard) String() string {
	return q.Suite + BigSeparator +
		strings.Join(q.File, PathSeparator) + BigSeparator +
		strings.Join(q.Test, PathSeparator) + BigSeparator +
		joinWildcard(paramParts(q.Params), ParamSeparator)
}

func (q Single) String() string {
	return q.Suite + BigSeparator +
		strings.Join(q.File, PathSeparator) + BigSeparator +
		strings.Join(q.Test, PathSeparator) + BigSeparator +
		strings.Join(paramParts(q.Params), ParamSeparator)
}

func joinWildcard(parts []string, sep string) string {
	if len(parts) == 0 {
		return Wildcard
	}
	return strings.Join(parts, sep) + sep + Wildcard
}

// paramParts renders public params as key=value in RFC 8785 key order.
func paramParts(p params.Params) []string {
	keys := p.PublicKeys()
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ParamKVSep + params.MustFormat(p[k])
	}
	return parts
}
