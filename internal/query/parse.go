package query

import (
	"strings"

	"github.com/roach88/ctsq/internal/params"
)

var urlUnescaper = strings.NewReplacer("%22", `"`, "%2C", ",")

// Parse parses query text into one of the four query variants.
//
// Examples:
//
//	webgpu:*                          FileWildcard, whole suite
//	webgpu:api,operation,*            FileWildcard
//	webgpu:api,operation:*            TestWildcard, whole file
//	webgpu:api,operation:buffer,*     TestWildcard
//	webgpu:api,operation:buffer:*     CaseWildcard, every case
//	webgpu:api,operation:buffer:x=1;* CaseWildcard
//	webgpu:api,operation:buffer:x=1   Single
//
// Returns a *ParseError describing the first problem found.
func Parse(s string) (Query, error) {
	q, err := parse(urlUnescaper.Replace(s))
	if err != nil {
		if pe, ok := err.(*ParseError); ok && pe.Input == "" {
			pe.Input = s
		}
		return nil, err
	}
	return q, nil
}

// MustParse is like Parse but panics on error.
// Use only in tests or when s is known to be valid.
func MustParse(s string) Query {
	q, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return q
}

func parse(s string) (Query, error) {
	big := strings.SplitN(s, BigSeparator, 4)
	if len(big) < 2 {
		return nil, newError(ErrCodeSyntax, "query must contain at least one %q", BigSeparator)
	}
	suite := big[0]

	file, fileWild, err := splitPath(big[1])
	if err != nil {
		return nil, err
	}
	if len(big) == 2 {
		if !fileWild {
			return nil, newError(ErrCodeWildcard, "file path must end with a wildcard when no test path is given")
		}
		return NewFileWildcard(suite, file...)
	}
	if fileWild {
		return nil, newError(ErrCodeWildcard, "wildcard is only allowed in the last part of a query")
	}

	test, testWild, err := splitPath(big[2])
	if err != nil {
		return nil, err
	}
	if len(big) == 3 {
		if !testWild {
			return nil, newError(ErrCodeWildcard, "test path must end with a wildcard when no params are given")
		}
		return NewTestWildcard(suite, file, test)
	}
	if testWild {
		return nil, newError(ErrCodeWildcard, "wildcard is only allowed in the last part of a query")
	}

	p, caseWild, err := parseParams(big[3])
	if err != nil {
		return nil, err
	}
	if caseWild {
		return NewCaseWildcard(suite, file, test, p)
	}
	return NewSingle(suite, file, test, p)
}

// splitPath splits a file or test path and strips a trailing wildcard.
func splitPath(s string) ([]string, bool, error) {
	if s == "" {
		return nil, false, nil
	}
	parts := strings.Split(s, PathSeparator)
	last := len(parts) - 1
	for i, part := range parts {
		if i == last && part == Wildcard {
			return parts[:last], true, nil
		}
		if strings.Contains(part, Wildcard) {
			return nil, false, newError(ErrCodeWildcard, "wildcard must be the complete last part of a path (was %q)", s)
		}
	}
	return parts, false, nil
}

// parseParams parses "k=v;k2=v2" with an optional trailing ";*".
func parseParams(s string) (params.Params, bool, error) {
	p := params.Params{}
	if s == "" {
		return p, false, nil
	}

	parts := splitParamParts(s)
	last := len(parts) - 1
	wild := false
	for i, part := range parts {
		if part == Wildcard {
			if i != last {
				return nil, false, newError(ErrCodeWildcard, "wildcard must be the complete last part of the params (was %q)", s)
			}
			wild = true
			continue
		}
		k, v, err := parseParam(part)
		if err != nil {
			return nil, false, err
		}
		if _, dup := p[k]; dup {
			return nil, false, newError(ErrCodeParam, "duplicate param key %q", k)
		}
		p[k] = v
	}
	return p, wild, nil
}

// splitParamParts splits on ';' outside of JSON strings.
func splitParamParts(s string) []string {
	var parts []string
	start := 0
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == ParamSeparator[0]:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func parseParam(part string) (string, params.Value, error) {
	if part == "" {
		return "", nil, newError(ErrCodeParam, "param must not be blank (is there a trailing %q?)", ParamSeparator)
	}
	k, text, ok := strings.Cut(part, ParamKVSep)
	if !ok {
		return "", nil, newError(ErrCodeParam, "param %q must be of the form key=value", part)
	}
	if !isValidParamKey(k) {
		return "", nil, newError(ErrCodeParam, "param key %q must match [a-zA-Z0-9_]+", k)
	}
	v, err := params.Parse(text)
	if err != nil {
		return "", nil, newError(ErrCodeParam, "param %q: %v", k, err)
	}
	return k, v, nil
}
