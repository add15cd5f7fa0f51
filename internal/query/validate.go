package query

import (
	"slices"
	"strings"

	"github.com/roach88/ctsq/internal/params"
)

// reservedChars may not appear in a suite name or path segment.
const reservedChars = ":,;=*"

// NewFileWildcard builds a query addressing every file under file.
func NewFileWildcard(suite string, file ...string) (FileWildcard, error) {
	if err := validateSuite(suite); err != nil {
		return FileWildcard{}, err
	}
	if err := validatePath("file", file); err != nil {
		return FileWildcard{}, err
	}
	return FileWildcard{Suite: suite, File: clonePath(file)}, nil
}

// NewTestWildcard builds a query addressing every test under test in file.
// The file path must not be empty.
func NewTestWildcard(suite string, file, test []string) (TestWildcard, error) {
	if err := validateFileLevel(suite, file); err != nil {
		return TestWildcard{}, err
	}
	if err := validatePath("test", test); err != nil {
		return TestWildcard{}, err
	}
	return TestWildcard{Suite: suite, File: clonePath(file), Test: clonePath(test)}, nil
}

// NewCaseWildcard builds a query addressing every case of a test whose
// params include p. Neither path may be empty.
func NewCaseWildcard(suite string, file, test []string, p params.Params) (CaseWildcard, error) {
	if err := validateTestLevel(suite, file, test); err != nil {
		return CaseWildcard{}, err
	}
	if err := validateParams(p); err != nil {
		return CaseWildcard{}, err
	}
	return CaseWildcard{Suite: suite, File: clonePath(file), Test: clonePath(test), Params: cloneParams(p)}, nil
}

// NewSingle builds a query addressing exactly one case.
// Neither path may be empty.
func NewSingle(suite string, file, test []string, p params.Params) (Single, error) {
	if err := validateTestLevel(suite, file, test); err != nil {
		return Single{}, err
	}
	if err := validateParams(p); err != nil {
		return Single{}, err
	}
	return Single{Suite: suite, File: clonePath(file), Test: clonePath(test), Params: cloneParams(p)}, nil
}

func validateFileLevel(suite string, file []string) error {
	if err := validateSuite(suite); err != nil {
		return err
	}
	if len(file) == 0 {
		return newError(ErrCodeEmptyPath, "file path must not be empty below the file level")
	}
	return validatePath("file", file)
}

func validateTestLevel(suite string, file, test []string) error {
	if err := validateFileLevel(suite, file); err != nil {
		return err
	}
	if len(test) == 0 {
		return newError(ErrCodeEmptyPath, "test path must not be empty below the test level")
	}
	return validatePath("test", test)
}

func validateSuite(suite string) error {
	if !isValidPart(suite) {
		return newError(ErrCodeInvalidPart, "suite name %q must be non-empty and must not contain any of %q", suite, reservedChars)
	}
	return nil
}

func validatePath(kind string, path []string) error {
	for i, seg := range path {
		if !isValidPart(seg) {
			return newError(ErrCodeInvalidPart, "%s path segment %d (%q) must be non-empty and must not contain any of %q", kind, i, seg, reservedChars)
		}
	}
	return nil
}

func validateParams(p params.Params) error {
	for k, v := range p {
		if !isValidParamKey(k) {
			return newError(ErrCodeParam, "param key %q must match [a-zA-Z0-9_]+", k)
		}
		if v == nil {
			return newError(ErrCodeParam, "param %q has no value", k)
		}
		if _, err := params.Format(v); err != nil {
			return newError(ErrCodeParam, "param %q: %v", k, err)
		}
	}
	return nil
}

func isValidPart(s string) bool {
	return s != "" && !strings.ContainsAny(s, reservedChars)
}

func isValidParamKey(k string) bool {
	if k == "" {
		return false
	}
	for _, r := range k {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return true
}

func cloneParams(p params.Params) params.Params {
	if p == nil {
		return params.Params{}
	}
	return p.Clone()
}

// clonePath copies a path so callers cannot alias it. Empty paths become nil.
func clonePath(path []string) []string {
	if len(path) == 0 {
		return nil
	}
	return slices.Clone(path)
}
