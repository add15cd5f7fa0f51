package listing

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"
)

// Load reads a listing file, choosing the decoder by extension:
// .yaml, .yml and .json are read as YAML, .cue as CUE.
func Load(path string) (*Listing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeRead, Path: path, Message: err.Error(), Err: err}
	}

	var l *Listing
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		l, err = DecodeYAML(data)
	case ".cue":
		l, err = DecodeCUE(data, path)
	default:
		return nil, &LoadError{Code: ErrCodeFormat, Path: path, Message: fmt.Sprintf("unsupported listing extension %q", ext)}
	}
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) && le.Path == "" {
			le.Path = path
		}
		return nil, err
	}

	slog.Debug("loaded listing", "path", path, "suite", l.Suite, "files", len(l.Files))
	return l, nil
}

// DecodeYAML decodes a YAML (or JSON) listing. Unknown fields are
// rejected.
func DecodeYAML(data []byte) (*Listing, error) {
	var l Listing
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{Code: ErrCodeDecode, Message: "empty listing"}
		}
		return nil, &LoadError{Code: ErrCodeDecode, Message: fmt.Sprintf("parsing YAML: %v", err), Err: err}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// DecodeCUE evaluates a CUE listing. The value must be concrete.
// filename is used in error positions.
func DecodeCUE(data []byte, filename string) (*Listing, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueLoadError("compiling CUE", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError("validating CUE", err)
	}

	// Round-trip through JSON so numbers arrive as json.Number.
	raw, err := v.MarshalJSON()
	if err != nil {
		return nil, cueLoadError("exporting CUE", err)
	}
	var l Listing
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		return nil, &LoadError{Code: ErrCodeDecode, Message: fmt.Sprintf("decoding CUE value: %v", err), Err: err}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

func cueLoadError(what string, err error) *LoadError {
	le := &LoadError{Code: ErrCodeDecode, Message: fmt.Sprintf("%s: %v", what, err), Err: err}

	// Report the first error that carries a position.
	for _, e := range cueerrors.Errors(err) {
		if positions := cueerrors.Positions(e); len(positions) > 0 {
			le.Pos = positions[0]
			le.Message = fmt.Sprintf("%s: %s", what, e.Error())
			break
		}
	}
	return le
}
