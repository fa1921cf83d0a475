// Package spec decodes manipulator specifications from YAML, TOML or JSON.
package spec

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/seitarof/gen-manipulator/internal/errors"
)

// Loader reads one specification file.
type Loader interface {
	Load(path string) (*Manipulator, error)
}

// Format is a spec file encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Extensions lists the file extensions the loader recognises.
var Extensions = []string{".yaml", ".yml", ".toml", ".json"}

type loaderImpl struct {
	fs afero.Fs
}

// NewLoader creates a loader reading from fs.
func NewLoader(fs afero.Fs) Loader {
	return &loaderImpl{fs: fs}
}

func (l *loaderImpl) Load(path string) (*Manipulator, error) {
	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "read %s", path), errors.ErrSpecLoad)
	}

	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}

	m, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return m, nil
}

// FormatFor picks the decoder for path by extension. Unknown extensions
// decode as YAML, which also accepts JSON documents.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	case ".conf", ".hocon":
		err := errors.Newf("%s: HOCON specs are not supported", path)
		err = errors.WithHint(err, "convert the file to YAML: the keys stay the same")
		return "", errors.Mark(err, errors.ErrSpecLoad)
	default:
		return FormatYAML, nil
	}
}

// Parse decodes data in the given format. Unknown keys are rejected.
func Parse(data []byte, format Format) (*Manipulator, error) {
	var (
		m   Manipulator
		err error
	)

	switch format {
	case FormatTOML:
		err = decodeTOML(data, &m)
	case FormatJSON:
		err = decodeJSON(data, &m)
	default:
		err = decodeYAML(data, &m)
	}
	if err != nil {
		return nil, errors.Mark(err, errors.ErrSpecLoad)
	}
	return &m, nil
}

func decodeYAML(data []byte, m *Manipulator) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(m); err != nil {
		if err == io.EOF {
			return errors.New("empty spec")
		}
		return errors.Wrap(err, "decode yaml")
	}
	return nil
}

func decodeTOML(data []byte, m *Manipulator) error {
	md, err := toml.Decode(string(data), m)
	if err != nil {
		return errors.Wrap(err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return errors.Newf("decode toml: unknown keys %s", strings.Join(keys, ", "))
	}
	return nil
}

func decodeJSON(data []byte, m *Manipulator) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(m); err != nil {
		if err == io.EOF {
			return errors.New("empty spec")
		}
		return errors.Wrap(err, "decode json")
	}
	return nil
}
