package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/mattsolo1/grove-tabgroups/pkg/tree"
)

// ErrCorrupt indicates persisted bytes that could not be parsed as a record.
var ErrCorrupt = errors.New("corrupt snapshot")

// Format selects the encoding of a persisted snapshot.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name; "yml" is accepted as yaml.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported format %q", s)
	}
}

// Marshal encodes the tree in the given format.
func Marshal(t *tree.Tree, f Format) ([]byte, error) {
	rec := Encode(t)
	switch f {
	case FormatYAML:
		return yaml.Marshal(rec)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(rec); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return json.Marshal(rec)
	}
}

// Unmarshal parses data and decodes it into t. On any failure t is left empty.
func Unmarshal(data []byte, f Format, t *tree.Tree) error {
	var rec Record
	var err error
	switch f {
	case FormatYAML:
		err = yaml.Unmarshal(data, &rec)
	case FormatTOML:
		err = toml.Unmarshal(data, &rec)
	default:
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		t.Reset()
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return Decode(rec, t)
}
