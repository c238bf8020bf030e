package tree

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Kind is the type tag carried by every node and its identifier.
type Kind string

const (
	KindTree  Kind = "tree"
	KindGroup Kind = "group"
	KindTab   Kind = "tab"
	KindLine  Kind = "line"
)

// idSep separates the kind, token and version parts of a rendered id.
const idSep = ":"

// ParseKind validates a kind tag.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindTree, KindGroup, KindTab, KindLine:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownNodeKind, s)
	}
}

// ID is a parsed node identifier.
type ID struct {
	Kind    Kind
	Token   string
	Version uint64
}

// Key returns the logical identity, which ignores the version.
func (id ID) Key() string {
	return string(id.Kind) + idSep + id.Token
}

func (id ID) String() string {
	return id.Key() + idSep + strconv.FormatUint(id.Version, 10)
}

// ParseID splits a rendered id of the form kind:token:version. A missing version is
// accepted so logical keys can be parsed with the same function.
func ParseID(s string) (ID, error) {
	parts := strings.Split(s, idSep)
	if len(parts) != 2 && len(parts) != 3 {
		return ID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	kind, err := ParseKind(parts[0])
	if err != nil {
		return ID{}, err
	}
	if parts[1] == "" {
		return ID{}, fmt.Errorf("%w: empty token in %q", ErrMalformedID, s)
	}
	// Tokens are path segments.
	if strings.Contains(parts[1], PathSep) {
		return ID{}, fmt.Errorf("%w: token contains %q in %q", ErrMalformedID, PathSep, s)
	}
	id := ID{Kind: kind, Token: parts[1]}
	if len(parts) == 3 {
		v, err := strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return ID{}, fmt.Errorf("%w: bad version in %q", ErrMalformedID, s)
		}
		id.Version = v
	}
	return id, nil
}

// keyOf reduces a rendered id to its logical key. Unparseable input is returned as is
// so it simply never matches.
func keyOf(s string) string {
	id, err := ParseID(s)
	if err != nil {
		return s
	}
	return id.Key()
}

func newToken() string {
	return uuid.NewString()
}
