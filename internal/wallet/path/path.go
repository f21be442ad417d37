// Package path parses and renders BIP32-style derivation paths such as m/44'/60'/0'/0/0.
package path

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	// HardenedOffset is added to a component index to mark hardened derivation.
	HardenedOffset uint32 = 0x80000000

	// MaxIndex is the largest index a single component may carry.
	MaxIndex uint32 = HardenedOffset - 1

	masterToken    = "m"
	separator      = "/"
	hardenedMarker = "'"
)

var (
	ErrMalformedPath = errors.New("malformed derivation path")
)

// Component is a single step of a derivation path.
type Component struct {
	Index    uint32
	Hardened bool
}

// Effective returns the 32-bit index fed into child key derivation.
func (c Component) Effective() uint32 {
	if c.Hardened {
		return c.Index + HardenedOffset
	}
	return c.Index
}

func (c Component) String() string {
	s := strconv.FormatUint(uint64(c.Index), 10)
	if c.Hardened {
		s += hardenedMarker
	}
	return s
}

// Path is an ordered list of components below the master node.
type Path []Component

// Parse converts a textual derivation path into its components.
// The leading "m" denotes the master node and is not a component.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, errors.Wrap(ErrMalformedPath, "empty path")
	}

	tokens := strings.Split(s, separator)
	if tokens[0] != masterToken {
		return nil, errors.Wrapf(ErrMalformedPath, "path %q must start with %q", s, masterToken)
	}

	p := make(Path, 0, len(tokens)-1)
	for _, token := range tokens[1:] {
		c, err := parseComponent(token)
		if err != nil {
			return nil, errors.Wrapf(err, "path %q", s)
		}
		p = append(p, c)
	}

	return p, nil
}

// MustParse is like Parse but panics on error. Only use it with constant paths.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseComponent(token string) (Component, error) {
	hardened := false
	digits := token
	if rest, ok := trimHardened(token); ok {
		hardened = true
		digits = rest
	}

	if digits == "" {
		return Component{}, errors.Wrapf(ErrMalformedPath, "empty component %q", token)
	}

	// strconv would accept a leading sign, a component may only contain digits
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Component{}, errors.Wrapf(ErrMalformedPath, "component %q is not a non-negative integer", token)
		}
	}

	index, err := strconv.ParseUint(digits, 10, 32)
	if err != nil || uint32(index) > MaxIndex {
		return Component{}, errors.Wrapf(ErrMalformedPath, "component %q exceeds %d", token, MaxIndex)
	}

	return Component{Index: uint32(index), Hardened: hardened}, nil
}

func trimHardened(token string) (string, bool) {
	for _, marker := range []string{hardenedMarker, "h", "H"} {
		if strings.HasSuffix(token, marker) {
			return strings.TrimSuffix(token, marker), true
		}
	}
	return token, false
}

// Child returns a new path with c appended. The receiver is left untouched.
func (p Path) Child(c Component) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, c)
}

// Indices returns the effective 32-bit index of every component.
func (p Path) Indices() []uint32 {
	out := make([]uint32, len(p))
	for i, c := range p {
		out[i] = c.Effective()
	}
	return out
}

// String renders the canonical form using the ' hardened marker.
func (p Path) String() string {
	var b strings.Builder
	b.WriteString(masterToken)
	for _, c := range p {
		b.WriteString(separator)
		b.WriteString(c.String())
	}
	return b.String()
}
