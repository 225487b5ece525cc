package diffnav

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Scheme is the URI scheme identifying diffnav buffers.
const Scheme = "diffnav"

// Codec errors.
var (
	ErrUnrecognizedScheme = errors.New("unrecognized buffer name scheme")
	ErrMissingFragment    = errors.New("buffer name has no fragment")
)

// Param is a single buffer-name parameter. Flag params carry no value and
// serialize as a bare key.
type Param struct {
	Key   string
	Value string
	Flag  bool
}

// BufferName is the structured form of a diffnav buffer identifier:
//
//	diffnav://<root>?<params>#<fragment>
//
// Root is the absolute repository root, Fragment the repo-relative file
// path the diff concerns. Params keep their order so that serialization
// round-trips exactly.
type BufferName struct {
	Root     string
	Params   []Param
	Fragment string
}

// String serializes the buffer name. Path separators in Root and Fragment
// survive verbatim; only characters that collide with the identifier's own
// delimiters are percent-encoded.
func (b BufferName) String() string {
	var sb strings.Builder
	sb.WriteString(Scheme)
	sb.WriteString("://")
	sb.WriteString(escapeComponent(b.Root))
	if len(b.Params) > 0 {
		sb.WriteByte('?')
		for i, p := range b.Params {
			if i > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(escapeComponent(p.Key))
			if !p.Flag {
				sb.WriteByte('=')
				sb.WriteString(escapeComponent(p.Value))
			}
		}
	}
	sb.WriteByte('#')
	sb.WriteString(escapeComponent(b.Fragment))
	return sb.String()
}

// ParseBufferName parses a buffer identifier produced by String. It fails
// with ErrUnrecognizedScheme if the identifier does not carry the diffnav
// scheme and with ErrMissingFragment if the fragment is absent or empty.
func ParseBufferName(id string) (BufferName, error) {
	rest, ok := strings.CutPrefix(id, Scheme+"://")
	if !ok {
		return BufferName{}, fmt.Errorf("%w: %q", ErrUnrecognizedScheme, id)
	}

	rest, frag, ok := strings.Cut(rest, "#")
	if !ok || frag == "" {
		return BufferName{}, fmt.Errorf("%w: %q", ErrMissingFragment, id)
	}
	fragment, err := url.PathUnescape(frag)
	if err != nil {
		return BufferName{}, fmt.Errorf("parsing buffer name fragment: %w", err)
	}

	var name BufferName
	name.Fragment = fragment

	rawRoot, query, hasQuery := strings.Cut(rest, "?")
	if name.Root, err = url.PathUnescape(rawRoot); err != nil {
		return BufferName{}, fmt.Errorf("parsing buffer name root: %w", err)
	}
	if !hasQuery || query == "" {
		return name, nil
	}

	for _, raw := range strings.Split(query, "&") {
		rawKey, rawValue, hasValue := strings.Cut(raw, "=")
		key, err := url.PathUnescape(rawKey)
		if err != nil {
			return BufferName{}, fmt.Errorf("parsing buffer name param: %w", err)
		}
		if !hasValue {
			name.Params = append(name.Params, Param{Key: key, Flag: true})
			continue
		}
		value, err := url.PathUnescape(rawValue)
		if err != nil {
			return BufferName{}, fmt.Errorf("parsing buffer name param: %w", err)
		}
		name.Params = append(name.Params, Param{Key: key, Value: value})
	}
	return name, nil
}

// Get returns the value of the first param with the given key.
func (b BufferName) Get(key string) (string, bool) {
	for _, p := range b.Params {
		if p.Key == key && !p.Flag {
			return p.Value, true
		}
	}
	return "", false
}

// Has reports whether a flag param with the given key is present.
func (b BufferName) Has(key string) bool {
	for _, p := range b.Params {
		if p.Key == key && p.Flag {
			return true
		}
	}
	return false
}

// Revision returns the revision expression carried by the commitish param,
// or the empty string when absent.
func (b BufferName) Revision() string {
	v, _ := b.Get("commitish")
	return v
}

// Staged reports whether the diff is anchored against the index.
func (b BufferName) Staged() bool {
	return b.Has("cached")
}

// Flags returns the remaining params rendered as git diff arguments:
// single-letter flags as -X, longer flags as --long, valued params as
// --key=value. The commitish and cached params are excluded since they are
// passed to git separately.
func (b BufferName) Flags() []string {
	var flags []string
	for _, p := range b.Params {
		if p.Key == "commitish" || p.Key == "cached" {
			continue
		}
		switch {
		case p.Flag && len(p.Key) == 1:
			flags = append(flags, "-"+p.Key)
		case p.Flag:
			flags = append(flags, "--"+p.Key)
		default:
			flags = append(flags, "--"+p.Key+"="+p.Value)
		}
	}
	return flags
}

// escapeComponent percent-encodes the characters that would collide with
// the buffer name's own delimiters. Slashes are left alone so paths stay
// readable.
func escapeComponent(s string) string {
	if !strings.ContainsAny(s, "%?#&=") {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '%', '?', '#', '&', '=':
			fmt.Fprintf(&sb, "%%%02X", c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
