package napps

import "strings"

// NApp identifies a network application by author and name.
type NApp struct {
	Author string
	Name   string
}

// String returns the canonical author/name form.
func (n NApp) String() string {
	return n.Author + "/" + n.Name
}

// Parse validates raw and splits it into author and name.
// raw must contain exactly one '/' with non-empty text on both sides.
func Parse(raw string) (NApp, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return NApp{}, &InvalidNAppError{Raw: raw}
	}
	return NApp{Author: parts[0], Name: parts[1]}, nil
}

// ParseAll parses every raw reference, failing on the first invalid one.
func ParseAll(raws []string) ([]NApp, error) {
	list := make([]NApp, 0, len(raws))
	for _, raw := range raws {
		napp, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		list = append(list, napp)
	}
	return list, nil
}

// ParseOptional parses the NApp argument of a command that may not take one.
// A nil raw yields a nil NApp and no error.
func ParseOptional(raw *string) (*NApp, error) {
	if raw == nil {
		return nil, nil
	}
	napp, err := Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &napp, nil
}
