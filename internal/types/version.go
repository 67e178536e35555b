package types

import (
	"errors"
	"fmt"
)

// Version is an API generation tag. It appears verbatim in versioned URL
// paths such as "api/v2/product/{barcode}".
type Version string

const (
	// V0 is the legacy generation served under cgi/.
	V0 Version = "v0"
	// V2 is the current REST generation served under api/v2/.
	V2 Version = "v2"
)

// ErrUnknownVersion is returned by ParseVersion for any string that is
// not a supported API generation tag.
var ErrUnknownVersion = errors.New("unknown API version")

// ParseVersion parses "v0" or "v2". Anything else is rejected.
func ParseVersion(s string) (Version, error) {
	switch Version(s) {
	case V0:
		return V0, nil
	case V2:
		return V2, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVersion, s)
	}
}

// String returns the tag as it appears in URL paths.
func (v Version) String() string {
	return string(v)
}
