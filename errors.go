package off

import (
	"errors"

	"github.com/openfoodfacts/openfoodfacts-go/internal/types"
)

// ErrInvalidAuth is returned by Build when the configured basic-auth
// credentials cannot form a valid Authorization header.
var ErrInvalidAuth = errors.New("invalid basic-auth credentials")

// Re-export the shared version error so callers compare against a single symbol.
var ErrUnknownVersion = types.ErrUnknownVersion
