package off

import "github.com/openfoodfacts/openfoodfacts-go/internal/types"

// Public type aliases so SDK consumers can import only the off package.
type (
	Locale        = types.Locale
	Output        = types.Output
	Param         = types.Param
	Params        = types.Params
	SortBy        = types.SortBy
	APIVersion    = types.Version
	SearchQuery   = types.SearchQuery
	SearchQueryV0 = types.SearchQueryV0
	SearchQueryV2 = types.SearchQueryV2
)

// API generations.
const (
	APIVersionV0 = types.V0
	APIVersionV2 = types.V2
)

// Sort orders accepted by the search endpoints.
const (
	SortByPopularity   = types.SortByPopularity
	SortByProductName  = types.SortByProductName
	SortByCreatedDate  = types.SortByCreatedDate
	SortByLastModified = types.SortByLastModified
	SortByEcoScore     = types.SortByEcoScore
)

// Legacy search operators.
const (
	OpContains       = types.OpContains
	OpDoesNotContain = types.OpDoesNotContain
	OpEq             = types.OpEq
	OpLt             = types.OpLt
	OpLte            = types.OpLte
	OpGt             = types.OpGt
	OpGte            = types.OpGte
)

// REST search comparison operators and reference quantities.
const (
	CmpEq  = types.CmpEq
	CmpLt  = types.CmpLt
	CmpLte = types.CmpLte
	CmpGt  = types.CmpGt
	CmpGte = types.CmpGte

	Unit100g    = types.Unit100g
	UnitServing = types.UnitServing
)

// DefaultLocale returns the "world" locale.
func DefaultLocale() Locale { return types.DefaultLocale() }

// NewLocale returns a Locale with the given country code and optional
// language code. An empty country code yields the default locale.
func NewLocale(cc, lc string) Locale { return types.NewLocale(cc, lc) }

// ParseLocale parses the subdomain forms "{cc}" and "{cc}-{lc}".
func ParseLocale(s string) Locale { return types.ParseLocale(s) }

// ParseAPIVersion parses "v0" or "v2". Anything else returns
// ErrUnknownVersion.
func ParseAPIVersion(s string) (APIVersion, error) { return types.ParseVersion(s) }

// NewSearchQueryV0 returns an empty legacy search query for Search.
func NewSearchQueryV0() *SearchQueryV0 { return types.NewSearchQueryV0() }

// NewSearchQueryV2 returns an empty REST search query for Search.
func NewSearchQueryV2() *SearchQueryV2 { return types.NewSearchQueryV2() }

// Int returns a pointer to v, for filling optional Output fields inline.
func Int(v int) *int { return types.Int(v) }

// Bool returns a pointer to v, for filling optional Output fields inline.
func Bool(v bool) *bool { return types.Bool(v) }
