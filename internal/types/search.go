package types

import "strconv"

// ------------------------------
// Shared search vocabulary
// ------------------------------

// SortBy is a result-ordering token accepted by both search generations.
type SortBy string

const (
	SortByPopularity   SortBy = "unique_scans_n"
	SortByProductName  SortBy = "product_name"
	SortByCreatedDate  SortBy = "created_t"
	SortByLastModified SortBy = "last_modified_t"
	SortByEcoScore     SortBy = "ecoscore_score"
)

// Legacy criteria operators.
const (
	OpContains       = "contains"
	OpDoesNotContain = "does_not_contain"
)

// Legacy nutrient comparison operators.
const (
	OpEq  = "eq"
	OpLt  = "lt"
	OpLte = "lte"
	OpGt  = "gt"
	OpGte = "gte"
)

// REST-search nutrient comparison operators. All except CmpEq are folded
// into the emitted key name.
const (
	CmpEq  = "="
	CmpLt  = "<"
	CmpLte = "<="
	CmpGt  = ">"
	CmpGte = ">="
)

// Reference quantities a nutrient condition applies to.
const (
	Unit100g    = "100g"
	UnitServing = "serving"
)

// SearchQuery is a search request serialized for one API generation.
// The two generations emit incompatible key shapes, so each has its own
// builder type; the shared contract is only the ordered pair list and
// the generation tag the client routes on.
type SearchQuery interface {
	// Params returns the ordered query pairs for the request.
	Params() Params
	// Version reports the API generation the query targets.
	Version() Version
}

// ------------------------------
// Legacy form-search (v0)
// ------------------------------

type v0Kind int

const (
	v0Criteria v0Kind = iota
	v0Ingredient
	v0Nutrient
)

type v0Param struct {
	kind  v0Kind
	name  string
	op    string
	value string
}

// SearchQueryV0 accumulates parameters for the legacy form-search
// endpoint. Parameters serialize in insertion order; criteria and
// nutrient conditions each get an index from their own counter,
// assigned at serialization time.
type SearchQueryV0 struct {
	params []v0Param
	terms  string
	sortBy SortBy
}

// NewSearchQueryV0 returns an empty legacy search query.
func NewSearchQueryV0() *SearchQueryV0 {
	return &SearchQueryV0{}
}

// Criteria appends a tag filter. It serializes as the indexed triplet
// tagtype_N=name, tag_contains_N=op, tag_N=value. op is OpContains or
// OpDoesNotContain.
func (q *SearchQueryV0) Criteria(name, op, value string) *SearchQueryV0 {
	q.params = append(q.params, v0Param{kind: v0Criteria, name: name, op: op, value: value})
	return q
}

// Ingredient appends an ingredient filter, serialized as name=value.
// For the "additives" ingredient the server expects the value suffixed
// with "_additives" ("without" becomes "without_additives"); the rewrite
// happens here, at insertion.
func (q *SearchQueryV0) Ingredient(name, value string) *SearchQueryV0 {
	if name == "additives" {
		value += "_additives"
	}
	q.params = append(q.params, v0Param{kind: v0Ingredient, name: name, value: value})
	return q
}

// Nutrient appends a nutrient condition, serialized as the indexed
// triplet nutriment_N=name, nutriment_compare_N=op, nutriment_value_N=value.
// op is one of the legacy comparison operators (OpEq, OpLt, ...).
func (q *SearchQueryV0) Nutrient(name, op string, value uint) *SearchQueryV0 {
	q.params = append(q.params, v0Param{
		kind:  v0Nutrient,
		name:  name,
		op:    op,
		value: strconv.FormatUint(uint64(value), 10),
	})
	return q
}

// Terms sets the free-text filter, emitted as product_name. Empty means
// no free-text filter.
func (q *SearchQueryV0) Terms(terms string) *SearchQueryV0 {
	q.terms = terms
	return q
}

// SortBy sets the result ordering. Empty means server default.
func (q *SearchQueryV0) SortBy(sort SortBy) *SearchQueryV0 {
	q.sortBy = sort
	return q
}

// Version implements SearchQuery.
func (q *SearchQueryV0) Version() Version {
	return V0
}

// Params implements SearchQuery. Indexed parameters come first in
// insertion order, then product_name and sort_by when set, then the
// fixed action=process and json=true trailers the form endpoint
// requires.
func (q *SearchQueryV0) Params() Params {
	var out Params
	criteria, nutrients := 0, 0
	for _, p := range q.params {
		switch p.kind {
		case v0Criteria:
			criteria++
			n := strconv.Itoa(criteria)
			out.Add("tagtype_"+n, p.name)
			out.Add("tag_contains_"+n, p.op)
			out.Add("tag_"+n, p.value)
		case v0Ingredient:
			out.Add(p.name, p.value)
		case v0Nutrient:
			nutrients++
			n := strconv.Itoa(nutrients)
			out.Add("nutriment_"+n, p.name)
			out.Add("nutriment_compare_"+n, p.op)
			out.Add("nutriment_value_"+n, p.value)
		}
	}
	if q.terms != "" {
		out.Add("product_name", q.terms)
	}
	if q.sortBy != "" {
		out.Add("sort_by", string(q.sortBy))
	}
	out.Add("action", "process")
	out.Add("json", "true")
	return out
}

// ------------------------------
// REST search (v2)
// ------------------------------

// SearchQueryV2 accumulates parameters for the v2 REST-search endpoint.
// Each call appends exactly one pair; no index counters and no trailers.
type SearchQueryV2 struct {
	params Params
	sortBy SortBy
}

// NewSearchQueryV2 returns an empty REST search query.
func NewSearchQueryV2() *SearchQueryV2 {
	return &SearchQueryV2{}
}

// CriteriaTag appends a tag filter, serialized as {name}_tags=value.
func (q *SearchQueryV2) CriteriaTag(name, value string) *SearchQueryV2 {
	q.params.Add(name+"_tags", value)
	return q
}

// CriteriaTagLocalized appends a tag filter matched against the tags of
// one language, serialized as {name}_tags_{lc}=value.
func (q *SearchQueryV2) CriteriaTagLocalized(name, lc, value string) *SearchQueryV2 {
	q.params.Add(name+"_tags_"+lc, value)
	return q
}

// Nutrient appends a nutrient condition against the given reference
// quantity (Unit100g or UnitServing). Equality serializes as
// {name}_{unit}=value; any other comparison is folded into the key,
// {name}_{unit}{op}{value}, with an empty value.
func (q *SearchQueryV2) Nutrient(name, unit, op string, value uint) *SearchQueryV2 {
	v := strconv.FormatUint(uint64(value), 10)
	if op == CmpEq {
		q.params.Add(name+"_"+unit, v)
	} else {
		q.params.Add(name+"_"+unit+op+v, "")
	}
	return q
}

// SortBy sets the result ordering. Empty means server default.
func (q *SearchQueryV2) SortBy(sort SortBy) *SearchQueryV2 {
	q.sortBy = sort
	return q
}

// Version implements SearchQuery.
func (q *SearchQueryV2) Version() Version {
	return V2
}

// Params implements SearchQuery. Pairs come out in insertion order with
// sort_by, when set, appended last.
func (q *SearchQueryV2) Params() Params {
	out := make(Params, 0, len(q.params)+1)
	out = append(out, q.params...)
	if q.sortBy != "" {
		out.Add("sort_by", string(q.sortBy))
	}
	return out
}
