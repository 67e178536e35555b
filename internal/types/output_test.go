package types

import "testing"

func TestOutputParamsAllowListOrder(t *testing.T) {
	t.Parallel()
	o := &Output{Page: Int(2), PageSize: Int(50)}
	if got := o.Params("page", "page_size", "fields").Encode(); got != "page=2&page_size=50" {
		t.Fatalf("Params().Encode() = %q", got)
	}
}

func TestOutputParamsFiltersAndDedups(t *testing.T) {
	t.Parallel()
	o := &Output{Page: Int(1), Fields: "url,code", NoCache: Bool(true)}
	// page_size unset is skipped, the duplicate "page" is emitted once
	// and unknown names are ignored.
	got := o.Params("page", "page", "bogus", "fields", "nocache").Encode()
	if got != "page=1&fields=url%2Ccode&nocache=true" {
		t.Fatalf("Params().Encode() = %q", got)
	}
}

func TestOutputParamsNil(t *testing.T) {
	t.Parallel()
	var o *Output
	if got := o.Params("page", "fields"); len(got) != 0 {
		t.Fatalf("nil Output produced %v", got)
	}
}

func TestOutputParamsEmptyFieldsOmitted(t *testing.T) {
	t.Parallel()
	o := &Output{Fields: ""}
	if got := o.Params("fields"); len(got) != 0 {
		t.Fatalf("empty fields produced %v", got)
	}
}

func TestOutputParamsLocaleNeverSerialized(t *testing.T) {
	t.Parallel()
	l := NewLocale("fr", "")
	o := &Output{Locale: &l, Page: Int(3)}
	if got := o.Params("locale", "page").Encode(); got != "page=3" {
		t.Fatalf("Params().Encode() = %q", got)
	}
}
