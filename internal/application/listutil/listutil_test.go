package listutil

import (
	"net/url"
	"testing"
)

// TestParsePageParams_Defaults verifies default page params when no query values provided.
func TestParsePageParams_Defaults(t *testing.T) {
	q := url.Values{}
	p := ParsePageParams(q)
	if p.Page != 1 {
		t.Errorf("expected page 1, got %d", p.Page)
	}
	if p.PerPage != DefaultPerPage {
		t.Errorf("expected per_page %d, got %d", DefaultPerPage, p.PerPage)
	}
}

// TestParsePageParams_Valid verifies correct parsing of valid page and per_page values.
func TestParsePageParams_Valid(t *testing.T) {
	q := url.Values{"page": {"3"}, "per_page": {"50"}}
	p := ParsePageParams(q)
	if p.Page != 3 {
		t.Errorf("expected page 3, got %d", p.Page)
	}
	if p.PerPage != 50 {
		t.Errorf("expected per_page 50, got %d", p.PerPage)
	}
}

// TestParsePageParams_InvalidPerPage verifies fallback to default for a
// per_page value outside the allowed list.
func TestParsePageParams_InvalidPerPage(t *testing.T) {
	q := url.Values{"per_page": {"33"}}
	p := ParsePageParams(q)
	if p.PerPage != DefaultPerPage {
		t.Errorf("expected default per_page %d for invalid value, got %d", DefaultPerPage, p.PerPage)
	}
}

// TestParseSortParams_RejectsUnknownColumn verifies only allowed columns pass.
func TestParseSortParams_RejectsUnknownColumn(t *testing.T) {
	q := url.Values{"sort": {"password_hash"}, "dir": {"sideways"}}
	s := ParseSortParams(q, []string{"date", "title"})
	if s.Sort != "" {
		t.Errorf("expected unknown sort column rejected, got %q", s.Sort)
	}
	if s.Dir != "asc" {
		t.Errorf("expected dir fallback to asc, got %q", s.Dir)
	}
}

// TestParseFilterParams_OnlyRecognisedKeys verifies unknown filter keys are dropped.
func TestParseFilterParams_OnlyRecognisedKeys(t *testing.T) {
	q := url.Values{"theme": {"aerobic"}, "rogue": {"x"}, "q": {"tempo"}}
	fp := ParseFilterParams(q, []string{"theme", "level"})
	if fp.Filters["theme"] != "aerobic" {
		t.Errorf("expected theme filter kept, got %v", fp.Filters)
	}
	if _, ok := fp.Filters["rogue"]; ok {
		t.Error("unexpected rogue filter key kept")
	}
	if fp.Search != "tempo" {
		t.Errorf("expected search 'tempo', got %q", fp.Search)
	}
}

// TestPageInfo_Rows verifies start/end row numbers for rendering.
func TestPageInfo_Rows(t *testing.T) {
	p, _ := Paginate(45, 20, 2)
	if p.StartRow() != 21 {
		t.Errorf("expected start row 21, got %d", p.StartRow())
	}
	if p.EndRow() != 40 {
		t.Errorf("expected end row 40, got %d", p.EndRow())
	}

	empty, _ := Paginate(0, 20, 1)
	if empty.StartRow() != 0 {
		t.Errorf("expected start row 0 for empty list, got %d", empty.StartRow())
	}
}

// TestPageInfo_PageNumbers verifies the 5-button window around the current page.
func TestPageInfo_PageNumbers(t *testing.T) {
	p, _ := Paginate(200, 10, 10)
	nums := p.PageNumbers()
	if len(nums) != 5 || nums[0] != 8 || nums[4] != 12 {
		t.Errorf("expected pages 8..12 centered on 10, got %v", nums)
	}

	first, _ := Paginate(200, 10, 1)
	nums = first.PageNumbers()
	if len(nums) != 5 || nums[0] != 1 {
		t.Errorf("expected pages 1..5 at the start, got %v", nums)
	}
}
