package repository

import (
	"reflect"
	"testing"
)

func TestBuildFacetPredicate_Empty(t *testing.T) {
	clause, args := buildFacetPredicate(FacetFilter{})
	if clause != "WHERE 1=1" {
		t.Errorf("clause = %q", clause)
	}
	if len(args) != 0 {
		t.Errorf("args = %v, want none", args)
	}
}

func TestBuildFacetPredicate_SingleFacet(t *testing.T) {
	clause, args := buildFacetPredicate(FacetFilter{Players: "5対3"})
	if clause != "WHERE 1=1 AND players = $1" {
		t.Errorf("clause = %q", clause)
	}
	if !reflect.DeepEqual(args, []any{"5対3"}) {
		t.Errorf("args = %v", args)
	}
}

func TestBuildFacetPredicate_AllFacets(t *testing.T) {
	clause, args := buildFacetPredicate(FacetFilter{
		Category: "パス",
		Players:  "2対1",
		Level:    "高校生",
		Channel:  3,
	})
	want := "WHERE 1=1 AND category_title = $1 AND players = $2 AND level = $3 AND channel_brand_category = $4"
	if clause != want {
		t.Errorf("clause = %q, want %q", clause, want)
	}
	if !reflect.DeepEqual(args, []any{"パス", "2対1", "高校生", 3}) {
		t.Errorf("args = %v", args)
	}
}

func TestBuildFacetPredicate_ValuesNeverInSQL(t *testing.T) {
	// User-controlled values must only travel as placeholders.
	clause, _ := buildFacetPredicate(FacetFilter{Category: "'; DROP TABLE category; --"})
	if clause != "WHERE 1=1 AND category_title = $1" {
		t.Errorf("clause = %q leaked a value", clause)
	}
}

func TestFacetFilterEmpty(t *testing.T) {
	if !(FacetFilter{}).Empty() {
		t.Error("zero filter should be empty")
	}
	if (FacetFilter{Level: "ユース"}).Empty() {
		t.Error("level filter should not be empty")
	}
	if (FacetFilter{Channel: 1}).Empty() {
		t.Error("channel filter should not be empty")
	}
}

func TestUniqueValueColumnAllowList(t *testing.T) {
	for _, col := range []string{"category_title", "players"} {
		if !uniqueValueColumns[col] {
			t.Errorf("column %q should be allowed", col)
		}
	}
	for _, col := range []string{"level", "id", "contents", "players; DROP TABLE category"} {
		if uniqueValueColumns[col] {
			t.Errorf("column %q should be rejected", col)
		}
	}
}

func TestCoerceCount(t *testing.T) {
	if got := coerceCount("v1", "view_count", "1234"); got == nil || *got != 1234 {
		t.Errorf("coerceCount(1234) = %v", got)
	}
	for _, raw := range []string{"", "N/A", "12.5", "many"} {
		if got := coerceCount("v1", "like_count", raw); got != nil {
			t.Errorf("coerceCount(%q) = %v, want nil", raw, *got)
		}
	}
}
