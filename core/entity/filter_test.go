package entity

import (
	"reflect"
	"testing"
)

type subj struct {
	Name  string
	Code  string
	Grade string
}

var subjPipeline = Pipeline[subj]{
	Searchable: func(s subj) []string { return []string{s.Name, s.Code} },
	Fields: map[string]func(subj) string{
		"grade": func(s subj) string { return s.Grade },
	},
}

func TestPipelineApply(t *testing.T) {
	items := []subj{
		{Name: "Physics", Code: "PHY", Grade: "10"},
		{Name: "Mathematics", Code: "MAT", Grade: "10"},
		{Name: "Chemistry", Code: "CHE", Grade: "11"},
	}

	tests := []struct {
		name    string
		query   string
		filters map[string]string
		want    []string
	}{
		{name: "no query no filters returns all in order", want: []string{"Physics", "Mathematics", "Chemistry"}},
		{name: "query matches substring case-insensitively", query: "phys", want: []string{"Physics"}},
		{name: "query matches any searchable field", query: "mat", want: []string{"Mathematics"}},
		{name: "query with no match", query: "biology", want: []string{}},
		{name: "discrete filter", filters: map[string]string{"grade": "11"}, want: []string{"Chemistry"}},
		{name: "All sentinel means no restriction", filters: map[string]string{"grade": "All"}, want: []string{"Physics", "Mathematics", "Chemistry"}},
		{name: "empty sentinel means no restriction", filters: map[string]string{"grade": ""}, want: []string{"Physics", "Mathematics", "Chemistry"}},
		{name: "query and filter must both hold", query: "c", filters: map[string]string{"grade": "10"}, want: []string{"Physics", "Mathematics"}},
		{name: "unknown filter field matches nothing", filters: map[string]string{"teacher": "x"}, want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := subjPipeline.Apply(items, tt.query, tt.filters)
			names := make([]string, 0, len(got))
			for _, s := range got {
				names = append(names, s.Name)
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Errorf("Apply() = %v, want %v", names, tt.want)
			}
		})
	}
}

func TestPipelineIdempotent(t *testing.T) {
	items := []subj{
		{Name: "Physics", Grade: "10"},
		{Name: "Chemistry", Grade: "11"},
	}
	filters := map[string]string{"grade": "10"}

	first := subjPipeline.Apply(items, "p", filters)
	second := subjPipeline.Apply(items, "p", filters)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Apply() not idempotent: %v != %v", first, second)
	}
}

func TestPipelineSort(t *testing.T) {
	p := Pipeline[subj]{
		Less: func(a, b subj) bool { return a.Name < b.Name },
	}
	got := p.Apply([]subj{{Name: "b"}, {Name: "c"}, {Name: "a"}}, "", nil)

	want := []subj{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Apply() = %v, want sorted %v", got, want)
	}
}

func TestPipelineDoesNotMutateInput(t *testing.T) {
	items := []subj{{Name: "b"}, {Name: "a"}}
	p := Pipeline[subj]{Less: func(x, y subj) bool { return x.Name < y.Name }}

	_ = p.Apply(items, "", nil)
	if items[0].Name != "b" {
		t.Error("Apply() reordered its input slice")
	}
}
