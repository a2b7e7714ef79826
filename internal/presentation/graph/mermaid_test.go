package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/specdoc/internal/presentation/graph"
	"github.com/aretw0/specdoc/pkg/domain"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		entries  []domain.Entry
		contains []string
		excludes []string
	}{
		{
			name:    "Root Shape",
			entries: nil,
			contains: []string{
				"graph LR",
				"root((\"travis\"))",
			},
			excludes: []string{"classDef"},
		},
		{
			name: "Nested Keys",
			entries: []domain.Entry{
				{Key: domain.Path{"addons"}},
				{Key: domain.Path{"addons", "apt-get"}},
			},
			contains: []string{
				"k_addons[\"addons\"]",
				"root --> k_addons",
				"k_addons_apt_get[\"apt-get\"]",
				"k_addons --> k_addons_apt_get",
			},
		},
		{
			name: "Sequence Element",
			entries: []domain.Entry{
				{Key: domain.ParsePath("matrix.include")},
				{Key: domain.ParsePath("matrix.include[].os")},
			},
			contains: []string{
				"k_matrix_include___os[\"os\"]",
				"k_matrix_include -- \"[]\" --> k_matrix_include___os",
				"root --> k_matrix_include",
			},
		},
		{
			name: "Alias",
			entries: []domain.Entry{
				{Key: domain.Path{"lang"}, AliasFor: domain.Path{"language"}},
				{Key: domain.Path{"language"}},
			},
			contains: []string{
				"k_lang>\"lang\"]",
				"k_lang -. alias .-> k_language",
			},
		},
		{
			name: "Flags",
			entries: []domain.Entry{
				{Key: domain.Path{"a"}, Required: true},
				{Key: domain.Path{"b"}, Required: true, Experimental: true},
			},
			contains: []string{
				"classDef required",
				"class k_a,k_b required;",
				"class k_b experimental;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid("travis", tt.entries)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, got)
				}
			}
			for _, unwanted := range tt.excludes {
				if strings.Contains(got, unwanted) {
					t.Errorf("expected output not to contain %q, got:\n%s", unwanted, got)
				}
			}
		})
	}
}
