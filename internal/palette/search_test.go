package palette

import "testing"

func ids(cmds []Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.ID
	}
	return out
}

func TestSearchEmptyQueryReturnsRegistryOrder(t *testing.T) {
	reg := NewRegistry(testCommands())
	ix := NewIndex(reg)
	for _, query := range []string{"", "   ", "\t"} {
		got := ids(ix.Search(query))
		want := []string{"nav-about", "nav-resume", "theme-toggle", "copy-email"}
		if len(got) != len(want) {
			t.Fatalf("query %q: len = %d, want %d", query, len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("query %q: got[%d] = %q, want %q", query, i, got[i], want[i])
			}
		}
	}
}

func TestSearchFuzzyTypoMatchesLabel(t *testing.T) {
	reg := NewRegistry([]Command{
		{ID: "nav-about", Label: "Go to About", Keywords: []string{"about", "profile"}, Run: noop},
		{ID: "nav-resume", Label: "Go to Resume", Keywords: []string{"resume", "cv"}, Run: noop},
	})
	ix := NewIndex(reg)

	got := ids(ix.Search("rez"))
	if len(got) == 0 || got[0] != "nav-resume" {
		t.Fatalf("search(rez) = %v, want nav-resume first", got)
	}
	for _, id := range got {
		if id == "nav-about" {
			t.Fatalf("search(rez) should not surface nav-about, got %v", got)
		}
	}

	got = ids(ix.Search("abut"))
	if len(got) == 0 || got[0] != "nav-about" {
		t.Fatalf("search(abut) = %v, want nav-about first", got)
	}
}

func TestSearchExcludesUnrelatedQuery(t *testing.T) {
	ix := NewIndex(NewRegistry(testCommands()))
	if got := ix.Search("qqqq"); len(got) != 0 {
		t.Fatalf("search(qqqq) = %v, want empty", ids(got))
	}
}

func TestSearchLabelOutranksDescription(t *testing.T) {
	reg := NewRegistry([]Command{
		{
			ID:          "export",
			Label:       "Download File",
			Description: "Save a copy of the resume",
			Run:         noop,
		},
		{ID: "nav-resume", Label: "Go to Resume", Run: noop},
	})
	ix := NewIndex(reg)
	got := ids(ix.Search("resume"))
	if len(got) < 2 {
		t.Fatalf("search(resume) = %v, want both commands", got)
	}
	if got[0] != "nav-resume" {
		t.Fatalf("label match should outrank description match, got %v", got)
	}
}

func TestSearchKeywordOutranksDescription(t *testing.T) {
	reg := NewRegistry([]Command{
		{
			ID:          "desc-hit",
			Label:       "Scroll to Top",
			Description: "Back to the portfolio start",
			Run:         noop,
		},
		{
			ID:       "kw-hit",
			Label:    "Go to Projects",
			Keywords: []string{"portfolio", "work", "showcase"},
			Run:      noop,
		},
	})
	ix := NewIndex(reg)
	got := ids(ix.Search("portfolio"))
	if len(got) == 0 || got[0] != "kw-hit" {
		t.Fatalf("keyword match should outrank description match, got %v", got)
	}
}

func TestSearchSubstringAndSubsequence(t *testing.T) {
	ix := NewIndex(NewRegistry(testCommands()))

	tests := []struct {
		query string
		want  string
	}{
		{"toggle", "theme-toggle"},
		{"them", "theme-toggle"},
		{"email", "copy-email"},
		{"cv", "nav-resume"},
	}
	for _, tt := range tests {
		got := ids(ix.Search(tt.query))
		if len(got) == 0 || got[0] != tt.want {
			t.Fatalf("search(%q) = %v, want %q first", tt.query, got, tt.want)
		}
	}
}

func TestSearchStableForEqualScores(t *testing.T) {
	reg := NewRegistry([]Command{
		{ID: "a", Label: "View Alpha", Run: noop},
		{ID: "b", Label: "View Beta", Run: noop},
	})
	ix := NewIndex(reg)
	got := ids(ix.Search("view"))
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("equal-score matches should keep registry order, got %v", got)
	}
}
