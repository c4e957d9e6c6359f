package news

import (
	"reflect"
	"testing"
)

func TestCategorizeSingleKeywordSingleCategory(t *testing.T) {
	t.Parallel()

	reg := Registry{
		{Name: "汽车", Keywords: []string{"tesla"}},
		{Name: "AI", Keywords: []string{"机器学习"}},
	}
	got := Categorize("Tesla unveils new battery", "", reg)
	want := []string{"汽车"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Categorize = %v, want %v", got, want)
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	t.Parallel()

	reg := DefaultRegistry()
	title := "AI突破: 新模型发布"
	summary := "大模型与机器学习的新进展"

	first := Categorize(title, summary, reg)
	if len(first) == 0 {
		t.Fatalf("expected at least one category for %q", title)
	}
	for i := 0; i < 5; i++ {
		if got := Categorize(title, summary, reg); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d: Categorize = %v, want %v", i, got, first)
		}
	}
}

func TestCategorizeReturnsMatchesInRegistryOrder(t *testing.T) {
	t.Parallel()

	got := Categorize("Tesla用AI改进自动驾驶", "", DefaultRegistry())
	want := []string{"AI", "汽车"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Categorize = %v, want %v", got, want)
	}
}

func TestCategorizeMatchesSubstringsInsideWords(t *testing.T) {
	t.Parallel()

	// "ml" hits inside "html"; substring semantics are intentional.
	reg := Registry{{Name: "AI", Keywords: []string{"ml"}}}
	got := Categorize("Writing html by hand", "", reg)
	if len(got) != 1 || got[0] != "AI" {
		t.Fatalf("Categorize = %v, want [AI]", got)
	}
}

func TestCategorizeCaseFoldsTitleAndKeywords(t *testing.T) {
	t.Parallel()

	reg := Registry{{Name: "汽车", Keywords: []string{"TESLA"}}}
	if got := Categorize("tesla model update", "", reg); len(got) != 1 {
		t.Fatalf("Categorize = %v, want one match", got)
	}
	reg = Registry{{Name: "汽车", Keywords: []string{"tesla"}}}
	if got := Categorize("TESLA MODEL UPDATE", "", reg); len(got) != 1 {
		t.Fatalf("Categorize = %v, want one match", got)
	}
}

func TestCategorizeMatchesSummaryToo(t *testing.T) {
	t.Parallel()

	reg := Registry{{Name: "区块链", Keywords: []string{"比特币"}}}
	got := Categorize("市场观察", "比特币价格再创新高", reg)
	if len(got) != 1 || got[0] != "区块链" {
		t.Fatalf("Categorize = %v, want [区块链]", got)
	}
}

func TestCategorizeNoMatchReturnsEmpty(t *testing.T) {
	t.Parallel()

	reg := Registry{{Name: "汽车", Keywords: []string{"tesla"}}}
	if got := Categorize("天气预报", "晴转多云", reg); len(got) != 0 {
		t.Fatalf("Categorize = %v, want empty", got)
	}
}
