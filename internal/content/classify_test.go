package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Document
	}{
		{
			name: "title and generic line",
			text: "Hello\nWorld",
			want: Document{Category: CategoryGeneric, Title: "Hello", Items: []string{"World"}},
		},
		{
			name: "statistics with colons",
			text: "Q1 Report\nRevenue: $2.5M\nUsers: 50K",
			want: Document{
				Category: CategoryStatistics,
				Title:    "Q1 Report",
				Stats: []Stat{
					{Label: "Revenue", Value: "$2.5M"},
					{Label: "Users", Value: "50K"},
				},
			},
		},
		{
			name: "steps strip prefix",
			text: "Plan\nStep 1: Research\nStep 2: Build",
			want: Document{Category: CategorySteps, Title: "Plan", Items: []string{"Research", "Build"}},
		},
		{
			name: "steps without colon and mixed case",
			text: "Plan\n  STEP 3 Launch  \nnot a step",
			want: Document{Category: CategorySteps, Title: "Plan", Items: []string{"Launch"}},
		},
		{
			name: "bullets",
			text: "Strategy\n- Social\n  -Email\nplain line",
			want: Document{Category: CategoryBullets, Title: "Strategy", Items: []string{"Social", "Email"}},
		},
		{
			name: "timeline keeps lines verbatim",
			text: "Project\n2024 Q1: Planning\n2024 Q2:  Build ",
			want: Document{Category: CategoryTimeline, Title: "Project", Items: []string{"2024 Q1: Planning", "2024 Q2:  Build "}},
		},
		{
			name: "blank lines are discarded",
			text: "\n\n   \nTitle\n\t\nOne\n\nTwo\n",
			want: Document{Category: CategoryGeneric, Title: "Title", Items: []string{"One", "Two"}},
		},
		{
			name: "crlf line endings",
			text: "Title\r\nOne\r\n",
			want: Document{Category: CategoryGeneric, Title: "Title", Items: []string{"One"}},
		},
		{
			name: "statistics line without colon",
			text: "Report\nGrowth 15%\n",
			want: Document{Category: CategoryStatistics, Title: "Report", Stats: []Stat{{Label: "Growth 15%"}}},
		},
		{
			name: "statistics skip title even when title matches",
			text: "Up 10% this year\nRevenue: $100",
			want: Document{Category: CategoryStatistics, Title: "Up 10% this year", Stats: []Stat{{Label: "Revenue", Value: "$100"}}},
		},
		{
			name: "arrow glyph triggers statistics",
			text: "Trend\nSales ↑",
			want: Document{Category: CategoryStatistics, Title: "Trend", Stats: []Stat{{Label: "Sales ↑"}}},
		},
		{
			name: "step title is not an item",
			text: "Step 1: Research your market\nStep 2: Define your audience",
			want: Document{Category: CategorySteps, Title: "Step 1: Research your market", Items: []string{"Define your audience"}},
		},
		{
			name: "bullet title is not an item",
			text: "- Flexibility\n- No commute\n- Balance",
			want: Document{Category: CategoryBullets, Title: "- Flexibility", Items: []string{"No commute", "Balance"}},
		},
		{
			name: "only the title matches",
			text: "Step 1: Go\nthen rest",
			want: Document{Category: CategorySteps, Title: "Step 1: Go"},
		},
		{
			name: "empty text",
			text: "",
			want: Document{Category: CategoryGeneric, Title: UntitledTitle},
		},
		{
			name: "whitespace only",
			text: " \n\t\n ",
			want: Document{Category: CategoryGeneric, Title: UntitledTitle},
		},
		{
			name: "single line",
			text: "Only a title",
			want: Document{Category: CategoryGeneric, Title: "Only a title"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.text).Document()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Classify() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Category
	}{
		{"steps beat statistics", "Plan\nStep 1: grow 50%", CategorySteps},
		{"statistics beat bullets", "Report\n- revenue $1,000", CategoryStatistics},
		{"bullets beat timeline", "List\n- a: b", CategoryBullets},
		{"timeline beats generic", "Dates\nMonday: start", CategoryTimeline},
		{"generic fallback", "Words\nmore words", CategoryGeneric},
		{"step must start the line", "Plan\nthe step 1 is done", CategoryGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text).Category(); got != tt.want {
				t.Errorf("Category() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	text := "Business Performance 2024\nRevenue: $2.5M (↑15%)\nUsers: 50K (↑25%)"
	first := Classify(text)
	second := Classify(text)

	if first == second {
		t.Fatal("Classify() returned the same pointer twice")
	}
	if diff := cmp.Diff(first.Document(), second.Document()); diff != "" {
		t.Errorf("Classify() not idempotent (-first +second):\n%s", diff)
	}
}

func TestModelAccessorsReturnCopies(t *testing.T) {
	m := Classify("Plan\nStep 1: Research\nStep 2: Build")

	texts := m.Texts()
	texts[0] = "mutated"
	items := m.Items().(TextItems)
	items[1] = "mutated"

	if diff := cmp.Diff([]string{"Research", "Build"}, m.Texts()); diff != "" {
		t.Errorf("model was mutated through an accessor (-want +got):\n%s", diff)
	}
}

func TestModelViews(t *testing.T) {
	stats := Classify("Report\nRevenue: $2M\nNo colon 5%")
	if diff := cmp.Diff([]string{"Revenue: $2M", "No colon 5%"}, stats.Texts()); diff != "" {
		t.Errorf("Texts() mismatch (-want +got):\n%s", diff)
	}

	texts := Classify("Strategy\n- Social")
	if diff := cmp.Diff([]Stat{{Label: "Social"}}, texts.Stats()); diff != "" {
		t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
	}
}

func TestItemsShapeMatchesCategory(t *testing.T) {
	inputs := []string{
		"Plan\nStep 1: a",
		"Report\nRevenue: 10%",
		"List\n- a",
		"Dates\nMon: a",
		"Words\nmore",
	}
	for _, text := range inputs {
		m := Classify(text)
		_, isStats := m.Items().(StatItems)
		if isStats != (m.Category() == CategoryStatistics) {
			t.Errorf("Classify(%q): category %s with stat payload = %v", text, m.Category(), isStats)
		}
	}
}

func TestNewModelCopiesItems(t *testing.T) {
	src := TextItems{"a", "b"}
	m := NewModel(CategoryBullets, "T", src)
	src[0] = "changed"

	if got := m.Texts()[0]; got != "a" {
		t.Errorf("NewModel() kept a reference to the caller slice, got %q", got)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
	if NewModel(CategoryGeneric, "T", nil).Len() != 0 {
		t.Error("NewModel() with nil items should be empty")
	}
}
