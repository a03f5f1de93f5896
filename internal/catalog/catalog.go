// Package catalog holds the fixed set of infographic templates and the rule
// that suggests one for a classified content model.
package catalog

import (
	"github.com/samber/lo"

	"github.com/ankek/terraform-provider-infographic/internal/content"
)

// ID identifies a template
type ID string

const (
	ProcessFlow     ID = "process-flow"
	CircularDiagram ID = "circular-diagram"
	Timeline        ID = "timeline"
	Comparison      ID = "comparison"
	Pyramid         ID = "pyramid"
	Statistics      ID = "statistics"
)

// Auto is accepted wherever a template id is, meaning "suggest one"
const Auto = "auto"

// Template is a catalog entry
type Template struct {
	ID          ID     `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Icon        string `json:"icon" yaml:"icon"`
	SampleText  string `json:"sample_text" yaml:"sample_text"`
}

var templates = []Template{
	{
		ID:          ProcessFlow,
		Name:        "Process Flow",
		Description: "Horizontal steps connected by arrows",
		Icon:        "→",
		SampleText:  "Product Launch Plan\nStep 1: Research your market\nStep 2: Define your target audience\nStep 3: Develop your product\nStep 4: Create marketing plan\nStep 5: Launch and monitor",
	},
	{
		ID:          CircularDiagram,
		Name:        "Circular Diagram",
		Description: "Central topic with radiating elements",
		Icon:        "◯",
		SampleText:  "Digital Marketing Strategy\n- Social Media Marketing\n- Content Marketing\n- Email Marketing\n- SEO Optimization\n- Paid Advertising\n- Analytics & Reporting",
	},
	{
		ID:          Timeline,
		Name:        "Timeline",
		Description: "Chronological progression of events",
		Icon:        "│",
		SampleText:  "Project Timeline\n2024 Q1: Planning Phase\n2024 Q2: Development Phase\n2024 Q3: Testing Phase\n2024 Q4: Launch Phase",
	},
	{
		ID:          Comparison,
		Name:        "Comparison Chart",
		Description: "Side-by-side analysis",
		Icon:        "⚖",
		SampleText:  "Remote Work vs Office Work\nRemote Work:\n- Flexibility\n- No commute\n- Work-life balance\nOffice Work:\n- Team collaboration\n- Office resources\n- Social interaction",
	},
	{
		ID:          Pyramid,
		Name:        "Hierarchy Pyramid",
		Description: "Layered information structure",
		Icon:        "▲",
		SampleText:  "Maslow's Hierarchy of Needs\nSelf-actualization\nEsteem needs\nLove and belonging\nSafety needs\nPhysiological needs",
	},
	{
		ID:          Statistics,
		Name:        "Statistics Dashboard",
		Description: "Data visualization with charts",
		Icon:        "📊",
		SampleText:  "Business Performance 2024\nRevenue: $2.5M (↑15%)\nUsers: 50K (↑25%)\nConversion Rate: 3.2% (↑10%)\nCustomer Satisfaction: 92%",
	},
}

// All returns every template in display order
func All() []Template {
	return append([]Template{}, templates...)
}

// IDs returns every template id in display order
func IDs() []string {
	return lo.Map(templates, func(t Template, _ int) string { return string(t.ID) })
}

// Lookup finds a template by id
func Lookup(id ID) (Template, bool) {
	return lo.Find(templates, func(t Template) bool { return t.ID == id })
}

// Resolve interprets a user selection. An empty id or "auto" means no
// selection (ok is true, t is nil); an unknown id returns ok false.
func Resolve(id string) (t *Template, ok bool) {
	if id == "" || id == Auto {
		return nil, true
	}
	found, exists := Lookup(ID(id))
	if !exists {
		return nil, false
	}
	return &found, true
}

// Suggest picks a template for classified content
func Suggest(m *content.Model) Template {
	var id ID
	switch m.Category() {
	case content.CategorySteps:
		id = ProcessFlow
	case content.CategoryStatistics:
		id = Statistics
	case content.CategoryTimeline:
		id = Timeline
	default:
		id = CircularDiagram
	}
	t, _ := Lookup(id)
	return t
}
