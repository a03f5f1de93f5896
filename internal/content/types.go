// Package content turns free-form text into a typed content model.
//
// Classification is rule based. The first matching rule decides the
// category and the category decides how the remaining lines become items.
// A Model is an immutable snapshot: every accessor returns a copy, and a new
// classification always produces a new Model.
package content

import "fmt"

// Category is the inferred shape of the text
type Category string

const (
	CategorySteps      Category = "steps"      // "Step N" lines
	CategoryStatistics Category = "statistics" // percentages, dollar amounts, arrows
	CategoryBullets    Category = "bullets"    // "-" prefixed lines
	CategoryTimeline   Category = "timeline"   // "when: what" lines
	CategoryGeneric    Category = "generic"    // anything else
)

// Categories lists every category in precedence order
var Categories = []Category{
	CategorySteps,
	CategoryStatistics,
	CategoryBullets,
	CategoryTimeline,
	CategoryGeneric,
}

// UntitledTitle is used when the text has no non-blank line
const UntitledTitle = "Untitled"

// Stat is a label/value pair extracted from a statistics line
type Stat struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// String renders the stat the way it would read in the source text
func (s Stat) String() string {
	if s.Value == "" {
		return s.Label
	}
	return fmt.Sprintf("%s: %s", s.Label, s.Value)
}

// Items is the category-specific payload of a Model.
// It is implemented only by TextItems and StatItems.
type Items interface {
	Len() int
	isItems()
}

// TextItems is the payload of steps, bullets, timeline and generic content
type TextItems []string

// Len returns the number of items
func (t TextItems) Len() int { return len(t) }
func (TextItems) isItems()   {}

// StatItems is the payload of statistics content
type StatItems []Stat

// Len returns the number of items
func (s StatItems) Len() int { return len(s) }
func (StatItems) isItems()   {}

// Model is the classified representation of a block of text
type Model struct {
	category Category
	title    string
	items    Items
}

// NewModel builds a model directly. Items are copied.
func NewModel(category Category, title string, items Items) *Model {
	m := &Model{category: category, title: title}
	switch it := items.(type) {
	case StatItems:
		m.items = append(StatItems{}, it...)
	case TextItems:
		m.items = append(TextItems{}, it...)
	default:
		m.items = TextItems{}
	}
	return m
}

// Category returns the category chosen by the classifier
func (m *Model) Category() Category { return m.category }

// Title returns the first non-blank line of the text
func (m *Model) Title() string { return m.title }

// Len returns the number of items
func (m *Model) Len() int { return m.items.Len() }

// Items returns a copy of the category-specific payload
func (m *Model) Items() Items {
	switch it := m.items.(type) {
	case StatItems:
		return append(StatItems{}, it...)
	case TextItems:
		return append(TextItems{}, it...)
	}
	return TextItems{}
}

// Texts returns every item as a string. Statistics are rendered as
// "Label: Value" so that any template can show any content.
func (m *Model) Texts() []string {
	switch it := m.items.(type) {
	case StatItems:
		out := make([]string, len(it))
		for i, s := range it {
			out[i] = s.String()
		}
		return out
	case TextItems:
		return append([]string{}, it...)
	}
	return []string{}
}

// Stats returns every item as a label/value pair. Text items become labels
// with an empty value.
func (m *Model) Stats() []Stat {
	switch it := m.items.(type) {
	case StatItems:
		return append([]Stat{}, it...)
	case TextItems:
		out := make([]Stat, len(it))
		for i, s := range it {
			out[i] = Stat{Label: s}
		}
		return out
	}
	return []Stat{}
}

// Document is the serialisable form of a Model
type Document struct {
	Category Category `json:"category" yaml:"category"`
	Title    string   `json:"title" yaml:"title"`
	Items    []string `json:"items,omitempty" yaml:"items,omitempty"`
	Stats    []Stat   `json:"stats,omitempty" yaml:"stats,omitempty"`
}

// Document returns the serialisable form of the model. At most one of Items
// and Stats is populated, depending on the payload shape.
func (m *Model) Document() Document {
	doc := Document{Category: m.category, Title: m.title}
	switch it := m.items.(type) {
	case StatItems:
		if len(it) > 0 {
			doc.Stats = append([]Stat{}, it...)
		}
	case TextItems:
		if len(it) > 0 {
			doc.Items = append([]string{}, it...)
		}
	}
	return doc
}
