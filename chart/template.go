package chart

import "strings"

const (
	DefaultTopic    = "monthly sales"
	DefaultCategory = "default"
)

// Template is the fixed label set and inclusive value range of a category.
type Template struct {
	Name   string   `json:"name"`
	Labels []string `json:"labels"`
	Min    int      `json:"min"`
	Max    int      `json:"max"`
}

// templates are matched in slice order; the last one is the fallback.
var templates = []Template{
	{Name: "sales", Labels: []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}, Min: 1000, Max: 5000},
	{Name: "users", Labels: []string{"Week 1", "Week 2", "Week 3", "Week 4"}, Min: 100, Max: 500},
	{Name: "revenue", Labels: []string{"Q1", "Q2", "Q3", "Q4"}, Min: 50000, Max: 200000},
	{Name: "growth", Labels: []string{"Jan", "Feb", "Mar", "Apr", "May"}, Min: 5, Max: 25},
	{Name: DefaultCategory, Labels: []string{"A", "B", "C", "D", "E"}, Min: 10, Max: 100},
}

// Resolve returns the template of the first keyword contained in topic,
// compared case-insensitively, or the default template.
func Resolve(topic string) Template {
	lower := strings.ToLower(topic)
	for _, t := range templates[:len(templates)-1] {
		if strings.Contains(lower, t.Name) {
			return t.clone()
		}
	}
	return templates[len(templates)-1].clone()
}

// Categories lists every template, the default one last.
func Categories() []Template {
	out := make([]Template, len(templates))
	for i, t := range templates {
		out[i] = t.clone()
	}
	return out
}

func (t Template) clone() Template {
	t.Labels = append([]string(nil), t.Labels...)
	return t
}
