// Package catalog holds the static project template catalog. Templates
// are pre-authored idea bundles tagged by domain, type and skill level;
// they are never created or mutated at runtime.
package catalog

import "strings"

// Template is one pre-authored project idea.
type Template struct {
	ID               int      `json:"templateId"`
	Domain           string   `json:"domain"`
	Type             string   `json:"type"`
	SkillTags        []string `json:"skillsTags"`
	Title            string   `json:"title"`
	ProblemStatement string   `json:"problemStatement"`
	ProposedSolution string   `json:"proposedSolution"`
	KeyFeatures      []string `json:"keyFeatures"`
	RoadmapText      string   `json:"-"`
	TasksText        string   `json:"-"`
	SummaryText      string   `json:"-"`
	VivaQAText       string   `json:"-"`
}

// HasSkillTag reports whether the template carries the given level tag.
func (t Template) HasSkillTag(level string) bool {
	for _, tag := range t.SkillTags {
		if strings.EqualFold(tag, level) {
			return true
		}
	}
	return false
}

// NormalizeDomain maps free-text domains onto canonical casing. Empty
// input becomes "General"; unrecognized domains pass through unchanged.
func NormalizeDomain(raw string) string {
	if raw == "" {
		return "General"
	}
	switch strings.ToLower(raw) {
	case "healthcare":
		return "Healthcare"
	case "finance":
		return "Finance"
	case "ecommerce":
		return "E-Commerce"
	case "banking":
		return "Banking"
	case "business":
		return "Business"
	}
	return raw
}

// NormalizeType maps free-text project types by substring. Empty input
// becomes "Mini Project"; unrecognized types pass through unchanged.
func NormalizeType(raw string) string {
	if raw == "" {
		return "Mini Project"
	}
	t := strings.ToLower(raw)
	switch {
	case strings.Contains(t, "mini"):
		return "Mini Project"
	case strings.Contains(t, "final"):
		return "Final Project"
	case strings.Contains(t, "hackathon"):
		return "Hackathon Project"
	}
	return raw
}

// NormalizeSkillLevel folds the level to lower case and defaults
// anything unrecognized to "beginner".
func NormalizeSkillLevel(raw string) string {
	l := strings.ToLower(raw)
	if l == "beginner" || l == "intermediate" || l == "advanced" {
		return l
	}
	return "beginner"
}

// All returns the full catalog.
func All() []Template {
	return templates
}

// FindByID looks a template up by its numeric id.
func FindByID(id int) (Template, bool) {
	for _, tpl := range templates {
		if tpl.ID == id {
			return tpl, true
		}
	}
	return Template{}, false
}

// Filter returns the templates whose domain and type match the given
// normalized values case-insensitively and whose tag set contains the
// normalized skill level.
func Filter(domain, projType, level string) []Template {
	var out []Template
	for _, tpl := range templates {
		if strings.EqualFold(tpl.Domain, domain) &&
			strings.EqualFold(tpl.Type, projType) &&
			tpl.HasSkillTag(level) {
			out = append(out, tpl)
		}
	}
	return out
}
