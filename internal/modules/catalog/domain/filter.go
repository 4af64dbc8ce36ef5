package domain

import (
	"sort"
	"strings"
)

// Filter narrows a module listing. Zero values mean "no constraint"; a
// MaxCredits of 0 is treated as unbounded.
type Filter struct {
	Category    string
	Subcategory string
	Language    string
	Occurrence  string
	MinCredits  int
	MaxCredits  int
	SearchTerm  string
}

// Apply returns the modules matching the filter. The input slice is left
// untouched.
func (f Filter) Apply(modules []ModuleSummary) []ModuleSummary {
	out := make([]ModuleSummary, 0, len(modules))
	for _, module := range modules {
		if f.matches(module) {
			out = append(out, module)
		}
	}
	return out
}

func (f Filter) matches(m ModuleSummary) bool {
	if f.Category != "" && m.Category != f.Category {
		return false
	}
	if f.Subcategory != "" && m.Subcategory != f.Subcategory {
		return false
	}
	if f.Language != "" && !strings.EqualFold(m.Language, f.Language) {
		return false
	}
	if f.Occurrence != "" && !strings.EqualFold(m.Occurrence, f.Occurrence) {
		return false
	}
	if m.Credits < f.MinCredits {
		return false
	}
	if f.MaxCredits > 0 && m.Credits > f.MaxCredits {
		return false
	}
	if f.SearchTerm != "" {
		term := strings.ToLower(f.SearchTerm)
		name := strings.ToLower(m.Name)
		code := strings.ToLower(m.ModuleID)
		if !strings.Contains(name, term) && !strings.Contains(code, term) {
			return false
		}
	}
	return true
}

// FilterOptions lists the distinct values a module set offers, sorted, for
// building filter menus.
type FilterOptions struct {
	Categories  []string
	Languages   []string
	Occurrences []string
}

func OptionsOf(modules []ModuleSummary) FilterOptions {
	categories := map[string]struct{}{}
	languages := map[string]struct{}{}
	occurrences := map[string]struct{}{}
	for _, module := range modules {
		if module.Category != "" {
			categories[module.Category] = struct{}{}
		}
		if module.Language != "" {
			languages[module.Language] = struct{}{}
		}
		if module.Occurrence != "" {
			occurrences[module.Occurrence] = struct{}{}
		}
	}
	return FilterOptions{
		Categories:  sortedKeys(categories),
		Languages:   sortedKeys(languages),
		Occurrences: sortedKeys(occurrences),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
