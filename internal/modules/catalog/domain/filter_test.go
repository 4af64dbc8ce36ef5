package domain

import (
	"reflect"
	"testing"
)

func sampleModules() []ModuleSummary {
	return []ModuleSummary{
		{ModuleID: "IN2003", Name: "Efficient Algorithms", Credits: 8, Category: "Theory", Language: "English", Occurrence: "winter semester"},
		{ModuleID: "IN2018", Name: "Compiler Construction", Credits: 5, Category: "Theory", Language: "English", Occurrence: "summer semester"},
		{ModuleID: "IN2342", Name: "Cloud Computing", Credits: 6, Category: "Systems", Language: "English", Occurrence: "winter semester"},
		{ModuleID: "IN2339", Name: "Data Analysis", Credits: 8, Category: "Data", Language: "English", Occurrence: "winter semester"},
		{ModuleID: "IN0010", Name: "Rechnernetze", Credits: 6, Category: "Systems", Language: "German", Occurrence: "summer semester"},
		{ModuleID: "IN0042", Name: "Praktikum Datenbanken", Credits: 10, Category: "Data", Language: "German", Occurrence: "winter semester"},
		{ModuleID: "IN2064", Name: "Machine Learning", Credits: 8, Category: "Data", Language: "English", Occurrence: "winter semester"},
		{ModuleID: "IN0008", Name: "Grundlagen Datenbanken", Credits: 6, Category: "Data", Language: "German", Occurrence: "winter semester"},
		{ModuleID: "IN2395", Name: "Quantum Computing", Credits: 5, Category: "Theory", Language: "English", Occurrence: "summer semester"},
		{ModuleID: "IN0015", Name: "Diskrete Strukturen", Credits: 8, Category: "Theory", Language: "German", Occurrence: "winter semester"},
	}
}

func TestFilterByLanguageLeavesInputIntact(t *testing.T) {
	t.Parallel()

	modules := sampleModules()
	original := append([]ModuleSummary(nil), modules...)

	english := Filter{Language: "English"}.Apply(modules)
	if len(english) != 6 {
		t.Fatalf("len(english) = %d, want 6", len(english))
	}
	for _, module := range english {
		if module.Language != "English" {
			t.Fatalf("non-English module in result: %+v", module)
		}
	}
	if !reflect.DeepEqual(modules, original) {
		t.Fatalf("Apply() mutated its input")
	}
}

func TestFilterCombinesConstraints(t *testing.T) {
	t.Parallel()

	filter := Filter{Category: "Data", Language: "English", MinCredits: 8}
	got := filter.Apply(sampleModules())
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (Data Analysis, Machine Learning), got %+v", len(got), got)
	}
}

func TestFilterCreditRange(t *testing.T) {
	t.Parallel()

	got := Filter{MinCredits: 6, MaxCredits: 8}.Apply(sampleModules())
	for _, module := range got {
		if module.Credits < 6 || module.Credits > 8 {
			t.Fatalf("module outside credit range: %+v", module)
		}
	}
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
}

func TestFilterSearchTermMatchesNameAndCode(t *testing.T) {
	t.Parallel()

	byName := Filter{SearchTerm: "daten"}.Apply(sampleModules())
	if len(byName) != 2 {
		t.Fatalf("search daten = %d results, want 2", len(byName))
	}

	byCode := Filter{SearchTerm: "in2342"}.Apply(sampleModules())
	if len(byCode) != 1 || byCode[0].ModuleID != "IN2342" {
		t.Fatalf("search in2342 = %+v, want Cloud Computing only", byCode)
	}
}

func TestEmptyFilterKeepsEverything(t *testing.T) {
	t.Parallel()

	if got := (Filter{}).Apply(sampleModules()); len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
}

func TestOptionsOf(t *testing.T) {
	t.Parallel()

	options := OptionsOf(sampleModules())
	if !reflect.DeepEqual(options.Categories, []string{"Data", "Systems", "Theory"}) {
		t.Fatalf("Categories = %v", options.Categories)
	}
	if !reflect.DeepEqual(options.Languages, []string{"English", "German"}) {
		t.Fatalf("Languages = %v", options.Languages)
	}
	if !reflect.DeepEqual(options.Occurrences, []string{"summer semester", "winter semester"}) {
		t.Fatalf("Occurrences = %v", options.Occurrences)
	}
}
