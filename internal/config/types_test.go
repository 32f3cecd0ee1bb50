package config

import (
	"reflect"
	"testing"
)

func TestTypesKeepOrder(t *testing.T) {
	var types Types
	types.Add("feat", "a feature")
	types.Add("fix", "a fix")
	types.Add("docs", "documentation")

	if got, want := types.Keys(), []string{"feat", "fix", "docs"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if types.Len() != 3 {
		t.Errorf("Len() = %d, want 3", types.Len())
	}
}

func TestTypesAddExisting(t *testing.T) {
	var types Types
	types.Add("feat", "a feature")
	types.Add("fix", "a fix")
	types.Add("feat", "a better description")

	if got, want := types.Keys(), []string{"feat", "fix"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	if desc, _ := types.Description("feat"); desc != "a better description" {
		t.Errorf("Description(feat) = %q", desc)
	}
}

func TestTypesDescriptionMissing(t *testing.T) {
	var types Types
	if _, ok := types.Description("feat"); ok {
		t.Error("Description() reports a missing type as present")
	}
}

func TestTypesFromMap(t *testing.T) {
	m := map[string]string{"feat": "a", "fix": "b", "docs": "c"}

	t.Run("full order", func(t *testing.T) {
		types := typesFromMap(m, []string{"fix", "docs", "feat"})
		if got, want := types.Keys(), []string{"fix", "docs", "feat"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Keys() = %v, want %v", got, want)
		}
	})

	t.Run("partial order falls back to sorted", func(t *testing.T) {
		types := typesFromMap(m, []string{"fix"})
		if got, want := types.Keys(), []string{"fix", "docs", "feat"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Keys() = %v, want %v", got, want)
		}
	})

	t.Run("nil order falls back to sorted", func(t *testing.T) {
		types := typesFromMap(m, nil)
		if got, want := types.Keys(), []string{"docs", "feat", "fix"}; !reflect.DeepEqual(got, want) {
			t.Errorf("Keys() = %v, want %v", got, want)
		}
	})
}

func TestSplitTypeAndDesc(t *testing.T) {
	tests := []struct {
		entry string
		name  string
		desc  string
	}{
		{"feat  introduces a new feature", "feat", "introduces a new feature"},
		{"fix patches a bug", "fix", "patches a bug"},
		{"chore", "chore", ""},
		{"ci\tupdates the CI configuration", "ci", "updates the CI configuration"},
	}

	for _, tt := range tests {
		t.Run(tt.entry, func(t *testing.T) {
			name, desc := SplitTypeAndDesc(tt.entry)
			if name != tt.name || desc != tt.desc {
				t.Errorf("SplitTypeAndDesc(%q) = (%q, %q), want (%q, %q)",
					tt.entry, name, desc, tt.name, tt.desc)
			}
		})
	}
}
