package textutil

import "testing"

func TestCapitalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"bulbasaur", "Bulbasaur"},
		{"mr. mime", "Mr. Mime"},
		{"ho-oh", "Ho-oh"},
		{"seed pokémon", "Seed Pokémon"},
		{"éclair", "Éclair"},
		{"", ""},
		{"double  space", "Double  Space"},
	}
	for _, tt := range tests {
		if got := Capitalize(tt.in); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestContainsBrokenSubstring(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s, sub string
		want   bool
	}{
		{"bulbasaur", "bsr", true},
		{"bulbasaur", "bulbasaur", true},
		{"bulbasaur", "saur", true},
		{"bulbasaur", "rb", false},
		{"pikachu", "pikachuu", false},
		{"flabébé", "fbb", true},
		{"eevee", "", false},
		{"", "a", false},
	}
	for _, tt := range tests {
		if got := ContainsBrokenSubstring(tt.s, tt.sub); got != tt.want {
			t.Errorf("ContainsBrokenSubstring(%q, %q) = %v, want %v", tt.s, tt.sub, got, tt.want)
		}
	}
}
