package utils

import "testing"

func TestCapitalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "joão", want: "João"},
		{input: "MARIA", want: "Maria"},
		{input: "élida sOUZA", want: "Élida souza"},
		{input: "a", want: "A"},
		{input: "1º andar", want: "1º andar"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := Capitalize(tt.input); got != tt.want {
			t.Errorf("Capitalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCapitalizeWords(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "maria  DA silva", want: "Maria Da Silva"},
		{input: "  joão ", want: "João"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		if got := CapitalizeWords(tt.input); got != tt.want {
			t.Errorf("CapitalizeWords(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
