package tokenize

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "simple sentence",
			input: "Bu film çok güzeldi",
			want:  []string{"bu", "film", "çok", "güzeldi"},
		},
		{
			name:  "punctuation removed in place",
			input: "Film güzel'di, değil mi?",
			want:  []string{"film", "güzeldi", "değil", "mi"},
		},
		{
			name:  "turkish dotted capital I",
			input: "İyi İNSAN",
			want:  []string{"iyi", "insan"},
		},
		{
			name:  "turkish dotless capital I",
			input: "IRMAK",
			want:  []string{"ırmak"},
		},
		{
			name:  "digits dropped",
			input: "film 10 numara",
			want:  []string{"film", "numara"},
		},
		{
			name:  "extra whitespace",
			input: "  bu   film\tgüzel\n",
			want:  []string{"bu", "film", "güzel"},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "only punctuation",
			input: "?!... 42",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Bu film çok güzeldi!",
		"Film hiç iyi değildi...",
		"İYİ kötü ORTA",
	}
	for _, input := range inputs {
		first := Normalize(input)
		second := Normalize(join(first))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Normalize not idempotent for %q: first %v, second %v", input, first, second)
		}
	}
}

func TestLower(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"İyi", "iyi"},
		{"IŞIK", "ışık"},
		{"GÜZEL", "güzel"},
		{"kötü", "kötü"},
	}
	for _, tt := range tests {
		if got := Lower(tt.input); got != tt.want {
			t.Errorf("Lower(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func join(tokens []string) string {
	s := ""
	for i, tok := range tokens {
		if i > 0 {
			s += " "
		}
		s += tok
	}
	return s
}
