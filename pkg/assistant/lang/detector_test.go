package lang

import (
	"testing"
)

func TestContainsArabic(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{
			name: "empty string",
			text: "",
			want: false,
		},
		{
			name: "plain english",
			text: "How many unread emails do I have?",
			want: false,
		},
		{
			name: "plain arabic",
			text: "كم عدد الرسائل غير المقروءة؟",
			want: true,
		},
		{
			name: "mixed text with single arabic word",
			text: "please check بريد for me",
			want: true,
		},
		{
			name: "digits and punctuation only",
			text: "1234 ?! ...",
			want: false,
		},
		{
			name: "arabic presentation form",
			text: "ﻻtest",
			want: true,
		},
		{
			name: "arabic supplement range",
			text: "ݐ",
			want: true,
		},
		{
			name: "non-arabic rtl script (hebrew)",
			text: "שלום",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsArabic(tt.text); got != tt.want {
				t.Errorf("ContainsArabic(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTag(t *testing.T) {
	if got := Tag("مرحبا"); got != TagArabic {
		t.Errorf("Tag(arabic) = %q, want %q", got, TagArabic)
	}
	if got := Tag("hello"); got != TagEnglish {
		t.Errorf("Tag(english) = %q, want %q", got, TagEnglish)
	}
	if got := Tag(""); got != TagEnglish {
		t.Errorf("Tag(empty) = %q, want %q", got, TagEnglish)
	}
}
