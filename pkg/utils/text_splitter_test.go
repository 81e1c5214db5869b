package utils

import (
	"strings"
	"testing"
)

func TestSplitText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		chunkSize int
		overlap   int
		want      int
	}{
		{
			name:      "short text single chunk",
			text:      "hello",
			chunkSize: 10,
			overlap:   2,
			want:      1,
		},
		{
			name:      "exact chunk size",
			text:      strings.Repeat("a", 10),
			chunkSize: 10,
			overlap:   2,
			want:      1,
		},
		{
			name:      "two chunks with overlap",
			text:      strings.Repeat("a", 15),
			chunkSize: 10,
			overlap:   2,
			want:      2,
		},
		{
			name:      "overlap larger than chunk falls back to step",
			text:      strings.Repeat("a", 25),
			chunkSize: 10,
			overlap:   15,
			want:      3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := SplitText(tt.text, tt.chunkSize, tt.overlap)
			if len(chunks) != tt.want {
				t.Errorf("SplitText() produced %d chunks, want %d", len(chunks), tt.want)
			}
			for i, chunk := range chunks {
				if len([]rune(chunk)) > tt.chunkSize {
					t.Errorf("chunk %d exceeds chunk size: %d", i, len([]rune(chunk)))
				}
			}
		})
	}
}

func TestSplitTextOverlapPreservesBoundary(t *testing.T) {
	text := "abcdefghij" + "klmnopqrst"
	chunks := SplitText(text, 10, 4)
	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}
	// Second chunk starts 4 runes before the end of the first.
	if !strings.HasPrefix(chunks[1], "ghij") {
		t.Errorf("chunk overlap missing, second chunk = %q", chunks[1])
	}
}

func TestSplitTextHandlesMultibyteRunes(t *testing.T) {
	text := strings.Repeat("م", 12)
	chunks := SplitText(text, 5, 1)
	for i, chunk := range chunks {
		if n := len([]rune(chunk)); n > 5 {
			t.Errorf("chunk %d has %d runes, want <= 5", i, n)
		}
	}
}
