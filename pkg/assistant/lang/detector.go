package lang

const (
	TagArabic  = "ar"
	TagEnglish = "en"
)

// ContainsArabic reports whether the text holds at least one rune from
// the Arabic Unicode blocks, including supplements and presentation forms.
func ContainsArabic(text string) bool {
	for _, r := range text {
		if isArabicRune(r) {
			return true
		}
	}
	return false
}

// Tag returns "ar" when the text contains any Arabic script, "en" otherwise.
func Tag(text string) string {
	if ContainsArabic(text) {
		return TagArabic
	}
	return TagEnglish
}

func isArabicRune(r rune) bool {
	switch {
	case r >= 0x0600 && r <= 0x06FF: // Arabic
		return true
	case r >= 0x0750 && r <= 0x077F: // Arabic Supplement
		return true
	case r >= 0x08A0 && r <= 0x08FF: // Arabic Extended-A
		return true
	case r >= 0xFB50 && r <= 0xFDFF: // Arabic Presentation Forms-A
		return true
	case r >= 0xFE70 && r <= 0xFEFF: // Arabic Presentation Forms-B
		return true
	}
	return false
}
