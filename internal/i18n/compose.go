package i18n

import (
	"strconv"
	"strings"

	"github.com/punchamoorthee/bankmitra/internal/domain"
)

// Render resolves a template key for the requested language, substituting
// {placeholder} parameters. When the language has no variant for the key it
// falls back to the default language; it never returns empty text for an
// unknown language or key.
func Render(key Key, language string, params map[string]string) string {
	variants := lookup(key, language)
	if len(variants) == 0 {
		variants = lookup(KeyHelp, FallbackLanguage)
	}
	text := variants[0]
	for name, value := range params {
		text = strings.ReplaceAll(text, "{"+name+"}", value)
	}
	return text
}

func lookup(key Key, language string) []string {
	byLang, ok := catalog[key]
	if !ok {
		return nil
	}
	if variants := byLang[language]; len(variants) > 0 {
		return variants
	}
	return byLang[FallbackLanguage]
}

// Rupees formats an amount with the rupee sign and Indian digit grouping:
// the last three digits, then groups of two (₹1,00,000).
func Rupees(amount domain.Money) string {
	return "₹" + groupIndian(strconv.FormatInt(amount, 10))
}

func groupIndian(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	if len(digits) > 3 {
		head := digits[:len(digits)-3]
		var parts []string
		for len(head) > 2 {
			parts = append([]string{head[len(head)-2:]}, parts...)
			head = head[:len(head)-2]
		}
		if head != "" {
			parts = append([]string{head}, parts...)
		}
		digits = strings.Join(parts, ",") + "," + digits[len(digits)-3:]
	}
	if neg {
		return "-" + digits
	}
	return digits
}
