package i18n

import (
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength bounds header parsing; RFC 7231 sets no limit but
// 4KB is generous for legitimate headers.
const maxAcceptLanguageLength = 4096

type langWithQ struct {
	lang string
	q    float64
}

// DetectLanguage picks the best supported language from an Accept-Language
// header, honoring quality values and matching language prefixes
// ("en-US" matches "en"). Returns DefaultLanguage when nothing matches.
func DetectLanguage(header string, supported []string) string {
	for _, candidate := range parseAcceptLanguage(header) {
		if slices.Contains(supported, candidate.lang) {
			return candidate.lang
		}
		if base, _, ok := strings.Cut(candidate.lang, "-"); ok && slices.Contains(supported, base) {
			return base
		}
	}
	return DefaultLanguage
}

// parseAcceptLanguage parses an Accept-Language header per RFC 7231,
// handling malformed entries gracefully and returning entries ordered by
// descending quality.
func parseAcceptLanguage(header string) []langWithQ {
	if header == "" {
		return nil
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var languages []langWithQ
	for _, part := range strings.Split(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		langAndQ := strings.Split(part, ";")
		lang := strings.ToLower(strings.TrimSpace(langAndQ[0]))
		q := 1.0
		if len(langAndQ) > 1 {
			qPart := strings.TrimSpace(langAndQ[1])
			if qVal, ok := strings.CutPrefix(qPart, "q="); ok {
				if parsed, err := strconv.ParseFloat(qVal, 64); err == nil && parsed >= 0 && parsed <= 1 {
					q = parsed
				}
			}
		}
		if lang != "" && lang != "*" {
			languages = append(languages, langWithQ{lang: lang, q: q})
		}
	}

	slices.SortStableFunc(languages, func(a, b langWithQ) int {
		switch {
		case a.q > b.q:
			return -1
		case a.q < b.q:
			return 1
		default:
			return 0
		}
	})
	return languages
}
