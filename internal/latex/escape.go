package latex

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// latexEscaper rewrites LaTeX control characters in a single pass, so a
// replacement never reintroduces a character that another rule would escape.
var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"^", `\textasciicircum{}`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
)

// Escape makes text safe for LaTeX body context.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	return latexEscaper.Replace(text)
}

var placeholderPattern = regexp.MustCompile(`\[(TABLE|LIST|EQUATION|FIGURE)_\d+\]`)

// EscapePreservingPlaceholders escapes text while keeping element placeholder
// tokens intact. Tokens are swapped for NUL-delimited sentinels (which no
// escape rule touches) and restored verbatim afterwards.
func EscapePreservingPlaceholders(text string) string {
	if text == "" {
		return ""
	}
	var tokens []string
	protected := placeholderPattern.ReplaceAllStringFunc(text, func(tok string) string {
		tokens = append(tokens, tok)
		return "\x00" + strconv.Itoa(len(tokens)-1) + "\x00"
	})
	escaped := Escape(protected)
	for i, tok := range tokens {
		escaped = strings.Replace(escaped, "\x00"+strconv.Itoa(i)+"\x00", tok, 1)
	}
	return escaped
}

var (
	labelStrip   = regexp.MustCompile(`[^a-z0-9\s-]`)
	labelSpaces  = regexp.MustCompile(`\s+`)
	labelRepeats = regexp.MustCompile(`-+`)
)

// Label derives a LaTeX-safe label slug from text. With a prefix the result
// is "prefix:slug".
func Label(text, prefix string) string {
	if strings.TrimSpace(text) == "" {
		if prefix != "" {
			return prefix + ":unnamed"
		}
		return "unnamed"
	}
	slug := strings.ToLower(text)
	slug = labelStrip.ReplaceAllString(slug, "")
	slug = labelSpaces.ReplaceAllString(strings.TrimSpace(slug), "-")
	slug = labelRepeats.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	if prefix != "" {
		return prefix + ":" + slug
	}
	return slug
}

// SplitAffiliation maps a comma-separated affiliation string onto
// (institution, city, country), filling placeholders for missing parts.
func SplitAffiliation(affiliation string) (institution, city, country string) {
	institution, city, country = "Institution", "City", "Country"
	parts := strings.Split(affiliation, ",")
	trimmed := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			trimmed = append(trimmed, p)
		}
	}
	switch {
	case len(trimmed) >= 3:
		return trimmed[0], trimmed[1], trimmed[2]
	case len(trimmed) == 2:
		return trimmed[0], trimmed[1], country
	case len(trimmed) == 1:
		return trimmed[0], city, country
	}
	return institution, city, country
}

// SplitName splits a full author name into given name and surname. Single
// token names have no surname; multi-token names keep the first token as the
// given name and join the rest.
func SplitName(name string) (given, surname string) {
	fields := strings.Fields(name)
	switch len(fields) {
	case 0:
		return "Author", "Name"
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

var citationGroup = regexp.MustCompile(`\[(\d+(?:[,\s\-]\d+)*)\]`)

// ParseCitations extracts the set of citation numbers referenced in text.
// Bracket groups may hold comma lists and ranges like "3-5"; duplicates
// collapse and the result is sorted ascending.
func ParseCitations(text string) []int {
	seen := map[int]bool{}
	for _, m := range citationGroup.FindAllStringSubmatch(text, -1) {
		for _, n := range expandCitationGroup(m[1]) {
			seen[n] = true
		}
	}
	nums := make([]int, 0, len(seen))
	for n := range seen {
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// expandCitationGroup expands the inside of one bracket group ("1, 3-5")
// into individual citation numbers.
func expandCitationGroup(group string) []int {
	var nums []int
	for _, part := range strings.FieldsFunc(group, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
		if lo, hi, ok := strings.Cut(part, "-"); ok {
			start, err1 := strconv.Atoi(lo)
			end, err2 := strconv.Atoi(hi)
			if err1 != nil || err2 != nil {
				continue
			}
			for n := start; n <= end; n++ {
				nums = append(nums, n)
			}
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			nums = append(nums, n)
		}
	}
	return nums
}

// formatCitation renders a bracket group body as a \cite command with a flat
// comma-separated id list.
func formatCitation(group string) string {
	nums := expandCitationGroup(group)
	if len(nums) == 0 {
		return "[" + group + "]"
	}
	seen := map[int]bool{}
	ids := make([]string, 0, len(nums))
	for _, n := range nums {
		if !seen[n] {
			seen[n] = true
			ids = append(ids, strconv.Itoa(n))
		}
	}
	return fmt.Sprintf(`\cite{%s}`, strings.Join(ids, ","))
}
