package animals

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/microcosm-cc/bluemonday"
)

var (
	youtubeURL = regexp.MustCompile(`https?://(?:www\.)?(?:youtube\.com|youtu\.be)/[^\s"'<>]+`)

	// el scraper a veces deja <br>, <p> o <strong> en la descripción
	stripTags = bluemonday.StrictPolicy()
)

// Debajo de este largo (en runas, por mitad) no intentamos deduplicar.
const minDedupHalf = 20

// CleanDescription quita links de YouTube, HTML y líneas vacías, y colapsa
// descripciones que el scraper trae duplicadas (mismo texto dos veces).
func CleanDescription(raw string) string {
	withoutURLs := youtubeURL.ReplaceAllString(raw, "")
	withoutURLs = strings.TrimSpace(html.UnescapeString(stripTags.Sanitize(withoutURLs)))

	lines := make([]string, 0)
	for _, l := range strings.Split(withoutURLs, "\n") {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}

	return dedupHalves(strings.Join(lines, "\n"))
}

func dedupHalves(joined string) string {
	runes := []rune(joined)
	half := len(runes) / 2
	if half < minDedupHalf {
		return joined
	}

	first := strings.TrimSpace(string(runes[:half]))
	second := strings.TrimSpace(string(runes[half:]))

	if strings.HasSuffix(first, second) ||
		strings.HasPrefix(second, first) ||
		similarity(first, second) > 0.8 {
		if utf8.RuneCountInString(first) >= utf8.RuneCountInString(second) {
			return first
		}
		return second
	}
	return joined
}

// similarity = 1 - distancia/largo_max, en [0,1].
func similarity(a, b string) float64 {
	maxLen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 1
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(maxLen)
}

// VideoLinks junta los videos explícitos con los links de YouTube
// embebidos en la descripción, sin repetidos y en orden de aparición.
func VideoLinks(a Animal) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)

	add := func(v string) {
		if strings.TrimSpace(v) == "" {
			return
		}
		if _, ok := seen[v]; ok {
			return
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	for _, v := range a.Videos {
		add(v)
	}
	for _, v := range youtubeURL.FindAllString(a.Description, -1) {
		add(v)
	}
	return out
}
