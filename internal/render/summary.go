package render

import (
	"mime"
	"strings"
	"unicode/utf8"

	xhtml "golang.org/x/net/html"
)

// DefaultSummaryLimit bounds the length of response bodies copied into the
// diagnostic log.
const DefaultSummaryLimit = 512

// BodySummary reduces an HTTP response body to a single line of plain text
// for logging. HTML bodies (error pages from proxies and dev servers) are
// stripped to their visible text; everything else is whitespace-collapsed.
// The result is cut to at most limit runes, with "..." appended when cut.
func BodySummary(contentType string, body []byte, limit int) string {
	if len(body) == 0 {
		return ""
	}

	var text string
	if isHTML(contentType, body) {
		text = htmlToText(string(body))
	} else {
		text = strings.Join(strings.Fields(string(body)), " ")
	}
	return truncate(text, limit)
}

func isHTML(contentType string, body []byte) bool {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil {
		return mt == "text/html" || mt == "application/xhtml+xml"
	}
	head := strings.ToLower(strings.TrimSpace(string(body[:min(len(body), 64)])))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

func htmlToText(raw string) string {
	tokenizer := xhtml.NewTokenizer(strings.NewReader(raw))
	var parts []string
	skip := 0

	for {
		switch tokenizer.Next() {
		case xhtml.ErrorToken:
			return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")

		case xhtml.StartTagToken:
			switch tokenizer.Token().Data {
			case "script", "style", "head":
				skip++
			}

		case xhtml.EndTagToken:
			switch tokenizer.Token().Data {
			case "script", "style", "head":
				if skip > 0 {
					skip--
				}
			}

		case xhtml.TextToken:
			if skip == 0 {
				parts = append(parts, tokenizer.Token().Data)
			}
		}
	}
}

func truncate(s string, limit int) string {
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	r := []rune(s)
	return string(r[:limit]) + "..."
}
