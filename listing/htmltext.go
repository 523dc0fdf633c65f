package listing

import (
	"html"
	"regexp"
	"strings"
)

var (
	closingPara = regexp.MustCompile(`(?i)</p>`)
	lineBreak   = regexp.MustCompile(`(?i)<br\s*/?>`)
	anyTag      = regexp.MustCompile(`<[^>]+>`)
	nbsp        = regexp.MustCompile(`(?i)&nbsp;`)
	newlineRuns = regexp.MustCompile(`\n{3,}`)
)

// HTMLToText converts a vendor HTML description to plain text with paragraph
// structure preserved: closing paragraph tags become a blank line, <br>
// becomes a newline, every other tag is stripped, and named and numeric HTML
// entities are decoded. Runs of three or more newlines collapse to a blank
// line.
func HTMLToText(s string) string {
	if s == "" {
		return ""
	}
	s = closingPara.ReplaceAllString(s, "\n\n")
	s = lineBreak.ReplaceAllString(s, "\n")
	s = anyTag.ReplaceAllString(s, "")
	s = nbsp.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = newlineRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
