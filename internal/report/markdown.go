package report

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// Markdown renders r with one section per highlight segment followed by the
// ranked sentences.
func Markdown(r Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Title)
	fmt.Fprintf(&b, "_%s_", r.GeneratedAt.Format("2006-01-02 15:04"))
	if r.Source != "" {
		fmt.Fprintf(&b, " · `%s`", r.Source)
	}
	b.WriteString("\n\n")

	if len(r.Result.Segments) == 0 {
		b.WriteString("No highlights.\n")
		return b.String()
	}

	b.WriteString("## Highlights\n\n")
	for _, s := range r.Result.Segments {
		fmt.Fprintf(&b, "### %s - %s\n\n%s\n\n", Timestamp(s.Offset), Timestamp(s.Offset+s.Duration), escapeMarkdown(s.Text))
	}

	b.WriteString("## Key sentences\n\n")
	for i, s := range r.Result.Selected {
		fmt.Fprintf(&b, "%d. %s **(%.3f)**\n", i+1, escapeMarkdown(s.Text), s.Score)
	}

	if len(r.Result.Warnings) > 0 {
		b.WriteString("\n---\n\n")
		for _, w := range r.Result.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	return b.String()
}

func (w *implWriter) WriteMarkdown(r Report, path string) error {
	if err := os.WriteFile(path, []byte(Markdown(r)), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}

var (
	mdInline  = strings.NewReplacer(`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`, "[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`)
	reMdBlock = regexp.MustCompile(`(?m)^([ \t]*)([#+\-]|\d+)(\.?[ \t])`)
)

// escapeMarkdown makes transcript text render literally: inline markers are
// backslash-escaped and a leading heading or list marker is neutralized.
func escapeMarkdown(s string) string {
	s = mdInline.Replace(s)
	return reMdBlock.ReplaceAllStringFunc(s, func(line string) string {
		m := reMdBlock.FindStringSubmatch(line)
		indent, marker, rest := m[1], m[2], m[3]
		if strings.HasPrefix(rest, ".") {
			return indent + marker + `\` + rest
		}
		if marker[0] >= '0' && marker[0] <= '9' {
			return line
		}
		return indent + `\` + marker + rest
	})
}

// Timestamp formats seconds as HH:MM:SS.
func Timestamp(seconds float64) string {
	total := int(seconds)
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
