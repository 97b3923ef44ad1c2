package report

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

// WriteDocx renders r into a styled docx file. Transcript text is written as
// plain runs, never parsed for markup.
func (w *implWriter) WriteDocx(r Report, path string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), r.Title, true, headingSize(1))

	byline := r.GeneratedAt.Format("2006-01-02 15:04")
	if r.Source != "" {
		byline += " · " + r.Source
	}
	addStyledRun(doc.AddParagraph(""), byline, false, fontSize)

	if len(r.Result.Segments) == 0 {
		addStyledRun(doc.AddParagraph(""), "No highlights.", false, fontSize)
	} else {
		addStyledRun(doc.AddParagraph(""), "Highlights", true, headingSize(2))
		for _, s := range r.Result.Segments {
			span := Timestamp(s.Offset) + " - " + Timestamp(s.Offset+s.Duration)
			addStyledRun(doc.AddParagraph(""), span, true, headingSize(3))
			addStyledRun(doc.AddParagraph(""), s.Text, false, fontSize)
		}

		addStyledRun(doc.AddParagraph(""), "Key sentences", true, headingSize(2))
		for i, s := range r.Result.Selected {
			p := doc.AddParagraph("")
			addStyledRun(p, fmt.Sprintf("%d. %s ", i+1, s.Text), false, fontSize)
			addStyledRun(p, fmt.Sprintf("(%.3f)", s.Score), true, fontSize)
		}

		for _, warning := range r.Result.Warnings {
			addStyledRun(doc.AddParagraph(""), "• "+warning.Error(), false, fontSize)
		}
	}

	if err := doc.SaveTo(path); err != nil {
		return fmt.Errorf("save docx: %w", err)
	}
	return nil
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 16
	case 2:
		return 15
	case 3:
		return 14
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
