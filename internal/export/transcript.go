/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"courtwriter/internal/domain"
	"courtwriter/internal/textlayout"
)

// TranscriptOptions controls PDF transcript rendering. Units are points.
type TranscriptOptions struct {
	Title  string
	Author string
}

const (
	transcriptMargin   = 54.0 // 0.75in
	transcriptBody     = 11.0
	transcriptLeading  = 15.0
	transcriptIndent   = 18.0
	transcriptFrameGap = 6.0
)

// ExportTranscriptPDF renders the project's dialogue as a readable PDF
// transcript: one section per group, speaker name plates in bold, markup
// stripped from the text. Cross-examination press, counsel and failure
// sequences appear indented under their group.
func ExportTranscriptPDF(p *domain.Project, outPath string, opt TranscriptOptions) error {
	if p == nil {
		return fmt.Errorf("project is nil")
	}
	title := opt.Title
	if title == "" {
		title = "Transcript"
	}
	author := opt.Author
	if author == "" {
		author = "CourtWriter"
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAuthor(author, true)
	pdf.SetMargins(transcriptMargin, transcriptMargin, transcriptMargin)
	pdf.SetAutoPageBreak(true, transcriptMargin)
	pdf.AddPage()

	// Built-in Helvetica keeps text vector without embedding
	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 20, title, "", "L", false)
	pdf.Ln(8)

	for gi, g := range p.Groups {
		if gi > 0 {
			pdf.Ln(10)
		}
		writeGroupHeading(pdf, g)
		for si, f := range g.Frames {
			writeFrame(pdf, f, 0)
			if g.Kind() == domain.GroupCrossExamination && len(f.Press) > 0 {
				writeSequence(pdf, fmt.Sprintf("Press statement %d", si+1), f.Press)
			}
		}
		if g.Kind() == domain.GroupCrossExamination {
			if counsel, err := g.CounselSequence(); err == nil && len(counsel) > 0 {
				writeSequence(pdf, "Counsel", counsel)
			}
			if failure, err := g.FailureSequence(); err == nil && len(failure) > 0 {
				writeSequence(pdf, "Failed present", failure)
			}
		}
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

func writeGroupHeading(pdf *gofpdf.Fpdf, g *domain.Group) {
	name := g.Name
	switch g.Kind() {
	case domain.GroupCrossExamination:
		name += " (cross-examination)"
	case domain.GroupGameOver:
		name += " (game over)"
	}
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 17, name, "", "L", false)
	pdf.Ln(4)
}

func writeSequence(pdf *gofpdf.Fpdf, label string, frames []*domain.Frame) {
	pdf.SetFont("Helvetica", "I", transcriptBody)
	pdf.SetX(transcriptMargin + transcriptIndent)
	pdf.MultiCell(0, transcriptLeading, label, "", "L", false)
	for _, f := range frames {
		writeFrame(pdf, f, transcriptIndent)
	}
}

func writeFrame(pdf *gofpdf.Fpdf, f *domain.Frame, indent float64) {
	text := textlayout.StripMarkup(f.Text)
	if text == "" && f.Action == nil {
		return
	}
	left := transcriptMargin + indent
	if name := speakerName(f); name != "" {
		pdf.SetFont("Helvetica", "B", transcriptBody)
		pdf.SetX(left)
		pdf.MultiCell(0, transcriptLeading, name, "", "L", false)
	}
	if text != "" {
		pdf.SetFont("Helvetica", "", transcriptBody)
		pdf.SetX(left)
		pdf.MultiCell(0, transcriptLeading, text, "", "L", false)
	}
	pdf.Ln(transcriptFrameGap)
}

// speakerName picks the displayed name plate for a frame: the custom name
// wins, then the character's plate, then its plain name.
func speakerName(f *domain.Frame) string {
	if f.CustomName != "" {
		return f.CustomName
	}
	if f.Char == nil || f.Char.Character.IsNone() {
		return ""
	}
	if f.Char.Character.NamePlate != "" {
		return f.Char.Character.NamePlate
	}
	return f.Char.Character.Name
}
