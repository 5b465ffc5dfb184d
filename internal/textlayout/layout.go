/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package textlayout measures dialogue text against the player's text box
// geometry so overlong frames are caught at authoring time instead of as
// clipped text during playback. Measurement is isolated behind the Provider
// interface; the bundled basicfont provider keeps it deterministic.
package textlayout

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// FontSpec describes a requested font.
type FontSpec struct {
	Family string // logical family name
	SizePt float32
	Weight int // 100..900
	Italic bool
}

// Metrics provides font metrics in pixels for the resolved face.
type Metrics struct {
	Ascent, Descent, LineGap float32
}

// Provider maps FontSpec to a concrete font.Face.
type Provider interface {
	Resolve(FontSpec) (font.Face, Metrics)
}

// BasicProvider uses x/image/basicfont Face7x13. Its advances differ from
// the player's webfont, so Box widths are calibrated against this face, not
// against on-screen pixels.
type BasicProvider struct{}

func (BasicProvider) Resolve(spec FontSpec) (font.Face, Metrics) {
	f := basicfont.Face7x13
	m := f.Metrics()
	return f, Metrics{
		Ascent:  float32(m.Ascent.Round()),
		Descent: float32(m.Descent.Round()),
		LineGap: float32(m.Height.Round() - m.Ascent.Round() - m.Descent.Round()),
	}
}

// WrapText breaks text into lines the way the player's text box does: on
// spaces, with explicit newlines honored and a word wider than maxWidth
// placed on a line of its own. Markup must already be stripped.
func WrapText(p Provider, text string, maxWidth float32) []string {
	if p == nil {
		p = BasicProvider{}
	}
	face, _ := p.Resolve(FontSpec{})
	drawer := &font.Drawer{Face: face}

	var lines []string
	var cur string
	var curWidth float32
	flush := func() {
		lines = append(lines, cur)
		cur, curWidth = "", 0
	}

	start := 0
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != ' ' && text[i] != '\n' {
			continue
		}
		word := text[start:i]
		if word != "" {
			w := advance(drawer, word)
			sep := float32(0)
			if cur != "" {
				sep = advance(drawer, " ")
			}
			if cur != "" && maxWidth > 0 && curWidth+sep+w > maxWidth {
				flush()
				sep = 0
			}
			if cur != "" {
				cur += " "
			}
			cur += word
			curWidth += sep + w
		}
		if i < len(text) && text[i] == '\n' {
			flush()
		}
		start = i + 1
	}
	if cur != "" || len(lines) == 0 {
		flush()
	}
	return lines
}

func advance(d *font.Drawer, s string) float32 {
	return float32(d.MeasureString(s) >> 6) // fixed.Int26_6 to px
}

// Measure returns the unwrapped width of text and the height of one line.
func Measure(p Provider, text string) (w, h float32) {
	if p == nil {
		p = BasicProvider{}
	}
	face, met := p.Resolve(FontSpec{})
	d := &font.Drawer{Face: face}
	return advance(d, text), met.Ascent + met.Descent
}
