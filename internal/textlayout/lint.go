/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package textlayout

import (
	"regexp"
	"strings"

	"courtwriter/internal/domain"
)

// Box is the dialogue box geometry used for the fit check. Width is in
// BasicProvider pixels (see the calibration note there).
type Box struct {
	Width    float32
	MaxLines int
}

// DefaultBox approximates the classic chatbox: three visible lines.
func DefaultBox() Box {
	return Box{Width: 245, MaxLines: 3}
}

// player markup: [#bgm12], [#bgs4], [#evd1], color/rate runs like [#/r60]
// and their closers. The player renders none of these as glyphs.
var reMarkup = regexp.MustCompile(`\[#?/?[a-zA-Z]*[0-9]*\]`)

// StripMarkup removes player control tags from dialogue text, leaving the
// glyphs the text box actually renders.
func StripMarkup(s string) string {
	return reMarkup.ReplaceAllString(s, "")
}

// Issue reports one frame whose text does not fit the box.
type Issue struct {
	Group string
	Text  string // first rendered line, for locating the frame
	Lines int
	Box   Box
}

// Fits wraps a frame text into the box and reports the rendered line count.
func Fits(p Provider, text string, box Box) (lines int, ok bool) {
	wrapped := WrapText(p, StripMarkup(text), box.Width)
	return len(wrapped), len(wrapped) <= box.MaxLines
}

// Lint checks every frame of the project against the box and returns one
// issue per overflowing frame, in playback order.
func Lint(p Provider, project *domain.Project, box Box) []Issue {
	if box.MaxLines <= 0 {
		box = DefaultBox()
	}
	var issues []Issue

	check := func(group string, f *domain.Frame) {
		if f == nil || strings.TrimSpace(f.Text) == "" {
			return
		}
		n, ok := Fits(p, f.Text, box)
		if ok {
			return
		}
		first := StripMarkup(f.Text)
		if i := strings.IndexByte(first, '\n'); i >= 0 {
			first = first[:i]
		}
		issues = append(issues, Issue{Group: group, Text: first, Lines: n, Box: box})
	}

	for _, g := range project.Groups {
		for _, f := range g.Frames {
			check(g.Name, f)
			for _, pf := range f.Press {
				check(g.Name, pf)
			}
		}
		if counsel, err := g.CounselSequence(); err == nil {
			for _, f := range counsel {
				check(g.Name, f)
			}
		}
		if failure, err := g.FailureSequence(); err == nil {
			for _, f := range failure {
				check(g.Name, f)
			}
		}
	}
	return issues
}
