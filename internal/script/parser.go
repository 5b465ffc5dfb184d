/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"bufio"
	"regexp"
	"strings"
)

// Parse parses a screenplay text into a structured Script.
// Supported syntax (minimal):
// - Scene headings:
//   - Lines starting with "#" or "Scene:" introduce a new scene. The rest of the line is the title.
//
// - Dialogue: NAME: text or NAME (pose): text
//   - NAME is matched against the cast on import; the parenthesized pose hint is optional.
//   - Continuation lines indented by 2+ spaces are appended to the previous Dialogue/Caption.
//
// - Caption: CAPTION: text or NARRATION: text (spoken by nobody)
// - Notes: lines starting with ';' are LineNote and skipped on import.
// - Tags: @tag-name markers anywhere in the text are collected per line and
//   stripped from the dialogue.
//
// Blank lines are separators and not represented as lines.
func Parse(input string) (Script, []Error) {
	s := Script{Scenes: []Scene{}}
	var errs []Error

	scanner := bufio.NewScanner(strings.NewReader(input))
	lineNo := 0
	currentScene := Scene{}
	var lastLine *Line

	// Patterns
	reScene := regexp.MustCompile(`^(#+)\s*(.*)$`)
	reSceneAlt := regexp.MustCompile(`^(?i)\s*Scene:\s*(.+)$`)
	reName := regexp.MustCompile(`^([A-Za-z0-9_\- ]{1,64}?)(?:\s*\(([^)]*)\))?\s*:\s*(.*)$`)
	reTag := regexp.MustCompile(`(?i)@([a-z0-9_\-]+)`)

	extractTags := func(text string) []string {
		found := reTag.FindAllStringSubmatch(text, -1)
		var out []string
		seen := map[string]struct{}{}
		for _, f := range found {
			t := strings.ToLower(strings.TrimSpace(f[1]))
			if t == "" {
				continue
			}
			if _, dup := seen[t]; dup {
				continue
			}
			seen[t] = struct{}{}
			out = append(out, t)
		}
		return out
	}

	stripTags := func(text string) string {
		return strings.TrimSpace(reTag.ReplaceAllString(text, ""))
	}

	flushScene := func() {
		if strings.TrimSpace(currentScene.Title) != "" || len(currentScene.Lines) > 0 {
			s.Scenes = append(s.Scenes, currentScene)
		}
	}

	appendLine := func(l Line) {
		currentScene.Lines = append(currentScene.Lines, l)
		lastLine = &currentScene.Lines[len(currentScene.Lines)-1]
	}

	for scanner.Scan() {
		lineNo++
		raw := scanner.Text()
		line := strings.TrimRight(raw, "\r\n")

		// Continuation line (indented) -> append to last dialogue/caption
		if strings.HasPrefix(line, "  ") && lastLine != nil && (lastLine.Type == LineDialogue || lastLine.Type == LineCaption) {
			cont := strings.TrimSpace(line)
			if cont != "" {
				if tags := extractTags(cont); len(tags) > 0 {
					lastLine.Tags = mergeTags(lastLine.Tags, tags)
				}
				lastLine.Text += "\n" + stripTags(cont)
			}
			continue
		}

		trim := strings.TrimSpace(line)
		if trim == "" {
			lastLine = nil
			continue
		}

		// Scene heading
		if m := reScene.FindStringSubmatch(trim); m != nil {
			flushScene()
			currentScene = Scene{Title: strings.TrimSpace(m[2])}
			lastLine = nil
			continue
		}
		if m := reSceneAlt.FindStringSubmatch(trim); m != nil {
			flushScene()
			currentScene = Scene{Title: strings.TrimSpace(m[1])}
			lastLine = nil
			continue
		}

		// Note line
		if strings.HasPrefix(trim, ";") {
			appendLine(Line{Type: LineNote, Text: strings.TrimSpace(strings.TrimPrefix(trim, ";")), LineNo: lineNo})
			lastLine = nil
			continue
		}

		// NAME: text, NAME (pose): text, or CAPTION/NARRATION
		if m := reName.FindStringSubmatch(trim); m != nil {
			name := strings.TrimSpace(m[1])
			pose := strings.TrimSpace(m[2])
			text := m[3]
			l := Line{
				Speaker: name,
				Pose:    pose,
				Text:    stripTags(text),
				Tags:    extractTags(text),
				LineNo:  lineNo,
			}
			upper := strings.ToUpper(name)
			if upper == "CAPTION" || upper == "NARRATION" {
				l.Type = LineCaption
				l.Speaker = ""
			} else {
				l.Type = LineDialogue
			}
			appendLine(l)
			continue
		}

		errs = append(errs, Error{Line: lineNo, Message: "unrecognized line: " + trim})
	}
	// Append last scene
	flushScene()

	if err := scanner.Err(); err != nil {
		errs = append(errs, Error{Line: lineNo, Message: err.Error()})
	}
	return s, errs
}

func mergeTags(a, b []string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, t := range append(append([]string{}, a...), b...) {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
