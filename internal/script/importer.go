/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"fmt"
	"strings"

	"courtwriter/internal/assets"
	"courtwriter/internal/domain"
)

// Cast binds screenplay speaker names to characters. Lookup is
// case-insensitive on the key.
type Cast map[string]*domain.Character

// Lookup resolves a speaker name against the cast.
func (c Cast) Lookup(name string) (*domain.Character, bool) {
	if ch, ok := c[name]; ok {
		return ch, true
	}
	for k, ch := range c {
		if strings.EqualFold(k, name) {
			return ch, true
		}
	}
	return nil, false
}

// PresetCast builds a cast from the bundled preset characters, keyed by
// their name plates. Unknown names are skipped; the importer reports them
// when a script actually speaks as one.
func PresetCast(names ...string) Cast {
	cast := Cast{}
	for _, n := range names {
		rec, ok := assets.PresetCharacterByName(n)
		if !ok {
			continue
		}
		ch := rec.Character()
		cast[ch.NamePlate] = ch
	}
	return cast
}

// BuildScene turns a parsed screenplay into a scene project. Every dialogue
// and caption line becomes one frame in order; notes are dropped. A speaker
// missing from the cast produces an Error and falls back to a custom
// nameplate so the rest of the script still imports. The first @tag of a
// line becomes the frame's case tag.
func BuildScene(s Script, cast Cast) (*domain.Project, []Error) {
	p := domain.NewScene()
	var errs []Error

	for _, scene := range s.Scenes {
		for _, l := range scene.Lines {
			switch l.Type {
			case LineDialogue:
				f := domain.NewFrame(l.Text)
				if ch, ok := cast.Lookup(l.Speaker); ok {
					f.Char = domain.NewFrameCharacter(ch, l.Pose)
					if l.Pose != "" && f.Char.PoseID == nil {
						errs = append(errs, Error{
							Line:    l.LineNo,
							Message: fmt.Sprintf("character %s has no pose matching %q", ch.Name, l.Pose),
						})
					}
				} else {
					errs = append(errs, Error{Line: l.LineNo, Message: "unknown speaker: " + l.Speaker})
					f.CustomName = l.Speaker
				}
				applyTag(f, l)
				p.AppendFrame(f)
			case LineCaption:
				f := domain.NewFrame(l.Text)
				f.Talk = false
				f.CenterText = true
				applyTag(f, l)
				p.AppendFrame(f)
			case LineNote:
				// author-facing only
			default:
				errs = append(errs, Error{Line: l.LineNo, Message: "cannot import line: " + l.Text})
			}
		}
	}
	return p, errs
}

func applyTag(f *domain.Frame, l Line) {
	if len(l.Tags) > 0 {
		f.CaseTag = l.Tags[0]
	}
}

// Import is the one-call path from screenplay text to a scene project.
// Parse and build diagnostics come back merged.
func Import(input string, cast Cast) (*domain.Project, []Error) {
	s, errs := Parse(input)
	p, buildErrs := BuildScene(s, cast)
	return p, append(errs, buildErrs...)
}
