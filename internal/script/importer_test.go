/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

import (
	"strings"
	"testing"

	"courtwriter/internal/domain"
)

func testCast() Cast {
	id := 1
	return Cast{
		"Phoenix": &domain.Character{
			ID:   &id,
			Name: "Phoenix Wright",
			Poses: []domain.Pose{
				{ID: 1, Name: "Stand"},
				{ID: 2, Name: "Point"},
				{ID: 3, Name: "Desk Slam"},
			},
		},
	}
}

func TestImportScene(t *testing.T) {
	input := `# The Trial
Phoenix (point): Objection! @objection
CAPTION: Silence fell over the courtroom.
phoenix: ...`

	p, errs := Import(input, testCast())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %+v", errs)
	}
	frames := p.MainFrames()
	if len(frames) != 3 {
		t.Fatalf("frames = %d, want 3", len(frames))
	}

	f0 := frames[0]
	if f0.Text != "Objection!" || f0.CaseTag != "objection" {
		t.Fatalf("frame 0 = %+v", f0)
	}
	if f0.Char == nil || f0.Char.Character.Name != "Phoenix Wright" {
		t.Fatalf("frame 0 char = %+v", f0.Char)
	}
	if f0.Char.PoseID == nil || *f0.Char.PoseID != 2 {
		t.Fatalf("frame 0 pose = %v, want Point", f0.Char.PoseID)
	}

	caption := frames[1]
	if caption.Char != nil || !caption.CenterText || caption.Talk {
		t.Fatalf("caption frame = %+v", caption)
	}

	// speaker lookup ignores case
	if frames[2].Char == nil {
		t.Fatalf("lower-cased speaker not resolved: %+v", frames[2])
	}
}

func TestImportUnknownSpeaker(t *testing.T) {
	p, errs := Import("Gumshoe: The name's Dick Gumshoe, pal!", testCast())
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "Gumshoe") {
		t.Fatalf("errors = %+v", errs)
	}
	frames := p.MainFrames()
	if len(frames) != 1 {
		t.Fatalf("frames = %d, want the line kept", len(frames))
	}
	if frames[0].Char != nil || frames[0].CustomName != "Gumshoe" {
		t.Fatalf("fallback frame = %+v", frames[0])
	}
}

func TestImportUnmatchedPose(t *testing.T) {
	_, errs := Import("Phoenix (moonwalk): Hm.", testCast())
	if len(errs) != 1 || !strings.Contains(errs[0].Message, "moonwalk") {
		t.Fatalf("errors = %+v", errs)
	}
}

func TestPresetCast(t *testing.T) {
	cast := PresetCast("Phoenix", "Edgeworth", "Nobody")
	if len(cast) != 2 {
		t.Fatalf("cast = %+v, want the two known presets", cast)
	}
	ch, ok := cast.Lookup("phoenix")
	if !ok || ch.Name != "Phoenix Wright" {
		t.Fatalf("lookup = %+v ok=%v", ch, ok)
	}
}
