/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

// Alias is a textual substitution the player performs at runtime.
// Aliases are ordered; earlier entries win.
type Alias struct {
	Find    string
	Replace string
}

// Options are the project-wide player settings.
type Options struct {
	DialogueBox      DialogueBox
	TextSpeed        int
	BlipFrequency    int
	AutoplaySpeed    int // milliseconds between auto-advanced frames
	ContinueSoundURL string
}

// DefaultOptions returns the player defaults.
func DefaultOptions() Options {
	return Options{
		DialogueBox:      DialogueBoxClassic,
		TextSpeed:        28,
		BlipFrequency:    56,
		AutoplaySpeed:    500,
		ContinueSoundURL: "/Audio/Case/Continue_Trilogy.wav",
	}
}

// Project is the top-level authoring container, either a linear scene or an
// interactive case. A scene holds exactly one normal group named "Main"; a
// case holds any number of groups plus the court record.
type Project struct {
	Kind     ProjectKind
	Options  Options
	Aliases  []Alias
	Groups   []*Group
	Evidence []*RecordItem
	Profiles []*RecordItem
}

// SceneMainGroupName is the mandated name of a scene's single group.
const SceneMainGroupName = "Main"

// NewScene creates a scene project with its single "Main" group.
func NewScene() *Project {
	return &Project{
		Kind:    KindScene,
		Options: DefaultOptions(),
		Groups:  []*Group{NewGroup(SceneMainGroupName)},
	}
}

// NewCase creates an empty case project.
func NewCase() *Project {
	return &Project{Kind: KindCase, Options: DefaultOptions()}
}

// MainFrames returns the frame list of a scene's "Main" group. It returns
// nil for cases.
func (p *Project) MainFrames() []*Frame {
	if p.Kind != KindScene || len(p.Groups) == 0 {
		return nil
	}
	return p.Groups[0].Frames
}

// AppendFrame appends frames to a scene's "Main" group. It is a no-op on
// cases; case authors append to their groups directly.
func (p *Project) AppendFrame(frames ...*Frame) {
	if p.Kind != KindScene || len(p.Groups) == 0 {
		return
	}
	p.Groups[0].Append(frames...)
}

// AddAlias appends a runtime text substitution.
func (p *Project) AddAlias(find, replace string) {
	p.Aliases = append(p.Aliases, Alias{Find: find, Replace: replace})
}
