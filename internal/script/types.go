/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package script

// Script represents a parsed courtroom screenplay: scenes of speaker lines.
// This is intentionally minimal; stage directions beyond the pose hint are
// out of scope for the text format.

type Script struct {
	Scenes []Scene
}

type Scene struct {
	Title string
	Lines []Line
}

// LineType indicates the kind of a script line.
// Dialogue: NAME: text or NAME (pose): text
// Caption:  CAPTION: text or NARRATION: text (no speaking character)
// Note:     lines starting with ";" are author notes and never imported

type LineType int

const (
	LineUnknown LineType = iota
	LineDialogue
	LineCaption
	LineNote
)

// Line captures a single logical line (possibly with continuations) in a
// scene. For Dialogue, Speaker holds the character name as written and Pose
// the optional pose hint from the parenthesis. Tags come from @tag markers
// in the text; the first one becomes the frame's case tag on import.

type Line struct {
	Type    LineType
	Speaker string
	Pose    string
	Text    string
	Tags    []string
	LineNo  int // 1-based starting line number in the source
}

// Error represents a parse or import error with position context.

type Error struct {
	Line    int
	Message string
}
