/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

// CaseAction is the interactivity payload attached to a frame. The set of
// variants is closed; the compiler type-switches over it and rejects
// anything it does not know.
type CaseAction interface {
	isCaseAction()
}

// ToggleEvidence reveals and hides court record items.
type ToggleEvidence struct {
	Show []*RecordItem
	Hide []*RecordItem
}

// ToggleFrames enables and disables frames for later playback.
type ToggleFrames struct {
	Show []FrameRef
	Hide []FrameRef
}

// GoToFrame jumps to the referenced frame.
type GoToFrame struct {
	Target FrameRef
}

// SetGameOverGroup selects the group played when health runs out.
// The referenced group must be a game-over group.
type SetGameOverGroup struct {
	Group GroupRef
}

// EndGame ends the playthrough.
type EndGame struct{}

// HealthSet sets the health bar to Amount (fraction in [0,1]).
type HealthSet struct {
	Amount float64
}

// HealthAdd increases the health bar by Amount (fraction in [0,1]).
type HealthAdd struct {
	Amount float64
}

// HealthRemove decreases the health bar by Amount (fraction in [0,1]).
type HealthRemove struct {
	Amount float64
}

// FlashingHealth flashes a fraction of the health bar as endangered.
type FlashingHealth struct {
	Amount float64
}

// PresentChoice pairs a court record item with the frame played when the
// player presents it.
type PresentChoice struct {
	Item   *RecordItem
	Target FrameRef
}

// PromptPresent asks the player to present evidence and/or a profile.
// Presenting an item with no matching choice plays FailFrame.
type PromptPresent struct {
	FailFrame FrameRef
	Choices   []PresentChoice
	Evidence  bool
	Profiles  bool
}

// Choice pairs a choice button label with its target frame.
type Choice struct {
	Text   string
	Target FrameRef
}

// PromptChoice shows one to four choice buttons.
type PromptChoice struct {
	Choices []Choice
}

// PromptInt asks the player for an integer and stores it in a variable.
type PromptInt struct {
	VarName string
}

// PromptStr asks the player for a string and stores it in a variable.
type PromptStr struct {
	VarName     string
	AllowSpaces bool
	ToLower     bool
}

// CursorRect is a clickable region in the player's image-pixel space.
type CursorRect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// CursorChoice pairs a clickable region with its target frame.
type CursorChoice struct {
	Rect   CursorRect
	Target FrameRef
}

// PromptCursor asks the player to point at a region of an image.
// Clicking outside every choice region plays FailFrame.
type PromptCursor struct {
	Prompt          string
	FailFrame       FrameRef
	CursorColor     Color // defaults to #FF0000 when unset
	PreviewImageURL string
	Choices         []CursorChoice
}

// VarSet stores an int or string value in a player variable.
type VarSet struct {
	Name  string
	Value any
}

// VarAdd adds an integer to a player variable.
type VarAdd struct {
	Name  string
	Value int
}

// VarEval evaluates an expression in the player and branches on the result.
// The expression grammar is the player's; the compiler emits it verbatim.
type VarEval struct {
	Expression string
	True       FrameRef
	False      FrameRef
}

func (ToggleEvidence) isCaseAction()   {}
func (ToggleFrames) isCaseAction()     {}
func (GoToFrame) isCaseAction()        {}
func (SetGameOverGroup) isCaseAction() {}
func (EndGame) isCaseAction()          {}
func (HealthSet) isCaseAction()        {}
func (HealthAdd) isCaseAction()        {}
func (HealthRemove) isCaseAction()     {}
func (FlashingHealth) isCaseAction()   {}
func (PromptPresent) isCaseAction()    {}
func (PromptChoice) isCaseAction()     {}
func (PromptInt) isCaseAction()        {}
func (PromptStr) isCaseAction()        {}
func (PromptCursor) isCaseAction()     {}
func (VarSet) isCaseAction()           {}
func (VarAdd) isCaseAction()           {}
func (VarEval) isCaseAction()          {}
