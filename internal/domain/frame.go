/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

// Fade describes a single frame fade.
type Fade struct {
	Direction FadeDirection
	Target    FadeTarget
	Easing    Easing
	Color     Color
	Duration  int // milliseconds
}

// Filter applies a visual filter to part of the frame.
type Filter struct {
	Type   FilterType
	Target FadeTarget
	Amount int // percent
}

// Transition slides between frames over Duration milliseconds.
type Transition struct {
	Duration int
	Easing   Easing
}

// FrameOptions are per-frame player modifiers. Nil fields are "leave as is";
// every non-nil field emits one frame action (gallery modifiers emit one per
// entry).
type FrameOptions struct {
	AutoplaySpeed      *int
	DialogueBox        *DialogueBox
	DialogueBoxVisible *bool
	DefaultTextSpeed   *int
	BlipFrequency      *int
	FrameSkip          *bool
	GalleryRemove      []Side
	GalleryAssign      []*Character
}

// FrameRef names a frame either directly or by its case tag. Exactly one of
// the two fields is set; the compiler resolves both to the frame's iid.
type FrameRef struct {
	Frame *Frame
	Tag   string
}

// ToFrame builds a direct frame reference.
func ToFrame(f *Frame) FrameRef { return FrameRef{Frame: f} }

// ToTag builds a symbolic frame reference resolved at compile time.
func ToTag(tag string) FrameRef { return FrameRef{Tag: tag} }

// IsZero reports whether the reference is empty.
func (r FrameRef) IsZero() bool { return r.Frame == nil && r.Tag == "" }

// GroupRef names a group either directly or by its case tag.
type GroupRef struct {
	Group *Group
	Tag   string
}

// ToGroup builds a direct group reference.
func ToGroup(g *Group) GroupRef { return GroupRef{Group: g} }

// ToGroupTag builds a symbolic group reference resolved at compile time.
func ToGroupTag(tag string) GroupRef { return GroupRef{Tag: tag} }

// IsZero reports whether the reference is empty.
func (r GroupRef) IsZero() bool { return r.Group == nil && r.Tag == "" }

// Contradiction marks a court record item that, presented on a
// cross-examination statement, jumps to the referenced frame.
type Contradiction struct {
	Item   *RecordItem
	Target FrameRef
}

// Frame is one screen-worth of dialogue plus presentation state.
//
// Construct frames with NewFrame so the talk and pose-animation defaults
// hold; a zero-value Frame is a silent, non-animated statement.
type Frame struct {
	Text       string
	Char       *FrameCharacter
	PairChar   *FrameCharacter
	Bubble     int
	CustomName string
	Merge      bool
	Talk       bool
	GoNext     bool
	PoseAnim   bool
	OffScreen  bool
	CenterText bool

	PresetPopup PresetPopup
	PresetBlip  PresetBlip

	Popup          *Popup
	Background     *Background
	BackgroundFlip bool
	WideX          *float64 // horizontal pan on wide backgrounds, 0..1

	Fade       *Fade
	Filter     *Filter
	Transition *Transition
	Options    *FrameOptions

	Action CaseAction

	// CaseTag makes the frame addressable from case actions. Must be unique
	// among all frames of the project.
	CaseTag string

	// OnCompile post-processes the frame's emitted JSON object. The returned
	// map replaces the emitted one.
	OnCompile func(map[string]any) map[string]any

	// Cross-examination statement data; only meaningful for frames inside a
	// cross-examination group.
	Press          []*Frame
	Contradictions []Contradiction
}

// NewFrame returns a frame with the authoring defaults: the character talks
// and plays its pose animation.
func NewFrame(text string) *Frame {
	return &Frame{Text: text, Talk: true, PoseAnim: true}
}
