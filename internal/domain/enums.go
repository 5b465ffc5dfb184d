/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package domain defines the authoring model for Court Writer projects:
// characters, frames, groups, case actions and the project container that
// the compiler turns into the objection.lol wire format.
package domain

// DialogueBox selects the player's default dialogue box style.
type DialogueBox int

const (
	DialogueBoxClassic DialogueBox = iota
	DialogueBoxTrilogy
	DialogueBoxAJ
	DialogueBoxTGAA
)

// GroupKind is the code letter emitted for each group variant.
type GroupKind string

const (
	GroupNormal           GroupKind = "n"
	GroupCrossExamination GroupKind = "ce"
	GroupGameOver         GroupKind = "go"
)

// Side is one of the six courtroom locations a character can occupy.
// The same strings are used as gallery-modifier action parameters.
type Side string

const (
	SideDefense     Side = "defense"
	SideProsecution Side = "prosecution"
	SideCounsel     Side = "counsel"
	SideWitness     Side = "witness"
	SideJudge       Side = "judge"
	SideGallery     Side = "gallery"
)

// Easing names the transition/fade easing curves the player understands.
type Easing string

const (
	EasingLinear    Easing = "linear"
	EasingEaseIn    Easing = "easeIn"
	EasingEaseOut   Easing = "easeOut"
	EasingEaseInOut Easing = "easeInOut"
)

// FadeDirection is the direction of a frame fade.
type FadeDirection string

const (
	FadeIn  FadeDirection = "fadeIn"
	FadeOut FadeDirection = "fadeOut"
)

// FadeTarget selects what a fade or filter applies to.
type FadeTarget string

const (
	TargetBackground FadeTarget = "background"
	TargetCharacter  FadeTarget = "character"
	TargetEverything FadeTarget = "everything"
)

// FilterType names the visual filters supported by the player.
type FilterType string

const (
	FilterGrayscale FilterType = "grayscale"
	FilterSepia     FilterType = "sepia"
	FilterInvert    FilterType = "invert"
	FilterHueRotate FilterType = "hueRotate"
)

// PresetPopup is a built-in popup overlay triggered via a frame action.
// Positive values are passed through as the action parameter; the
// label-hide pseudo popup maps to its own action id.
type PresetPopup int

const (
	PopupNone             PresetPopup = 0
	PopupTestimony        PresetPopup = 1
	PopupCrossExamination PresetPopup = 2
	PopupGuilty           PresetPopup = 3
	PopupNotGuilty        PresetPopup = 4

	// PopupTestimonyLabelHide hides the blinking "Testimony" corner label.
	PopupTestimonyLabelHide PresetPopup = -1
)

// PresetBlip is a built-in dialogue blip selection triggered via a frame
// action. Positive values select a blip sound; mute maps to its own action.
type PresetBlip int

const (
	BlipNone       PresetBlip = 0
	BlipMale       PresetBlip = 1
	BlipFemale     PresetBlip = 2
	BlipTypewriter PresetBlip = 3

	BlipMute PresetBlip = -1
)

// RecordItemKind distinguishes the two court record lists.
type RecordItemKind string

const (
	RecordEvidence RecordItemKind = "evidence"
	RecordProfile  RecordItemKind = "profiles"
)

// ProjectKind distinguishes the two top-level project flavors.
type ProjectKind string

const (
	KindScene ProjectKind = "scene"
	KindCase  ProjectKind = "case"
)
