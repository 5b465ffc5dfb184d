/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import "strings"

// PresetIDCeiling separates preset character ids from custom ones.
// A character is a preset iff its id is nil or below this ceiling.
const PresetIDCeiling = 1000

// Pose is one entry of a character's pose list. Extra carries any catalog
// fields beyond id and name; the compiler never looks at them.
type Pose struct {
	ID    int
	Name  string
	Extra map[string]any
}

// Character describes a speaking character, preset or custom.
// A nil ID marks the "none" placeholder character.
type Character struct {
	ID                *int
	Name              string
	NamePlate         string
	BlipURL           string
	Side              Side
	BackgroundID      int
	Bubbles           []string
	Poses             []Pose
	GalleryImageURL   string
	GalleryAJImageURL string
	AJStyle           bool
}

var noneCharacter = &Character{}

// NoneCharacter returns the shared "no character" placeholder.
// Code must treat any character with a nil ID as none; never compare
// against this pointer (models may be rebuilt from serialized form).
func NoneCharacter() *Character { return noneCharacter }

// IsNone reports whether c is the "no character" placeholder.
func (c *Character) IsNone() bool { return c == nil || c.ID == nil && c.Name == "" }

// IsPreset reports whether c is a built-in character. The none placeholder
// counts as preset.
func (c *Character) IsPreset() bool {
	return c == nil || c.ID == nil || *c.ID < PresetIDCeiling
}

// LookupPose returns the id of the pose whose normalized name equals the
// normalized query, or -1 if the character has no such pose.
func (c *Character) LookupPose(name string) int {
	if c == nil {
		return -1
	}
	want := normalizePoseName(name)
	for _, p := range c.Poses {
		if normalizePoseName(p.Name) == want {
			return p.ID
		}
	}
	return -1
}

// LookupPoseSubstring returns the id of the pose whose normalized name
// contains the normalized query. Among the matches the pose whose name
// length is closest to the query wins; ties go to the pose declared first.
// Returns -1 when nothing matches.
func (c *Character) LookupPoseSubstring(query string) int {
	if c == nil {
		return -1
	}
	q := normalizePoseName(query)
	best := -1
	bestDiff := 0
	for _, p := range c.Poses {
		n := normalizePoseName(p.Name)
		if !strings.Contains(n, q) {
			continue
		}
		diff := len(n) - len(q)
		if diff < 0 {
			diff = -diff
		}
		if best == -1 || diff < bestDiff {
			best = p.ID
			bestDiff = diff
		}
	}
	return best
}

// normalizePoseName strips non-alphanumeric runes and lowercases the rest.
func normalizePoseName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// Offset is a pair position offset in player pixels.
type Offset struct {
	X int
	Y int
}

// FrameCharacter places a character in a frame slot with its pose and
// pair-related state. Active and Front are tri-state: nil means "unset".
type FrameCharacter struct {
	Character  *Character
	PoseID     *int
	Flip       bool
	PairOffset Offset
	Active     *bool
	Front      *bool
}

// NewFrameCharacter builds a FrameCharacter for ch using the pose resolved
// by substring lookup; an unmatched pose leaves PoseID nil.
func NewFrameCharacter(ch *Character, pose string) *FrameCharacter {
	fc := &FrameCharacter{Character: ch}
	if id := ch.LookupPoseSubstring(pose); id >= 0 {
		fc.PoseID = &id
	}
	return fc
}

// IsNone reports whether the slot holds no character.
func (fc *FrameCharacter) IsNone() bool {
	return fc == nil || fc.Character.IsNone() && fc.PoseID == nil
}

// NoneFrameCharacter materializes the "empty slot" sentinel.
func NoneFrameCharacter() *FrameCharacter {
	return &FrameCharacter{Character: NoneCharacter()}
}
