/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import "testing"

func intp(v int) *int { return &v }

func testCharacter() *Character {
	return &Character{
		ID:   intp(1),
		Name: "Phoenix Wright",
		Poses: []Pose{
			{ID: 1, Name: "Stand"},
			{ID: 2, Name: "Stand Talk"},
			{ID: 3, Name: "Point"},
			{ID: 4, Name: "Point Talk"},
			{ID: 5, Name: "Desk Slam!"},
		},
	}
}

func TestLookupPoseExact(t *testing.T) {
	c := testCharacter()
	if got := c.LookupPose("Stand"); got != 1 {
		t.Fatalf("LookupPose(Stand) = %d, want 1", got)
	}
	// normalization makes punctuation and case irrelevant
	if got := c.LookupPose("desk slam"); got != 5 {
		t.Fatalf("LookupPose(desk slam) = %d, want 5", got)
	}
	if got := c.LookupPose("Sit"); got != -1 {
		t.Fatalf("LookupPose(Sit) = %d, want -1", got)
	}
}

func TestLookupPoseSubstringPrefersClosestLength(t *testing.T) {
	c := testCharacter()
	// "point" is contained in "Point" (diff 0) and "Point Talk" (diff 4)
	if got := c.LookupPoseSubstring("point"); got != 3 {
		t.Fatalf("LookupPoseSubstring(point) = %d, want 3", got)
	}
	if got := c.LookupPoseSubstring("point talk"); got != 4 {
		t.Fatalf("LookupPoseSubstring(point talk) = %d, want 4", got)
	}
	if got := c.LookupPoseSubstring("no such pose"); got != -1 {
		t.Fatalf("LookupPoseSubstring miss = %d, want -1", got)
	}
}

func TestLookupPoseSubstringExactNameAlwaysWins(t *testing.T) {
	c := testCharacter()
	for _, p := range c.Poses {
		if got := c.LookupPoseSubstring(p.Name); got != p.ID {
			t.Errorf("LookupPoseSubstring(%q) = %d, want %d", p.Name, got, p.ID)
		}
	}
}

func TestLookupPoseSubstringEmptyQueryShortestName(t *testing.T) {
	c := testCharacter()
	// shortest normalized names are "stand" and "point" (len 5); first declared wins
	if got := c.LookupPoseSubstring(""); got != 1 {
		t.Fatalf("LookupPoseSubstring(\"\") = %d, want 1", got)
	}
}

func TestIsPresetPredicate(t *testing.T) {
	cases := []struct {
		id     *int
		preset bool
	}{
		{nil, true},
		{intp(1), true},
		{intp(999), true},
		{intp(1000), false},
		{intp(424242), false},
	}
	for _, tc := range cases {
		c := &Character{ID: tc.id}
		if got := c.IsPreset(); got != tc.preset {
			t.Errorf("IsPreset(id=%v) = %v, want %v", tc.id, got, tc.preset)
		}
	}
}

func TestNoneSentinelStructuralComparison(t *testing.T) {
	// a rebuilt none character (as after deserialization) must compare none
	rebuilt := &Character{}
	if !rebuilt.IsNone() {
		t.Fatalf("structurally empty character should be none")
	}
	if !NoneCharacter().IsNone() {
		t.Fatalf("shared sentinel should be none")
	}
	fc := &FrameCharacter{Character: rebuilt}
	if !fc.IsNone() {
		t.Fatalf("frame character with none character should be none")
	}
	if NoneFrameCharacter().Character != NoneCharacter() {
		t.Fatalf("sentinel frame character should reuse the shared character")
	}
	named := &Character{Name: "Custom No-ID"}
	if named.IsNone() {
		t.Fatalf("named character without id is not the none sentinel")
	}
}

func TestNewFrameCharacterResolvesPose(t *testing.T) {
	c := testCharacter()
	fc := NewFrameCharacter(c, "stand talk")
	if fc.PoseID == nil || *fc.PoseID != 2 {
		t.Fatalf("NewFrameCharacter pose = %v, want 2", fc.PoseID)
	}
	miss := NewFrameCharacter(c, "does not exist")
	if miss.PoseID != nil {
		t.Fatalf("unmatched pose should leave PoseID nil, got %v", *miss.PoseID)
	}
}
