/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package assets

import (
	"context"
	"encoding/json"
	"testing"

	"courtwriter/internal/domain"
)

func TestStaticResolver(t *testing.T) {
	s := NewStatic(Record{Kind: KindMusic, ID: 12, Fields: map[string]any{"name": "Cornered"}})

	rec, ok, err := s.Resolve(context.Background(), KindMusic, 12)
	if err != nil || !ok {
		t.Fatalf("resolve: ok=%v err=%v", ok, err)
	}
	if rec.str("name") != "Cornered" {
		t.Fatalf("fields = %v", rec.Fields)
	}
	if _, ok, _ := s.Resolve(context.Background(), KindMusic, 13); ok {
		t.Fatalf("unknown id resolved")
	}
	if _, ok, _ := s.Resolve(context.Background(), KindSound, 12); ok {
		t.Fatalf("kinds are separate namespaces")
	}
}

func TestRecordCharacterBuilder(t *testing.T) {
	// fields as they come out of a JSON decode
	raw := `{
		"id": 1, "name": "Phoenix Wright", "namePlate": "Phoenix",
		"side": "defense", "backgroundId": 189,
		"poses": [{"id": 2, "name": "Point"}, {"id": 3, "name": "Desk Slam"}]
	}`
	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	rec := Record{Kind: KindCharacter, ID: 1, Fields: fields}

	c := rec.Character()
	if c.ID == nil || *c.ID != 1 || c.Name != "Phoenix Wright" {
		t.Fatalf("character = %+v", c)
	}
	if c.Side != domain.SideDefense || c.BackgroundID != 189 {
		t.Fatalf("side/background = %v/%d", c.Side, c.BackgroundID)
	}
	if len(c.Poses) != 2 || c.Poses[1].Name != "Desk Slam" || c.Poses[1].ID != 3 {
		t.Fatalf("poses = %v", c.Poses)
	}
	if !c.IsPreset() {
		t.Fatalf("id 1 should count as preset")
	}
	if id := c.LookupPoseSubstring("slam"); id != 3 {
		t.Fatalf("pose lookup on built character = %d, want 3", id)
	}
}

func TestRecordBackgroundBuilder(t *testing.T) {
	rec := Record{Kind: KindBackground, ID: 177, Fields: map[string]any{
		"name": "Courtroom Overview", "url": "https://example.com/bg.png", "isWide": true,
	}}
	bg := rec.Background()
	if bg.ID == nil || *bg.ID != 177 || !bg.Wide || bg.URL == "" {
		t.Fatalf("background = %+v", bg)
	}
}

func TestPresets(t *testing.T) {
	p := Presets()
	rec, ok, err := p.Resolve(context.Background(), KindCharacter, 1)
	if err != nil || !ok {
		t.Fatalf("preset phoenix: ok=%v err=%v", ok, err)
	}
	c := rec.Character()
	if c.Name != "Phoenix Wright" || len(c.Poses) == 0 {
		t.Fatalf("preset character = %+v", c)
	}

	// the preset's own background must be bundled too
	if _, ok, _ := p.Resolve(context.Background(), KindBackground, c.BackgroundID); !ok {
		t.Fatalf("preset background %d missing", c.BackgroundID)
	}

	byName, ok := PresetCharacterByName("edgeworth")
	if !ok || byName.ID != 2 {
		t.Fatalf("lookup by name plate = %v ok=%v", byName.ID, ok)
	}
	if _, ok := PresetCharacterByName("Nobody"); ok {
		t.Fatalf("unknown name matched")
	}
}
