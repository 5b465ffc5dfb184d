/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package assets

import "strings"

// Presets returns a static resolver over the bundled subset of the player's
// built-in assets. It covers the characters and backgrounds the importer and
// the tests lean on; anything beyond that needs the catalog client.
func Presets() *Static {
	s := NewStatic()
	for _, r := range presetRecords {
		s.Add(r)
	}
	return s
}

var presetRecords = []Record{
	{Kind: KindCharacter, ID: 1, Fields: map[string]any{
		"name": "Phoenix Wright", "namePlate": "Phoenix", "side": "defense",
		"backgroundId": 189,
		"poses": []any{
			map[string]any{"id": 1, "name": "Stand"},
			map[string]any{"id": 2, "name": "Point"},
			map[string]any{"id": 3, "name": "Desk Slam"},
			map[string]any{"id": 4, "name": "Thinking"},
			map[string]any{"id": 5, "name": "Confident"},
		},
	}},
	{Kind: KindCharacter, ID: 2, Fields: map[string]any{
		"name": "Miles Edgeworth", "namePlate": "Edgeworth", "side": "prosecution",
		"backgroundId": 194,
		"poses": []any{
			map[string]any{"id": 1, "name": "Stand"},
			map[string]any{"id": 2, "name": "Point"},
			map[string]any{"id": 3, "name": "Desk Slam"},
			map[string]any{"id": 4, "name": "Arms Crossed"},
			map[string]any{"id": 5, "name": "Bow"},
		},
	}},
	{Kind: KindCharacter, ID: 3, Fields: map[string]any{
		"name": "The Judge", "namePlate": "Judge", "side": "judge",
		"backgroundId": 192,
		"poses": []any{
			map[string]any{"id": 1, "name": "Stand"},
			map[string]any{"id": 2, "name": "Negative"},
			map[string]any{"id": 3, "name": "Positive"},
			map[string]any{"id": 4, "name": "Surprised"},
			map[string]any{"id": 5, "name": "Eyes Closed"},
		},
	}},
	{Kind: KindCharacter, ID: 7, Fields: map[string]any{
		"name": "Maya Fey", "namePlate": "Maya", "side": "counsel",
		"backgroundId": 187,
		"poses": []any{
			map[string]any{"id": 1, "name": "Stand"},
			map[string]any{"id": 2, "name": "Thinking"},
			map[string]any{"id": 3, "name": "Angry"},
			map[string]any{"id": 4, "name": "Happy"},
		},
	}},

	{Kind: KindBackground, ID: 187, Fields: map[string]any{"name": "PW Co-Council"}},
	{Kind: KindBackground, ID: 189, Fields: map[string]any{"name": "PW Defense"}},
	{Kind: KindBackground, ID: 192, Fields: map[string]any{"name": "PW Judge"}},
	{Kind: KindBackground, ID: 194, Fields: map[string]any{"name": "PW Prosecution"}},
	{Kind: KindBackground, ID: 197, Fields: map[string]any{"name": "PW Witness"}},
	{Kind: KindBackground, ID: 177, Fields: map[string]any{"name": "PW Courtroom Overview", "isWide": true}},

	{Kind: KindPopup, ID: 1, Fields: map[string]any{"name": "Testimony", "center": true}},
	{Kind: KindPopup, ID: 2, Fields: map[string]any{"name": "Cross Examination", "center": true}},
	{Kind: KindPopup, ID: 3, Fields: map[string]any{"name": "Guilty", "center": true}},
	{Kind: KindPopup, ID: 4, Fields: map[string]any{"name": "Not Guilty", "center": true}},
}

// PresetCharacterByName resolves a bundled preset character by exact,
// case-insensitive name or name plate. The importer uses it to bind cast
// lines without a catalog connection.
func PresetCharacterByName(name string) (Record, bool) {
	for _, r := range presetRecords {
		if r.Kind != KindCharacter {
			continue
		}
		if strings.EqualFold(r.str("name"), name) || strings.EqualFold(r.str("namePlate"), name) {
			return r, true
		}
	}
	return Record{}, false
}
