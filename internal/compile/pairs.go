/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package compile

import (
	"fmt"

	"courtwriter/internal/domain"
)

// pairKey is the dedup signature of a synthesized pair. The two characters
// are ordered by character id descending (nil id counts as 0) so the same
// duo produces one pair regardless of slot assignment.
type pairKey struct {
	idHigh  int
	idLow   int
	offHigh domain.Offset
	offLow  domain.Offset
	front   bool
}

// pairFor returns the pair id for the frame's character duo, synthesizing
// and memoizing the pair record on first use.
func (st *state) pairFor(active, secondary, front *domain.FrameCharacter) int {
	hi, lo := active, secondary
	if charID(lo) > charID(hi) {
		hi, lo = lo, hi
	}
	key := pairKey{
		idHigh:  charID(hi),
		idLow:   charID(lo),
		offHigh: hi.PairOffset,
		offLow:  lo.PairOffset,
		front:   hi == front,
	}
	if id, ok := st.pairs[key]; ok {
		return id
	}
	st.nextPairID++
	id := st.nextPairID
	st.pairs[key] = id
	st.pairsOut = append(st.pairsOut, map[string]any{
		"id":           0,
		"pairId":       id,
		"name":         fmt.Sprintf("Generated %d", id),
		"characterId":  key.idHigh,
		"characterId2": key.idLow,
		"offsetX":      key.offHigh.X,
		"offsetY":      key.offHigh.Y,
		"offsetX2":     key.offLow.X,
		"offsetY2":     key.offLow.Y,
		"front":        key.front,
	})
	return id
}

func charID(fc *domain.FrameCharacter) int {
	if fc == nil || fc.Character == nil || fc.Character.ID == nil {
		return 0
	}
	return *fc.Character.ID
}
