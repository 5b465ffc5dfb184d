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

// Case action type ids of the wire format.
const (
	caGoToFrame        = 1
	caSetGameOverGroup = 2
	caEndGame          = 3
	caHealthSet        = 4
	caHealthAdd        = 5
	caHealthRemove     = 6
	caFlashingHealth   = 7
	caPromptChoice     = 8
	caPromptPresent    = 9
	caPromptInt        = 10
	caPromptStr        = 11
	caPromptCursor     = 12
	caVarSet           = 13
	caVarAdd           = 14
	caVarEval          = 15
	caToggleEvidence   = 16
	caToggleFrames     = 17
)

const defaultCursorColor = domain.Color("#FF0000")

// encodeAction turns one case action variant into its flat wire object.
// Frame and group references are written as placeholders and patched to
// iids once the whole project is traversed. The variant set is closed; a
// type this switch does not know is a bug in the model, not author error.
func (st *state) encodeAction(a domain.CaseAction) (map[string]any, error) {
	switch v := a.(type) {
	case domain.ToggleEvidence:
		show, err := st.recordRefs(v.Show)
		if err != nil {
			return nil, err
		}
		hide, err := st.recordRefs(v.Hide)
		if err != nil {
			return nil, err
		}
		return map[string]any{"id": caToggleEvidence, "show": show, "hide": hide}, nil

	case domain.ToggleFrames:
		return map[string]any{
			"id":   caToggleFrames,
			"show": st.refFrameList(v.Show),
			"hide": st.refFrameList(v.Hide),
		}, nil

	case domain.GoToFrame:
		m := map[string]any{"id": caGoToFrame}
		st.refFrame(m, "target", v.Target)
		return m, nil

	case domain.SetGameOverGroup:
		m := map[string]any{"id": caSetGameOverGroup}
		st.refGroup(m, "group", v.Group)
		return m, nil

	case domain.EndGame:
		return map[string]any{"id": caEndGame}, nil

	case domain.HealthSet:
		return st.healthAction(caHealthSet, v.Amount)
	case domain.HealthAdd:
		return st.healthAction(caHealthAdd, v.Amount)
	case domain.HealthRemove:
		return st.healthAction(caHealthRemove, v.Amount)
	case domain.FlashingHealth:
		return st.healthAction(caFlashingHealth, v.Amount)

	case domain.PromptPresent:
		if !v.Evidence && !v.Profiles {
			return nil, ErrPresentTargets
		}
		choices := make([]any, 0, len(v.Choices))
		for _, ch := range v.Choices {
			ref, err := st.recordRef(ch.Item)
			if err != nil {
				return nil, err
			}
			cm := map[string]any{"item": ref}
			st.refFrame(cm, "frame", ch.Target)
			choices = append(choices, cm)
		}
		m := map[string]any{
			"id":              caPromptPresent,
			"choices":         choices,
			"presentEvidence": v.Evidence,
			"presentProfiles": v.Profiles,
		}
		st.refFrame(m, "failFrame", v.FailFrame)
		return m, nil

	case domain.PromptChoice:
		if n := len(v.Choices); n < 1 || n > 4 {
			return nil, fmt.Errorf("%w: got %d", ErrChoiceArity, n)
		}
		choices := make([]any, 0, len(v.Choices))
		for _, ch := range v.Choices {
			cm := map[string]any{"text": ch.Text}
			st.refFrame(cm, "frame", ch.Target)
			choices = append(choices, cm)
		}
		return map[string]any{"id": caPromptChoice, "choices": choices}, nil

	case domain.PromptInt:
		return map[string]any{"id": caPromptInt, "varName": v.VarName}, nil

	case domain.PromptStr:
		return map[string]any{
			"id":          caPromptStr,
			"varName":     v.VarName,
			"allowSpaces": v.AllowSpaces,
			"toLower":     v.ToLower,
		}, nil

	case domain.PromptCursor:
		color := v.CursorColor
		if color == "" {
			color = defaultCursorColor
		}
		choices := make([]any, 0, len(v.Choices))
		for _, ch := range v.Choices {
			cm := map[string]any{
				"left":   ch.Rect.Left,
				"top":    ch.Rect.Top,
				"width":  ch.Rect.Width,
				"height": ch.Rect.Height,
			}
			st.refFrame(cm, "frame", ch.Target)
			choices = append(choices, cm)
		}
		m := map[string]any{
			"id":              caPromptCursor,
			"prompt":          v.Prompt,
			"cursorColor":     color.String(),
			"previewImageUrl": v.PreviewImageURL,
			"choices":         choices,
		}
		st.refFrame(m, "failFrame", v.FailFrame)
		return m, nil

	case domain.VarSet:
		switch v.Value.(type) {
		case int, string:
		default:
			return nil, fmt.Errorf("%w: %q holds %T", ErrBadValue, v.Name, v.Value)
		}
		return map[string]any{"id": caVarSet, "varName": v.Name, "value": v.Value}, nil

	case domain.VarAdd:
		return map[string]any{"id": caVarAdd, "varName": v.Name, "value": v.Value}, nil

	case domain.VarEval:
		m := map[string]any{"id": caVarEval, "expression": v.Expression}
		st.refFrame(m, "trueFrame", v.True)
		st.refFrame(m, "falseFrame", v.False)
		return m, nil

	default:
		return nil, fmt.Errorf("unknown case action variant %T", a)
	}
}

func (st *state) healthAction(id int, amount float64) (map[string]any, error) {
	if amount < 0 || amount > 1 {
		return nil, fmt.Errorf("%w: %v", ErrAmountRange, amount)
	}
	return map[string]any{"id": id, "amount": amount}, nil
}

func (st *state) recordRefs(items []*domain.RecordItem) ([]any, error) {
	out := make([]any, 0, len(items))
	for _, it := range items {
		ref, err := st.recordRef(it)
		if err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, nil
}
