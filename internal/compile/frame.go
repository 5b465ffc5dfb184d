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
	"math"
	"strconv"

	"courtwriter/internal/domain"
)

// Frame action ids understood by the player.
const (
	actionDialogueBoxVisible = 1
	actionGalleryAssign      = 2
	actionGalleryRemove      = 3
	actionBlipSet            = 4
	actionBlipMute           = 5
	actionOffScreen          = 6
	actionPresetPopup        = 7
	actionTestimonyLabel     = 8
	actionCenterText         = 9
	actionGalleryAssignAJ    = 10
	actionGalleryRemoveAJ    = 11
	actionDialogueBox        = 12
	actionTextSpeed          = 13
	actionBlipFrequency      = 14
	actionAutoplaySpeed      = 15
	actionFrameSkip          = 16
)

// compileFrame projects one frame into its flat wire shape and assigns the
// next global iid. inCE attaches the contradiction list of cross-
// examination statements.
func (st *state) compileFrame(f *domain.Frame, inCE bool) (map[string]any, error) {
	if f == nil {
		return nil, fmt.Errorf("%w: nil frame", ErrBadProject)
	}
	if _, dup := st.frameIIDs[f]; dup {
		return nil, fmt.Errorf("%w: frame %q appears in more than one sequence", ErrBadProject, snippet(f.Text))
	}
	st.nextIID++
	iid := st.nextIID
	st.frameIIDs[f] = iid
	if f.CaseTag != "" {
		if _, dup := st.frameTags[f.CaseTag]; dup {
			return nil, fmt.Errorf("%w: frame tag %q", ErrDuplicateTag, f.CaseTag)
		}
		st.frameTags[f.CaseTag] = iid
	}

	active, secondary, front := resolveCharacters(f)

	var characterID any
	if ch := active.Character; ch != nil && !ch.IsPreset() {
		characterID = *ch.ID
	}

	var poseID, pairPoseID any
	if active.PoseID != nil {
		poseID = *active.PoseID
	}
	if secondary.PoseID != nil {
		pairPoseID = *secondary.PoseID
	}

	var popupID any
	if f.Popup != nil && f.Popup.ID != nil {
		popupID = *f.Popup.ID
	}

	backgroundID := 0
	switch {
	case f.Background != nil && f.Background.ID != nil:
		backgroundID = *f.Background.ID
	case active.Character != nil:
		backgroundID = active.Character.BackgroundID
	}

	transition := map[string]any{}
	if f.Transition != nil {
		left := 0
		if f.WideX != nil {
			left = int(math.Round(*f.WideX * 100))
		}
		transition = map[string]any{
			"duration": f.Transition.Duration,
			"easing":   string(easingOrLinear(f.Transition.Easing)),
			"left":     left,
		}
	}

	filter := map[string]any{}
	if f.Filter != nil {
		target := f.Filter.Target
		if target == "" {
			target = domain.TargetEverything
		}
		filter = map[string]any{
			"id":     0,
			"type":   string(f.Filter.Type),
			"target": string(target),
			"amount": f.Filter.Amount,
		}
	}

	fades := make([]any, 0, 1)
	if f.Fade != nil {
		target := f.Fade.Target
		if target == "" {
			target = domain.TargetEverything
		}
		fades = append(fades, map[string]any{
			"id":       0,
			"fade":     string(f.Fade.Direction),
			"target":   string(target),
			"easing":   string(easingOrLinear(f.Fade.Easing)),
			"color":    f.Fade.Color.String(),
			"duration": f.Fade.Duration,
		})
	}

	acts, err := st.frameActions(f)
	if err != nil {
		return nil, err
	}

	caseAction := map[string]any{}
	if f.Action != nil {
		caseAction, err = st.encodeAction(f.Action)
		if err != nil {
			return nil, err
		}
	}

	var pairID any
	if !secondary.IsNone() || active.PairOffset != (domain.Offset{}) {
		pairID = st.pairFor(active, secondary, front)
	}

	fd := map[string]any{
		"id":            -1,
		"iid":           iid,
		"text":          f.Text,
		"characterId":   characterID,
		"poseId":        poseID,
		"pairPoseId":    pairPoseID,
		"bubbleType":    f.Bubble,
		"username":      f.CustomName,
		"mergeNext":     f.Merge,
		"doNotTalk":     !f.Talk,
		"goNext":        f.GoNext,
		"poseAnimation": f.PoseAnim,
		"flipped":       flippedBits(f, active, secondary),
		"popupId":       popupID,
		"backgroundId":  backgroundID,
		"transition":    transition,
		"filter":        filter,
		"frameFades":    fades,
		"frameActions":  acts,
		"caseAction":    caseAction,
		"pairId":        pairID,
	}

	if inCE {
		contras := make([]any, 0, len(f.Contradictions))
		for _, c := range f.Contradictions {
			ref, err := st.recordRef(c.Item)
			if err != nil {
				return nil, err
			}
			cm := map[string]any{"item": ref}
			st.refFrame(cm, "frame", c.Target)
			contras = append(contras, cm)
		}
		fd["contradictions"] = contras
	}

	if f.OnCompile != nil {
		fd = f.OnCompile(fd)
	}
	return fd, nil
}

// resolveCharacters applies the activity/front scoring to the frame's two
// slots: a real character beats the none placeholder, an explicit flag
// beats an unset one, and the primary slot wins ties.
func resolveCharacters(f *domain.Frame) (active, secondary, front *domain.FrameCharacter) {
	c0 := f.Char
	if c0 == nil {
		c0 = domain.NoneFrameCharacter()
	}
	c1 := f.PairChar
	if c1 == nil {
		c1 = domain.NoneFrameCharacter()
	}

	activeScore := func(c *domain.FrameCharacter) int {
		switch {
		case c.IsNone():
			return -1
		case c.Active == nil:
			return 0
		case *c.Active:
			return 1
		default:
			return -1
		}
	}
	active, secondary = c0, c1
	if activeScore(c1) > activeScore(c0) {
		active, secondary = c1, c0
	}

	frontScore := func(c *domain.FrameCharacter) int {
		switch {
		case c.IsNone():
			return -2
		case c.Front == nil:
			return 0
		case *c.Front:
			return 1
		default:
			return -1
		}
	}
	front = c0
	if frontScore(c1) > frontScore(c0) {
		front = c1
	}
	return active, secondary, front
}

// flippedBits renders the (background, active, secondary) mirror flags.
func flippedBits(f *domain.Frame, active, secondary *domain.FrameCharacter) string {
	bits := make([]byte, 3)
	for i, v := range []bool{f.BackgroundFlip, active.Flip, secondary.Flip} {
		if v {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	return string(bits)
}

// frameActions emits the ordered action list of the frame modifiers: screen
// placement, preset popup/blip, then the per-frame option overrides.
func (st *state) frameActions(f *domain.Frame) ([]any, error) {
	acts := make([]any, 0, 2)
	add := func(id int) {
		acts = append(acts, map[string]any{"actionId": id})
	}
	addParam := func(id int, param string) {
		acts = append(acts, map[string]any{"actionId": id, "actionParam": param})
	}

	if f.OffScreen {
		add(actionOffScreen)
	}
	if f.CenterText {
		add(actionCenterText)
	}
	switch {
	case f.PresetPopup > 0:
		addParam(actionPresetPopup, strconv.Itoa(int(f.PresetPopup)))
	case f.PresetPopup == domain.PopupTestimonyLabelHide:
		addParam(actionTestimonyLabel, "1")
	}
	switch {
	case f.PresetBlip > 0:
		addParam(actionBlipSet, strconv.Itoa(int(f.PresetBlip)))
	case f.PresetBlip == domain.BlipMute:
		add(actionBlipMute)
	}

	if o := f.Options; o != nil {
		if o.AutoplaySpeed != nil {
			addParam(actionAutoplaySpeed, strconv.Itoa(*o.AutoplaySpeed))
		}
		if o.DialogueBox != nil {
			addParam(actionDialogueBox, strconv.Itoa(int(*o.DialogueBox)))
		}
		if o.DialogueBoxVisible != nil {
			addParam(actionDialogueBoxVisible, boolParam(*o.DialogueBoxVisible))
		}
		if o.DefaultTextSpeed != nil {
			addParam(actionTextSpeed, strconv.Itoa(*o.DefaultTextSpeed))
		}
		if o.BlipFrequency != nil {
			addParam(actionBlipFrequency, strconv.Itoa(*o.BlipFrequency))
		}
		if o.FrameSkip != nil {
			addParam(actionFrameSkip, boolParam(*o.FrameSkip))
		}
		// the player keeps separate PW and AJ galleries; removal clears both
		for _, loc := range o.GalleryRemove {
			addParam(actionGalleryRemove, string(loc))
			addParam(actionGalleryRemoveAJ, string(loc))
		}
		for _, ch := range o.GalleryAssign {
			if !ch.IsPreset() {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedCustomGallery, ch.Name)
			}
			id := 0
			if ch.ID != nil {
				id = *ch.ID
			}
			if ch.AJStyle {
				addParam(actionGalleryAssignAJ, strconv.Itoa(id))
			} else {
				addParam(actionGalleryAssign, strconv.Itoa(id))
			}
		}
	}

	if len(acts) > st.lim.MaxFrameActions {
		st.warnLimit("frameActions", st.lim.MaxFrameActions, len(acts))
	}
	return acts, nil
}

func boolParam(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

func easingOrLinear(e domain.Easing) domain.Easing {
	if e == "" {
		return domain.EasingLinear
	}
	return e
}

func snippet(s string) string {
	const max = 24
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
