/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import "errors"

// ErrWrongGroupKind is returned when a kind-specific operation is applied
// to a group of another kind, e.g. reading the counsel sequence of a normal
// group or pointing SetGameOverGroup at a non-game-over group.
var ErrWrongGroupKind = errors.New("wrong group kind")

// Group is an ordered sequence of frames of one of three kinds.
// Cross-examination groups additionally carry counsel and failure
// sequences; those are kept behind accessors so misuse surfaces as
// ErrWrongGroupKind instead of silently compiling to nothing.
type Group struct {
	Name    string
	CaseTag string
	Frames  []*Frame

	kind    GroupKind
	counsel []*Frame
	failure []*Frame
}

// NewGroup creates a normal dialogue group.
func NewGroup(name string) *Group {
	return &Group{Name: name, kind: GroupNormal}
}

// NewCrossExamination creates a cross-examination group. Its Frames are the
// witness statements; press sequences hang off the individual frames.
func NewCrossExamination(name string) *Group {
	return &Group{Name: name, kind: GroupCrossExamination}
}

// NewGameOverGroup creates a game-over group.
func NewGameOverGroup(name string) *Group {
	return &Group{Name: name, kind: GroupGameOver}
}

// Kind returns the group kind code.
func (g *Group) Kind() GroupKind {
	if g.kind == "" {
		return GroupNormal
	}
	return g.kind
}

// Append adds frames to the group and returns it for chaining.
func (g *Group) Append(frames ...*Frame) *Group {
	g.Frames = append(g.Frames, frames...)
	return g
}

// CounselSequence returns the frames played between cross-examination loops.
func (g *Group) CounselSequence() ([]*Frame, error) {
	if g.Kind() != GroupCrossExamination {
		return nil, ErrWrongGroupKind
	}
	return g.counsel, nil
}

// SetCounselSequence replaces the counsel sequence.
func (g *Group) SetCounselSequence(frames []*Frame) error {
	if g.Kind() != GroupCrossExamination {
		return ErrWrongGroupKind
	}
	g.counsel = frames
	return nil
}

// FailureSequence returns the frames played after a wrong present.
func (g *Group) FailureSequence() ([]*Frame, error) {
	if g.Kind() != GroupCrossExamination {
		return nil, ErrWrongGroupKind
	}
	return g.failure, nil
}

// SetFailureSequence replaces the failure sequence.
func (g *Group) SetFailureSequence(frames []*Frame) error {
	if g.Kind() != GroupCrossExamination {
		return ErrWrongGroupKind
	}
	g.failure = frames
	return nil
}
