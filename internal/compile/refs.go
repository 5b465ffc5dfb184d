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

// patch is a deferred symbol fixup. References to frames and groups are
// written into the output graph as the placeholder value 0 and rewritten to
// the final iid once the whole project has been traversed, so forward
// references and tag references cost no second traversal of the graph.
// Exactly one of m or list names the slot.
type patch struct {
	m    map[string]any
	key  string
	list []any
	idx  int

	frame        domain.FrameRef
	group        domain.GroupRef
	isGroup      bool
	mustGameOver bool
}

func (p *patch) set(iid int) {
	if p.m != nil {
		p.m[p.key] = iid
	} else {
		p.list[p.idx] = iid
	}
}

// describe names the unresolved reference the way an author wrote it.
func (p *patch) describe() string {
	if p.isGroup {
		if p.group.Tag != "" {
			return fmt.Sprintf("group tag %q", p.group.Tag)
		}
		if p.group.Group == nil {
			return "empty group reference"
		}
		return fmt.Sprintf("group %q not in project", p.group.Group.Name)
	}
	if p.frame.Tag != "" {
		return fmt.Sprintf("frame tag %q", p.frame.Tag)
	}
	if p.frame.Frame == nil {
		return "empty frame reference"
	}
	return fmt.Sprintf("frame %q not in project", snippet(p.frame.Frame.Text))
}

// refFrame writes a frame reference placeholder under key and schedules its
// fixup.
func (st *state) refFrame(m map[string]any, key string, ref domain.FrameRef) {
	m[key] = 0
	st.patches = append(st.patches, patch{m: m, key: key, frame: ref})
}

// refFrameList encodes a slice of frame references as placeholder iids.
func (st *state) refFrameList(refs []domain.FrameRef) []any {
	out := make([]any, len(refs))
	for i, ref := range refs {
		out[i] = 0
		st.patches = append(st.patches, patch{list: out, idx: i, frame: ref})
	}
	return out
}

// refGroup writes a group reference placeholder under key and schedules its
// fixup. mustGameOver additionally requires the resolved group to be a
// game-over group.
func (st *state) refGroup(m map[string]any, key string, ref domain.GroupRef) {
	m[key] = 0
	st.patches = append(st.patches, patch{m: m, key: key, group: ref, isGroup: true, mustGameOver: true})
}

// resolvePatches rewrites every placeholder to its final iid. Unresolved
// references are collected and reported in one batch; kind violations abort
// immediately because they are authoring bugs, not missing symbols.
func (st *state) resolvePatches() error {
	var dangling []string
	for i := range st.patches {
		p := &st.patches[i]
		if p.isGroup {
			e, ok := st.lookupGroup(p.group)
			if !ok {
				dangling = append(dangling, p.describe())
				continue
			}
			if p.mustGameOver && e.kind != domain.GroupGameOver {
				return fmt.Errorf("%w: group %q is not a game-over group", domain.ErrWrongGroupKind, e.name)
			}
			p.set(e.iid)
			continue
		}
		iid, ok := st.lookupFrame(p.frame)
		if !ok {
			dangling = append(dangling, p.describe())
			continue
		}
		p.set(iid)
	}
	if len(dangling) > 0 {
		return &DanglingTagError{Tags: dangling}
	}
	return nil
}

func (st *state) lookupFrame(ref domain.FrameRef) (int, bool) {
	if ref.Frame != nil {
		iid, ok := st.frameIIDs[ref.Frame]
		return iid, ok
	}
	if ref.Tag != "" {
		iid, ok := st.frameTags[ref.Tag]
		return iid, ok
	}
	return 0, false
}

func (st *state) lookupGroup(ref domain.GroupRef) (groupEntry, bool) {
	if ref.Group != nil {
		e, ok := st.groupByPtr[ref.Group]
		return e, ok
	}
	if ref.Tag != "" {
		e, ok := st.groupTags[ref.Tag]
		return e, ok
	}
	return groupEntry{}, false
}
