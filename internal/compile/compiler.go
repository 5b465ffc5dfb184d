/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package compile transforms an authoring project into the objection.lol
// wire format. Compilation is a pure, deterministic, single-threaded pass:
// it never mutates the input model, writes all assigned ids into a fresh
// output object graph, and resolves symbolic frame/group references in a
// deferred second phase once every iid is known.
package compile

import (
	"context"
	"fmt"
	"strconv"

	"courtwriter/internal/assets"
	"courtwriter/internal/domain"
)

// WireVersion is the version field of the emitted artifact.
const WireVersion = 4

const creditLine = "made with courtwriter"

// Compiler holds the per-caller knobs. The zero value compiles with default
// limits and logs warnings through the application logger.
type Compiler struct {
	Limits   Limits
	Warn     WarnFunc
	Resolver assets.Resolver // optional: enables asset reference checks
}

// New returns a compiler with default limits.
func New() *Compiler { return &Compiler{Limits: DefaultLimits()} }

// Compile transforms the project into its wire-format object. The input is
// treated as an immutable snapshot; compiling the same project twice yields
// identical output. ctx is only consulted at the resolver boundary.
func (c *Compiler) Compile(ctx context.Context, p *domain.Project) (map[string]any, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil project", ErrBadProject)
	}
	switch p.Kind {
	case domain.KindScene:
		if len(p.Groups) != 1 || p.Groups[0].Kind() != domain.GroupNormal || p.Groups[0].Name != domain.SceneMainGroupName {
			return nil, fmt.Errorf("%w: a scene holds exactly one normal group named %q", ErrBadProject, domain.SceneMainGroupName)
		}
	case domain.KindCase:
	default:
		return nil, fmt.Errorf("%w: unknown project kind %q", ErrBadProject, p.Kind)
	}

	st := newState(c, p)

	// aliases
	aliases := make([]any, 0, len(p.Aliases))
	for i, a := range p.Aliases {
		aliases = append(aliases, map[string]any{"id": i + 1, "find": a.Find, "replace": a.Replace})
	}
	if len(p.Aliases) > st.lim.MaxAliases {
		st.warnLimit("aliases", st.lim.MaxAliases, len(p.Aliases))
	}

	// court record first: case actions and contradictions need item iids
	evidence := st.registerRecords(p.Evidence, domain.RecordEvidence)
	profiles := st.registerRecords(p.Profiles, domain.RecordProfile)
	if len(p.Evidence) > st.lim.MaxEvidence {
		st.warnLimit("evidence", st.lim.MaxEvidence, len(p.Evidence))
	}
	if len(p.Profiles) > st.lim.MaxProfiles {
		st.warnLimit("profiles", st.lim.MaxProfiles, len(p.Profiles))
	}

	// group iids and tags are known before any frame compiles, so group
	// references never dangle merely because of declaration order
	for i, g := range p.Groups {
		e := groupEntry{iid: i + 1, kind: g.Kind(), name: g.Name}
		st.groupByPtr[g] = e
		if g.CaseTag != "" {
			if _, dup := st.groupTags[g.CaseTag]; dup {
				return nil, fmt.Errorf("%w: group tag %q", ErrDuplicateTag, g.CaseTag)
			}
			st.groupTags[g.CaseTag] = e
		}
	}
	if len(p.Groups) > st.lim.MaxGroups {
		st.warnLimit("groups", st.lim.MaxGroups, len(p.Groups))
	}

	groups := make([]any, 0, len(p.Groups))
	for _, g := range p.Groups {
		gd, err := st.compileGroup(g)
		if err != nil {
			return nil, err
		}
		groups = append(groups, gd)
	}

	if len(st.pairsOut) > st.lim.MaxPairs {
		st.warnLimit("pairs", st.lim.MaxPairs, len(st.pairsOut))
	}

	if err := st.resolvePatches(); err != nil {
		return nil, err
	}

	out := map[string]any{
		"credit":  creditLine,
		"version": WireVersion,
		"pairs":   st.pairsOut,
		"groups":  groups,
		"courtRecord": map[string]any{
			"evidence": evidence,
			"profiles": profiles,
		},
		"aliases": aliases,
		"options": map[string]any{
			"chatbox":           int(p.Options.DialogueBox),
			"textSpeed":         p.Options.TextSpeed,
			"textBlipFrequency": p.Options.BlipFrequency,
			"autoplaySpeed":     p.Options.AutoplaySpeed,
			"continueSoundUrl":  p.Options.ContinueSoundURL,
		},
		"type": string(p.Kind),
	}

	if c.Resolver != nil {
		if err := st.checkAssets(ctx, c.Resolver); err != nil {
			// resolver failures are the caller's to handle, unchanged
			return nil, err
		}
	}
	return out, nil
}

// Envelope compiles the project and encodes the artifact for transport.
func (c *Compiler) Envelope(ctx context.Context, p *domain.Project) (string, error) {
	obj, err := c.Compile(ctx, p)
	if err != nil {
		return "", err
	}
	return Envelope(obj)
}

type groupEntry struct {
	iid  int
	kind domain.GroupKind
	name string
}

type recordEntry struct {
	iid  int
	kind domain.RecordItemKind
}

type state struct {
	lim  Limits
	warn WarnFunc

	project *domain.Project

	nextIID    int
	nextPairID int

	frameIIDs  map[*domain.Frame]int
	frameTags  map[string]int
	groupByPtr map[*domain.Group]groupEntry
	groupTags  map[string]groupEntry
	records    map[*domain.RecordItem]recordEntry

	pairs    map[pairKey]int
	pairsOut []any

	patches []patch
}

func newState(c *Compiler, p *domain.Project) *state {
	lim := c.Limits
	if lim == (Limits{}) {
		lim = DefaultLimits()
	}
	warn := c.Warn
	if warn == nil {
		warn = LogWarnings()
	}
	return &state{
		lim:        lim,
		warn:       warn,
		project:    p,
		frameIIDs:  make(map[*domain.Frame]int),
		frameTags:  make(map[string]int),
		groupByPtr: make(map[*domain.Group]groupEntry),
		groupTags:  make(map[string]groupEntry),
		records:    make(map[*domain.RecordItem]recordEntry),
		pairs:      make(map[pairKey]int),
		pairsOut:   make([]any, 0),
	}
}

func (st *state) warnLimit(target string, limit, actual int) {
	st.warn(Warning{Kind: WarnLimit, Target: target, Limit: limit, Actual: actual})
}

// registerRecords assigns 1-based iids within the type list and emits the
// court record entries.
func (st *state) registerRecords(items []*domain.RecordItem, kind domain.RecordItemKind) []any {
	out := make([]any, 0, len(items))
	for i, it := range items {
		st.records[it] = recordEntry{iid: i + 1, kind: kind}
		out = append(out, map[string]any{
			"iid":         i + 1,
			"name":        it.Name,
			"iconUrl":     it.IconURL,
			"checkUrl":    it.CheckURL,
			"description": it.Description,
			"hide":        it.Hidden,
		})
	}
	return out
}

// recordRef encodes a reference to a court record item by its iid and list.
func (st *state) recordRef(it *domain.RecordItem) (map[string]any, error) {
	e, ok := st.records[it]
	if !ok {
		name := "(nil)"
		if it != nil {
			name = it.Name
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownRecordItem, name)
	}
	return map[string]any{"iid": e.iid, "type": string(e.kind)}, nil
}

func (st *state) compileGroup(g *domain.Group) (map[string]any, error) {
	e := st.groupByPtr[g]
	inCE := g.Kind() == domain.GroupCrossExamination

	total := 0
	frames := make([]any, 0, len(g.Frames))
	for _, f := range g.Frames {
		fd, err := st.compileFrame(f, inCE)
		if err != nil {
			return nil, err
		}
		frames = append(frames, fd)
		total++
	}

	gd := map[string]any{
		"iid":    e.iid,
		"name":   g.Name,
		"type":   string(g.Kind()),
		"frames": frames,
	}

	if inCE {
		// press sequences compile after all statements so iids stay
		// monotonic in visit order
		press := make([]any, 0, len(g.Frames))
		for _, f := range g.Frames {
			seq := make([]any, 0, len(f.Press))
			for _, pf := range f.Press {
				fd, err := st.compileFrame(pf, false)
				if err != nil {
					return nil, err
				}
				seq = append(seq, fd)
				total++
			}
			press = append(press, seq)
		}
		counselSrc, err := g.CounselSequence()
		if err != nil {
			return nil, err
		}
		counsel := make([]any, 0, len(counselSrc))
		for _, f := range counselSrc {
			fd, err := st.compileFrame(f, false)
			if err != nil {
				return nil, err
			}
			counsel = append(counsel, fd)
			total++
		}
		failureSrc, err := g.FailureSequence()
		if err != nil {
			return nil, err
		}
		failure := make([]any, 0, len(failureSrc))
		for _, f := range failureSrc {
			fd, err := st.compileFrame(f, false)
			if err != nil {
				return nil, err
			}
			failure = append(failure, fd)
			total++
		}
		gd["pressFrames"] = press
		gd["counselFrames"] = counsel
		gd["failureFrames"] = failure
	}

	if total > st.lim.MaxGroupFrames {
		st.warn(Warning{Kind: WarnLimit, Target: "groupFrames", Detail: g.Name, Limit: st.lim.MaxGroupFrames, Actual: total})
	}
	return gd, nil
}

// walkFrames visits every frame of the project in compile order.
func walkFrames(p *domain.Project, visit func(*domain.Frame)) {
	for _, g := range p.Groups {
		for _, f := range g.Frames {
			visit(f)
		}
		if g.Kind() != domain.GroupCrossExamination {
			continue
		}
		for _, f := range g.Frames {
			for _, pf := range f.Press {
				visit(pf)
			}
		}
		if counsel, err := g.CounselSequence(); err == nil {
			for _, f := range counsel {
				visit(f)
			}
		}
		if failure, err := g.FailureSequence(); err == nil {
			for _, f := range failure {
				visit(f)
			}
		}
	}
}

type assetRef struct {
	kind assets.Kind
	id   int
}

// checkAssets verifies every referenced asset id against the resolver and
// warns (never fails) on unknown ids. Resolver errors are returned as-is.
func (st *state) checkAssets(ctx context.Context, r assets.Resolver) error {
	seen := make(map[assetRef]bool)
	var firstErr error
	check := func(kind assets.Kind, id int) {
		if firstErr != nil {
			return
		}
		ref := assetRef{kind: kind, id: id}
		if seen[ref] {
			return
		}
		seen[ref] = true
		_, exists, err := r.Resolve(ctx, kind, id)
		if err != nil {
			firstErr = err
			return
		}
		if !exists {
			st.warn(Warning{Kind: WarnAssetUnknown, Target: string(kind), Detail: strconv.Itoa(id)})
		}
	}
	walkFrames(st.project, func(f *domain.Frame) {
		for _, fc := range []*domain.FrameCharacter{f.Char, f.PairChar} {
			if fc == nil || fc.Character == nil || fc.Character.ID == nil {
				continue
			}
			check(assets.KindCharacter, *fc.Character.ID)
		}
		if f.Background != nil && f.Background.ID != nil {
			check(assets.KindBackground, *f.Background.ID)
		}
		if f.Popup != nil && f.Popup.ID != nil {
			check(assets.KindPopup, *f.Popup.ID)
		}
	})
	return firstErr
}
