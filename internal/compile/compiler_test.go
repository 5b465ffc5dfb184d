/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package compile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"courtwriter/internal/domain"
)

func intp(v int) *int { return &v }

func presetChar(id int, name string) *domain.Character {
	return &domain.Character{
		ID:           intp(id),
		Name:         name,
		BackgroundID: 100 + id,
		Poses: []domain.Pose{
			{ID: 1, Name: "Normal"},
			{ID: 2, Name: "Point"},
		},
	}
}

func compileOK(t *testing.T, p *domain.Project) map[string]any {
	t.Helper()
	obj, err := New().Compile(context.Background(), p)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return obj
}

func groupFrames(t *testing.T, obj map[string]any, idx int) []any {
	t.Helper()
	groups, ok := obj["groups"].([]any)
	if !ok || idx >= len(groups) {
		t.Fatalf("groups[%d] missing in %v", idx, obj["groups"])
	}
	gd := groups[idx].(map[string]any)
	return gd["frames"].([]any)
}

func TestCompileMinimalScene(t *testing.T) {
	p := domain.NewScene()
	f := domain.NewFrame("Hold it!")
	f.Char = domain.NewFrameCharacter(presetChar(1, "Phoenix Wright"), "point")
	p.AppendFrame(f)

	obj := compileOK(t, p)

	if obj["version"] != WireVersion {
		t.Fatalf("version = %v, want %d", obj["version"], WireVersion)
	}
	if obj["type"] != "scene" {
		t.Fatalf("type = %v, want scene", obj["type"])
	}
	if obj["credit"] != creditLine {
		t.Fatalf("credit = %v", obj["credit"])
	}
	if pairs := obj["pairs"].([]any); len(pairs) != 0 {
		t.Fatalf("pairs = %v, want empty", pairs)
	}

	frames := groupFrames(t, obj, 0)
	if len(frames) != 1 {
		t.Fatalf("frames = %d, want 1", len(frames))
	}
	fd := frames[0].(map[string]any)
	if fd["id"] != -1 || fd["iid"] != 1 {
		t.Fatalf("id/iid = %v/%v, want -1/1", fd["id"], fd["iid"])
	}
	// preset characters ship with the player; their id never serializes
	if fd["characterId"] != nil {
		t.Fatalf("characterId = %v, want null for preset", fd["characterId"])
	}
	if fd["poseId"] != 2 {
		t.Fatalf("poseId = %v, want 2 (Point)", fd["poseId"])
	}
	if fd["flipped"] != "000" {
		t.Fatalf("flipped = %v, want 000", fd["flipped"])
	}
	if fd["doNotTalk"] != false || fd["poseAnimation"] != true {
		t.Fatalf("talk defaults wrong: doNotTalk=%v poseAnimation=%v", fd["doNotTalk"], fd["poseAnimation"])
	}
	if fd["pairId"] != nil {
		t.Fatalf("pairId = %v, want null without a pair", fd["pairId"])
	}
	if fd["backgroundId"] != 101 {
		t.Fatalf("backgroundId = %v, want character default 101", fd["backgroundId"])
	}
}

func TestCompileSceneShape(t *testing.T) {
	p := domain.NewScene()
	p.Groups = append(p.Groups, domain.NewGroup("Second"))
	if _, err := New().Compile(context.Background(), p); !errors.Is(err, ErrBadProject) {
		t.Fatalf("two groups in a scene: got %v, want ErrBadProject", err)
	}
	if _, err := New().Compile(context.Background(), nil); !errors.Is(err, ErrBadProject) {
		t.Fatalf("nil project: got %v, want ErrBadProject", err)
	}
}

func TestCompileDeterministic(t *testing.T) {
	p := domain.NewScene()
	a := presetChar(1, "Phoenix Wright")
	b := presetChar(5, "Miles Edgeworth")
	for i := 0; i < 8; i++ {
		f := domain.NewFrame(fmt.Sprintf("statement %d", i))
		f.Char = domain.NewFrameCharacter(a, "normal")
		f.PairChar = domain.NewFrameCharacter(b, "normal")
		p.AppendFrame(f)
	}
	p.AddAlias("PW", "Phoenix")
	p.Evidence = append(p.Evidence, &domain.RecordItem{Type: domain.RecordEvidence, Name: "Badge"})

	first, err := New().Envelope(context.Background(), p)
	if err != nil {
		t.Fatalf("first compile: %v", err)
	}
	second, err := New().Envelope(context.Background(), p)
	if err != nil {
		t.Fatalf("second compile: %v", err)
	}
	if first != second {
		t.Fatalf("same project compiled to different envelopes")
	}
}

func TestCompilePairDedup(t *testing.T) {
	p := domain.NewScene()
	hi := presetChar(5, "Miles Edgeworth")
	lo := presetChar(2, "Mia Fey")
	for i := 0; i < 2; i++ {
		f := domain.NewFrame("together")
		f.Char = domain.NewFrameCharacter(hi, "normal")
		f.PairChar = domain.NewFrameCharacter(lo, "normal")
		p.AppendFrame(f)
	}
	// slots swapped: still the same duo
	f := domain.NewFrame("swapped")
	f.Char = domain.NewFrameCharacter(lo, "normal")
	f.PairChar = domain.NewFrameCharacter(hi, "normal")
	p.AppendFrame(f)

	obj := compileOK(t, p)
	pairs := obj["pairs"].([]any)
	if len(pairs) != 1 {
		t.Fatalf("pairs = %d, want 1 deduplicated record", len(pairs))
	}
	pd := pairs[0].(map[string]any)
	if pd["pairId"] != 1 || pd["characterId"] != 5 || pd["characterId2"] != 2 {
		t.Fatalf("pair record = %v", pd)
	}
	for i, raw := range groupFrames(t, obj, 0) {
		fd := raw.(map[string]any)
		if fd["pairId"] != 1 {
			t.Fatalf("frame %d pairId = %v, want 1", i, fd["pairId"])
		}
	}
}

func TestCompileIIDsContiguous(t *testing.T) {
	p := domain.NewScene()
	for i := 0; i < 5; i++ {
		p.AppendFrame(domain.NewFrame(fmt.Sprintf("f%d", i)))
	}
	obj := compileOK(t, p)
	for i, raw := range groupFrames(t, obj, 0) {
		fd := raw.(map[string]any)
		if fd["iid"] != i+1 {
			t.Fatalf("frame %d iid = %v, want %d", i, fd["iid"], i+1)
		}
	}
}

func TestCompileEvidenceLimitWarning(t *testing.T) {
	p := domain.NewScene()
	p.AppendFrame(domain.NewFrame("..."))
	for i := 0; i < 51; i++ {
		p.Evidence = append(p.Evidence, &domain.RecordItem{
			Type: domain.RecordEvidence,
			Name: fmt.Sprintf("Exhibit %d", i),
		})
	}

	var warnings []Warning
	c := &Compiler{Warn: CollectWarnings(&warnings)}
	if _, err := c.Compile(context.Background(), p); err != nil {
		t.Fatalf("compile: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	w := warnings[0]
	if w.Kind != WarnLimit || w.Target != "evidence" || w.Limit != 50 || w.Actual != 51 {
		t.Fatalf("warning = %+v", w)
	}
}

func TestCompileOptionsAndAliases(t *testing.T) {
	p := domain.NewScene()
	p.AppendFrame(domain.NewFrame("..."))
	p.AddAlias("PW", "Phoenix")
	p.AddAlias("ME", "Edgeworth")

	obj := compileOK(t, p)
	opts := obj["options"].(map[string]any)
	want := domain.DefaultOptions()
	if opts["chatbox"] != int(want.DialogueBox) ||
		opts["textSpeed"] != want.TextSpeed ||
		opts["textBlipFrequency"] != want.BlipFrequency ||
		opts["autoplaySpeed"] != want.AutoplaySpeed ||
		opts["continueSoundUrl"] != want.ContinueSoundURL {
		t.Fatalf("options = %v", opts)
	}
	aliases := obj["aliases"].([]any)
	if len(aliases) != 2 {
		t.Fatalf("aliases = %v", aliases)
	}
	first := aliases[0].(map[string]any)
	if first["id"] != 1 || first["find"] != "PW" || first["replace"] != "Phoenix" {
		t.Fatalf("alias[0] = %v", first)
	}
}

func TestCompileDuplicateFrameTag(t *testing.T) {
	p := domain.NewScene()
	a := domain.NewFrame("a")
	a.CaseTag = "twice"
	b := domain.NewFrame("b")
	b.CaseTag = "twice"
	p.AppendFrame(a, b)
	if _, err := New().Compile(context.Background(), p); !errors.Is(err, ErrDuplicateTag) {
		t.Fatalf("got %v, want ErrDuplicateTag", err)
	}
}

func TestCompileSharedFrameRejected(t *testing.T) {
	p := domain.NewCase()
	f := domain.NewFrame("shared")
	g1 := domain.NewGroup("One").Append(f)
	g2 := domain.NewGroup("Two").Append(f)
	p.Groups = append(p.Groups, g1, g2)
	if _, err := New().Compile(context.Background(), p); !errors.Is(err, ErrBadProject) {
		t.Fatalf("got %v, want ErrBadProject for a frame in two sequences", err)
	}
}

func TestCompileCrossExamination(t *testing.T) {
	ev := &domain.RecordItem{Type: domain.RecordEvidence, Name: "Autopsy Report"}

	stmt1 := domain.NewFrame("I saw the defendant.")
	stmt2 := domain.NewFrame("It was nine o'clock.")
	press1 := domain.NewFrame("Are you sure?")
	stmt1.Press = []*domain.Frame{press1}
	rebut := domain.NewFrame("Objection!")
	stmt2.Contradictions = []domain.Contradiction{{Item: ev, Target: domain.ToFrame(rebut)}}

	ce := domain.NewCrossExamination("Witness Testimony")
	ce.Append(stmt1, stmt2)
	counsel := domain.NewFrame("Press harder.")
	if err := ce.SetCounselSequence([]*domain.Frame{counsel}); err != nil {
		t.Fatalf("counsel: %v", err)
	}
	failure := domain.NewFrame("The court has heard enough.")
	if err := ce.SetFailureSequence([]*domain.Frame{failure}); err != nil {
		t.Fatalf("failure: %v", err)
	}

	p := domain.NewCase()
	p.Evidence = append(p.Evidence, ev)
	p.Groups = append(p.Groups, ce, domain.NewGroup("After").Append(rebut))

	obj := compileOK(t, p)
	gd := obj["groups"].([]any)[0].(map[string]any)
	if gd["type"] != "ce" {
		t.Fatalf("group type = %v, want ce", gd["type"])
	}

	// iids follow visit order: statements, presses, counsel, failure, then
	// the next group
	wantIIDs := map[string]int{"stmt1": 1, "stmt2": 2, "press1": 3, "counsel": 4, "failure": 5, "rebut": 6}
	frames := gd["frames"].([]any)
	if frames[0].(map[string]any)["iid"] != wantIIDs["stmt1"] || frames[1].(map[string]any)["iid"] != wantIIDs["stmt2"] {
		t.Fatalf("statement iids = %v", frames)
	}
	press := gd["pressFrames"].([]any)
	if len(press) != 2 {
		t.Fatalf("pressFrames per statement = %d, want 2", len(press))
	}
	if seq := press[0].([]any); len(seq) != 1 || seq[0].(map[string]any)["iid"] != wantIIDs["press1"] {
		t.Fatalf("press sequence of statement 1 = %v", press[0])
	}
	if seq := press[1].([]any); len(seq) != 0 {
		t.Fatalf("press sequence of statement 2 = %v, want empty", seq)
	}
	if seq := gd["counselFrames"].([]any); seq[0].(map[string]any)["iid"] != wantIIDs["counsel"] {
		t.Fatalf("counselFrames = %v", seq)
	}
	if seq := gd["failureFrames"].([]any); seq[0].(map[string]any)["iid"] != wantIIDs["failure"] {
		t.Fatalf("failureFrames = %v", seq)
	}

	contras := frames[1].(map[string]any)["contradictions"].([]any)
	if len(contras) != 1 {
		t.Fatalf("contradictions = %v", contras)
	}
	cm := contras[0].(map[string]any)
	item := cm["item"].(map[string]any)
	if item["iid"] != 1 || item["type"] != "evidence" {
		t.Fatalf("contradiction item = %v", item)
	}
	if cm["frame"] != wantIIDs["rebut"] {
		t.Fatalf("contradiction frame = %v, want %d", cm["frame"], wantIIDs["rebut"])
	}

	// statements outside a CE group carry no contradiction list
	after := obj["groups"].([]any)[1].(map[string]any)
	fd := after["frames"].([]any)[0].(map[string]any)
	if _, present := fd["contradictions"]; present {
		t.Fatalf("normal group frame carries contradictions: %v", fd)
	}
}

func TestEnvelopeRoundTrip(t *testing.T) {
	p := domain.NewScene()
	p.AppendFrame(domain.NewFrame("Take that!"))
	c := New()

	env, err := c.Envelope(context.Background(), p)
	if err != nil {
		t.Fatalf("envelope: %v", err)
	}
	obj, err := DecodeEnvelope(env)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if obj["type"] != "scene" {
		t.Fatalf("decoded type = %v", obj["type"])
	}
	direct, err := c.Compile(context.Background(), p)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	a, err := Marshal(direct)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	reencoded, err := Envelope(direct)
	if err != nil {
		t.Fatalf("re-envelope: %v", err)
	}
	if reencoded != env {
		t.Fatalf("envelope of identical object differs")
	}
	if !bytes.Contains(a, []byte(`"version":4`)) {
		t.Fatalf("marshaled artifact misses version: %s", a)
	}
}

func TestCompileFrameHook(t *testing.T) {
	p := domain.NewScene()
	f := domain.NewFrame("hooked")
	f.OnCompile = func(fd map[string]any) map[string]any {
		fd["text"] = "rewritten"
		return fd
	}
	p.AppendFrame(f)
	obj := compileOK(t, p)
	fd := groupFrames(t, obj, 0)[0].(map[string]any)
	if fd["text"] != "rewritten" {
		t.Fatalf("text = %v, want hook rewrite", fd["text"])
	}
}
