/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package assets provides access to objection.lol asset catalog metadata:
// the Resolver interface consumed by the compiler, an HTTP catalog client,
// a SQLite-backed caching resolver and a static in-memory resolver.
package assets

import (
	"context"

	"courtwriter/internal/domain"
)

// Kind names an asset catalog namespace.
type Kind string

const (
	KindCharacter  Kind = "character"
	KindBackground Kind = "background"
	KindMusic      Kind = "music"
	KindSound      Kind = "sound"
	KindPopup      Kind = "popup"
	KindEvidence   Kind = "evidence"
)

// Record is the catalog metadata for one asset id. Fields carries the raw
// catalog projection; the keys differ per kind (see the typed helpers).
type Record struct {
	Kind   Kind
	ID     int
	Fields map[string]any
}

// Resolver resolves an asset id to its catalog record. Implementations may
// block (network, disk); the compiler passes its context through unchanged
// and surfaces resolver errors to the caller without wrapping retry logic
// around them. A missing id is not an error: exists is false.
type Resolver interface {
	Resolve(ctx context.Context, kind Kind, id int) (rec Record, exists bool, err error)
}

// field helpers tolerate both typed and JSON-decoded (float64/json.Number)
// values.

func (r Record) str(key string) string {
	if v, ok := r.Fields[key].(string); ok {
		return v
	}
	return ""
}

func (r Record) num(key string) (int, bool) {
	switch v := r.Fields[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case interface{ Int64() (int64, error) }: // json.Number
		if n, err := v.Int64(); err == nil {
			return int(n), true
		}
	}
	return 0, false
}

func (r Record) boolean(key string) bool {
	v, _ := r.Fields[key].(bool)
	return v
}

// Character builds a domain character from a character record.
func (r Record) Character() *domain.Character {
	id := r.ID
	c := &domain.Character{
		ID:                &id,
		Name:              r.str("name"),
		NamePlate:         r.str("namePlate"),
		BlipURL:           r.str("blipUrl"),
		Side:              domain.Side(r.str("side")),
		GalleryImageURL:   r.str("galleryImageUrl"),
		GalleryAJImageURL: r.str("galleryAJImageUrl"),
	}
	if v, ok := r.num("backgroundId"); ok {
		c.BackgroundID = v
	}
	c.AJStyle = c.GalleryAJImageURL != "" && c.GalleryImageURL == ""
	if bubbles, ok := r.Fields["bubbles"].([]string); ok {
		c.Bubbles = bubbles
	}
	switch poses := r.Fields["poses"].(type) {
	case []domain.Pose:
		c.Poses = append(c.Poses, poses...)
	case []any:
		for _, p := range poses {
			m, ok := p.(map[string]any)
			if !ok {
				continue
			}
			pr := Record{Fields: m}
			id, _ := pr.num("id")
			c.Poses = append(c.Poses, domain.Pose{ID: id, Name: pr.str("name"), Extra: m})
		}
	}
	return c
}

// Background builds a domain background from a background record.
func (r Record) Background() *domain.Background {
	id := r.ID
	return &domain.Background{
		ID:      &id,
		Name:    r.str("name"),
		URL:     r.str("url"),
		DeskURL: r.str("deskUrl"),
		Wide:    r.boolean("isWide"),
	}
}

// Music builds a domain music track from a music record.
func (r Record) Music() *domain.Music {
	id := r.ID
	m := &domain.Music{ID: &id, Name: r.str("name"), URL: r.str("url")}
	if v, ok := r.Fields["volume"].(float64); ok {
		m.Volume = v
	}
	if v, ok := r.num("fileSize"); ok {
		m.FileSize = int64(v)
	}
	return m
}

// Sound builds a domain sound effect from a sound record.
func (r Record) Sound() *domain.Sound {
	id := r.ID
	s := &domain.Sound{ID: &id, Name: r.str("name"), URL: r.str("url")}
	if v, ok := r.Fields["volume"].(float64); ok {
		s.Volume = v
	}
	if v, ok := r.num("fileSize"); ok {
		s.FileSize = int64(v)
	}
	return s
}

// Popup builds a domain popup from a popup record.
func (r Record) Popup() *domain.Popup {
	id := r.ID
	p := &domain.Popup{
		ID:        &id,
		Name:      r.str("name"),
		URL:       r.str("url"),
		Alignment: r.str("alignment"),
		Center:    r.boolean("center"),
		Resize:    r.str("resize"),
	}
	if v, ok := r.num("posY"); ok {
		p.PosY = v
	}
	return p
}
