/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import "fmt"

// Background is a scene background. Wide backgrounds allow horizontal
// panning via a frame's WideX position.
type Background struct {
	ID      *int
	Name    string
	URL     string
	DeskURL string
	Wide    bool
}

// Music is a looping background track.
type Music struct {
	ID       *int
	Name     string
	URL      string
	Volume   float64
	FileSize int64
}

// Tag returns the inline text code that starts this track in dialogue.
func (m *Music) Tag() string {
	if m == nil || m.ID == nil {
		return ""
	}
	return fmt.Sprintf("[#bgm%d]", *m.ID)
}

// Sound is a one-shot sound effect.
type Sound struct {
	ID       *int
	Name     string
	URL      string
	Volume   float64
	FileSize int64
}

// Tag returns the inline text code that plays this sound in dialogue.
func (s *Sound) Tag() string {
	if s == nil || s.ID == nil {
		return ""
	}
	return fmt.Sprintf("[#bgs%d]", *s.ID)
}

// Popup is an image overlay shown on top of a frame.
type Popup struct {
	ID        *int
	Name      string
	URL       string
	Alignment string
	Center    bool
	PosY      int
	Resize    string
}

// RecordItem is one entry of a case's court record, either evidence or a
// profile. Its 1-based iid inside the owning type list is assigned at
// compile time.
type RecordItem struct {
	Type        RecordItemKind
	Name        string
	IconURL     string
	CheckURL    string
	Description string
	Hidden      bool
}
