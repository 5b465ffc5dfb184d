/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package assets

import "context"

// Static is an in-memory resolver. It backs offline compiles against the
// bundled preset table and serves as the test double everywhere else.
type Static struct {
	records map[Kind]map[int]Record
}

// NewStatic builds a static resolver from the given records.
func NewStatic(records ...Record) *Static {
	s := &Static{records: make(map[Kind]map[int]Record)}
	for _, r := range records {
		s.Add(r)
	}
	return s
}

// Add inserts or replaces one record.
func (s *Static) Add(r Record) {
	byID, ok := s.records[r.Kind]
	if !ok {
		byID = make(map[int]Record)
		s.records[r.Kind] = byID
	}
	byID[r.ID] = r
}

// Resolve implements Resolver; it never fails.
func (s *Static) Resolve(_ context.Context, kind Kind, id int) (Record, bool, error) {
	r, ok := s.records[kind][id]
	return r, ok, nil
}
