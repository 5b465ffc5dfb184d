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
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Marshal serializes a compiled artifact deterministically. Map keys are
// emitted in sorted order, so equal objects serialize to equal bytes.
func Marshal(obj map[string]any) ([]byte, error) {
	b, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("encode artifact: %w", err)
	}
	return b, nil
}

// Envelope wraps the serialized artifact in the base64 transport envelope
// the player's import box accepts.
func Envelope(obj map[string]any) (string, error) {
	b, err := Marshal(obj)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeEnvelope is the inverse of Envelope. It is used by validation and
// by tests; numbers decode as json.Number so ids survive untouched.
func DecodeEnvelope(s string) (map[string]any, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}
	return obj, nil
}
