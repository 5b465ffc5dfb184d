/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package export writes compiled artifacts to disk and renders readable
// transcripts. File writes are transactional: content lands in a temp file in
// the destination directory, is fsynced, and is renamed over the target, so a
// crash mid-export never leaves a truncated artifact behind.
package export

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"courtwriter/internal/compile"
)

// WriteJSON writes the compiled object as indented JSON to path.
func WriteJSON(path string, obj map[string]any) error {
	data, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal artifact: %w", err)
	}
	data = append(data, '\n')
	return writeAtomic(path, data)
}

// WriteEnvelope encodes the compiled object as a paste-ready base64 envelope
// and writes it to path.
func WriteEnvelope(path string, obj map[string]any) error {
	env, err := compile.Envelope(obj)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	return writeAtomic(path, append([]byte(env), '\n'))
}

// writeAtomic replaces path with data via a same-directory temp file and
// rename.
func writeAtomic(path string, data []byte) error {
	if path == "" {
		return fmt.Errorf("output path is empty")
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	temp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d-%d", filepath.Base(path), os.Getpid(), rand.Int()))
	if err := writeFileSync(temp, data); err != nil {
		return fmt.Errorf("write temp artifact: %w", err)
	}
	// On Windows, replace by removing destination first if needed
	if _, err := os.Stat(path); err == nil {
		_ = os.Remove(path)
	}
	if err := os.Rename(temp, path); err != nil {
		_ = os.Remove(temp)
		return fmt.Errorf("replace artifact: %w", err)
	}
	return nil
}

// writeFileSync writes data and fsyncs before closing.
func writeFileSync(path string, data []byte) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}
