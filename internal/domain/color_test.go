/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package domain

import (
	"errors"
	"testing"
)

func TestNewColorCanonicalizes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"#abc", "#AABBCC"},
		{"#AbC", "#AABBCC"},
		{"#ff0000", "#FF0000"},
		{"#1a2B3c", "#1A2B3C"},
		{"#000", "#000000"},
	}
	for _, tc := range cases {
		c, err := NewColor(tc.in)
		if err != nil {
			t.Fatalf("NewColor(%q) error: %v", tc.in, err)
		}
		if c.String() != tc.want {
			t.Errorf("NewColor(%q) = %q, want %q", tc.in, c, tc.want)
		}
	}
}

func TestNewColorRejectsBadLiterals(t *testing.T) {
	for _, in := range []string{"", "abc", "#ab", "#abcd", "#abcdefg", "#ggg", "#12345z", "ff0000"} {
		if _, err := NewColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("NewColor(%q): expected ErrInvalidColor, got %v", in, err)
		}
	}
}

func TestMustColorPanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustColor did not panic on invalid literal")
		}
	}()
	MustColor("not-a-color")
}
