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
	"fmt"
	"strings"
)

// ErrInvalidColor is returned for color literals that are not
// "#RGB" or "#RRGGBB" hex strings.
var ErrInvalidColor = errors.New("invalid color literal")

// Color is a canonicalized hex color string: "#" followed by six uppercase
// hex digits. The zero value means "unset".
type Color string

// NewColor validates a "#RGB" or "#RRGGBB" literal and canonicalizes it to
// the six-digit uppercase form ("#abc" becomes "#AABBCC").
func NewColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
	}
	if len(hex) == 3 {
		var b strings.Builder
		b.WriteByte('#')
		for i := 0; i < 3; i++ {
			b.WriteByte(hex[i])
			b.WriteByte(hex[i])
		}
		return Color(strings.ToUpper(b.String())), nil
	}
	return Color("#" + strings.ToUpper(hex)), nil
}

// MustColor is NewColor for literals known to be valid; it panics otherwise.
func MustColor(s string) Color {
	c, err := NewColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) String() string { return string(c) }

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
