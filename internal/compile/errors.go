/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package compile

import (
	"errors"
	"fmt"
	"strings"
)

// Fatal compile error kinds. All of them abort the compile and produce no
// artifact; warnings go through the Warn sink instead.
var (
	// ErrDuplicateTag flags a case tag declared by more than one frame or
	// more than one group.
	ErrDuplicateTag = errors.New("duplicate case tag")

	// ErrChoiceArity flags a choice prompt with zero or more than four
	// choices.
	ErrChoiceArity = errors.New("choice prompt needs 1 to 4 choices")

	// ErrUnsupportedCustomGallery flags a gallery-assign modifier that names
	// a custom character. The player only supports preset gallery sprites.
	ErrUnsupportedCustomGallery = errors.New("gallery assignment of custom characters is unsupported")

	// ErrAmountRange flags a health amount outside [0,1].
	ErrAmountRange = errors.New("health amount outside [0,1]")

	// ErrUnknownRecordItem flags a case action naming a record item that is
	// not part of the project's evidence or profiles list.
	ErrUnknownRecordItem = errors.New("record item not in court record")

	// ErrPresentTargets flags a present prompt that allows neither evidence
	// nor profiles.
	ErrPresentTargets = errors.New("present prompt must accept evidence or profiles")

	// ErrBadProject flags a project that violates its top-level shape, e.g.
	// a scene without its single Main group.
	ErrBadProject = errors.New("malformed project")

	// ErrBadValue flags a variable value of an unsupported type.
	ErrBadValue = errors.New("variable value must be int or string")
)

// DanglingTagError reports every unresolved symbolic reference of a compile
// in one batch, so an author fixes them in one pass.
type DanglingTagError struct {
	Tags []string
}

func (e *DanglingTagError) Error() string {
	return fmt.Sprintf("dangling references: %s", strings.Join(e.Tags, ", "))
}
