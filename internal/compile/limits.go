/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package compile

import (
	"fmt"
	"log/slog"

	applog "courtwriter/internal/log"
)

// Limits are the quantitative ceilings the target player imposes. Exceeding
// one is not fatal; the compiler emits a LimitWarning and keeps going.
type Limits struct {
	MaxPairs        int
	MaxGroups       int
	MaxAliases      int
	MaxGroupFrames  int
	MaxFrameActions int
	MaxEvidence     int
	MaxProfiles     int
}

// DefaultLimits returns the ceilings of the current objection.lol player.
func DefaultLimits() Limits {
	return Limits{
		MaxPairs:        100,
		MaxGroups:       100,
		MaxAliases:      100,
		MaxGroupFrames:  1000,
		MaxFrameActions: 10,
		MaxEvidence:     50,
		MaxProfiles:     50,
	}
}

// Warning kinds delivered through the warn sink.
const (
	WarnLimit        = "LimitWarning"
	WarnAssetUnknown = "AssetUnknown"
)

// Warning is a non-fatal diagnostic. It never changes the emitted artifact.
type Warning struct {
	Kind   string
	Target string // what the warning is about ("evidence", "frameActions", asset kind, ...)
	Detail string
	Limit  int // ceiling, for WarnLimit
	Actual int // observed value, for WarnLimit
}

func (w Warning) String() string {
	if w.Kind == WarnLimit {
		return fmt.Sprintf("%s: %s %d exceeds limit %d", w.Kind, w.Target, w.Actual, w.Limit)
	}
	return fmt.Sprintf("%s: %s %s", w.Kind, w.Target, w.Detail)
}

// WarnFunc receives compile warnings. The default sink logs through the
// application logger; tests usually collect into a slice instead.
type WarnFunc func(Warning)

// LogWarnings returns the default warning sink.
func LogWarnings() WarnFunc {
	l := applog.WithComponent("compile")
	return func(w Warning) {
		l.Warn(w.String(),
			slog.String("kind", w.Kind),
			slog.String("target", w.Target),
		)
	}
}

// CollectWarnings returns a sink appending into dst, for tests and callers
// that want to present diagnostics themselves.
func CollectWarnings(dst *[]Warning) WarnFunc {
	return func(w Warning) { *dst = append(*dst, w) }
}
