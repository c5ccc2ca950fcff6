// Copyright 2026 The Piecetable Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package differ

import (
	"edlog.io/piecetable"
	"edlog.io/piecetable/internal/config"
)

// Graphemes makes the differ segment its inputs by grapheme cluster instead of by code point, so
// an edit never lands inside a combining sequence or emoji. Positions and lengths recorded in the
// resulting changes remain code-point offsets either way; the option only coarsens the granularity
// of the computed script.
func Graphemes() piecetable.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Graphemes = true
		return config.Graphemes
	}
}
