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

package piecetable

import "edlog.io/piecetable/internal/config"

// Option configures the behavior of edit operations.
type Option = config.Option

// Attribution records v as the attribution token on every change produced by the operation. The
// token is opaque to this module and carried through inversion, undo, and redo unchanged.
func Attribution(v any) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Attr = v
		return config.Attribution
	}
}
