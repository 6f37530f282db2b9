// Copyright 2026 Skein Labs
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


package source

import "errors"

var (
	// ErrMissingCursor is returned when a page claims more pages exist but
	// provides no continuation token.
	ErrMissingCursor = errors.New("page has more results but no next cursor")

	// ErrCursorExhausted is returned when an already-done cursor is advanced.
	ErrCursorExhausted = errors.New("cursor already exhausted")
)
