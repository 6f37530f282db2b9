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


package slack

import "errors"

var (
	// ErrTokenRequired is returned when no API token is configured.
	ErrTokenRequired = errors.New("slack token required")

	// ErrInvalidPageSize is returned when a negative page size is configured.
	ErrInvalidPageSize = errors.New("page size cannot be negative")

	// ErrInitFailed is returned when the auth.test liveness check fails
	// during client construction.
	ErrInitFailed = errors.New("error initializing slack api")
)
