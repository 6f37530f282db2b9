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


package core

import "errors"

// Domain validation errors
var (
	// ErrNoChannels indicates an ingestion request named no channel IDs.
	ErrNoChannels = errors.New("at least one channel id required")

	// ErrEmptyChannelID indicates a channel ID in the request was empty.
	ErrEmptyChannelID = errors.New("channel id cannot be empty")
)
