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


// Package source defines the abstraction over remote conversational APIs.
//
// A conversational source is any channel-based messaging backend that exposes
// two cursor-paginated read operations: channel history and thread replies.
// The readers in this module depend only on the Conversations interface, so
// they can be driven by any backend binding or by an in-memory test double.
//
// # Implementation Packages
//
//   - source/slack: production binding over the Slack Web API
//   - source/mock: scripted in-memory double for unit testing
//
// # Pagination
//
// Both fetch operations return one Page per call. A Page carries a HasMore
// flag and, when more pages exist, an opaque NextCursor token. The Cursor
// type models the resulting three-state progression (start, continue, done)
// so that pagination loops cannot confuse "not started yet" with "exhausted".
package source
