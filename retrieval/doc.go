// Copyright 2025 Poiesic Systems
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


// Package retrieval selects transcript excerpts to ground the chat assistant.
//
// The Retriever matches a free-text query against candidate codes and the
// individual tokens of candidate names. Each matching candidate contributes the
// first documents of its index entry, in corpus build order. When nothing
// matches, a fixed list of major candidates contributes one official interview
// each. Matching is plain substring containment; there is no ranking by
// textual relevance, so the same query over the same corpus always yields the
// same chunks in the same order.
//
// A RetrievalMonitor observes each step, which is how cmd/retriever prints its
// trace.
package retrieval
