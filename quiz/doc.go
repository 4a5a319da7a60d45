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


// Package quiz ranks candidates against a voter questionnaire.
//
// Scoring is a fold: each Rule looks at the answers and one candidate and
// returns a Contribution (points plus an optional reason or coincidence). The
// Engine folds DefaultRules over a fresh Score for every candidate in the
// corpus, then ranks the candidates that have a curated Profile. Points come
// from three places:
//
//   - priorities: profile strengths, plus up to two points for how often the
//     candidate talks about the first priority's topics
//   - stances: fixed allowlists of candidates per answer
//   - groups: fixed allowlists per self-identified voter group
//
// The result is a deterministic heuristic. Identical answers over the same
// corpus always produce the same ranking.
package quiz
