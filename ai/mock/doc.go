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


// Package mock provides test doubles for the ai interfaces.
//
// The mocks follow one pattern: each method calls an optional function field
// when set and falls back to a simple default otherwise. Every call is
// counted, and Reset clears both the count and the injected behaviour.
//
//	model := mock.NewMockChatModel()
//	model.SendFunc = func(ctx context.Context, h []ai.Message) (string, error) {
//	    return "respuesta", nil
//	}
//	reply, _ := model.Send(ctx, history)
//	count := model.CallCount()
//
// # Default Behavior
//
//   - MockChatModel: echoes the last user message prefixed with "eco: "
//   - MockProber: every provider is available and Ollama has no models
package mock
