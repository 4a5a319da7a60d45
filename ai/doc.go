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


// Package ai defines the language-model collaborators used by the chat
// assistant.
//
// The package is transport-agnostic. It names the supported providers, holds
// their persisted configuration and declares the interfaces the rest of the
// module depends on:
//
//   - ChatModel: sends a conversation and returns the assistant's reply
//   - Prober: reports whether a provider can be used right now and lists
//     locally installed models
//
// # Providers
//
// Provider is a closed set (Ollama, OpenAI, Anthropic, Gemini). Each variant
// has its own settings type, and Config.Selected returns the settings of the
// chosen provider as a Settings value that implementations switch on by type.
//
// # Implementation Packages
//
//   - ai/llm: langchaingo-backed ChatModel and an HTTP Prober
//   - ai/mock: test doubles with injectable behaviour and call counts
//
// # Failures
//
// Implementations report failures as *ProviderError. Its Kind is one of the
// sentinel errors in this package, so callers can branch with errors.Is while
// showing Error() to the user unchanged.
//
//	cfg, path, err := ai.LoadDefault()
//	settings, err := cfg.Selected()
//	model, err := llm.New(ctx, settings)
//	reply, err := model.Send(ctx, history)
//	if errors.Is(err, ai.ErrAuthMissing) {
//	    // ask for a key
//	}
package ai
