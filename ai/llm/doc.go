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


// Package llm implements ai.ChatModel and ai.Prober on top of langchaingo.
//
// New builds a model for the provider settings returned by ai.Config.Selected:
//
//	settings, err := cfg.Selected()
//	model, err := llm.New(ctx, settings)
//	reply, err := model.Send(ctx, history)
//
// Every failure leaving Send is an *ai.ProviderError. Errors are first passed
// through langchaingo's per-vendor mappers and then classified with the
// llms.Is* helpers.
//
// The Prober talks to Ollama's /api/tags endpoint directly because langchaingo
// does not expose model listing.
package llm
