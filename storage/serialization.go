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


package storage

import (
	"encoding/binary"
	"fmt"
)

// MarshalText serializes a cached transcript.
// Layout: uvarint(len(filename)) | filename | text.
// The filename is stored alongside the text so that a hash collision on the key
// is detected instead of silently returning another transcript.
func MarshalText(filename, text string) []byte {
	buf := make([]byte, binary.MaxVarintLen64+len(filename)+len(text))
	n := binary.PutUvarint(buf, uint64(len(filename)))
	n += copy(buf[n:], filename)
	n += copy(buf[n:], text)
	return buf[:n]
}

// UnmarshalText deserializes a cached transcript, returning filename and text.
func UnmarshalText(data []byte) (string, string, error) {
	size, n := binary.Uvarint(data)
	if n <= 0 {
		return "", "", fmt.Errorf("%w: bad filename length", ErrSerializationFailed)
	}
	if size > uint64(len(data)-n) {
		return "", "", ErrTruncatedData
	}
	end := n + int(size)
	return string(data[n:end]), string(data[end:]), nil
}
