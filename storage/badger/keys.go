package badger

import (
	"encoding/binary"

	"github.com/poiesic/voto/core"
)

const (
	transcriptTextPrefix = "trtxt"
)

// makeTextKey generates a fixed-size key for a transcript filename.
// Format: prefix:hash(filename)
func makeTextKey(filename string) []byte {
	prefix := transcriptTextPrefix + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8) // 8 bytes for the content hash
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(core.IDFromContent(filename)))
	return buf
}

// textKeyPrefix returns the prefix shared by every transcript text key.
func textKeyPrefix() []byte {
	return []byte(transcriptTextPrefix + ":")
}
