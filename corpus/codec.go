package corpus

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/poiesic/voto/core"
)

// file is the on-disk shape of knowledge-base.json.
type file struct {
	Metadata     core.Metadata       `json:"metadata"`
	Candidates   candidateList       `json:"candidatos"`
	Documents    []*core.Document    `json:"documentos"`
	ByCandidate  map[string][]string `json:"indice_por_candidato"`
	BySource     map[string][]string `json:"indice_por_fuente"`
	GlobalTopics topicTotals         `json:"temas_globales"`
}

// candidateList is the "candidatos" object decoded in declaration order.
type candidateList []core.Candidate

// topicTotals is the "temas_globales" object decoded in file order.
type topicTotals []core.TopicCount

func (l *candidateList) UnmarshalJSON(data []byte) error {
	var out candidateList
	err := decodeObject(data, func(key string, dec *json.Decoder) error {
		var c core.Candidate
		if err := dec.Decode(&c); err != nil {
			return fmt.Errorf("candidate %s: %w", key, err)
		}
		if c.Code == "" {
			c.Code = key
		}
		out = append(out, c)
		return nil
	})
	if err != nil {
		return err
	}
	*l = out
	return nil
}

func (l candidateList) MarshalJSON() ([]byte, error) {
	return encodeObject(len(l), func(i int) (string, any) {
		return l[i].Code, l[i]
	})
}

func (t *topicTotals) UnmarshalJSON(data []byte) error {
	var out topicTotals
	err := decodeObject(data, func(key string, dec *json.Decoder) error {
		var n int
		if err := dec.Decode(&n); err != nil {
			return fmt.Errorf("topic %s: %w", key, err)
		}
		out = append(out, core.TopicCount{Topic: key, Count: n})
		return nil
	})
	if err != nil {
		return err
	}
	*t = out
	return nil
}

func (t topicTotals) MarshalJSON() ([]byte, error) {
	return encodeObject(len(t), func(i int) (string, any) {
		return t[i].Topic, t[i].Count
	})
}

// decodeObject walks a JSON object key by key, handing each value to fn.
// encoding/json maps lose member order, which both the candidate list and the
// topic totals carry.
func decodeObject(data []byte, fn func(key string, dec *json.Decoder) error) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", tok)
		}
		if err := fn(key, dec); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

func encodeObject(n int, member func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range n {
		key, value := member(i)
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Decode reads a knowledge base and validates it.
func Decode(r io.Reader) (*core.Corpus, error) {
	var f file
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCorpusFile, err)
	}
	for i, doc := range f.Documents {
		if doc == nil {
			return nil, fmt.Errorf("%w: documentos[%d] is null", ErrInvalidCorpusFile, i)
		}
	}
	c := core.NewCorpus(f.Metadata, f.Candidates, f.Documents, f.ByCandidate, f.BySource, f.GlobalTopics)
	if err := core.ValidateCorpus(c); err != nil {
		return nil, err
	}
	return c, nil
}

// Encode writes a knowledge base as indented JSON.
func Encode(w io.Writer, c *core.Corpus) error {
	if c == nil {
		return ErrCorpusRequired
	}
	f := file{
		Metadata:     c.Metadata,
		Candidates:   c.Candidates,
		Documents:    c.Documents,
		ByCandidate:  c.ByCandidate,
		BySource:     c.BySource,
		GlobalTopics: c.GlobalTopics,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(f)
}
