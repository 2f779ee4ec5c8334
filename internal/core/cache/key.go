package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"sort"

	"golang.org/x/text/unicode/norm"

	"github.com/rendis/resumegen/internal/core/entity"
)

// keyPayload is the canonical shape hashed into a cache key
// (spec.md §4.7 / SPEC_FULL.md §3).
type keyPayload struct {
	DocumentType entity.DocumentType `json:"document_type"`
	Template     string              `json:"template"`
	Data         entity.Data         `json:"data"`
	Format       entity.Format       `json:"format"`
}

// DeriveKey computes the content-addressed key for a render request: the
// payload is canonicalized (sorted map keys, NFC-normalized strings), hashed
// with SHA-256, and prefixed by kind/type/template so keys remain
// inspectable in the backing store.
func DeriveKey(kind string, req entity.DocumentRequest) (string, error) {
	canonical, err := canonicalJSON(keyPayload{
		DocumentType: req.DocumentType,
		Template:     req.Template,
		Data:         req.Data,
		Format:       req.Format,
	})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return fmt.Sprintf("%s:%s:%s:%s", kind, req.DocumentType, req.Template, hex.EncodeToString(sum[:])), nil
}

// canonicalJSON renders v as JSON with map keys sorted at every depth and
// string leaves normalized to NFC, so that semantically identical payloads
// always hash to the same bytes regardless of field order or Unicode
// normalization form.
func canonicalJSON(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}
	return marshalSorted(normalizeStrings(generic))
}

func normalizeStrings(v any) any {
	switch val := v.(type) {
	case string:
		return norm.NFC.String(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, vv := range val {
			out[norm.NFC.String(k)] = normalizeStrings(vv)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, vv := range val {
			out[i] = normalizeStrings(vv)
		}
		return out
	default:
		return v
	}
}

// marshalSorted serializes v with object keys sorted lexicographically at
// every level; encoding/json already sorts map[string]any keys, but we walk
// explicitly so the guarantee does not depend on that implementation detail.
func marshalSorted(v any) ([]byte, error) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf := []byte("{")
		for i, k := range keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			kb, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			buf = append(buf, kb...)
			buf = append(buf, ':')
			vb, err := marshalSorted(val[k])
			if err != nil {
				return nil, err
			}
			buf = append(buf, vb...)
		}
		return append(buf, '}'), nil
	case []any:
		buf := []byte("[")
		for i, item := range val {
			if i > 0 {
				buf = append(buf, ',')
			}
			ib, err := marshalSorted(item)
			if err != nil {
				return nil, err
			}
			buf = append(buf, ib...)
		}
		return append(buf, ']'), nil
	default:
		return json.Marshal(val)
	}
}
