package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"
)

// MethodOverrideField is the form key used by HTML forms to tunnel PUT and DELETE.
const MethodOverrideField = "_method"

// Body is a request payload decoded into plain maps before schema checks.
// Leaves are string, json.Number, bool, nil, []any or Body.
type Body map[string]any

var ErrEmptyBody = errors.New("request body is empty")

// ParseJSON decodes a JSON object. Numbers are kept as json.Number.
func ParseJSON(r io.Reader) (Body, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Body{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return nil, errors.New("invalid JSON body: unexpected data after top-level value")
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, errors.New("invalid JSON body: expected an object")
	}
	return normalize(obj), nil
}

func normalize(m map[string]any) Body {
	out := make(Body, len(m))
	for k, v := range m {
		if nested, ok := v.(map[string]any); ok {
			out[k] = normalize(nested)
			continue
		}
		out[k] = v
	}
	return out
}

// ParseForm turns bracket-nested form keys (listing[image][url]) into nested Bodies.
// Only the first value of a repeated key is used and the method override key is dropped.
func ParseForm(values url.Values) Body {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k == MethodOverrideField {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	body := Body{}
	for _, k := range keys {
		vs := values[k]
		if len(vs) == 0 {
			continue
		}
		body.set(splitFormKey(k), vs[0])
	}
	return body
}

func (b Body) set(path []string, value string) {
	cur := b
	for i, seg := range path {
		if i == len(path)-1 {
			if _, isMap := cur[seg].(Body); !isMap {
				cur[seg] = value
			}
			return
		}
		next, ok := cur[seg].(Body)
		if !ok {
			next = Body{}
			cur[seg] = next
		}
		cur = next
	}
}

// splitFormKey splits "a[b][c]" into [a b c]. Keys that are not well formed stay whole.
func splitFormKey(key string) []string {
	open := strings.IndexByte(key, '[')
	if open <= 0 || !strings.HasSuffix(key, "]") {
		return []string{key}
	}

	path := []string{key[:open]}
	rest := key[open:]
	for rest != "" {
		if rest[0] != '[' {
			return []string{key}
		}
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return []string{key}
		}
		path = append(path, rest[1:end])
		rest = rest[end+1:]
	}
	return path
}
