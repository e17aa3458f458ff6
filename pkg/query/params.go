package query

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// entry is a single parameter. A list entry renders as key[]=value pairs even
// when it holds a single element.
type entry struct {
	key    string
	values []string
	list   bool
}

// Params is an insertion-ordered set of query parameters. Each key holds
// either a scalar or a sequence of values.
//
// The zero value is ready to use. A nil *Params is treated as empty by Build
// and the read-only accessors.
type Params struct {
	entries []entry
	index   map[string]int
}

// New creates an empty parameter set.
func New() *Params {
	return &Params{}
}

// FromValues converts url.Values into Params. Keys are sorted so the result
// is deterministic; a key with exactly one value becomes a scalar and a key
// with several values becomes a sequence.
func FromValues(v url.Values) *Params {
	p := New()
	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		vals := v[k]
		switch len(vals) {
		case 0:
			continue
		case 1:
			p.Set(k, vals[0])
		default:
			p.SetList(k, vals...)
		}
	}
	return p
}

// Set stores a scalar value. Setting an existing key replaces its value but
// keeps the key's original position.
func (p *Params) Set(key, value string) *Params {
	p.put(entry{key: key, values: []string{value}})
	return p
}

// SetInt stores an integer scalar.
func (p *Params) SetInt(key string, value int) *Params {
	return p.Set(key, strconv.Itoa(value))
}

// SetBool stores a boolean scalar as "true" or "false".
func (p *Params) SetBool(key string, value bool) *Params {
	return p.Set(key, strconv.FormatBool(value))
}

// SetList stores a sequence of values, rendered as one key[]=value pair per
// element in the given order.
func (p *Params) SetList(key string, values ...string) *Params {
	vals := make([]string, len(values))
	copy(vals, values)
	p.put(entry{key: key, values: vals, list: true})
	return p
}

func (p *Params) put(e entry) {
	if p.index == nil {
		p.index = make(map[string]int)
	}
	if i, ok := p.index[e.key]; ok {
		p.entries[i] = e
		return
	}
	p.index[e.key] = len(p.entries)
	p.entries = append(p.entries, e)
}

// Get returns the values stored for key and whether the key is present.
// A scalar is returned as a one-element slice.
func (p *Params) Get(key string) ([]string, bool) {
	if p == nil {
		return nil, false
	}
	i, ok := p.index[key]
	if !ok {
		return nil, false
	}
	out := make([]string, len(p.entries[i].values))
	copy(out, p.entries[i].values)
	return out, true
}

// Keys returns the keys in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	keys := make([]string, len(p.entries))
	for i, e := range p.entries {
		keys[i] = e.key
	}
	return keys
}

// Len returns the number of keys.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.entries)
}

// Merge copies the entries of other into p, in other's order. Keys already
// present in p are replaced in place.
func (p *Params) Merge(other *Params) *Params {
	if other == nil {
		return p
	}
	for _, e := range other.entries {
		vals := make([]string, len(e.values))
		copy(vals, e.values)
		p.put(entry{key: e.key, values: vals, list: e.list})
	}
	return p
}

// Clone returns a deep copy.
func (p *Params) Clone() *Params {
	return New().Merge(p)
}

// Build serializes p using enc. Scalars render as key=value, sequences as
// one key[]=value pair per element; pairs are joined with '&' in insertion
// order. A nil or empty set yields the empty string.
func Build(p *Params, enc Encoding) string {
	if p.Len() == 0 {
		return ""
	}

	var sb strings.Builder
	for _, e := range p.entries {
		key := e.key
		if e.list {
			key += "[]"
		}
		encodedKey := Encode(key, enc)
		for _, v := range e.values {
			if sb.Len() > 0 {
				sb.WriteByte('&')
			}
			sb.WriteString(encodedKey)
			sb.WriteByte('=')
			sb.WriteString(Encode(v, enc))
		}
	}
	return sb.String()
}

// Encode serializes p with DefaultEncoding.
func (p *Params) Encode() string {
	return Build(p, DefaultEncoding)
}
