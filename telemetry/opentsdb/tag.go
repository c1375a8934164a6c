package opentsdb

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

const (
	tagSep   = '#'
	tagKVSep = "="
)

type Tag struct {
	Key, Value string
}

func (t Tag) String() string {
	return t.Key + tagKVSep + t.Value
}

// Tags is an ordered tag set. Records render tags in slice order.
type Tags []Tag

// NewTags builds tags from alternating keys and values.
func NewTags(kv ...string) (Tags, error) {
	if len(kv)%2 != 0 {
		return nil, fmt.Errorf("%w: odd key/value count %d", ErrInvalidTag, len(kv))
	}

	tags := make(Tags, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		tags = append(tags, Tag{Key: kv[i], Value: kv[i+1]})
	}
	return tags, tags.Validate()
}

// ParseTags parses "k1=v1,k2=v2".
func ParseTags(s string) (Tags, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var kv []string
	for _, pair := range strings.Split(s, ",") {
		p := strings.SplitN(strings.TrimSpace(pair), tagKVSep, 2)
		if len(p) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTag, pair)
		}
		kv = append(kv, p[0], p[1])
	}

	return NewTags(kv...)
}

// Validate rejects empty keys or values, separators inside them and
// duplicate keys.
func (this Tags) Validate() error {
	seen := make(map[string]struct{}, len(this))
	for _, t := range this {
		if t.Key == "" || t.Value == "" ||
			strings.ContainsAny(t.Key, " \t\n"+tagKVSep) ||
			strings.ContainsAny(t.Value, " \t\n") {
			return fmt.Errorf("%w: %q", ErrInvalidTag, t.String())
		}

		if _, dup := seen[t.Key]; dup {
			return fmt.Errorf("%w: duplicate key %q", ErrInvalidTag, t.Key)
		}
		seen[t.Key] = struct{}{}
	}

	return nil
}

// Merge returns this followed by extra. An extra tag whose key is already
// present replaces that value in place, so keys stay unique.
func (this Tags) Merge(extra Tags) Tags {
	if len(extra) == 0 {
		return this
	}

	merged := make(Tags, len(this), len(this)+len(extra))
	copy(merged, this)
	for _, e := range extra {
		replaced := false
		for i := range merged {
			if merged[i].Key == e.Key {
				merged[i].Value = e.Value
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, e)
		}
	}
	return merged
}

func (this Tags) String() string {
	s := make([]string, len(this))
	for i, t := range this {
		s[i] = t.String()
	}
	return strings.Join(s, ",")
}

// Tagged embeds per metric tags into a registry name:
//
//	Tagged("pub.qps", "appid", "5", "topic", "orders") == "appid=5&topic=orders#pub.qps"
func Tagged(name string, kv ...string) string {
	if len(kv) < 2 {
		return name
	}

	v := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		v.Set(kv[i], kv[i+1])
	}
	return v.Encode() + string(tagSep) + name
}

// Untag splits a name built by Tagged into the real metric name and its
// tags, sorted by key. Names without tags are returned as is.
func Untag(name string) (realname string, tags Tags, err error) {
	i := strings.IndexByte(name, tagSep)
	if i < 0 {
		return name, nil, nil
	}

	realname = name[i+1:]
	u, err := url.ParseQuery(name[:i])
	if err != nil {
		return realname, nil, fmt.Errorf("%w: %q: %v", ErrInvalidTag, name[:i], err)
	}
	if len(u) == 0 {
		return
	}

	keys := make([]string, 0, len(u))
	for k := range u {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tags = make(Tags, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, Tag{Key: k, Value: u.Get(k)}) // we use only the 1st value
	}
	return
}
