package opentsdb

import (
	"strings"
)

// Filter decides whether a registered metric is exported.
type Filter func(name string, metric interface{}) bool

// IsPrivate tells in-memory only metrics, which are never exported.
func IsPrivate(name string) bool {
	return strings.HasPrefix(name, "_")
}

// AllFilter accepts every metric except the private ones.
func AllFilter(name string, _ interface{}) bool {
	return !IsPrivate(name)
}

// PrefixFilter accepts public metrics whose untagged name starts with
// any of the prefixes.
func PrefixFilter(prefixes ...string) Filter {
	return func(name string, metric interface{}) bool {
		if IsPrivate(name) {
			return false
		}

		realname, _, _ := Untag(name)
		for _, p := range prefixes {
			if strings.HasPrefix(realname, p) {
				return true
			}
		}
		return false
	}
}
