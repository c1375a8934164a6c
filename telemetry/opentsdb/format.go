package opentsdb

import (
	"fmt"
	"strings"
	"unicode"
)

// Formatter expands samples into put records. It is stateless after
// construction and safe for concurrent use.
type Formatter struct {
	prefix string
	tags   Tags
	units  units
}

func NewFormatter(cf *Config) *Formatter {
	return &Formatter{
		prefix: cf.Prefix,
		tags:   cf.Tags,
		units:  newUnits(cf.RateUnit, cf.DurationUnit, cf.LegacyNames),
	}
}

// Line encodes a single put record with the reporter wide tags followed by
// the extra ones.
func (this *Formatter) Line(metric string, ts int64, value string, extra Tags) string {
	return encode(metric, ts, value, this.tags.Merge(extra))
}

// Format expands s into its put records, all stamped with ts.
func (this *Formatter) Format(s Sample, ts int64) ([]string, error) {
	name, extra, err := Untag(s.Name())
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", s.Kind(), s.Name(), err)
	}
	if err := checkName(name); err != nil {
		return nil, fmt.Errorf("%s %s: %w", s.Kind(), s.Name(), err)
	}
	if err := extra.Validate(); err != nil {
		return nil, fmt.Errorf("%s %s: %w", s.Kind(), s.Name(), err)
	}
	if this.prefix != "" {
		name = this.prefix + "." + name
	}

	pts, err := s.points(&this.units)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", s.Kind(), s.Name(), err)
	}

	tags := this.tags.Merge(extra)
	lines := make([]string, len(pts))
	for i, p := range pts {
		lines[i] = encode(name+p.suffix, ts, p.value, tags)
	}
	return lines, nil
}

func checkName(name string) error {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
