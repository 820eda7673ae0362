// Package prefix resolves path-prefix formatters from small JSON documents and
// evaluates them when remote files are named.
package prefix

import (
	"encoding/json"
	"time"

	"github.com/kacper-wojtaszczyk/jackfruit/remotefile-go/internal/datepattern"
)

// Formatter produces the prefix under which remote files are stored.
// Implementations are immutable and safe for concurrent use.
type Formatter interface {
	Format() string
}

// Static always returns the configured prefix.
type Static struct {
	prefix string
}

// NewStatic returns a Static formatter for prefix.
func NewStatic(prefix string) *Static {
	return &Static{prefix: prefix}
}

// Format returns the prefix verbatim.
func (f *Static) Format() string {
	return f.prefix
}

func (f *Static) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		typeKey:  string(KindStatic),
		"prefix": f.prefix,
	})
}

// DateRegionStack renders "{date}/{region}/{stack}/" with the date taken from
// the clock on every call. Empty region or stack leave an empty segment.
type DateRegionStack struct {
	pattern *datepattern.Pattern
	region  string
	stack   string
	now     func() time.Time
}

// NewDateRegionStack compiles datePattern and returns the formatter.
func NewDateRegionStack(datePattern, region, stack string) (*DateRegionStack, error) {
	p, err := datepattern.Compile(datePattern)
	if err != nil {
		return nil, &ErrInvalidDatePattern{Pattern: datePattern, Err: err}
	}
	return &DateRegionStack{pattern: p, region: region, stack: stack, now: time.Now}, nil
}

func (f *DateRegionStack) Format() string {
	return f.pattern.Format(f.now()) + "/" + f.region + "/" + f.stack + "/"
}

func (f *DateRegionStack) DatePattern() string { return f.pattern.String() }
func (f *DateRegionStack) Region() string      { return f.region }
func (f *DateRegionStack) Stack() string       { return f.stack }

func (f *DateRegionStack) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		typeKey:  string(KindDateRegionStack),
		"date":   f.pattern.String(),
		"region": f.region,
		"stack":  f.stack,
	})
}
