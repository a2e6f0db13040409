package ranks

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/leliel12/scikitcriteria/rank"
)

var (
	// ErrNoEntries indicates a comparator built without entries.
	ErrNoEntries = errors.New("ranks: at least one entry is required")

	// ErrDuplicateName indicates two entries sharing a label.
	ErrDuplicateName = errors.New("ranks: duplicate entry name")

	// ErrEmptyName indicates an entry with an empty label.
	ErrEmptyName = errors.New("ranks: empty entry name")

	// ErrUnknownEntry indicates a lookup by a label no entry carries.
	ErrUnknownEntry = errors.New("ranks: unknown entry")

	// ErrUnknownAlternative indicates an alternative absent from every entry.
	ErrUnknownAlternative = errors.New("ranks: unknown alternative")

	// ErrNoTrials indicates a statistic that needs at least two entries
	// (one original plus one trial) on a single-entry comparator.
	ErrNoTrials = errors.New("ranks: comparator holds no trial entries")

	// ErrNilAggregator indicates a nil diff-aggregation function.
	ErrNilAggregator = errors.New("ranks: nil diff aggregator")
)

// DefaultAggregatorName labels the default LastDiff strategy.
const DefaultAggregatorName = "median"

// Entry is one named ranking inside a Comparator.
type Entry struct {
	Name    string
	Ranking rank.Ranking
}

// Comparator is an ordered, name-indexed collection of rankings with
// cross-ranking statistics. Build it with New; it is immutable afterwards.
type Comparator struct {
	entries []Entry
	index   map[string]int

	// diff aggregation, configurable via WithDiffAggregator.
	aggName string
	agg     func([]float64) float64
}

// Option mutates comparator configuration at construction time.
type Option func(*Comparator)

// WithDiffAggregator sets the function LastDiff uses to fold one
// alternative's rank deltas across trials, plus its printable name.
// The rank-invariance checker passes its configured last-diff strategy
// through this option.
func WithDiffAggregator(name string, fn func([]float64) float64) Option {
	return func(c *Comparator) {
		c.aggName = name
		c.agg = fn
	}
}

// New builds a Comparator from ordered entries.
// Errors: ErrNoEntries, ErrEmptyName, ErrDuplicateName, ErrNilAggregator.
// Complexity: O(entries).
func New(entries []Entry, opts ...Option) (*Comparator, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("New: %w", ErrNoEntries)
	}

	c := &Comparator{
		entries: append([]Entry(nil), entries...),
		index:   make(map[string]int, len(entries)),
		aggName: DefaultAggregatorName,
		agg:     Median,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.agg == nil {
		return nil, fmt.Errorf("New: %w", ErrNilAggregator)
	}

	for i, e := range c.entries {
		if e.Name == "" {
			return nil, fmt.Errorf("New: entry %d: %w", i, ErrEmptyName)
		}
		if _, dup := c.index[e.Name]; dup {
			return nil, fmt.Errorf("New: %q: %w", e.Name, ErrDuplicateName)
		}
		c.index[e.Name] = i
	}

	return c, nil
}

// Len returns the number of entries. O(1).
func (c *Comparator) Len() int { return len(c.entries) }

// Names returns the ordered entry labels.
func (c *Comparator) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}

	return names
}

// Ranks returns the ranking stored under name alongside its source index.
// Errors: ErrUnknownEntry. Complexity: O(1).
func (c *Comparator) Ranks(name string) (rank.Ranking, int, error) {
	i, ok := c.index[name]
	if !ok {
		return rank.Ranking{}, 0, fmt.Errorf("Ranks(%q): %w", name, ErrUnknownEntry)
	}

	return c.entries[i].Ranking, i, nil
}

// String implements fmt.Stringer: "RanksComparator[Original, M.1, ...]".
func (c *Comparator) String() string {
	return "RanksComparator[" + strings.Join(c.Names(), ", ") + "]"
}

// Median folds a sample into its median: the middle element for odd sizes,
// the mean of the two middle elements for even sizes. Returns NaN on empty
// input.
func Median(xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)
	if n%2 == 1 {
		return s[n/2]
	}

	return (s[n/2-1] + s[n/2]) / 2
}
