package metastore

import "strings"

// Operator represents a comparison operator for filtering.
type Operator string

const (
	// OpEqual represents the equality operator.
	OpEqual Operator = "eq"
	// OpNotEqual represents the inequality operator.
	OpNotEqual Operator = "ne"
	// OpGreaterThan represents the greater than operator.
	OpGreaterThan Operator = "gt"
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual Operator = "gte"
	// OpLessThan represents the less than operator.
	OpLessThan Operator = "lt"
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual Operator = "lte"
	// OpContains represents the contains substring operator.
	OpContains Operator = "contains"
)

// Filter represents a single metadata filter condition.
type Filter struct {
	Key      string
	Operator Operator
	Value    Value
}

// FilterSet represents a set of filters that must all match (AND logic).
type FilterSet struct {
	Filters []Filter
}

// NewFilterSet creates a new filter set.
func NewFilterSet(filters ...Filter) *FilterSet {
	return &FilterSet{Filters: filters}
}

// Matches checks if the provided store matches this filter.
//
// Lookup follows the store's keyed-access contract: the first occurrence
// of the key in index order is the one compared.
func (f *Filter) Matches(s *Store) bool {
	value, exists := s.Value(f.Key)
	if !exists || !value.IsValid() {
		return false
	}

	switch f.Operator {
	case OpEqual:
		return compareEqual(value, f.Value)
	case OpNotEqual:
		return !compareEqual(value, f.Value)
	case OpGreaterThan:
		return compareGreater(value, f.Value)
	case OpGreaterEqual:
		return compareGreater(value, f.Value) || compareEqual(value, f.Value)
	case OpLessThan:
		return compareLess(value, f.Value)
	case OpLessEqual:
		return compareLess(value, f.Value) || compareEqual(value, f.Value)
	case OpContains:
		return compareContains(value, f.Value)
	default:
		return false
	}
}

// Matches checks if the provided store matches all filters in the set.
func (fs *FilterSet) Matches(s *Store) bool {
	for _, filter := range fs.Filters {
		if !filter.Matches(s) {
			return false
		}
	}
	return true
}

func compareEqual(a, b Value) bool {
	if isNumber(a) && isNumber(b) {
		// Prefer exact compare when both sides share a kind.
		if a.Kind == b.Kind {
			return a.Equal(b)
		}
		return asFloat64(a) == asFloat64(b)
	}
	return a.Equal(b)
}

func compareGreater(a, b Value) bool {
	if !isNumber(a) || !isNumber(b) {
		return false
	}
	return asFloat64(a) > asFloat64(b)
}

func compareLess(a, b Value) bool {
	if !isNumber(a) || !isNumber(b) {
		return false
	}
	return asFloat64(a) < asFloat64(b)
}

func compareContains(a, b Value) bool {
	if a.Kind != KindString || b.Kind != KindString {
		return false
	}
	return strings.Contains(a.StringValue(), b.StringValue())
}

func isNumber(v Value) bool {
	return v.Kind == KindInt32 || v.Kind == KindUint64 || v.Kind == KindFloat32
}

func asFloat64(v Value) float64 {
	switch v.Kind {
	case KindInt32:
		return float64(v.I32)
	case KindUint64:
		return float64(v.U64)
	case KindFloat32:
		return float64(v.F32)
	default:
		return 0
	}
}
