package etl

// Record is one destination row, values in destination column order.
type Record []interface{}

// Builder accumulates normalized rows for a fixed column arity. It performs
// no validation beyond arity; coercion happens before a value reaches it.
type Builder struct {
	arity int
	rows  []Record
}

// NewBuilder creates a builder for rows of the given width.
func NewBuilder(arity int) *Builder {
	return &Builder{arity: arity}
}

// Append adds one row. A width mismatch means an extractor and its schema
// have drifted apart, which is a source-shape problem.
func (b *Builder) Append(values ...interface{}) error {
	if len(values) != b.arity {
		return New(KindSource, "record has %d values, destination has %d columns", len(values), b.arity)
	}
	b.rows = append(b.rows, Record(values))
	return nil
}

// Records returns the accumulated rows in append order.
func (b *Builder) Records() []Record {
	return b.rows
}

// Len returns the number of accumulated rows.
func (b *Builder) Len() int {
	return len(b.rows)
}
