package component

import "github.com/zafericen/cecs/chunked"

// Column is the type-erased interface every concrete column
// implements, used by code that moves entities between clusters
// without knowing their component types.
type Column interface {
	Len() int
	PopBack()
	SwapRows(i, j int)
	// MoveAppendFrom appends the value at row from peer to the tail of
	// this column. peer must be the same concrete type as this column;
	// that invariant is enforced structurally by the caller, which
	// always fetches peers by the TypeName the register maps to a
	// single concrete type.
	MoveAppendFrom(peer Column, row int)
	// CopyAppendFrom behaves like MoveAppendFrom but never implies the
	// source row will be removed afterward.
	CopyAppendFrom(peer Column, row int)
	// Clone deep-copies the column.
	Clone() Column
}

// TypedColumn additionally exposes type-recovering access to the exact
// concrete component type, through its own methods or through the
// RowOf/SetRow/AppendValue helpers on a type-erased Column.
type TypedColumn[T any] struct {
	rows *chunked.Array[T]
}

// NewTypedColumn builds a Recipe that produces an empty TypedColumn[T].
func NewTypedColumn[T any]() Recipe {
	return func() Column {
		return &TypedColumn[T]{rows: chunked.New[T]()}
	}
}

var _ Column = (*TypedColumn[int])(nil)

// Len returns the number of rows stored.
func (c *TypedColumn[T]) Len() int {
	return c.rows.Len()
}

// PopBack discards the tail row.
func (c *TypedColumn[T]) PopBack() {
	c.rows.PopBack()
}

// SwapRows exchanges two rows in place.
func (c *TypedColumn[T]) SwapRows(i, j int) {
	c.rows.Swap(i, j)
}

// MoveAppendFrom appends peer's row onto this column's tail.
func (c *TypedColumn[T]) MoveAppendFrom(peer Column, row int) {
	c.rows.PushBack(*peer.(*TypedColumn[T]).rows.Get(row))
}

// CopyAppendFrom appends a copy of peer's row onto this column's tail.
func (c *TypedColumn[T]) CopyAppendFrom(peer Column, row int) {
	c.rows.PushBack(*peer.(*TypedColumn[T]).rows.Get(row))
}

// Clone deep-copies the column.
func (c *TypedColumn[T]) Clone() Column {
	return &TypedColumn[T]{rows: c.rows.Clone()}
}

// Append adds value to the tail of the column.
func (c *TypedColumn[T]) Append(value T) {
	c.rows.PushBack(value)
}

// Row returns a pointer to the value at row i.
func (c *TypedColumn[T]) Row(i int) *T {
	return c.rows.Get(i)
}

// Overwrite replaces the value at row i.
func (c *TypedColumn[T]) Overwrite(i int, value T) {
	c.rows.Set(i, value)
}

// RowOf recovers the concrete type T from a type-erased Column and
// returns a pointer to the value at row i. Callers are responsible for
// only ever calling this with the T a column was created for; the
// register's TypeName -> concrete-type mapping is what keeps this safe
// in practice.
func RowOf[T any](col Column, row int) *T {
	return col.(*TypedColumn[T]).Row(row)
}

// SetRow recovers the concrete type T and overwrites the value at row i.
func SetRow[T any](col Column, row int, value T) {
	col.(*TypedColumn[T]).Overwrite(row, value)
}

// AppendValue recovers the concrete type T and appends value to col.
func AppendValue[T any](col Column, value T) {
	col.(*TypedColumn[T]).Append(value)
}
