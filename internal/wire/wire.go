// Package wire defines the upstream compiler's wire form for a compiled
// expression program: an ordered sequence of tagged units. This package
// owns only the data shapes and their JSON encoding; translating them
// into the evaluator's internal Program is internal/program's job.
//
// Format versioning follows the same discipline as a binary bytecode
// container (major must match exactly, newer minors are rejected) even
// though the encoding itself is plain JSON here rather than a packed
// binary format - see SPEC_FULL.md's DOMAIN STACK section for why no
// binary framing library was pulled in for this.
package wire

import "fmt"

// FormatVersion is the wire schema version this package reads/writes.
var FormatVersion = Version{Major: 1, Minor: 0}

// Version identifies a wire format revision.
type Version struct {
	Major int
	Minor int
}

// IsCompatible reports whether a reader at v can decode data written at
// other: majors must match, and the reader's minor must be at least the
// writer's.
func (v Version) IsCompatible(other Version) bool {
	return v.Major == other.Major && v.Minor >= other.Minor
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// NameOrID is the wire form's tag identifier: either a name or a small
// integer id, exactly one of which is set.
type NameOrID struct {
	Name *string `json:"name,omitempty"`
	ID   *int32  `json:"id,omitempty"`
}

// Value is the wire form's constant payload: a tagged union where
// exactly one field is set, matching pb::Value's `item` oneof.
type Value struct {
	Bool     *bool     `json:"bool,omitempty"`
	I32      *int32    `json:"i32,omitempty"`
	I64      *int64    `json:"i64,omitempty"`
	F64      *float64  `json:"f64,omitempty"`
	Str      *string   `json:"str,omitempty"`
	Blob     []byte    `json:"blob,omitempty"`
	Null     bool      `json:"null,omitempty"`
	I32Array []int32   `json:"i32_array,omitempty"`
	I64Array []int64   `json:"i64_array,omitempty"`
	F64Array []float64 `json:"f64_array,omitempty"`
	StrArray []string  `json:"str_array,omitempty"`
}

// Const is the wire form's constant unit payload.
type Const struct {
	Value *Value `json:"value,omitempty"`
}

// Var is the wire form's variable-reference unit payload.
type Var struct {
	Tag      *NameOrID `json:"tag,omitempty"`
	Property *string   `json:"property,omitempty"`
}

// Unit is one element of a compiled program: a tagged union of logical
// operator, arithmetic operator, constant, or variable reference.
// Exactly one field should be set; an empty Unit is a translation error.
type Unit struct {
	Logical *int32 `json:"logical,omitempty"`
	Arith   *int32 `json:"arith,omitempty"`
	Const   *Const `json:"const,omitempty"`
	Var     *Var   `json:"var,omitempty"`
}

// Program is the wire form of a full compiled expression: an ordered
// sequence of units in postfix order.
type Program struct {
	Version Version `json:"version"`
	Units   []Unit  `json:"units"`
}
