package runtime

import (
	"fmt"
	"strconv"
)

// Kind is the runtime type of a value.
type Kind int8

// Kinds of values.
const (
	NilKind Kind = iota
	BoolKind
	NumberKind
	StringKind
	FunctionKind
	ClassKind
	InstanceKind
)

func (k Kind) String() string {
	switch k {
	case NilKind:
		return "Nil"
	case BoolKind:
		return "Bool"
	case NumberKind:
		return "Number"
	case StringKind:
		return "String"
	case FunctionKind:
		return "Function"
	case ClassKind:
		return "Class"
	case InstanceKind:
		return "Instance"
	}
	return fmt.Sprintf("Kind(%d)", int8(k))
}

// Value is a runtime value. String returns the textual rendering used by
// print and string concatenation.
type Value interface {
	Kind() Kind
	String() string
}

// Bool is a boolean value.
type Bool bool

// Number is a double-precision float value.
type Number float64

// String is a string value.
type String string

// Nil is the absence of a value.
type Nil struct{}

func (Bool) Kind() Kind   { return BoolKind }
func (Number) Kind() Kind { return NumberKind }
func (String) Kind() Kind { return StringKind }
func (Nil) Kind() Kind    { return NilKind }

func (b Bool) String() string {
	return strconv.FormatBool(bool(b))
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (s String) String() string {
	return string(s)
}

func (Nil) String() string {
	return "nil"
}

// FromLiteral converts a literal value of the AST to a runtime value.
// It returns false for Go types which have no runtime counterpart.
func FromLiteral(lit interface{}) (Value, bool) {
	switch x := lit.(type) {
	case nil:
		return Nil{}, true
	case bool:
		return Bool(x), true
	case float64:
		return Number(x), true
	case string:
		return String(x), true
	}
	return nil, false
}

// Truthy coerces a value to a boolean: Nil and false are false, zero and
// the empty string are false, everything else is true.
func Truthy(v Value) bool {
	switch x := v.(type) {
	case nil, Nil:
		return false
	case Bool:
		return bool(x)
	case Number:
		return x != 0
	case String:
		return x != ""
	}
	return true
}

// ToNumber coerces a value to a number. Booleans convert to 1 and 0,
// strings are parsed as decimal numbers. Everything else, including Nil,
// cannot be converted.
func ToNumber(v Value) (Number, bool) {
	switch x := v.(type) {
	case Number:
		return x, true
	case Bool:
		if x {
			return 1, true
		}
		return 0, true
	case String:
		f, err := strconv.ParseFloat(string(x), 64)
		if err != nil {
			return 0, false
		}
		return Number(f), true
	}
	return 0, false
}

// Equal compares two values without any coercion. Values of different kinds
// are never equal. Instances are equal if they are the same instance,
// classes if they are the same class.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return isNil(a) && isNil(b)
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Function:
		y := b.(*Function)
		return x == y || (x.Name == y.Name && x.Body == y.Body && x.This == y.This)
	case InstanceRef:
		return x.ID == b.(InstanceRef).ID
	}
	return a == b
}

func isNil(v Value) bool {
	return v == nil || v.Kind() == NilKind
}
