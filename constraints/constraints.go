package constraints

// Signed is a constraint that permits any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is a constraint that permits any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is a constraint that permits any integer type.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that permits any floating-point type.
type Float interface {
	~float32 | ~float64
}

// Numeric is a constraint that permits any numeric type: any type
// that supports the numeric operators.
type Numeric interface {
	Integer | Float
}

// Ordered is a constraint that permits any ordered type: any type
// that supports the operators < <= >= >.
type Ordered interface {
	Integer | Float | ~string
}

// Comparable is a constraint for types that define a total order over themselves via a Compare
// method (negative if the receiver sorts first, zero if equal, positive otherwise).
type Comparable[T any] interface {
	Compare(other T) int
}

// Cloneable is a constraint that permits cloning of any object.
type Cloneable[T any] interface {
	// Clone returns an exact copy of the object.
	Clone() T
}

// Equalable is a constraint that permits checking for equality of any object.
type Equalable[T any] interface {
	Equal(other T) bool
}
