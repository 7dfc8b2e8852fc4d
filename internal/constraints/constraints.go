// Package constraints contains the numeric type sets shared by the generic packages.
package constraints

type Int interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

type UInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

type Integer interface {
	Int | UInt
}

type Float interface {
	~float32 | ~float64
}

type Number interface {
	Int | UInt | Float
}
