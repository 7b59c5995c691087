// SPDX-License-Identifier: Unlicense OR MIT

package unsafe

import (
	"unsafe"
)

// String returns a string view of b. The caller must not modify b
// while the string is in use.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringAddr returns the address of the first byte of s, or 0 for
// the empty string.
func StringAddr(s string) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.StringData(s)))
}

// SizeOf returns the size in bytes of a value of type T.
func SizeOf[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}
