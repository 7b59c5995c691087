// SPDX-License-Identifier: Unlicense OR MIT

package unsafe

import "testing"

func TestString(t *testing.T) {
	b := []byte("hello")
	if got := String(b); got != "hello" {
		t.Errorf("got %q; want %q", got, "hello")
	}
	if got := String(nil); got != "" {
		t.Errorf("got %q for nil", got)
	}
}

func TestStringAddr(t *testing.T) {
	const s = "static label"
	if StringAddr(s) == 0 {
		t.Error("non-empty string has zero address")
	}
	if StringAddr(s) != StringAddr(s[:3]) {
		t.Error("prefix slice does not share the address of its base")
	}
	if StringAddr("") != 0 {
		t.Error("empty string has non-zero address")
	}
}

func TestSizeOf(t *testing.T) {
	if got := SizeOf[int64](); got != 8 {
		t.Errorf("SizeOf[int64] = %d; want 8", got)
	}
	if got := SizeOf[[3]uint16](); got != 6 {
		t.Errorf("SizeOf[[3]uint16] = %d; want 6", got)
	}
}
