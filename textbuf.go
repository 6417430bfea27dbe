// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package funk

import "unicode/utf8"

// TextBufferSize is the fixed capacity of a TextBuffer in bytes.
const TextBufferSize = 256

// TextBuffer is a fixed-capacity append-only text buffer. It exists so the
// test suite can format values without heap-allocated strings; it is not
// intended for production use. Writing past the capacity is a precondition
// violation and panics.
type TextBuffer struct {
	buf  [TextBufferSize]byte
	size int
}

// Len returns the number of bytes written.
func (b *TextBuffer) Len() int {
	return b.size
}

// Available returns the number of bytes that can still be written.
func (b *TextBuffer) Available() int {
	return TextBufferSize - b.size
}

// WriteString appends s. Panics if s does not fit.
func (b *TextBuffer) WriteString(s string) {
	if len(s) > b.Available() {
		panic("funk: text buffer overflow")
	}
	copy(b.buf[b.size:], s)
	b.size += len(s)
}

// WriteRune appends the UTF-8 encoding of r. Panics if it does not fit.
func (b *TextBuffer) WriteRune(r rune) {
	var tmp [utf8.UTFMax]byte
	n := utf8.EncodeRune(tmp[:], r)
	if n > b.Available() {
		panic("funk: text buffer overflow")
	}
	copy(b.buf[b.size:], tmp[:n])
	b.size += n
}

// WriteInt appends the decimal representation of n. Panics if it does not
// fit.
func (b *TextBuffer) WriteInt(n int) {
	if n == 0 {
		b.WriteRune('0')
		return
	}

	// Two's complement magnitude; correct even for the most negative
	// value, which cannot be negated as a signed int.
	negative := n < 0
	u := uint(n)
	if negative {
		u = -u
	}

	// Digits accumulate in reverse order. 20 digits suffice for uint64.
	var digits [20]byte
	length := 0
	for u > 0 {
		digits[length] = byte(u%10) + '0'
		u /= 10
		length++
	}

	total := length
	if negative {
		total++
	}
	if total > b.Available() {
		panic("funk: text buffer overflow")
	}

	if negative {
		b.buf[b.size] = '-'
		b.size++
	}
	for i := length - 1; i >= 0; i-- {
		b.buf[b.size] = digits[i]
		b.size++
	}
}

// String returns the written bytes as a string.
func (b *TextBuffer) String() string {
	return string(b.buf[:b.size])
}
