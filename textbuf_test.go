// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package funk_test

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"code.hybscloud.com/funk"
)

func TestTextBufferWriteString(t *testing.T) {
	var b funk.TextBuffer

	if b.Len() != 0 {
		t.Fatalf("got len %d, want 0", b.Len())
	}
	if b.Available() != funk.TextBufferSize {
		t.Fatalf("got available %d, want %d", b.Available(), funk.TextBufferSize)
	}

	b.WriteString("hello")
	b.WriteString(", world")
	if b.String() != "hello, world" {
		t.Fatalf("got %q, want %q", b.String(), "hello, world")
	}
	if b.Len() != 12 {
		t.Fatalf("got len %d, want 12", b.Len())
	}
	if b.Available() != funk.TextBufferSize-12 {
		t.Fatalf("got available %d, want %d", b.Available(), funk.TextBufferSize-12)
	}
}

func TestTextBufferWriteRune(t *testing.T) {
	var b funk.TextBuffer

	b.WriteRune('a')
	b.WriteRune('é')
	b.WriteRune('世')
	if b.String() != "aé世" {
		t.Fatalf("got %q, want %q", b.String(), "aé世")
	}
}

func TestTextBufferWriteInt(t *testing.T) {
	cases := []int{0, 1, -1, 42, -42, 13, 1000000, math.MaxInt, math.MinInt}
	for _, n := range cases {
		var b funk.TextBuffer
		b.WriteInt(n)
		if want := strconv.Itoa(n); b.String() != want {
			t.Fatalf("WriteInt(%d): got %q, want %q", n, b.String(), want)
		}
	}
}

func TestTextBufferOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on overflow")
		}
	}()

	var b funk.TextBuffer
	b.WriteString(strings.Repeat("x", funk.TextBufferSize))
	// Full to capacity is fine; one more byte is not.
	b.WriteRune('y')
}

func TestTextBufferExactCapacity(t *testing.T) {
	var b funk.TextBuffer
	b.WriteString(strings.Repeat("x", funk.TextBufferSize))
	if b.Available() != 0 {
		t.Fatalf("got available %d, want 0", b.Available())
	}
	if b.Len() != funk.TextBufferSize {
		t.Fatalf("got len %d, want %d", b.Len(), funk.TextBufferSize)
	}
}
