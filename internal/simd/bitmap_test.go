package simd

import (
	"math/bits"
	"math/rand"
	"testing"
)

func TestAndWords(t *testing.T) {
	tests := []struct {
		name string
		a    []uint64
		b    []uint64
		want []uint64
	}{
		{
			name: "Empty",
			a:    []uint64{},
			b:    []uint64{},
			want: []uint64{},
		},
		{
			name: "Single word",
			a:    []uint64{0xFF00FF00FF00FF00},
			b:    []uint64{0x0F0F0F0F0F0F0F0F},
			want: []uint64{0x0F000F000F000F00},
		},
		{
			name: "All ones AND all zeros",
			a:    []uint64{^uint64(0), ^uint64(0)},
			b:    []uint64{0, 0},
			want: []uint64{0, 0},
		},
		{
			name: "Identity (AND with all ones)",
			a:    []uint64{0x123456789ABCDEF0, 0xFEDCBA9876543210},
			b:    []uint64{^uint64(0), ^uint64(0)},
			want: []uint64{0x123456789ABCDEF0, 0xFEDCBA9876543210},
		},
		{
			name: "4 words (unroll boundary)",
			a:    []uint64{0xFF, 0xFF, 0xFF, 0xFF},
			b:    []uint64{0x0F, 0xF0, 0x55, 0xAA},
			want: []uint64{0x0F, 0xF0, 0x55, 0xAA},
		},
		{
			name: "5 words (unroll + tail)",
			a:    []uint64{0xFF, 0xFF, 0xFF, 0xFF, 0xFF},
			b:    []uint64{0x0F, 0xF0, 0x55, 0xAA, 0x33},
			want: []uint64{0x0F, 0xF0, 0x55, 0xAA, 0x33},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]uint64, len(tt.a))
			AndWords(dst, tt.a, tt.b)
			for i := range dst {
				if dst[i] != tt.want[i] {
					t.Errorf("word %d: got %#x, want %#x", i, dst[i], tt.want[i])
				}
			}
		})
	}
}

func TestAndWordsAliased(t *testing.T) {
	dst := []uint64{0xFF00, 0x00FF, 0xAAAA, 0x5555, 0xF0F0}
	b := []uint64{0x0F00, 0x00F0, 0xFFFF, 0x0000, 0xFFFF}
	want := []uint64{0x0F00, 0x00F0, 0xAAAA, 0x0000, 0xF0F0}
	AndWords(dst, dst, b)
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("word %d: got %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestOrWords(t *testing.T) {
	a := []uint64{0xF0F0, 0x0000, 0xAAAA, 0x1234, 0xFFFF}
	b := []uint64{0x0F0F, 0x0000, 0x5555, 0x0000, 0x0001}
	want := []uint64{0xFFFF, 0x0000, 0xFFFF, 0x1234, 0xFFFF}
	dst := make([]uint64, len(a))
	OrWords(dst, a, b)
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("word %d: got %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestXorWords(t *testing.T) {
	a := []uint64{0xF0F0, 0xFFFF, 0xAAAA, 0x1234, 0xFFFF}
	b := []uint64{0x0F0F, 0xFFFF, 0x5555, 0x0000, 0x0001}
	want := []uint64{0xFFFF, 0x0000, 0xFFFF, 0x1234, 0xFFFE}
	dst := make([]uint64, len(a))
	XorWords(dst, a, b)
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("word %d: got %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestAndNotWords(t *testing.T) {
	a := []uint64{0xFFFF, 0xAAAA, 0x1234, 0xFFFF, 0x8000}
	b := []uint64{0x00FF, 0xAAAA, 0x0000, 0xFFFF, 0x0000}
	want := []uint64{0xFF00, 0x0000, 0x1234, 0x0000, 0x8000}
	dst := make([]uint64, len(a))
	AndNotWords(dst, a, b)
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("word %d: got %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestOrNotWords(t *testing.T) {
	a := []uint64{0x0000, 0xAAAA}
	b := []uint64{^uint64(0), 0}
	want := []uint64{0x0000, ^uint64(0)}
	dst := make([]uint64, len(a))
	OrNotWords(dst, a, b)
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("word %d: got %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestNotWords(t *testing.T) {
	a := []uint64{0, ^uint64(0), 0xAAAAAAAAAAAAAAAA, 0x5555555555555555, 0x1}
	want := []uint64{^uint64(0), 0, 0x5555555555555555, 0xAAAAAAAAAAAAAAAA, ^uint64(1)}
	dst := make([]uint64, len(a))
	NotWords(dst, a)
	for i := range dst {
		if dst[i] != want[i] {
			t.Errorf("word %d: got %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestFillWords(t *testing.T) {
	for _, n := range []int{0, 1, 3, 4, 5, 8, 13} {
		dst := make([]uint64, n)
		FillWords(dst, 0xDEADBEEFDEADBEEF)
		for i := range dst {
			if dst[i] != 0xDEADBEEFDEADBEEF {
				t.Errorf("len %d word %d not filled", n, i)
			}
		}
		FillWords(dst, 0)
		for i := range dst {
			if dst[i] != 0 {
				t.Errorf("len %d word %d not cleared", n, i)
			}
		}
	}
}

func TestPopcountWords(t *testing.T) {
	tests := []struct {
		name  string
		words []uint64
		want  int
	}{
		{name: "Empty", words: []uint64{}, want: 0},
		{name: "Zero word", words: []uint64{0}, want: 0},
		{name: "All ones", words: []uint64{^uint64(0)}, want: 64},
		{name: "Alternating", words: []uint64{0xAAAAAAAAAAAAAAAA, 0x5555555555555555}, want: 64},
		{name: "5 words (unroll + tail)", words: []uint64{1, 3, 7, 15, 31}, want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PopcountWords(tt.words); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPopcountWordsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		words := make([]uint64, rng.Intn(64))
		want := 0
		for i := range words {
			words[i] = rng.Uint64()
			want += bits.OnesCount64(words[i])
		}
		if got := PopcountWords(words); got != want {
			t.Fatalf("trial %d: got %d, want %d", trial, got, want)
		}
	}
}
