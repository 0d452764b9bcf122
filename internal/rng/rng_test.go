package rng

import (
	"sync"
	"testing"
)

func TestLCGSequence(t *testing.T) {
	g := New(0)

	// x1 = 1013904223, x2 = x1*1664525 + 1013904223 (mod 2^32)
	want := []uint32{1013904223, 1196435762, 3519870697}
	for i, w := range want {
		if got := g.next(); got != w {
			t.Errorf("step %d = %d, expected %d", i, got, w)
		}
	}
}

func TestDeterminism(t *testing.T) {
	a := New(12345)
	b := New(12345)

	for i := 0; i < 1000; i++ {
		if a.U16() != b.U16() {
			t.Fatalf("generators diverged at draw %d", i)
		}
	}
}

func TestIndexBounds(t *testing.T) {
	g := New(7)
	for _, n := range []int{1, 2, 3, 12, 144} {
		for i := 0; i < 500; i++ {
			v := g.Index(n)
			if v < 0 || v >= n {
				t.Fatalf("Index(%d) = %d, out of range", n, v)
			}
		}
	}

	if g.Index(0) != 0 {
		t.Error("Index(0) should be 0")
	}
}

func TestBoolBothValues(t *testing.T) {
	g := New(99)
	seen := map[bool]int{}
	for i := 0; i < 200; i++ {
		seen[g.Bool()]++
	}
	if seen[true] == 0 || seen[false] == 0 {
		t.Errorf("Bool() produced only one value: %v", seen)
	}
}

func TestChance(t *testing.T) {
	g := New(3)
	if Chance(g, 0) {
		t.Error("Chance(0) should never be true")
	}

	hits := 0
	for i := 0; i < 1000; i++ {
		if Chance(g, 65535) {
			hits++
		}
	}
	if hits < 990 {
		t.Errorf("Chance(65535) hit %d/1000 times", hits)
	}
}

func TestConcurrentUse(t *testing.T) {
	g := New(1)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				g.U8()
			}
		}()
	}
	wg.Wait()
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same generator")
	}
}
