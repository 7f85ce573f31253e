// internal/platform/randx/randx_test.go
package randx

import (
	"sync"
	"testing"

	"mirage/internal/testutil"
)

func TestNew_Deterministic(t *testing.T) {
	r1 := New(42)
	r2 := New(42)

	for i := 0; i < 50; i++ {
		testutil.AssertEqual(t, r1.Intn(1000), r2.Intn(1000), "same seed same sequence")
	}
}

func TestNew_DifferentSeeds(t *testing.T) {
	r1 := New(1)
	r2 := New(2)

	same := true
	for i := 0; i < 20; i++ {
		if r1.Intn(1000000) != r2.Intn(1000000) {
			same = false
			break
		}
	}
	testutil.AssertFalse(t, same, "different seeds diverge")
}

func TestRand_Between(t *testing.T) {
	r := New(7)

	for i := 0; i < 100; i++ {
		v := r.Between(3, 9)
		testutil.AssertTrue(t, v >= 3 && v <= 9, "value in range")
	}

	testutil.AssertEqual(t, r.Between(5, 5), 5, "degenerate range")
	testutil.AssertEqual(t, r.Between(5, 2), 5, "inverted range returns lo")
}

func TestRand_Pick(t *testing.T) {
	r := New(7)
	values := []string{"a", "b", "c"}

	for i := 0; i < 50; i++ {
		got := r.Pick(values)
		testutil.AssertContains(t, values, got, "picked from slice")
	}

	testutil.AssertEqual(t, r.Pick(nil), "", "empty slice")
}

func TestRand_Shuffle_Deterministic(t *testing.T) {
	build := func(seed int64) []int {
		r := New(seed)
		s := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
		return s
	}

	a := build(99)
	b := build(99)
	for i := range a {
		testutil.AssertEqual(t, a[i], b[i], "same seed same shuffle")
	}
}

func TestRand_Float64Range(t *testing.T) {
	r := New(3)
	for i := 0; i < 100; i++ {
		v := r.Float64()
		testutil.AssertTrue(t, v >= 0.0 && v < 1.0, "float in [0,1)")
	}
}

func TestRand_ConcurrentUse(t *testing.T) {
	r := New(11)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r.Intn(100)
				r.Float64()
				r.Between(1, 10)
			}
		}()
	}
	wg.Wait()
}
