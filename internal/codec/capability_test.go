package codec

import (
	"sync"
	"testing"
)

func TestSupportedProbesOnce(t *testing.T) {
	var wg sync.WaitGroup
	results := make([][]string, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = Supported()
		}(i)
	}
	wg.Wait()

	if got := probeCount.Load(); got != 1 {
		t.Fatalf("capability probe ran %d times, want 1", got)
	}

	first := results[0]
	for i, r := range results {
		if len(r) != len(first) {
			t.Fatalf("call %d returned %d formats, call 0 returned %d", i, len(r), len(first))
		}
		for j := range r {
			if r[j] != first[j] {
				t.Fatalf("call %d differs at %d: %s vs %s", i, j, r[j], first[j])
			}
		}
	}
}

func TestSupportedReturnsCopy(t *testing.T) {
	a := Supported()
	if len(a) == 0 {
		t.Fatal("no supported formats")
	}
	a[0] = "image/tampered"

	b := Supported()
	if b[0] == "image/tampered" {
		t.Fatal("Supported exposed internal state")
	}
}

func TestSupportedAlwaysHasStdlibFormats(t *testing.T) {
	set := map[string]bool{}
	for _, m := range Supported() {
		set[m] = true
	}

	// These decode and encode through the stdlib and x/image, so no build
	// configuration can remove them.
	for _, m := range []string{"image/jpeg", "image/png", "image/gif", "image/bmp"} {
		if !set[m] {
			t.Errorf("capability set missing %s", m)
		}
	}
}

func TestIsSupportedMatchesSet(t *testing.T) {
	set := map[string]bool{}
	for _, m := range Supported() {
		set[m] = true
	}
	for f := Format(0); f < numFormats; f++ {
		if IsSupported(f) != set[f.MIME()] {
			t.Errorf("IsSupported(%s) disagrees with Supported()", f)
		}
	}
}
