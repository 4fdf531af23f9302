package layout

import (
	"sync"
	"testing"
)

func TestCompilerCachesByWidths(t *testing.T) {
	c := NewCompiler()

	l1, err := c.Compile(3, 4)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	l2, err := c.Compile(3, 4)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if l1 != l2 {
		t.Error("second Compile did not hit the cache")
	}

	l3, err := c.Compile(4, 3)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if l3 == l1 {
		t.Error("distinct widths must not share a cache entry")
	}
}

func TestCompilerFromDescriptor(t *testing.T) {
	c := NewCompiler()

	l1, err := c.Compile(3, 4)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	l2, err := c.FromDescriptor(l1.Descriptor())
	if err != nil {
		t.Fatalf("FromDescriptor: %v", err)
	}
	if l1 != l2 {
		t.Error("FromDescriptor did not reuse the cached layout")
	}
}

func TestCompilerInvalidWidthsSkipCache(t *testing.T) {
	c := NewCompiler()

	if _, err := c.Compile(3); err != nil {
		t.Fatalf("Compile: %v", err)
	}
	// 259 truncates to slot value 3; it must not alias the cached u3.
	if _, err := c.Compile(259); err == nil {
		t.Error("invalid width compiled successfully")
	}
	if _, err := c.Compile(0); err == nil {
		t.Error("zero width compiled successfully")
	}
}

func TestCompilerConcurrent(t *testing.T) {
	c := NewCompiler()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				l, err := c.Compile(3, 4, 5)
				if err != nil {
					t.Error(err)
					return
				}
				word, err := l.Pack(5, 9, 17)
				if err != nil {
					t.Error(err)
					return
				}
				got := l.Unpack(word)
				if got[0] != 5 || got[1] != 9 || got[2] != 17 {
					t.Errorf("Unpack = %v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
