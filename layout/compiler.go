package layout

import (
	"sync"

	"github.com/wippyai/packed/internal/bits"
)

// Compiler caches compiled layouts by descriptor. Code generators tend to
// revisit the same handful of layouts; caching keeps that path
// allocation-free after warmup.
type Compiler struct {
	cache sync.Map // uint64 descriptor -> *Layout
}

func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile returns a cached Layout for widths, compiling on first use.
// Only valid layouts are cached; errors are recomputed each call.
func (c *Compiler) Compile(widths ...uint) (*Layout, error) {
	if key, ok := descriptorKey(widths); ok {
		if cached, hit := c.cache.Load(key); hit {
			return cached.(*Layout), nil
		}
	}

	l, err := Compile(widths...)
	if err != nil {
		return nil, err
	}

	c.cache.Store(l.desc, l)
	return l, nil
}

// FromDescriptor returns a cached Layout for desc, compiling on first use.
func (c *Compiler) FromDescriptor(desc uint64) (*Layout, error) {
	if cached, ok := c.cache.Load(desc); ok {
		return cached.(*Layout), nil
	}

	l, err := FromDescriptor(desc)
	if err != nil {
		return nil, err
	}

	c.cache.Store(l.desc, l)
	return l, nil
}

// descriptorKey packs widths into the slot encoding a compiled layout
// would produce. Widths that cannot compile report !ok so the lookup is
// skipped; otherwise truncating a width to a slot could alias a cached
// valid layout.
func descriptorKey(widths []uint) (uint64, bool) {
	if len(widths) > bits.MaxFields {
		return 0, false
	}
	var key uint64
	for i, w := range widths {
		if w == 0 || w > bits.MaxTotalBits {
			return 0, false
		}
		key |= uint64(w) << (uint(i) * bits.SlotBits)
	}
	return key, true
}
