package packed_test

import (
	"context"
	"testing"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/packed"
	"github.com/wippyai/packed/layout"
)

// regReturnWasm is a minimal core module standing in for generated code:
// one exported function returning the packed word for fields (5, 9) with
// widths (3, 4), i.e. i64.const 89.
//
//	(module (func (export "pack") (result i64) (i64.const 89)))
var regReturnWasm = []byte{
	0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, // magic + version
	0x01, 0x05, 0x01, 0x60, 0x00, 0x01, 0x7e, // type: () -> i64
	0x03, 0x02, 0x01, 0x00, // func 0 uses type 0
	0x07, 0x08, 0x01, 0x04, 0x70, 0x61, 0x63, 0x6b, 0x00, 0x00, // export "pack"
	0x0a, 0x07, 0x01, 0x05, 0x00, 0x42, 0xd9, 0x00, 0x0b, // body: i64.const 89
}

// TestRegisterReturnBoundary exercises the reason this module exists:
// a function in generated code returns several small values in a single
// register, and the caller decodes them on the host side.
func TestRegisterReturnBoundary(t *testing.T) {
	ctx := context.Background()

	r := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer r.Close(ctx)

	mod, err := r.Instantiate(ctx, regReturnWasm)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}

	res, err := mod.ExportedFunction("pack").Call(ctx)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if len(res) != 1 {
		t.Fatalf("got %d results, want 1", len(res))
	}
	word := res[0]

	t.Run("static schema", func(t *testing.T) {
		p := packed.Create[packed.Packed[packed.W4, packed.Packed[packed.W3, packed.Empty]]](word)
		if got := p.Back(); got != 9 {
			t.Errorf("Back = %d, want 9", got)
		}
		if got := p.Pop().Back(); got != 5 {
			t.Errorf("Pop.Back = %d, want 5", got)
		}
	})

	t.Run("runtime layout", func(t *testing.T) {
		l, err := layout.Compile(3, 4)
		if err != nil {
			t.Fatalf("Compile: %v", err)
		}
		got := l.Unpack(word)
		if got[0] != 5 || got[1] != 9 {
			t.Errorf("Unpack = %v, want [5 9]", got)
		}
	})
}
