package guikit

import (
	"encoding/binary"
	"hash/fnv"
	"strings"
)

// ID uniquely identifies a widget for state persistence.
// The same label under the same ID stack yields the same ID every frame.
type ID uint64

// idSeparator hides the rest of a label from display while keeping it
// part of the ID ("Save##toolbar" draws "Save").
const idSeparator = "##"

// GetID hashes label into an ID scoped by the top of the ID stack.
func (ctx *Context) GetID(label string) ID {
	return hashID(ctx.CurrentID(), label)
}

// GetIDFromInt hashes n into an ID scoped by the top of the ID stack.
func (ctx *Context) GetIDFromInt(n int) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	return hashID(ctx.CurrentID(), string(buf[:]))
}

// PushID pushes a scope so that widgets with equal labels under different
// scopes do not share state.
func (ctx *Context) PushID(label string) {
	ctx.idStack = append(ctx.idStack, ctx.GetID(label))
}

// PushIDInt pushes an integer-based scope.
func (ctx *Context) PushIDInt(n int) {
	ctx.idStack = append(ctx.idStack, ctx.GetIDFromInt(n))
}

// PopID removes the last scope from the stack.
func (ctx *Context) PopID() {
	if len(ctx.idStack) > 0 {
		ctx.idStack = ctx.idStack[:len(ctx.idStack)-1]
	}
}

// CurrentID returns the current parent ID (top of stack).
func (ctx *Context) CurrentID() ID {
	if len(ctx.idStack) > 0 {
		return ctx.idStack[len(ctx.idStack)-1]
	}
	return 0
}

// IDDepth returns the number of pushed scopes.
func (ctx *Context) IDDepth() int {
	return len(ctx.idStack)
}

func hashID(parent ID, label string) ID {
	h := fnv.New64a()
	var seed [8]byte
	binary.LittleEndian.PutUint64(seed[:], uint64(parent))
	h.Write(seed[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// DisplayLabel strips the hidden "##" suffix from a label.
func DisplayLabel(label string) string {
	if i := strings.Index(label, idSeparator); i >= 0 {
		return label[:i]
	}
	return label
}
