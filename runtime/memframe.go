package runtime

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// ErrPopGlobalFrame is returned when trying to pop the global memory frame.
var ErrPopGlobalFrame = errors.New("attempt to pop global memory frame")

// DynamicMemoryFrame is a memory frame, representing a piece of memory for a scope.
type DynamicMemoryFrame struct {
	Name        string
	SymbolTable *SymbolTable
}

// NewDynamicMemoryFrame creates a new memory frame.
func NewDynamicMemoryFrame(nm string) *DynamicMemoryFrame {
	return &DynamicMemoryFrame{
		Name:        nm,
		SymbolTable: NewSymbolTable(),
	}
}

func (mf *DynamicMemoryFrame) String() string {
	return fmt.Sprintf("<mem %s #%d>", mf.Name, mf.SymbolTable.Size())
}

// ---------------------------------------------------------------------------

// MemoryFrameStack is a (call-)stack of memory frames. The bottom-most frame
// is the global frame and stays on the stack for the stack's lifetime.
type MemoryFrameStack struct {
	frames *arraystack.Stack
	global *DynamicMemoryFrame
}

// NewMemoryFrameStack creates a stack with a global memory frame.
func NewMemoryFrameStack() *MemoryFrameStack {
	mfst := &MemoryFrameStack{frames: arraystack.New()}
	mfst.global = mfst.PushNewMemoryFrame("global")
	return mfst
}

// Current gets the current memory frame of a stack (TOS).
func (mfst *MemoryFrameStack) Current() *DynamicMemoryFrame {
	mf, _ := mfst.frames.Peek()
	return mf.(*DynamicMemoryFrame)
}

// Globals gets the outermost memory frame, containing global symbols.
func (mfst *MemoryFrameStack) Globals() *DynamicMemoryFrame {
	return mfst.global
}

// Depth is the number of frames on the stack, including the global frame.
func (mfst *MemoryFrameStack) Depth() int {
	return mfst.frames.Size()
}

// PushNewMemoryFrame pushes a new, empty memory frame as TOS.
func (mfst *MemoryFrameStack) PushNewMemoryFrame(nm string) *DynamicMemoryFrame {
	newmf := NewDynamicMemoryFrame(nm)
	mfst.frames.Push(newmf)
	tracer().P("mem", newmf.Name).Debugf("pushing new memory frame")
	return newmf
}

// PopMemoryFrame pops the top-most memory frame. Returns the popped frame.
// The global frame cannot be popped; trying to do so results in
// ErrPopGlobalFrame.
func (mfst *MemoryFrameStack) PopMemoryFrame() (*DynamicMemoryFrame, error) {
	if mfst.frames.Size() <= 1 {
		return nil, ErrPopGlobalFrame
	}
	mf, _ := mfst.frames.Pop()
	tracer().Debugf("popping memory frame [%s]", mf.(*DynamicMemoryFrame).Name)
	return mf.(*DynamicMemoryFrame), nil
}

// Define defines a name in the current frame, overwriting a previous
// definition in this frame, if any.
func (mfst *MemoryFrameStack) Define(name string, v Value) {
	tag, _ := mfst.Current().SymbolTable.DefineTag(name)
	tag.Value = v
}

// Get looks up a name, searching the frames from top to bottom.
func (mfst *MemoryFrameStack) Get(name string) (Value, bool) {
	if tag := mfst.resolve(name); tag != nil {
		return tag.Value, true
	}
	return nil, false
}

// Assign overwrites the value of the top-most definition of a name.
// Assign will never create a new definition and returns false if no
// frame defines the name.
func (mfst *MemoryFrameStack) Assign(name string, v Value) bool {
	tag := mfst.resolve(name)
	if tag == nil {
		return false
	}
	tag.Value = v
	return true
}

func (mfst *MemoryFrameStack) resolve(name string) *Tag {
	it := mfst.frames.Iterator() // iterates from top to bottom
	for it.Next() {
		if tag := it.Value().(*DynamicMemoryFrame).SymbolTable.ResolveTag(name); tag != nil {
			return tag
		}
	}
	return nil
}
