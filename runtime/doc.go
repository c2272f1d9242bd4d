/*
Package runtime implements the runtime environment of the interpreter,
consisting of values, memory frames, symbols (variable declarations and
references) and an arena of class instances.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Values

Values are Bool, Number, String, Nil, *Function, *Class and InstanceRef.
Instances are not values themselves: they live in a Heap and are referenced
by a stable id. A bound method stores the id of its instance, not a live
handle, so there are no reference cycles between instances and methods.

Symbol Tables

Symbol tables map names to tags, each carrying a value. They are used for
memory frames and for instance fields.

Memory Frames

Memory frames are used by an interpreter to allocate local storage
for active scopes. They are organized as a stack with a global frame at the
bottom, which can never be popped. Names are defined in the top-most frame
only and are resolved from the top of the stack downwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rotten.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("rotten.runtime")
}

// Runtime is a type implementing a runtime environment for an interpreter.
// A runtime is owned by exactly one interpreter.
type Runtime struct {
	MemFrameStack *MemoryFrameStack // runtime stack of memory frames
	Heap          *Heap             // class instances
	UData         interface{}       // extension point
}

// NewRuntimeEnvironment constructs a new runtime environment, initialized
// with an empty global memory frame.
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{
		MemFrameStack: NewMemoryFrameStack(),
		Heap:          NewHeap(),
	}
	return rt
}
