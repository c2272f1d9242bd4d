package runtime

import (
	"github.com/emirpasic/gods/maps/treemap"
)

// Class is a class value. Its method table is immutable after construction.
type Class struct {
	Name       string
	Superclass *Class
	methods    *treemap.Map // name -> *Function
}

// NewClass creates a class with a table of methods. Methods are owned by the
// new class, i.e. their Owner is set to it.
func NewClass(name string, superclass *Class, methods []*Function) *Class {
	c := &Class{
		Name:       name,
		Superclass: superclass,
		methods:    treemap.NewWithStringComparator(),
	}
	for _, m := range methods {
		m.Owner = c
		c.methods.Put(m.Name, m)
	}
	tracer().Debugf("new class %s with %d methods", name, c.methods.Size())
	return c
}

// Kind is ClassKind.
func (c *Class) Kind() Kind { return ClassKind }

func (c *Class) String() string {
	return c.Name
}

// FindMethod looks up a method by name, walking up the superclass chain.
// The method returned is unbound.
func (c *Class) FindMethod(name string) (*Function, bool) {
	for cl := c; cl != nil; cl = cl.Superclass {
		if m, found := cl.methods.Get(name); found {
			return m.(*Function), true
		}
	}
	return nil, false
}

// MethodNames returns the names of the methods defined by class c itself,
// in alphabetical order.
func (c *Class) MethodNames() []string {
	keys := c.methods.Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.(string)
	}
	return names
}
