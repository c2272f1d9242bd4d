package runtime

import "fmt"

// InstanceID identifies an instance in a heap. Ids start at 1 and are never
// reused; 0 is NoInstance.
type InstanceID int

// NoInstance is the zero InstanceID, referencing nothing.
const NoInstance InstanceID = 0

// InstanceRef is the value of an instance: an id into a heap together with
// the instance's class. The class is the one the instance has been
// constructed from, regardless of later re-bindings of the class name.
type InstanceRef struct {
	ID    InstanceID
	Class *Class
}

// Kind is InstanceKind.
func (r InstanceRef) Kind() Kind { return InstanceKind }

func (r InstanceRef) String() string {
	if r.Class == nil {
		return "instance"
	}
	return r.Class.Name + " instance"
}

type instance struct {
	class  *Class
	fields *SymbolTable
}

// Heap is an arena of class instances.
type Heap struct {
	instances []*instance
}

// NewHeap creates an empty heap.
func NewHeap() *Heap {
	return &Heap{}
}

// New allocates a new instance of a class, without any fields.
func (h *Heap) New(class *Class) InstanceRef {
	h.instances = append(h.instances, &instance{
		class:  class,
		fields: NewSymbolTable(),
	})
	ref := InstanceRef{ID: InstanceID(len(h.instances)), Class: class}
	tracer().Debugf("new instance #%d of class %v", ref.ID, class)
	return ref
}

// Size is the number of instances allocated.
func (h *Heap) Size() int {
	return len(h.instances)
}

func (h *Heap) lookup(id InstanceID) (*instance, error) {
	if id <= NoInstance || int(id) > len(h.instances) {
		return nil, fmt.Errorf("no instance with id %d", id)
	}
	return h.instances[id-1], nil
}

// Ref returns a reference for an instance id.
func (h *Heap) Ref(id InstanceID) (InstanceRef, error) {
	inst, err := h.lookup(id)
	if err != nil {
		return InstanceRef{}, err
	}
	return InstanceRef{ID: id, Class: inst.class}, nil
}

// Field looks up a field of an instance. Methods are not considered.
func (h *Heap) Field(ref InstanceRef, name string) (Value, bool) {
	inst, err := h.lookup(ref.ID)
	if err != nil {
		return nil, false
	}
	if tag := inst.fields.ResolveTag(name); tag != nil {
		return tag.Value, true
	}
	return nil, false
}

// SetField writes a field of an instance, creating it if necessary.
func (h *Heap) SetField(ref InstanceRef, name string, v Value) error {
	inst, err := h.lookup(ref.ID)
	if err != nil {
		return err
	}
	tag := inst.fields.ResolveTag(name)
	if tag == nil {
		tag, _ = inst.fields.DefineTag(name)
	}
	tag.Value = v
	return nil
}

// Fields returns the field table of an instance.
func (h *Heap) Fields(ref InstanceRef) (*SymbolTable, error) {
	inst, err := h.lookup(ref.ID)
	if err != nil {
		return nil, err
	}
	return inst.fields, nil
}
