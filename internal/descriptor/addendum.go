package descriptor

import "fmt"

// Flags is the addendum's behavior flag bitset.
type Flags uint64

// Addendum flags.
const (
	// DoNotFinalize marks an array whose elements were produced by raw
	// byte copies rather than value-semantic construction; a later
	// finalization pass must skip them.
	DoNotFinalize Flags = 1 << iota
	// StaticDescriptor marks a descriptor in read-only storage.
	StaticDescriptor
)

// DerivedType describes a user-defined element type. Instances live in
// a TypeRegistry; descriptors reference them without owning them.
type DerivedType struct {
	name          string
	byteSize      int64
	lenParameters int
}

// Name returns the type's declared name.
func (dt *DerivedType) Name() string {
	return dt.name
}

// ByteSize returns the storage size of one element of this type.
func (dt *DerivedType) ByteSize() int64 {
	return dt.byteSize
}

// LenParameters returns the number of length type parameters instances
// of this type carry.
func (dt *DerivedType) LenParameters() int {
	return dt.lenParameters
}

// String returns a human-readable summary of the type.
func (dt *DerivedType) String() string {
	return fmt.Sprintf("type %s (%d bytes, %d len parameters)", dt.name, dt.byteSize, dt.lenParameters)
}

// TypeRegistry owns the runtime's derived type definitions. Addendums
// hold weak back-references into it and never free or copy an entry.
type TypeRegistry struct {
	types map[string]*DerivedType
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{types: make(map[string]*DerivedType)}
}

// Register adds a derived type definition and returns it. Registering
// the same name twice is an error.
func (r *TypeRegistry) Register(name string, byteSize int64, lenParameters int) (*DerivedType, error) {
	if _, ok := r.types[name]; ok {
		return nil, fmt.Errorf("derived type %q already registered", name)
	}
	if byteSize <= 0 {
		return nil, fmt.Errorf("derived type %q has invalid size %d", name, byteSize)
	}
	if lenParameters < 0 {
		return nil, fmt.Errorf("derived type %q has negative length parameter count %d", name, lenParameters)
	}
	dt := &DerivedType{name: name, byteSize: byteSize, lenParameters: lenParameters}
	r.types[name] = dt
	return dt, nil
}

// Lookup returns the registered type with the given name, or nil.
func (r *TypeRegistry) Lookup(name string) *DerivedType {
	return r.types[name]
}

// Addendum extends a Descriptor with derived-type information: the
// type's identity, the per-instance length type parameter values, and
// behavior flags.
type Addendum struct {
	derivedType *DerivedType
	flags       Flags
	lenParams   []int64
}

func newAddendum(dt *DerivedType) *Addendum {
	return &Addendum{
		derivedType: dt,
		lenParams:   make([]int64, dt.LenParameters()),
	}
}

// DerivedType returns the referenced type definition. The reference is
// weak: the registry owns the definition.
func (a *Addendum) DerivedType() *DerivedType {
	return a.derivedType
}

// Flags returns the addendum's flag bits.
func (a *Addendum) Flags() Flags {
	return a.flags
}

// SetFlags replaces the addendum's flag bits.
func (a *Addendum) SetFlags(f Flags) {
	a.flags = f
}

// SetFlag sets the given flag bits, leaving the others untouched.
func (a *Addendum) SetFlag(f Flags) {
	a.flags |= f
}

// LenParameters returns the number of length type parameter values.
func (a *Addendum) LenParameters() int {
	return len(a.lenParams)
}

// LenParameterValue returns length type parameter j.
func (a *Addendum) LenParameterValue(j int) int64 {
	return a.lenParams[j]
}

// SetLenParameterValue sets length type parameter j.
func (a *Addendum) SetLenParameterValue(j int, v int64) {
	a.lenParams[j] = v
}
