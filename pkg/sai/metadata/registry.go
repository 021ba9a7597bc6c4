// Package metadata is the compile-time, read-only catalogue of every
// object type and attribute the core understands: types, flags, enum
// membership, default values and the condition tables that drive
// conditional mandatoriness (§4.1). Nothing in this package mutates at
// runtime; it is generated once in init() and looked up by every other
// package.
package metadata

import (
	"fmt"

	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// AttrID is both the registry lookup key and the literal name stored as
// the AttrHash key in the shadow database (§3.3: "attribute-id-name →
// owned wrapped attribute").
type AttrID string

// AttrFlag is a bitmask of the flag set an attribute may carry.
type AttrFlag uint8

const (
	FlagMandatoryOnCreate AttrFlag = 1 << iota
	FlagCreateOnly
	FlagCreateAndSet
	FlagReadOnly
	FlagKey
)

func (f AttrFlag) Has(bit AttrFlag) bool { return f&bit != 0 }

// DefaultKind classifies where an attribute's default value comes from.
type DefaultKind int

const (
	DefaultNone DefaultKind = iota
	DefaultConst
	DefaultEmptyList
	DefaultSwitchInternal
)

// Condition is one alternative in an attribute's condition table: the
// attribute is mandatory-on-create iff the named condition attribute's
// effective value equals Value for at least one listed Condition (OR
// semantics across the slice).
type Condition struct {
	AttrID AttrID
	Value  int32
}

// EnumDescriptor names the declared members of an enum or enum-list
// attribute.
type EnumDescriptor struct {
	Names map[int32]string
}

// Members returns the declared numeric values, in no particular order.
func (e *EnumDescriptor) Members() []int32 {
	out := make([]int32, 0, len(e.Names))
	for v := range e.Names {
		out = append(out, v)
	}
	return out
}

// IsMember reports whether v is a declared enum value.
func (e *EnumDescriptor) IsMember(v int32) bool {
	_, ok := e.Names[v]
	return ok
}

// AttrMeta is the static description of a single attribute.
type AttrMeta struct {
	ID                 AttrID
	ObjectType         types.ObjectType
	ValueType          types.ValueType
	Flags              AttrFlag
	IsEnum             bool
	IsEnumList         bool
	Enum               *EnumDescriptor
	AllowedObjectTypes []types.ObjectType
	AllowNullObjectID  bool
	DefaultKind        DefaultKind
	Default            types.Value
	Conditions         []Condition

	// AclPrimitiveType is the primitive value type carried inside an
	// AclField's Data/Mask or an AclAction's Data, for attributes whose
	// ValueType is ValueTypeAclField/ValueTypeAclAction. Ignored
	// otherwise.
	AclPrimitiveType types.ValueType
}

func (a *AttrMeta) HasConditions() bool { return len(a.Conditions) > 0 }

// StructMember describes one OID-valued (or otherwise typed) field of a
// struct-keyed (NOI) object's key.
type StructMember struct {
	Name               string
	ValueType          types.ValueType
	AllowedObjectTypes []types.ObjectType
	AllowNull          bool
}

// ObjectMeta is the static description of an object type.
type ObjectMeta struct {
	ObjectType    types.ObjectType
	IsNonObjectID bool
	Attrs         []*AttrMeta
	byID          map[AttrID]*AttrMeta
	StructMembers []StructMember
}

// Attr looks up an attribute by id (== name) within this object type.
func (o *ObjectMeta) Attr(id AttrID) (*AttrMeta, bool) {
	a, ok := o.byID[id]
	return a, ok
}

// Registry is the full, immutable catalogue.
type Registry struct {
	objects map[types.ObjectType]*ObjectMeta
}

// Object returns the metadata for an object type.
func (r *Registry) Object(t types.ObjectType) (*ObjectMeta, bool) {
	o, ok := r.objects[t]
	return o, ok
}

// Attr looks up an attribute by (object type, id).
func (r *Registry) Attr(t types.ObjectType, id AttrID) (*AttrMeta, bool) {
	o, ok := r.objects[t]
	if !ok {
		return nil, false
	}
	return o.Attr(id)
}

// AttrByName is an alias for Attr: the attribute id is its name.
func (r *Registry) AttrByName(t types.ObjectType, name string) (*AttrMeta, bool) {
	return r.Attr(t, AttrID(name))
}

// MustAttr looks up an attribute and panics if absent; used only at
// registry-construction time, never at request-validation time (a
// missing registry entry for a *known* attribute during a live call is
// the fatal internal-invariant case in §7, handled by the validator,
// not here).
func (r *Registry) mustAttr(t types.ObjectType, id AttrID) *AttrMeta {
	a, ok := r.Attr(t, id)
	if !ok {
		panic(fmt.Sprintf("metadata: no attribute %s on %s", id, t))
	}
	return a
}

func newObjectMeta(t types.ObjectType, isNOI bool, attrs []*AttrMeta, members []StructMember) *ObjectMeta {
	m := &ObjectMeta{
		ObjectType:    t,
		IsNonObjectID: isNOI,
		Attrs:         attrs,
		byID:          make(map[AttrID]*AttrMeta, len(attrs)),
		StructMembers: members,
	}
	for _, a := range attrs {
		a.ObjectType = t
		m.byID[a.ID] = a
	}
	return m
}

// Default is the process-wide registry, built once at package init.
var Default = buildRegistry()
