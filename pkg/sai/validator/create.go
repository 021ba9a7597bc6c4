package validator

import (
	"github.com/tiglabs/sai-core/pkg/sai/codec"
	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// PreCreate runs §4.4.1 against a proposed create. mk carries the
// object's intended key (its OID already allocated by the entry
// wrapper, or its struct key); switchID is the switch the caller
// claims to be creating under.
func (v *Validator) PreCreate(mk types.MetaKey, switchID types.OID, attrs AttrList) *Error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.preCreate(mk, switchID, attrs)
}

func (v *Validator) preCreate(mk types.MetaKey, switchID types.OID, attrs AttrList) *Error {
	if len(attrs) > types.MaxListCount {
		return newErr(types.StatusInvalidParameter, "create %s: attribute count %d exceeds max", mk.ObjectType, len(attrs))
	}

	om, ok := v.Meta.Object(mk.ObjectType)
	if !ok {
		return newErr(types.StatusInvalidParameter, "create: unknown object type %s", mk.ObjectType)
	}

	if mk.ObjectType != types.ObjectTypeSwitch {
		if err := v.checkCreatePreconditions(om, mk, switchID); err != nil {
			return err
		}
	}

	for id, val := range attrs {
		m, ok := om.Attr(id)
		if !ok {
			return newErr(types.StatusInvalidParameter, "create %s: unknown attribute %s", mk.ObjectType, id)
		}
		if m.Flags.Has(metadata.FlagReadOnly) {
			return newErr(types.StatusInvalidParameter, "create %s: %s is read-only", mk.ObjectType, id)
		}
		if err := v.checkAttrValue(om, switchID, m, val); err != nil {
			return err
		}
	}

	if err := v.checkCreateMandatory(om, mk, attrs); err != nil {
		return err
	}

	if keys := keyAttrs(om); len(keys) > 0 {
		composite, err := codec.SerializeCompositeKey(keys, attrs)
		if err != nil {
			return newErr(types.StatusInvalidParameter, "create %s: %v", mk.ObjectType, err)
		}
		if v.DB.KeyExists(mk, composite) {
			return newErr(types.StatusItemAlreadyExists, "create %s: key %q already exists", mk.ObjectType, composite)
		}
	}
	return nil
}

func (v *Validator) checkCreatePreconditions(om *metadata.ObjectMeta, mk types.MetaKey, switchID types.OID) *Error {
	if !v.DB.SwitchExists(switchID) {
		return newErr(types.StatusInvalidParameter, "create %s: switch %s does not exist", mk.ObjectType, switchID)
	}

	if om.IsNonObjectID {
		nk := mk.NOIKey()
		for _, sm := range om.StructMembers {
			val, ok := nk.Member(sm.Name)
			if !ok {
				continue
			}
			oidv, isOID := val.(types.OIDValue)
			if !isOID {
				continue
			}
			oid := types.OID(oidv)
			if oid.IsNull() {
				if sm.AllowNull {
					continue
				}
				return newErr(types.StatusInvalidParameter, "create %s: struct member %s must not be NULL", mk.ObjectType, sm.Name)
			}
			ot := types.ObjectTypeOf(oid)
			if len(sm.AllowedObjectTypes) > 0 {
				allowed := false
				for _, at := range sm.AllowedObjectTypes {
					if at == ot {
						allowed = true
						break
					}
				}
				if !allowed {
					return newErr(types.StatusInvalidParameter, "create %s: struct member %s has disallowed referent type %s", mk.ObjectType, sm.Name, ot)
				}
			}
			if !v.DB.RefExists(oid) {
				return newErr(types.StatusInvalidParameter, "create %s: struct member %s references unknown object %s", mk.ObjectType, sm.Name, oid)
			}
			if types.SwitchIndexOf(oid) != types.SwitchIndexOf(switchID) {
				return newErr(types.StatusInvalidParameter, "create %s: struct member %s belongs to a different switch", mk.ObjectType, sm.Name)
			}
		}
		if v.DB.Exists(mk) {
			return newErr(types.StatusItemAlreadyExists, "create %s: entry already exists", mk.ObjectType)
		}
		return nil
	}

	if v.DB.Exists(mk) {
		return newErr(types.StatusItemAlreadyExists, "create %s: %s already exists", mk.ObjectType, mk.OID)
	}
	return nil
}

func (v *Validator) checkCreateMandatory(om *metadata.ObjectMeta, mk types.MetaKey, attrs AttrList) *Error {
	for _, m := range om.Attrs {
		if m.HasConditions() {
			matches := conditionMatches(om, m, attrs)
			_, present := attrs[m.ID]
			switch {
			case matches && !present:
				return newErr(types.StatusMandatoryAttributeMissing, "create %s: %s is mandatory given the supplied conditions", mk.ObjectType, m.ID)
			case !matches && present:
				return newErr(types.StatusInvalidParameter, "create %s: %s is not applicable given the supplied conditions", mk.ObjectType, m.ID)
			}
			continue
		}
		if metadata.IsBufferProfileThresholdAttr(mk.ObjectType, m.ID) {
			if err := v.checkBufferProfileThreshold(attrs, m); err != nil {
				return err
			}
			continue
		}
		if !m.Flags.Has(metadata.FlagMandatoryOnCreate) {
			continue
		}
		if metadata.IsAclTableRangeTypeOptionalException(mk.ObjectType, m.ID) {
			continue
		}
		if _, present := attrs[m.ID]; !present {
			return newErr(types.StatusMandatoryAttributeMissing, "create %s: %s is mandatory", mk.ObjectType, m.ID)
		}
	}
	return nil
}

// PostCreate runs §4.4.2 after the driver reports success.
func (v *Validator) PostCreate(mk types.MetaKey, switchID types.OID, attrs AttrList) *Error {
	v.mu.Lock()
	defer v.mu.Unlock()

	om, ok := v.Meta.Object(mk.ObjectType)
	if !ok {
		fatalf("post_create: no registry entry for known object type %s", mk.ObjectType)
	}

	if v.DB.Exists(mk) {
		// An entry that already exists is kept and processing
		// continues; nothing is logged or returned for it, since this
		// package has no logger of its own.
	} else if err := v.DB.Create(mk); err != nil {
		return newErr(types.StatusFailure, "post_create %s: %v", mk.ObjectType, err)
	}

	if !om.IsNonObjectID {
		if types.ObjectTypeOf(mk.OID) != mk.ObjectType {
			fatalf("post_create: oid %s does not encode object type %s", mk.OID, mk.ObjectType)
		}
		if mk.ObjectType != types.ObjectTypeSwitch && types.SwitchIndexOf(mk.OID) != types.SwitchIndexOf(switchID) {
			fatalf("post_create: oid %s does not belong to switch %s", mk.OID, switchID)
		}
		if !v.DB.RefExists(mk.OID) {
			if err := v.DB.RefInsert(mk.OID); err != nil {
				fatalf("post_create: %v", err)
			}
		}
	} else {
		nk := mk.NOIKey()
		for _, sm := range om.StructMembers {
			val, ok := nk.Member(sm.Name)
			if !ok {
				continue
			}
			if oidv, isOID := val.(types.OIDValue); isOID {
				v.DB.RefInc(types.OID(oidv))
			}
		}
	}

	for id, val := range attrs {
		m, ok := om.Attr(id)
		if !ok {
			fatalf("post_create: no registry entry for known attribute %s on %s", id, mk.ObjectType)
		}
		v.DB.RefIncList(outgoingRefs(m, val))
		if err := v.DB.Set(mk, id, val); err != nil {
			fatalf("post_create: %v", err)
		}
	}

	if keys := keyAttrs(om); len(keys) > 0 {
		composite, err := codec.SerializeCompositeKey(keys, attrs)
		if err == nil {
			_ = v.DB.KeyInsert(mk, composite)
		}
	}
	return nil
}
