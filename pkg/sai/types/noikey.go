package types

// FdbEntryKey identifies an FDB entry. BridgeID is the documented
// "bv_id" workaround member (§9): it is typed as an OID member but its
// null-check is skipped at validation time, not here.
type FdbEntryKey struct {
	SwitchID OID
	Mac      Mac
	Vlan     uint16
	BridgeID OID
}

// Member returns the named struct-member value, matching the order the
// metadata.StructMember table for FDB_ENTRY declares.
func (k FdbEntryKey) Member(name string) (Value, bool) {
	switch name {
	case "SwitchID":
		return OIDValue(k.SwitchID), true
	case "Mac":
		return k.Mac, true
	case "Vlan":
		return U16(k.Vlan), true
	case "BridgeID":
		return OIDValue(k.BridgeID), true
	default:
		return nil, false
	}
}

// NeighborEntryKey identifies a neighbor entry.
type NeighborEntryKey struct {
	SwitchID OID
	RIF      OID
	IP       IPAddress
}

func (k NeighborEntryKey) Member(name string) (Value, bool) {
	switch name {
	case "SwitchID":
		return OIDValue(k.SwitchID), true
	case "RIF":
		return OIDValue(k.RIF), true
	case "IP":
		return k.IP, true
	default:
		return nil, false
	}
}

// RouteEntryKey identifies a route entry.
type RouteEntryKey struct {
	SwitchID OID
	VR       OID
	Dest     IPPrefix
}

func (k RouteEntryKey) Member(name string) (Value, bool) {
	switch name {
	case "SwitchID":
		return OIDValue(k.SwitchID), true
	case "VR":
		return OIDValue(k.VR), true
	case "Dest":
		return k.Dest, true
	default:
		return nil, false
	}
}

// NOIKey is implemented by every struct-keyed object's key type.
type NOIKey interface {
	Member(name string) (Value, bool)
}

// MetaKey identifies any object, OID or struct-keyed, for shadow
// database and validator lookups. Exactly one of the payload fields is
// meaningful, selected by ObjectType.
type MetaKey struct {
	ObjectType ObjectType
	OID        OID
	Fdb        FdbEntryKey
	Neighbor   NeighborEntryKey
	Route      RouteEntryKey
}

// NOIKey returns the active struct-keyed payload for this meta-key, or
// nil if ObjectType is an OID object type.
func (k MetaKey) NOIKey() NOIKey {
	switch k.ObjectType {
	case ObjectTypeFdbEntry:
		return k.Fdb
	case ObjectTypeNeighborEntry:
		return k.Neighbor
	case ObjectTypeRouteEntry:
		return k.Route
	default:
		return nil
	}
}

// SwitchOf returns the switch OID this key belongs to, whether the key
// is an OID (via SwitchIndexOf, reconstructed by the caller) or a
// struct key (read directly off the SwitchID member).
func (k MetaKey) SwitchOf() OID {
	if IsNonObjectID(k.ObjectType) {
		if v, ok := k.NOIKey().Member("SwitchID"); ok {
			if oidv, ok := v.(OIDValue); ok {
				return OID(oidv)
			}
		}
		return NullOID
	}
	return NullOID // OID objects derive their switch from the OID itself, not the key.
}

// MetaKeyForOID builds a MetaKey for an OID object.
func MetaKeyForOID(t ObjectType, oid OID) MetaKey {
	return MetaKey{ObjectType: t, OID: oid}
}
