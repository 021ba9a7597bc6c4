package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

type fdbEntryKeyWire struct {
	SwitchID string `json:"switch_id"`
	Mac      string `json:"mac"`
	Vlan     uint16 `json:"vlan"`
	BridgeID string `json:"bridge_id"`
}

type neighborEntryKeyWire struct {
	SwitchID string `json:"switch_id"`
	RIF      string `json:"rif"`
	IP       string `json:"ip"`
}

type routeEntryKeyWire struct {
	SwitchID string `json:"switch_id"`
	VR       string `json:"vr"`
	Dest     string `json:"dest"`
}

// SerializeObjectMetaKey renders a MetaKey to its canonical wire form
// (§6.2): a bare "oid:0x…" for OID objects, or
// "<OBJECT_TYPE_NAME>:<json-body>" for struct-keyed objects.
func SerializeObjectMetaKey(k types.MetaKey) (string, error) {
	if !types.IsNonObjectID(k.ObjectType) {
		return k.OID.String(), nil
	}
	switch k.ObjectType {
	case types.ObjectTypeFdbEntry:
		body, err := json.Marshal(fdbEntryKeyWire{
			SwitchID: types.OID(k.Fdb.SwitchID).String(),
			Mac:      serializeMac(k.Fdb.Mac),
			Vlan:     k.Fdb.Vlan,
			BridgeID: types.OID(k.Fdb.BridgeID).String(),
		})
		if err != nil {
			return "", err
		}
		return k.ObjectType.String() + ":" + string(body), nil

	case types.ObjectTypeNeighborEntry:
		body, err := json.Marshal(neighborEntryKeyWire{
			SwitchID: types.OID(k.Neighbor.SwitchID).String(),
			RIF:      types.OID(k.Neighbor.RIF).String(),
			IP:       serializeIPAddress(k.Neighbor.IP),
		})
		if err != nil {
			return "", err
		}
		return k.ObjectType.String() + ":" + string(body), nil

	case types.ObjectTypeRouteEntry:
		body, err := json.Marshal(routeEntryKeyWire{
			SwitchID: types.OID(k.Route.SwitchID).String(),
			VR:       types.OID(k.Route.VR).String(),
			Dest:     serializeIPPrefix(k.Route.Dest),
		})
		if err != nil {
			return "", err
		}
		return k.ObjectType.String() + ":" + string(body), nil

	default:
		return "", fmt.Errorf("codec: %s is not a struct-keyed object type", k.ObjectType)
	}
}

// DeserializeObjectMetaKey parses the wire form produced by
// SerializeObjectMetaKey back into a MetaKey. For OID object types the
// caller supplies the expected type; the OID itself carries its own
// object type, which the caller may cross-check separately.
func DeserializeObjectMetaKey(t types.ObjectType, s string) (types.MetaKey, error) {
	if !types.IsNonObjectID(t) {
		o, err := parseOIDString(s)
		if err != nil {
			return types.MetaKey{}, fmt.Errorf("codec: meta-key for %s: %w", t, err)
		}
		return types.MetaKeyForOID(t, o), nil
	}

	prefix, body, ok := strings.Cut(s, ":")
	if !ok || prefix != t.String() {
		return types.MetaKey{}, fmt.Errorf("codec: meta-key %q does not match object type %s", s, t)
	}

	switch t {
	case types.ObjectTypeFdbEntry:
		var w fdbEntryKeyWire
		if err := json.Unmarshal([]byte(body), &w); err != nil {
			return types.MetaKey{}, fmt.Errorf("codec: fdb entry meta-key: %w", err)
		}
		switchID, err := parseOIDString(w.SwitchID)
		if err != nil {
			return types.MetaKey{}, err
		}
		mac, err := parseMac(w.Mac)
		if err != nil {
			return types.MetaKey{}, err
		}
		bridgeID, err := parseOIDString(w.BridgeID)
		if err != nil {
			return types.MetaKey{}, err
		}
		return types.MetaKey{ObjectType: t, Fdb: types.FdbEntryKey{
			SwitchID: switchID, Mac: mac, Vlan: w.Vlan, BridgeID: bridgeID,
		}}, nil

	case types.ObjectTypeNeighborEntry:
		var w neighborEntryKeyWire
		if err := json.Unmarshal([]byte(body), &w); err != nil {
			return types.MetaKey{}, fmt.Errorf("codec: neighbor entry meta-key: %w", err)
		}
		switchID, err := parseOIDString(w.SwitchID)
		if err != nil {
			return types.MetaKey{}, err
		}
		rif, err := parseOIDString(w.RIF)
		if err != nil {
			return types.MetaKey{}, err
		}
		ip, err := parseIPAddress(w.IP)
		if err != nil {
			return types.MetaKey{}, err
		}
		return types.MetaKey{ObjectType: t, Neighbor: types.NeighborEntryKey{
			SwitchID: switchID, RIF: rif, IP: ip,
		}}, nil

	case types.ObjectTypeRouteEntry:
		var w routeEntryKeyWire
		if err := json.Unmarshal([]byte(body), &w); err != nil {
			return types.MetaKey{}, fmt.Errorf("codec: route entry meta-key: %w", err)
		}
		switchID, err := parseOIDString(w.SwitchID)
		if err != nil {
			return types.MetaKey{}, err
		}
		vr, err := parseOIDString(w.VR)
		if err != nil {
			return types.MetaKey{}, err
		}
		dest, err := parseIPPrefix(w.Dest)
		if err != nil {
			return types.MetaKey{}, err
		}
		return types.MetaKey{ObjectType: t, Route: types.RouteEntryKey{
			SwitchID: switchID, VR: vr, Dest: dest,
		}}, nil

	default:
		return types.MetaKey{}, fmt.Errorf("codec: %s is not a struct-keyed object type", t)
	}
}

// SerializeCompositeKey concatenates the serialized form of each
// key-flagged attribute in declaration order, matching §3.3/§4.3's
// composite-key uniqueness rule. Callers pass the attribute metas in
// the same order metadata.ObjectMeta.Attrs declares them.
func SerializeCompositeKey(metas []*metadata.AttrMeta, values map[metadata.AttrID]types.Value) (string, error) {
	var b strings.Builder
	for _, m := range metas {
		if !m.Flags.Has(metadata.FlagKey) {
			continue
		}
		v, ok := values[m.ID]
		if !ok {
			return "", fmt.Errorf("codec: composite key attribute %s missing a value", m.ID)
		}
		s, err := SerializeAttrValue(m, v, false, false)
		if err != nil {
			return "", fmt.Errorf("codec: composite key attribute %s: %w", m.ID, err)
		}
		b.WriteString(s)
		b.WriteByte('|')
	}
	return b.String(), nil
}
