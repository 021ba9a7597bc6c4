// Package codec converts attribute values to and from the stable
// textual wire form used for persistence, RPC and notification
// transport (§4.2). Every function here is pure: it never consults the
// shadow database.
package codec

import (
	"encoding/json"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// CharBufferMax is the fixed capacity of a char-buffer attribute value,
// including its terminating NUL (§3.2/§8.2).
const CharBufferMax = 32

// SerializeAttrValue renders v to its canonical string form. hex only
// affects unsigned-integer scalars and the items of unsigned-integer
// lists (§4.2); it is ignored for every other variant. countOnly
// captures only the list length, emitting "count:null" (or the
// structured-list equivalent) instead of materializing items.
func SerializeAttrValue(meta *metadata.AttrMeta, v types.Value, countOnly, hex bool) (string, error) {
	switch meta.ValueType {
	case types.ValueTypeBool:
		b, ok := v.(types.Bool)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		if b {
			return "true", nil
		}
		return "false", nil

	case types.ValueTypeU8, types.ValueTypeU16, types.ValueTypeU32, types.ValueTypeU64:
		return serializeUint(meta, v, hex)

	case types.ValueTypeS8, types.ValueTypeS16, types.ValueTypeS32, types.ValueTypeS64:
		return serializeInt(meta, v)

	case types.ValueTypeMac:
		m, ok := v.(types.Mac)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return serializeMac(m), nil

	case types.ValueTypeIPv4:
		a, ok := v.(types.IPv4)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return net.IP(a[:]).String(), nil

	case types.ValueTypeIPv6:
		a, ok := v.(types.IPv6)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return net.IP(a[:]).String(), nil

	case types.ValueTypeIPAddress:
		a, ok := v.(types.IPAddress)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return serializeIPAddress(a), nil

	case types.ValueTypeIPPrefix:
		p, ok := v.(types.IPPrefix)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return serializeIPPrefix(p), nil

	case types.ValueTypePointer:
		p, ok := v.(types.Pointer)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return fmt.Sprintf("0x%x", uint64(p)), nil

	case types.ValueTypeOID:
		o, ok := v.(types.OIDValue)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return types.OID(o).String(), nil

	case types.ValueTypeCharBuffer:
		c, ok := v.(types.CharBuffer)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return serializeCharBuffer(c), nil

	case types.ValueTypeU8List, types.ValueTypeS8List, types.ValueTypeU16List,
		types.ValueTypeS16List, types.ValueTypeU32List, types.ValueTypeS32List,
		types.ValueTypeOIDList, types.ValueTypeVlanList:
		return serializeList(meta, v, countOnly, hex)

	case types.ValueTypeU32Range:
		r, ok := v.(types.U32Range)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		if r.Min > r.Max {
			return "", fmt.Errorf("codec: range min %d > max %d", r.Min, r.Max)
		}
		return fmt.Sprintf("%d,%d", r.Min, r.Max), nil

	case types.ValueTypeS32Range:
		r, ok := v.(types.S32Range)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		if r.Min > r.Max {
			return "", fmt.Errorf("codec: range min %d > max %d", r.Min, r.Max)
		}
		return fmt.Sprintf("%d,%d", r.Min, r.Max), nil

	case types.ValueTypeQosMapList:
		l, ok := v.(types.QosMapList)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return serializeQosMapList(l, countOnly)

	case types.ValueTypeTunnelMapList:
		l, ok := v.(types.TunnelMapList)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return serializeTunnelMapList(l, countOnly)

	case types.ValueTypeAclField:
		f, ok := v.(types.AclField)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return serializeAclField(meta, f)

	case types.ValueTypeAclAction:
		a, ok := v.(types.AclAction)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return serializeAclAction(meta, a)

	case types.ValueTypeAclCapability:
		c, ok := v.(types.AclCapability)
		if !ok {
			return "", typeMismatch(meta, v)
		}
		return serializeAclCapability(c), nil

	default:
		return "", fmt.Errorf("codec: unhandled value type %v", meta.ValueType)
	}
}

func typeMismatch(meta *metadata.AttrMeta, v types.Value) error {
	return fmt.Errorf("codec: attribute %s expects %v, got %T", meta.ID, meta.ValueType, v)
}

func serializeUint(meta *metadata.AttrMeta, v types.Value, hex bool) (string, error) {
	var u uint64
	switch t := v.(type) {
	case types.U8:
		u = uint64(t)
	case types.U16:
		u = uint64(t)
	case types.U32:
		u = uint64(t)
	case types.U64:
		u = uint64(t)
	default:
		return "", typeMismatch(meta, v)
	}
	if meta.IsEnum && meta.Enum != nil {
		if name, ok := meta.Enum.Names[int32(u)]; ok {
			return name, nil
		}
	}
	if hex {
		return fmt.Sprintf("0x%x", u), nil
	}
	return strconv.FormatUint(u, 10), nil
}

func serializeInt(meta *metadata.AttrMeta, v types.Value) (string, error) {
	var s int64
	switch t := v.(type) {
	case types.S8:
		s = int64(t)
	case types.S16:
		s = int64(t)
	case types.S32:
		s = int64(t)
	case types.S64:
		s = int64(t)
	default:
		return "", typeMismatch(meta, v)
	}
	if meta.IsEnum && meta.Enum != nil {
		if name, ok := meta.Enum.Names[int32(s)]; ok {
			return name, nil
		}
	}
	return strconv.FormatInt(s, 10), nil
}

func serializeMac(m types.Mac) string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", m[0], m[1], m[2], m[3], m[4], m[5])
}

func serializeIPAddress(a types.IPAddress) string {
	if a.Family == types.AddrFamilyV4 {
		return net.IP(a.V4[:]).String()
	}
	return net.IP(a.V6[:]).String()
}

func serializeIPPrefix(p types.IPPrefix) string {
	if p.Family == types.AddrFamilyV4 {
		return fmt.Sprintf("%s/%d", net.IP(p.AddrV4[:]).String(), p.PrefixLen)
	}
	return fmt.Sprintf("%s/%d", net.IP(p.Addr[:]).String(), p.PrefixLen)
}

func serializeCharBuffer(c types.CharBuffer) string {
	var b strings.Builder
	for _, ch := range c.Bytes {
		switch {
		case ch == '\\':
			b.WriteString(`\\`)
		case ch >= 0x20 && ch <= 0x7E:
			b.WriteByte(ch)
		default:
			fmt.Fprintf(&b, `\x%02X`, ch)
		}
	}
	return b.String()
}

func serializeAclCapability(c types.AclCapability) string {
	parts := make([]string, len(c.Enum))
	for i, e := range c.Enum {
		parts[i] = strconv.FormatInt(int64(e), 10)
	}
	return fmt.Sprintf("%t:%s", c.Mandatory, strings.Join(parts, ","))
}

type qosMapDataWire struct {
	TC    uint8  `json:"tc"`
	DSCP  uint8  `json:"dscp"`
	Dot1P uint8  `json:"dot1p"`
	Prio  uint8  `json:"prio"`
	PG    uint8  `json:"pg"`
	Qidx  uint8  `json:"qidx"`
	Color string `json:"color"`
}

type qosMapEntryWire struct {
	Key   qosMapDataWire `json:"key"`
	Value qosMapDataWire `json:"value"`
}

type qosMapListWire struct {
	Count int               `json:"count"`
	List  []qosMapEntryWire `json:"list"`
}

func toQosMapDataWire(d types.QosMapData) qosMapDataWire {
	return qosMapDataWire{TC: d.TC, DSCP: d.DSCP, Dot1P: d.Dot1P, Prio: d.Prio, PG: d.PG, Qidx: d.Qidx, Color: d.Color.String()}
}

func serializeQosMapList(l types.QosMapList, countOnly bool) (string, error) {
	w := qosMapListWire{Count: len(l.Items)}
	if l.Items == nil || countOnly {
		b, err := json.Marshal(struct {
			Count int                `json:"count"`
			List  *[]qosMapEntryWire `json:"list"`
		}{Count: w.Count, List: nil})
		return string(b), err
	}
	w.List = make([]qosMapEntryWire, len(l.Items))
	for i, e := range l.Items {
		w.List[i] = qosMapEntryWire{Key: toQosMapDataWire(e.Key), Value: toQosMapDataWire(e.Value)}
	}
	b, err := json.Marshal(w)
	return string(b), err
}

type tunnelMapDataWire struct {
	OEcn uint8  `json:"oecn"`
	UEcn uint8  `json:"uecn"`
	Vlan uint16 `json:"vlan"`
	VNI  uint32 `json:"vni"`
}

type tunnelMapEntryWire struct {
	Key   tunnelMapDataWire `json:"key"`
	Value tunnelMapDataWire `json:"value"`
}

func toTunnelMapDataWire(d types.TunnelMapData) tunnelMapDataWire {
	return tunnelMapDataWire{OEcn: d.OEcn, UEcn: d.UEcn, Vlan: d.Vlan, VNI: d.VNI}
}

func serializeTunnelMapList(l types.TunnelMapList, countOnly bool) (string, error) {
	if l.Items == nil || countOnly {
		b, err := json.Marshal(struct {
			Count int                   `json:"count"`
			List  *[]tunnelMapEntryWire `json:"list"`
		}{Count: len(l.Items), List: nil})
		return string(b), err
	}
	w := struct {
		Count int                  `json:"count"`
		List  []tunnelMapEntryWire `json:"list"`
	}{Count: len(l.Items), List: make([]tunnelMapEntryWire, len(l.Items))}
	for i, e := range l.Items {
		w.List[i] = tunnelMapEntryWire{Key: toTunnelMapDataWire(e.Key), Value: toTunnelMapDataWire(e.Value)}
	}
	b, err := json.Marshal(w)
	return string(b), err
}
