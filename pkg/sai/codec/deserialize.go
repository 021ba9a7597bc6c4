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

// DeserializeAttrValue parses s into the Value variant meta.ValueType
// names. A list in the "count:null" shape deserializes to a nil-backed
// list rather than an error.
func DeserializeAttrValue(meta *metadata.AttrMeta, s string) (types.Value, error) {
	switch meta.ValueType {
	case types.ValueTypeBool:
		switch s {
		case "true":
			return types.Bool(true), nil
		case "false":
			return types.Bool(false), nil
		default:
			return nil, fmt.Errorf("codec: invalid bool %q for %s", s, meta.ID)
		}

	case types.ValueTypeU8:
		return parseUint(meta, s, 8, func(u uint64) types.Value { return types.U8(u) })
	case types.ValueTypeU16:
		return parseUint(meta, s, 16, func(u uint64) types.Value { return types.U16(u) })
	case types.ValueTypeU32:
		return parseUint(meta, s, 32, func(u uint64) types.Value { return types.U32(u) })
	case types.ValueTypeU64:
		return parseUint(meta, s, 64, func(u uint64) types.Value { return types.U64(u) })

	case types.ValueTypeS8:
		return parseInt(meta, s, 8, func(v int64) types.Value { return types.S8(v) })
	case types.ValueTypeS16:
		return parseInt(meta, s, 16, func(v int64) types.Value { return types.S16(v) })
	case types.ValueTypeS32:
		return parseInt(meta, s, 32, func(v int64) types.Value { return types.S32(v) })
	case types.ValueTypeS64:
		return parseInt(meta, s, 64, func(v int64) types.Value { return types.S64(v) })

	case types.ValueTypeMac:
		return parseMac(s)

	case types.ValueTypeIPv4:
		return parseIPv4(s)

	case types.ValueTypeIPv6:
		return parseIPv6(s)

	case types.ValueTypeIPAddress:
		return parseIPAddress(s)

	case types.ValueTypeIPPrefix:
		return parseIPPrefix(s)

	case types.ValueTypePointer:
		u, err := strconv.ParseUint(strings.TrimPrefix(s, "0x"), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("codec: invalid pointer %q for %s: %w", s, meta.ID, err)
		}
		return types.Pointer(u), nil

	case types.ValueTypeOID:
		o, err := parseOIDString(s)
		if err != nil {
			return nil, fmt.Errorf("codec: %s: %w", meta.ID, err)
		}
		return types.OIDValue(o), nil

	case types.ValueTypeCharBuffer:
		return deserializeCharBuffer(meta, s)

	case types.ValueTypeU8List, types.ValueTypeS8List, types.ValueTypeU16List,
		types.ValueTypeS16List, types.ValueTypeU32List, types.ValueTypeS32List,
		types.ValueTypeOIDList, types.ValueTypeVlanList:
		return deserializeList(meta, s)

	case types.ValueTypeU32Range:
		min, max, err := parseRangePair(s)
		if err != nil {
			return nil, fmt.Errorf("codec: %s: %w", meta.ID, err)
		}
		if min < 0 || max < 0 {
			return nil, fmt.Errorf("codec: negative bound in unsigned range %q for %s", s, meta.ID)
		}
		if min > max {
			return nil, fmt.Errorf("codec: range min %d > max %d for %s", min, max, meta.ID)
		}
		return types.U32Range{Min: uint32(min), Max: uint32(max)}, nil

	case types.ValueTypeS32Range:
		min, max, err := parseRangePair(s)
		if err != nil {
			return nil, fmt.Errorf("codec: %s: %w", meta.ID, err)
		}
		if min > max {
			return nil, fmt.Errorf("codec: range min %d > max %d for %s", min, max, meta.ID)
		}
		return types.S32Range{Min: int32(min), Max: int32(max)}, nil

	case types.ValueTypeQosMapList:
		return deserializeQosMapList(meta, s)

	case types.ValueTypeTunnelMapList:
		return deserializeTunnelMapList(meta, s)

	case types.ValueTypeAclField:
		return deserializeAclField(meta, s)

	case types.ValueTypeAclAction:
		return deserializeAclAction(meta, s)

	default:
		return nil, fmt.Errorf("codec: unhandled value type %v for %s", meta.ValueType, meta.ID)
	}
}

func parseUint(meta *metadata.AttrMeta, s string, bits int, wrap func(uint64) types.Value) (types.Value, error) {
	if meta.IsEnum && meta.Enum != nil {
		if v, ok := reverseEnumLookup(meta.Enum, s); ok {
			return wrap(uint64(v)), nil
		}
	}
	u, err := strconv.ParseUint(s, 0, bits)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid unsigned integer %q for %s: %w", s, meta.ID, err)
	}
	return wrap(u), nil
}

func parseInt(meta *metadata.AttrMeta, s string, bits int, wrap func(int64) types.Value) (types.Value, error) {
	if meta.IsEnum && meta.Enum != nil {
		if v, ok := reverseEnumLookup(meta.Enum, s); ok {
			return wrap(int64(v)), nil
		}
	}
	v, err := strconv.ParseInt(s, 0, bits)
	if err != nil {
		return nil, fmt.Errorf("codec: invalid signed integer %q for %s: %w", s, meta.ID, err)
	}
	return wrap(v), nil
}

func parseMac(s string) (types.Mac, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 6 {
		return types.Mac{}, fmt.Errorf("codec: invalid mac %q", s)
	}
	var m types.Mac
	for i, p := range parts {
		b, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return types.Mac{}, fmt.Errorf("codec: invalid mac %q: %w", s, err)
		}
		m[i] = byte(b)
	}
	return m, nil
}

func parseIPv4(s string) (types.IPv4, error) {
	ip := net.ParseIP(s)
	v4 := ip.To4()
	if v4 == nil {
		return types.IPv4{}, fmt.Errorf("codec: invalid ipv4 %q", s)
	}
	var out types.IPv4
	copy(out[:], v4)
	return out, nil
}

func parseIPv6(s string) (types.IPv6, error) {
	ip := net.ParseIP(s)
	v6 := ip.To16()
	if v6 == nil {
		return types.IPv6{}, fmt.Errorf("codec: invalid ipv6 %q", s)
	}
	var out types.IPv6
	copy(out[:], v6)
	return out, nil
}

func parseIPAddress(s string) (types.IPAddress, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return types.IPAddress{}, fmt.Errorf("codec: invalid ip address %q", s)
	}
	if v4 := ip.To4(); v4 != nil && !strings.Contains(s, ":") {
		var a types.IPv4
		copy(a[:], v4)
		return types.IPAddress{Family: types.AddrFamilyV4, V4: a}, nil
	}
	v6 := ip.To16()
	var a types.IPv6
	copy(a[:], v6)
	return types.IPAddress{Family: types.AddrFamilyV6, V6: a}, nil
}

// parseIPPrefix accepts either the canonical "<addr>/<plen>" CIDR form
// or a raw "<addr>/<mask>" form, where <mask> is itself an address in
// the same family (e.g. "255.255.255.0" or "ffff:ffff:ffff:ff00::").
// The latter is the shape a route entry's destination takes coming off
// the wire as a sai_ip_prefix_t address-plus-mask pair; a mask with a
// 1-bit after a 0-bit is rejected here, before any IPPrefix value
// exists.
func parseIPPrefix(s string) (types.IPPrefix, error) {
	addr, maskPart, ok := strings.Cut(s, "/")
	if !ok {
		return types.IPPrefix{}, fmt.Errorf("codec: invalid ip prefix %q, missing /", s)
	}
	plen, err := strconv.Atoi(maskPart)
	if err != nil {
		plen, err = prefixLenFromMaskString(maskPart)
		if err != nil {
			return types.IPPrefix{}, fmt.Errorf("codec: invalid prefix mask %q: %w", maskPart, err)
		}
	}
	ip := net.ParseIP(addr)
	if ip == nil {
		return types.IPPrefix{}, fmt.Errorf("codec: invalid ip prefix address %q", addr)
	}
	if v4 := ip.To4(); v4 != nil && !strings.Contains(addr, ":") {
		if plen < 0 || plen > 32 {
			return types.IPPrefix{}, fmt.Errorf("codec: ipv4 prefix length %d out of range", plen)
		}
		var a types.IPv4
		copy(a[:], v4)
		return types.IPPrefix{Family: types.AddrFamilyV4, AddrV4: a, PrefixLen: uint8(plen)}, nil
	}
	if plen < 0 || plen > 128 {
		return types.IPPrefix{}, fmt.Errorf("codec: ipv6 prefix length %d out of range", plen)
	}
	v6 := ip.To16()
	var a types.IPv6
	copy(a[:], v6)
	return types.IPPrefix{Family: types.AddrFamilyV6, Addr: a, PrefixLen: uint8(plen)}, nil
}

// prefixLenFromMaskString parses s as an address-form mask (rather
// than a decimal prefix length) and reduces it to a prefix length via
// PrefixLenFromMask, rejecting a discontiguous mask.
func prefixLenFromMaskString(s string) (int, error) {
	ip := net.ParseIP(s)
	if ip == nil {
		return 0, fmt.Errorf("not a decimal prefix length or a mask address")
	}
	raw := ip.To4()
	if raw == nil || strings.Contains(s, ":") {
		raw = ip.To16()
	}
	return PrefixLenFromMask(raw)
}

func parseOIDString(s string) (types.OID, error) {
	hex := strings.TrimPrefix(s, "oid:0x")
	if hex == s {
		return 0, fmt.Errorf("invalid oid %q, want oid:0x<hex>", s)
	}
	u, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid oid %q: %w", s, err)
	}
	return types.OID(u), nil
}

func parseRangePair(s string) (int64, int64, error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("malformed range %q, want min,max", s)
	}
	min, err := strconv.ParseInt(strings.TrimSpace(lo), 0, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range min %q: %w", lo, err)
	}
	max, err := strconv.ParseInt(strings.TrimSpace(hi), 0, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range max %q: %w", hi, err)
	}
	return min, max, nil
}

// deserializeCharBuffer decodes the escape form back into bytes. An
// empty result, or one exceeding CharBufferMax-1 meaningful bytes
// (leaving no room for the implicit NUL terminator), is rejected
// (§8.2).
func deserializeCharBuffer(meta *metadata.AttrMeta, s string) (types.Value, error) {
	var out []byte
	for i := 0; i < len(s); {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '\\':
			out = append(out, '\\')
			i += 2
		case s[i] == '\\' && i+3 < len(s) && s[i+1] == 'x':
			b, err := strconv.ParseUint(s[i+2:i+4], 16, 8)
			if err != nil {
				return nil, fmt.Errorf("codec: invalid char-buffer escape %q for %s: %w", s[i:i+4], meta.ID, err)
			}
			out = append(out, byte(b))
			i += 4
		default:
			out = append(out, s[i])
			i++
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("codec: char-buffer attribute %s must not be empty", meta.ID)
	}
	if len(out) > CharBufferMax-1 {
		return nil, fmt.Errorf("codec: char-buffer attribute %s exceeds %d bytes", meta.ID, CharBufferMax-1)
	}
	return types.CharBuffer{Bytes: out}, nil
}

func fromQosMapDataWire(w qosMapDataWire) (types.QosMapData, error) {
	color, err := parsePacketColor(w.Color)
	if err != nil {
		return types.QosMapData{}, err
	}
	return types.QosMapData{TC: w.TC, DSCP: w.DSCP, Dot1P: w.Dot1P, Prio: w.Prio, PG: w.PG, Qidx: w.Qidx, Color: color}, nil
}

func parsePacketColor(s string) (types.PacketColor, error) {
	switch s {
	case types.PacketColorGreen.String():
		return types.PacketColorGreen, nil
	case types.PacketColorYellow.String():
		return types.PacketColorYellow, nil
	case types.PacketColorRed.String():
		return types.PacketColorRed, nil
	default:
		return 0, fmt.Errorf("codec: invalid packet color %q", s)
	}
}

func deserializeQosMapList(meta *metadata.AttrMeta, s string) (types.Value, error) {
	var w struct {
		Count int                `json:"count"`
		List  *[]qosMapEntryWire `json:"list"`
	}
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return nil, fmt.Errorf("codec: invalid qos-map-list %s: %w", meta.ID, err)
	}
	if w.List == nil {
		return types.QosMapList{}, nil
	}
	if len(*w.List) != w.Count {
		return nil, fmt.Errorf("codec: qos-map-list %s declares count %d but has %d entries", meta.ID, w.Count, len(*w.List))
	}
	items := make([]types.QosMapEntry, len(*w.List))
	for i, e := range *w.List {
		k, err := fromQosMapDataWire(e.Key)
		if err != nil {
			return nil, fmt.Errorf("codec: qos-map-list %s entry %d key: %w", meta.ID, i, err)
		}
		v, err := fromQosMapDataWire(e.Value)
		if err != nil {
			return nil, fmt.Errorf("codec: qos-map-list %s entry %d value: %w", meta.ID, i, err)
		}
		items[i] = types.QosMapEntry{Key: k, Value: v}
	}
	return types.QosMapList{Items: items}, nil
}

func deserializeTunnelMapList(meta *metadata.AttrMeta, s string) (types.Value, error) {
	var w struct {
		Count int                   `json:"count"`
		List  *[]tunnelMapEntryWire `json:"list"`
	}
	if err := json.Unmarshal([]byte(s), &w); err != nil {
		return nil, fmt.Errorf("codec: invalid tunnel-map-list %s: %w", meta.ID, err)
	}
	if w.List == nil {
		return types.TunnelMapList{}, nil
	}
	if len(*w.List) != w.Count {
		return nil, fmt.Errorf("codec: tunnel-map-list %s declares count %d but has %d entries", meta.ID, w.Count, len(*w.List))
	}
	items := make([]types.TunnelMapEntry, len(*w.List))
	for i, e := range *w.List {
		items[i] = types.TunnelMapEntry{
			Key:   types.TunnelMapData{OEcn: e.Key.OEcn, UEcn: e.Key.UEcn, Vlan: e.Key.Vlan, VNI: e.Key.VNI},
			Value: types.TunnelMapData{OEcn: e.Value.OEcn, UEcn: e.Value.UEcn, Vlan: e.Value.Vlan, VNI: e.Value.VNI},
		}
	}
	return types.TunnelMapList{Items: items}, nil
}

// deserializePrimitive parses a bare primitive string (as used inside
// an ACL field/action) according to vt, independent of any attribute
// wrapper. meta, when non-nil, supplies enum naming for S32/U32 data.
func deserializePrimitive(meta *metadata.AttrMeta, s string, vt types.ValueType) (types.Value, error) {
	switch vt {
	case types.ValueTypeBool:
		switch s {
		case "true":
			return types.Bool(true), nil
		case "false":
			return types.Bool(false), nil
		default:
			return nil, fmt.Errorf("invalid bool %q", s)
		}
	case types.ValueTypeU8, types.ValueTypeU16, types.ValueTypeU32, types.ValueTypeU64:
		bits := bitsForUint(vt)
		if meta != nil && meta.IsEnum && meta.Enum != nil {
			if v, ok := reverseEnumLookup(meta.Enum, s); ok {
				return wrapUint(vt, uint64(v)), nil
			}
		}
		u, err := strconv.ParseUint(s, 0, bits)
		if err != nil {
			return nil, fmt.Errorf("invalid unsigned integer %q: %w", s, err)
		}
		return wrapUint(vt, u), nil
	case types.ValueTypeS8, types.ValueTypeS16, types.ValueTypeS32, types.ValueTypeS64:
		bits := bitsForInt(vt)
		if meta != nil && meta.IsEnum && meta.Enum != nil {
			if v, ok := reverseEnumLookup(meta.Enum, s); ok {
				return wrapInt(vt, int64(v)), nil
			}
		}
		n, err := strconv.ParseInt(s, 0, bits)
		if err != nil {
			return nil, fmt.Errorf("invalid signed integer %q: %w", s, err)
		}
		return wrapInt(vt, n), nil
	case types.ValueTypeMac:
		return parseMac(s)
	case types.ValueTypeIPv4:
		return parseIPv4(s)
	case types.ValueTypeIPv6:
		return parseIPv6(s)
	case types.ValueTypeIPAddress:
		return parseIPAddress(s)
	case types.ValueTypeOID:
		o, err := parseOIDString(s)
		if err != nil {
			return nil, err
		}
		return types.OIDValue(o), nil
	default:
		return nil, fmt.Errorf("unsupported acl primitive type %v", vt)
	}
}

func bitsForUint(vt types.ValueType) int {
	switch vt {
	case types.ValueTypeU8:
		return 8
	case types.ValueTypeU16:
		return 16
	case types.ValueTypeU32:
		return 32
	default:
		return 64
	}
}

func bitsForInt(vt types.ValueType) int {
	switch vt {
	case types.ValueTypeS8:
		return 8
	case types.ValueTypeS16:
		return 16
	case types.ValueTypeS32:
		return 32
	default:
		return 64
	}
}

func wrapUint(vt types.ValueType, u uint64) types.Value {
	switch vt {
	case types.ValueTypeU8:
		return types.U8(u)
	case types.ValueTypeU16:
		return types.U16(u)
	case types.ValueTypeU32:
		return types.U32(u)
	default:
		return types.U64(u)
	}
}

func wrapInt(vt types.ValueType, n int64) types.Value {
	switch vt {
	case types.ValueTypeS8:
		return types.S8(n)
	case types.ValueTypeS16:
		return types.S16(n)
	case types.ValueTypeS32:
		return types.S32(n)
	default:
		return types.S64(n)
	}
}
