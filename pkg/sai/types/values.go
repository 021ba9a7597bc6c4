package types

// ValueType enumerates every attribute-value variant the codec and
// validator understand (§3.2). Enum and enum-list values reuse the S32
// and S32List variants; the "is an enum" distinction lives in the
// attribute's metadata, not in the value itself.
type ValueType int

const (
	ValueTypeBool ValueType = iota
	ValueTypeU8
	ValueTypeS8
	ValueTypeU16
	ValueTypeS16
	ValueTypeU32
	ValueTypeS32
	ValueTypeU64
	ValueTypeS64
	ValueTypeMac
	ValueTypeIPv4
	ValueTypeIPv6
	ValueTypeIPAddress
	ValueTypeIPPrefix
	ValueTypePointer
	ValueTypeOID
	ValueTypeCharBuffer
	ValueTypeU8List
	ValueTypeS8List
	ValueTypeU16List
	ValueTypeS16List
	ValueTypeU32List
	ValueTypeS32List
	ValueTypeOIDList
	ValueTypeVlanList
	ValueTypeU32Range
	ValueTypeS32Range
	ValueTypeQosMapList
	ValueTypeTunnelMapList
	ValueTypeAclField
	ValueTypeAclAction
	ValueTypeAclCapability
)

// MaxListCount is the largest legal count for any list-typed value
// (§3.2).
const MaxListCount = 0x1000

// AddrFamily distinguishes the two IP-address families an IPAddress or
// IPPrefix value may carry.
type AddrFamily int

const (
	AddrFamilyV4 AddrFamily = iota
	AddrFamilyV6
)

// Value is the tagged union every attribute's wrapped value implements.
// Each concrete variant owns its own storage (in particular, list
// variants own their backing slice) so Clone produces an independent
// deep copy, per the "deep attribute copy" design note.
type Value interface {
	Type() ValueType
	Clone() Value
}

// Bool is the ValueTypeBool variant.
type Bool bool

func (Bool) Type() ValueType { return ValueTypeBool }
func (v Bool) Clone() Value  { return v }

// U8/S8/U16/S16/U32/S32/U64/S64 are the scalar integer variants. S32 and
// U32 additionally serve as the storage for enum and bitmask-enum
// attributes respectively.
type U8 uint8

func (U8) Type() ValueType { return ValueTypeU8 }
func (v U8) Clone() Value  { return v }

type S8 int8

func (S8) Type() ValueType { return ValueTypeS8 }
func (v S8) Clone() Value  { return v }

type U16 uint16

func (U16) Type() ValueType { return ValueTypeU16 }
func (v U16) Clone() Value  { return v }

type S16 int16

func (S16) Type() ValueType { return ValueTypeS16 }
func (v S16) Clone() Value  { return v }

type U32 uint32

func (U32) Type() ValueType { return ValueTypeU32 }
func (v U32) Clone() Value  { return v }

type S32 int32

func (S32) Type() ValueType { return ValueTypeS32 }
func (v S32) Clone() Value  { return v }

type U64 uint64

func (U64) Type() ValueType { return ValueTypeU64 }
func (v U64) Clone() Value  { return v }

type S64 int64

func (S64) Type() ValueType { return ValueTypeS64 }
func (v S64) Clone() Value  { return v }

// Mac is a 6-byte hardware address.
type Mac [6]byte

func (Mac) Type() ValueType { return ValueTypeMac }
func (v Mac) Clone() Value  { return v }

// IPv4 is a 4-byte address stored in network byte order.
type IPv4 [4]byte

func (IPv4) Type() ValueType { return ValueTypeIPv4 }
func (v IPv4) Clone() Value  { return v }

// IPv6 is a 16-byte address stored in network byte order.
type IPv6 [16]byte

func (IPv6) Type() ValueType { return ValueTypeIPv6 }
func (v IPv6) Clone() Value  { return v }

// IPAddress picks its rendering by Family.
type IPAddress struct {
	Family AddrFamily
	V4     IPv4
	V6     IPv6
}

func (IPAddress) Type() ValueType { return ValueTypeIPAddress }
func (v IPAddress) Clone() Value  { return v }

// IPPrefix is an address plus a prefix length; the mask is re-derived
// from PrefixLen on serialization rather than stored redundantly.
type IPPrefix struct {
	Family   AddrFamily
	Addr     IPv6 // V6 addresses only; V4 prefixes are stored in AddrV4.
	AddrV4   IPv4
	PrefixLen uint8
}

func (IPPrefix) Type() ValueType { return ValueTypeIPPrefix }
func (v IPPrefix) Clone() Value  { return v }

// Pointer is an opaque 64-bit value rendered as hex.
type Pointer uint64

func (Pointer) Type() ValueType { return ValueTypePointer }
func (v Pointer) Clone() Value  { return v }

// OIDValue wraps an OID as an attribute value (distinct from the bare
// OID type so it satisfies the Value interface).
type OIDValue OID

func (OIDValue) Type() ValueType { return ValueTypeOID }
func (v OIDValue) Clone() Value  { return v }

// CharBuffer is a fixed-length (32 byte) character buffer; Bytes holds
// only the meaningful prefix (NUL-terminated semantics live in the
// codec, not here).
type CharBuffer struct {
	Bytes []byte
}

func (CharBuffer) Type() ValueType { return ValueTypeCharBuffer }
func (v CharBuffer) Clone() Value {
	cp := make([]byte, len(v.Bytes))
	copy(cp, v.Bytes)
	return CharBuffer{Bytes: cp}
}

// listValue is the shared shape of every homogeneous list variant. A
// nil Items means "null pointer"; a non-nil, possibly empty, Items
// means "pointer present with this many elements" (§3.2).
type U8List struct{ Items []uint8 }

func (U8List) Type() ValueType { return ValueTypeU8List }
func (v U8List) Clone() Value  { return U8List{Items: cloneSlice(v.Items)} }

type S8List struct{ Items []int8 }

func (S8List) Type() ValueType { return ValueTypeS8List }
func (v S8List) Clone() Value  { return S8List{Items: cloneSlice(v.Items)} }

type U16List struct{ Items []uint16 }

func (U16List) Type() ValueType { return ValueTypeU16List }
func (v U16List) Clone() Value  { return U16List{Items: cloneSlice(v.Items)} }

type S16List struct{ Items []int16 }

func (S16List) Type() ValueType { return ValueTypeS16List }
func (v S16List) Clone() Value  { return S16List{Items: cloneSlice(v.Items)} }

// U32List also backs bitmask-style attributes; S32List also backs
// enum-list attributes per the metadata's IsEnumList flag.
type U32List struct{ Items []uint32 }

func (U32List) Type() ValueType { return ValueTypeU32List }
func (v U32List) Clone() Value  { return U32List{Items: cloneSlice(v.Items)} }

type S32List struct{ Items []int32 }

func (S32List) Type() ValueType { return ValueTypeS32List }
func (v S32List) Clone() Value  { return S32List{Items: cloneSlice(v.Items)} }

type OIDList struct{ Items []OID }

func (OIDList) Type() ValueType { return ValueTypeOIDList }
func (v OIDList) Clone() Value  { return OIDList{Items: cloneSlice(v.Items)} }

type VlanList struct{ Items []uint16 }

func (VlanList) Type() ValueType { return ValueTypeVlanList }
func (v VlanList) Clone() Value  { return VlanList{Items: cloneSlice(v.Items)} }

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// U32Range and S32Range are closed integer ranges.
type U32Range struct{ Min, Max uint32 }

func (U32Range) Type() ValueType { return ValueTypeU32Range }
func (v U32Range) Clone() Value  { return v }

type S32Range struct{ Min, Max int32 }

func (S32Range) Type() ValueType { return ValueTypeS32Range }
func (v S32Range) Clone() Value  { return v }

// PacketColor is the enum carried by qos-map entries.
type PacketColor int32

const (
	PacketColorGreen PacketColor = iota
	PacketColorYellow
	PacketColorRed
)

func (c PacketColor) String() string {
	switch c {
	case PacketColorGreen:
		return "SAI_PACKET_COLOR_GREEN"
	case PacketColorYellow:
		return "SAI_PACKET_COLOR_YELLOW"
	case PacketColorRed:
		return "SAI_PACKET_COLOR_RED"
	default:
		return "SAI_PACKET_COLOR_UNKNOWN"
	}
}

// QosMapData is the key or value half of a qos-map entry.
type QosMapData struct {
	TC    uint8
	DSCP  uint8
	Dot1P uint8
	Prio  uint8
	PG    uint8
	Qidx  uint8
	Color PacketColor
}

// QosMapEntry is one key/value pair in a qos-map list.
type QosMapEntry struct {
	Key   QosMapData
	Value QosMapData
}

// QosMapList is the ValueTypeQosMapList variant.
type QosMapList struct{ Items []QosMapEntry }

func (QosMapList) Type() ValueType { return ValueTypeQosMapList }
func (v QosMapList) Clone() Value  { return QosMapList{Items: cloneSlice(v.Items)} }

// TunnelMapData is the key or value half of a tunnel-map entry.
type TunnelMapData struct {
	OEcn uint8
	UEcn uint8
	Vlan uint16
	VNI  uint32
}

// TunnelMapEntry is one key/value pair in a tunnel-map list.
type TunnelMapEntry struct {
	Key   TunnelMapData
	Value TunnelMapData
}

// TunnelMapList is the ValueTypeTunnelMapList variant.
type TunnelMapList struct{ Items []TunnelMapEntry }

func (TunnelMapList) Type() ValueType { return ValueTypeTunnelMapList }
func (v TunnelMapList) Clone() Value  { return TunnelMapList{Items: cloneSlice(v.Items)} }

// AclField replaces the C "enable bit + payload" pattern: Disabled
// carries no payload at all, Enabled carries a primitive Data value and
// a Mask value of the same primitive shape.
type AclField struct {
	Enabled bool
	Data    Value
	Mask    Value
}

func (AclField) Type() ValueType { return ValueTypeAclField }
func (v AclField) Clone() Value {
	out := AclField{Enabled: v.Enabled}
	if v.Data != nil {
		out.Data = v.Data.Clone()
	}
	if v.Mask != nil {
		out.Mask = v.Mask.Clone()
	}
	return out
}

// AclAction is AclField without a mask.
type AclAction struct {
	Enabled bool
	Data    Value
}

func (AclAction) Type() ValueType { return ValueTypeAclAction }
func (v AclAction) Clone() Value {
	out := AclAction{Enabled: v.Enabled}
	if v.Data != nil {
		out.Data = v.Data.Clone()
	}
	return out
}

// AclCapability describes whether a capability is mandatory and which
// actions/fields it enumerates.
type AclCapability struct {
	Mandatory bool
	Enum      []int32
}

func (AclCapability) Type() ValueType { return ValueTypeAclCapability }
func (v AclCapability) Clone() Value {
	return AclCapability{Mandatory: v.Mandatory, Enum: cloneSlice(v.Enum)}
}
