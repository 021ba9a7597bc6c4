package codec

import (
	"fmt"
	"strings"

	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// serializeAclField renders an AclField as "disabled" when !Enabled,
// otherwise as "<data>&mask:<mask>" (§4.2/§8.3's enum-with-mask
// scenario). Data uses the field's own enum metadata when present;
// Mask is rendered without enum names and with hex on, so an unsigned
// mask takes the scenario's "&mask:0x..." form and a signed mask is
// rendered in decimal.
func serializeAclField(meta *metadata.AttrMeta, f types.AclField) (string, error) {
	if !f.Enabled {
		return "disabled", nil
	}
	data, err := serializePrimitive(meta, f.Data, false)
	if err != nil {
		return "", fmt.Errorf("codec: acl field %s data: %w", meta.ID, err)
	}
	mask, err := serializePrimitive(nil, f.Mask, true)
	if err != nil {
		return "", fmt.Errorf("codec: acl field %s mask: %w", meta.ID, err)
	}
	return fmt.Sprintf("%s&mask:%s", data, mask), nil
}

// serializeAclAction renders an AclAction as "disabled" or its bare
// primitive data form; actions carry no mask.
func serializeAclAction(meta *metadata.AttrMeta, a types.AclAction) (string, error) {
	if !a.Enabled {
		return "disabled", nil
	}
	return serializePrimitive(meta, a.Data, false)
}

// serializePrimitive renders a bare Value outside of any attribute
// wrapper, as used for ACL field/action payloads and masks. meta is
// optional: when non-nil and the attribute is an enum, S32/U32 values
// are rendered by name; pass nil (as for masks) to always render
// numerically.
func serializePrimitive(meta *metadata.AttrMeta, v types.Value, hex bool) (string, error) {
	if v == nil {
		return "", fmt.Errorf("codec: nil acl primitive")
	}
	switch t := v.(type) {
	case types.Bool:
		if t {
			return "true", nil
		}
		return "false", nil
	case types.U8:
		return uintPrimitive(meta, uint64(t), hex), nil
	case types.U16:
		return uintPrimitive(meta, uint64(t), hex), nil
	case types.U32:
		return uintPrimitive(meta, uint64(t), hex), nil
	case types.U64:
		return uintPrimitive(meta, uint64(t), hex), nil
	case types.S8:
		return intPrimitive(meta, int64(t)), nil
	case types.S16:
		return intPrimitive(meta, int64(t)), nil
	case types.S32:
		return intPrimitive(meta, int64(t)), nil
	case types.S64:
		return intPrimitive(meta, int64(t)), nil
	case types.Mac:
		return serializeMac(t), nil
	case types.IPv4:
		return fmt.Sprintf("%d.%d.%d.%d", t[0], t[1], t[2], t[3]), nil
	case types.IPv6:
		return serializeIPAddress(types.IPAddress{Family: types.AddrFamilyV6, V6: t}), nil
	case types.IPAddress:
		return serializeIPAddress(t), nil
	case types.OIDValue:
		return types.OID(t).String(), nil
	default:
		return "", fmt.Errorf("codec: unsupported acl primitive %T", v)
	}
}

func uintPrimitive(meta *metadata.AttrMeta, u uint64, hex bool) string {
	if meta != nil && meta.IsEnum && meta.Enum != nil {
		if name, ok := meta.Enum.Names[int32(u)]; ok {
			return name
		}
	}
	if hex {
		return fmt.Sprintf("0x%x", u)
	}
	return fmt.Sprintf("%d", u)
}

func intPrimitive(meta *metadata.AttrMeta, s int64) string {
	if meta != nil && meta.IsEnum && meta.Enum != nil {
		if name, ok := meta.Enum.Names[int32(s)]; ok {
			return name
		}
	}
	return fmt.Sprintf("%d", s)
}

// deserializeAclField parses the field form back into an AclField,
// using meta.AclPrimitiveType to know which primitive shape Data/Mask
// take.
func deserializeAclField(meta *metadata.AttrMeta, s string) (types.AclField, error) {
	if s == "disabled" {
		return types.AclField{Enabled: false}, nil
	}
	data, mask, ok := strings.Cut(s, "&mask:")
	if !ok {
		return types.AclField{}, fmt.Errorf("codec: malformed acl field %q for %s", s, meta.ID)
	}
	dv, err := deserializePrimitive(meta, data, meta.AclPrimitiveType)
	if err != nil {
		return types.AclField{}, fmt.Errorf("codec: acl field %s data: %w", meta.ID, err)
	}
	mv, err := deserializePrimitive(nil, mask, meta.AclPrimitiveType)
	if err != nil {
		return types.AclField{}, fmt.Errorf("codec: acl field %s mask: %w", meta.ID, err)
	}
	return types.AclField{Enabled: true, Data: dv, Mask: mv}, nil
}

func deserializeAclAction(meta *metadata.AttrMeta, s string) (types.AclAction, error) {
	if s == "disabled" {
		return types.AclAction{Enabled: false}, nil
	}
	dv, err := deserializePrimitive(meta, s, meta.AclPrimitiveType)
	if err != nil {
		return types.AclAction{}, fmt.Errorf("codec: acl action %s: %w", meta.ID, err)
	}
	return types.AclAction{Enabled: true, Data: dv}, nil
}
