package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// serializeList renders any of the homogeneous list variants as
// "count:item,item,..." or "count:null" when Items is nil. countOnly
// forces the null form regardless of the actual backing slice, for
// pre_get buffer-size probes (§4.2).
func serializeList(meta *metadata.AttrMeta, v types.Value, countOnly, hex bool) (string, error) {
	items, count, err := listItemStrings(meta, v, hex)
	if err != nil {
		return "", err
	}
	if items == nil || countOnly {
		return fmt.Sprintf("%d:null", count), nil
	}
	return fmt.Sprintf("%d:%s", count, strings.Join(items, ",")), nil
}

func listItemStrings(meta *metadata.AttrMeta, v types.Value, hex bool) ([]string, int, error) {
	switch l := v.(type) {
	case types.U8List:
		return renderUints(l.Items, func(x uint8) uint64 { return uint64(x) }, hex), len(l.Items), nil
	case types.S8List:
		return renderInts(l.Items, func(x int8) int64 { return int64(x) }), len(l.Items), nil
	case types.U16List:
		return renderUints(l.Items, func(x uint16) uint64 { return uint64(x) }, hex), len(l.Items), nil
	case types.S16List:
		return renderInts(l.Items, func(x int16) int64 { return int64(x) }), len(l.Items), nil
	case types.U32List:
		return renderUints(l.Items, func(x uint32) uint64 { return uint64(x) }, hex), len(l.Items), nil
	case types.S32List:
		return renderEnumInts(meta, l.Items), len(l.Items), nil
	case types.VlanList:
		return renderUints(l.Items, func(x uint16) uint64 { return uint64(x) }, hex), len(l.Items), nil
	case types.OIDList:
		if l.Items == nil {
			return nil, 0, nil
		}
		out := make([]string, len(l.Items))
		for i, o := range l.Items {
			out[i] = o.String()
		}
		return out, len(l.Items), nil
	default:
		return nil, 0, fmt.Errorf("codec: attribute %s expects a list, got %T", meta.ID, v)
	}
}

func renderUints[T ~uint8 | ~uint16 | ~uint32](items []T, to func(T) uint64, hex bool) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, x := range items {
		if hex {
			out[i] = fmt.Sprintf("0x%x", to(x))
		} else {
			out[i] = strconv.FormatUint(to(x), 10)
		}
	}
	return out
}

func renderInts[T ~int8 | ~int16](items []T, to func(T) int64) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, x := range items {
		out[i] = strconv.FormatInt(to(x), 10)
	}
	return out
}

func renderEnumInts(meta *metadata.AttrMeta, items []int32) []string {
	if items == nil {
		return nil
	}
	out := make([]string, len(items))
	for i, x := range items {
		if meta.IsEnumList && meta.Enum != nil {
			if name, ok := meta.Enum.Names[x]; ok {
				out[i] = name
				continue
			}
		}
		out[i] = strconv.FormatInt(int64(x), 10)
	}
	return out
}

// deserializeList parses "count:item,..." or "count:null" into the list
// variant matching meta.ValueType.
func deserializeList(meta *metadata.AttrMeta, s string) (types.Value, error) {
	countStr, rest, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("codec: malformed list %q for %s", s, meta.ID)
	}
	count, err := strconv.Atoi(countStr)
	if err != nil {
		return nil, fmt.Errorf("codec: malformed list count %q for %s: %w", countStr, meta.ID, err)
	}
	if count < 0 || count > types.MaxListCount {
		return nil, fmt.Errorf("codec: list count %d out of range for %s", count, meta.ID)
	}
	if rest == "null" {
		return emptyList(meta.ValueType), nil
	}
	var raw []string
	if count == 0 {
		raw = nil
	} else {
		raw = strings.Split(rest, ",")
		if len(raw) != count {
			return nil, fmt.Errorf("codec: list %s declares count %d but has %d items", meta.ID, count, len(raw))
		}
	}
	switch meta.ValueType {
	case types.ValueTypeU8List:
		items, err := parseUints[uint8](raw, 8)
		return types.U8List{Items: items}, err
	case types.ValueTypeS8List:
		items, err := parseInts[int8](raw, 8)
		return types.S8List{Items: items}, err
	case types.ValueTypeU16List:
		items, err := parseUints[uint16](raw, 16)
		return types.U16List{Items: items}, err
	case types.ValueTypeS16List:
		items, err := parseInts[int16](raw, 16)
		return types.S16List{Items: items}, err
	case types.ValueTypeU32List:
		items, err := parseUints[uint32](raw, 32)
		return types.U32List{Items: items}, err
	case types.ValueTypeVlanList:
		items, err := parseUints[uint16](raw, 16)
		return types.VlanList{Items: items}, err
	case types.ValueTypeS32List:
		items, err := parseEnumInts(meta, raw)
		return types.S32List{Items: items}, err
	case types.ValueTypeOIDList:
		items := make([]types.OID, len(raw))
		for i, r := range raw {
			o, err := parseOIDString(r)
			if err != nil {
				return nil, err
			}
			items[i] = o
		}
		if raw == nil {
			items = nil
		}
		return types.OIDList{Items: items}, nil
	default:
		return nil, fmt.Errorf("codec: %s is not a list attribute", meta.ID)
	}
}

func emptyList(vt types.ValueType) types.Value {
	switch vt {
	case types.ValueTypeU8List:
		return types.U8List{}
	case types.ValueTypeS8List:
		return types.S8List{}
	case types.ValueTypeU16List:
		return types.U16List{}
	case types.ValueTypeS16List:
		return types.S16List{}
	case types.ValueTypeU32List:
		return types.U32List{}
	case types.ValueTypeS32List:
		return types.S32List{}
	case types.ValueTypeVlanList:
		return types.VlanList{}
	case types.ValueTypeOIDList:
		return types.OIDList{}
	default:
		return nil
	}
}

func parseUints[T ~uint8 | ~uint16 | ~uint32](raw []string, bits int) ([]T, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]T, len(raw))
	for i, r := range raw {
		u, err := strconv.ParseUint(strings.TrimSpace(r), 0, bits)
		if err != nil {
			return nil, fmt.Errorf("codec: invalid list item %q: %w", r, err)
		}
		out[i] = T(u)
	}
	return out, nil
}

func parseInts[T ~int8 | ~int16](raw []string, bits int) ([]T, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]T, len(raw))
	for i, r := range raw {
		s, err := strconv.ParseInt(strings.TrimSpace(r), 0, bits)
		if err != nil {
			return nil, fmt.Errorf("codec: invalid list item %q: %w", r, err)
		}
		out[i] = T(s)
	}
	return out, nil
}

func parseEnumInts(meta *metadata.AttrMeta, raw []string) ([]int32, error) {
	if raw == nil {
		return nil, nil
	}
	out := make([]int32, len(raw))
	for i, r := range raw {
		r = strings.TrimSpace(r)
		if meta.IsEnumList && meta.Enum != nil {
			if v, ok := reverseEnumLookup(meta.Enum, r); ok {
				out[i] = v
				continue
			}
		}
		s, err := strconv.ParseInt(r, 0, 32)
		if err != nil {
			return nil, fmt.Errorf("codec: invalid enum list item %q for %s: %w", r, meta.ID, err)
		}
		out[i] = int32(s)
	}
	return out, nil
}

func reverseEnumLookup(e *metadata.EnumDescriptor, name string) (int32, bool) {
	for v, n := range e.Names {
		if n == name {
			return v, true
		}
	}
	return 0, false
}
