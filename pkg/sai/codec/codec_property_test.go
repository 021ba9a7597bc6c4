package codec

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

// TestProperty_ScalarRoundTrip verifies §4.2's codec round-trip
// identity for every scalar value type: serializing a value and
// deserializing the result must reproduce the original value exactly,
// for any value the underlying Go type can hold.
func TestProperty_ScalarRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	boolMeta := &metadata.AttrMeta{ID: "test_bool", ValueType: types.ValueTypeBool}
	properties.Property("bool round-trips", prop.ForAll(
		func(b bool) bool {
			s, err := SerializeAttrValue(boolMeta, types.Bool(b), false, false)
			if err != nil {
				return false
			}
			v, err := DeserializeAttrValue(boolMeta, s)
			return err == nil && v == types.Bool(b)
		},
		gen.Bool(),
	))

	u32Meta := &metadata.AttrMeta{ID: "test_u32", ValueType: types.ValueTypeU32}
	properties.Property("u32 round-trips in decimal form", prop.ForAll(
		func(u uint32) bool {
			s, err := SerializeAttrValue(u32Meta, types.U32(u), false, false)
			if err != nil {
				return false
			}
			v, err := DeserializeAttrValue(u32Meta, s)
			return err == nil && v == types.U32(u)
		},
		gen.UInt32(),
	))

	u32HexMeta := &metadata.AttrMeta{ID: "test_u32_hex", ValueType: types.ValueTypeU32}
	properties.Property("u32 round-trips in hex form", prop.ForAll(
		func(u uint32) bool {
			s, err := SerializeAttrValue(u32HexMeta, types.U32(u), false, true)
			if err != nil {
				return false
			}
			v, err := DeserializeAttrValue(u32HexMeta, s)
			return err == nil && v == types.U32(u)
		},
		gen.UInt32(),
	))

	s32Meta := &metadata.AttrMeta{ID: "test_s32", ValueType: types.ValueTypeS32}
	properties.Property("s32 round-trips", prop.ForAll(
		func(n int32) bool {
			s, err := SerializeAttrValue(s32Meta, types.S32(n), false, false)
			if err != nil {
				return false
			}
			v, err := DeserializeAttrValue(s32Meta, s)
			return err == nil && v == types.S32(n)
		},
		gen.Int32(),
	))

	macMeta := &metadata.AttrMeta{ID: "test_mac", ValueType: types.ValueTypeMac}
	properties.Property("mac round-trips", prop.ForAll(
		func(b0, b1, b2, b3, b4, b5 byte) bool {
			m := types.Mac{b0, b1, b2, b3, b4, b5}
			s, err := SerializeAttrValue(macMeta, m, false, false)
			if err != nil {
				return false
			}
			v, err := DeserializeAttrValue(macMeta, s)
			return err == nil && v == m
		},
		gen.UInt8(), gen.UInt8(), gen.UInt8(), gen.UInt8(), gen.UInt8(), gen.UInt8(),
	))

	properties.TestingRun(t)
}

// TestProperty_U32ListRoundTrip verifies list round-trip identity
// (§3.2/§8.2) across the lengths gen.SliceOf produces (bounded by
// gopter's default size, well under MaxListCount), including the
// length-0 edge.
func TestProperty_U32ListRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	meta := &metadata.AttrMeta{ID: "test_u32_list", ValueType: types.ValueTypeU32List}
	properties.Property("u32 list round-trips for any legal length", prop.ForAll(
		func(items []uint32) bool {
			l := types.U32List{Items: items}
			s, err := SerializeAttrValue(meta, l, false, false)
			if err != nil {
				return false
			}
			v, err := DeserializeAttrValue(meta, s)
			if err != nil {
				return false
			}
			got, ok := v.(types.U32List)
			if !ok || len(got.Items) != len(items) {
				return false
			}
			for i := range items {
				if got.Items[i] != items[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt32()),
	))

	properties.TestingRun(t)
}

// TestRoundTrip_IPPrefix is a table test (not a property) since
// IPPrefix's family byte layout is easiest to pin down with concrete
// boundary cases rather than an arbitrary generator.
func TestRoundTrip_IPPrefix(t *testing.T) {
	meta := &metadata.AttrMeta{ID: "test_prefix", ValueType: types.ValueTypeIPPrefix}

	cases := []string{"10.0.0.0/8", "0.0.0.0/0", "255.255.255.255/32", "::/0", "fe80::1/64", "::1/128"}
	for _, c := range cases {
		v, err := DeserializeAttrValue(meta, c)
		require.NoError(t, err, c)
		s, err := SerializeAttrValue(meta, v, false, false)
		require.NoError(t, err, c)
		require.Equal(t, c, s, "prefix must round-trip to its canonical form")
	}
}
