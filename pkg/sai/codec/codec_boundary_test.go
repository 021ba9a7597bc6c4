package codec

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tiglabs/sai-core/pkg/sai/metadata"
	"github.com/tiglabs/sai-core/pkg/sai/types"
)

func TestListLength_ZeroAndMaxAreLegal(t *testing.T) {
	meta := &metadata.AttrMeta{ID: "test_u32_list", ValueType: types.ValueTypeU32List}

	empty := types.U32List{Items: []uint32{}}
	s, err := SerializeAttrValue(meta, empty, false, false)
	require.NoError(t, err)
	require.Equal(t, "0:", s)
	v, err := DeserializeAttrValue(meta, s)
	require.NoError(t, err)
	require.Equal(t, types.U32List{}, v)

	maxItems := make([]uint32, types.MaxListCount)
	for i := range maxItems {
		maxItems[i] = uint32(i)
	}
	full := types.U32List{Items: maxItems}
	s, err = SerializeAttrValue(meta, full, false, false)
	require.NoError(t, err)
	v, err = DeserializeAttrValue(meta, s)
	require.NoError(t, err)
	require.Len(t, v.(types.U32List).Items, types.MaxListCount)
}

func TestListLength_OverMaxIsRejectedOnDeserialize(t *testing.T) {
	meta := &metadata.AttrMeta{ID: "test_u32_list", ValueType: types.ValueTypeU32List}
	wire := fmt.Sprintf("%d:null", types.MaxListCount+1)
	_, err := DeserializeAttrValue(meta, wire)
	require.Error(t, err, "a declared count beyond MaxListCount must be rejected before any allocation")
}

func TestListLength_NullVsEmptyAreDistinctOnTheWire(t *testing.T) {
	meta := &metadata.AttrMeta{ID: "test_oid_list", ValueType: types.ValueTypeOIDList}

	nullList := types.OIDList{}
	s, err := SerializeAttrValue(meta, nullList, false, false)
	require.NoError(t, err)
	require.Equal(t, "0:null", s, "a nil Items slice serializes as the null form, not an empty list")

	emptyList := types.OIDList{Items: []types.OID{}}
	s, err = SerializeAttrValue(meta, emptyList, false, false)
	require.NoError(t, err)
	require.Equal(t, "0:", s)
}

func TestU32Range_MinEqualsMaxIsLegal(t *testing.T) {
	meta := &metadata.AttrMeta{ID: "test_u32_range", ValueType: types.ValueTypeU32Range}
	r := types.U32Range{Min: 42, Max: 42}
	s, err := SerializeAttrValue(meta, r, false, false)
	require.NoError(t, err)
	v, err := DeserializeAttrValue(meta, s)
	require.NoError(t, err)
	require.Equal(t, r, v)
}

func TestU32Range_MinGreaterThanMaxIsRejected(t *testing.T) {
	meta := &metadata.AttrMeta{ID: "test_u32_range", ValueType: types.ValueTypeU32Range}
	_, err := SerializeAttrValue(meta, types.U32Range{Min: 5, Max: 4}, false, false)
	require.Error(t, err)
	_, err = DeserializeAttrValue(meta, "5,4")
	require.Error(t, err)
}

func TestS32Range_NegativeBoundsAreLegal(t *testing.T) {
	meta := &metadata.AttrMeta{ID: "test_s32_range", ValueType: types.ValueTypeS32Range}
	r := types.S32Range{Min: -10, Max: -1}
	s, err := SerializeAttrValue(meta, r, false, false)
	require.NoError(t, err)
	v, err := DeserializeAttrValue(meta, s)
	require.NoError(t, err)
	require.Equal(t, r, v)
}

func TestCharBuffer_LengthBoundary(t *testing.T) {
	meta := &metadata.AttrMeta{ID: "test_char_buffer", ValueType: types.ValueTypeCharBuffer}

	maxPayload := make([]byte, CharBufferMax-1)
	for i := range maxPayload {
		maxPayload[i] = 'a'
	}
	s, err := SerializeAttrValue(meta, types.CharBuffer{Bytes: maxPayload}, false, false)
	require.NoError(t, err)
	v, err := DeserializeAttrValue(meta, s)
	require.NoError(t, err)
	require.Equal(t, types.CharBuffer{Bytes: maxPayload}, v)

	overflow := make([]byte, CharBufferMax)
	for i := range overflow {
		overflow[i] = 'a'
	}
	s2, err := SerializeAttrValue(meta, types.CharBuffer{Bytes: overflow}, false, false)
	require.NoError(t, err, "serialization itself does not enforce the cap")
	_, err = DeserializeAttrValue(meta, s2)
	require.Error(t, err, "a buffer leaving no room for the NUL terminator must be rejected on read-back")

	_, err = DeserializeAttrValue(meta, "")
	require.Error(t, err, "an empty char buffer is not a legal attribute value")
}

func TestPrefixLenFromMask_ContiguityBoundary(t *testing.T) {
	contiguous := []byte{0xff, 0xff, 0xff, 0x00}
	n, err := PrefixLenFromMask(contiguous)
	require.NoError(t, err)
	require.Equal(t, 24, n)

	allOnes := []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	n, err = PrefixLenFromMask(allOnes)
	require.NoError(t, err)
	require.Equal(t, 128, n)

	allZeros := make([]byte, 16)
	n, err = PrefixLenFromMask(allZeros)
	require.NoError(t, err)
	require.Equal(t, 0, n)

	discontiguous := []byte{0xff, 0x0f, 0xff, 0x00}
	_, err = PrefixLenFromMask(discontiguous)
	require.Error(t, err, "a 1-bit after a 0-bit is not a legal IPv6 mask")
}
