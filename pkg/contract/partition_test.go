package contract

import (
    "testing"

    "github.com/google/uuid"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestPartitionInformation_RangedKeys(t *testing.T) {
    var p PartitionInformation
    doc := `{"ServicePartitionKind":"Int64Range","Id":"` + partitionGUID + `","LowKey":"0","HighKey":"100"}`
    require.NoError(t, Unmarshal([]byte(doc), &p))

    assert.Equal(t, PartitionKindInt64Range, p.ServicePartitionKind)
    assert.Equal(t, uuid.MustParse(partitionGUID), p.ID)
    require.NotNil(t, p.LowKey)
    require.NotNil(t, p.HighKey)
    assert.Equal(t, "0", *p.LowKey)
    assert.Equal(t, "100", *p.HighKey)

    low, high, err := p.Int64Bounds()
    require.NoError(t, err)
    assert.Equal(t, int64(0), low)
    assert.Equal(t, int64(100), high)
}

func TestPartitionInformation_SingletonWithoutKeys(t *testing.T) {
    var p PartitionInformation
    doc := `{"ServicePartitionKind":"Singleton","Id":"` + partitionGUID + `"}`
    require.NoError(t, Unmarshal([]byte(doc), &p))
    assert.Equal(t, PartitionKindSingleton, p.ServicePartitionKind)
    assert.Nil(t, p.LowKey)
    assert.Nil(t, p.HighKey)
    assert.False(t, p.IsRanged())

    _, _, err := p.Int64Bounds()
    assert.Error(t, err)
}

func TestPartitionInformation_DecodeIsPermissive(t *testing.T) {
    // Keys on a singleton and a missing key on a ranged partition both decode.
    for _, doc := range []string{
        `{"ServicePartitionKind":"Singleton","Id":"` + partitionGUID + `","LowKey":"1","HighKey":"2"}`,
        `{"ServicePartitionKind":"Int64Range","Id":"` + partitionGUID + `","LowKey":"1"}`,
    } {
        var p PartitionInformation
        assert.NoError(t, Unmarshal([]byte(doc), &p), doc)
    }
}

func TestPartitionInformation_EncodeCanonical(t *testing.T) {
    id := uuid.MustParse(partitionGUID)

    b, err := Marshal(ptr(NewInt64RangePartition(id, -9223372036854775808, 9223372036854775807)))
    require.NoError(t, err)
    assert.Equal(t, `{"ServicePartitionKind":"Int64Range","Id":"`+partitionGUID+`","LowKey":"-9223372036854775808","HighKey":"9223372036854775807"}`, string(b))

    // Keys on a non-ranged kind are dropped.
    single := NewSingletonPartition(id)
    lo := "5"
    single.LowKey = &lo
    b, err = Marshal(&single)
    require.NoError(t, err)
    assert.Equal(t, `{"ServicePartitionKind":"Singleton","Id":"`+partitionGUID+`"}`, string(b))

    b, err = Marshal(ptr(NewNamedPartition(id, "east")))
    require.NoError(t, err)
    assert.Equal(t, `{"ServicePartitionKind":"Named","Id":"`+partitionGUID+`","Name":"east"}`, string(b))
}

func TestPartitionInformation_EncodeRangedRequiresBothKeys(t *testing.T) {
    p := NewInt64RangePartition(uuid.New(), 0, 10)
    p.HighKey = nil
    _, err := Marshal(&p)
    require.ErrorIs(t, err, ErrSchemaViolation)
    assert.Contains(t, err.Error(), "HighKey")
}
