package grpccodec

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
    "google.golang.org/grpc/encoding"

    "github.com/amirimatin/go-fabric/pkg/contract"
)

func TestRegistered(t *testing.T) {
    c := encoding.GetCodec(Name)
    require.NotNil(t, c)
    assert.Equal(t, Name, c.Name())
}

func TestRecordsUseContractCodec(t *testing.T) {
    c := encoding.GetCodec(Name)
    in := contract.NewClusterLoadInfo()
    b, err := c.Marshal(&in)
    require.NoError(t, err)
    assert.Contains(t, string(b), `"LoadMetricInformation":[]`)

    var out contract.ReplicatorQueueStatus
    err = c.Unmarshal([]byte(`{"QueueUtilizationPercentage": 1}`), &out)
    assert.ErrorIs(t, err, contract.ErrSchemaViolation)
}

func TestOtherMessagesUseJSON(t *testing.T) {
    c := encoding.GetCodec(Name)
    b, err := c.Marshal(map[string]int{"n": 1})
    require.NoError(t, err)
    var back map[string]int
    require.NoError(t, c.Unmarshal(b, &back))
    assert.Equal(t, 1, back["n"])
}
