package cli

import (
    "bytes"
    "os"
    "path/filepath"
    "strings"
    "testing"

    "github.com/spf13/cobra"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/amirimatin/go-fabric/pkg/contract"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
    t.Helper()
    root := &cobra.Command{Use: "fabricctl", SilenceUsage: true, SilenceErrors: true}
    AddAll(root)
    var out, errOut bytes.Buffer
    root.SetOut(&out)
    root.SetErr(&errOut)
    root.SetIn(strings.NewReader(stdin))
    root.SetArgs(args)
    err := root.Execute()
    return out.String(), err
}

func TestEntities(t *testing.T) {
    out, err := run(t, "", "entities")
    require.NoError(t, err)
    lines := strings.Fields(out)
    assert.Equal(t, contract.Entities(), lines)
}

func TestDecodeFromStdin(t *testing.T) {
    out, err := run(t, `{"NodeName": "_Node_1", "Extra": true}`, "decode", "NodeLoadInfo")
    require.NoError(t, err)
    assert.Equal(t, `{"NodeName":"_Node_1","NodeLoadMetricInformation":[]}`+"\n", out)
}

func TestDecodeFromFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "node.json")
    require.NoError(t, os.WriteFile(path, []byte(`{"Id": "n1"}`), 0o600))
    out, err := run(t, "", "decode", "NodeID", path)
    require.NoError(t, err)
    assert.Equal(t, `{"Id":"n1"}`+"\n", out)
}

func TestDecodeList(t *testing.T) {
    out, err := run(t, `[{"Id": "a"}, {"Id": "b"}]`, "decode", "--list", "NodeID", "-")
    require.NoError(t, err)
    assert.Equal(t, `[{"Id":"a"},{"Id":"b"}]`+"\n", out)

    _, err = run(t, `[{"Id": "a"}, {}]`, "decode", "--list", "NodeID")
    require.ErrorIs(t, err, contract.ErrSchemaViolation)
    var de *contract.DecodeError
    require.ErrorAs(t, err, &de)
    assert.Equal(t, "[1].Id", de.Path)
}

func TestDecodeListRejects(t *testing.T) {
    tests := []struct {
        name  string
        stdin string
        want  error
    }{
        {"truncated array", `[{"Id": "a"}`, contract.ErrMalformedDocument},
        {"object instead of array", `{"Id": "a"}`, contract.ErrTypeMismatch},
        {"element of wrong type", `[{"Id": "a"}, 7]`, contract.ErrTypeMismatch},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            _, err := run(t, tt.stdin, "decode", "--list", "NodeID")
            require.ErrorIs(t, err, tt.want)
            assert.Equal(t, contract.Kind(tt.want), contract.Kind(err))
        })
    }
}

func TestDecodeFailure(t *testing.T) {
    _, err := run(t, `{"Kind": "Tertiary"}`, "decode", "ReplicatorStatus")
    assert.ErrorIs(t, err, contract.ErrUnknownVariant)
}

func TestValidate(t *testing.T) {
    out, err := run(t, `{"ApplicationTypeVersion": "1.0"}`, "validate", "UnprovisionApplicationTypeDescriptionInfo")
    require.NoError(t, err)
    assert.Equal(t, "ok\n", out)

    out, err = run(t, `{"Async": "yes"}`, "validate", "UnprovisionApplicationTypeDescriptionInfo")
    require.Error(t, err)
    assert.Contains(t, out, "schema")
    assert.Contains(t, out, "decode")
}

func TestTemplatesDecode(t *testing.T) {
    for _, entity := range contract.Entities() {
        t.Run(entity, func(t *testing.T) {
            doc, err := run(t, "", "template", entity)
            require.NoError(t, err)
            out, err := run(t, doc, "validate", entity)
            require.NoError(t, err, out)
        })
    }
}

func TestCheck(t *testing.T) {
    out, err := run(t, `{"QueueUtilizationPercentage": 0, "QueueMemorySize": 0, "FirstSequenceNumber": 10, "CompletedSequenceNumber": 5, "CommittedSequenceNumber": 6, "LastSequenceNumber": 7}`,
        "check", "ReplicatorQueueStatus")
    require.ErrorIs(t, err, ErrFindings)
    assert.Contains(t, out, "sequence")

    out, err = run(t, `{"ServicePartitionKind": "Int64Range", "Id": "6e4b3c6a-2f1d-4a7e-9b0c-1d2e3f405162", "LowKey": "0", "HighKey": "10"}`,
        "check", "PartitionInformation")
    require.NoError(t, err)
    assert.Equal(t, "ok\n", out)
}

func TestCheckPartition(t *testing.T) {
    id := "6e4b3c6a-2f1d-4a7e-9b0c-1d2e3f405162"
    tests := []struct {
        name string
        doc  string
        want int
    }{
        {"ranged without high key", `{"ServicePartitionKind": "Int64Range", "Id": "` + id + `", "LowKey": "0"}`, 1},
        {"inverted range", `{"ServicePartitionKind": "Int64Range", "Id": "` + id + `", "LowKey": "9", "HighKey": "1"}`, 1},
        {"keys on singleton", `{"ServicePartitionKind": "Singleton", "Id": "` + id + `", "LowKey": "0"}`, 1},
        {"named", `{"ServicePartitionKind": "Named", "Id": "` + id + `", "Name": "a"}`, 0},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            var p contract.PartitionInformation
            require.NoError(t, contract.Unmarshal([]byte(tt.doc), &p))
            assert.Len(t, Check(&p), tt.want)
        })
    }
}

func TestConfigFlag(t *testing.T) {
    path := filepath.Join(t.TempDir(), "fabric.yaml")
    require.NoError(t, os.WriteFile(path, []byte("codec:\n  canonical: true\n"), 0o600))
    out, err := run(t, `{"Value": "v", "Name": "n"}`, "--config", path, "decode", "NameValuePair")
    require.NoError(t, err)
    assert.Equal(t, `{"Name":"n","Value":"v"}`+"\n", out)

    _, err = run(t, `{}`, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "decode", "NodeID")
    assert.Error(t, err)
}
