package contract

import (
    "encoding/json"
    "errors"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func decodeEntity(t *testing.T, entity, doc string) (Record, error) {
    t.Helper()
    r, err := New(entity)
    require.NoError(t, err)
    return r, Unmarshal([]byte(doc), r)
}

func TestFixturesDecode(t *testing.T) {
    for _, f := range fixtures {
        t.Run(f.entity, func(t *testing.T) {
            _, err := decodeEntity(t, f.entity, f.doc)
            require.NoError(t, err)
        })
    }
}

func TestRequiredFieldEnforcement(t *testing.T) {
    for _, f := range fixtures {
        for _, field := range f.required {
            t.Run(f.entity+"/"+field, func(t *testing.T) {
                var obj map[string]json.RawMessage
                require.NoError(t, json.Unmarshal([]byte(f.doc), &obj))
                delete(obj, field)
                doc, err := json.Marshal(obj)
                require.NoError(t, err)

                _, err = decodeEntity(t, f.entity, string(doc))
                require.ErrorIs(t, err, ErrSchemaViolation)
                var de *DecodeError
                require.True(t, errors.As(err, &de))
                assert.Equal(t, f.entity, de.Entity)
                assert.Equal(t, field, de.Path)
            })
        }
    }
}

func TestRequiredFieldNullCountsAsMissing(t *testing.T) {
    var n NodeID
    err := Unmarshal([]byte(`{"Id": null}`), &n)
    assert.ErrorIs(t, err, ErrSchemaViolation)
}

func TestNestedRequiredFieldPath(t *testing.T) {
    doc := `{"Kind": "Primary", "ReplicationQueueStatus": {"QueueUtilizationPercentage": 1, "QueueMemorySize": 2,
        "FirstSequenceNumber": 1, "CompletedSequenceNumber": 1, "CommittedSequenceNumber": 1}}`
    var s ReplicatorStatus
    err := Unmarshal([]byte(doc), &s)
    require.ErrorIs(t, err, ErrSchemaViolation)
    var de *DecodeError
    require.True(t, errors.As(err, &de))
    assert.Equal(t, "ReplicationQueueStatus.LastSequenceNumber", de.Path)
    assert.Contains(t, err.Error(), "ReplicatorStatus.ReplicationQueueStatus.LastSequenceNumber")
}

func TestListElementErrorPath(t *testing.T) {
    doc := `{"NodeName": "n1", "NodeLoadMetricInformation": [{"Name": "a", "NodeLoad": 1}, {"NodeLoad": 2}]}`
    var n NodeLoadInfo
    err := Unmarshal([]byte(doc), &n)
    var de *DecodeError
    require.True(t, errors.As(err, &de))
    assert.Equal(t, "NodeLoadMetricInformation[1].Name", de.Path)
}

func TestUnknownFieldsIgnored(t *testing.T) {
    var m LoadMetricInformation
    err := Unmarshal([]byte(`{"Name": "Count", "ClusterLoad": 1, "FutureField": {"nested": [1, 2]}}`), &m)
    require.NoError(t, err)
    assert.Equal(t, "Count", m.Name)
}

func TestTypeMismatch(t *testing.T) {
    tests := []struct {
        name   string
        entity string
        doc    string
        path   string
    }{
        {"number given string", "LoadMetricInformation", `{"Name": "Count", "ClusterLoad": "12"}`, "ClusterLoad"},
        {"string given number", "NodeID", `{"Id": 7}`, "Id"},
        {"integer given fraction", "ReplicatorQueueStatus", `{"QueueUtilizationPercentage": 1.5, "QueueMemorySize": 0, "FirstSequenceNumber": 0, "CompletedSequenceNumber": 0, "CommittedSequenceNumber": 0, "LastSequenceNumber": 0}`, "QueueUtilizationPercentage"},
        {"bool given string", "ProvisionApplicationTypeDescription", `{"ApplicationTypeBuildPath": "p", "Async": "true"}`, "Async"},
        {"list given object", "NodeLoadInfo", `{"NodeName": "n", "NodeLoadMetricInformation": {}}`, "NodeLoadMetricInformation"},
        {"bad timestamp", "ClusterLoadInfo", `{"LastBalancingStartTimeUtc": "yesterday", "LastBalancingEndTimeUtc": "2024-03-01T10:00:00Z"}`, "LastBalancingStartTimeUtc"},
        {"bad guid", "PartitionInformation", `{"ServicePartitionKind": "Singleton", "Id": "not-a-guid"}`, "Id"},
        {"enum outside set", "PartitionInformation", `{"ServicePartitionKind": "Hashed", "Id": "` + partitionGUID + `"}`, "ServicePartitionKind"},
        {"root is array", "NodeID", `[{"Id": "x"}]`, ""},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            _, err := decodeEntity(t, tt.entity, tt.doc)
            require.ErrorIs(t, err, ErrTypeMismatch)
            var de *DecodeError
            require.True(t, errors.As(err, &de))
            assert.Equal(t, tt.path, de.Path)
        })
    }
}

func TestMalformedDocument(t *testing.T) {
    for _, doc := range []string{``, `{`, `{"Id": }`, `not json`} {
        var n NodeID
        err := Unmarshal([]byte(doc), &n)
        assert.ErrorIs(t, err, ErrMalformedDocument, "doc %q", doc)
    }
}

func TestUnmarshalReplacesPreviousContents(t *testing.T) {
    n := NewNodeLoadInfo("old", NodeLoadMetricInformation{Name: "stale"})
    require.NoError(t, Unmarshal([]byte(`{"NodeName": "new"}`), &n))
    assert.Equal(t, "new", n.NodeName)
    assert.Empty(t, n.NodeLoadMetricInformation)
}

func TestUnmarshalList(t *testing.T) {
    nodes, err := UnmarshalList[NodeLoadInfo]([]byte(`[{"NodeName": "a"}, {"NodeName": "b", "NodeLoadMetricInformation": []}]`))
    require.NoError(t, err)
    require.Len(t, nodes, 2)
    assert.Equal(t, "b", nodes[1].NodeName)
    assert.NotNil(t, nodes[0].NodeLoadMetricInformation)

    _, err = UnmarshalList[NodeLoadInfo]([]byte(`[{"NodeName": "a"}, {}]`))
    var de *DecodeError
    require.True(t, errors.As(err, &de))
    assert.Equal(t, "[1].NodeName", de.Path)
    assert.ErrorIs(t, err, ErrSchemaViolation)

    _, err = UnmarshalList[NodeLoadInfo]([]byte(`{"NodeName": "a"}`))
    assert.ErrorIs(t, err, ErrTypeMismatch)

    empty, err := UnmarshalList[NodeLoadInfo]([]byte(`[]`))
    require.NoError(t, err)
    assert.NotNil(t, empty)
    assert.Empty(t, empty)
}

func TestMarshalListEmpty(t *testing.T) {
    b, err := MarshalList[NodeID](nil)
    require.NoError(t, err)
    assert.Equal(t, `[]`, string(b))

    b, err = MarshalList([]NodeID{{ID: "a"}, {ID: "b"}})
    require.NoError(t, err)
    assert.Equal(t, `[{"Id":"a"},{"Id":"b"}]`, string(b))
}

func TestStdlibJSONDelegates(t *testing.T) {
    var n NodeID
    err := json.Unmarshal([]byte(`{}`), &n)
    assert.ErrorIs(t, err, ErrSchemaViolation)

    b, err := json.Marshal(struct {
        Node NodeID `json:"node"`
    }{Node: NodeID{ID: "x"}})
    require.NoError(t, err)
    assert.JSONEq(t, `{"node": {"Id": "x"}}`, string(b))
}

func TestCanonical(t *testing.T) {
    b, err := Canonical(&NameValuePair{Name: "z", Value: "<a>"})
    require.NoError(t, err)
    assert.Equal(t, `{"Name":"z","Value":"<a>"}`, string(b))
}

func TestRegistry(t *testing.T) {
    names := Entities()
    assert.Len(t, names, len(fixtures))
    for _, name := range names {
        r, err := New(name)
        require.NoError(t, err)
        assert.Equal(t, name, r.Entity())
    }
    _, err := New("Nope")
    assert.Error(t, err)
}

func TestKind(t *testing.T) {
    assert.Equal(t, "ok", Kind(nil))
    assert.Equal(t, "schema_violation", Kind(&DecodeError{Entity: "X", Err: ErrSchemaViolation}))
    assert.Equal(t, "unknown_variant", Kind(&DecodeError{Entity: "X", Err: ErrUnknownVariant}))
    assert.Equal(t, "error", Kind(errors.New("boom")))
}
