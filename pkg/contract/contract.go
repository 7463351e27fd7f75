// Package contract holds the JSON shapes exchanged with the cluster management
// gateway: load summaries, partition identity, replicator status, service type
// metadata and the bodies of provisioning requests.
//
// Records cross the JSON boundary only through Marshal and Unmarshal (or the
// json.Marshaler/Unmarshaler methods that delegate to them). Decoding enforces
// required fields, rejects values of the wrong JSON kind, ignores unknown
// fields and reports every failure as a *DecodeError carrying the field path.
// Nothing in this package holds mutable state, so calls may run concurrently.
package contract

import (
    "encoding/json"
    "fmt"
    "sort"

    "github.com/gowebpki/jcs"
)

// Record is implemented by every gateway entity. The set is closed: the
// decode/encode hooks are unexported.
type Record interface {
    // Entity is the entity name used in error messages and by New.
    Entity() string
    decode(d *decoder)
    encode(e *encoder)
}

// Unmarshal decodes one JSON object into r, replacing its previous contents.
func Unmarshal(data []byte, r Record) error {
    d, err := newDecoder(r.Entity(), data)
    if err != nil { return err }
    r.decode(d)
    return d.err()
}

// Marshal encodes r with a fixed field order per entity.
func Marshal(r Record) ([]byte, error) {
    e := newEncoder(r.Entity())
    e.buf.WriteByte('{')
    r.encode(e)
    e.buf.WriteByte('}')
    if err := e.err(); err != nil { return nil, err }
    return e.buf.Bytes(), nil
}

// Canonical encodes r in RFC 8785 canonical form (sorted keys, normalised
// numbers), for byte-level comparison of documents.
func Canonical(r Record) ([]byte, error) {
    b, err := Marshal(r)
    if err != nil { return nil, err }
    out, err := jcs.Transform(b)
    if err != nil { return nil, fmt.Errorf("contract: canonicalize %s: %w", r.Entity(), err) }
    return out, nil
}

// UnmarshalList decodes a JSON array whose elements are all of one entity.
// Error paths are indexed from the root, e.g. "[2].NodeName".
func UnmarshalList[T any, PT interface {
    *T
    Record
}](data []byte) ([]T, error) {
    var zero T
    entity := PT(&zero).Entity()
    if !json.Valid(data) {
        return nil, &DecodeError{Entity: entity, Err: ErrMalformedDocument, Detail: "input is not valid JSON"}
    }
    st := &decodeState{entity: entity}
    if k := kindOf(data); k != kindArray {
        return nil, &DecodeError{Entity: entity, Err: ErrTypeMismatch, Detail: "expected array, got " + k.String()}
    }
    out := []T{}
    decodeArray(st, "", data, func(d *decoder) {
        var v T
        PT(&v).decode(d)
        out = append(out, v)
    })
    if st.err != nil { return nil, st.err }
    return out, nil
}

// MarshalList encodes records as a JSON array; a nil slice encodes as [].
func MarshalList[T any, PT interface {
    *T
    Record
}](items []T) ([]byte, error) {
    var zero T
    e := newEncoder(PT(&zero).Entity())
    e.buf.WriteByte('[')
    for i := range items {
        if i > 0 { e.buf.WriteByte(',') }
        e.buf.WriteByte('{')
        PT(&items[i]).encode(&encoder{st: e.st, buf: e.buf, path: fmt.Sprintf("[%d]", i)})
        e.buf.WriteByte('}')
    }
    e.buf.WriteByte(']')
    if err := e.err(); err != nil { return nil, err }
    return e.buf.Bytes(), nil
}

func registry() map[string]func() Record {
    return map[string]func() Record{
        "ClusterLoadInfo":                           func() Record { v := NewClusterLoadInfo(); return &v },
        "LoadMetricInformation":                     func() Record { return &LoadMetricInformation{} },
        "NodeLoadInfo":                              func() Record { v := NewNodeLoadInfo(""); return &v },
        "NodeLoadMetricInformation":                 func() Record { return &NodeLoadMetricInformation{} },
        "PartitionInformation":                      func() Record { return &PartitionInformation{ServicePartitionKind: PartitionKindSingleton} },
        "ReplicatorStatus":                          func() Record { v := NewPrimaryReplicatorStatus(ReplicatorQueueStatus{}); return &v },
        "ReplicatorQueueStatus":                     func() Record { return &ReplicatorQueueStatus{} },
        "RemoteReplicatorStatus":                    func() Record { return &RemoteReplicatorStatus{} },
        "ServiceTypeInfo":                           func() Record { v := NewServiceTypeInfo(NewServiceTypeDescription(ServiceKindStateless, ""), "", ""); return &v },
        "ServiceTypeDescription":                    func() Record { v := NewServiceTypeDescription(ServiceKindStateless, ""); return &v },
        "ServiceManifest":                           func() Record { return &ServiceManifest{} },
        "NameValuePair":                             func() Record { return &NameValuePair{} },
        "ResolvedEndpoint":                          func() Record { return &ResolvedEndpoint{Kind: EndpointRoleStateless} },
        "ResolvedServicePartition":                  func() Record { v := NewResolvedServicePartition("", PartitionInformation{ServicePartitionKind: PartitionKindSingleton}); return &v },
        "NodeID":                                    func() Record { return &NodeID{} },
        "ProvisionApplicationTypeDescription":       func() Record { v := NewProvisionApplicationTypeDescription(""); return &v },
        "UnprovisionApplicationTypeDescriptionInfo": func() Record { v := NewUnprovisionApplicationTypeDescriptionInfo(""); return &v },
        "UpdateServiceDescription":                  func() Record { v := NewUpdateServiceDescription(ServiceKindStateless); return &v },
        "StartNodeDescription":                      func() Record { v := NewStartNodeDescription(); return &v },
    }
}

// New returns a constructor-initialised record for the named entity.
func New(entity string) (Record, error) {
    ctor, ok := registry()[entity]
    if !ok { return nil, fmt.Errorf("contract: unknown entity %q", entity) }
    return ctor(), nil
}

// Entities lists the names accepted by New, sorted.
func Entities() []string {
    reg := registry()
    names := make([]string, 0, len(reg))
    for name := range reg { names = append(names, name) }
    sort.Strings(names)
    return names
}
