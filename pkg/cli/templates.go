package cli

import (
    "fmt"
    "time"

    "github.com/google/uuid"

    "github.com/amirimatin/go-fabric/pkg/contract"
)

// Template returns an example record for entity that encodes to a document
// the decoder accepts. Entities without a discriminant start from their zero
// value.
func Template(entity string) (contract.Record, error) {
    id := uuid.MustParse("00000000-0000-0000-0000-000000000001")
    at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
    switch entity {
    case "ClusterLoadInfo":
        c := contract.NewClusterLoadInfo(contract.LoadMetricInformation{Name: "Count"})
        c.LastBalancingStartTimeUtc, c.LastBalancingEndTimeUtc = at, at
        return &c, nil
    case "NodeLoadInfo":
        n := contract.NewNodeLoadInfo("_Node_0", contract.NodeLoadMetricInformation{Name: "Count"})
        return &n, nil
    case "PartitionInformation":
        p := contract.NewInt64RangePartition(id, 0, 100)
        return &p, nil
    case "ReplicatorStatus":
        s := contract.NewPrimaryReplicatorStatus(contract.ReplicatorQueueStatus{}, contract.RemoteReplicatorStatus{ReplicaID: "1"})
        return &s, nil
    case "ServiceTypeDescription":
        d := contract.NewServiceTypeDescription(contract.ServiceKindStateful, "ServiceType")
        return &d, nil
    case "ServiceTypeInfo":
        i := contract.NewServiceTypeInfo(contract.NewServiceTypeDescription(contract.ServiceKindStateful, "ServiceType"), "ServicePkg", "1.0.0")
        return &i, nil
    case "ResolvedEndpoint":
        return &contract.ResolvedEndpoint{Kind: contract.EndpointRoleStatefulPrimary, Address: "tcp://127.0.0.1:20001"}, nil
    case "ResolvedServicePartition":
        r := contract.NewResolvedServicePartition("fabric:/App/Service", contract.NewSingletonPartition(id),
            contract.ResolvedEndpoint{Kind: contract.EndpointRoleStatefulPrimary, Address: "tcp://127.0.0.1:20001"})
        return &r, nil
    case "UpdateServiceDescription":
        u := contract.NewUpdateServiceDescription(contract.ServiceKindStateful)
        return &u, nil
    case "StartNodeDescription":
        s := contract.NewStartNodeDescription()
        return &s, nil
    }
    return contract.New(entity)
}

// Check runs the advisory checks that decoding leaves to the caller and
// returns one line per finding.
func Check(r contract.Record) []string {
    var out []string
    switch v := r.(type) {
    case *contract.ReplicatorQueueStatus:
        if err := v.CheckOrdering(); err != nil { out = append(out, err.Error()) }
    case *contract.ReplicatorStatus:
        if err := v.CheckOrdering(); err != nil { out = append(out, "ReplicationQueueStatus: "+err.Error()) }
    case *contract.PartitionInformation:
        out = append(out, checkPartition("", *v)...)
    case *contract.ResolvedServicePartition:
        out = append(out, checkPartition("PartitionInformation: ", v.PartitionInformation)...)
    case *contract.ClusterLoadInfo:
        if v.LastBalancingEndTimeUtc.Before(v.LastBalancingStartTimeUtc) {
            out = append(out, "LastBalancingEndTimeUtc is before LastBalancingStartTimeUtc")
        }
        seen := map[string]bool{}
        for _, m := range v.LoadMetricInformation {
            if seen[m.Name] { out = append(out, fmt.Sprintf("metric %q appears more than once", m.Name)) }
            seen[m.Name] = true
        }
    }
    return out
}

func checkPartition(prefix string, p contract.PartitionInformation) []string {
    if !p.IsRanged() {
        if p.LowKey != nil || p.HighKey != nil {
            return []string{prefix + "keys present on a " + string(p.ServicePartitionKind) + " partition"}
        }
        return nil
    }
    low, high, err := p.Int64Bounds()
    if err != nil { return []string{prefix + err.Error()} }
    if low > high { return []string{fmt.Sprintf("%sLowKey %d is greater than HighKey %d", prefix, low, high)} }
    return nil
}
