package contract

// fixture is a valid gateway document for one entity together with the
// top-level fields that must be present for it to decode.
type fixture struct {
    entity   string
    doc      string
    required []string
}

const partitionGUID = "6e4b3c6a-2f1d-4a7e-9b0c-1d2e3f405162"

var fixtures = []fixture{
    {
        entity: "ClusterLoadInfo",
        doc: `{
            "LastBalancingStartTimeUtc": "2024-03-01T10:00:00Z",
            "LastBalancingEndTimeUtc": "2024-03-01T10:00:05.5Z",
            "LoadMetricInformation": [
                {"Name": "Count", "ClusterLoad": 12, "ClusterCapacity": 100, "IsBalancedBefore": true, "IsBalancedAfter": true, "Action": "NoActionNeeded"},
                {"Name": "MemoryInMb", "ClusterLoad": 512.5, "LastReportedUtc": "2024-03-01T09:59:00Z"}
            ]
        }`,
        required: []string{"LastBalancingStartTimeUtc", "LastBalancingEndTimeUtc"},
    },
    {
        entity:   "LoadMetricInformation",
        doc:      `{"Name": "Count", "ClusterLoad": 3}`,
        required: []string{"Name", "ClusterLoad"},
    },
    {
        entity: "NodeLoadInfo",
        doc: `{"NodeName": "_Node_0", "NodeLoadMetricInformation": [
            {"Name": "Count", "NodeLoad": 4, "NodeCapacity": 10, "NodeRemainingCapacity": 6}
        ]}`,
        required: []string{"NodeName"},
    },
    {
        entity:   "NodeLoadMetricInformation",
        doc:      `{"Name": "Count", "NodeLoad": 4, "IsCapacityViolation": false}`,
        required: []string{"Name", "NodeLoad"},
    },
    {
        entity:   "PartitionInformation",
        doc:      `{"ServicePartitionKind": "Int64Range", "Id": "` + partitionGUID + `", "LowKey": "0", "HighKey": "100"}`,
        required: []string{"ServicePartitionKind", "Id"},
    },
    {
        entity: "ReplicatorStatus",
        doc: `{
            "Kind": "Primary",
            "ReplicationQueueStatus": {"QueueUtilizationPercentage": 5, "QueueMemorySize": 4096, "FirstSequenceNumber": 1, "CompletedSequenceNumber": 5, "CommittedSequenceNumber": 7, "LastSequenceNumber": 9},
            "RemoteReplicators": [
                {"ReplicaId": "131", "LastReceivedReplicationSequenceNumber": 9, "LastAppliedReplicationSequenceNumber": 8},
                {"ReplicaId": "132", "IsInBuild": true, "LastAcknowledgementProcessedTimeUtc": "2024-03-01T10:00:00Z"}
            ]
        }`,
        required: []string{"Kind", "ReplicationQueueStatus"},
    },
    {
        entity: "ReplicatorQueueStatus",
        doc:    `{"QueueUtilizationPercentage": 0, "QueueMemorySize": 0, "FirstSequenceNumber": 1, "CompletedSequenceNumber": 1, "CommittedSequenceNumber": 2, "LastSequenceNumber": 3}`,
        required: []string{"QueueUtilizationPercentage", "QueueMemorySize", "FirstSequenceNumber",
            "CompletedSequenceNumber", "CommittedSequenceNumber", "LastSequenceNumber"},
    },
    {
        entity:   "RemoteReplicatorStatus",
        doc:      `{"ReplicaId": "131"}`,
        required: []string{"ReplicaId"},
    },
    {
        entity: "ServiceTypeInfo",
        doc: `{
            "ServiceTypeDescription": {"Kind": "Stateful", "ServiceTypeName": "CounterType", "HasPersistedState": true, "Extensions": [{"Name": "tier", "Value": "gold"}]},
            "ServiceManifestName": "CounterPkg",
            "ServiceManifestVersion": "1.0.0"
        }`,
        required: []string{"ServiceTypeDescription", "ServiceManifestName", "ServiceManifestVersion"},
    },
    {
        entity:   "ServiceTypeDescription",
        doc:      `{"Kind": "Stateless", "ServiceTypeName": "WebType", "UseImplicitHost": true}`,
        required: []string{"Kind", "ServiceTypeName"},
    },
    {
        entity:   "ServiceManifest",
        doc:      `{"Manifest": "<ServiceManifest Name=\"CounterPkg\"/>"}`,
        required: []string{"Manifest"},
    },
    {
        entity:   "NameValuePair",
        doc:      `{"Name": "k", "Value": "v"}`,
        required: []string{"Name", "Value"},
    },
    {
        entity:   "ResolvedEndpoint",
        doc:      `{"Kind": "StatefulPrimary", "Address": "{\"Endpoints\":{\"\":\"http://10.0.0.4:8080\"}}"}`,
        required: []string{"Kind", "Address"},
    },
    {
        entity: "ResolvedServicePartition",
        doc: `{
            "Name": "fabric:/App/Counter",
            "PartitionInformation": {"ServicePartitionKind": "Singleton", "Id": "` + partitionGUID + `"},
            "Endpoints": [{"Kind": "StatefulPrimary", "Address": "10.0.0.4:8080"}],
            "Version": "3"
        }`,
        required: []string{"Name", "PartitionInformation"},
    },
    {
        entity:   "NodeID",
        doc:      `{"Id": "2d5e8f6a9b0c1d2e"}`,
        required: []string{"Id"},
    },
    {
        entity:   "ProvisionApplicationTypeDescription",
        doc:      `{"ApplicationTypeBuildPath": "CounterApp", "Async": true}`,
        required: []string{"ApplicationTypeBuildPath"},
    },
    {
        entity:   "UnprovisionApplicationTypeDescriptionInfo",
        doc:      `{"ApplicationTypeVersion": "1.0.0"}`,
        required: []string{"ApplicationTypeVersion"},
    },
    {
        entity:   "UpdateServiceDescription",
        doc:      `{"ServiceKind": "Stateful", "Flags": "17", "TargetReplicaSetSize": 3, "MinReplicaSetSize": 2}`,
        required: []string{"ServiceKind"},
    },
    {
        entity: "StartNodeDescription",
        doc:    `{"IpAddressOrFQDN": "10.0.0.5", "ClusterConnectionPort": 19000, "NodeInstanceId": "131"}`,
    },
}
