package contract

// PartitionKind is the partitioning scheme of a service partition.
type PartitionKind string

const (
    PartitionKindInvalid    PartitionKind = "Invalid"
    PartitionKindSingleton  PartitionKind = "Singleton"
    PartitionKindInt64Range PartitionKind = "Int64Range"
    PartitionKindNamed      PartitionKind = "Named"
)

// Valid reports whether k is one of the documented partition kinds.
func (k PartitionKind) Valid() bool {
    switch k {
    case PartitionKindInvalid, PartitionKindSingleton, PartitionKindInt64Range, PartitionKindNamed:
        return true
    }
    return false
}

// ServiceKind distinguishes stateless from stateful services.
type ServiceKind string

const (
    ServiceKindInvalid   ServiceKind = "Invalid"
    ServiceKindStateless ServiceKind = "Stateless"
    ServiceKindStateful  ServiceKind = "Stateful"
)

func (k ServiceKind) Valid() bool {
    switch k {
    case ServiceKindInvalid, ServiceKindStateless, ServiceKindStateful:
        return true
    }
    return false
}

// ReplicaRole is the discriminant of ReplicatorStatus.
type ReplicaRole string

const (
    ReplicaRolePrimary         ReplicaRole = "Primary"
    ReplicaRoleActiveSecondary ReplicaRole = "ActiveSecondary"
    ReplicaRoleIdleSecondary   ReplicaRole = "IdleSecondary"
)

func (r ReplicaRole) Valid() bool {
    switch r {
    case ReplicaRolePrimary, ReplicaRoleActiveSecondary, ReplicaRoleIdleSecondary:
        return true
    }
    return false
}

// IsSecondary reports whether r selects the secondary status variant.
func (r ReplicaRole) IsSecondary() bool {
    return r == ReplicaRoleActiveSecondary || r == ReplicaRoleIdleSecondary
}

// EndpointRole is the role of the replica or instance serving an endpoint.
type EndpointRole string

const (
    EndpointRoleInvalid           EndpointRole = "Invalid"
    EndpointRoleStateless         EndpointRole = "Stateless"
    EndpointRoleStatefulPrimary   EndpointRole = "StatefulPrimary"
    EndpointRoleStatefulSecondary EndpointRole = "StatefulSecondary"
)

func (r EndpointRole) Valid() bool {
    switch r {
    case EndpointRoleInvalid, EndpointRoleStateless, EndpointRoleStatefulPrimary, EndpointRoleStatefulSecondary:
        return true
    }
    return false
}

// MoveCost is the default cost of moving a service's replicas.
type MoveCost string

const (
    MoveCostZero   MoveCost = "Zero"
    MoveCostLow    MoveCost = "Low"
    MoveCostMedium MoveCost = "Medium"
    MoveCostHigh   MoveCost = "High"
)

func (c MoveCost) Valid() bool {
    switch c {
    case MoveCostZero, MoveCostLow, MoveCostMedium, MoveCostHigh:
        return true
    }
    return false
}
