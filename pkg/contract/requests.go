package contract

import (
    "strconv"
)

// ProvisionApplicationTypeDescription is the body of a provision request.
type ProvisionApplicationTypeDescription struct {
    ApplicationTypeBuildPath string
    Async                    bool
}

func NewProvisionApplicationTypeDescription(buildPath string) ProvisionApplicationTypeDescription {
    return ProvisionApplicationTypeDescription{ApplicationTypeBuildPath: buildPath, Async: false}
}

func (ProvisionApplicationTypeDescription) Entity() string { return "ProvisionApplicationTypeDescription" }

func (p *ProvisionApplicationTypeDescription) decode(d *decoder) {
    *p = NewProvisionApplicationTypeDescription(d.str("ApplicationTypeBuildPath", true))
    p.Async = d.boolean("Async", false)
}

func (p ProvisionApplicationTypeDescription) encode(e *encoder) {
    e.str("ApplicationTypeBuildPath", p.ApplicationTypeBuildPath)
    e.boolean("Async", p.Async)
}

func (p ProvisionApplicationTypeDescription) MarshalJSON() ([]byte, error) { return Marshal(&p) }
func (p *ProvisionApplicationTypeDescription) UnmarshalJSON(b []byte) error { return Unmarshal(b, p) }

// UnprovisionApplicationTypeDescriptionInfo is the body of an unprovision
// request. Async defaults to false.
type UnprovisionApplicationTypeDescriptionInfo struct {
    ApplicationTypeVersion string
    Async                  bool
}

func NewUnprovisionApplicationTypeDescriptionInfo(version string) UnprovisionApplicationTypeDescriptionInfo {
    return UnprovisionApplicationTypeDescriptionInfo{ApplicationTypeVersion: version, Async: false}
}

func (UnprovisionApplicationTypeDescriptionInfo) Entity() string {
    return "UnprovisionApplicationTypeDescriptionInfo"
}

func (u *UnprovisionApplicationTypeDescriptionInfo) decode(d *decoder) {
    *u = NewUnprovisionApplicationTypeDescriptionInfo(d.str("ApplicationTypeVersion", true))
    u.Async = d.boolean("Async", false)
}

func (u UnprovisionApplicationTypeDescriptionInfo) encode(e *encoder) {
    e.str("ApplicationTypeVersion", u.ApplicationTypeVersion)
    e.boolean("Async", u.Async)
}

func (u UnprovisionApplicationTypeDescriptionInfo) MarshalJSON() ([]byte, error) { return Marshal(&u) }
func (u *UnprovisionApplicationTypeDescriptionInfo) UnmarshalJSON(b []byte) error { return Unmarshal(b, u) }

// Update flags mark which optional fields of an UpdateServiceDescription carry
// a new value. The gateway reads them from the decimal Flags string.
const (
    UpdateFlagReplicaCount         = 1
    UpdateFlagMinReplicaSetSize    = 16
    UpdateFlagPlacementConstraints = 32
    UpdateFlagDefaultMoveCost      = 512
)

// UpdateServiceDescription is the body of an update-service request. Nil
// fields are left unchanged by the gateway. TargetReplicaSetSize and
// MinReplicaSetSize apply to stateful services, InstanceCount to stateless.
type UpdateServiceDescription struct {
    ServiceKind          ServiceKind
    PlacementConstraints *string
    DefaultMoveCost      *MoveCost
    TargetReplicaSetSize *int
    MinReplicaSetSize    *int
    InstanceCount        *int
}

func NewUpdateServiceDescription(kind ServiceKind) UpdateServiceDescription {
    return UpdateServiceDescription{ServiceKind: kind}
}

func (UpdateServiceDescription) Entity() string { return "UpdateServiceDescription" }

// Flags derives the update mask from the fields that are set for the kind.
func (u UpdateServiceDescription) Flags() string {
    var f int
    switch u.ServiceKind {
    case ServiceKindStateful:
        if u.TargetReplicaSetSize != nil { f |= UpdateFlagReplicaCount }
        if u.MinReplicaSetSize != nil { f |= UpdateFlagMinReplicaSetSize }
    case ServiceKindStateless:
        if u.InstanceCount != nil { f |= UpdateFlagReplicaCount }
    }
    if u.PlacementConstraints != nil { f |= UpdateFlagPlacementConstraints }
    if u.DefaultMoveCost != nil { f |= UpdateFlagDefaultMoveCost }
    return strconv.Itoa(f)
}

func (u *UpdateServiceDescription) decode(d *decoder) {
    *u = NewUpdateServiceDescription(ServiceKind(d.enum("ServiceKind", true, func(v string) bool { return ServiceKind(v).Valid() }, ErrTypeMismatch)))
    if s, ok := d.optStr("Flags", false); ok {
        if _, err := strconv.Atoi(s); err != nil { d.fail("Flags", ErrTypeMismatch, "expected decimal flag mask") }
    }
    u.PlacementConstraints = d.strPtr("PlacementConstraints")
    if s, ok := d.optStr("DefaultMoveCost", false); ok {
        if !MoveCost(s).Valid() {
            d.fail("DefaultMoveCost", ErrTypeMismatch, strconv.Quote(s)+" is not a known value")
        } else {
            c := MoveCost(s)
            u.DefaultMoveCost = &c
        }
    }
    u.TargetReplicaSetSize = d.intPtr("TargetReplicaSetSize")
    u.MinReplicaSetSize = d.intPtr("MinReplicaSetSize")
    u.InstanceCount = d.intPtr("InstanceCount")
}

func (u UpdateServiceDescription) encode(e *encoder) {
    e.str("ServiceKind", string(u.ServiceKind))
    e.str("Flags", u.Flags())
    e.strPtr("PlacementConstraints", u.PlacementConstraints)
    if u.DefaultMoveCost != nil { e.str("DefaultMoveCost", string(*u.DefaultMoveCost)) }
    switch u.ServiceKind {
    case ServiceKindStateful:
        e.intPtr("TargetReplicaSetSize", u.TargetReplicaSetSize)
        e.intPtr("MinReplicaSetSize", u.MinReplicaSetSize)
    case ServiceKindStateless:
        e.intPtr("InstanceCount", u.InstanceCount)
    }
}

func (u UpdateServiceDescription) MarshalJSON() ([]byte, error) { return Marshal(&u) }
func (u *UpdateServiceDescription) UnmarshalJSON(b []byte) error { return Unmarshal(b, u) }

// Placeholder start-node parameters used when the caller has no real address.
const (
    DefaultStartNodeAddress        = "1.2.3.4"
    DefaultStartNodePort           = 567
    DefaultStartNodeNodeInstanceID = "0"
)

// StartNodeDescription is the body of a start-node request.
type StartNodeDescription struct {
    IPAddressOrFQDN       string
    ClusterConnectionPort int
    NodeInstanceID        string
}

// NewStartNodeDescription returns the placeholder description.
func NewStartNodeDescription() StartNodeDescription {
    return StartNodeDescription{
        IPAddressOrFQDN:       DefaultStartNodeAddress,
        ClusterConnectionPort: DefaultStartNodePort,
        NodeInstanceID:        DefaultStartNodeNodeInstanceID,
    }
}

func (StartNodeDescription) Entity() string { return "StartNodeDescription" }

func (s *StartNodeDescription) decode(d *decoder) {
    *s = NewStartNodeDescription()
    if v, ok := d.optStr("IpAddressOrFQDN", false); ok { s.IPAddressOrFQDN = v }
    if _, ok := d.lookup("ClusterConnectionPort", false); ok { s.ClusterConnectionPort = d.int("ClusterConnectionPort", false) }
    if v, ok := d.optStr("NodeInstanceId", false); ok { s.NodeInstanceID = v }
}

func (s StartNodeDescription) encode(e *encoder) {
    e.str("IpAddressOrFQDN", s.IPAddressOrFQDN)
    e.int("ClusterConnectionPort", s.ClusterConnectionPort)
    e.str("NodeInstanceId", s.NodeInstanceID)
}

func (s StartNodeDescription) MarshalJSON() ([]byte, error) { return Marshal(&s) }
func (s *StartNodeDescription) UnmarshalJSON(b []byte) error { return Unmarshal(b, s) }
