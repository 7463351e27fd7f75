package contract

// NodeID is the opaque identity of a cluster node.
type NodeID struct {
    ID string
}

func (NodeID) Entity() string { return "NodeID" }

func (n *NodeID) decode(d *decoder) { *n = NodeID{ID: d.str("Id", true)} }

func (n NodeID) encode(e *encoder) { e.str("Id", n.ID) }

func (n NodeID) MarshalJSON() ([]byte, error) { return Marshal(&n) }
func (n *NodeID) UnmarshalJSON(b []byte) error { return Unmarshal(b, n) }

// ResolvedEndpoint is one listening address of a resolved partition.
type ResolvedEndpoint struct {
    Kind    EndpointRole
    Address string
}

func (ResolvedEndpoint) Entity() string { return "ResolvedEndpoint" }

func (r *ResolvedEndpoint) decode(d *decoder) {
    *r = ResolvedEndpoint{
        Kind:    EndpointRole(d.enum("Kind", true, func(v string) bool { return EndpointRole(v).Valid() }, ErrTypeMismatch)),
        Address: d.str("Address", true),
    }
}

func (r ResolvedEndpoint) encode(e *encoder) {
    e.str("Kind", string(r.Kind))
    e.str("Address", r.Address)
}

func (r ResolvedEndpoint) MarshalJSON() ([]byte, error) { return Marshal(&r) }
func (r *ResolvedEndpoint) UnmarshalJSON(b []byte) error { return Unmarshal(b, r) }

// ResolvedServicePartition is the result of resolving a service name to a
// partition and its endpoints. Version increases whenever the endpoints change.
type ResolvedServicePartition struct {
    Name                 string
    PartitionInformation PartitionInformation
    Endpoints            []ResolvedEndpoint
    Version              string
}

func NewResolvedServicePartition(name string, partition PartitionInformation, endpoints ...ResolvedEndpoint) ResolvedServicePartition {
    return ResolvedServicePartition{Name: name, PartitionInformation: partition, Endpoints: append([]ResolvedEndpoint{}, endpoints...)}
}

func (ResolvedServicePartition) Entity() string { return "ResolvedServicePartition" }

// Primary returns the address of the stateful primary endpoint, if any.
func (r ResolvedServicePartition) Primary() (string, bool) {
    for _, ep := range r.Endpoints {
        if ep.Kind == EndpointRoleStatefulPrimary { return ep.Address, true }
    }
    return "", false
}

func (r *ResolvedServicePartition) decode(d *decoder) {
    *r = NewResolvedServicePartition(d.str("Name", true), PartitionInformation{})
    d.object("PartitionInformation", true, r.PartitionInformation.decode)
    d.list("Endpoints", func(d *decoder) {
        var ep ResolvedEndpoint
        ep.decode(d)
        r.Endpoints = append(r.Endpoints, ep)
    })
    r.Version = d.str("Version", false)
}

func (r ResolvedServicePartition) encode(e *encoder) {
    e.str("Name", r.Name)
    e.object("PartitionInformation", r.PartitionInformation.encode)
    e.list("Endpoints", len(r.Endpoints), func(i int, e *encoder) { r.Endpoints[i].encode(e) })
    e.str("Version", r.Version)
}

func (r ResolvedServicePartition) MarshalJSON() ([]byte, error) { return Marshal(&r) }
func (r *ResolvedServicePartition) UnmarshalJSON(b []byte) error { return Unmarshal(b, r) }
