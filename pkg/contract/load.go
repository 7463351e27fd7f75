package contract

import "time"

// LoadMetricInformation is one metric's cluster-level balancing state.
// Names are unique within a ClusterLoadInfo by convention only.
type LoadMetricInformation struct {
    Name               string
    ClusterLoad        float64
    ClusterCapacity    float64
    IsBalancedBefore   bool
    IsBalancedAfter    bool
    DeviationBefore    float64
    DeviationAfter     float64
    BalancingThreshold float64
    Action             string
    ActivityThreshold  float64
    LastReportedUtc    *time.Time
}

func (LoadMetricInformation) Entity() string { return "LoadMetricInformation" }

func (m *LoadMetricInformation) decode(d *decoder) {
    *m = LoadMetricInformation{
        Name:               d.str("Name", true),
        ClusterLoad:        d.float("ClusterLoad", true),
        ClusterCapacity:    d.float("ClusterCapacity", false),
        IsBalancedBefore:   d.boolean("IsBalancedBefore", false),
        IsBalancedAfter:    d.boolean("IsBalancedAfter", false),
        DeviationBefore:    d.float("DeviationBefore", false),
        DeviationAfter:     d.float("DeviationAfter", false),
        BalancingThreshold: d.float("BalancingThreshold", false),
        Action:             d.str("Action", false),
        ActivityThreshold:  d.float("ActivityThreshold", false),
        LastReportedUtc:    d.timePtr("LastReportedUtc", false),
    }
}

func (m LoadMetricInformation) encode(e *encoder) {
    e.str("Name", m.Name)
    e.float("ClusterLoad", m.ClusterLoad)
    e.float("ClusterCapacity", m.ClusterCapacity)
    e.boolean("IsBalancedBefore", m.IsBalancedBefore)
    e.boolean("IsBalancedAfter", m.IsBalancedAfter)
    e.float("DeviationBefore", m.DeviationBefore)
    e.float("DeviationAfter", m.DeviationAfter)
    e.float("BalancingThreshold", m.BalancingThreshold)
    e.str("Action", m.Action)
    e.float("ActivityThreshold", m.ActivityThreshold)
    e.timePtr("LastReportedUtc", m.LastReportedUtc)
}

func (m LoadMetricInformation) MarshalJSON() ([]byte, error) { return Marshal(&m) }
func (m *LoadMetricInformation) UnmarshalJSON(b []byte) error { return Unmarshal(b, m) }

// ClusterLoadInfo is a cluster-wide load snapshot taken by the resource balancer.
type ClusterLoadInfo struct {
    LastBalancingStartTimeUtc time.Time
    LastBalancingEndTimeUtc   time.Time
    LoadMetricInformation     []LoadMetricInformation
}

// NewClusterLoadInfo returns a snapshot with an empty, non-nil metric list.
func NewClusterLoadInfo(metrics ...LoadMetricInformation) ClusterLoadInfo {
    return ClusterLoadInfo{LoadMetricInformation: append([]LoadMetricInformation{}, metrics...)}
}

func (ClusterLoadInfo) Entity() string { return "ClusterLoadInfo" }

// Metric returns the entry with the given name.
func (c ClusterLoadInfo) Metric(name string) (LoadMetricInformation, bool) {
    for _, m := range c.LoadMetricInformation {
        if m.Name == name { return m, true }
    }
    return LoadMetricInformation{}, false
}

func (c *ClusterLoadInfo) decode(d *decoder) {
    *c = NewClusterLoadInfo()
    c.LastBalancingStartTimeUtc = d.timestamp("LastBalancingStartTimeUtc", true)
    c.LastBalancingEndTimeUtc = d.timestamp("LastBalancingEndTimeUtc", true)
    d.list("LoadMetricInformation", func(d *decoder) {
        var m LoadMetricInformation
        m.decode(d)
        c.LoadMetricInformation = append(c.LoadMetricInformation, m)
    })
}

func (c ClusterLoadInfo) encode(e *encoder) {
    e.timestamp("LastBalancingStartTimeUtc", c.LastBalancingStartTimeUtc)
    e.timestamp("LastBalancingEndTimeUtc", c.LastBalancingEndTimeUtc)
    e.list("LoadMetricInformation", len(c.LoadMetricInformation), func(i int, e *encoder) {
        c.LoadMetricInformation[i].encode(e)
    })
}

func (c ClusterLoadInfo) MarshalJSON() ([]byte, error) { return Marshal(&c) }
func (c *ClusterLoadInfo) UnmarshalJSON(b []byte) error { return Unmarshal(b, c) }

// NodeLoadMetricInformation is one metric's load on a single node.
type NodeLoadMetricInformation struct {
    Name                          string
    NodeLoad                      float64
    NodeCapacity                  float64
    NodeRemainingCapacity         float64
    IsCapacityViolation           bool
    NodeBufferedCapacity          float64
    NodeRemainingBufferedCapacity float64
}

func (NodeLoadMetricInformation) Entity() string { return "NodeLoadMetricInformation" }

func (m *NodeLoadMetricInformation) decode(d *decoder) {
    *m = NodeLoadMetricInformation{
        Name:                          d.str("Name", true),
        NodeLoad:                      d.float("NodeLoad", true),
        NodeCapacity:                  d.float("NodeCapacity", false),
        NodeRemainingCapacity:         d.float("NodeRemainingCapacity", false),
        IsCapacityViolation:           d.boolean("IsCapacityViolation", false),
        NodeBufferedCapacity:          d.float("NodeBufferedCapacity", false),
        NodeRemainingBufferedCapacity: d.float("NodeRemainingBufferedCapacity", false),
    }
}

func (m NodeLoadMetricInformation) encode(e *encoder) {
    e.str("Name", m.Name)
    e.float("NodeLoad", m.NodeLoad)
    e.float("NodeCapacity", m.NodeCapacity)
    e.float("NodeRemainingCapacity", m.NodeRemainingCapacity)
    e.boolean("IsCapacityViolation", m.IsCapacityViolation)
    e.float("NodeBufferedCapacity", m.NodeBufferedCapacity)
    e.float("NodeRemainingBufferedCapacity", m.NodeRemainingBufferedCapacity)
}

func (m NodeLoadMetricInformation) MarshalJSON() ([]byte, error) { return Marshal(&m) }
func (m *NodeLoadMetricInformation) UnmarshalJSON(b []byte) error { return Unmarshal(b, m) }

// NodeLoadInfo is a per-node load snapshot.
type NodeLoadInfo struct {
    NodeName                  string
    NodeLoadMetricInformation []NodeLoadMetricInformation
}

func NewNodeLoadInfo(nodeName string, metrics ...NodeLoadMetricInformation) NodeLoadInfo {
    return NodeLoadInfo{NodeName: nodeName, NodeLoadMetricInformation: append([]NodeLoadMetricInformation{}, metrics...)}
}

func (NodeLoadInfo) Entity() string { return "NodeLoadInfo" }

func (n *NodeLoadInfo) decode(d *decoder) {
    *n = NewNodeLoadInfo(d.str("NodeName", true))
    d.list("NodeLoadMetricInformation", func(d *decoder) {
        var m NodeLoadMetricInformation
        m.decode(d)
        n.NodeLoadMetricInformation = append(n.NodeLoadMetricInformation, m)
    })
}

func (n NodeLoadInfo) encode(e *encoder) {
    e.str("NodeName", n.NodeName)
    e.list("NodeLoadMetricInformation", len(n.NodeLoadMetricInformation), func(i int, e *encoder) {
        n.NodeLoadMetricInformation[i].encode(e)
    })
}

func (n NodeLoadInfo) MarshalJSON() ([]byte, error) { return Marshal(&n) }
func (n *NodeLoadInfo) UnmarshalJSON(b []byte) error { return Unmarshal(b, n) }
