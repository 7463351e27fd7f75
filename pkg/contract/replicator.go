package contract

import (
    "fmt"
    "time"
)

// ReplicatorQueueStatus carries the health counters of a replication or copy
// queue.
//
// Producers must keep First <= Completed <= Committed <= Last. Decoding does
// not enforce it because a snapshot taken mid-update may be relaxed; call
// CheckOrdering where the invariant matters.
type ReplicatorQueueStatus struct {
    QueueUtilizationPercentage int
    QueueMemorySize            int64
    FirstSequenceNumber        int64
    CompletedSequenceNumber    int64
    CommittedSequenceNumber    int64
    LastSequenceNumber         int64
}

func (ReplicatorQueueStatus) Entity() string { return "ReplicatorQueueStatus" }

// CheckOrdering returns ErrSequenceOrder if the four sequence numbers are not
// monotonically non-decreasing.
func (q ReplicatorQueueStatus) CheckOrdering() error {
    if q.FirstSequenceNumber <= q.CompletedSequenceNumber &&
        q.CompletedSequenceNumber <= q.CommittedSequenceNumber &&
        q.CommittedSequenceNumber <= q.LastSequenceNumber {
        return nil
    }
    return fmt.Errorf("%w: first=%d completed=%d committed=%d last=%d", ErrSequenceOrder,
        q.FirstSequenceNumber, q.CompletedSequenceNumber, q.CommittedSequenceNumber, q.LastSequenceNumber)
}

func (q *ReplicatorQueueStatus) decode(d *decoder) {
    *q = ReplicatorQueueStatus{
        QueueUtilizationPercentage: d.int("QueueUtilizationPercentage", true),
        QueueMemorySize:            d.int64("QueueMemorySize", true),
        FirstSequenceNumber:        d.int64("FirstSequenceNumber", true),
        CompletedSequenceNumber:    d.int64("CompletedSequenceNumber", true),
        CommittedSequenceNumber:    d.int64("CommittedSequenceNumber", true),
        LastSequenceNumber:         d.int64("LastSequenceNumber", true),
    }
}

func (q ReplicatorQueueStatus) encode(e *encoder) {
    e.int("QueueUtilizationPercentage", q.QueueUtilizationPercentage)
    e.int64("QueueMemorySize", q.QueueMemorySize)
    e.int64("FirstSequenceNumber", q.FirstSequenceNumber)
    e.int64("CompletedSequenceNumber", q.CompletedSequenceNumber)
    e.int64("CommittedSequenceNumber", q.CommittedSequenceNumber)
    e.int64("LastSequenceNumber", q.LastSequenceNumber)
}

func (q ReplicatorQueueStatus) MarshalJSON() ([]byte, error) { return Marshal(&q) }
func (q *ReplicatorQueueStatus) UnmarshalJSON(b []byte) error { return Unmarshal(b, q) }

// RemoteReplicatorStatus is the primary's view of one secondary replicator.
type RemoteReplicatorStatus struct {
    ReplicaID                             string
    LastAcknowledgementProcessedTimeUtc   *time.Time
    LastReceivedReplicationSequenceNumber int64
    LastAppliedReplicationSequenceNumber  int64
    IsInBuild                             bool
    LastReceivedCopySequenceNumber        int64
    LastAppliedCopySequenceNumber         int64
}

func (RemoteReplicatorStatus) Entity() string { return "RemoteReplicatorStatus" }

func (r *RemoteReplicatorStatus) decode(d *decoder) {
    *r = RemoteReplicatorStatus{
        ReplicaID:                             d.str("ReplicaId", true),
        LastAcknowledgementProcessedTimeUtc:   d.timePtr("LastAcknowledgementProcessedTimeUtc", false),
        LastReceivedReplicationSequenceNumber: d.int64("LastReceivedReplicationSequenceNumber", false),
        LastAppliedReplicationSequenceNumber:  d.int64("LastAppliedReplicationSequenceNumber", false),
        IsInBuild:                             d.boolean("IsInBuild", false),
        LastReceivedCopySequenceNumber:        d.int64("LastReceivedCopySequenceNumber", false),
        LastAppliedCopySequenceNumber:         d.int64("LastAppliedCopySequenceNumber", false),
    }
}

func (r RemoteReplicatorStatus) encode(e *encoder) {
    e.str("ReplicaId", r.ReplicaID)
    e.timePtr("LastAcknowledgementProcessedTimeUtc", r.LastAcknowledgementProcessedTimeUtc)
    e.int64("LastReceivedReplicationSequenceNumber", r.LastReceivedReplicationSequenceNumber)
    e.int64("LastAppliedReplicationSequenceNumber", r.LastAppliedReplicationSequenceNumber)
    e.boolean("IsInBuild", r.IsInBuild)
    e.int64("LastReceivedCopySequenceNumber", r.LastReceivedCopySequenceNumber)
    e.int64("LastAppliedCopySequenceNumber", r.LastAppliedCopySequenceNumber)
}

func (r RemoteReplicatorStatus) MarshalJSON() ([]byte, error) { return Marshal(&r) }
func (r *RemoteReplicatorStatus) UnmarshalJSON(b []byte) error { return Unmarshal(b, r) }

// PrimaryReplicatorStatus is the payload of a primary replica's status.
type PrimaryReplicatorStatus struct {
    ReplicationQueueStatus ReplicatorQueueStatus
    RemoteReplicators      []RemoteReplicatorStatus
}

// SecondaryReplicatorStatus is the payload shared by active and idle
// secondaries. It has no remote replicator list.
type SecondaryReplicatorStatus struct {
    ReplicationQueueStatus                  ReplicatorQueueStatus
    IsInBuild                               bool
    LastReplicationOperationReceivedTimeUtc *time.Time
    LastAcknowledgementSentTimeUtc          *time.Time
}

// Variant names the payload selected by a ReplicaRole.
type Variant int

const (
    VariantUnknown Variant = iota
    VariantPrimary
    VariantSecondary
)

// ReplicatorStatus is a tagged union over the primary and secondary payloads.
// Kind selects the payload: Primary is set iff Kind is Primary, Secondary iff
// Kind is ActiveSecondary or IdleSecondary. Build values with
// NewPrimaryReplicatorStatus or NewSecondaryReplicatorStatus.
type ReplicatorStatus struct {
    Kind      ReplicaRole
    Primary   *PrimaryReplicatorStatus
    Secondary *SecondaryReplicatorStatus
}

func NewPrimaryReplicatorStatus(queue ReplicatorQueueStatus, remotes ...RemoteReplicatorStatus) ReplicatorStatus {
    return ReplicatorStatus{
        Kind: ReplicaRolePrimary,
        Primary: &PrimaryReplicatorStatus{
            ReplicationQueueStatus: queue,
            RemoteReplicators:      append([]RemoteReplicatorStatus{}, remotes...),
        },
    }
}

// NewSecondaryReplicatorStatus builds a secondary status. role must be
// ActiveSecondary or IdleSecondary.
func NewSecondaryReplicatorStatus(role ReplicaRole, s SecondaryReplicatorStatus) ReplicatorStatus {
    return ReplicatorStatus{Kind: role, Secondary: &s}
}

func (ReplicatorStatus) Entity() string { return "ReplicatorStatus" }

// Variant returns the payload selected by Kind.
func (s ReplicatorStatus) Variant() Variant {
    switch {
    case s.Kind == ReplicaRolePrimary:
        return VariantPrimary
    case s.Kind.IsSecondary():
        return VariantSecondary
    }
    return VariantUnknown
}

// QueueStatus returns the replication queue status of whichever variant is set.
func (s ReplicatorStatus) QueueStatus() (ReplicatorQueueStatus, bool) {
    switch s.Variant() {
    case VariantPrimary:
        if s.Primary != nil { return s.Primary.ReplicationQueueStatus, true }
    case VariantSecondary:
        if s.Secondary != nil { return s.Secondary.ReplicationQueueStatus, true }
    }
    return ReplicatorQueueStatus{}, false
}

// CheckOrdering applies ReplicatorQueueStatus.CheckOrdering to the selected
// variant's queue.
func (s ReplicatorStatus) CheckOrdering() error {
    q, ok := s.QueueStatus()
    if !ok { return fmt.Errorf("contract: replicator status %q has no queue status", s.Kind) }
    return q.CheckOrdering()
}

func (s *ReplicatorStatus) decode(d *decoder) {
    *s = ReplicatorStatus{}
    s.Kind = ReplicaRole(d.enum("Kind", true, func(v string) bool { return ReplicaRole(v).Valid() }, ErrUnknownVariant))
    switch s.Variant() {
    case VariantPrimary:
        p := &PrimaryReplicatorStatus{RemoteReplicators: []RemoteReplicatorStatus{}}
        d.object("ReplicationQueueStatus", true, p.ReplicationQueueStatus.decode)
        d.list("RemoteReplicators", func(d *decoder) {
            var r RemoteReplicatorStatus
            r.decode(d)
            p.RemoteReplicators = append(p.RemoteReplicators, r)
        })
        s.Primary = p
    case VariantSecondary:
        sec := &SecondaryReplicatorStatus{}
        d.object("ReplicationQueueStatus", true, sec.ReplicationQueueStatus.decode)
        sec.IsInBuild = d.boolean("IsInBuild", false)
        sec.LastReplicationOperationReceivedTimeUtc = d.timePtr("LastReplicationOperationReceivedTimeUtc", false)
        sec.LastAcknowledgementSentTimeUtc = d.timePtr("LastAcknowledgementSentTimeUtc", false)
        s.Secondary = sec
    }
    if d.failed() { *s = ReplicatorStatus{Kind: s.Kind} }
}

func (s ReplicatorStatus) encode(e *encoder) {
    switch s.Variant() {
    case VariantPrimary:
        if s.Primary == nil {
            e.fail("Primary", ErrUnknownVariant, "kind Primary without primary payload")
            return
        }
        e.str("Kind", string(s.Kind))
        e.object("ReplicationQueueStatus", s.Primary.ReplicationQueueStatus.encode)
        remotes := s.Primary.RemoteReplicators
        e.list("RemoteReplicators", len(remotes), func(i int, e *encoder) { remotes[i].encode(e) })
    case VariantSecondary:
        if s.Secondary == nil {
            e.fail("Secondary", ErrUnknownVariant, "kind "+string(s.Kind)+" without secondary payload")
            return
        }
        e.str("Kind", string(s.Kind))
        e.object("ReplicationQueueStatus", s.Secondary.ReplicationQueueStatus.encode)
        e.boolean("IsInBuild", s.Secondary.IsInBuild)
        e.timePtr("LastReplicationOperationReceivedTimeUtc", s.Secondary.LastReplicationOperationReceivedTimeUtc)
        e.timePtr("LastAcknowledgementSentTimeUtc", s.Secondary.LastAcknowledgementSentTimeUtc)
    default:
        e.fail("Kind", ErrUnknownVariant, "unknown replica role "+string(s.Kind))
    }
}

func (s ReplicatorStatus) MarshalJSON() ([]byte, error) { return Marshal(&s) }
func (s *ReplicatorStatus) UnmarshalJSON(b []byte) error { return Unmarshal(b, s) }
