package contract

import (
    "fmt"
    "strconv"

    "github.com/google/uuid"
)

// PartitionInformation identifies a partition and, for ranged partitions,
// the key range it owns. Keys are strings on the wire so that 64-bit bounds
// survive JSON consumers without integer precision.
//
// Decoding accepts Name, LowKey and HighKey for any kind. Encoding writes the
// keys only for Int64Range (both are then required) and Name only for Named.
type PartitionInformation struct {
    ServicePartitionKind PartitionKind
    ID                   uuid.UUID
    Name                 *string
    LowKey               *string
    HighKey              *string
}

// NewInt64RangePartition returns a ranged partition covering [low, high].
func NewInt64RangePartition(id uuid.UUID, low, high int64) PartitionInformation {
    lo, hi := strconv.FormatInt(low, 10), strconv.FormatInt(high, 10)
    return PartitionInformation{ServicePartitionKind: PartitionKindInt64Range, ID: id, LowKey: &lo, HighKey: &hi}
}

func NewNamedPartition(id uuid.UUID, name string) PartitionInformation {
    return PartitionInformation{ServicePartitionKind: PartitionKindNamed, ID: id, Name: &name}
}

func NewSingletonPartition(id uuid.UUID) PartitionInformation {
    return PartitionInformation{ServicePartitionKind: PartitionKindSingleton, ID: id}
}

func (PartitionInformation) Entity() string { return "PartitionInformation" }

// IsRanged reports whether the kind carries a key range.
func (p PartitionInformation) IsRanged() bool { return p.ServicePartitionKind == PartitionKindInt64Range }

// Int64Bounds parses LowKey and HighKey.
func (p PartitionInformation) Int64Bounds() (low, high int64, err error) {
    if p.LowKey == nil || p.HighKey == nil {
        return 0, 0, fmt.Errorf("contract: partition %s has no key range", p.ID)
    }
    if low, err = strconv.ParseInt(*p.LowKey, 10, 64); err != nil { return 0, 0, fmt.Errorf("contract: LowKey: %w", err) }
    if high, err = strconv.ParseInt(*p.HighKey, 10, 64); err != nil { return 0, 0, fmt.Errorf("contract: HighKey: %w", err) }
    return low, high, nil
}

func (p *PartitionInformation) decode(d *decoder) {
    *p = PartitionInformation{
        ServicePartitionKind: PartitionKind(d.enum("ServicePartitionKind", true, func(s string) bool { return PartitionKind(s).Valid() }, ErrTypeMismatch)),
        ID:                   d.guid("Id", true),
        Name:                 d.strPtr("Name"),
        LowKey:               d.strPtr("LowKey"),
        HighKey:              d.strPtr("HighKey"),
    }
}

func (p PartitionInformation) encode(e *encoder) {
    e.str("ServicePartitionKind", string(p.ServicePartitionKind))
    e.guid("Id", p.ID)
    switch p.ServicePartitionKind {
    case PartitionKindNamed:
        e.strPtr("Name", p.Name)
    case PartitionKindInt64Range:
        if p.LowKey == nil { e.fail("LowKey", ErrSchemaViolation, "ranged partition requires LowKey") }
        if p.HighKey == nil { e.fail("HighKey", ErrSchemaViolation, "ranged partition requires HighKey") }
        e.strPtr("LowKey", p.LowKey)
        e.strPtr("HighKey", p.HighKey)
    }
}

func (p PartitionInformation) MarshalJSON() ([]byte, error) { return Marshal(&p) }
func (p *PartitionInformation) UnmarshalJSON(b []byte) error { return Unmarshal(b, p) }
