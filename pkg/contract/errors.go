package contract

import (
    "errors"
    "fmt"
)

var (
    ErrSchemaViolation   = errors.New("contract: schema violation")
    ErrTypeMismatch      = errors.New("contract: type mismatch")
    ErrUnknownVariant    = errors.New("contract: unknown variant")
    ErrMalformedDocument = errors.New("contract: malformed document")

    // ErrSequenceOrder is advisory. Decoding never returns it; consumers
    // get it from CheckOrdering.
    ErrSequenceOrder = errors.New("contract: sequence numbers out of order")
)

// DecodeError reports a failure to move a record across the JSON boundary.
// Path is the dotted field path inside the document, empty for the root.
type DecodeError struct {
    Entity string
    Path   string
    Err    error
    Detail string
}

func (e *DecodeError) Error() string {
    msg := e.Err.Error()
    if e.Path != "" { msg = fmt.Sprintf("%s: %s.%s", msg, e.Entity, e.Path) } else { msg = fmt.Sprintf("%s: %s", msg, e.Entity) }
    if e.Detail != "" { msg += " (" + e.Detail + ")" }
    return msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Kind returns a short label for the error's sentinel, suitable for metric labels.
func Kind(err error) string {
    switch {
    case err == nil:
        return "ok"
    case errors.Is(err, ErrSchemaViolation):
        return "schema_violation"
    case errors.Is(err, ErrTypeMismatch):
        return "type_mismatch"
    case errors.Is(err, ErrUnknownVariant):
        return "unknown_variant"
    case errors.Is(err, ErrMalformedDocument):
        return "malformed_document"
    default:
        return "error"
    }
}
