package contract

import (
    "bytes"
    "encoding/json"
    "math"
    "strconv"
    "strings"
    "time"

    "github.com/google/uuid"
)

// jsonKind is the JSON value kind of a raw field, read from its first byte.
type jsonKind int

const (
    kindInvalid jsonKind = iota
    kindNull
    kindBool
    kindNumber
    kindString
    kindArray
    kindObject
)

func (k jsonKind) String() string {
    switch k {
    case kindNull:
        return "null"
    case kindBool:
        return "boolean"
    case kindNumber:
        return "number"
    case kindString:
        return "string"
    case kindArray:
        return "array"
    case kindObject:
        return "object"
    }
    return "invalid"
}

func kindOf(raw []byte) jsonKind {
    raw = bytes.TrimLeft(raw, " \t\r\n")
    if len(raw) == 0 { return kindInvalid }
    switch raw[0] {
    case 'n':
        return kindNull
    case 't', 'f':
        return kindBool
    case '"':
        return kindString
    case '[':
        return kindArray
    case '{':
        return kindObject
    case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
        return kindNumber
    }
    return kindInvalid
}

// decodeState is shared by a root decoder and all of its nested decoders.
// Only the first failure is kept.
type decodeState struct {
    entity string
    err    *DecodeError
}

// decoder reads the fields of one JSON object. Getters never panic; after the
// first failure they return zero values and the failure is reported once the
// whole record has been walked.
type decoder struct {
    st     *decodeState
    path   string
    fields map[string]json.RawMessage
}

func newDecoder(entity string, data []byte) (*decoder, error) {
    if !json.Valid(data) {
        return nil, &DecodeError{Entity: entity, Err: ErrMalformedDocument, Detail: "input is not valid JSON"}
    }
    st := &decodeState{entity: entity}
    d := openObject(st, "", data)
    if st.err != nil { return nil, st.err }
    return d, nil
}

func openObject(st *decodeState, path string, raw []byte) *decoder {
    d := &decoder{st: st, path: path}
    if k := kindOf(raw); k != kindObject {
        d.failAt(path, ErrTypeMismatch, "expected object, got "+k.String())
        return d
    }
    if err := json.Unmarshal(raw, &d.fields); err != nil {
        d.failAt(path, ErrMalformedDocument, err.Error())
    }
    return d
}

func (d *decoder) err() error {
    if d.st.err == nil { return nil }
    return d.st.err
}

func (d *decoder) failed() bool { return d.st.err != nil }

func (d *decoder) join(name string) string {
    switch {
    case d.path == "":
        return name
    case name == "":
        return d.path
    case strings.HasPrefix(name, "["):
        return d.path + name
    }
    return d.path + "." + name
}

func (d *decoder) fail(name string, sentinel error, detail string) { d.failAt(d.join(name), sentinel, detail) }

func (d *decoder) failAt(path string, sentinel error, detail string) {
    if d.st.err != nil { return }
    d.st.err = &DecodeError{Entity: d.st.entity, Path: path, Err: sentinel, Detail: detail}
}

// lookup returns a present, non-null field. A null value counts as absent.
func (d *decoder) lookup(name string, required bool) (json.RawMessage, bool) {
    raw, ok := d.fields[name]
    if ok && kindOf(raw) == kindNull { ok = false }
    if !ok && required { d.fail(name, ErrSchemaViolation, "required field missing") }
    return raw, ok
}

func (d *decoder) expect(name string, raw []byte, want jsonKind) bool {
    if got := kindOf(raw); got != want {
        d.fail(name, ErrTypeMismatch, "expected "+want.String()+", got "+got.String())
        return false
    }
    return true
}

func (d *decoder) str(name string, required bool) string {
    s, _ := d.optStr(name, required)
    return s
}

func (d *decoder) optStr(name string, required bool) (string, bool) {
    raw, ok := d.lookup(name, required)
    if !ok || !d.expect(name, raw, kindString) { return "", false }
    var s string
    if err := json.Unmarshal(raw, &s); err != nil {
        d.fail(name, ErrMalformedDocument, err.Error())
        return "", false
    }
    return s, true
}

// strPtr decodes an optional string whose presence is significant.
func (d *decoder) strPtr(name string) *string {
    s, ok := d.optStr(name, false)
    if !ok { return nil }
    return &s
}

func (d *decoder) int64(name string, required bool) int64 {
    raw, ok := d.lookup(name, required)
    if !ok || !d.expect(name, raw, kindNumber) { return 0 }
    v, err := strconv.ParseInt(string(bytes.TrimSpace(raw)), 10, 64)
    if err != nil {
        d.fail(name, ErrTypeMismatch, "expected 64-bit integer, got "+string(raw))
        return 0
    }
    return v
}

func (d *decoder) int(name string, required bool) int {
    v := d.int64(name, required)
    if v > math.MaxInt32 || v < math.MinInt32 {
        d.fail(name, ErrTypeMismatch, "integer out of range")
        return 0
    }
    return int(v)
}

// intPtr decodes an optional integer whose presence is significant.
func (d *decoder) intPtr(name string) *int {
    if _, ok := d.lookup(name, false); !ok { return nil }
    v := d.int(name, false)
    return &v
}

func (d *decoder) float(name string, required bool) float64 {
    raw, ok := d.lookup(name, required)
    if !ok || !d.expect(name, raw, kindNumber) { return 0 }
    v, err := strconv.ParseFloat(string(bytes.TrimSpace(raw)), 64)
    if err != nil {
        d.fail(name, ErrTypeMismatch, "number out of range")
        return 0
    }
    return v
}

// boolean decodes an optional flag, returning def when absent.
func (d *decoder) boolean(name string, def bool) bool {
    raw, ok := d.lookup(name, false)
    if !ok || !d.expect(name, raw, kindBool) { return def }
    return bytes.HasPrefix(bytes.TrimSpace(raw), []byte("true"))
}

func (d *decoder) timestamp(name string, required bool) time.Time {
    t := d.timePtr(name, required)
    if t == nil { return time.Time{} }
    return *t
}

func (d *decoder) timePtr(name string, required bool) *time.Time {
    s, ok := d.optStr(name, required)
    if !ok { return nil }
    t, err := time.Parse(time.RFC3339, s)
    if err != nil {
        d.fail(name, ErrTypeMismatch, "expected RFC 3339 timestamp")
        return nil
    }
    t = t.UTC()
    return &t
}

func (d *decoder) guid(name string, required bool) uuid.UUID {
    s, ok := d.optStr(name, required)
    if !ok { return uuid.Nil }
    id, err := uuid.Parse(s)
    if err != nil {
        d.fail(name, ErrTypeMismatch, "expected GUID")
        return uuid.Nil
    }
    return id
}

// enum decodes a string that must satisfy valid. Values outside the set fail
// with outOfSet (ErrTypeMismatch for plain enums, ErrUnknownVariant for
// discriminants).
func (d *decoder) enum(name string, required bool, valid func(string) bool, outOfSet error) string {
    s, ok := d.optStr(name, required)
    if !ok { return "" }
    if !valid(s) {
        d.fail(name, outOfSet, strconv.Quote(s)+" is not a known value")
        return ""
    }
    return s
}

// object decodes a nested record. It reports whether the field was present.
func (d *decoder) object(name string, required bool, fn func(*decoder)) bool {
    raw, ok := d.lookup(name, required)
    if !ok || d.failed() { return false }
    child := openObject(d.st, d.join(name), raw)
    if d.failed() { return false }
    fn(child)
    return true
}

// list decodes an array of objects. Absent and null lists decode as empty.
func (d *decoder) list(name string, fn func(*decoder)) {
    raw, ok := d.lookup(name, false)
    if !ok || !d.expect(name, raw, kindArray) { return }
    decodeArray(d.st, d.join(name), raw, fn)
}

func decodeArray(st *decodeState, path string, raw []byte, fn func(*decoder)) int {
    if st.err != nil { return 0 }
    var items []json.RawMessage
    if err := json.Unmarshal(raw, &items); err != nil {
        st.err = &DecodeError{Entity: st.entity, Path: path, Err: ErrTypeMismatch, Detail: "expected array"}
        return 0
    }
    for i, item := range items {
        child := openObject(st, path+"["+strconv.Itoa(i)+"]", item)
        if st.err != nil { return i }
        fn(child)
        if st.err != nil { return i }
    }
    return len(items)
}
