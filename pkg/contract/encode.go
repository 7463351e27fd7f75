package contract

import (
    "bytes"
    "encoding/json"
    "strconv"
    "time"

    "github.com/google/uuid"
)

// encoder writes the fields of one JSON object in call order. Field order is
// fixed per record so output is stable without canonicalisation.
type encoder struct {
    st   *decodeState
    buf  *bytes.Buffer
    path string
    n    int
}

func newEncoder(entity string) *encoder {
    return &encoder{st: &decodeState{entity: entity}, buf: &bytes.Buffer{}}
}

func (e *encoder) err() error {
    if e.st.err == nil { return nil }
    return e.st.err
}

func (e *encoder) join(name string) string {
    if e.path == "" { return name }
    return e.path + "." + name
}

func (e *encoder) fail(name string, sentinel error, detail string) {
    if e.st.err != nil { return }
    e.st.err = &DecodeError{Entity: e.st.entity, Path: e.join(name), Err: sentinel, Detail: detail}
}

func (e *encoder) key(name string) {
    if e.n > 0 { e.buf.WriteByte(',') }
    e.n++
    e.buf.WriteString(strconv.Quote(name))
    e.buf.WriteByte(':')
}

func (e *encoder) str(name, v string) {
    e.key(name)
    b, _ := json.Marshal(v)
    e.buf.Write(b)
}

func (e *encoder) int64(name string, v int64) {
    e.key(name)
    e.buf.WriteString(strconv.FormatInt(v, 10))
}

func (e *encoder) int(name string, v int) { e.int64(name, int64(v)) }

func (e *encoder) intPtr(name string, v *int) {
    if v == nil { return }
    e.int(name, *v)
}

func (e *encoder) float(name string, v float64) {
    b, err := json.Marshal(v)
    if err != nil {
        e.fail(name, ErrTypeMismatch, "number is not representable in JSON")
        return
    }
    e.key(name)
    e.buf.Write(b)
}

func (e *encoder) boolean(name string, v bool) {
    e.key(name)
    e.buf.WriteString(strconv.FormatBool(v))
}

func (e *encoder) timestamp(name string, t time.Time) {
    e.str(name, t.UTC().Format(time.RFC3339Nano))
}

func (e *encoder) timePtr(name string, t *time.Time) {
    if t == nil { return }
    e.timestamp(name, *t)
}

func (e *encoder) strPtr(name string, s *string) {
    if s == nil { return }
    e.str(name, *s)
}

func (e *encoder) guid(name string, id uuid.UUID) { e.str(name, id.String()) }

func (e *encoder) object(name string, fn func(*encoder)) {
    e.key(name)
    e.buf.WriteByte('{')
    fn(&encoder{st: e.st, buf: e.buf, path: e.join(name)})
    e.buf.WriteByte('}')
}

// list writes n objects. An empty list is written as [] so owners never emit
// null or drop the key.
func (e *encoder) list(name string, n int, fn func(i int, e *encoder)) {
    e.key(name)
    e.buf.WriteByte('[')
    for i := 0; i < n; i++ {
        if i > 0 { e.buf.WriteByte(',') }
        e.buf.WriteByte('{')
        fn(i, &encoder{st: e.st, buf: e.buf, path: e.join(name) + "[" + strconv.Itoa(i) + "]"})
        e.buf.WriteByte('}')
    }
    e.buf.WriteByte(']')
}
