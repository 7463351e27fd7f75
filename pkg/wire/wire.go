// Package wire is the boundary a transport holds: it turns inbound gateway
// bytes into contract records by entity name and records back into bytes,
// with logging, metrics and tracing around each call.
package wire

import (
    "context"

    "github.com/rs/zerolog"
    "go.opentelemetry.io/otel/attribute"

    "github.com/amirimatin/go-fabric/pkg/contract"
    "github.com/amirimatin/go-fabric/pkg/contract/schema"
    "github.com/amirimatin/go-fabric/pkg/internal/logutil"
    "github.com/amirimatin/go-fabric/pkg/observability/metrics"
    "github.com/amirimatin/go-fabric/pkg/observability/tracing"
)

// Codec is safe for concurrent use.
type Codec struct {
    log       zerolog.Logger
    schema    bool
    canonical bool
}

type Option func(*Codec)

func WithLogger(l zerolog.Logger) Option { return func(c *Codec) { c.log = l } }

// WithSchemaValidation cross-checks every document the decoder accepts against
// the embedded JSON Schema. Mismatches are logged and counted in
// metrics.SchemaRejections; the decode result is unchanged.
func WithSchemaValidation(enabled bool) Option { return func(c *Codec) { c.schema = enabled } }

// WithCanonical makes Encode emit RFC 8785 canonical JSON.
func WithCanonical(enabled bool) Option { return func(c *Codec) { c.canonical = enabled } }

func New(opts ...Option) *Codec {
    metrics.Register()
    c := &Codec{log: logutil.Nop()}
    for _, o := range opts { o(c) }
    return c
}

// Decode parses data as the named entity.
func (c *Codec) Decode(ctx context.Context, entity string, data []byte) (contract.Record, error) {
    _, end := tracing.StartSpan(ctx, "contract.decode", attribute.String("entity", entity), attribute.Int("bytes", len(data)))
    r, err := c.decode(entity, data)
    end(err)
    metrics.Bytes.WithLabelValues("in").Add(float64(len(data)))
    metrics.DecodeTotal.WithLabelValues(entity, result(err)).Inc()
    if err != nil {
        logutil.Warnf(&c.log, "decode %s failed: %v", entity, err)
        return nil, err
    }
    logutil.Debugf(&c.log, "decoded %s (%d bytes)", entity, len(data))
    return r, nil
}

func (c *Codec) decode(entity string, data []byte) (contract.Record, error) {
    r, err := contract.New(entity)
    if err != nil { return nil, err }
    if err := c.decodeInto(data, r); err != nil { return nil, err }
    return r, nil
}

func (c *Codec) decodeInto(data []byte, r contract.Record) error {
    if err := contract.Unmarshal(data, r); err != nil { return err }
    if c.schema {
        // The decoder is authoritative; a schema failure here is reported, not returned.
        if err := schema.Validate(r.Entity(), data); err != nil {
            metrics.SchemaRejections.WithLabelValues(r.Entity()).Inc()
            logutil.Warnf(&c.log, "%s decoded but failed the schema cross-check: %v", r.Entity(), err)
        }
    }
    return nil
}

// DecodeInto parses data into r, for callers that hold a concrete type.
func (c *Codec) DecodeInto(ctx context.Context, data []byte, r contract.Record) error {
    _, end := tracing.StartSpan(ctx, "contract.decode", attribute.String("entity", r.Entity()), attribute.Int("bytes", len(data)))
    err := c.decodeInto(data, r)
    end(err)
    metrics.Bytes.WithLabelValues("in").Add(float64(len(data)))
    metrics.DecodeTotal.WithLabelValues(r.Entity(), result(err)).Inc()
    if err != nil { logutil.Warnf(&c.log, "decode %s failed: %v", r.Entity(), err) }
    return err
}

// Encode serializes r.
func (c *Codec) Encode(ctx context.Context, r contract.Record) ([]byte, error) {
    _, end := tracing.StartSpan(ctx, "contract.encode", attribute.String("entity", r.Entity()))
    var (
        b   []byte
        err error
    )
    if c.canonical {
        b, err = contract.Canonical(r)
    } else {
        b, err = contract.Marshal(r)
    }
    end(err)
    metrics.EncodeTotal.WithLabelValues(r.Entity(), contract.Kind(err)).Inc()
    if err != nil {
        logutil.Errorf(&c.log, "encode %s failed: %v", r.Entity(), err)
        return nil, err
    }
    metrics.Bytes.WithLabelValues("out").Add(float64(len(b)))
    return b, nil
}

func result(err error) string { return contract.Kind(err) }
