package cli

import (
    "bytes"
    "context"
    "encoding/json"
    "errors"
    "fmt"
    "io"
    "os"
    "os/signal"
    "strconv"
    "strings"
    "syscall"

    "github.com/rs/zerolog"
    "github.com/spf13/cobra"

    "github.com/amirimatin/go-fabric/pkg/config"
    "github.com/amirimatin/go-fabric/pkg/contract"
    "github.com/amirimatin/go-fabric/pkg/contract/schema"
    "github.com/amirimatin/go-fabric/pkg/internal/logutil"
    tracing "github.com/amirimatin/go-fabric/pkg/observability/tracing"
    "github.com/amirimatin/go-fabric/pkg/wire"
)

// ErrFindings is returned by check when a document decodes but breaks an
// advisory invariant.
var ErrFindings = errors.New("cli: advisory checks failed")

// AddAll attaches the contract subcommands (entities/decode/validate/template/check)
// and the shared --config flag to the provided root command.
func AddAll(root *cobra.Command) {
    root.PersistentFlags().String("config", "", "config file (default ./fabric.yaml if present)")
    root.AddCommand(NewEntitiesCmd())
    root.AddCommand(NewDecodeCmd())
    root.AddCommand(NewValidateCmd())
    root.AddCommand(NewTemplateCmd())
    root.AddCommand(NewCheckCmd())
}

// NewContractCommand returns a parent command "contract" containing the
// subcommands, for embedding in another CLI.
func NewContractCommand() *cobra.Command {
    parent := &cobra.Command{Use: "contract", Short: "gateway contract tooling"}
    AddAll(parent)
    return parent
}

// NewEntitiesCmd returns the "entities" command.
func NewEntitiesCmd() *cobra.Command {
    return &cobra.Command{
        Use:   "entities",
        Short: "List the entity names accepted by the other commands",
        Args:  cobra.NoArgs,
        RunE: func(cmd *cobra.Command, args []string) error {
            for _, name := range contract.Entities() { fmt.Fprintln(cmd.OutOrStdout(), name) }
            return nil
        },
    }
}

// NewDecodeCmd returns the "decode" command: it decodes a document and
// prints the record in normalised form.
func NewDecodeCmd() *cobra.Command {
    var (
        list, indent bool
    )
    cmd := &cobra.Command{
        Use:   "decode <entity> [file|-]",
        Short: "Decode a gateway document and print it normalised",
        Args:  cobra.RangeArgs(1, 2),
        RunE: func(cmd *cobra.Command, args []string) error {
            rt, err := setup(cmd)
            if err != nil { return err }
            defer rt.close()
            data, err := readInput(cmd, args)
            if err != nil { return err }

            var out []byte
            if list {
                out, err = decodeList(rt, args[0], data)
            } else {
                var r contract.Record
                if r, err = rt.codec.Decode(rt.ctx, args[0], data); err == nil {
                    out, err = rt.codec.Encode(rt.ctx, r)
                }
            }
            if err != nil { return err }
            return writeJSON(cmd.OutOrStdout(), out, indent)
        },
    }
    cmd.Flags().BoolVar(&list, "list", false, "input is a JSON array of the entity")
    cmd.Flags().BoolVar(&indent, "indent", false, "indent the output")
    return cmd
}

// NewValidateCmd returns the "validate" command: it runs the JSON Schema
// cross-check and the contract decoder and reports every problem found.
func NewValidateCmd() *cobra.Command {
    cmd := &cobra.Command{
        Use:   "validate <entity> [file|-]",
        Short: "Check a document against the schema and the decoder",
        Args:  cobra.RangeArgs(1, 2),
        RunE: func(cmd *cobra.Command, args []string) error {
            rt, err := setup(cmd)
            if err != nil { return err }
            defer rt.close()
            data, err := readInput(cmd, args)
            if err != nil { return err }

            entity, w := args[0], cmd.OutOrStdout()
            var failed bool
            if err := schema.Validate(entity, data); err != nil {
                var ve *schema.ValidationError
                if !errors.As(err, &ve) { return err }
                failed = true
                for _, p := range ve.Problems { fmt.Fprintf(w, "schema  %s: %s\n", orRoot(p.Location), p.Message) }
            }
            r, err := contract.New(entity)
            if err != nil { return err }
            if err := rt.codec.DecodeInto(rt.ctx, data, r); err != nil {
                failed = true
                fmt.Fprintf(w, "decode  %v\n", err)
            }
            if failed { return fmt.Errorf("validate: %s does not conform", entity) }
            fmt.Fprintln(w, "ok")
            return nil
        },
    }
    return cmd
}

// NewTemplateCmd returns the "template" command: it prints a well-formed
// example document for an entity.
func NewTemplateCmd() *cobra.Command {
    var indent bool
    cmd := &cobra.Command{
        Use:   "template <entity>",
        Short: "Print an example document for an entity",
        Args:  cobra.ExactArgs(1),
        RunE: func(cmd *cobra.Command, args []string) error {
            r, err := Template(args[0])
            if err != nil { return err }
            b, err := contract.Marshal(r)
            if err != nil { return err }
            return writeJSON(cmd.OutOrStdout(), b, indent)
        },
    }
    cmd.Flags().BoolVar(&indent, "indent", true, "indent the output")
    return cmd
}

// NewCheckCmd returns the "check" command: it decodes a document and runs the
// advisory checks that decoding does not enforce.
func NewCheckCmd() *cobra.Command {
    cmd := &cobra.Command{
        Use:   "check <entity> [file|-]",
        Short: "Run advisory domain checks on a document",
        Args:  cobra.RangeArgs(1, 2),
        RunE: func(cmd *cobra.Command, args []string) error {
            rt, err := setup(cmd)
            if err != nil { return err }
            defer rt.close()
            data, err := readInput(cmd, args)
            if err != nil { return err }
            r, err := rt.codec.Decode(rt.ctx, args[0], data)
            if err != nil { return err }

            findings := Check(r)
            for _, f := range findings {
                fmt.Fprintln(cmd.OutOrStdout(), f)
                logutil.Warnf(&rt.log, "%s: %s", r.Entity(), f)
            }
            if len(findings) > 0 { return fmt.Errorf("%w: %d finding(s)", ErrFindings, len(findings)) }
            fmt.Fprintln(cmd.OutOrStdout(), "ok")
            return nil
        },
    }
    return cmd
}

type session struct {
    ctx      context.Context
    cancel   context.CancelFunc
    log      zerolog.Logger
    codec    *wire.Codec
    shutdown func(context.Context) error
}

func (rt *session) close() {
    _ = rt.shutdown(context.Background())
    rt.cancel()
}

func setup(cmd *cobra.Command) (*session, error) {
    path, _ := cmd.Flags().GetString("config")
    cfg, err := config.Load(path)
    if err != nil { return nil, err }
    log, err := logutil.New(logutil.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cmd.ErrOrStderr()})
    if err != nil { return nil, err }
    shutdown, err := tracing.Setup(cfg.Trace.Enabled)
    if err != nil {
        logutil.Warnf(&log, "tracing setup error: %v", err)
        shutdown = func(context.Context) error { return nil }
    }
    ctx, cancel := signalContext()
    return &session{
        ctx:    ctx,
        cancel: cancel,
        log:    log,
        codec: wire.New(
            wire.WithLogger(log),
            wire.WithSchemaValidation(cfg.Codec.SchemaValidation),
            wire.WithCanonical(cfg.Codec.Canonical),
        ),
        shutdown: shutdown,
    }, nil
}

// readInput reads the document named by args[1], or stdin when it is absent or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
    if len(args) > 1 && args[1] != "-" {
        b, err := os.ReadFile(args[1])
        if err != nil { return nil, fmt.Errorf("read input: %w", err) }
        return b, nil
    }
    b, err := io.ReadAll(cmd.InOrStdin())
    if err != nil { return nil, fmt.Errorf("read stdin: %w", err) }
    return b, nil
}

// decodeList decodes a JSON array element by element through the codec.
// Element failures carry the index in DecodeError.Path, as UnmarshalList reports them.
func decodeList(rt *session, entity string, data []byte) ([]byte, error) {
    if !json.Valid(data) {
        return nil, &contract.DecodeError{Entity: entity, Err: contract.ErrMalformedDocument, Detail: "input is not valid JSON"}
    }
    var items []json.RawMessage
    if err := json.Unmarshal(data, &items); err != nil {
        return nil, &contract.DecodeError{Entity: entity, Err: contract.ErrTypeMismatch, Detail: "expected array"}
    }
    parts := make([]string, 0, len(items))
    for i, raw := range items {
        r, err := rt.codec.Decode(rt.ctx, entity, raw)
        if err != nil { return nil, atIndex(i, err) }
        b, err := rt.codec.Encode(rt.ctx, r)
        if err != nil { return nil, err }
        parts = append(parts, string(b))
    }
    return []byte("[" + strings.Join(parts, ",") + "]"), nil
}

func atIndex(i int, err error) error {
    var de *contract.DecodeError
    if !errors.As(err, &de) { return fmt.Errorf("[%d]: %w", i, err) }
    out := *de
    out.Path = "[" + strconv.Itoa(i) + "]"
    if de.Path != "" { out.Path += "." + de.Path }
    return &out
}

func writeJSON(w io.Writer, b []byte, indent bool) error {
    if indent {
        var buf bytes.Buffer
        if err := json.Indent(&buf, b, "", "  "); err != nil { return err }
        b = buf.Bytes()
    }
    if _, err := w.Write(b); err != nil { return err }
    _, err := w.Write([]byte("\n"))
    return err
}

func orRoot(loc string) string {
    if loc == "" { return "/" }
    return loc
}

func signalContext() (context.Context, context.CancelFunc) {
    return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
