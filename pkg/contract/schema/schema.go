// Package schema checks gateway documents against an embedded JSON Schema of
// the contract entities. It is independent of the contract codec and is used to
// cross-check what the codec emits and to vet raw documents before decoding.
package schema

import (
    "bytes"
    _ "embed"
    "encoding/json"
    "errors"
    "fmt"
    "sort"
    "strings"
    "sync"

    "github.com/santhosh-tekuri/jsonschema/v5"
)

const baseURL = "https://go-fabric.local/schemas/"

//go:embed contract.schema.json
var document []byte

var ErrNonConforming = errors.New("schema: document does not conform")

// Problem is one leaf failure of a validation.
type Problem struct {
    // Location is a JSON pointer into the instance, "" for the root.
    Location string
    Keyword  string
    Message  string
}

// ValidationError lists every problem found in a document.
type ValidationError struct {
    Entity   string
    Problems []Problem
}

func (e *ValidationError) Error() string {
    parts := make([]string, 0, len(e.Problems))
    for _, p := range e.Problems { parts = append(parts, fmt.Sprintf("%s: %s", orRoot(p.Location), p.Message)) }
    return fmt.Sprintf("%v: %s: %s", ErrNonConforming, e.Entity, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrNonConforming }

func orRoot(loc string) string {
    if loc == "" { return "/" }
    return loc
}

var (
    once     sync.Once
    compiled map[string]*jsonschema.Schema
    errInit  error
)

// Entities lists the entity names the schema describes, sorted.
func Entities() []string {
    var doc struct {
        Defs map[string]json.RawMessage `json:"$defs"`
    }
    _ = json.Unmarshal(document, &doc)
    var out []string
    for name := range doc.Defs {
        // Shared definitions start with a lower-case letter or are enums.
        if name[0] >= 'A' && name[0] <= 'Z' && !isEnum(doc.Defs[name]) { out = append(out, name) }
    }
    sort.Strings(out)
    return out
}

func isEnum(raw json.RawMessage) bool {
    var def struct {
        Enum []string `json:"enum"`
    }
    _ = json.Unmarshal(raw, &def)
    return len(def.Enum) > 0
}

func load() {
    c := jsonschema.NewCompiler()
    c.Draft = jsonschema.Draft2020
    if err := c.AddResource(baseURL+"contract.schema.json", bytes.NewReader(document)); err != nil {
        errInit = fmt.Errorf("schema: load failed: %w", err)
        return
    }
    compiled = make(map[string]*jsonschema.Schema)
    for _, name := range Entities() {
        url := baseURL + name + ".json"
        wrapper := fmt.Sprintf(`{"$ref": "contract.schema.json#/$defs/%s"}`, name)
        if err := c.AddResource(url, strings.NewReader(wrapper)); err != nil {
            errInit = fmt.Errorf("schema: %s: load failed: %w", name, err)
            return
        }
        s, err := c.Compile(url)
        if err != nil {
            errInit = fmt.Errorf("schema: %s: compile failed: %w", name, err)
            return
        }
        compiled[name] = s
    }
}

// Validate checks data against the schema of entity. It returns a
// *ValidationError when the document is well-formed JSON but does not conform.
func Validate(entity string, data []byte) error {
    once.Do(load)
    if errInit != nil { return errInit }
    s, ok := compiled[entity]
    if !ok { return fmt.Errorf("schema: unknown entity %q", entity) }

    dec := json.NewDecoder(bytes.NewReader(data))
    dec.UseNumber()
    var v interface{}
    if err := dec.Decode(&v); err != nil { return fmt.Errorf("schema: %s: %w", entity, err) }

    err := s.Validate(v)
    if err == nil { return nil }
    var ve *jsonschema.ValidationError
    if !errors.As(err, &ve) { return fmt.Errorf("schema: %s: %w", entity, err) }
    out := &ValidationError{Entity: entity}
    collect(ve, &out.Problems)
    return out
}

func collect(ve *jsonschema.ValidationError, into *[]Problem) {
    if len(ve.Causes) == 0 {
        kw := ve.KeywordLocation
        if i := strings.LastIndex(kw, "/"); i >= 0 { kw = kw[i+1:] }
        *into = append(*into, Problem{Location: ve.InstanceLocation, Keyword: kw, Message: ve.Message})
        return
    }
    for _, c := range ve.Causes { collect(c, into) }
}
