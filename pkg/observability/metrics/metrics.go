package metrics

import (
    "sync"

    "github.com/prometheus/client_golang/prometheus"
)

var (
    once sync.Once

    DecodeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
        Namespace: "go_fabric",
        Subsystem: "contract",
        Name:      "decode_total",
        Help:      "Total contract documents decoded, by entity and result kind",
    }, []string{"entity", "result"})

    EncodeTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
        Namespace: "go_fabric",
        Subsystem: "contract",
        Name:      "encode_total",
        Help:      "Total contract records encoded, by entity and result kind",
    }, []string{"entity", "result"})

    Bytes = prometheus.NewCounterVec(prometheus.CounterOpts{
        Namespace: "go_fabric",
        Subsystem: "contract",
        Name:      "bytes_total",
        Help:      "Total document bytes seen by the codec (direction=in|out)",
    }, []string{"direction"})

    SchemaRejections = prometheus.NewCounterVec(prometheus.CounterOpts{
        Namespace: "go_fabric",
        Subsystem: "contract",
        Name:      "schema_rejections_total",
        Help:      "Total documents rejected by the JSON Schema cross-check",
    }, []string{"entity"})
)

// Register registers metrics into the default Prometheus registry (idempotent).
func Register() {
    once.Do(func() {
        prometheus.MustRegister(DecodeTotal)
        prometheus.MustRegister(EncodeTotal)
        prometheus.MustRegister(Bytes)
        prometheus.MustRegister(SchemaRejections)
    })
}
