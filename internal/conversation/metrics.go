package conversation

import "github.com/prometheus/client_golang/prometheus"

var (
	llmLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "voicebot",
		Subsystem: "llm",
		Name:      "latency_seconds",
		Help:      "Latency of upstream LLM completions",
		Buckets:   prometheus.DefBuckets,
	}, []string{"provider", "outcome"})

	llmTokensTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voicebot",
		Subsystem: "llm",
		Name:      "tokens_total",
		Help:      "Total tokens reported by upstream providers",
	}, []string{"provider"})

	bookingDispatchTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "voicebot",
		Subsystem: "booking",
		Name:      "dispatch_total",
		Help:      "Booking directives handled, by dispatch result",
	}, []string{"result"})
)

func init() {
	prometheus.MustRegister(llmLatency, llmTokensTotal, bookingDispatchTotal)
}

// RegisterMetrics registers conversation metrics with a custom registry.
// Use this when exposing a non-default registry.
func RegisterMetrics(reg prometheus.Registerer) {
	if reg == nil || reg == prometheus.DefaultRegisterer {
		return
	}
	reg.MustRegister(llmLatency, llmTokensTotal, bookingDispatchTotal)
}
