package chatmark

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'chatmark'.
func tracer() tracing.Trace {
	return tracing.Select("chatmark")
}
