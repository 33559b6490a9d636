package metrics

// Package metrics defines interfaces for recording optimizer observability
// events. Sinks like PromSink and InfluxSink record runs, assignments and
// fuel checks and can be combined with NewMultiSink. Optional recorder
// interfaces let sinks opt into event types they support.
