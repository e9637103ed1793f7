package libee

// Stats is a point-in-time snapshot of an emitter's activity.
type Stats struct {
	// Emitted counts Emit calls, successful or not.
	Emitted uint64
	// Failed counts Emit calls that returned an error.
	Failed uint64
	// Delivered counts successful listener invocations.
	Delivered uint64
	// Active is the number of armed listeners, pending ones included.
	Active int
	// Pending is the number of registrations not yet merged by an Emit.
	Pending int
}
