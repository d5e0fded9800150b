package voxel

// Option configures optional behavior of Load.
type Option func(*options)

type options struct {
	skipBadLines bool
	strictFlags  bool
}

func defaultOptions() options {
	return options{}
}

// WithSkipBadLines collects unparseable lines in Result.Rejected and keeps
// loading, instead of aborting on the first one.
func WithSkipBadLines() Option {
	return func(o *options) { o.skipBadLines = true }
}

// WithStrictFlags rejects solidity tokens other than "true"/"false"
// (case-insensitive) instead of leniently reading them as false.
func WithStrictFlags() Option {
	return func(o *options) { o.strictFlags = true }
}
