package lanetopo

func WithConnectionProximity(connectionProximity float64) func(*Builder) {
	return func(builder *Builder) {
		builder.connectionProximity = connectionProximity
	}
}

func WithSpatialIndex(useSpatialIndex bool) func(*Builder) {
	return func(builder *Builder) {
		builder.useSpatialIndex = useSpatialIndex
	}
}

func WithVerbose(verbose bool) func(*Builder) {
	return func(builder *Builder) {
		builder.verbose = verbose
	}
}

// WithLogger sets diagnostic logger of the builder. Package Logf is used when not set
func WithLogger(logf func(format string, v ...interface{})) func(*Builder) {
	return func(builder *Builder) {
		builder.logf = logf
	}
}
