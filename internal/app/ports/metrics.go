package ports

type DispatchMetrics interface {
	RecordSuccess(kind string)
	RecordFailure(kind string)
	RecordTimeout(kind string)
}
