package queue

const (
	// DefaultGrowthFactor scales the logical size when Push finds the buffer full.
	DefaultGrowthFactor = 2.0

	// DefaultReclaimFactor scales the logical size when Pop reclaims dead space.
	DefaultReclaimFactor = 2.0

	// reasons reported to the logger and counted in Stats.
	reasonGrow    = "grow"
	reasonReclaim = "reclaim"
	reasonCompact = "compact"
	reasonReserve = "reserve"
)
