package worker

// Log messages
const (
	LogMsgPoolStopped         = "Worker pool stopped"
	LogMsgPoolShutdownTimeout = "Worker pool shutdown timed out"
)

// Test constants
const (
	TestWorkerCount = 3
	TestQueueSize   = 10
	TestJobCount    = 25
)
