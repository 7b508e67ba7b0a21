package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Hatching Worker
// ============================================================================

// Log messages for hatching worker operations
const (
	LogMsgHatchScheduled = "Egg hatch scheduled"
	LogMsgEggHatched     = "Egg hatched"
	LogMsgHatchCancelled = "Pending egg hatch cancelled"
)

// ============================================================================
// Log Messages - Periodic Jobs
// ============================================================================

// Log messages for the scheduled maintenance jobs
const (
	LogMsgFishRespawned    = "Fishing spots respawned"
	LogMsgStoresRestocked  = "Stores restocked"
	LogMsgSnapshotSaved    = "State snapshot saved"
	LogMsgSnapshotSaveFail = "State snapshot save failed"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
