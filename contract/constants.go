package contract

// contractVersion is reported by the version view.
const contractVersion = "1.0.0"

// Durations and timestamps use the host's native time unit: nanoseconds.
const nanosPerSecond uint64 = 1_000_000_000

// minProposalDuration is the floor for proposal voting windows and bounty
// claim windows alike. Anything at or below it is rejected.
const minProposalDuration uint64 = nanosPerSecond * 60 * 2

// registrationStorageBytes is the storage footprint of one delegation map
// entry. Registration must attach exactly this many bytes worth of deposit.
const registrationStorageBytes uint64 = 16
