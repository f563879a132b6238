package common

// Logical keys under which the core persists its collections. Each key holds
// one encrypted blob; the substrate never sees internal structure.
const (
	KeyUsers       = "secstore_users"
	KeySession     = "secstore_session"
	KeyEvents      = "secstore_security_events"
	KeyInstallSalt = "_sys_salt"
)
