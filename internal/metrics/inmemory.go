package metrics

import "sync/atomic"

// Snapshot captures current in-memory counters.
type Snapshot struct {
	BooksCreated    uint64
	BooksUpdated    uint64
	BooksDeleted    uint64
	UsersRegistered uint64
	LoginSuccesses  uint64
	LoginFailures   uint64
	TokensRejected  uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	booksCreated    uint64
	booksUpdated    uint64
	booksDeleted    uint64
	usersRegistered uint64
	loginSuccesses  uint64
	loginFailures   uint64
	tokensRejected  uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		BooksCreated:    atomic.LoadUint64(&m.booksCreated),
		BooksUpdated:    atomic.LoadUint64(&m.booksUpdated),
		BooksDeleted:    atomic.LoadUint64(&m.booksDeleted),
		UsersRegistered: atomic.LoadUint64(&m.usersRegistered),
		LoginSuccesses:  atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:   atomic.LoadUint64(&m.loginFailures),
		TokensRejected:  atomic.LoadUint64(&m.tokensRejected),
	}
}

// IncBookCreated increments the created-books counter.
func (m *InMemoryRecorder) IncBookCreated() {
	atomic.AddUint64(&m.booksCreated, 1)
}

// IncBookUpdated increments the updated-books counter.
func (m *InMemoryRecorder) IncBookUpdated() {
	atomic.AddUint64(&m.booksUpdated, 1)
}

// IncBookDeleted increments the deleted-books counter.
func (m *InMemoryRecorder) IncBookDeleted() {
	atomic.AddUint64(&m.booksDeleted, 1)
}

// IncUserRegistered increments the registered-users counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncLoginSuccess increments the successful-logins counter.
func (m *InMemoryRecorder) IncLoginSuccess() {
	atomic.AddUint64(&m.loginSuccesses, 1)
}

// IncLoginFailure increments the failed-logins counter.
func (m *InMemoryRecorder) IncLoginFailure() {
	atomic.AddUint64(&m.loginFailures, 1)
}

// IncTokenRejected increments the rejected-tokens counter.
func (m *InMemoryRecorder) IncTokenRejected() {
	atomic.AddUint64(&m.tokensRejected, 1)
}
