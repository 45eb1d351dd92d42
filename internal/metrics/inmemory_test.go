package metrics

import (
	"sync"
	"testing"
)

func TestInMemoryRecorder_Counts(t *testing.T) {
	t.Parallel()

	rec := NewInMemory()

	rec.IncBookCreated()
	rec.IncBookCreated()
	rec.IncBookUpdated()
	rec.IncBookDeleted()
	rec.IncUserRegistered()
	rec.IncLoginSuccess()
	rec.IncLoginFailure()
	rec.IncLoginFailure()
	rec.IncTokenRejected()

	snap := rec.Snapshot()

	if snap.BooksCreated != 2 {
		t.Errorf("BooksCreated = %d, want 2", snap.BooksCreated)
	}
	if snap.BooksUpdated != 1 {
		t.Errorf("BooksUpdated = %d, want 1", snap.BooksUpdated)
	}
	if snap.BooksDeleted != 1 {
		t.Errorf("BooksDeleted = %d, want 1", snap.BooksDeleted)
	}
	if snap.UsersRegistered != 1 {
		t.Errorf("UsersRegistered = %d, want 1", snap.UsersRegistered)
	}
	if snap.LoginSuccesses != 1 {
		t.Errorf("LoginSuccesses = %d, want 1", snap.LoginSuccesses)
	}
	if snap.LoginFailures != 2 {
		t.Errorf("LoginFailures = %d, want 2", snap.LoginFailures)
	}
	if snap.TokensRejected != 1 {
		t.Errorf("TokensRejected = %d, want 1", snap.TokensRejected)
	}
}

func TestInMemoryRecorder_Concurrent(t *testing.T) {
	t.Parallel()

	rec := NewInMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.IncBookCreated()
			rec.IncLoginFailure()
		}()
	}
	wg.Wait()

	snap := rec.Snapshot()
	if snap.BooksCreated != 50 {
		t.Errorf("BooksCreated = %d, want 50", snap.BooksCreated)
	}
	if snap.LoginFailures != 50 {
		t.Errorf("LoginFailures = %d, want 50", snap.LoginFailures)
	}
}
