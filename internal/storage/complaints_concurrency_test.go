package storage

import (
	"context"
	"sync"
	"testing"
)

func TestFileComplaintConcurrentCallsSerialize(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	const workers = 10
	var wg sync.WaitGroup
	errs := make(chan error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.FileComplaint(ctx, testInput("file:///tmp/img.jpg")); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("FileComplaint failed: %v", err)
	}

	profile, err := store.GetUserProfile(ctx)
	if err != nil {
		t.Fatalf("GetUserProfile failed: %v", err)
	}
	if profile.TotalReports != workers {
		t.Errorf("Expected %d reports, got %d", workers, profile.TotalReports)
	}

	// Every filing lands on the same local day, so each awards the same
	// 20 points (plastic base + confidence + day-1 streak); a lost update
	// would show up as a lower total.
	if profile.TotalPoints != workers*20 {
		t.Errorf("Expected %d points, got %d", workers*20, profile.TotalPoints)
	}

	complaints, err := store.GetComplaints(ctx)
	if err != nil {
		t.Fatalf("GetComplaints failed: %v", err)
	}
	if len(complaints) != workers {
		t.Errorf("Expected %d complaints in log, got %d", workers, len(complaints))
	}
}
