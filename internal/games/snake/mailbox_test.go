package snake

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMailboxPublishLoad(t *testing.T) {
	var m Mailbox
	if m.Load() != nil {
		t.Fatal("zero Mailbox Load() should be nil")
	}

	a := &Snapshot{seq: 1}
	b := &Snapshot{seq: 2}
	m.Publish(a)
	m.Publish(b)

	if m.Load() != b {
		t.Error("Load() should return the last published snapshot")
	}
	if m.Published() != 2 {
		t.Errorf("Published() = %d, expected 2", m.Published())
	}
}

// TestConcurrentReaders ticks one engine while readers poll snapshots and an
// input goroutine steers. Run with -race.
func TestConcurrentReaders(t *testing.T) {
	s := Settings{Rows: 10, Cols: 16, StartingLength: 3, PointsPerFood: 1, InitialDirection: DirRight}
	e := NewEngine(WithSeed(3))
	if err := e.Initialize(s); err != nil {
		t.Fatal(err)
	}

	var stop atomic.Bool
	var wg sync.WaitGroup

	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var last uint64
			for !stop.Load() {
				snap := e.CurrentSnapshot()
				if snap.Seq() < last {
					t.Errorf("Seq() went backwards: %d after %d", snap.Seq(), last)
					return
				}
				last = snap.Seq()
				if err := snapshotError(snap); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		dirs := []Direction{DirUp, DirLeft, DirDown, DirRight}
		for i := 0; !stop.Load(); i++ {
			e.RequestDirection(dirs[i%len(dirs)])
		}
	}()

	for range 3000 {
		if !e.Tick() {
			if err := e.Initialize(s); err != nil {
				t.Error(err)
				break
			}
		}
	}
	stop.Store(true)
	wg.Wait()
}
