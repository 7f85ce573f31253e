// internal/core/domain/timeline_test.go
package domain

import (
	"sync"
	"testing"
	"time"

	"mirage/internal/testutil"
)

func TestTimeline_Append(t *testing.T) {
	tl := NewTimeline(time.Now())

	tl.Append(RunModuleName, StatusStarted, "")
	tl.Append("osint", StatusRunning, "")
	tl.Append("osint", StatusCompleted, "12 records")

	entries := tl.Entries()
	testutil.AssertEqual(t, len(entries), 3, "entry count")
	testutil.AssertEqual(t, entries[0].Module, RunModuleName, "first entry module")
	testutil.AssertEqual(t, entries[0].Status, StatusStarted, "first entry status")
	testutil.AssertEqual(t, entries[2].Message, "12 records", "message kept")
}

func TestTimeline_AppendOrder(t *testing.T) {
	tl := NewTimeline(time.Now())

	tl.Append("a", StatusRunning, "")
	tl.Append("b", StatusRunning, "")
	tl.Append("a", StatusCompleted, "")

	entries := tl.Entries()
	testutil.AssertEqual(t, entries[0].Module, "a", "append order kept")
	testutil.AssertEqual(t, entries[1].Module, "b", "append order kept")
	testutil.AssertEqual(t, entries[2].Status, StatusCompleted, "append order kept")

	// Elapsed never decreases along the log.
	for i := 1; i < len(entries); i++ {
		testutil.AssertTrue(t, entries[i].Elapsed >= entries[i-1].Elapsed, "elapsed monotone")
	}
}

func TestTimeline_EntriesReturnsCopy(t *testing.T) {
	tl := NewTimeline(time.Now())
	tl.Append("osint", StatusRunning, "")

	entries := tl.Entries()
	entries[0].Module = "mutated"

	testutil.AssertEqual(t, tl.Entries()[0].Module, "osint", "internal log untouched")
}

func TestTimeline_CountByStatus(t *testing.T) {
	tl := NewTimeline(time.Now())

	tl.Append(RunModuleName, StatusStarted, "")
	tl.Append("osint", StatusCompleted, "")
	tl.Append("network", StatusFailed, "boom")
	tl.Append("webapp", StatusCompleted, "")
	tl.Append(RunModuleName, StatusCompleted, "")

	testutil.AssertEqual(t, tl.CountByStatus(StatusCompleted, true), 2, "module completed count")
	testutil.AssertEqual(t, tl.CountByStatus(StatusCompleted, false), 3, "all completed count")
	testutil.AssertEqual(t, tl.CountByStatus(StatusFailed, true), 1, "failed count")
}

func TestTimeline_ConcurrentAppend(t *testing.T) {
	tl := NewTimeline(time.Now())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				tl.Append("osint", StatusRunning, "")
			}
		}()
	}
	wg.Wait()

	testutil.AssertEqual(t, tl.Len(), 200, "no lost appends under concurrency")
}
