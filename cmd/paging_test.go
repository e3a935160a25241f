package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setPagingFlags(t *testing.T, trace string, nframes int, policy string, psize int64) {
	t.Helper()
	setFlags(t, trace, nframes, policy)
	prev := pageSize
	t.Cleanup(func() { pageSize = prev })
	pageSize = psize
}

func TestRunPaging_CountsDirtyWritebacks(t *testing.T) {
	// GIVEN one frame and a write to page 1 followed by reads of two other pages
	input := "W 0x1000\nR 0x2000\nR 0x3000\n"
	setPagingFlags(t, writeTrace(t, input), 1, "lru", 4096)

	var buf bytes.Buffer
	err := runPaging(pagingCmd, &buf)

	// THEN every miss is a disk read and the dirty eviction a disk write
	assert.NoError(t, err)
	want := "total memory frames:  1\n" +
		"events in trace:      3\n" +
		"total disk reads:     3\n" +
		"total disk writes:    1\n" +
		"page fault rate:      1.0000\n"
	assert.Equal(t, want, buf.String())
}

func TestRunPaging_SameAddressPageHits(t *testing.T) {
	// Two addresses in the same 4KiB page: second access hits.
	input := "R 0x1000\nR 0x1FF0\n"
	setPagingFlags(t, writeTrace(t, input), 3, "clock", 4096)

	var buf bytes.Buffer
	err := runPaging(pagingCmd, &buf)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "events in trace:      2\n")
	assert.Contains(t, buf.String(), "total disk reads:     1\n")
	assert.Contains(t, buf.String(), "page fault rate:      0.5000\n")
}

func TestRunPaging_JunkLinesAreTolerated(t *testing.T) {
	input := "# header\nnot an event\nR 0x1000\n"
	setPagingFlags(t, writeTrace(t, input), 3, "lru", 4096)

	var buf bytes.Buffer
	err := runPaging(pagingCmd, &buf)

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "events in trace:      1\n")
}

func TestRunPaging_OptimalPolicy(t *testing.T) {
	input := "R 0x1000\nR 0x2000\nR 0x3000\nR 0x1000\n"
	setPagingFlags(t, writeTrace(t, input), 2, "optimal", 4096)

	var buf bytes.Buffer
	err := runPaging(pagingCmd, &buf)

	// Optimal evicts page 2 at the miss on page 3, so the final read of
	// page 1 hits: 3 disk reads across 4 events.
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "total disk reads:     3\n")
	assert.Contains(t, buf.String(), "page fault rate:      0.7500\n")
}
