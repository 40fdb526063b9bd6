package gate

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CancelLeavesNoSideEffect(t *testing.T) {
	g := New()
	called := 0

	err := g.Show("Confirm Deletion", "Are you sure?", "42", func(ctx context.Context, target string) error {
		called++
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, Shown, g.State())

	target, ok := g.Pending()
	assert.True(t, ok)
	assert.Equal(t, "42", target)

	assert.NoError(t, g.Cancel())
	assert.Equal(t, Hidden, g.State())
	assert.Equal(t, 0, called)
}

func Test_ConfirmRunsActionOnce(t *testing.T) {
	g := New()
	var got []string

	g.Show("Confirm Deletion", "Are you sure?", "entry-1", func(ctx context.Context, target string) error {
		got = append(got, target)
		return nil
	})

	assert.NoError(t, g.Confirm(context.Background()))
	assert.Equal(t, []string{"entry-1"}, got)
	assert.Equal(t, Hidden, g.State())

	// the gate is disarmed afterwards
	assert.ErrorIs(t, g.Confirm(context.Background()), ErrNotPending)
}

func Test_ConfirmFailureStillHides(t *testing.T) {
	g := New()
	g.Show("Confirm Deletion", "Are you sure?", "entry-1", func(ctx context.Context, target string) error {
		return fmt.Errorf("delete failed")
	})

	err := g.Confirm(context.Background())
	assert.EqualError(t, err, "delete failed")
	assert.Equal(t, Hidden, g.State())
}

func Test_HiddenGateRejectsConfirmAndCancel(t *testing.T) {
	g := New()
	assert.ErrorIs(t, g.Confirm(context.Background()), ErrNotPending)
	assert.ErrorIs(t, g.Cancel(), ErrNotPending)
}

func Test_DoubleSubmission(t *testing.T) {
	g := New()
	release := make(chan struct{})
	inFlight := make(chan struct{})
	calls := 0

	g.Show("Confirm Deletion", "Are you sure?", "entry-1", func(ctx context.Context, target string) error {
		calls++
		inFlight <- struct{}{}
		<-release
		return nil
	})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		g.Confirm(context.Background())
	}()

	<-inFlight
	assert.Equal(t, Busy, g.State())

	// a second confirm while the delete is in flight is rejected
	assert.ErrorIs(t, g.Confirm(context.Background()), ErrBusy)
	assert.ErrorIs(t, g.Cancel(), ErrBusy)

	close(release)
	wg.Wait()
	assert.Equal(t, 1, calls)
	assert.Equal(t, Hidden, g.State())
}

func Test_ReShowReplacesTarget(t *testing.T) {
	g := New()
	g.Show("Confirm Deletion", "m", "1", func(ctx context.Context, target string) error { return nil })
	g.Show("Confirm Deletion", "m", "2", func(ctx context.Context, target string) error { return nil })

	target, ok := g.Pending()
	assert.True(t, ok)
	assert.Equal(t, "2", target)
}
