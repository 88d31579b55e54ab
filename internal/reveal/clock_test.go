package reveal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWait_Elapses(t *testing.T) {
	clk := NewFakeClock(time.Unix(0, 0))
	res := make(chan bool, 1)
	go func() { res <- Wait(context.Background(), clk, time.Second) }()

	waitForWaiters(t, clk, 1)
	clk.Advance(time.Second)
	assert.True(t, <-res)
}

func TestWait_CancelledBeforeFiring(t *testing.T) {
	clk := NewFakeClock(time.Unix(0, 0))
	ctx, cancel := context.WithCancel(context.Background())
	res := make(chan bool, 1)
	go func() { res <- Wait(ctx, clk, time.Second) }()

	waitForWaiters(t, clk, 1)
	cancel()
	assert.False(t, <-res)
}

func TestWait_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Even a zero delay must not report success after teardown.
	assert.False(t, Wait(ctx, NewFakeClock(time.Now()), 0))
}

func TestFakeClock_FiresInOrder(t *testing.T) {
	clk := NewFakeClock(time.Unix(0, 0))
	late := clk.After(2 * time.Second)
	early := clk.After(time.Second)

	clk.Advance(time.Second)
	select {
	case <-early:
	default:
		t.Fatal("early waiter not fired")
	}
	select {
	case <-late:
		t.Fatal("late waiter fired early")
	default:
	}
	assert.Equal(t, 1, clk.Waiters())
	clk.Advance(time.Second)
	<-late
	assert.Equal(t, 0, clk.Waiters())
}
