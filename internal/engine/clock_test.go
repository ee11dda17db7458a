package engine_test

import (
	"testing"
	"time"

	"github.com/tatianab/forest-quest/internal/engine"
	"github.com/tatianab/forest-quest/internal/engine/enginetest"
)

func TestDelay(t *testing.T) {
	clock := enginetest.NewClock()
	d := engine.NewDelay(2 * time.Second)

	if d.Expired(clock.Now()) {
		t.Fatalf("Expected unarmed delay not to expire")
	}

	d.Start(clock.Now())
	clock.Advance(2 * time.Second)
	if d.Expired(clock.Now()) {
		t.Errorf("Expected delay to still be pending at exactly the deadline")
	}

	clock.Advance(time.Millisecond)
	if !d.Expired(clock.Now()) {
		t.Errorf("Expected delay to expire after the deadline")
	}

	d.Stop()
	if d.Armed() || d.Expired(clock.Now()) {
		t.Errorf("Expected stopped delay to be disarmed")
	}
}
