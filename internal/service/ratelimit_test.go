package service_test

import (
	"testing"

	"github.com/podshelf/podshelf/internal/service"
)

func TestTokenBucket_AllowsUpToCapacity(t *testing.T) {
	// Zero refill rate so the test is deterministic.
	tb := service.NewTokenBucket(0, 3)

	for i := 0; i < 3; i++ {
		if !tb.Allow("key") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if tb.Allow("key") {
		t.Fatal("attempt over capacity should be denied")
	}
}

func TestTokenBucket_KeysAreIndependent(t *testing.T) {
	tb := service.NewTokenBucket(0, 1)

	if !tb.Allow("alpha") {
		t.Fatal("first attempt for alpha should be allowed")
	}
	if tb.Allow("alpha") {
		t.Fatal("second attempt for alpha should be denied")
	}
	if !tb.Allow("beta") {
		t.Fatal("beta must not be affected by alpha's bucket")
	}
}
