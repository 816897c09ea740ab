package outcome

import (
	"errors"
	"testing"

	"sui-market-lab/internal/txbuild"
)

func TestController_SuccessLifecycle(t *testing.T) {
	c := NewController()
	if c.State() != Idle {
		t.Fatalf("initial state = %v, want Idle", c.State())
	}

	if err := c.Begin(txbuild.ActionBuy); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if c.State() != Submitting {
		t.Fatalf("state = %v, want Submitting", c.State())
	}

	c.Succeed("9wzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM")
	if c.State() != Succeeded {
		t.Fatalf("state = %v, want Succeeded", c.State())
	}
	if c.Digest() == "" {
		t.Fatal("digest not retained")
	}

	c.Acknowledge()
	if c.State() != Idle {
		t.Fatalf("state after acknowledge = %v, want Idle", c.State())
	}
	if c.Digest() != "" {
		t.Fatal("digest survived acknowledge")
	}
}

func TestController_AcknowledgedSuccessEmitsOneRefresh(t *testing.T) {
	c := NewController()
	if err := c.Begin(txbuild.ActionList); err != nil {
		t.Fatalf("begin: %v", err)
	}
	c.Succeed("digest")
	c.Acknowledge()

	select {
	case ev := <-c.Refresh():
		if ev.Action != txbuild.ActionList {
			t.Errorf("refresh action = %q, want %q", ev.Action, txbuild.ActionList)
		}
	default:
		t.Fatal("expected a refresh event")
	}

	select {
	case <-c.Refresh():
		t.Fatal("second refresh event emitted")
	default:
	}
}

func TestController_FailureEmitsNoRefresh(t *testing.T) {
	c := NewController()
	if err := c.Begin(txbuild.ActionBuy); err != nil {
		t.Fatalf("begin: %v", err)
	}
	c.Fail("insufficient gas")
	if c.State() != Failed {
		t.Fatalf("state = %v, want Failed", c.State())
	}
	if c.Message() != "insufficient gas" {
		t.Errorf("message = %q", c.Message())
	}

	c.Acknowledge()
	if c.State() != Idle {
		t.Fatalf("state after acknowledge = %v, want Idle", c.State())
	}
	select {
	case <-c.Refresh():
		t.Fatal("failure acknowledge emitted a refresh")
	default:
	}
}

func TestController_ReentrantSubmissionForbidden(t *testing.T) {
	c := NewController()
	if err := c.Begin(txbuild.ActionBuy); err != nil {
		t.Fatalf("begin: %v", err)
	}
	if err := c.Begin(txbuild.ActionBurn); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	// Terminal states also refuse a new submission until acknowledged.
	c.Succeed("digest")
	if err := c.Begin(txbuild.ActionBurn); !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight from Succeeded, got %v", err)
	}
	c.Acknowledge()
	if err := c.Begin(txbuild.ActionBurn); err != nil {
		t.Fatalf("begin after acknowledge: %v", err)
	}
}

func TestController_TransitionsIgnoredOutsideSubmitting(t *testing.T) {
	c := NewController()
	c.Succeed("digest")
	if c.State() != Idle {
		t.Fatalf("Succeed from Idle changed state to %v", c.State())
	}
	c.Fail("boom")
	if c.State() != Idle {
		t.Fatalf("Fail from Idle changed state to %v", c.State())
	}
	c.Acknowledge()
	select {
	case <-c.Refresh():
		t.Fatal("acknowledge from Idle emitted a refresh")
	default:
	}
}

func TestController_Complete(t *testing.T) {
	c := NewController()
	if err := c.Begin(txbuild.ActionMint); err != nil {
		t.Fatalf("begin: %v", err)
	}
	c.Complete("", errors.New("node rejected"))
	if c.State() != Failed || c.Message() != "node rejected" {
		t.Fatalf("state = %v message = %q", c.State(), c.Message())
	}
	c.Acknowledge()

	if err := c.Begin(txbuild.ActionMint); err != nil {
		t.Fatalf("begin: %v", err)
	}
	c.Complete("somedigest", nil)
	if c.State() != Succeeded || c.Digest() != "somedigest" {
		t.Fatalf("state = %v digest = %q", c.State(), c.Digest())
	}
}

func TestValidDigest(t *testing.T) {
	// 32 bytes base58-encoded
	valid := "9wzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	if !ValidDigest(valid) {
		t.Errorf("%q rejected", valid)
	}
	for _, s := range []string{"", "tooshort", "0OIl not base58", "abcd"} {
		if ValidDigest(s) {
			t.Errorf("%q accepted", s)
		}
	}
}

func TestFormatDigest(t *testing.T) {
	valid := "9wzDXwBbmkg8ZTbNMqUxvQRAyrZzDsGYdLVL9zYtAWWM"
	got := FormatDigest(valid)
	want := "DIGEST::" + valid[:15] + "..."
	if got != want {
		t.Errorf("FormatDigest = %q, want %q", got, want)
	}

	// Unparseable input is shown whole.
	if got := FormatDigest("not-a-digest"); got != "DIGEST::not-a-digest" {
		t.Errorf("FormatDigest = %q", got)
	}
}
