package errs

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestFromResponse_Classification(t *testing.T) {
	t.Parallel()
	cases := []struct {
		status int
		want   Kind
	}{
		{400, KindValidation},
		{401, KindUnauthorized},
		{403, KindValidation},
		{404, KindValidation},
		{500, KindServer},
		{503, KindServer},
	}
	for _, tc := range cases {
		e := FromResponse("op", tc.status, nil)
		if e.Kind != tc.want {
			t.Fatalf("status %d: got kind %s want %s", tc.status, e.Kind, tc.want)
		}
	}
}

func TestFromResponse_DetailPayload(t *testing.T) {
	t.Parallel()
	e := FromResponse("plan trip", 400, []byte(`{"detail":"End date must be after start date"}`))
	if e.Detail != "End date must be after start date" {
		t.Fatalf("unexpected detail %q", e.Detail)
	}
	if got := e.Message("generic"); got != "End date must be after start date" {
		t.Fatalf("Message should prefer server detail, got %q", got)
	}
}

func TestFromResponse_NoDetail(t *testing.T) {
	t.Parallel()
	e := FromResponse("plan trip", 500, []byte(`not json`))
	if e.Detail != "" {
		t.Fatalf("expected empty detail, got %q", e.Detail)
	}
	if got := e.Message("Failed to plan trip"); got != "Failed to plan trip" {
		t.Fatalf("Message should fall back, got %q", got)
	}
}

func TestFromTransport(t *testing.T) {
	t.Parallel()
	err := FromTransport("list trips", fmt.Errorf("dial tcp: connection refused"))
	if !IsUnreachable(err) {
		t.Fatalf("expected unreachable, got %v", err)
	}
}

func TestFromTransport_CancellationPassesThrough(t *testing.T) {
	t.Parallel()
	err := FromTransport("list trips", fmt.Errorf("request: %w", context.Canceled))
	if IsUnreachable(err) {
		t.Fatal("caller cancellation must not classify as unreachable")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled chain, got %v", err)
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()
	if !IsDecode(Decode("verify", errors.New("bad token"))) {
		t.Fatal("IsDecode")
	}
	if !IsValidation(Validation("op", errors.New("destination is required"))) {
		t.Fatal("IsValidation")
	}
	if IsUnauthorized(errors.New("plain")) {
		t.Fatal("plain errors must not classify")
	}
}
