package net_test

import (
	"errors"
	"net/http"
	"testing"

	perr "hitch/internal/platform/errors"
	pnet "hitch/internal/platform/net"
)

func TestOK(t *testing.T) {
	status, w := pnet.OK(map[string]any{"x": 1}, "req-1")
	if status != http.StatusOK {
		t.Fatalf("status %d want %d", status, http.StatusOK)
	}
	if w.StatusCode != http.StatusOK || w.Status != "OK" || w.RequestID != "req-1" {
		t.Fatalf("wire mismatch: %+v", w)
	}
	if got, ok := w.Data.(map[string]any)["x"]; !ok || got != 1 {
		t.Fatalf("data mismatch: %+v", w.Data)
	}
}

func TestReply_CustomStatus(t *testing.T) {
	status, w := pnet.Reply(http.StatusAccepted, nil, "")
	if status != http.StatusAccepted || w.Status != http.StatusText(http.StatusAccepted) {
		t.Fatalf("wire mismatch: %d %+v", status, w)
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		code     perr.ErrorCode
		message  string
		emptyMsg bool
	}{
		{name: "nil falls back to OK", err: nil, status: http.StatusOK, emptyMsg: true},
		{name: "foreign error is 500", err: errors.New("boom"), status: http.StatusInternalServerError, code: perr.ErrorCodeUnknown, message: "boom"},
		{
			name:    "upstream hides cause",
			err:     perr.Wrap(errors.New("401 bad credentials"), perr.ErrorCodeUpstream, "GitHub API returned an error."),
			status:  http.StatusBadGateway,
			code:    perr.ErrorCodeUpstream,
			message: "GitHub API returned an error.",
		},
		{name: "validation", err: perr.Validationf("page must be a number"), status: http.StatusBadRequest, code: perr.ErrorCodeValidation, message: "page must be a number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, w := pnet.Error(tt.err, "req-9")
			if status != tt.status || w.StatusCode != tt.status {
				t.Fatalf("status %d/%d want %d", status, w.StatusCode, tt.status)
			}
			if w.RequestID != "req-9" {
				t.Fatalf("req id %q", w.RequestID)
			}
			if tt.emptyMsg {
				if w.Error != "" || w.Code != 0 {
					t.Fatalf("expected no error fields, got %+v", w)
				}
				return
			}
			if w.Code != tt.code || w.Error != tt.message {
				t.Fatalf("got code=%v error=%q want code=%v error=%q", w.Code, w.Error, tt.code, tt.message)
			}
			if w.Data != nil {
				t.Fatalf("data should be nil on error")
			}
		})
	}
}
