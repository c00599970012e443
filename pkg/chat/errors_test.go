package chat

import (
	"errors"
	"strings"
	"testing"

	"github.com/openai/openai-go"
)

func TestKindForStatus(t *testing.T) {
	cases := []struct {
		code int
		want Kind
	}{
		{401, KindAuth},
		{429, KindRateLimited},
		{500, KindUpstream},
		{503, KindUpstream},
		{400, KindUnknown},
		{404, KindUnknown},
	}
	for _, tc := range cases {
		if got := kindForStatus(tc.code); got != tc.want {
			t.Fatalf("status %d: expected kind %d, got %d", tc.code, tc.want, got)
		}
	}
}

func TestWrapRequestErrorClassifiesAPIError(t *testing.T) {
	err := wrapRequestError(&openai.Error{StatusCode: 429})

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.Kind != KindRateLimited {
		t.Fatalf("expected rate-limited kind, got %d", reqErr.Kind)
	}
	if reqErr.StatusCode != 429 {
		t.Fatalf("expected status 429, got %d", reqErr.StatusCode)
	}
}

func TestWrapRequestErrorWithoutStatus(t *testing.T) {
	underlying := errors.New("connection refused")
	err := wrapRequestError(underlying)

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %T", err)
	}
	if reqErr.Kind != KindUnknown {
		t.Fatalf("expected unknown kind, got %d", reqErr.Kind)
	}
	if !errors.Is(err, underlying) {
		t.Fatal("expected wrapped error to unwrap to the underlying error")
	}
}

func TestNoticeAuthMentionsToken(t *testing.T) {
	notice := Notice(&RequestError{Kind: KindAuth, StatusCode: 401})
	if !strings.Contains(notice, "GITHUB_TOKEN") {
		t.Fatalf("expected credential guidance, got %q", notice)
	}
}

func TestNoticeRateLimited(t *testing.T) {
	notice := Notice(&RequestError{Kind: KindRateLimited, StatusCode: 429})
	if !strings.Contains(strings.ToLower(notice), "rate limit") {
		t.Fatalf("expected rate-limit notice, got %q", notice)
	}
}

func TestNoticeUpstream(t *testing.T) {
	notice := Notice(&RequestError{Kind: KindUpstream, StatusCode: 500})
	if !strings.Contains(strings.ToLower(notice), "unavailable") {
		t.Fatalf("expected upstream-unavailable notice, got %q", notice)
	}
}

func TestNoticeUnclassifiedIncludesDetail(t *testing.T) {
	notice := Notice(&RequestError{Kind: KindUnknown, Err: errors.New("boom")})
	if !strings.Contains(notice, "boom") {
		t.Fatalf("expected underlying detail, got %q", notice)
	}
}

func TestNoticePlainError(t *testing.T) {
	notice := Notice(errors.New("plain failure"))
	if !strings.Contains(notice, "plain failure") {
		t.Fatalf("expected plain error detail, got %q", notice)
	}
}
