package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(ctxWithQuery(""))
	if p.Limit != DefaultLimit {
		t.Errorf("Limit = %d, want %d", p.Limit, DefaultLimit)
	}
	if p.Offset != 0 {
		t.Errorf("Offset = %d, want 0", p.Offset)
	}
}

func TestFromContext_Capped(t *testing.T) {
	p := FromContext(ctxWithQuery("limit=500&offset=40"))
	if p.Limit != MaxLimit {
		t.Errorf("Limit = %d, want %d", p.Limit, MaxLimit)
	}
	if p.Offset != 40 {
		t.Errorf("Offset = %d, want 40", p.Offset)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse([]int{1, 2, 3}, 10, Params{Limit: 3, Offset: 0})
	if !r.HasMore {
		t.Error("expected HasMore to be true")
	}

	r = NewResponse([]int{1}, 1, Params{Limit: 20, Offset: 0})
	if r.HasMore {
		t.Error("expected HasMore to be false")
	}
}

func TestParams_HasNext(t *testing.T) {
	p := Params{Limit: 10, Offset: 10}
	if !p.HasNext(21) {
		t.Error("expected a next page when rows remain")
	}
	if p.HasNext(20) {
		t.Error("expected no next page at the end")
	}
}
