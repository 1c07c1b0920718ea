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
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(ctxWithQuery(""))
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContext_CapsLimit(t *testing.T) {
	p := FromContext(ctxWithQuery("limit=5000"))
	if p.Limit != MaxLimit {
		t.Errorf("expected cap at %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_ParsesValues(t *testing.T) {
	p := FromContext(ctxWithQuery("limit=5&offset=40"))
	if p.Limit != 5 || p.Offset != 40 {
		t.Errorf("unexpected params: %+v", p)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse(nil, 100, 20, 0)
	if !r.HasMore {
		t.Error("expected HasMore for first page of 100")
	}
	r = NewResponse(nil, 100, 20, 80)
	if r.HasMore {
		t.Error("expected no more pages at offset 80")
	}
}
