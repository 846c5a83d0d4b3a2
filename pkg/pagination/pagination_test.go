package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func params(t *testing.T, query string) Params {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/"+query, nil)
	return FromContext(e.NewContext(req, httptest.NewRecorder()))
}

func TestFromContext_Defaults(t *testing.T) {
	p := params(t, "")
	if p.Limit != DefaultLimit {
		t.Errorf("limit = %d, want %d", p.Limit, DefaultLimit)
	}
	if p.Offset != 0 {
		t.Errorf("offset = %d, want 0", p.Offset)
	}
}

func TestFromContext_CustomValues(t *testing.T) {
	p := params(t, "?limit=50&offset=10")
	if p.Limit != 50 {
		t.Errorf("limit = %d, want 50", p.Limit)
	}
	if p.Offset != 10 {
		t.Errorf("offset = %d, want 10", p.Offset)
	}
}

func TestFromContext_ClampsBounds(t *testing.T) {
	p := params(t, "?limit=5000&offset=-3")
	if p.Limit != MaxLimit {
		t.Errorf("limit = %d, want clamped to %d", p.Limit, MaxLimit)
	}
	if p.Offset != 0 {
		t.Errorf("offset = %d, want clamped to 0", p.Offset)
	}

	p = params(t, "?limit=garbage")
	if p.Limit != DefaultLimit {
		t.Errorf("limit = %d, want %d for unparseable input", p.Limit, DefaultLimit)
	}
}

func TestParams_SQL(t *testing.T) {
	p := Params{Limit: 25, Offset: 50}
	if got := p.SQL(); got != "LIMIT 25 OFFSET 50" {
		t.Errorf("SQL() = %q", got)
	}
}

func TestParams_HasNext(t *testing.T) {
	p := Params{Limit: 10, Offset: 10}
	if !p.HasNext(25) {
		t.Error("expected more results at offset 10 of 25")
	}
	if p.HasNext(20) {
		t.Error("expected no more results at offset 10 of 20")
	}
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse([]string{"a", "b"}, 12, 10, 0)
	if !resp.HasMore {
		t.Error("expected HasMore with 12 total and first page of 10")
	}
	resp = NewResponse([]string{"c", "d"}, 12, 10, 10)
	if resp.HasMore {
		t.Error("expected HasMore false on the last page")
	}
}
