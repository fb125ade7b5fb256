package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func parseQuery(t *testing.T, query string) Params {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return Parse(c)
}

func TestParseDefaultsAndClamping(t *testing.T) {
	cases := []struct {
		name       string
		query      string
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "explicit", query: "page=3&limit=10", wantPage: 3, wantLimit: 10, wantOffset: 20},
		{name: "negative page", query: "page=-2", wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "zero limit", query: "limit=0", wantPage: 1, wantLimit: 20, wantOffset: 0},
		{name: "limit above max", query: "limit=500", wantPage: 1, wantLimit: 100, wantOffset: 0},
		{name: "non-numeric", query: "page=abc&limit=xyz", wantPage: 1, wantLimit: 20, wantOffset: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := parseQuery(t, tc.query)
			if p.Page != tc.wantPage || p.Limit != tc.wantLimit || p.Offset != tc.wantOffset {
				t.Fatalf("Parse(%q) = %+v, want page=%d limit=%d offset=%d",
					tc.query, p, tc.wantPage, tc.wantLimit, tc.wantOffset)
			}
		})
	}
}
