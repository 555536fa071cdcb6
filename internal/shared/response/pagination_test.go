package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, w
}

func decodePage(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLimitOffsetFromQueryDefaults(t *testing.T) {
	c, _ := testContext(t, "/v1/titles")

	lo := LimitOffsetFromQuery(c, 5)
	assert.Equal(t, 5, lo.Limit)
	assert.Equal(t, 0, lo.Offset)
}

func TestLimitOffsetFromQueryParsesAndClamps(t *testing.T) {
	c, _ := testContext(t, "/v1/titles?limit=10&offset=20")
	lo := LimitOffsetFromQuery(c, 5)
	assert.Equal(t, 10, lo.Limit)
	assert.Equal(t, 20, lo.Offset)

	c, _ = testContext(t, "/v1/titles?limit=9999")
	lo = LimitOffsetFromQuery(c, 5)
	assert.Equal(t, maxLimit, lo.Limit)

	c, _ = testContext(t, "/v1/titles?limit=-3&offset=abc")
	lo = LimitOffsetFromQuery(c, 5)
	assert.Equal(t, 5, lo.Limit)
	assert.Equal(t, 0, lo.Offset)
}

func TestPaginatedFirstPageHasNextOnly(t *testing.T) {
	c, w := testContext(t, "/v1/titles?limit=2")

	Paginated(c, 5, []string{"a", "b"}, LimitOffset{Limit: 2, Offset: 0})

	body := decodePage(t, w)
	assert.Equal(t, float64(5), body["count"])
	assert.Nil(t, body["previous"])
	assert.Contains(t, body["next"], "offset=2")
}

func TestPaginatedMiddlePageHasBothLinks(t *testing.T) {
	c, w := testContext(t, "/v1/titles?limit=2&offset=2")

	Paginated(c, 5, []string{"c", "d"}, LimitOffset{Limit: 2, Offset: 2})

	body := decodePage(t, w)
	assert.Contains(t, body["next"], "offset=4")
	// The first page drops the offset parameter entirely.
	assert.NotContains(t, body["previous"], "offset=")
}

func TestPaginatedLastPageHasPreviousOnly(t *testing.T) {
	c, w := testContext(t, "/v1/titles?limit=2&offset=4")

	Paginated(c, 5, []string{"e"}, LimitOffset{Limit: 2, Offset: 4})

	body := decodePage(t, w)
	assert.Nil(t, body["next"])
	assert.Contains(t, body["previous"], "offset=2")
}

func TestPageNumberOffsets(t *testing.T) {
	p := PageNumber{Page: 1, Size: 5}
	assert.Equal(t, 0, p.Offset())

	p.Page = 3
	assert.Equal(t, 10, p.Offset())
	assert.Equal(t, 5, p.Limit())
}

func TestPagePaginatedLinks(t *testing.T) {
	c, w := testContext(t, "/v1/categories?page=2")

	PagePaginated(c, 12, []string{"f"}, PageNumber{Page: 2, Size: 5})

	body := decodePage(t, w)
	assert.Equal(t, float64(12), body["count"])
	assert.Contains(t, body["next"], "page=3")
	assert.Contains(t, body["previous"], "page=1")
}
