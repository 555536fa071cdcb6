package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const maxLimit = 100

// Page is the paginated list envelope.
type Page struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  interface{} `json:"results"`
}

// LimitOffset is the offset/limit list contract used by the title,
// review, comment and user resources.
type LimitOffset struct {
	Limit  int
	Offset int
}

// LimitOffsetFromQuery reads "limit" and "offset", falling back to
// defaultLimit and 0. Out-of-range values are clamped.
func LimitOffsetFromQuery(c *gin.Context, defaultLimit int) LimitOffset {
	lo := LimitOffset{Limit: defaultLimit, Offset: 0}

	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		lo.Limit = v
	}
	if lo.Limit > maxLimit {
		lo.Limit = maxLimit
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		lo.Offset = v
	}

	return lo
}

// Paginated writes the envelope for the offset/limit contract.
func Paginated(c *gin.Context, count int, results interface{}, lo LimitOffset) {
	page := Page{Count: count, Results: results}

	if lo.Offset+lo.Limit < count {
		page.Next = pageLink(c, "offset", lo.Offset+lo.Limit)
	}
	if lo.Offset > 0 {
		prev := lo.Offset - lo.Limit
		if prev < 0 {
			prev = 0
		}
		page.Previous = pageLink(c, "offset", prev)
	}

	c.JSON(http.StatusOK, page)
}

// PageNumber is the numbered-page list contract used by the category and
// genre resources. The page size is fixed server-side.
type PageNumber struct {
	Page int
	Size int
}

// PageFromQuery reads "page" (1-based), falling back to 1.
func PageFromQuery(c *gin.Context, size int) PageNumber {
	p := PageNumber{Page: 1, Size: size}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		p.Page = v
	}
	return p
}

func (p PageNumber) Limit() int  { return p.Size }
func (p PageNumber) Offset() int { return (p.Page - 1) * p.Size }

// PagePaginated writes the envelope for the numbered-page contract.
func PagePaginated(c *gin.Context, count int, results interface{}, p PageNumber) {
	page := Page{Count: count, Results: results}

	if p.Offset()+p.Size < count {
		page.Next = pageLink(c, "page", p.Page+1)
	}
	if p.Page > 1 {
		page.Previous = pageLink(c, "page", p.Page-1)
	}

	c.JSON(http.StatusOK, page)
}

func pageLink(c *gin.Context, key string, value int) *string {
	u := *c.Request.URL
	q := u.Query()
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	} else {
		q.Del(key)
	}
	u.RawQuery = q.Encode()
	s := u.String()
	return &s
}
