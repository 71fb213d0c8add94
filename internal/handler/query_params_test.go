package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newQueryContext(t *testing.T, rawQuery string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest("GET", "/?"+rawQuery, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

// 数値クエリはパースできなければ既定値に落とす（400にしない）
func TestIntQueryParam(t *testing.T) {
	c := newQueryContext(t, "page=3&limit=abc&neg=-2")

	assert.Equal(t, 3, intQueryParam(c, "page", 1))
	assert.Equal(t, 10, intQueryParam(c, "limit", 10))
	assert.Equal(t, 1, intQueryParam(c, "missing", 1))
	assert.Equal(t, -2, intQueryParam(c, "neg", 1)) // 丸めは後段の仕事
}

func TestFloatPtrQueryParam(t *testing.T) {
	c := newQueryContext(t, "minPrice=99.5&maxPrice=garbage")

	min := floatPtrQueryParam(c, "minPrice")
	if assert.NotNil(t, min) {
		assert.Equal(t, 99.5, *min)
	}
	assert.Nil(t, floatPtrQueryParam(c, "maxPrice"))
	assert.Nil(t, floatPtrQueryParam(c, "missing"))
}
