package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// クエリ文字列の数値は「パースできなければ既定値」。
// ページングや価格帯にゴミが来てもエラーにせず、丸めた値で応答する方針。

func intQueryParam(c echo.Context, name string, def int) int {
	v := c.QueryParam(name)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// 未指定・パース不能は nil（＝条件に含めない）
func floatPtrQueryParam(c echo.Context, name string) *float64 {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}
