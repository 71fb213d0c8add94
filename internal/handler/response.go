package handler

import (
	"net/http"

	"watchstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Envelope は全エンドポイント共通のレスポンス形
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func respondOK(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func respondCreated(c echo.Context, message string, data interface{}) error {
	return c.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

func respondFail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}

// usecaseのエラーをHTTPレスポンスへ変換する。
// 500のときは元エラーのメッセージをerror欄に載せる。
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		env := Envelope{Success: false, Message: he.Message}
		if he.Err != nil {
			env.Error = he.Err.Error()
		}
		return c.JSON(he.Status, env)
	}

	//500
	return c.JSON(http.StatusInternalServerError, Envelope{
		Success: false,
		Message: "internal server error",
		Error:   err.Error(),
	})
}
