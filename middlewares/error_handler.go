package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// ErrorHandler turns unhandled handler errors into a generic 500 response.
// echo.HTTPError values pass through untouched so auth failures keep their
// status codes.
func ErrorHandler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err != nil {
				if _, ok := err.(*echo.HTTPError); ok {
					return err
				}
				logrus.Error("Error request: ", err)
				return c.JSON(http.StatusInternalServerError, map[string]interface{}{"error": "Failed to process request"})
			}
			return nil
		}
	}
}
