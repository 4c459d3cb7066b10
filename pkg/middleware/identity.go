package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Identity resolves who is calling, for snapshot attribution. The real
// gateway injects X-User after its own auth; locally a cookie or ?uid=
// keeps the flow usable without one.
func Identity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := c.Request().Header.Get("X-User")
			if uid == "" {
				if ck, err := c.Cookie("FARM_UID"); err == nil {
					uid = ck.Value
				}
			}
			if uid == "" {
				if q := c.QueryParam("uid"); q != "" {
					c.SetCookie(&http.Cookie{Name: "FARM_UID", Value: q, Path: "/"})
					uid = q
				} else {
					uid = "field-office"
				}
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
