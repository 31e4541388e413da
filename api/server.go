package api

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	categoryApi "gudang.GO/api/category"
	itemApi "gudang.GO/api/item"
	transactionApi "gudang.GO/api/transaction"
)

// NewServer builds the Echo instance with all middleware and routes. Shared
// by main, the serve command and the API tests.
func NewServer(db *gorm.DB) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			log.Printf("Request duration: %d ms", duration)
			return err
		}
	})

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	g := e.Group("")
	categoryApi.RegisterCategoryRoutes(g, db)
	itemApi.RegisterItemRoutes(g, db)
	transactionApi.RegisterTransactionRoutes(g, db)

	return e
}
