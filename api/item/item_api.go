package item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	entity "gudang.GO/model/entity"
	itemRepo "gudang.GO/model/repository/item"
)

func RegisterItemRoutes(g *echo.Group, db *gorm.DB) {
	repo := itemRepo.NewItemRepository(db)

	g.POST("/items", func(c echo.Context) error {
		var body struct {
			Nama       string `json:"nama"`
			CategoryID uint   `json:"category_id"`
			Stock      *int   `json:"stock"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		stock := 0
		if body.Stock != nil {
			stock = *body.Stock
		}
		if stock < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "stock must not be negative"})
		}

		it := entity.Item{
			Nama:       body.Nama,
			CategoryID: body.CategoryID,
			Stock:      stock,
		}
		if err := repo.Create(&it); err != nil {
			// FK violation on category_id is the usual cause.
			return c.JSON(http.StatusBadRequest, echo.Map{
				"error": "Failed to add item. Make sure category_id is valid.",
			})
		}
		return c.JSON(http.StatusCreated, echo.Map{
			"id":      it.ID,
			"message": "Item added successfully",
		})
	})

	g.GET("/items", func(c echo.Context) error {
		items, err := repo.FindAllWithCategory()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, items)
	})

	g.GET("/items/:id", func(c echo.Context) error {
		raw := c.Param("id")
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Item with id " + raw + " not found"})
		}
		it, err := repo.FindByID(uint(id))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": "Item with id " + raw + " not found"})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, it)
	})
}
