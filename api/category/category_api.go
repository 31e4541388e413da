package category

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	entity "gudang.GO/model/entity"
	categoryRepo "gudang.GO/model/repository/category"
)

func RegisterCategoryRoutes(g *echo.Group, db *gorm.DB) {
	repo := categoryRepo.NewCategoryRepository(db)

	g.POST("/categories", func(c echo.Context) error {
		var body struct {
			Nama string `json:"nama"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if strings.TrimSpace(body.Nama) == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "nama is required"})
		}

		cat := entity.Category{Nama: body.Nama}
		if err := repo.Create(&cat); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, echo.Map{
			"id":      cat.ID,
			"message": "Category created successfully",
		})
	})

	g.GET("/categories", func(c echo.Context) error {
		cats, err := repo.FindAll()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cats)
	})

	g.GET("/categories/:id", func(c echo.Context) error {
		raw := c.Param("id")
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			nf := &categoryRepo.NotFoundError{ID: raw}
			return c.JSON(http.StatusNotFound, echo.Map{"error": nf.Error()})
		}
		cat, err := repo.FindByID(uint(id))
		if err != nil {
			var nf *categoryRepo.NotFoundError
			if errors.As(err, &nf) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": nf.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cat)
	})
}
