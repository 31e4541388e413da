package transaction

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	entity "gudang.GO/model/entity"
	stockService "gudang.GO/service/stock"
)

func RegisterTransactionRoutes(g *echo.Group, db *gorm.DB) {
	svc := stockService.NewService(db)

	// POST /transactions – atomic multi-item stock movement. Every failure
	// maps to 400 with the error message; the unit of work has already been
	// rolled back by then, so no partial stock change is ever visible.
	g.POST("/transactions", func(c echo.Context) error {
		var body struct {
			Type  string               `json:"type"`
			Items []stockService.Entry `json:"items"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}

		id, err := svc.Execute(entity.TransactionType(body.Type), body.Items)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"data":    echo.Map{"transactionId": id},
		})
	})
}
