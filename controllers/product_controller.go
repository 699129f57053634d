package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"techstore/models"
	"techstore/services"

	"github.com/gin-gonic/gin"
)

type ProductController struct {
	catalog *services.CatalogService
}

func NewProductController(catalog *services.CatalogService) *ProductController {
	return &ProductController{catalog: catalog}
}

// @Summary Get all products
// @Description Get list of all products in store order
// @Tags Products
// @Produce json
// @Success 200 {object} models.ListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	products, err := ctrl.catalog.ListProducts()
	if err != nil {
		log.Printf("Error reading products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Error fetching products",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ListResponse{
		Success: true,
		Count:   len(products),
		Data:    products,
	})
}

// @Summary Get product by ID
// @Description Get a single product
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	// A non-numeric id parses to 0, matches nothing and falls through
	// to the 404 below.
	id, _ := strconv.Atoi(c.Param("id"))

	product, err := ctrl.catalog.GetProductByID(id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Success: false,
			Message: "Product not found",
		})
		return
	}
	if err != nil {
		log.Printf("Error reading products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Error fetching product",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Data:    product,
	})
}

// @Summary Get products by category
// @Description Get products matching a category name, case-insensitive
// @Tags Products
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {object} models.ListResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/products/category/{category} [get]
func (ctrl *ProductController) GetProductsByCategory(c *gin.Context) {
	category := c.Param("category")

	products, err := ctrl.catalog.ListProductsByCategory(category)
	if err != nil {
		log.Printf("Error reading products: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Success: false,
			Message: "Error fetching products by category",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, models.ListResponse{
		Success: true,
		Count:   len(products),
		Data:    products,
	})
}
