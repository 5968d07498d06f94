package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/pkg/logger"
	"github.com/agrover-luv/SlashAlert-API/prometheus"
)

// ListProducts handles retrieving all products with optional filtering
func ListProducts(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("product", "list")
	ctx := c.Request().Context()
	repo := store.Products()

	// Single-result filters answer with one record or null.
	if url := c.QueryParam("url"); url != "" {
		product, err := repo.GetByURL(ctx, url, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, product)
	}

	if retailer := c.QueryParam("retailer"); retailer != "" {
		products, err := repo.GetByRetailer(ctx, retailer, email)
		if err != nil {
			return storageError(c, log, err)
		}
		log.Info("Products filtered by retailer", zap.String("retailer", retailer), zap.Int("count", len(products)))
		return c.JSON(http.StatusOK, products)
	}

	if category := c.QueryParam("category"); category != "" {
		products, err := repo.GetByCategory(ctx, category, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, products)
	}

	if createdByID := c.QueryParam("created_by_id"); createdByID != "" {
		products, err := repo.GetByCreatedByID(ctx, createdByID, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, products)
	}

	minStr, maxStr := c.QueryParam("min_price"), c.QueryParam("max_price")
	if minStr != "" || maxStr != "" {
		minPrice, err := decimal.NewFromString(minStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_price"})
		}
		maxPrice, err := decimal.NewFromString(maxStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid max_price"})
		}
		products, err := repo.GetByPriceRange(ctx, minPrice, maxPrice, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, products)
	}

	if c.QueryParam("active") == "true" {
		products, err := repo.GetActiveProducts(ctx, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, products)
	}

	products, err := repo.GetAll(ctx, email)
	if err != nil {
		return storageError(c, log, err)
	}
	log.Info("Products retrieved", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func GetProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	product, err := store.Products().GetByID(c.Request().Context(), id, email)
	if err != nil {
		return storageError(c, log, err)
	}
	if product == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "product not found"})
	}
	return c.JSON(http.StatusOK, product)
}

// CountProducts handles counting the caller's products
func CountProducts(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	count, err := store.Products().Count(c.Request().Context(), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// CreateProduct handles creating a new product
func CreateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var product model.Product
	if err := c.Bind(&product); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	product.SetTenant(email)

	prometheus.RecordEntityOperation("product", "create")
	created, err := store.Products().Create(c.Request().Context(), &product)
	if err != nil {
		return storageError(c, log, err)
	}
	log.Info("Product created", zap.String("product_id", created.EntityID()))
	return c.JSON(http.StatusCreated, created)
}

// UpdateProduct handles replacing an existing product
func UpdateProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var product model.Product
	if err := c.Bind(&product); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	product.SetEntityID(c.Param("id"))
	product.SetTenant(email)

	prometheus.RecordEntityOperation("product", "update")
	updated, err := store.Products().Update(c.Request().Context(), &product)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct handles deleting a product
func DeleteProduct(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("product", "delete")
	deleted, err := store.Products().Delete(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
