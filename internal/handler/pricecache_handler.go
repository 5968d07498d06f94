package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/pkg/logger"
	"github.com/agrover-luv/SlashAlert-API/prometheus"
)

// ListPriceCaches handles retrieving price cache entries with optional
// filtering
func ListPriceCaches(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("price_cache", "list")
	ctx := c.Request().Context()
	repo := store.PriceCaches()

	if url := c.QueryParam("url"); url != "" {
		entry, err := repo.GetByURL(ctx, url, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, entry)
	}

	if productName := c.QueryParam("product_name"); productName != "" {
		entries, err := repo.GetByProductName(ctx, productName, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, entries)
	}

	if hoursStr := c.QueryParam("hours"); hoursStr != "" {
		hours, err := strconv.Atoi(hoursStr)
		if err != nil || hours < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid hours"})
		}
		entries, err := repo.GetRecentlyChecked(ctx, hours, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, entries)
	}

	if c.QueryParam("discounted") == "true" {
		entries, err := repo.GetDiscountedItems(ctx, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, entries)
	}

	entries, err := repo.GetAll(ctx, email)
	if err != nil {
		return storageError(c, log, err)
	}
	log.Info("Price cache entries retrieved", zap.Int("count", len(entries)))
	return c.JSON(http.StatusOK, entries)
}

// GetPriceCache handles retrieving a single price cache entry by ID
func GetPriceCache(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	entry, err := store.PriceCaches().GetByID(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return storageError(c, log, err)
	}
	if entry == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "price cache entry not found"})
	}
	return c.JSON(http.StatusOK, entry)
}

// CountPriceCaches handles counting the caller's price cache entries
func CountPriceCaches(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	count, err := store.PriceCaches().Count(c.Request().Context(), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// CreatePriceCache handles creating a new price cache entry
func CreatePriceCache(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var entry model.PriceCache
	if err := c.Bind(&entry); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	entry.SetTenant(email)

	prometheus.RecordEntityOperation("price_cache", "create")
	created, err := store.PriceCaches().Create(c.Request().Context(), &entry)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdatePriceCache handles replacing an existing price cache entry
func UpdatePriceCache(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var entry model.PriceCache
	if err := c.Bind(&entry); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	entry.SetEntityID(c.Param("id"))
	entry.SetTenant(email)

	prometheus.RecordEntityOperation("price_cache", "update")
	updated, err := store.PriceCaches().Update(c.Request().Context(), &entry)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeletePriceCache handles deleting a price cache entry
func DeletePriceCache(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("price_cache", "delete")
	deleted, err := store.PriceCaches().Delete(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
