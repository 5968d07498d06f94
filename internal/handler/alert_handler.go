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

// ListAlerts handles retrieving all alerts with optional filtering
func ListAlerts(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("alert", "list")
	ctx := c.Request().Context()
	repo := store.Alerts()

	if productID := c.QueryParam("product_id"); productID != "" {
		alerts, err := repo.GetByProductID(ctx, productID, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, alerts)
	}

	if userID := c.QueryParam("user_id"); userID != "" {
		alerts, err := repo.GetByUserID(ctx, userID, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, alerts)
	}

	if alertType := c.QueryParam("alert_type"); alertType != "" {
		alerts, err := repo.GetByAlertType(ctx, alertType, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, alerts)
	}

	if c.QueryParam("sent") == "true" {
		alerts, err := repo.GetSentAlerts(ctx, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, alerts)
	}

	if daysStr := c.QueryParam("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid days"})
		}
		alerts, err := repo.GetRecentAlerts(ctx, days, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, alerts)
	}

	alerts, err := repo.GetAll(ctx, email)
	if err != nil {
		return storageError(c, log, err)
	}
	log.Info("Alerts retrieved", zap.Int("count", len(alerts)))
	return c.JSON(http.StatusOK, alerts)
}

// GetAlert handles retrieving a single alert by ID
func GetAlert(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	alert, err := store.Alerts().GetByID(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return storageError(c, log, err)
	}
	if alert == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "alert not found"})
	}
	return c.JSON(http.StatusOK, alert)
}

// CountAlerts handles counting the caller's alerts
func CountAlerts(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	count, err := store.Alerts().Count(c.Request().Context(), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// CreateAlert handles creating a new alert
func CreateAlert(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var alert model.Alert
	if err := c.Bind(&alert); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	alert.SetTenant(email)

	prometheus.RecordEntityOperation("alert", "create")
	created, err := store.Alerts().Create(c.Request().Context(), &alert)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateAlert handles replacing an existing alert
func UpdateAlert(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var alert model.Alert
	if err := c.Bind(&alert); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	alert.SetEntityID(c.Param("id"))
	alert.SetTenant(email)

	prometheus.RecordEntityOperation("alert", "update")
	updated, err := store.Alerts().Update(c.Request().Context(), &alert)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteAlert handles deleting an alert
func DeleteAlert(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("alert", "delete")
	deleted, err := store.Alerts().Delete(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
