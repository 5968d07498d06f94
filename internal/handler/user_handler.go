package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/pkg/googleauth"
	"github.com/agrover-luv/SlashAlert-API/pkg/logger"
	"github.com/agrover-luv/SlashAlert-API/prometheus"
)

// Me returns the caller's identity record, creating it from the token
// claims on first sign-in and refreshing last_login on every call.
func Me(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	claims, _ := c.Get("claims").(*googleauth.GoogleClaims)

	ctx := c.Request().Context()
	repo := store.Users()

	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return storageError(c, log, err)
	}

	now := model.NewTimestamp(time.Now().UTC())
	if user == nil {
		user = &model.User{
			Email:    model.Flex(email),
			Provider: "google",
			IsActive: true,
		}
		if claims != nil {
			user.Sub = model.Flex(claims.Subject)
			user.EmailVerified = claims.EmailVerified
			user.Name = model.Flex(claims.Name)
			user.GivenName = model.Flex(claims.GivenName)
			user.FamilyName = model.Flex(claims.FamilyName)
			user.Picture = model.Flex(claims.Picture)
			user.Locale = model.Flex(claims.Locale)
		}
		user.LastLogin = now

		created, err := repo.Create(ctx, user)
		if err != nil {
			return storageError(c, log, err)
		}
		log.Info("User record created on first sign-in", zap.String("email", email))
		return c.JSON(http.StatusCreated, created)
	}

	user.LastLogin = now
	updated, err := repo.Update(ctx, user)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// ListUsers handles retrieving users with optional filtering
func ListUsers(c echo.Context) error {
	log := logger.FromEcho(c)
	if _, err := tenant(c); err != nil {
		return err
	}

	prometheus.RecordEntityOperation("user", "list")
	ctx := c.Request().Context()
	repo := store.Users()

	if email := c.QueryParam("email"); email != "" {
		user, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, user)
	}

	if sub := c.QueryParam("sub"); sub != "" {
		user, err := repo.GetBySub(ctx, sub)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, user)
	}

	if provider := c.QueryParam("provider"); provider != "" {
		users, err := repo.GetByProvider(ctx, provider)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, users)
	}

	if daysStr := c.QueryParam("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid days"})
		}
		users, err := repo.GetRecentLogins(ctx, days)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, users)
	}

	if c.QueryParam("active") == "true" {
		users, err := repo.GetActiveUsers(ctx)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, users)
	}

	users, err := repo.GetAll(ctx)
	if err != nil {
		return storageError(c, log, err)
	}
	log.Info("Users retrieved", zap.Int("count", len(users)))
	return c.JSON(http.StatusOK, users)
}

// GetUser handles retrieving a single user, by id or by partition key
// when the partition_key query parameter is present
func GetUser(c echo.Context) error {
	log := logger.FromEcho(c)
	if _, err := tenant(c); err != nil {
		return err
	}

	ctx := c.Request().Context()
	id := c.Param("id")

	var user *model.User
	var err error
	if pk := c.QueryParam("partition_key"); pk != "" {
		user, err = store.Users().GetByPartitionKey(ctx, id, pk)
	} else {
		user, err = store.Users().GetByID(ctx, id)
	}
	if err != nil {
		return storageError(c, log, err)
	}
	if user == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, user)
}

// CountUsers handles counting users
func CountUsers(c echo.Context) error {
	log := logger.FromEcho(c)
	if _, err := tenant(c); err != nil {
		return err
	}

	count, err := store.Users().Count(c.Request().Context())
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}
