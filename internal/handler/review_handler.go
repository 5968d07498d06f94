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

// ListReviews handles retrieving all reviews with optional filtering
func ListReviews(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("review", "list")
	ctx := c.Request().Context()
	repo := store.Reviews()

	if ratingStr := c.QueryParam("rating"); ratingStr != "" {
		rating, err := strconv.Atoi(ratingStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid rating"})
		}
		reviews, err := repo.GetByRating(ctx, rating, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, reviews)
	}

	if minRatingStr := c.QueryParam("min_rating"); minRatingStr != "" {
		minRating, err := strconv.Atoi(minRatingStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_rating"})
		}
		reviews, err := repo.GetTopRatedReviews(ctx, minRating, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, reviews)
	}

	if userName := c.QueryParam("user_name"); userName != "" {
		reviews, err := repo.GetByUserName(ctx, userName, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, reviews)
	}

	if c.QueryParam("verified") == "true" {
		reviews, err := repo.GetVerifiedReviews(ctx, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, reviews)
	}

	reviews, err := repo.GetAll(ctx, email)
	if err != nil {
		return storageError(c, log, err)
	}
	log.Info("Reviews retrieved", zap.Int("count", len(reviews)))
	return c.JSON(http.StatusOK, reviews)
}

// GetReview handles retrieving a single review by ID
func GetReview(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	review, err := store.Reviews().GetByID(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return storageError(c, log, err)
	}
	if review == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "review not found"})
	}
	return c.JSON(http.StatusOK, review)
}

// CountReviews handles counting the caller's reviews
func CountReviews(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	count, err := store.Reviews().Count(c.Request().Context(), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// CreateReview handles creating a new review
func CreateReview(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var review model.Review
	if err := c.Bind(&review); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	review.SetTenant(email)

	prometheus.RecordEntityOperation("review", "create")
	created, err := store.Reviews().Create(c.Request().Context(), &review)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateReview handles replacing an existing review
func UpdateReview(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var review model.Review
	if err := c.Bind(&review); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	review.SetEntityID(c.Param("id"))
	review.SetTenant(email)

	prometheus.RecordEntityOperation("review", "update")
	updated, err := store.Reviews().Update(c.Request().Context(), &review)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteReview handles deleting a review
func DeleteReview(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("review", "delete")
	deleted, err := store.Reviews().Delete(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
