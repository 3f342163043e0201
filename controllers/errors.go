package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dive-booking/pricing"
	"dive-booking/services"
	"dive-booking/utils"
	"dive-booking/validation"
	"dive-booking/wizard"
)

// respondError maps service errors onto status codes. Messages of pricing
// and storage failures are passed through unchanged.
func respondError(c *gin.Context, err error) {
	var fieldErrs validation.FieldErrors
	var pricingErr *pricing.Error

	switch {
	case errors.As(err, &fieldErrs):
		utils.JSONFieldErrors(c, http.StatusUnprocessableEntity, fieldErrs)
	case errors.Is(err, services.ErrBookingNotFound), errors.Is(err, wizard.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.As(err, &pricingErr):
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	case errors.Is(err, services.ErrStoreUnavailable):
		zap.L().Error("booking store unavailable", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, err.Error())
	case errors.Is(err, services.ErrSubmissionFailed):
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	default:
		zap.L().Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

func respondBadRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
}
