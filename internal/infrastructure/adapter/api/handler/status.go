package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	domainerr "github.com/sina-mohseni/nftvault/internal/domain/error"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/api/dto"
)

// statusForError maps domain errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case domainerr.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, domainerr.ErrLockNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrLockAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrNotYetExpired):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrIneligibleAsset):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainerr.ErrReentrancyRejected):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrTransferFailed):
		return http.StatusConflict
	case errors.Is(err, domainerr.ErrFeeChargeFailed):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerr.ErrPaused):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the standardized error response
func respondError(c *gin.Context, err error) {
	c.JSON(statusForError(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}

// callerAccount extracts the caller identity from the X-Account-ID header.
// The service trusts an upstream authenticator for the binding between
// header and caller.
func callerAccount(c *gin.Context) (entity.AccountID, bool) {
	raw := c.GetHeader("X-Account-ID")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountID),
			Message: "X-Account-ID header must be a non-zero account ID",
		})
		return 0, false
	}
	return entity.AccountID(id), true
}

// lockRef extracts the (assetType, unitId) pair from the path
func lockRef(c *gin.Context) (entity.AssetType, entity.UnitID, bool) {
	assetType := entity.AssetType(c.Param("assetType"))
	unitID, err := strconv.ParseInt(c.Param("unitId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUnitID),
			Message: "Invalid unit ID format",
		})
		return "", 0, false
	}
	return assetType, entity.UnitID(unitID), true
}
