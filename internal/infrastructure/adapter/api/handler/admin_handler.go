package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	domainerr "github.com/sina-mohseni/nftvault/internal/domain/error"
	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
	"github.com/sina-mohseni/nftvault/internal/domain/port/usecase"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/api/dto"
)

// AdminHandler handles administrator HTTP requests
type AdminHandler struct {
	adminUseCase usecase.AdminUseCase
	logger       coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(adminUseCase usecase.AdminUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
		logger:       logger,
	}
}

// Pause handles POST /admin/pause
func (h *AdminHandler) Pause(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		return
	}
	if err := h.adminUseCase.Pause(caller); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "paused"})
}

// Unpause handles POST /admin/unpause
func (h *AdminHandler) Unpause(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		return
	}
	if err := h.adminUseCase.Unpause(caller); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "unpaused"})
}

// SetFees handles PUT /admin/fees
func (h *AdminHandler) SetFees(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		return
	}

	var req dto.SetFeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := h.adminUseCase.SetFees(caller, req.CreationFee, req.ExtensionFee); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "fees updated"})
}

// exemptionAccount extracts the target account from the path
func (h *AdminHandler) exemptionAccount(c *gin.Context) (entity.AccountID, bool) {
	id, err := strconv.ParseUint(c.Param("account"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidAccountID),
			Message: "Invalid account ID format",
		})
		return 0, false
	}
	return entity.AccountID(id), true
}

// AddExemption handles POST /admin/fee-exemptions/:account
func (h *AdminHandler) AddExemption(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		return
	}
	account, ok := h.exemptionAccount(c)
	if !ok {
		return
	}
	if err := h.adminUseCase.AddFeeExemption(caller, account); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "exemption added"})
}

// RemoveExemption handles DELETE /admin/fee-exemptions/:account
func (h *AdminHandler) RemoveExemption(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		return
	}
	account, ok := h.exemptionAccount(c)
	if !ok {
		return
	}
	if err := h.adminUseCase.RemoveFeeExemption(caller, account); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "exemption removed"})
}
