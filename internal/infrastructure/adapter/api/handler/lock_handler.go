package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sina-mohseni/nftvault/internal/domain/entity"
	domainerr "github.com/sina-mohseni/nftvault/internal/domain/error"
	coreport "github.com/sina-mohseni/nftvault/internal/domain/port/core"
	"github.com/sina-mohseni/nftvault/internal/domain/port/usecase"
	"github.com/sina-mohseni/nftvault/internal/infrastructure/adapter/api/dto"
)

// LockHandler handles custody lock HTTP requests
type LockHandler struct {
	lockUseCase usecase.LockUseCase
	logger      coreport.Logger
}

// NewLockHandler creates a new lock handler instance
func NewLockHandler(lockUseCase usecase.LockUseCase, logger coreport.Logger) *LockHandler {
	return &LockHandler{
		lockUseCase: lockUseCase,
		logger:      logger,
	}
}

// lockToResponse converts a domain lock to its API representation
func lockToResponse(lock *entity.Lock) dto.LockResponse {
	return dto.LockResponse{
		AssetType:     string(lock.AssetType),
		UnitID:        int64(lock.UnitID),
		Creator:       uint64(lock.Creator),
		Beneficiary:   uint64(lock.Beneficiary),
		StartUnix:     lock.Start.Unix(),
		DurationSecs:  lock.DurationSecs,
		ReleaseAtUnix: lock.ReleaseAt().Unix(),
	}
}

// Associate handles POST /assets/:assetType/associate
func (h *LockHandler) Associate(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		return
	}
	assetType := entity.AssetType(c.Param("assetType"))

	if err := h.lockUseCase.AssociateAsset(c.Request.Context(), assetType, caller); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "associated"})
}

// Create handles POST /locks
func (h *LockHandler) Create(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		return
	}

	var req dto.CreateLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	lock, err := h.lockUseCase.CreateLock(c.Request.Context(), usecase.CreateLockRequest{
		AssetType:    entity.AssetType(req.AssetType),
		UnitID:       entity.UnitID(req.UnitID),
		Beneficiary:  entity.AccountID(req.Beneficiary),
		DurationSecs: req.DurationSecs,
		Caller:       caller,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lockToResponse(lock))
}

// Extend handles POST /locks/:assetType/:unitId/extend
func (h *LockHandler) Extend(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		return
	}
	assetType, unitID, ok := lockRef(c)
	if !ok {
		return
	}

	var req dto.ExtendLockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.CodeInvalidInput,
			Message: "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := h.lockUseCase.ExtendLockDuration(c.Request.Context(), assetType, unitID, req.ExtraSecs, caller); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "extended"})
}

// Withdraw handles POST /locks/:assetType/:unitId/withdraw
func (h *LockHandler) Withdraw(c *gin.Context) {
	caller, ok := callerAccount(c)
	if !ok {
		return
	}
	assetType, unitID, ok := lockRef(c)
	if !ok {
		return
	}

	if err := h.lockUseCase.WithdrawUnlockedNFT(c.Request.Context(), assetType, unitID, caller); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StatusResponse{Status: "withdrawn"})
}

// Get handles GET /locks/:assetType/:unitId
func (h *LockHandler) Get(c *gin.Context) {
	assetType, unitID, ok := lockRef(c)
	if !ok {
		return
	}

	lock, err := h.lockUseCase.GetLockedAsset(c.Request.Context(), assetType, unitID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lockToResponse(lock))
}
