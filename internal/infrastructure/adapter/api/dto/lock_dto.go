package dto

// CreateLockRequest is the body of POST /locks
type CreateLockRequest struct {
	AssetType    string `json:"assetType" binding:"required"`
	UnitID       int64  `json:"unitId" binding:"required"`
	Beneficiary  uint64 `json:"beneficiary" binding:"required"`
	DurationSecs int64  `json:"durationSecs" binding:"required"`
}

// ExtendLockRequest is the body of POST /locks/:assetType/:unitId/extend
type ExtendLockRequest struct {
	ExtraSecs int64 `json:"extraSecs" binding:"required"`
}

// LockResponse is the representation of a live lock
type LockResponse struct {
	AssetType     string `json:"assetType"`
	UnitID        int64  `json:"unitId"`
	Creator       uint64 `json:"creator"`
	Beneficiary   uint64 `json:"beneficiary"`
	StartUnix     int64  `json:"startUnix"`
	DurationSecs  int64  `json:"durationSecs"`
	ReleaseAtUnix int64  `json:"releaseAtUnix"`
}

// StatusResponse acknowledges an operation with no payload
type StatusResponse struct {
	Status string `json:"status"`
}
