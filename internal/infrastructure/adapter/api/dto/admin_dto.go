package dto

// SetFeesRequest is the body of PUT /admin/fees
type SetFeesRequest struct {
	CreationFee  int64 `json:"creationFee"`
	ExtensionFee int64 `json:"extensionFee"`
}
