package dto

import protectiondomain "mailscope-backend/internal/protection/domain"

type VerifyAccessRequest struct {
	Email     string `json:"email" binding:"required"`
	AccessKey string `json:"accessKey"`
}

type VerifyAccessResponse struct {
	Success   bool   `json:"success"`
	Protected bool   `json:"protected"`
	Locked    bool   `json:"locked"`
	Message   string `json:"message"`
}

type CreateProtectedEmailRequest struct {
	Email     string `json:"email" binding:"required"`
	AccessKey string `json:"accessKey"`
}

// UpdateProtectedEmailRequest carries the validated update operations. Only
// these operations can reach the store; there is no free-form field merge.
type UpdateProtectedEmailRequest struct {
	ID           string  `json:"id" binding:"required"`
	SetLocked    *bool   `json:"setLocked,omitempty"`
	RotateKey    bool    `json:"rotateKey,omitempty"`
	SetAccessKey *string `json:"setAccessKey,omitempty"`
}

type ProtectedEmailResponse struct {
	Success bool                            `json:"success"`
	Email   *protectiondomain.ProtectedEmail `json:"email"`
}

type ProtectedEmailListResponse struct {
	Success bool                              `json:"success"`
	Emails  []*protectiondomain.ProtectedEmail `json:"emails"`
	Stats   *protectiondomain.StoreStats       `json:"stats"`
}
