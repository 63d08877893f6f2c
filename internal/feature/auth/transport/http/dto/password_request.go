package dto

// ResetPasswordReq is the body of /reset-password.
type ResetPasswordReq struct {
	Email string `json:"email" binding:"required,email"`
}

// ChangePasswordReq is the body of /change-password.
type ChangePasswordReq struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
