package dto

import "strings"

// QRCodeRequest asks for a scannable QR image of an invitation URL
type QRCodeRequest struct {
	InvitationID string `json:"invitation_id" binding:"required,uuid"`
}

// Validate checks required fields
func (r *QRCodeRequest) Validate() (bool, string) {
	if strings.TrimSpace(r.InvitationID) == "" {
		return false, "Invitation ID is required"
	}
	return true, ""
}

// QRCodeResponse carries the invitation URL and its QR image as a base64
// PNG data URL
type QRCodeResponse struct {
	InvitationID string `json:"invitation_id"`
	URL          string `json:"url"`
	DataURL      string `json:"data_url"`
}
