package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/osa911/portfolio/internal/api/constants"
	"github.com/osa911/portfolio/internal/api/dto/common"
	"github.com/osa911/portfolio/internal/api/dto/v1/contact"
	"github.com/osa911/portfolio/internal/api/sanitization"
	"github.com/osa911/portfolio/internal/logging"
	"github.com/osa911/portfolio/internal/service"
	"github.com/osa911/portfolio/internal/utils"
)

// Messages returned by the contact endpoint
const (
	ContactSuccessMessage = "Thank you for your message! I'll get back to you soon."
	ContactFailureMessage = "Failed to send email. Please try again later."
)

type ContactHandler struct {
	mailer service.ContactMailer
}

func NewContactHandler(mailer service.ContactMailer) *ContactHandler {
	return &ContactHandler{mailer: mailer}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	// Get contact data from context (set by validation middleware)
	contactData, exists := c.Get(constants.ContextKeyContact)
	if !exists {
		utils.HandleAPIError(c, utils.ErrContextValueMissing, http.StatusInternalServerError, common.ErrCodeInternalServer, ContactFailureMessage)
		return
	}

	req, ok := contactData.(contact.ContactRequest)
	if !ok {
		utils.HandleAPIError(c, utils.ErrContextValueMissing, http.StatusInternalServerError, common.ErrCodeInternalServer, ContactFailureMessage)
		return
	}

	logger := logging.GetGlobalLogger()

	if req.IsBot() {
		logger.Warn("Contact honeypot triggered from %s (%s), dropping submission", c.ClientIP(), sanitization.MaskEmail(req.Email))
		utils.HandleOK(c, contact.ContactResponse{Success: true, Message: ContactSuccessMessage})
		return
	}

	logger.Info("Received contact form submission from %s", sanitization.MaskEmail(req.Email))

	if !h.mailer.SendContactEmail(c.Request.Context(), req.Name, req.Email, req.Message) {
		utils.HandleAPIError(c, nil, http.StatusInternalServerError, common.ErrCodeInternalServer, ContactFailureMessage)
		return
	}

	utils.HandleOK(c, contact.ContactResponse{
		Success: true,
		Message: ContactSuccessMessage,
	})
}
