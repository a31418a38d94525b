package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tracknest/tracker-go/internal/application"
	"github.com/tracknest/tracker-go/pkg/response"
	"github.com/tracknest/tracker-go/pkg/webhook"
)

type WebhookHandler struct {
	svc      *application.WebhookService
	verifier *webhook.Verifier
}

func NewWebhookHandler(svc *application.WebhookService, secret string) *WebhookHandler {
	var verifier *webhook.Verifier
	if secret != "" {
		v, err := webhook.NewVerifier(secret)
		if err != nil {
			log.Printf("Webhook secret rejected: %v", err)
		} else {
			verifier = v
		}
	}
	return &WebhookHandler{svc: svc, verifier: verifier}
}

// HandleEvent godoc
// @Summary Receive a signed identity-provider lifecycle event
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 400 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /webhooks [post]
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	if h.verifier == nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Missing webhook signing secret"})
		return
	}

	id, timestamp, signature, err := webhook.Headers(c.Request.Header)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Missing webhook headers"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Unreadable request body"})
		return
	}

	if err := h.verifier.Verify(id, timestamp, signature, body); err != nil {
		log.Printf("Webhook verification failed: %v", err)
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid webhook signature"})
		return
	}

	if err := h.svc.HandleEvent(id, body); err != nil {
		if errors.Is(err, application.ErrMalformedEvent) {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Malformed event payload"})
			return
		}
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Webhook processing failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
