// Feedback HTTP handlers.
//
// This file exposes the REST endpoint for submitting user feedback:
//   - POST /api/feedback  (create feedback)
//
// Handlers in this file are transport-thin: they validate input, delegate to
// application services, and translate domain/service errors into HTTP
// results. The document_id may reference an indexed document, a document
// tracked elsewhere, or the dashboard sentinel; existence is deliberately
// not checked.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-ecli-dashboard/internal/services"
)

// SubmitFeedbackRequest is the JSON payload for creating a feedback record.
//
// Rating must lie in [1,5]. The binding tags enforce the domain constraints
// at the transport layer; the service validates them again.
type SubmitFeedbackRequest struct {
	// DocumentID is an ECLI identifier or "dashboard" for general feedback.
	DocumentID string `json:"document_id" binding:"required" example:"ECLI_PT_STJ_2024_000050"`
	// Type is an open category string ("metadata", "ui", "performance", ...).
	Type string `json:"type" binding:"required" example:"metadata"`
	// Rating is the 1-5 star rating.
	Rating int `json:"rating" binding:"required,min=1,max=5" example:"4"`
	// Comment is optional free text.
	Comment string `json:"comment" example:"Year field looks wrong for this decision"`
}

// SubmitFeedbackResponse acknowledges a persisted feedback record. No
// generated identifier is exposed to callers.
type SubmitFeedbackResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Feedback submitted successfully"`
}

// SubmitFeedback godoc
// @ID          submitFeedback
// @Summary     Submit user feedback
// @Description Persists a feedback record for a document or the dashboard. The referenced document is not required to exist.
// @Tags        Feedback
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.SubmitFeedbackRequest  true  "Feedback payload"
//
// @Success     200  {object} handlers.SubmitFeedbackResponse
// @Failure     400  {object} handlers.ErrorResponse "Validation failure"
// @Failure     500  {object} handlers.ErrorResponse "Storage failure"
// @Router      /api/feedback [post]
func (h *Handlers) SubmitFeedback(c *gin.Context) {
	var req SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest,
			"document_id, type and a rating between 1 and 5 are required")
		return
	}

	in := services.FeedbackInput{
		DocumentID: req.DocumentID,
		Type:       req.Type,
		Rating:     req.Rating,
		Comment:    req.Comment,
		UserAgent:  c.Request.UserAgent(),
	}
	if err := h.fbSvc.Submit(c.Request.Context(), in); err != nil {
		failFromService(c, err)
		return
	}

	ok(c, http.StatusOK, SubmitFeedbackResponse{
		Success: true,
		Message: "Feedback submitted successfully",
	})
}
