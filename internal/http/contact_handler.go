package http

import (
	"encoding/json"
	"log"
	"net/http"

	"bookshop/internal/httpx"
)

// ContactHandler accepts the contact form and discards it. The form
// exists for the storefront UI; nothing is sent anywhere.
type ContactHandler struct{}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{}
}

type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// @Summary Send contact message
// @Description Validates the form and acknowledges it; no message is delivered
// @Tags contact
// @Accept json
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in ContactInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(r, w, http.StatusBadRequest, "invalid_json", "Request body must be valid JSON", nil)
		return
	}
	if errs := ValidateStruct(in); errs != nil {
		details := make([]httpx.ErrorDetail, 0, len(errs))
		for _, e := range errs {
			details = append(details, httpx.ErrorDetail{Field: e.Field, Message: e.Message})
		}
		httpx.JSONError(r, w, http.StatusBadRequest, "validation_error", "Please fill in all required fields", details)
		return
	}

	log.Printf("contact: message received: from=%s subject=%q", in.Email, in.Subject)
	httpx.JSONSuccess(r, w, map[string]string{"status": "received"})
}
