package handlers

import (
	"net/http"
	"time"

	"contactform-server/internal/models"
	"contactform-server/internal/services"
	"contactform-server/internal/utils"
	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contacts *services.ContactService
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactResponse omits authorId; the author reference is internal.
type ContactResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func NewContactHandler(contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

func (h *ContactHandler) Create(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "Invalid request body")
		return
	}

	created, err := h.contacts.Create(c.Request.Context(), contactInput(req), c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Contact form submitted successfully",
		"contact": contactToResponse(*created),
	})
}

func (h *ContactHandler) List(c *gin.Context) {
	items, err := h.contacts.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	data := make([]ContactResponse, 0, len(items))
	for _, item := range items {
		data = append(data, contactToResponse(item))
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"contacts": data,
		"count":    len(data),
	})
}

func (h *ContactHandler) GetByID(c *gin.Context) {
	item, err := h.contacts.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"contact": contactToResponse(*item),
	})
}

func (h *ContactHandler) Update(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "Invalid request body")
		return
	}

	updated, err := h.contacts.Update(c.Request.Context(), c.Param("id"), contactInput(req))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"contact": contactToResponse(*updated),
	})
}

func (h *ContactHandler) Delete(c *gin.Context) {
	if err := h.contacts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Contact deleted successfully",
	})
}

func contactInput(req ContactRequest) services.ContactInput {
	return services.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
}

func contactToResponse(contact models.ContactMessage) ContactResponse {
	return ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
		CreatedAt: contact.CreatedAt,
		UpdatedAt: contact.UpdatedAt,
	}
}
