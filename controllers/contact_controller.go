package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/take-two/storefront/contact"
	"github.com/take-two/storefront/models"
)

type ContactController struct {
	form *contact.Form
}

func NewContactController(form *contact.Form) *ContactController {
	return &ContactController{form: form}
}

// Submit validates the contact message and forwards it to the delivery
// channel. The handler waits for this submission's resolution; if a newer
// submission supersedes it, the caller gets a 202 with no final result.
func (cc *ContactController) Submit(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	outcomeCh := make(chan contact.Outcome, 1)
	err := cc.form.Submit(c.Request.Context(), msg, func(o contact.Outcome) {
		outcomeCh <- o
	})
	if err != nil {
		if fe, isField := err.(*contact.FieldError); isField {
			c.JSON(http.StatusBadRequest, gin.H{"error": fe.Error(), "field": fe.Field})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome := <-outcomeCh
	switch {
	case outcome.Superseded:
		c.JSON(http.StatusAccepted, gin.H{"status": "superseded"})
	case outcome.OK:
		c.JSON(http.StatusOK, gin.H{"message": outcome.Message, "ack_ref": outcome.AckRef})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": outcome.Message})
	}
}

// State reports the form's current lifecycle state.
func (cc *ContactController) State(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"state": cc.form.State().String()})
}
