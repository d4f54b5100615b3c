package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/take-two/storefront/contact"
	"github.com/take-two/storefront/logger"
	"github.com/take-two/storefront/models"
	"github.com/take-two/storefront/repository"
)

// EmailController is the server-side contact delivery path. Unlike the
// interactive form it sends synchronously and records every attempt.
type EmailController struct {
	channel contact.Channel
	logs    repository.DeliveryLogRepository
}

func NewEmailController(channel contact.Channel, logs repository.DeliveryLogRepository) *EmailController {
	return &EmailController{channel: channel, logs: logs}
}

func (ec *EmailController) Send(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := contact.ValidateMessage(msg); err != nil {
		fe := err.(*contact.FieldError)
		c.JSON(http.StatusBadRequest, gin.H{"error": fe.Error(), "field": fe.Field})
		return
	}

	ack, sendErr := ec.channel.Send(c.Request.Context(), msg)

	entry := &models.DeliveryLog{
		FromName:  msg.Name,
		FromEmail: msg.Email,
		Status:    models.DeliveryStatusSent,
		AckRef:    ack,
	}
	if sendErr != nil {
		entry.Status = models.DeliveryStatusFailed
		entry.Error = sendErr.Error()
		entry.AckRef = ""
	}
	if ec.logs != nil {
		if err := ec.logs.SaveLog(c, entry); err != nil {
			logger.Error(c, "failed to save delivery log", err)
		}
	}

	if sendErr != nil {
		logger.Error(c, "contact delivery failed", sendErr)
		c.JSON(http.StatusBadGateway, gin.H{"error": contact.UserMessage(sendErr)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Your message has been sent!", "ack_ref": ack})
}

func (ec *EmailController) Logs(c *gin.Context) {
	if ec.logs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "delivery log unavailable"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	filter := models.DeliveryLogFilter{
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}

	logs, total, err := ec.logs.GetLogs(c, filter)
	if err != nil {
		logger.Error(c, "failed to list delivery logs", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list delivery logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs, "total": total})
}
