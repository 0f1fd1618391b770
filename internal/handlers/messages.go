package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/services"
	"github.com/skilllinker/skilllinker/internal/utils"
)

type MessageHandler struct {
	messages *services.MessageService
}

func NewMessageHandler(messages *services.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

type MessageResponse struct {
	ID         uint      `json:"id"`
	FromUserID uint      `json:"from_user_id"`
	ToUserID   uint      `json:"to_user_id"`
	JobID      *uint     `json:"job_id"`
	Content    string    `json:"content"`
	Read       bool      `json:"read"`
	Timestamp  time.Time `json:"timestamp"`
}

func toMessageResponse(message models.Message) MessageResponse {
	return MessageResponse{
		ID:         message.ID,
		FromUserID: message.FromUserID,
		ToUserID:   message.ToUserID,
		JobID:      message.JobID,
		Content:    message.Content,
		Read:       message.Read,
		Timestamp:  message.CreatedAt,
	}
}

func (h *MessageHandler) Send(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input services.SendMessageInput

	if err := ctx.BindJSON(&input); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	message, err := h.messages.Send(currentUser.ID, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toMessageResponse(*message))
}

func (h *MessageHandler) ListForUser(ctx *gin.Context) {
	userID, err := utils.GetUintParam(ctx, "user_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messages, err := h.messages.ListForUser(userID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]MessageResponse, 0, len(messages))

	for _, message := range messages {
		response = append(response, toMessageResponse(message))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *MessageHandler) ListForJob(ctx *gin.Context) {
	jobID, err := utils.GetUintParam(ctx, "job_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	messages, err := h.messages.ListForJob(jobID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]MessageResponse, 0, len(messages))

	for _, message := range messages {
		response = append(response, toMessageResponse(message))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *MessageHandler) MarkRead(ctx *gin.Context) {
	messageID, err := utils.GetUintParam(ctx, "message_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	message, err := h.messages.MarkRead(messageID)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toMessageResponse(*message))
}
