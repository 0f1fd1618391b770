package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/services"
	"github.com/skilllinker/skilllinker/internal/types"
	"github.com/skilllinker/skilllinker/internal/utils"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

type PaymentResponse struct {
	ID            uint                `json:"id"`
	PayerID       uint                `json:"payer_id"`
	PayeeID       uint                `json:"payee_id"`
	JobID         *uint               `json:"job_id"`
	Amount        float64             `json:"amount"`
	PaymentMethod string              `json:"payment_method"`
	Status        string              `json:"status"`
	CreatedAt     time.Time           `json:"created_at"`
	Payer         *types.UserResponse `json:"payer,omitempty"`
	Payee         *types.UserResponse `json:"payee,omitempty"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status"`
}

func toPaymentResponse(payment models.Payment) PaymentResponse {
	response := PaymentResponse{
		ID:            payment.ID,
		PayerID:       payment.PayerID,
		PayeeID:       payment.PayeeID,
		JobID:         payment.JobID,
		Amount:        payment.Amount,
		PaymentMethod: payment.PaymentMethod,
		Status:        payment.Status,
		CreatedAt:     payment.CreatedAt,
	}

	if payment.Payer.ID != 0 {
		payer := toUserResponse(payment.Payer)
		response.Payer = &payer
	}

	if payment.Payee.ID != 0 {
		payee := toUserResponse(payment.Payee)
		response.Payee = &payee
	}

	return response
}

func (h *PaymentHandler) Create(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input services.CreatePaymentInput

	if err := ctx.BindJSON(&input); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	payment, err := h.payments.Create(currentUser, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toPaymentResponse(*payment))
}

func (h *PaymentHandler) List(ctx *gin.Context) {
	payments, err := h.payments.List()

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]PaymentResponse, 0, len(payments))

	for _, payment := range payments {
		response = append(response, toPaymentResponse(payment))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *PaymentHandler) Get(ctx *gin.Context) {
	id, err := utils.GetUintParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.payments.Get(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toPaymentResponse(*payment))
}

func (h *PaymentHandler) UpdateStatus(ctx *gin.Context) {
	id, err := utils.GetUintParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdatePaymentStatusRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	payment, err := h.payments.UpdateStatus(id, req.Status)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toPaymentResponse(*payment))
}

func (h *PaymentHandler) Delete(ctx *gin.Context) {
	id, err := utils.GetUintParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.payments.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
