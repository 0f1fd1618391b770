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

type ApplicationHandler struct {
	applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

type ApplicationResponse struct {
	ID              uint                `json:"id"`
	JobID           uint                `json:"job_id"`
	UserID          uint                `json:"user_id"`
	CoverLetter     string              `json:"cover_letter"`
	Status          string              `json:"status"`
	ApplicationDate time.Time           `json:"application_date"`
	Job             *JobResponse        `json:"job,omitempty"`
	Applicant       *types.UserResponse `json:"applicant,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status"`
}

func toApplicationResponse(application models.Application) ApplicationResponse {
	response := ApplicationResponse{
		ID:              application.ID,
		JobID:           application.JobID,
		UserID:          application.UserID,
		CoverLetter:     application.CoverLetter,
		Status:          application.Status,
		ApplicationDate: application.ApplicationDate,
	}

	if application.Job.ID != 0 {
		job := toJobResponse(application.Job)
		response.Job = &job
	}

	if application.Applicant.ID != 0 {
		applicant := toUserResponse(application.Applicant)
		response.Applicant = &applicant
	}

	return response
}

func (h *ApplicationHandler) Create(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input services.CreateApplicationInput

	if err := ctx.BindJSON(&input); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	application, err := h.applications.Create(currentUser.ID, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toApplicationResponse(*application))
}

func (h *ApplicationHandler) List(ctx *gin.Context) {
	applications, err := h.applications.ListWithRelations()

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ApplicationResponse, 0, len(applications))

	for _, application := range applications {
		response = append(response, toApplicationResponse(application))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ApplicationHandler) Get(ctx *gin.Context) {
	id, err := utils.GetUintParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	application, err := h.applications.Get(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toApplicationResponse(*application))
}

func (h *ApplicationHandler) ListForJob(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	jobID, err := utils.GetUintParam(ctx, "job_id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applications, err := h.applications.ListForJob(jobID, currentUser)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ApplicationResponse, 0, len(applications))

	for _, application := range applications {
		response = append(response, toApplicationResponse(application))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ApplicationHandler) UpdateStatus(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := utils.GetUintParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req UpdateApplicationStatusRequest

	if err := ctx.BindJSON(&req); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	application, err := h.applications.UpdateStatus(id, currentUser, req.Status)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toApplicationResponse(*application))
}

func (h *ApplicationHandler) Delete(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := utils.GetUintParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.applications.Delete(id, currentUser); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
