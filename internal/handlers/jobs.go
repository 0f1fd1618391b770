package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/notifier"
	"github.com/skilllinker/skilllinker/internal/services"
	"github.com/skilllinker/skilllinker/internal/types"
	"github.com/skilllinker/skilllinker/internal/utils"
)

type JobHandler struct {
	jobs       *services.JobService
	notifier   *notifier.Notifier
	dispatcher *notifier.Dispatcher
}

func NewJobHandler(jobs *services.JobService, n *notifier.Notifier, dispatcher *notifier.Dispatcher) *JobHandler {
	return &JobHandler{jobs: jobs, notifier: n, dispatcher: dispatcher}
}

type JobResponse struct {
	ID                     uint                `json:"id"`
	SdpID                  uint                `json:"sdp_id"`
	Title                  string              `json:"title"`
	Description            string              `json:"description"`
	Location               string              `json:"location"`
	Budget                 float64             `json:"budget"`
	Status                 string              `json:"status"`
	RequiredQualifications []string            `json:"required_qualifications"`
	PostedDate             time.Time           `json:"posted_date"`
	Deadline               *time.Time          `json:"deadline"`
	Poster                 *types.UserResponse `json:"poster,omitempty"`
}

func toJobResponse(job models.Job) JobResponse {
	var qualifications []string

	if len(job.RequiredQualifications) > 0 {
		if err := json.Unmarshal(job.RequiredQualifications, &qualifications); err != nil {
			log.Printf("Failed to decode qualifications for job %d: %v", job.ID, err)
		}
	}

	response := JobResponse{
		ID:                     job.ID,
		SdpID:                  job.SdpID,
		Title:                  job.Title,
		Description:            job.Description,
		Location:               job.Location,
		Budget:                 job.Budget,
		Status:                 job.Status,
		RequiredQualifications: qualifications,
		PostedDate:             job.PostedDate,
		Deadline:               job.Deadline,
	}

	if job.Poster.ID != 0 {
		poster := toUserResponse(job.Poster)
		response.Poster = &poster
	}

	return response
}

// Create posts a job and dispatches the notification broadcast without
// blocking the response. Broadcast failures are logged, never surfaced
// here.
func (h *JobHandler) Create(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input services.CreateJobInput

	if err := ctx.BindJSON(&input); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	job, err := h.jobs.Create(currentUser, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	created := *job

	h.dispatcher.Dispatch("job notification broadcast", func(taskCtx context.Context) error {
		_, err := h.notifier.BroadcastJobPosted(taskCtx, created, currentUser.ID)
		return err
	})

	ctx.JSON(http.StatusCreated, toJobResponse(*job))
}

func (h *JobHandler) List(ctx *gin.Context) {
	jobs, err := h.jobs.ListWithPoster()

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]JobResponse, 0, len(jobs))

	for _, job := range jobs {
		response = append(response, toJobResponse(job))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *JobHandler) Get(ctx *gin.Context) {
	id, err := utils.GetUintParam(ctx, "id")

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobs.Get(id)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toJobResponse(*job))
}

func (h *JobHandler) Update(ctx *gin.Context) {
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

	var input services.UpdateJobInput

	if err := ctx.BindJSON(&input); err != nil {
		log.Printf("Failed to bind JSON: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	job, err := h.jobs.Update(id, currentUser.ID, input)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toJobResponse(*job))
}

func (h *JobHandler) Delete(ctx *gin.Context) {
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

	if err := h.jobs.Delete(id, currentUser.ID); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
