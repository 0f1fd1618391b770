package handlers

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/skilllinker/skilllinker/internal/models"
	"github.com/skilllinker/skilllinker/internal/services"
	"github.com/skilllinker/skilllinker/internal/types"
	"github.com/skilllinker/skilllinker/internal/utils"
)

type ResumeHandler struct {
	resumes *services.ResumeService
}

func NewResumeHandler(resumes *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

type ResumeResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Description string    `json:"description,omitempty"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

func toResumeResponse(resume models.Resume) ResumeResponse {
	return ResumeResponse{
		ID:          resume.ID,
		UserID:      resume.UserID,
		FileName:    resume.FileName,
		ContentType: resume.ContentType,
		Description: resume.Description,
		UploadedAt:  resume.CreatedAt,
	}
}

// Upload runs behind the upload boundary middleware, which already checked
// size and MIME type and stored the file header in the context.
func (h *ResumeHandler) Upload(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	value, exists := ctx.Get(types.ContextResumeKey)

	if !exists {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Resume file is required"})
		return
	}

	fileHeader, ok := value.(*multipart.FileHeader)

	if !ok {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Resume file is required"})
		return
	}

	file, err := fileHeader.Open()

	if err != nil {
		log.Printf("Failed to open uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)

	if err != nil {
		log.Printf("Failed to read uploaded file: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	resume, err := h.resumes.Create(currentUser.ID, services.CreateResumeInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		Description: ctx.PostForm("description"),
	})

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toResumeResponse(*resume))
}

func (h *ResumeHandler) List(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	resumes, err := h.resumes.List(currentUser)

	if err != nil {
		respondError(ctx, err)
		return
	}

	response := make([]ResumeResponse, 0, len(resumes))

	for _, resume := range resumes {
		response = append(response, toResumeResponse(resume))
	}

	ctx.JSON(http.StatusOK, response)
}

// Download streams the stored bytes back exactly as uploaded.
func (h *ResumeHandler) Download(ctx *gin.Context) {
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

	resume, err := h.resumes.Get(id, currentUser)

	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.FileName))
	ctx.Data(http.StatusOK, resume.ContentType, resume.Data)
}

func (h *ResumeHandler) Delete(ctx *gin.Context) {
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

	if err := h.resumes.Delete(id, currentUser); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
