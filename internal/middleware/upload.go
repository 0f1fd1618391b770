package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skilllinker/skilllinker/internal/types"
)

// ResumeUploadBoundary rejects oversized or disallowed-MIME uploads before
// the resume service runs. Bytes that pass here are trusted downstream.
func ResumeUploadBoundary() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		fileHeader, err := ctx.FormFile("file")

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Resume file is required"})
			return
		}

		if fileHeader.Size > types.MaxResumeSizeBytes {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("File exceeds the %d MB limit", types.MaxResumeSizeBytes/(1024*1024)),
			})
			return
		}

		contentType := fileHeader.Header.Get("Content-Type")

		if !types.AllowedResumeTypes[contentType] {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Unsupported file type. Allowed: plain text, PDF, Word, RTF",
			})
			return
		}

		ctx.Set(types.ContextResumeKey, fileHeader)
		ctx.Next()
	}
}
