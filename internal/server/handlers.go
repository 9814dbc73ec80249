package server

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sdutta9/mealscan/internal/analyze"
	"github.com/sdutta9/mealscan/internal/nutrition"
	"github.com/sdutta9/mealscan/internal/profile"
)

type analyzeRequest struct {
	// Image is the base64-encoded photo. A data URI prefix
	// ("data:image/jpeg;base64,") is tolerated and stripped.
	Image    string `json:"image" binding:"required"`
	Language string `json:"language"`
}

type apiError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorEnvelope struct {
	Error apiError `json:"error"`
}

func respondError(c *gin.Context, status int, kind analyze.Kind, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, errorEnvelope{Error: apiError{Kind: string(kind), Message: msg}})
}

// statusForKind maps an analysis error kind to an HTTP status.
func statusForKind(kind analyze.Kind) int {
	switch kind {
	case analyze.KindConfiguration:
		return http.StatusInternalServerError
	case analyze.KindRateLimited:
		return http.StatusTooManyRequests
	case analyze.KindMalformed:
		return http.StatusBadGateway
	default:
		return http.StatusServiceUnavailable
	}
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", err)
		return
	}

	lang := nutrition.LangEnglish
	if req.Language != "" {
		parsed, ok := nutrition.ParseLang(req.Language)
		if !ok {
			respondError(c, http.StatusBadRequest, "BAD_REQUEST",
				fmt.Errorf("unsupported language: %q", req.Language))
			return
		}
		lang = parsed
	}

	payload := req.Image
	if idx := strings.Index(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	}
	image, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", err)
		return
	}
	if len(image) == 0 {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", fmt.Errorf("empty image payload"))
		return
	}

	result, err := s.engine.Analyze(c.Request.Context(), image, lang)
	if err != nil {
		kind := analyze.KindOf(err)
		s.log.Warn("analysis failed",
			zap.String("requestId", c.GetString("requestID")),
			zap.String("kind", string(kind)),
			zap.Error(err),
		)
		respondError(c, statusForKind(kind), kind, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleTDEE(c *gin.Context) {
	p := profile.UserProfile{
		Gender:        profile.Gender(c.Query("gender")),
		ActivityLevel: profile.ActivityLevel(c.Query("activityLevel")),
	}
	var err error
	if p.Age, err = strconv.Atoi(c.Query("age")); err != nil {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", err)
		return
	}
	if p.WeightKg, err = strconv.ParseFloat(c.Query("weight"), 64); err != nil {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", err)
		return
	}
	if p.HeightCm, err = strconv.ParseFloat(c.Query("height"), 64); err != nil {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", err)
		return
	}
	if err := p.Validate(); err != nil {
		respondError(c, http.StatusBadRequest, "BAD_REQUEST", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"bmr":  p.BMR(),
		"tdee": p.TDEE(),
	})
}
