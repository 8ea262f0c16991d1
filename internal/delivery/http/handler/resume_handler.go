package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"strconv"
	"strings"

	"intern-match/internal/delivery/http/dto"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/pkg/response"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

const resumeFormField = "resume"

type ResumeHandler struct {
	uc       usecase.ResumeUsecase
	maxBytes int64
}

func NewResumeHandler(uc usecase.ResumeUsecase, maxBytes int64) *ResumeHandler {
	return &ResumeHandler{uc: uc, maxBytes: maxBytes}
}

func (h *ResumeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/resumes/analyze", h.Analyze)
}

func (h *ResumeHandler) Analyze(c fiber.Ctx) error {
	fh, err := c.FormFile(resumeFormField)
	if err != nil || fh == nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file uploaded", nil, err)
	}
	if strings.TrimSpace(fh.Filename) == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "No file selected", nil, nil)
	}
	if h.maxBytes > 0 && fh.Size > h.maxBytes {
		return middleware.NewAppError(fiber.StatusRequestEntityTooLarge, "File too large", nil, nil)
	}

	years := 0
	if raw := strings.TrimSpace(c.FormValue("experience_years")); raw != "" {
		years, err = strconv.Atoi(raw)
		if err != nil || years < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid experience_years", nil, err)
		}
	}

	data, err := readUpload(fh)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Could not read upload", nil, err)
	}

	info, err := h.uc.Analyze(c.Context(), usecase.AnalyzeResumeInput{
		Filename:        fh.Filename,
		Data:            data,
		ExperienceYears: years,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnsupportedFormat):
			return middleware.NewAppError(fiber.StatusBadRequest, "Unsupported file format", nil, err)
		case errors.Is(err, usecase.ErrInvalidInput):
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		default:
			return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
		}
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeAnalysisResponse(info))
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
