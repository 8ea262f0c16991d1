package handler

import (
	"errors"

	"intern-match/internal/delivery/http/dto"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/pkg/response"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/candidates", h.CreateCandidate)
	r.Get("/candidates", h.ListCandidates)
	r.Post("/postings", h.CreatePosting)
	r.Get("/postings", h.ListPostings)
}

func (h *ProfileHandler) CreateCandidate(c fiber.Ctx) error {
	var req dto.CandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	saved, err := h.uc.SaveCandidate(c.Context(), req.ToDomain())
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Candidate profile saved", dto.NewCandidateResponse(saved))
}

func (h *ProfileHandler) ListCandidates(c fiber.Ctx) error {
	items, err := h.uc.ListCandidates(c.Context())
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	out := make([]dto.CandidateResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewCandidateResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *ProfileHandler) CreatePosting(c fiber.Ctx) error {
	var req dto.PostingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	saved, err := h.uc.SavePosting(c.Context(), req.ToDomain())
	if err != nil {
		return mapProfileUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Internship posting saved", dto.NewPostingResponse(saved))
}

func (h *ProfileHandler) ListPostings(c fiber.Ctx) error {
	items, err := h.uc.ListPostings(c.Context())
	if err != nil {
		return mapProfileUsecaseError(err)
	}

	out := make([]dto.PostingResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NewPostingResponse(it))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapProfileUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}
