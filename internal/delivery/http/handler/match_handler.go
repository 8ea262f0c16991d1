package handler

import (
	"encoding/json"
	"strconv"

	"intern-match/internal/delivery/http/dto"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/pkg/response"
	"intern-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/matches")
	grp.Post("/candidate", h.MatchCandidate)
	grp.Post("/posting", h.MatchPosting)
	grp.Post("", h.MatchAll)
}

// MatchCandidate ranks the stored postings for the candidate in the body.
func (h *MatchHandler) MatchCandidate(c fiber.Ctx) error {
	topN, err := parseQueryIntStrict(c, "top_n", 0)
	if err != nil || topN < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid top_n", nil, err)
	}

	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	items, msg, err := h.uc.MatchesForCandidate(c.Context(), dto.CandidateFromFields(fields), topN)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingMatches(items, msg))
}

func (h *MatchHandler) MatchPosting(c fiber.Ctx) error {
	topN, err := parseQueryIntStrict(c, "top_n", 0)
	if err != nil || topN < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid top_n", nil, err)
	}

	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	items, msg, err := h.uc.MatchesForPosting(c.Context(), dto.PostingFromFields(fields), topN)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCandidateMatches(items, msg))
}

func (h *MatchHandler) MatchAll(c fiber.Ctx) error {
	topN, err := parseQueryIntStrict(c, "top_n", 0)
	if err != nil || topN < 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid top_n", nil, err)
	}

	items, err := h.uc.MatchAll(c.Context(), topN)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPairMatches(items))
}

// bindFields decodes the body as a loose JSON object. Only a body that is not
// an object at all is rejected.
func bindFields(c fiber.Ctx) (map[string]any, error) {
	fields := map[string]any{}
	if len(c.Body()) == 0 {
		return fields, nil
	}
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return nil, middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}
	return fields, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}
