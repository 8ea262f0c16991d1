package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"intern-match/internal/delivery/http/dto"
	"intern-match/internal/delivery/http/middleware"
	"intern-match/internal/domain/profile"
	"intern-match/internal/domain/resume"
	"intern-match/internal/domain/user"
	"intern-match/internal/pkg/jwt"
	"intern-match/internal/usecase"
	ucauth "intern-match/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

func TestHealth_ReportsDegradedService(t *testing.T) {
	app := newTestApp()
	NewHealthHandler(map[string]Pinger{
		"database": fakePinger{},
		"cache":    fakePinger{err: errBoom},
		"search":   nil,
	}).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	var body struct {
		Status    string            `json:"status"`
		Timestamp string            `json:"timestamp"`
		Services  map[string]string `json:"services"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "degraded" {
		t.Fatalf("expected degraded, got %q", body.Status)
	}
	if body.Services["database"] != serviceUp || body.Services["cache"] != serviceDown || body.Services["search"] != serviceDisabled {
		t.Fatalf("unexpected services: %v", body.Services)
	}
	if _, err := time.Parse(time.RFC3339, body.Timestamp); err != nil {
		t.Fatalf("bad timestamp %q: %v", body.Timestamp, err)
	}
}

func TestResume_NoFileUploaded(t *testing.T) {
	app := newTestApp()
	NewResumeHandler(&fakeResumeUC{}, 1<<20).RegisterRoutes(app)

	req := multipartRequest(t, "/resumes/analyze", "", "", nil, map[string]string{"experience_years": "1"})
	status, env := doRequest(t, app, req)
	if status != fiber.StatusBadRequest || env.Message != "No file uploaded" {
		t.Fatalf("unexpected response: %d %q", status, env.Message)
	}
}

func TestResume_UnsupportedFormat(t *testing.T) {
	app := newTestApp()
	NewResumeHandler(&fakeResumeUC{err: usecase.ErrUnsupportedFormat}, 1<<20).RegisterRoutes(app)

	req := multipartRequest(t, "/resumes/analyze", "resume", "cv.odt", []byte("x"), nil)
	status, env := doRequest(t, app, req)
	if status != fiber.StatusBadRequest || env.Message != "Unsupported file format" {
		t.Fatalf("unexpected response: %d %q", status, env.Message)
	}
}

func TestResume_InvalidExperienceYears(t *testing.T) {
	app := newTestApp()
	NewResumeHandler(&fakeResumeUC{}, 1<<20).RegisterRoutes(app)

	req := multipartRequest(t, "/resumes/analyze", "resume", "cv.txt", []byte("x"), map[string]string{"experience_years": "-2"})
	status, _ := doRequest(t, app, req)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestResume_TooLarge(t *testing.T) {
	app := newTestApp()
	NewResumeHandler(&fakeResumeUC{}, 4).RegisterRoutes(app)

	req := multipartRequest(t, "/resumes/analyze", "resume", "cv.txt", []byte("more than four bytes"), nil)
	status, _ := doRequest(t, app, req)
	if status != fiber.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", status)
	}
}

func TestResume_Analyze(t *testing.T) {
	uc := &fakeResumeUC{info: resume.Info{
		Email:        "a@b.io",
		Phone:        resume.NotFound,
		Skills:       []string{"Python"},
		Education:    []string{resume.NotSpecified},
		QualityScore: 14,
		WordCount:    3,
	}}
	app := newTestApp()
	NewResumeHandler(uc, 1<<20).RegisterRoutes(app)

	req := multipartRequest(t, "/resumes/analyze", "resume", "CV.TXT", []byte("python a@b.io"), map[string]string{"experience_years": "2"})
	status, env := doRequest(t, app, req)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, env.Message)
	}
	if uc.got.Filename != "CV.TXT" || uc.got.ExperienceYears != 2 || string(uc.got.Data) != "python a@b.io" {
		t.Fatalf("unexpected usecase input: %+v", uc.got)
	}

	var out dto.ResumeAnalysisResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if out.Score != 14 || out.WordCount != 3 || out.Phone != resume.NotFound {
		t.Fatalf("unexpected analysis: %+v", out)
	}
}

func TestProfile_CreateCandidateSplitsCertifications(t *testing.T) {
	uc := &fakeProfileUC{}
	app := newTestApp()
	NewProfileHandler(uc).RegisterRoutes(app)

	req := jsonRequest(http.MethodPost, "/candidates", map[string]any{
		"name":           "Asha",
		"skills":         "Python, SQL",
		"certifications": "AWS Cloud Practitioner, , TensorFlow Developer",
		"resume_score":   72,
	})
	status, env := doRequest(t, app, req)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", status, env.Message)
	}
	got := uc.savedCandidate.Certifications
	if len(got) != 2 || got[0] != "AWS Cloud Practitioner" || got[1] != "TensorFlow Developer" {
		t.Fatalf("unexpected certifications: %#v", got)
	}

	var out dto.CandidateResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID == uuid.Nil || out.ResumeScore != 72 {
		t.Fatalf("unexpected response: %+v", out)
	}
}

func TestProfile_InvalidInput(t *testing.T) {
	app := newTestApp()
	NewProfileHandler(&fakeProfileUC{err: usecase.ErrInvalidInput}).RegisterRoutes(app)

	status, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/postings", map[string]any{"company": "Acme"}))
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestProfile_ListPostingsEmptyIsArray(t *testing.T) {
	app := newTestApp()
	NewProfileHandler(&fakeProfileUC{}).RegisterRoutes(app)

	status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/postings", nil))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if string(env.Data) != "[]" {
		t.Fatalf("expected empty array, got %s", env.Data)
	}
}

func TestMatch_CandidateEmptyStoreMessage(t *testing.T) {
	uc := &fakeMatchUC{message: usecase.MessageNoPostings}
	app := newTestApp()
	NewMatchHandler(uc).RegisterRoutes(app)

	status, env := doRequest(t, app, jsonRequest(http.MethodPost, "/matches/candidate?top_n=3", map[string]any{"skills": "Go"}))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if uc.gotTopN != 3 || uc.gotCandidate.Skills != "Go" {
		t.Fatalf("unexpected usecase call: topN=%d candidate=%+v", uc.gotTopN, uc.gotCandidate)
	}

	var out dto.MatchListResponse[dto.PostingMatchResponse]
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.TotalMatches != 0 || out.Message != usecase.MessageNoPostings || out.Matches == nil {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestMatch_PostingReturnsScores(t *testing.T) {
	uc := &fakeMatchUC{candidateMatches: []usecase.CandidateMatch{{
		Candidate:       profile.Candidate{Name: "Ravi"},
		MatchScore:      71.5,
		SimilarityScore: 31.456,
		SkillScore:      40,
		MatchedSkills:   []string{"go"},
	}}}
	app := newTestApp()
	NewMatchHandler(uc).RegisterRoutes(app)

	status, env := doRequest(t, app, jsonRequest(http.MethodPost, "/matches/posting", map[string]any{"title": "Backend Intern"}))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}

	var out dto.MatchListResponse[dto.CandidateMatchResponse]
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.TotalMatches != 1 {
		t.Fatalf("expected 1 match, got %d", out.TotalMatches)
	}
	m := out.Matches[0]
	if m.Name != "Ravi" || m.MatchScore != 71.5 || m.SimilarityScore != 31.46 || len(m.MatchedSkills) != 1 {
		t.Fatalf("unexpected match: %+v", m)
	}
}

func TestMatch_CandidateAcceptsListedRecord(t *testing.T) {
	uc := &fakeMatchUC{}
	app := newTestApp()
	NewMatchHandler(uc).RegisterRoutes(app)

	body := map[string]any{"skills": "Python, SQL", "certifications": []string{"AWS", "TensorFlow Developer"}}
	status, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/matches/candidate", body))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	got := uc.gotCandidate
	if got.Skills != "Python, SQL" || len(got.Certifications) != 2 || got.Certifications[1] != "TensorFlow Developer" {
		t.Fatalf("unexpected candidate: %+v", got)
	}
}

func TestMatch_NonStringFieldsReadAsEmpty(t *testing.T) {
	uc := &fakeMatchUC{}
	app := newTestApp()
	NewMatchHandler(uc).RegisterRoutes(app)

	status, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/matches/candidate", map[string]any{"skills": 5, "interests": "ml"}))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if uc.gotCandidate.Skills != "" || uc.gotCandidate.Interests != "ml" {
		t.Fatalf("unexpected candidate: %+v", uc.gotCandidate)
	}

	status, _ = doRequest(t, app, jsonRequest(http.MethodPost, "/matches/posting", map[string]any{"required_skills": "Go", "title": true}))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	if uc.gotPosting.RequiredSkills != "Go" || uc.gotPosting.Title != "" {
		t.Fatalf("unexpected posting: %+v", uc.gotPosting)
	}
}

func TestMatch_RejectsNonObjectBody(t *testing.T) {
	app := newTestApp()
	NewMatchHandler(&fakeMatchUC{}).RegisterRoutes(app)

	status, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/matches/candidate", []string{"Go"}))
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestMatch_AllRejectsBadTopN(t *testing.T) {
	app := newTestApp()
	NewMatchHandler(&fakeMatchUC{}).RegisterRoutes(app)

	status, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/matches?top_n=abc", nil))
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", status)
	}
}

func TestMatch_UsecaseFailureIsHidden(t *testing.T) {
	app := newTestApp()
	NewMatchHandler(&fakeMatchUC{err: errBoom}).RegisterRoutes(app)

	status, env := doRequest(t, app, jsonRequest(http.MethodPost, "/matches", nil))
	if status != fiber.StatusInternalServerError || env.Message != "internal server error" {
		t.Fatalf("unexpected response: %d %q", status, env.Message)
	}
}

func TestStats(t *testing.T) {
	app := newTestApp()
	NewStatsHandler(&fakeStatsUC{stats: usecase.Stats{TotalUsers: 1, TotalCandidates: 3, TotalPostings: 6, TotalMatches: 18}}).RegisterRoutes(app)

	status, env := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/stats", nil))
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", status)
	}
	var out dto.StatsResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.TotalMatches != 18 || out.TotalPostings != 6 {
		t.Fatalf("unexpected stats: %+v", out)
	}
}

func TestAuth_RegisterConflict(t *testing.T) {
	app := newTestApp()
	NewAuthHandler(&fakeAuthUC{err: ucauth.ErrEmailAlreadyRegistered}, nil).RegisterRoutes(app)

	status, _ := doRequest(t, app, jsonRequest(http.MethodPost, "/register", map[string]any{
		"name": "A", "email": "a@b.io", "password": "secret123", "user_type": "student",
	}))
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d", status)
	}
}

func TestAuth_RegisterPassesUserType(t *testing.T) {
	uc := &fakeAuthUC{
		usr:    user.User{ID: uuid.New(), Email: "a@b.io", UserType: user.TypeCompany},
		tokens: usecase.TokenPair{AccessToken: "a", RefreshToken: "r"},
	}
	app := newTestApp()
	NewAuthHandler(uc, nil).RegisterRoutes(app)

	status, env := doRequest(t, app, jsonRequest(http.MethodPost, "/register", map[string]any{
		"name": "Acme", "email": "a@b.io", "password": "secret123", "user_type": "company",
	}))
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", status)
	}
	if uc.gotReg.UserType != user.TypeCompany || uc.gotReg.Name != "Acme" {
		t.Fatalf("unexpected input: %+v", uc.gotReg)
	}
	var out dto.AuthResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.AccessToken != "a" || out.User == nil || out.User.UserType != user.TypeCompany {
		t.Fatalf("unexpected body: %+v", out)
	}
}

func TestAuth_MeRequiresAccessToken(t *testing.T) {
	svc := jwt.NewHMACService("intern-match", "access-secret", "refresh-secret", time.Minute, time.Hour)
	usr := user.User{ID: uuid.New(), Email: "a@b.io", Name: "A", UserType: user.TypeStudent}

	app := newTestApp()
	NewAuthHandler(&fakeAuthUC{usr: usr}, middleware.NewAuthMiddleware(svc).Middleware()).RegisterRoutes(app)

	status, _ := doRequest(t, app, httptest.NewRequest(http.MethodGet, "/me", nil))
	if status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}

	refresh, err := svc.GenerateRefreshToken(usr.ID)
	if err != nil {
		t.Fatalf("refresh token: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	if status, _ := doRequest(t, app, req); status != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 with refresh token, got %d", status)
	}

	access, err := svc.GenerateAccessToken(jwt.Subject{UserID: usr.ID, Email: usr.Email, UserType: usr.UserType})
	if err != nil {
		t.Fatalf("access token: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	status, env := doRequest(t, app, req)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", status, env.Message)
	}
	var out dto.UserResponse
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.ID != usr.ID || out.UserType != user.TypeStudent {
		t.Fatalf("unexpected user: %+v", out)
	}
}
