// internal/handler/job_post.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/hireloop/hireloop/internal/middleware"
	"github.com/hireloop/hireloop/internal/model"
	"github.com/hireloop/hireloop/internal/service"
)

type JobPostHandler struct {
	jobPostService *service.JobPostService
}

func NewJobPostHandler(jobPostService *service.JobPostService) *JobPostHandler {
	return &JobPostHandler{jobPostService: jobPostService}
}

type JobPostResponse struct {
	BaseResponse
	JobPost *model.JobPost `json:"job_post"`
}

func (h *JobPostHandler) CreateJobPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	companyID, err := uuid.Parse(chi.URLParam(r, "companyID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	var input service.CreateJobPostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	post, err := h.jobPostService.CreateJobPost(r.Context(), companyID, userID, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, JobPostResponse{
		BaseResponse: BaseResponse{Ok: true},
		JobPost:      post,
	})
}

// ListJobPosts is public: anonymous callers see published posts, members
// also see drafts.
func (h *JobPostHandler) ListJobPosts(w http.ResponseWriter, r *http.Request) {
	companyID, err := uuid.Parse(chi.URLParam(r, "companyID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid company id")
		return
	}

	actingUserID, _ := middleware.UserID(r.Context())

	posts, err := h.jobPostService.ListJobPosts(r.Context(), companyID, actingUserID)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"ok":        true,
		"job_posts": posts,
	})
}

func (h *JobPostHandler) UpdateJobPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job post id")
		return
	}

	var input service.UpdateJobPostInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	defer r.Body.Close()

	post, err := h.jobPostService.UpdateJobPost(r.Context(), postID, userID, input)
	if err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, JobPostResponse{
		BaseResponse: BaseResponse{Ok: true},
		JobPost:      post,
	})
}

func (h *JobPostHandler) DeleteJobPost(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "postID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job post id")
		return
	}

	if err := h.jobPostService.DeleteJobPost(r.Context(), postID, userID); err != nil {
		respondWithDomainError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}
