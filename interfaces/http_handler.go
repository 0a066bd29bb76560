package interfaces

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"job-board/domain"
)

type HTTPHandler struct {
	Users domain.UserRepository
	Jobs  domain.JobRepository
	Cache domain.ListingCache
}

func NewHTTPHandler(router *gin.Engine, users domain.UserRepository, jobs domain.JobRepository, cache domain.ListingCache) {
	h := &HTTPHandler{Users: users, Jobs: jobs, Cache: cache}

	router.GET("/", h.Home)
	router.POST("/users", h.CreateUser)
	router.GET("/users", h.GetAllUsers)
	router.POST("/jobs", h.CreateJob)
	router.GET("/jobs", CachedListing(cache), h.GetAllJobs)
	router.GET("/jobs/:id", h.GetPosterJobs)
}

func (h *HTTPHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}

// CreateUser persists a new user; the store enforces email uniqueness.
func (h *HTTPHandler) CreateUser(c *gin.Context) {
	var req struct {
		Email string  `json:"email"`
		Name  *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}

	user := domain.User{Email: req.Email, Name: req.Name}
	if err := h.Users.Create(c.Request.Context(), &user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
			return
		}
		logrus.Errorf("failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *HTTPHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Users.FindAll(c.Request.Context())
	if err != nil {
		logrus.Errorf("failed to fetch users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// CreateJob persists a new job posting. The poster id is not checked for
// existence; a foreign-key violation from the store surfaces as a generic 500.
func (h *HTTPHandler) CreateJob(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		PosterID    uint   `json:"posterId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Title == "" || req.Description == "" || req.PosterID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide all values"})
		return
	}

	job := domain.Job{Title: req.Title, Description: req.Description, PosterID: req.PosterID}
	if err := h.Jobs.Create(c.Request.Context(), &job); err != nil {
		logrus.Errorf("failed to create job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job"})
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetAllJobs is the cache-populating side of the listing read path. The
// snapshot is marshalled once and the same bytes go to the cache and the
// response, so a later cache hit is byte-identical. The cache write is best
// effort and never affects the response.
func (h *HTTPHandler) GetAllJobs(c *gin.Context) {
	jobs, err := h.Jobs.FindAllWithPoster(c.Request.Context())
	if err != nil {
		logrus.Errorf("failed to fetch jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}

	payload, err := json.Marshal(jobs)
	if err != nil {
		logrus.Errorf("failed to encode jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}

	if err := h.Cache.PutListing(c.Request.Context(), payload); err != nil {
		logrus.Warnf("failed to refresh job listing cache: %v", err)
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}

// GetPosterJobs returns every job posted by the user in the path parameter.
// The route reads as a job lookup but has always filtered by poster; an
// unknown poster yields an empty array, never a 404.
func (h *HTTPHandler) GetPosterJobs(c *gin.Context) {
	idStr := strings.TrimSpace(c.Param("id"))
	id, err := strconv.Atoi(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	jobs, err := h.Jobs.FindByPoster(c.Request.Context(), id)
	if err != nil {
		logrus.Errorf("failed to fetch jobs for poster %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jobs"})
		return
	}

	c.JSON(http.StatusOK, jobs)
}
