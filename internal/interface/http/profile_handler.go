package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-social-network/internal/application"
	"github.com/oksasatya/go-social-network/pkg/response"
)

type ProfileHandler struct {
	Svc      *app.ProfileService
	Accounts *app.AccountService
	Logger   *logrus.Logger
}

func NewProfileHandler(svc *app.ProfileService, accounts *app.AccountService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Svc: svc, Accounts: accounts, Logger: logger}
}

type profileRequest struct {
	Company        string `json:"company" binding:"notblank"`
	Website        string `json:"website" binding:"notblank"`
	Location       string `json:"location" binding:"notblank"`
	Designation    string `json:"designation" binding:"notblank"`
	Skills         string `json:"skills" binding:"notblank"`
	Bio            string `json:"bio" binding:"notblank"`
	GithubUsername string `json:"githubUsername" binding:"notblank"`
	Youtube        string `json:"youtube" label:"YouTube" binding:"notblank"`
	Twitter        string `json:"twitter" binding:"notblank"`
	Facebook       string `json:"facebook" binding:"notblank"`
	Linkedin       string `json:"linkedin" label:"LinkedIn" binding:"notblank"`
	Instagram      string `json:"instagram" binding:"notblank"`
}

func (r profileRequest) input() app.ProfileInput {
	return app.ProfileInput(r)
}

type experienceRequest struct {
	Title       string `json:"title" binding:"notblank"`
	Company     string `json:"company" binding:"notblank"`
	Location    string `json:"location" binding:"notblank"`
	From        string `json:"from" binding:"notblank"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description" binding:"notblank"`
}

type educationRequest struct {
	School       string `json:"school" binding:"notblank"`
	Degree       string `json:"degree" binding:"notblank"`
	FieldOfStudy string `json:"fieldOfStudy" label:"FieldOfStudy" binding:"notblank"`
	From         string `json:"from" binding:"notblank"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description" binding:"notblank"`
}

func (h *ProfileHandler) Create(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req profileRequest
	if !bind(c, &req) {
		return
	}
	p, err := h.Svc.Create(c.Request.Context(), id, req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Profile Created", "profile", p)
}

func (h *ProfileHandler) Update(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req profileRequest
	if !bind(c, &req) {
		return
	}
	p, err := h.Svc.Update(c.Request.Context(), id, req.input())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Profile Updated", "profile", p)
}

func (h *ProfileHandler) Me(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	p, err := h.Svc.Mine(c.Request.Context(), id)
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "", "profile", p)
}

func (h *ProfileHandler) ByUser(c *gin.Context) {
	p, err := h.Svc.ByUserID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "", "profile", p)
}

func (h *ProfileHandler) ByID(c *gin.Context) {
	p, err := h.Svc.ByID(c.Request.Context(), c.Param("profileId"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "", "profile", p)
}

func (h *ProfileHandler) All(c *gin.Context) {
	ps, err := h.Svc.List(c.Request.Context())
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "", "profiles", ps)
}

// DeleteAccount removes the user in :userId with their profile and posts.
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	if err := h.Accounts.Delete(c.Request.Context(), id, c.Param("userId"), requestMeta(c)); err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, "User Deleted")
}

func (h *ProfileHandler) AddExperience(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req experienceRequest
	if !bind(c, &req) {
		return
	}
	p, err := h.Svc.AddExperience(c.Request.Context(), id, app.ExperienceInput(req))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Experience Added", "profile", p)
}

func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	p, err := h.Svc.RemoveExperience(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Experience Removed", "profile", p)
}

func (h *ProfileHandler) AddEducation(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	var req educationRequest
	if !bind(c, &req) {
		return
	}
	p, err := h.Svc.AddEducation(c.Request.Context(), id, app.EducationInput(req))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Education Added", "profile", p)
}

func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	p, err := h.Svc.RemoveEducation(c.Request.Context(), id, c.Param("id"))
	if err != nil {
		fail(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, "Education Removed", "profile", p)
}
