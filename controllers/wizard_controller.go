package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"dive-booking/booking"
	"dive-booking/services"
	"dive-booking/utils"
	"dive-booking/validation"
	"dive-booking/wizard"
)

type WizardController struct {
	WizardSvc *services.WizardService
}

func NewWizardController(svc *services.WizardService) *WizardController {
	return &WizardController{WizardSvc: svc}
}

// SessionView is a session as the front end renders it.
type SessionView struct {
	ID        string        `json:"id"`
	Draft     booking.Draft `json:"draft"`
	Position  int           `json:"position"`
	Step      StepView      `json:"step"`
	Steps     []StepView    `json:"steps"`
	IsLast    bool          `json:"isLast"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func newSessionView(s *wizard.Session) SessionView {
	current := s.Current()
	return SessionView{
		ID:        s.ID,
		Draft:     s.Draft,
		Position:  s.Position,
		Step:      StepView{ID: current, Title: current.Title()},
		Steps:     stepViews(s.Steps()),
		IsLast:    s.IsLast(),
		UpdatedAt: s.UpdatedAt,
	}
}

func (wc *WizardController) CreateSession(c *gin.Context) {
	sess, err := wc.WizardSvc.Start(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, newSessionView(sess))
}

func (wc *WizardController) GetSession(c *gin.Context) {
	sess, err := wc.WizardSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, newSessionView(sess))
}

// UpdateDraft handles PUT /api/wizard/sessions/:id/draft with the full draft.
func (wc *WizardController) UpdateDraft(c *gin.Context) {
	var draft booking.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondBadRequest(c, err)
		return
	}
	sess, err := wc.WizardSvc.UpdateDraft(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, newSessionView(sess))
}

// Next answers 422 with the step's field errors when the gate refuses, along
// with the unchanged session.
func (wc *WizardController) Next(c *gin.Context) {
	sess, err := wc.WizardSvc.Next(c.Request.Context(), c.Param("id"))
	var fieldErrs validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrs) && sess != nil:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success": false,
			"error":   "validation_failed",
			"fields":  fieldErrs.ByField(),
			"data":    newSessionView(sess),
		})
	case err != nil:
		respondError(c, err)
	default:
		utils.JSONSuccess(c, http.StatusOK, newSessionView(sess))
	}
}

func (wc *WizardController) Back(c *gin.Context) {
	sess, err := wc.WizardSvc.Back(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, newSessionView(sess))
}

func (wc *WizardController) Quote(c *gin.Context) {
	q, err := wc.WizardSvc.Quote(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, q)
}

func (wc *WizardController) Submit(c *gin.Context) {
	rec, q, err := wc.WizardSvc.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, BookingResponse{Booking: rec, Quote: q})
}
