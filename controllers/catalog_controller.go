package controllers

import (
	"net/http"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"

	"dive-booking/booking"
	"dive-booking/catalog"
	"dive-booking/schedule"
	"dive-booking/utils"
	"dive-booking/wizard"
)

// CatalogController serves the read-only reference data and schedule helpers.
type CatalogController struct {
	Catalog *catalog.Catalog
	Rules   schedule.Rules
}

func NewCatalogController(cat *catalog.Catalog, rules schedule.Rules) *CatalogController {
	return &CatalogController{Catalog: cat, Rules: rules}
}

type CatalogResponse struct {
	Accommodations []catalog.Accommodation `json:"accommodations"`
	Cabins         []catalog.Cabin         `json:"cabins"`
	Activities     []catalog.Activity      `json:"activities"`
	FlightPrice    int64                   `json:"flightPrice"`
}

func (cc *CatalogController) GetCatalog(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, CatalogResponse{
		Accommodations: cc.Catalog.Accommodations(),
		Cabins:         cc.Catalog.Cabins(),
		Activities:     cc.Catalog.Activities(),
		FlightPrice:    cc.Catalog.FlightPrice(),
	})
}

type StepView struct {
	ID    wizard.StepID `json:"id"`
	Title string        `json:"title"`
}

func stepViews(steps []wizard.StepID) []StepView {
	out := make([]StepView, len(steps))
	for i, s := range steps {
		out[i] = StepView{ID: s, Title: s.Title()}
	}
	return out
}

// GetSteps handles GET /api/steps?tripType=&combinationOrder=.
func (cc *CatalogController) GetSteps(c *gin.Context) {
	trip := booking.TripType(c.Query("tripType"))
	order := booking.CombinationOrder(c.Query("combinationOrder"))
	resp := gin.H{"steps": stepViews(wizard.StepsFor(trip, order))}
	if leg, ok := wizard.FirstLeg(trip, order); ok {
		resp["firstLeg"] = leg
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}

func legParam(c *gin.Context) (schedule.LegType, bool) {
	leg, err := schedule.ParseLegType(c.Param("leg"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return "", false
	}
	return leg, true
}

// SuggestDeparture handles GET /api/schedule/:leg/suggest?arrival=YYYY-MM-DD.
func (cc *CatalogController) SuggestDeparture(c *gin.Context) {
	leg, ok := legParam(c)
	if !ok {
		return
	}
	arrival, err := civil.ParseDate(c.Query("arrival"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "arrival must be a YYYY-MM-DD date")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"leg":          leg,
		"arrival":      arrival,
		"arrivalValid": cc.Rules.IsValidArrival(leg, arrival),
		"departure":    cc.Rules.SuggestDeparture(leg, arrival),
		"weekdays":     schedule.AllowedWeekdays(leg),
	})
}

type legRequest struct {
	Arrival   *civil.Date `json:"arrival"`
	Departure *civil.Date `json:"departure"`
}

// ValidateLeg handles POST /api/schedule/:leg/validate.
func (cc *CatalogController) ValidateLeg(c *gin.Context) {
	leg, ok := legParam(c)
	if !ok {
		return
	}
	var req legRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}
	errs := cc.Rules.ValidateLeg(leg, req.Arrival, req.Departure)
	resp := gin.H{"valid": errs.Empty(), "fields": errs.ByField()}
	if errs.Empty() {
		resp["nights"] = schedule.Nights(*req.Arrival, *req.Departure)
	}
	utils.JSONSuccess(c, http.StatusOK, resp)
}
