package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
	"github.com/heartmarshall/voyagewise-backend/internal/service/planner"
)

const dateLayout = time.DateOnly

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

type createTripRequest struct {
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Destinations []string `json:"destinations"`
}

func (req createTripRequest) toInput() (planner.CreateTripInput, error) {
	var errs []domain.FieldError
	start := parseDate(&errs, "startDate", req.StartDate)
	end := parseDate(&errs, "endDate", req.EndDate)
	if len(errs) > 0 {
		return planner.CreateTripInput{}, &domain.ValidationError{Errors: errs}
	}
	return planner.CreateTripInput{
		Title:        req.Title,
		Description:  req.Description,
		StartDate:    start,
		EndDate:      end,
		Destinations: req.Destinations,
	}, nil
}

type createItineraryRequest struct {
	TripID      uuid.UUID `json:"tripId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
}

type tripBlockRequest struct {
	ItineraryID uuid.UUID `json:"itineraryId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Location    *string   `json:"location"`
	Country     *string   `json:"country"`
}

func (req tripBlockRequest) toInput() planner.TripBlockInput {
	return planner.TripBlockInput{
		ItineraryID: req.ItineraryID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Country:     req.Country,
	}
}

type activityRequest struct {
	TripBlockID uuid.UUID `json:"tripBlockId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Location    string    `json:"location"`
	Category    *string   `json:"category"`
}

func (req activityRequest) toInput() planner.ActivityInput {
	return planner.ActivityInput{
		TripBlockID: req.TripBlockID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Location:    req.Location,
		Category:    req.Category,
	}
}

func parseDate(errs *[]domain.FieldError, field, value string) time.Time {
	if value == "" {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "required"})
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		*errs = append(*errs, domain.FieldError{Field: field, Message: "must be YYYY-MM-DD"})
		return time.Time{}
	}
	return t
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

type tripResponse struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  *string  `json:"description"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Destinations []string `json:"destinations"`
	HasItinerary bool     `json:"hasItinerary"`

	Itinerary *itineraryResponse `json:"itinerary,omitempty"`
}

type itineraryResponse struct {
	ID          string              `json:"id"`
	TripID      string              `json:"tripId"`
	Title       string              `json:"title"`
	Description *string             `json:"description"`
	TripBlocks  []tripBlockResponse `json:"tripBlocks"`
}

type tripBlockResponse struct {
	ID          string             `json:"id"`
	ItineraryID string             `json:"itineraryId"`
	Title       string             `json:"title"`
	Description *string            `json:"description"`
	StartTime   time.Time          `json:"startTime"`
	EndTime     time.Time          `json:"endTime"`
	Location    *string            `json:"location"`
	Country     *string            `json:"country"`
	Activities  []activityResponse `json:"activities,omitempty"`
}

type activityResponse struct {
	ID          string    `json:"id"`
	TripBlockID string    `json:"tripBlockId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Location    string    `json:"location"`
	Category    *string   `json:"category"`
}

func toTripResponse(t domain.Trip, hasItinerary bool) tripResponse {
	dest := t.Destinations
	if dest == nil {
		dest = []string{}
	}
	return tripResponse{
		ID:           t.ID.String(),
		Title:        t.Title,
		Description:  t.Description,
		StartDate:    t.StartDate.Format(dateLayout),
		EndDate:      t.EndDate.Format(dateLayout),
		Destinations: dest,
		HasItinerary: hasItinerary,
	}
}

func toTripTreeResponse(tree *domain.TripTree) tripResponse {
	resp := toTripResponse(tree.Trip, tree.HasItinerary)
	if tree.Itinerary != nil {
		it := toItineraryResponse(*tree.Itinerary)
		resp.Itinerary = &it
	}
	return resp
}

func toItineraryResponse(it domain.Itinerary) itineraryResponse {
	return itineraryResponse{
		ID:          it.ID.String(),
		TripID:      it.TripID.String(),
		Title:       it.Title,
		Description: it.Description,
		TripBlocks:  toTripBlockResponses(it.TripBlocks),
	}
}

func toTripBlockResponse(b domain.TripBlock) tripBlockResponse {
	resp := tripBlockResponse{
		ID:          b.ID.String(),
		ItineraryID: b.ItineraryID.String(),
		Title:       b.Title,
		Description: b.Description,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Location:    b.Location,
		Country:     b.Country,
	}
	if b.Activities != nil {
		resp.Activities = toActivityResponses(b.Activities)
	}
	return resp
}

func toTripBlockResponses(blocks []domain.TripBlock) []tripBlockResponse {
	out := make([]tripBlockResponse, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, toTripBlockResponse(b))
	}
	return out
}

func toActivityResponse(a domain.Activity) activityResponse {
	return activityResponse{
		ID:          a.ID.String(),
		TripBlockID: a.TripBlockID.String(),
		Title:       a.Title,
		Description: a.Description,
		StartTime:   a.StartTime,
		EndTime:     a.EndTime,
		Location:    a.Location,
		Category:    a.Category,
	}
}

func toActivityResponses(activities []domain.Activity) []activityResponse {
	out := make([]activityResponse, 0, len(activities))
	for _, a := range activities {
		out = append(out, toActivityResponse(a))
	}
	return out
}
