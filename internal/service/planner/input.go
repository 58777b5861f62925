package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/voyagewise-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxLabelLen       = 200
	maxDestinations   = 50
)

// CreateTripInput holds the parameters for creating a trip.
type CreateTripInput struct {
	Title        string
	Description  *string
	StartDate    time.Time
	EndDate      time.Time
	Destinations []string
}

// Validate checks all fields and collects all errors.
func (i CreateTripInput) Validate() error {
	var errs []domain.FieldError

	errs = validateTitle(errs, i.Title)
	errs = validateDescription(errs, i.Description)
	errs = validateSpan(errs, "start_date", "end_date", i.StartDate, i.EndDate)

	if len(i.Destinations) > maxDestinations {
		errs = append(errs, domain.FieldError{Field: "destinations", Message: fmt.Sprintf("max %d items", maxDestinations)})
	}
	for n, d := range i.Destinations {
		if strings.TrimSpace(d) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("destinations[%d]", n), Message: "must not be blank"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateItineraryInput holds the parameters for creating an itinerary.
type CreateItineraryInput struct {
	TripID      uuid.UUID
	Title       string
	Description *string
}

// Validate checks all fields and collects all errors.
func (i CreateItineraryInput) Validate() error {
	var errs []domain.FieldError

	if i.TripID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "trip_id", Message: "required"})
	}
	errs = validateTitle(errs, i.Title)
	errs = validateDescription(errs, i.Description)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// TripBlockInput holds the writable fields of a trip block, used by both
// create and update. ItineraryID may differ from the current parent on
// update, which moves the block.
type TripBlockInput struct {
	ItineraryID uuid.UUID
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	Location    *string
	Country     *string
}

// Validate checks all fields and collects all errors.
func (i TripBlockInput) Validate() error {
	var errs []domain.FieldError

	if i.ItineraryID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "itinerary_id", Message: "required"})
	}
	errs = validateTitle(errs, i.Title)
	errs = validateDescription(errs, i.Description)
	errs = validateSpan(errs, "start_time", "end_time", i.StartTime, i.EndTime)
	errs = validateLabel(errs, "location", i.Location)
	errs = validateLabel(errs, "country", i.Country)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i TripBlockInput) params() domain.TripBlockParams {
	return domain.TripBlockParams{
		ItineraryID: i.ItineraryID,
		Title:       domain.NormalizeLabel(i.Title),
		Description: domain.TrimOrNil(i.Description),
		StartTime:   i.StartTime,
		EndTime:     i.EndTime,
		Location:    labelOrNil(i.Location),
		Country:     labelOrNil(i.Country),
	}
}

// ActivityInput holds the writable fields of an activity, used by both
// create and update.
type ActivityInput struct {
	TripBlockID uuid.UUID
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Category    *string
}

// Validate checks all fields and collects all errors.
func (i ActivityInput) Validate() error {
	var errs []domain.FieldError

	if i.TripBlockID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "trip_block_id", Message: "required"})
	}
	errs = validateTitle(errs, i.Title)
	errs = validateDescription(errs, i.Description)
	errs = validateSpan(errs, "start_time", "end_time", i.StartTime, i.EndTime)

	location := strings.TrimSpace(i.Location)
	if location == "" {
		errs = append(errs, domain.FieldError{Field: "location", Message: "required"})
	}
	errs = validateLabel(errs, "location", &location)
	errs = validateLabel(errs, "category", i.Category)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ActivityInput) params() domain.ActivityParams {
	return domain.ActivityParams{
		TripBlockID: i.TripBlockID,
		Title:       domain.NormalizeLabel(i.Title),
		Description: domain.TrimOrNil(i.Description),
		StartTime:   i.StartTime,
		EndTime:     i.EndTime,
		Location:    domain.NormalizeLabel(i.Location),
		Category:    labelOrNil(i.Category),
	}
}

// ---------------------------------------------------------------------------
// Field rules
// ---------------------------------------------------------------------------

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(title) > maxTitleLen {
		return append(errs, domain.FieldError{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLen)})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, desc *string) []domain.FieldError {
	if desc != nil && len(strings.TrimSpace(*desc)) > maxDescriptionLen {
		return append(errs, domain.FieldError{Field: "description", Message: fmt.Sprintf("max %d characters", maxDescriptionLen)})
	}
	return errs
}

func validateLabel(errs []domain.FieldError, field string, v *string) []domain.FieldError {
	if v != nil && len(strings.TrimSpace(*v)) > maxLabelLen {
		return append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf("max %d characters", maxLabelLen)})
	}
	return errs
}

// validateSpan requires both ends and forbids end before start. Equal ends
// are allowed.
func validateSpan(errs []domain.FieldError, startField, endField string, start, end time.Time) []domain.FieldError {
	if start.IsZero() {
		errs = append(errs, domain.FieldError{Field: startField, Message: "required"})
	}
	if end.IsZero() {
		errs = append(errs, domain.FieldError{Field: endField, Message: "required"})
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, domain.FieldError{Field: endField, Message: "must not be before " + startField})
	}
	return errs
}

func labelOrNil(s *string) *string {
	s = domain.TrimOrNil(s)
	if s == nil {
		return nil
	}
	v := domain.NormalizeLabel(*s)
	return &v
}

func cleanDestinations(in []string) []string {
	out := make([]string, 0, len(in))
	for _, d := range in {
		out = append(out, domain.NormalizeLabel(d))
	}
	return out
}
