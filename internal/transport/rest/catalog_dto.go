package rest

import "github.com/heartmarshall/voyagewise-backend/internal/domain"

type catalogEntryResponse struct {
	ID                     string   `json:"id"`
	Title                  string   `json:"title"`
	Description            *string  `json:"description"`
	Location               string   `json:"location"`
	Country                string   `json:"country"`
	Category               string   `json:"category"`
	TypicalDurationMinutes *int     `json:"typicalDurationMinutes"`
	AverageCost            *float64 `json:"averageCost"`
	Tags                   []string `json:"tags"`
	IsPopular              bool     `json:"isPopular"`
	RecommendedTime        *string  `json:"recommendedTime"`
}

type catalogPageResponse struct {
	Content       []catalogEntryResponse `json:"content"`
	Page          int                    `json:"page"`
	Size          int                    `json:"size"`
	TotalElements int                    `json:"totalElements"`
	TotalPages    int                    `json:"totalPages"`
}

type filterOptionsResponse struct {
	Countries  []string `json:"countries"`
	Locations  []string `json:"locations"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
}

type costRangeJSON struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

type durationRangeJSON struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

type filterRangesResponse struct {
	Cost     costRangeJSON     `json:"cost"`
	Duration durationRangeJSON `json:"duration"`
}

type uploadResponse struct {
	Imported int `json:"imported"`
}

func toCatalogPageResponse(p domain.Page[domain.CatalogEntry]) catalogPageResponse {
	content := make([]catalogEntryResponse, 0, len(p.Items))
	for _, e := range p.Items {
		content = append(content, catalogEntryResponse{
			ID:                     e.ID.String(),
			Title:                  e.Title,
			Description:            e.Description,
			Location:               e.Location,
			Country:                e.Country,
			Category:               e.Category,
			TypicalDurationMinutes: e.TypicalDurationMinutes,
			AverageCost:            e.AverageCost,
			Tags:                   e.TagList(),
			IsPopular:              e.IsPopular,
			RecommendedTime:        e.RecommendedTime,
		})
	}
	return catalogPageResponse{
		Content:       content,
		Page:          p.Page,
		Size:          p.Size,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
	}
}

func costRangeResponse(r domain.CostRange) costRangeJSON {
	return costRangeJSON{Min: r.Min, Max: r.Max}
}

func durationRangeResponse(r domain.DurationRange) durationRangeJSON {
	return durationRangeJSON{Min: r.Min, Max: r.Max}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
