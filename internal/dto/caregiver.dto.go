package dto

import (
	"strings"
	"time"

	"github.com/petcaremt/petcare-api/internal/domain/directory"
	"github.com/petcaremt/petcare-api/internal/models"
)

// As chaves JSON seguem o contrato consumido pelo front (camelCase),
// não o padrão snake_case dos modelos.

type Prices struct {
	Hourly  *float64 `json:"hourly"`
	Daily   *float64 `json:"daily"`
	Weekly  *float64 `json:"weekly"`
	Monthly *float64 `json:"monthly"`
}

type Caregiver struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Rating     float64  `json:"rating"`
	Reviews    int      `json:"reviews"`
	Distance   string   `json:"distance"`
	Price      string   `json:"price"`
	Image      string   `json:"image"`
	Services   []string `json:"services"`
	About      string   `json:"about"`
	Experience string   `json:"experience"`
	Prices     Prices   `json:"prices"`
}

type ReviewEntry struct {
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment"`
	OwnerName string    `json:"ownerName"`
	Date      time.Time `json:"date"`
}

type CaregiverDetail struct {
	Caregiver
	Address    string        `json:"address"`
	Phone      string        `json:"phone"`
	Email      string        `json:"email"`
	ReviewList []ReviewEntry `json:"reviewList"`
}

func NewCaregiver(s *models.Sitter) Caregiver {
	names := make([]string, 0, len(s.Specialties))
	for _, sp := range s.Specialties {
		names = append(names, sp.Name)
	}

	kind := strings.Join(names, ", ")
	if kind == "" {
		kind = directory.DefaultType
	}

	services := make([]string, 0, len(s.Services))
	for _, svc := range s.Services {
		services = append(services, svc.Name)
	}

	about := s.Bio
	if about == "" {
		about = directory.DefaultAbout
	}

	image := s.Avatar
	if image == "" {
		image = directory.PlaceholderImage
	}

	return Caregiver{
		ID:         s.ID,
		Name:       s.Name,
		Type:       kind,
		Rating:     s.Rating,
		Reviews:    s.TotalReviews,
		Distance:   directory.MockDistance,
		Price:      directory.DisplayPrice(s),
		Image:      image,
		Services:   services,
		About:      about,
		Experience: s.Experience,
		Prices: Prices{
			Hourly:  s.HourlyRate,
			Daily:   s.DayRate,
			Weekly:  s.WeekRate,
			Monthly: s.MonthRate,
		},
	}
}

func NewCaregiverDetail(s *models.Sitter) CaregiverDetail {
	reviews := make([]ReviewEntry, 0, len(s.Reviews))
	for _, rv := range s.Reviews {
		reviews = append(reviews, ReviewEntry{
			Rating:    rv.Rating,
			Comment:   rv.Comment,
			OwnerName: rv.Owner.Name,
			Date:      rv.CreatedAt,
		})
	}

	return CaregiverDetail{
		Caregiver:  NewCaregiver(s),
		Address:    s.Address.Display(),
		Phone:      s.Phone,
		Email:      s.Email,
		ReviewList: reviews,
	}
}
