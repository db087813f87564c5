package service

import (
	"fmt"

	"odontia/internal/db"
	"odontia/internal/entities"
	"odontia/internal/repository"
)

type ProfessionalService struct {
	Repo *repository.ProfessionalRepository
}

func NewProfessionalService(repo *repository.ProfessionalRepository) *ProfessionalService {
	return &ProfessionalService{Repo: repo}
}

func (s *ProfessionalService) CreateProfessional(clinicID int, req *entities.ProfessionalRequest) (*entities.ProfessionalResponse, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("full_name is required")
	}
	professional := &db.Professional{
		ClinicID:  clinicID,
		FullName:  req.FullName,
		Specialty: req.Specialty,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.Repo.Create(professional); err != nil {
		return nil, err
	}
	return toProfessionalResponse(professional), nil
}

func (s *ProfessionalService) GetProfessional(clinicID, id int) (*entities.ProfessionalResponse, error) {
	professional, err := s.Repo.GetByID(clinicID, id)
	if err != nil {
		return nil, err
	}
	return toProfessionalResponse(professional), nil
}

func (s *ProfessionalService) ListProfessionals(clinicID int) ([]entities.ProfessionalResponse, error) {
	professionals, err := s.Repo.List(clinicID)
	if err != nil {
		return nil, err
	}
	var out []entities.ProfessionalResponse
	for i := range professionals {
		out = append(out, *toProfessionalResponse(&professionals[i]))
	}
	return out, nil
}

func toProfessionalResponse(p *db.Professional) *entities.ProfessionalResponse {
	return &entities.ProfessionalResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Specialty: p.Specialty,
		Email:     p.Email,
		Phone:     p.Phone,
		CreatedAt: p.CreatedAt,
	}
}
