package service

import (
	"fmt"
	"time"

	"odontia/internal/db"
	"odontia/internal/entities"
	"odontia/internal/repository"
)

type PatientService struct {
	Repo *repository.PatientRepository
}

func NewPatientService(repo *repository.PatientRepository) *PatientService {
	return &PatientService{Repo: repo}
}

func (s *PatientService) CreatePatient(clinicID int, req *entities.PatientRequest) (*entities.PatientResponse, error) {
	patient, err := patientFromRequest(clinicID, req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

func (s *PatientService) GetPatient(clinicID, id int) (*entities.PatientResponse, error) {
	patient, err := s.Repo.GetByID(clinicID, id)
	if err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

func (s *PatientService) ListPatients(clinicID int, name, document string, limit, offset int) (*entities.PatientsList, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	patients, total, err := s.Repo.List(clinicID, name, document, limit, offset)
	if err != nil {
		return nil, err
	}
	list := &entities.PatientsList{Total: total, Limit: limit, Offset: offset}
	for i := range patients {
		list.Patients = append(list.Patients, *toPatientResponse(&patients[i]))
	}
	return list, nil
}

func (s *PatientService) UpdatePatient(clinicID, id int, req *entities.PatientRequest) (*entities.PatientResponse, error) {
	patient, err := patientFromRequest(clinicID, req)
	if err != nil {
		return nil, err
	}
	patient.ID = id
	if err := s.Repo.Update(patient); err != nil {
		return nil, err
	}
	return toPatientResponse(patient), nil
}

func (s *PatientService) DeletePatient(clinicID, id int) error {
	return s.Repo.Delete(clinicID, id)
}

func patientFromRequest(clinicID int, req *entities.PatientRequest) (*db.Patient, error) {
	if req.FullName == "" {
		return nil, fmt.Errorf("full_name is required")
	}
	patient := &db.Patient{
		ClinicID: clinicID,
		FullName: req.FullName,
		Document: req.Document,
		Email:    req.Email,
		Phone:    req.Phone,
		Notes:    req.Notes,
	}
	if req.BirthDate != "" {
		birth, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, fmt.Errorf("invalid birth_date %q, expected YYYY-MM-DD", req.BirthDate)
		}
		patient.BirthDate = &birth
	}
	return patient, nil
}

func toPatientResponse(p *db.Patient) *entities.PatientResponse {
	return &entities.PatientResponse{
		ID:        p.ID,
		FullName:  p.FullName,
		Document:  p.Document,
		Email:     p.Email,
		Phone:     p.Phone,
		BirthDate: p.BirthDate,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
