package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/akshaan07/pilltime/internal/models"
)

var (
	ErrDoctorNameRequired     = errors.New("doctor name is required")
	ErrInvalidAppointmentDate = errors.New("invalid appointment date")
	ErrDoctorNotFound         = errors.New("doctor not found")
	ErrSaveDoctorFailed       = errors.New("save doctor failed")
)

const maxDoctorFieldLength = 160

type DoctorStore interface {
	ListByUser(userID string) ([]models.Doctor, error)
	FindByIDForUser(doctorID string, userID string) (models.Doctor, bool, error)
	Create(doctor *models.Doctor) error
	Save(doctor *models.Doctor) error
	Delete(doctorID string, userID string) error
}

type DoctorService struct {
	doctors DoctorStore
	feed    *ChangeFeed
}

type DoctorInput struct {
	Name            string
	Speciality      string
	Contact         string
	AppointmentDate string
}

func NewDoctorService(doctors DoctorStore, feed *ChangeFeed) *DoctorService {
	return &DoctorService{doctors: doctors, feed: feed}
}

func (service *DoctorService) ListForUser(userID string) ([]models.Doctor, error) {
	return service.doctors.ListByUser(userID)
}

func (service *DoctorService) CreateForUser(userID string, input DoctorInput, now time.Time) (models.Doctor, error) {
	normalized, err := normalizeDoctorInput(input)
	if err != nil {
		return models.Doctor{}, err
	}

	doctor := models.Doctor{
		UserID:          userID,
		Name:            normalized.Name,
		Speciality:      normalized.Speciality,
		Contact:         normalized.Contact,
		AppointmentDate: normalized.AppointmentDate,
		CreatedAt:       now,
	}
	if err := service.doctors.Create(&doctor); err != nil {
		return models.Doctor{}, fmt.Errorf("%w: %v", ErrSaveDoctorFailed, err)
	}

	service.feed.Publish(userID, ChangeEvent{Table: "doctors", Action: ChangeActionCreated, RowID: doctor.ID})
	return doctor, nil
}

func (service *DoctorService) UpdateForUser(userID string, doctorID string, input DoctorInput) (models.Doctor, error) {
	doctor, found, err := service.doctors.FindByIDForUser(doctorID, userID)
	if err != nil {
		return models.Doctor{}, err
	}
	if !found {
		return models.Doctor{}, ErrDoctorNotFound
	}

	normalized, err := normalizeDoctorInput(input)
	if err != nil {
		return models.Doctor{}, err
	}

	doctor.Name = normalized.Name
	doctor.Speciality = normalized.Speciality
	doctor.Contact = normalized.Contact
	doctor.AppointmentDate = normalized.AppointmentDate
	if err := service.doctors.Save(&doctor); err != nil {
		return models.Doctor{}, fmt.Errorf("%w: %v", ErrSaveDoctorFailed, err)
	}

	service.feed.Publish(userID, ChangeEvent{Table: "doctors", Action: ChangeActionUpdated, RowID: doctor.ID})
	return doctor, nil
}

func (service *DoctorService) DeleteForUser(userID string, doctorID string) error {
	_, found, err := service.doctors.FindByIDForUser(doctorID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrDoctorNotFound
	}

	if err := service.doctors.Delete(doctorID, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveDoctorFailed, err)
	}

	service.feed.Publish(userID, ChangeEvent{Table: "doctors", Action: ChangeActionDeleted, RowID: doctorID})
	return nil
}

func normalizeDoctorInput(input DoctorInput) (DoctorInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Speciality = strings.TrimSpace(input.Speciality)
	input.Contact = strings.TrimSpace(input.Contact)
	input.AppointmentDate = strings.TrimSpace(input.AppointmentDate)

	if input.Name == "" || len(input.Name) > maxDoctorFieldLength {
		return DoctorInput{}, ErrDoctorNameRequired
	}
	if input.AppointmentDate != "" && !IsValidDateKey(input.AppointmentDate) {
		return DoctorInput{}, ErrInvalidAppointmentDate
	}
	return input, nil
}
