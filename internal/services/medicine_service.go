package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/akshaan07/pilltime/internal/models"
)

var (
	ErrMedicineNameRequired = errors.New("medicine name is required")
	ErrInvalidFrequency     = errors.New("invalid frequency")
	ErrTimeSlotRequired     = errors.New("at least one time slot is required")
	ErrInvalidTimeSlot      = errors.New("invalid time slot")
	ErrMedicineNotFound     = errors.New("medicine not found")
	ErrSaveMedicineFailed   = errors.New("save medicine failed")
)

const maxMedicineNameLength = 120

type MedicineStore interface {
	ListByUser(userID string) ([]models.Medicine, error)
	ListActiveByUser(userID string) ([]models.Medicine, error)
	FindByIDForUser(medicineID string, userID string) (models.Medicine, bool, error)
	Create(medicine *models.Medicine) error
	Save(medicine *models.Medicine) error
	Deactivate(medicineID string, userID string) error
}

type MedicineService struct {
	medicines MedicineStore
	feed      *ChangeFeed
}

type MedicineInput struct {
	Name      string
	Dosage    string
	Frequency string
	TimeSlots []string
	Notes     string
}

func NewMedicineService(medicines MedicineStore, feed *ChangeFeed) *MedicineService {
	return &MedicineService{medicines: medicines, feed: feed}
}

func (service *MedicineService) ListForUser(userID string) ([]models.Medicine, error) {
	return service.medicines.ListByUser(userID)
}

func (service *MedicineService) ListActiveForUser(userID string) ([]models.Medicine, error) {
	return service.medicines.ListActiveByUser(userID)
}

func (service *MedicineService) CreateForUser(userID string, input MedicineInput, now time.Time) (models.Medicine, error) {
	normalized, err := normalizeMedicineInput(input)
	if err != nil {
		return models.Medicine{}, err
	}

	medicine := models.Medicine{
		UserID:    userID,
		Name:      normalized.Name,
		Dosage:    normalized.Dosage,
		Frequency: normalized.Frequency,
		TimeSlots: normalized.TimeSlots,
		Notes:     normalized.Notes,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := service.medicines.Create(&medicine); err != nil {
		return models.Medicine{}, fmt.Errorf("%w: %v", ErrSaveMedicineFailed, err)
	}

	service.feed.Publish(userID, ChangeEvent{Table: "medicines", Action: ChangeActionCreated, RowID: medicine.ID})
	return medicine, nil
}

func (service *MedicineService) UpdateForUser(userID string, medicineID string, input MedicineInput, now time.Time) (models.Medicine, error) {
	medicine, found, err := service.medicines.FindByIDForUser(medicineID, userID)
	if err != nil {
		return models.Medicine{}, err
	}
	if !found {
		return models.Medicine{}, ErrMedicineNotFound
	}

	normalized, err := normalizeMedicineInput(input)
	if err != nil {
		return models.Medicine{}, err
	}

	medicine.Name = normalized.Name
	medicine.Dosage = normalized.Dosage
	medicine.Frequency = normalized.Frequency
	medicine.TimeSlots = normalized.TimeSlots
	medicine.Notes = normalized.Notes
	medicine.UpdatedAt = now
	if err := service.medicines.Save(&medicine); err != nil {
		return models.Medicine{}, fmt.Errorf("%w: %v", ErrSaveMedicineFailed, err)
	}

	service.feed.Publish(userID, ChangeEvent{Table: "medicines", Action: ChangeActionUpdated, RowID: medicine.ID})
	return medicine, nil
}

// DeactivateForUser soft-deletes: the row keeps its history but disappears
// from every active-schedule view.
func (service *MedicineService) DeactivateForUser(userID string, medicineID string) error {
	_, found, err := service.medicines.FindByIDForUser(medicineID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrMedicineNotFound
	}

	if err := service.medicines.Deactivate(medicineID, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrSaveMedicineFailed, err)
	}

	service.feed.Publish(userID, ChangeEvent{Table: "medicines", Action: ChangeActionDeleted, RowID: medicineID})
	return nil
}

func normalizeMedicineInput(input MedicineInput) (MedicineInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Dosage = strings.TrimSpace(input.Dosage)
	input.Frequency = strings.TrimSpace(input.Frequency)
	input.Notes = strings.TrimSpace(input.Notes)

	if input.Name == "" || len(input.Name) > maxMedicineNameLength {
		return MedicineInput{}, ErrMedicineNameRequired
	}
	if !isKnownFrequency(input.Frequency) {
		return MedicineInput{}, ErrInvalidFrequency
	}

	slots, err := NormalizeTimeSlots(input.TimeSlots)
	if err != nil {
		return MedicineInput{}, err
	}
	input.TimeSlots = slots
	return input, nil
}

func isKnownFrequency(frequency string) bool {
	for _, known := range models.MedicineFrequencies() {
		if frequency == known {
			return true
		}
	}
	return false
}

// NormalizeTimeSlots validates "HH:MM" slots and returns them de-duplicated
// and sorted ascending.
func NormalizeTimeSlots(slots []string) ([]string, error) {
	type slotEntry struct {
		minutes int
		value   string
	}

	seen := make(map[int]struct{}, len(slots))
	entries := make([]slotEntry, 0, len(slots))
	for _, slot := range slots {
		trimmed := strings.TrimSpace(slot)
		if trimmed == "" {
			continue
		}
		minutes, ok := ParseSlotMinutes(trimmed)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, slot)
		}
		if _, duplicate := seen[minutes]; duplicate {
			continue
		}
		seen[minutes] = struct{}{}
		entries = append(entries, slotEntry{minutes: minutes, value: trimmed})
	}

	if len(entries) == 0 {
		return nil, ErrTimeSlotRequired
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].minutes < entries[j].minutes })

	normalized := make([]string, 0, len(entries))
	for _, entry := range entries {
		normalized = append(normalized, entry.value)
	}
	return normalized, nil
}
