package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Medicines     *MedicineRepository
	HydrationLogs *HydrationLogRepository
	SymptomLogs   *SymptomLogRepository
	Doctors       *DoctorRepository
	Chats         *ChatRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Medicines:     NewMedicineRepository(database),
		HydrationLogs: NewHydrationLogRepository(database),
		SymptomLogs:   NewSymptomLogRepository(database),
		Doctors:       NewDoctorRepository(database),
		Chats:         NewChatRepository(database),
	}
}
