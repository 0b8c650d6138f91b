package repositories

import (
	"errors"

	"locker-app/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Status hasil save lokasi. Conflict bukan error, UI yang memutuskan
// mau force acquire atau tidak.
const (
	SaveStatusSuccess      = "success"
	SaveStatusConflict     = "conflict"
	SaveStatusTypeConflict = "type_conflict"
)

const (
	CheckStatusNew      = "new"
	CheckStatusVacant   = "vacant"
	CheckStatusOccupied = "occupied"
)

type SaveResult struct {
	Status string `json:"status"`
	Owner  string `json:"owner,omitempty"`
}

type CheckResult struct {
	Status string `json:"status"`
	Owner  string `json:"owner,omitempty"`
}

// RegistryRepository memegang aturan rebutan lokasi: siapa pemilik
// master_locations saat ini dan kapan baris lockers ikut ditulis ulang.
type RegistryRepository struct {
	DB *gorm.DB
}

func NewRegistryRepository(DB *gorm.DB) *RegistryRepository {
	return &RegistryRepository{DB: DB}
}

// Save menerapkan klaim (code, ownerName, locationType) ke registry.
// Urutan pengecekan harus tetap: tipe dulu, baru pemilik.
func (r *RegistryRepository) Save(code string, ownerName string, locationType string, forceAcquire bool) (SaveResult, error) {
	if locationType == "" {
		locationType = "Locker"
	}

	var existing models.MasterLocation
	err := r.DB.Where("code = ?", code).First(&existing).Error
	found := err == nil
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return SaveResult{}, err
	}

	if found {
		if existing.Type != locationType {
			return SaveResult{Status: SaveStatusTypeConflict}, nil
		}
		if existing.CurrentOwner != nil && *existing.CurrentOwner != ownerName && ownerName != "" && !forceAcquire {
			return SaveResult{Status: SaveStatusConflict, Owner: *existing.CurrentOwner}, nil
		}
	}

	if ownerName != "" {
		// Insert-if-absent, duplikat bukan error
		if err := r.DB.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.MasterOwner{Name: ownerName}).Error; err != nil {
			return SaveResult{}, err
		}
	}

	var owner *string
	if ownerName != "" {
		owner = &ownerName
	}

	if err := r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "code"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"current_owner": owner,
			"type":          locationType,
		}),
	}).Create(&models.MasterLocation{Code: code, Type: locationType, CurrentOwner: owner}).Error; err != nil {
		return SaveResult{}, err
	}

	// Force acquire atau pergantian pemilik menyeret baris lockers
	// dengan kode lokasi yang sama ke pemilik baru. Klaim kosong tidak
	// pernah menyeret apa pun.
	ownerChanged := found && derefOwner(existing.CurrentOwner) != ownerName
	if ownerName != "" && (forceAcquire || ownerChanged) {
		if err := r.DB.Model(&models.Locker{}).
			Where("location_code = ?", code).
			Updates(map[string]interface{}{
				"owner_name":    ownerName,
				"location_type": locationType,
			}).Error; err != nil {
			return SaveResult{}, err
		}
	}

	return SaveResult{Status: SaveStatusSuccess}, nil
}

// Check melihat status lokasi tanpa mengubah apa pun.
func (r *RegistryRepository) Check(code string) (CheckResult, error) {
	var location models.MasterLocation
	err := r.DB.Where("code = ?", code).First(&location).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CheckResult{Status: CheckStatusNew}, nil
	}
	if err != nil {
		return CheckResult{}, err
	}
	if location.CurrentOwner == nil {
		return CheckResult{Status: CheckStatusVacant}, nil
	}
	return CheckResult{Status: CheckStatusOccupied, Owner: *location.CurrentOwner}, nil
}

func derefOwner(owner *string) string {
	if owner == nil {
		return ""
	}
	return *owner
}
