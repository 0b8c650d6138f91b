package repositories

import (
	"fmt"
	"sort"

	"locker-app/models"

	"github.com/facette/natsort"
	"gorm.io/gorm"
)

type LockerRepository struct {
	DB *gorm.DB
}

func NewLockerRepository(DB *gorm.DB) *LockerRepository {
	return &LockerRepository{DB: DB}
}

// LockerEntryResponse menambahkan alias kolom yang dipakai front end.
type LockerEntryResponse struct {
	models.Locker
	LockerNumber string  `json:"lockerNumber"`
	FileIdx      *string `json:"fileIdx"`
	Index        *string `json:"index"`
}

// GetAll mengembalikan semua entry, urut kode lokasi secara natural
// (A-2 sebelum A-10).
func (r *LockerRepository) GetAll() ([]LockerEntryResponse, error) {
	var lockers []models.Locker
	if err := r.DB.Find(&lockers).Error; err != nil {
		return nil, err
	}

	items := make([]LockerEntryResponse, 0, len(lockers))
	for _, l := range lockers {
		items = append(items, LockerEntryResponse{
			Locker:       l,
			LockerNumber: l.LocationCode,
			FileIdx:      l.FileIndex,
			Index:        l.FileIndex,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return natsort.Compare(items[i].LockerNumber, items[j].LockerNumber)
	})

	return items, nil
}

// LockerReportRow adalah baris laporan dengan nama kolom display,
// dipakai untuk push spreadsheet dan download excel.
type LockerReportRow struct {
	SystemID       string  `json:"ID Sistem"`
	LocationCode   string  `json:"Kode Lokasi"`
	LocationType   string  `json:"Tipe"`
	OwnerName      string  `json:"Owner Name"`
	ItemName       string  `json:"Item Name"`
	EntryDate      string  `json:"Tanggal Masuk"`
	ExpirationDate string  `json:"Tanggal Exp"`
	ManualStatus   string  `json:"Status Manual"`
	ManualNote     string  `json:"Keterangan Status"`
	Keterangan     string  `json:"Keterangan"`
	FileIndex      *string `json:"Index"`
}

// BuildReport menyusun baris laporan, opsional difilter per tipe lokasi.
func (r *LockerRepository) BuildReport(locationType string) ([]LockerReportRow, error) {
	query := r.DB.Model(&models.Locker{})
	if locationType != "" {
		query = query.Where("location_type = ?", locationType)
	}

	var lockers []models.Locker
	if err := query.Find(&lockers).Error; err != nil {
		return nil, err
	}

	rows := make([]LockerReportRow, 0, len(lockers))
	for _, l := range lockers {
		prefix := "LK-"
		if l.LocationType == "Rack" {
			prefix = "RK-"
		}
		rows = append(rows, LockerReportRow{
			SystemID:       fmt.Sprintf("%s%d", prefix, l.ID),
			LocationCode:   l.LocationCode,
			LocationType:   l.LocationType,
			OwnerName:      l.OwnerName,
			ItemName:       l.ItemName,
			EntryDate:      l.EntryDate,
			ExpirationDate: l.ExpirationDate,
			ManualStatus:   l.ManualStatus,
			ManualNote:     l.ManualNote,
			Keterangan:     l.Keterangan,
			FileIndex:      l.FileIndex,
		})
	}

	return rows, nil
}
