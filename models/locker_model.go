package models

// Locker adalah satu record barang yang tersimpan di locker/rack.
// Kolom status tidak pernah dibaca ataupun ditulis handler, dibiarkan
// apa adanya mengikuti skema lama.
type Locker struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	OwnerName      string  `json:"ownerName"`
	ItemName       string  `json:"itemName"`
	LocationCode   string  `json:"locationCode"`
	LocationType   string  `gorm:"default:Locker" json:"locationType"`
	EntryDate      string  `json:"entryDate"`
	ExpirationDate string  `json:"expirationDate"`
	Status         string  `json:"status"`
	Keterangan     string  `json:"keterangan"`
	ManualStatus   string  `json:"manualStatus"`
	ManualNote     string  `json:"manualNote"`
	FileIndex      *string `json:"fileIndex"`
}
