package models

type MasterOwner struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex" json:"name"`
}

// MasterLocation adalah sumber kebenaran siapa pemegang lokasi saat ini.
// CurrentOwner pointer supaya lokasi kosong tersimpan NULL, bukan "".
type MasterLocation struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Code         string  `gorm:"uniqueIndex" json:"code"`
	Type         string  `json:"type"`
	CurrentOwner *string `json:"current_owner"`
}
