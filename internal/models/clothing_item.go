package models

// Optional columns are pointers so absent values round-trip as SQL NULL
// and JSON null. StorageDate stays a date string end to end.
type ClothingItem struct {
	BaseModel
	ContainerID   uint     `gorm:"index;not null" json:"container_id"`
	Name          string   `gorm:"type:varchar(255);not null" json:"name"`
	ImagePath     *string  `gorm:"type:text" json:"image_path"`
	Sold          bool     `gorm:"default:false" json:"sold"`
	PurchasePrice *float64 `json:"purchase_price"`
	SellPrice     *float64 `json:"sell_price"`
	StorageDate   *string  `gorm:"type:date" json:"storage_date"`
	Notes         *string  `gorm:"type:text" json:"notes"`
}
