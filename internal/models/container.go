package models

type Container struct {
	BaseModel
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	ImagePath string         `gorm:"type:text;not null" json:"image_path"`
	Items     []ClothingItem `gorm:"foreignKey:ContainerID" json:"items,omitempty"`
}
