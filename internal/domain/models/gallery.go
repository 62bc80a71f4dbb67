package models

// GalleryItem represents an image in the public gallery
type GalleryItem struct {
	BaseModel
	Title       string `gorm:"type:varchar(200)" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `gorm:"type:varchar(500);not null" json:"image_url"`
	PublicID    string `gorm:"type:varchar(200)" json:"public_id"` // Cloudinary 删除句柄，与 ImageURL 同生共灭
}

// TableName specifies the table name for GalleryItem
func (GalleryItem) TableName() string {
	return "gallery_items"
}
