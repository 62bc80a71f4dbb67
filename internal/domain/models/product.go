package models

// 产品状态
const (
	ProductStatusActive   = "Active"
	ProductStatusInactive = "Inactive"
)

// Product represents a product with an externally hosted image
type Product struct {
	BaseModel
	Name     string  `gorm:"type:varchar(200);not null" json:"name"`
	Price    float64 `gorm:"not null" json:"price"`
	ImageURL string  `gorm:"type:varchar(500);not null" json:"image_url"`
	PublicID string  `gorm:"type:varchar(200)" json:"public_id"` // Cloudinary 删除句柄，与 ImageURL 同生共灭
	Category string  `gorm:"type:varchar(100)" json:"category"`
	Stock    int     `gorm:"default:0" json:"stock"`
	Status   string  `gorm:"type:varchar(20);default:'Active'" json:"status"` // Active, Inactive
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}
