package models

// Offer represents one promotional banner window for one shop.
// StartTime and EndTime are wall-clock HH:MM values with no timezone;
// a window whose end is not after its start spans midnight and ends on
// the day after CreatedDate.
type Offer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ShopName    string `gorm:"not null;index" json:"shop_name"`
	ImagePath   string `gorm:"not null" json:"image_path"`
	StartTime   string `gorm:"not null" json:"start_time"` // HH:MM
	EndTime     string `gorm:"not null" json:"end_time"`   // HH:MM
	CreatedDate string `json:"created_date"`               // YYYY-MM-DD
}

// TableName overrides the default table name
func (Offer) TableName() string {
	return "offers"
}
