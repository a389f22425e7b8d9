package models

type Vendor struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Address  string `gorm:"not null" json:"address"`
	ImageURL string `json:"image_url"`
	Items    []Item `gorm:"foreignKey:VendorID" json:"-"`
}
