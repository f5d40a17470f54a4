package models

// Product is one artwork row in the inventory.
// Optional columns are pointers so an absent value round-trips as NULL;
// a row whose SKU is NULL is never matched by sku lookups.
type Product struct {
	ID       uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	SKU      *string  `gorm:"size:100;uniqueIndex"     json:"sku"`
	Title    string   `gorm:"size:255;not null"        json:"title"`
	Artist   *string  `gorm:"size:255"                 json:"artist"`
	Year     *int     `json:"year"`
	Price    *float64 `json:"price"`
	Quantity int      `gorm:"not null;default:0"       json:"quantity"`
}

// TableName keeps the historical table name from earlier versions of the tool.
func (Product) TableName() string { return "artwork" }
