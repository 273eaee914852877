package models

// Address is a stored shipping address; management lives outside this service,
// settlement only resolves one to display text.
type Address struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       int64  `gorm:"column:user_id;not null;index"`
	Alias        string `gorm:"column:alias"`
	Street       string `gorm:"column:street;not null"`
	Neighborhood string `gorm:"column:neighborhood"`
	City         string `gorm:"column:city;not null"`
	State        string `gorm:"column:state;not null"`
	PostalCode   string `gorm:"column:postal_code;not null"`
}
