package model

// GameModel maps the catalog's 'games' table. The loan service only reads it.
type GameModel struct {
	ID           int64  `gorm:"primaryKey"`
	Title        string `gorm:"type:varchar(255);not null"`
	Age          int    `gorm:"not null;default:0"`
	CategoryName string `gorm:"column:category_name;type:varchar(255)"`
	AuthorName   string `gorm:"column:author_name;type:varchar(255)"`
}

// TableName explicitly sets the table name for GORM.
func (GameModel) TableName() string {
	return "games"
}

// ClientModel maps the catalog's 'clients' table.
type ClientModel struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null;uniqueIndex"`
}

// TableName explicitly sets the table name for GORM.
func (ClientModel) TableName() string {
	return "clients"
}
