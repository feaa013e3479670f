package model

// swagger:model User
type User struct {
	BaseModel
	Username         string `gorm:"size:80;unique;not null" json:"username"`
	Email            string `gorm:"size:120;unique;not null" json:"email"`
	Password         string `gorm:"size:200;not null" json:"-"`
	NativeLanguageID uint   `gorm:"not null;default:1" json:"nativeLanguageId"`
	Avatar           string `gorm:"size:255" json:"avatar"`
}

func (User) TableName() string {
	return "users"
}
