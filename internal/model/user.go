package model

type User struct {
	BaseModel
	Name     string `db:"name" json:"name"`
	Email    string `db:"email" json:"email"`
	Password string `db:"password" json:"-"` // bcrypt hash, never serialized
}
