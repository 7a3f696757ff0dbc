package models

type UserRole string

const (
	RolePS   UserRole = "ПС"   // Производственная служба
	RoleTS   UserRole = "ТС"   // Техническая служба
	RoleSS   UserRole = "СС"   // Сметная служба
	RoleSM   UserRole = "СМ"   // Служба механизации
	RoleSZP  UserRole = "СЗиП" // Служба закупок и поставок
	RoleCust UserRole = "Заказчик"
	RoleMgr  UserRole = "Руководитель контракта"
)

// AllRoles — полный набор ролей; используется там, где раздел доступен всем.
func AllRoles() []UserRole {
	return []UserRole{RoleSS, RoleTS, RolePS, RoleCust, RoleMgr, RoleSM, RoleSZP}
}

// Пользователи заводятся сидером при старте, маршрута регистрации нет.
type User struct {
	ID           uint     `gorm:"primaryKey"`
	Username     string   `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(50);not null"`
}

func (User) TableName() string { return "users" }
