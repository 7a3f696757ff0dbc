package database

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stroydoc/internal/models"
)

// По одной служебной учётной записи на роль. Регистрации через веб нет,
// пользователи появляются только отсюда.
var seedAccounts = []struct {
	Username string
	Role     models.UserRole
}{
	{Username: "ps_user", Role: models.RolePS},
	{Username: "ts_user", Role: models.RoleTS},
	{Username: "ss_user", Role: models.RoleSS},
	{Username: "sm_user", Role: models.RoleSM},
	{Username: "szip_user", Role: models.RoleSZP},
	{Username: "cust_user", Role: models.RoleCust},
	{Username: "mgr_user", Role: models.RoleMgr},
}

func seedUsers(db *gorm.DB, password string, log zerolog.Logger) error {
	for _, acc := range seedAccounts {
		var count int64
		if err := db.Model(&models.User{}).
			Where("username = ?", acc.Username).
			Count(&count).Error; err != nil {
			return fmt.Errorf("check seed user %s: %w", acc.Username, err)
		}
		if count > 0 {
			// уже есть — пропускаем
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", acc.Username, err)
		}

		user := models.User{
			Username:     acc.Username,
			PasswordHash: string(hash),
			Role:         acc.Role,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("create seed user %s: %w", acc.Username, err)
		}

		log.Info().Str("username", acc.Username).Str("role", string(acc.Role)).
			Msg("created seed user")
	}
	return nil
}
