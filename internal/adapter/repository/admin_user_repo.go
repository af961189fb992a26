package repository

import (
	"context"

	"github.com/aminafridi/PhysioCare-sub000/internal/core"

	"go.uber.org/zap"
)

type AdminUserRepo struct {
	*Repo[core.AdminUser]
}

func NewAdminUserRepo(store core.DocumentStore, logger *zap.Logger) core.AdminUserRepository {
	return &AdminUserRepo{NewRepo(store, adminUserConfig, logger)}
}

// GetByEmail returns the first account with this email. Emails are not
// unique in the store; later duplicates are unreachable for login.
func (r *AdminUserRepo) GetByEmail(ctx context.Context, email string) *core.AdminUser {
	if email == "" {
		return nil
	}
	return r.FindBy(ctx, "email", email)
}

var adminUserConfig = EntityConfig[core.AdminUser]{
	Collection: core.CollectionAdminUsers,
	Order:      core.OrderBy(core.FieldCreatedAt, false),
	Decode: func(doc core.Document) core.AdminUser {
		f := doc.Fields
		return core.AdminUser{
			ID:           doc.ID,
			Email:        str(f, "email"),
			Password:     str(f, "password"),
			Name:         str(f, "name"),
			Role:         str(f, "role"),
			AllowedPages: strs(f, "allowedPages"),
			Created:      doc.CreatedAt,
			Updated:      doc.UpdatedAt,
		}
	},
	Encode: func(u core.AdminUser) core.Fields {
		return core.Fields{
			"email":        u.Email,
			"password":     u.Password,
			"name":         u.Name,
			"role":         u.Role,
			"allowedPages": list(u.AllowedPages),
		}
	},
}
