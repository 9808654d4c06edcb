package dto

import (
	"github.com/google/uuid"

	"hostel/internal/domains/user/model"
	"hostel/shared"
	"hostel/shared/constant"
	gDto "hostel/shared/dto"
	gModel "hostel/shared/model"
	"hostel/shared/timezone"
)

type CreateAdminRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,max=100"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin superadmin"`
}

func (r *CreateAdminRequest) ToModel(user, hashedPassword string) model.User {
	role := r.Role
	if role == constant.Empty {
		role = constant.RoleAdmin
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Role:     role,
		FullName: r.FullName,
		Active:   true,
		Metadata: gModel.Stamp(user, timezone.Now()),
	}
}

type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login"`
	gDto.Metadata
}

func (u *UserResponse) FromModel(m model.User) {
	u.ID = m.ID
	u.Email = m.Email
	u.FullName = m.FullName
	u.Role = m.Role
	u.Active = m.Active

	if m.LastLogin != nil {
		lastLogin := timezone.Format(*m.LastLogin, constant.DateFormat)
		u.LastLogin = &lastLogin
	}

	u.Metadata.FromModel(m.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
