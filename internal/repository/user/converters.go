package user

import (
	"parceltrack/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	return &entities.User{
		ID:        u.ID,
		Role:      entities.RoleType(u.Role),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromDomainModify(userModify *entities.UserModify) *UserModifyDB {
	if userModify == nil {
		return nil
	}
	userDB := &UserModifyDB{}

	if userModify.ID != nil {
		userDB.ID = userModify.ID
	}
	if userModify.Role != nil {
		role := userModify.Role.String()
		userDB.Role = &role
	}
	if userModify.Name != nil {
		userDB.Name = userModify.Name
	}
	if userModify.Email != nil {
		userDB.Email = userModify.Email
	}
	if userModify.Phone != nil {
		userDB.Phone = userModify.Phone
	}

	return userDB
}

func ToDomainList(usersDB []UserDB) []entities.User {
	if len(usersDB) == 0 {
		return []entities.User{}
	}

	result := make([]entities.User, len(usersDB))
	for i, userDB := range usersDB {
		result[i] = *ToDomain(&userDB)
	}
	return result
}
