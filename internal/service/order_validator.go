package service

import (
	"slices"
	"strings"

	"fsanano/hello-api/internal/model"
)

// ValidateOrder checks an order against the known users. Rules are applied
// in order and the first failure is returned as a BadRequest error; nil
// means the order is valid.
//
// No route creates orders yet, so nothing outside the tests calls this.
func ValidateOrder(dto model.OrderCreateDto, users []model.User) error {
	if dto.Total <= 0 {
		return model.BadRequest("Total must be greater than 0")
	}

	if !slices.ContainsFunc(users, func(u model.User) bool { return u.ID == dto.UserID }) {
		return model.BadRequest("UserId does not exist")
	}

	if dto.Status != nil && !slices.Contains(model.AllowedOrderStatuses, *dto.Status) {
		return model.BadRequest("Status must be one of: " + strings.Join(model.AllowedOrderStatuses, ","))
	}

	return nil
}
