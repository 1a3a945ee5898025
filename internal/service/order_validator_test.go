package service

import (
	"testing"

	"fsanano/hello-api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOrder(t *testing.T) {
	users := []model.User{
		{ID: 1, Username: model.StringPtr("alice")},
		{ID: 2, Username: model.StringPtr("bob")},
	}

	tests := []struct {
		name    string
		dto     model.OrderCreateDto
		wantErr string
	}{
		{
			name:    "zero total fails first",
			dto:     model.OrderCreateDto{UserID: 99, Total: 0, Status: model.StringPtr("Shipped")},
			wantErr: "Total must be greater than 0",
		},
		{
			name:    "negative total",
			dto:     model.OrderCreateDto{UserID: 1, Total: -5},
			wantErr: "Total must be greater than 0",
		},
		{
			name:    "unknown user",
			dto:     model.OrderCreateDto{UserID: 99, Total: 10},
			wantErr: "UserId does not exist",
		},
		{
			name:    "unknown status",
			dto:     model.OrderCreateDto{UserID: 1, Total: 10, Status: model.StringPtr("Shipped")},
			wantErr: "Status must be one of: Pending,Processing,Completed,Cancelled",
		},
		{
			name:    "status is case sensitive",
			dto:     model.OrderCreateDto{UserID: 1, Total: 10, Status: model.StringPtr("pending")},
			wantErr: "Status must be one of: Pending,Processing,Completed,Cancelled",
		},
		{
			name: "nil status",
			dto:  model.OrderCreateDto{UserID: 1, Total: 10},
		},
		{
			name: "allowed status",
			dto:  model.OrderCreateDto{UserID: 2, Total: 0.01, Status: model.StringPtr("Cancelled")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOrder(tt.dto, users)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, model.ErrBadRequest)
			var tagged *model.Error
			require.ErrorAs(t, err, &tagged)
			assert.Equal(t, tt.wantErr, tagged.Message)
		})
	}
}

func TestValidateOrder_NoUsers(t *testing.T) {
	err := ValidateOrder(model.OrderCreateDto{UserID: 1, Total: 10}, nil)
	assert.ErrorIs(t, err, model.ErrBadRequest)
}
