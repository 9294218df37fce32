package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "webclass/internal/errors"
	"webclass/internal/model"
)

func TestUserService_GetUser_ReadsStoreEveryTime(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(3)).
		Return(&model.User{ID: 3, Username: "nina", Email: "nina@example.com"}, nil).
		Once()
	mockRepo.On("FindByID", mock.Anything, uint(3)).
		Return(nil, apperrors.ErrUserNotFound).
		Once()

	svc := NewUserService(mockRepo)

	first, err := svc.GetUser(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "nina", first.Username)

	second, err := svc.GetUser(context.Background(), 3)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, second)

	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(9)).Return(nil, apperrors.ErrUserNotFound)

	svc := NewUserService(mockRepo)
	user, err := svc.GetUser(context.Background(), 9)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_ListUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("List", mock.Anything).Return([]model.User{{ID: 1, Username: "nina"}, {ID: 2, Username: "omar"}}, nil)

	users, err := NewUserService(mockRepo).ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "omar", users[1].Username)
}
