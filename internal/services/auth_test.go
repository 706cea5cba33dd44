package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/annotatehub/annotation-backend/internal/models"
	"github.com/annotatehub/annotation-backend/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenIssuer(ctrl)

	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	tests := []struct {
		name         string
		username     string
		password     string
		existingUser *models.User
		readerErr    error
		writerErr    error
		wantErr      error
	}{
		{
			name:     "successful registration",
			username: "alice",
			password: "pass123",
			wantErr:  nil,
		},
		{
			name:         "username already taken",
			username:     "bob",
			password:     "pass123",
			existingUser: &models.User{Username: "bob"},
			wantErr:      services.ErrUsernameTaken,
		},
		{
			name:      "reader error",
			username:  "eve",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			password:  "pass123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.existingUser, tt.readerErr)

			if tt.existingUser == nil && tt.readerErr == nil {
				mockWriter.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(tt.writerErr)
			}

			user, err := svc.Register(context.Background(), models.User{Username: tt.username}, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.username, user.Username)
				// Stored credential must be a bcrypt hash of the password
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(tt.password)))
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	tests := []struct {
		name      string
		username  string
		password  string
		user      *models.User
		readerErr error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			username:  "alice",
			password:  "pass123",
			user:      &models.User{Username: "alice", HashedPassword: string(hashed), IsAdmin: true},
			wantToken: "token123",
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "pass123",
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "wrong",
			user:     &models.User{Username: "alice", HashedPassword: string(hashed)},
			wantErr:  services.ErrInvalidCredentials,
		},
		{
			name:      "reader error",
			username:  "alice",
			password:  "pass123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockTokenIssuer(ctrl)
			svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

			mockReader.EXPECT().
				GetByUsername(gomock.Any(), tt.username).
				Return(tt.user, tt.readerErr)

			if tt.wantErr == nil {
				mockJWT.EXPECT().
					Generate(gomock.Any(), tt.user.Username, tt.user.IsAdmin).
					Return(tt.wantToken, nil)
			}

			token, err := svc.Login(context.Background(), tt.username, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller.
func TestAuthService_Login_UniformFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hashed, err := bcrypt.GenerateFromPassword([]byte("pass123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	mockReader := services.NewMockUserReader(ctrl)
	mockWriter := services.NewMockUserWriter(ctrl)
	mockJWT := services.NewMockTokenIssuer(ctrl)
	svc := services.NewAuthService(mockReader, mockWriter, mockJWT)

	mockReader.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, nil)
	_, errUnknown := svc.Login(context.Background(), "ghost", "pass123")

	mockReader.EXPECT().GetByUsername(gomock.Any(), "alice").
		Return(&models.User{Username: "alice", HashedPassword: string(hashed)}, nil)
	_, errWrong := svc.Login(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, errUnknown, services.ErrInvalidCredentials)
	assert.ErrorIs(t, errWrong, services.ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}
