package auth

import (
	stderrors "errors"
	"log/slog"
	"testing"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	errors "github.com/santhosh9133/sterline-hr/internal"
	"github.com/santhosh9133/sterline-hr/internal/core/datamodel/account"
	"golang.org/x/crypto/bcrypt"
)

func TestAuth(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Auth Module Suite")
}

// Mock UserRepository for testing
type mockUserRepository struct {
	users         map[string]*account.User // id -> user
	returnError   bool
	errorToReturn error
}

func newMockUserRepository() *mockUserRepository {
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.MinCost)

	return &mockUserRepository{
		users: map[string]*account.User{
			"u-1": {
				ID:           "u-1",
				UserName:     "activeuser",
				Email:        "user@example.com",
				PasswordHash: string(hash),
				Role:         account.UserRoleUser,
				IsActive:     true,
			},
			"u-2": {
				ID:           "u-2",
				UserName:     "dormant",
				Email:        "inactive@example.com",
				PasswordHash: string(hash),
				Role:         account.UserRoleUser,
				IsActive:     false,
			},
		},
	}
}

func (m *mockUserRepository) GetByEmail(email string) (*account.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByID(id string) (*account.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmailOrUserName(email, userName string) (*account.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	for _, u := range m.users {
		if u.Email == email || u.UserName == userName {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) GetByUserNameExcluding(userName, excludeID string) (*account.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	for _, u := range m.users {
		if u.UserName == userName && u.ID != excludeID {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepository) Create(u *account.User) error {
	if m.returnError {
		return m.errorToReturn
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) UpdateUserName(id, userName string) (*account.User, error) {
	if m.returnError {
		return nil, m.errorToReturn
	}
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	u.UserName = userName
	copied := *u
	return &copied, nil
}

func (m *mockUserRepository) UpdatePassword(id, passwordHash string) error {
	if m.returnError {
		return m.errorToReturn
	}
	if u, ok := m.users[id]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (m *mockUserRepository) UpdateLastLogin(id string, at time.Time) error {
	if m.returnError {
		return m.errorToReturn
	}
	if u, ok := m.users[id]; ok {
		u.LastLogin = &at
	}
	return nil
}

func (m *mockUserRepository) setError(err error) {
	m.returnError = true
	m.errorToReturn = err
}

var _ = ginkgo.Describe("AuthService", func() {
	var (
		service  *Service
		mockRepo *mockUserRepository
		issuer   *JWTIssuer
	)

	ginkgo.BeforeEach(func() {
		mockRepo = newMockUserRepository()
		issuer = NewJWTIssuer("test-secret-key-0123456789", time.Hour)
		service = NewService(mockRepo, issuer, bcrypt.MinCost, slog.Default())
	})

	ginkgo.Describe("Login", func() {
		ginkgo.Context("when credentials are valid", func() {
			ginkgo.It("should return a token and sanitized user", func() {
				// Given
				dto := LoginDTO{Email: "user@example.com", Password: "correct_password"}

				// When
				result, err := service.Login(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(result.Token).ToNot(gomega.BeEmpty())
				gomega.Expect(result.User.Email).To(gomega.Equal("user@example.com"))
			})

			ginkgo.It("should issue a token that verifies back to the same identity", func() {
				// Given
				dto := LoginDTO{Email: "user@example.com", Password: "correct_password"}

				// When
				result, err := service.Login(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				claims, err := service.VerifyToken(result.Token)
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(claims.UserID).To(gomega.Equal("u-1"))
				gomega.Expect(claims.Email).To(gomega.Equal("user@example.com"))
			})

			ginkgo.It("should record the login time", func() {
				// Given
				dto := LoginDTO{Email: "user@example.com", Password: "correct_password"}

				// When
				_, err := service.Login(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(mockRepo.users["u-1"].LastLogin).ToNot(gomega.BeNil())
			})

			ginkgo.It("should accept mixed-case email", func() {
				// Given
				dto := LoginDTO{Email: "USER@Example.COM", Password: "correct_password"}

				// When
				result, err := service.Login(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(result.Token).ToNot(gomega.BeEmpty())
			})
		})

		ginkgo.Context("when credentials are invalid", func() {
			ginkgo.It("should return the same error for an unknown email", func() {
				// Given
				dto := LoginDTO{Email: "nobody@example.com", Password: "any_password"}

				// When
				result, err := service.Login(dto)

				// Then
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(result).To(gomega.BeNil())
			})

			ginkgo.It("should return the same error for a wrong password", func() {
				// Given
				dto := LoginDTO{Email: "user@example.com", Password: "wrong_password"}

				// When
				result, err := service.Login(dto)

				// Then
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(result).To(gomega.BeNil())
			})

			ginkgo.It("should return the same error for an inactive account", func() {
				// Given
				dto := LoginDTO{Email: "inactive@example.com", Password: "correct_password"}

				// When
				result, err := service.Login(dto)

				// Then
				gomega.Expect(err).To(gomega.Equal(ErrInvalidCredentials))
				gomega.Expect(result).To(gomega.BeNil())
			})
		})

		ginkgo.Context("when input validation fails", func() {
			ginkgo.It("should reject an empty email", func() {
				// Given
				dto := LoginDTO{Email: "", Password: "password"}

				// When
				result, err := service.Login(dto)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(result).To(gomega.BeNil())
			})

			ginkgo.It("should reject an empty password", func() {
				// Given
				dto := LoginDTO{Email: "user@example.com", Password: ""}

				// When
				result, err := service.Login(dto)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(result).To(gomega.BeNil())
			})
		})

		ginkgo.Context("when the repository fails", func() {
			ginkgo.It("should return an internal error", func() {
				// Given
				mockRepo.setError(stderrors.New("database error"))
				dto := LoginDTO{Email: "user@example.com", Password: "correct_password"}

				// When
				result, err := service.Login(dto)

				// Then
				gomega.Expect(err).To(gomega.HaveOccurred())
				gomega.Expect(result).To(gomega.BeNil())
				appErr, ok := errors.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.StatusCode).To(gomega.Equal(500))
			})
		})
	})

	ginkgo.Describe("Register", func() {
		ginkgo.Context("when the payload is valid", func() {
			ginkgo.It("should create the user and return a token", func() {
				// Given
				dto := RegisterDTO{
					UserName:        "newuser",
					Email:           "new@example.com",
					Password:        "secret123",
					ConfirmPassword: "secret123",
				}

				// When
				result, err := service.Register(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(result.Token).ToNot(gomega.BeEmpty())
				gomega.Expect(result.User.UserName).To(gomega.Equal("newuser"))
				gomega.Expect(result.User.Role).To(gomega.Equal(account.UserRoleUser))
				gomega.Expect(result.User.IsActive).To(gomega.BeTrue())
			})

			ginkgo.It("should store a bcrypt hash, never the plaintext", func() {
				// Given
				dto := RegisterDTO{
					UserName:        "hashcheck",
					Email:           "hash@example.com",
					Password:        "secret123",
					ConfirmPassword: "secret123",
				}

				// When
				result, err := service.Register(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				stored := mockRepo.users[result.User.ID]
				gomega.Expect(stored.PasswordHash).ToNot(gomega.Equal("secret123"))
				gomega.Expect(VerifyPassword(stored.PasswordHash, "secret123")).To(gomega.BeTrue())
			})

			ginkgo.It("should lowercase the email before storing", func() {
				// Given
				dto := RegisterDTO{
					UserName:        "casecheck",
					Email:           "Mixed@Example.COM",
					Password:        "secret123",
					ConfirmPassword: "secret123",
				}

				// When
				result, err := service.Register(dto)

				// Then
				gomega.Expect(err).ToNot(gomega.HaveOccurred())
				gomega.Expect(result.User.Email).To(gomega.Equal("mixed@example.com"))
			})
		})

		ginkgo.Context("when the identity is already taken", func() {
			ginkgo.It("should reject a duplicate email", func() {
				// Given
				dto := RegisterDTO{
					UserName:        "someoneelse",
					Email:           "user@example.com",
					Password:        "secret123",
					ConfirmPassword: "secret123",
				}

				// When
				result, err := service.Register(dto)

				// Then
				gomega.Expect(result).To(gomega.BeNil())
				appErr, ok := errors.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.StatusCode).To(gomega.Equal(400))
				gomega.Expect(appErr.Message).To(gomega.ContainSubstring("email already exists"))
			})

			ginkgo.It("should reject a duplicate username", func() {
				// Given
				dto := RegisterDTO{
					UserName:        "activeuser",
					Email:           "fresh@example.com",
					Password:        "secret123",
					ConfirmPassword: "secret123",
				}

				// When
				result, err := service.Register(dto)

				// Then
				gomega.Expect(result).To(gomega.BeNil())
				appErr, ok := errors.IsAppError(err)
				gomega.Expect(ok).To(gomega.BeTrue())
				gomega.Expect(appErr.Message).To(gomega.Equal("Username already taken"))
			})
		})

		ginkgo.Context("when the payload is invalid", func() {
			ginkgo.It("should reject mismatched passwords", func() {
				// Given
				dto := RegisterDTO{
					UserName:        "mismatch",
					Email:           "mismatch@example.com",
					Password:        "secret123",
					ConfirmPassword: "different",
				}

				// When
				result, err := service.Register(dto)

				// Then
				gomega.Expect(result).To(gomega.BeNil())
				gomega.Expect(err.Error()).To(gomega.ContainSubstring("Passwords do not match"))
			})

			ginkgo.It("should reject a short password", func() {
				// Given
				dto := RegisterDTO{
					UserName:        "shortpw",
					Email:           "short@example.com",
					Password:        "abc",
					ConfirmPassword: "abc",
				}

				// When
				result, err := service.Register(dto)

				// Then
				gomega.Expect(result).To(gomega.BeNil())
				gomega.Expect(err).To(gomega.HaveOccurred())
			})
		})
	})

	ginkgo.Describe("Profile", func() {
		ginkgo.It("should return the sanitized projection", func() {
			// When
			profile, err := service.Profile("u-1")

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(profile.ID).To(gomega.Equal("u-1"))
			gomega.Expect(profile.Email).To(gomega.Equal("user@example.com"))
		})

		ginkgo.It("should return not found for an unknown id", func() {
			// When
			profile, err := service.Profile("missing")

			// Then
			gomega.Expect(profile).To(gomega.BeNil())
			appErr, ok := errors.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.StatusCode).To(gomega.Equal(404))
		})
	})

	ginkgo.Describe("UpdateProfile", func() {
		ginkgo.It("should rename the account", func() {
			// Given
			dto := UpdateProfileDTO{UserName: "renamed"}

			// When
			profile, err := service.UpdateProfile("u-1", dto)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(profile.UserName).To(gomega.Equal("renamed"))
		})

		ginkgo.It("should reject a name held by another user", func() {
			// Given
			dto := UpdateProfileDTO{UserName: "dormant"}

			// When
			profile, err := service.UpdateProfile("u-1", dto)

			// Then
			gomega.Expect(profile).To(gomega.BeNil())
			appErr, ok := errors.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Message).To(gomega.Equal("Username already taken"))
		})

		ginkgo.It("should allow keeping your own name", func() {
			// Given
			dto := UpdateProfileDTO{UserName: "activeuser"}

			// When
			profile, err := service.UpdateProfile("u-1", dto)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(profile.UserName).To(gomega.Equal("activeuser"))
		})

		ginkgo.It("should not touch the stored password hash", func() {
			// Given
			before := mockRepo.users["u-1"].PasswordHash
			dto := UpdateProfileDTO{UserName: "renamedagain"}

			// When
			_, err := service.UpdateProfile("u-1", dto)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(mockRepo.users["u-1"].PasswordHash).To(gomega.Equal(before))
		})
	})

	ginkgo.Describe("ChangePassword", func() {
		ginkgo.It("should replace the hash when the current password matches", func() {
			// Given
			before := mockRepo.users["u-1"].PasswordHash
			dto := ChangePasswordDTO{
				CurrentPassword:    "correct_password",
				NewPassword:        "brand_new_pw",
				ConfirmNewPassword: "brand_new_pw",
			}

			// When
			err := service.ChangePassword("u-1", dto)

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			after := mockRepo.users["u-1"].PasswordHash
			gomega.Expect(after).ToNot(gomega.Equal(before))
			gomega.Expect(VerifyPassword(after, "brand_new_pw")).To(gomega.BeTrue())
		})

		ginkgo.It("should reject a wrong current password", func() {
			// Given
			dto := ChangePasswordDTO{
				CurrentPassword:    "wrong_password",
				NewPassword:        "brand_new_pw",
				ConfirmNewPassword: "brand_new_pw",
			}

			// When
			err := service.ChangePassword("u-1", dto)

			// Then
			appErr, ok := errors.IsAppError(err)
			gomega.Expect(ok).To(gomega.BeTrue())
			gomega.Expect(appErr.Message).To(gomega.Equal("Current password is incorrect"))
		})

		ginkgo.It("should reject mismatched confirmation", func() {
			// Given
			dto := ChangePasswordDTO{
				CurrentPassword:    "correct_password",
				NewPassword:        "brand_new_pw",
				ConfirmNewPassword: "other_pw",
			}

			// When
			err := service.ChangePassword("u-1", dto)

			// Then
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(err.Error()).To(gomega.ContainSubstring("New passwords do not match"))
		})
	})
})

var _ = ginkgo.Describe("Password hashing", func() {
	ginkgo.It("should verify a hash produced with the configured cost", func() {
		// When
		hash, err := HashPassword("test_password_123", bcrypt.MinCost)

		// Then
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(hash).ToNot(gomega.Equal("test_password_123"))
		gomega.Expect(VerifyPassword(hash, "test_password_123")).To(gomega.BeTrue())
	})

	ginkgo.It("should produce different hashes for the same password", func() {
		// When
		hash1, err1 := HashPassword("same_password", bcrypt.MinCost)
		hash2, err2 := HashPassword("same_password", bcrypt.MinCost)

		// Then
		gomega.Expect(err1).ToNot(gomega.HaveOccurred())
		gomega.Expect(err2).ToNot(gomega.HaveOccurred())
		gomega.Expect(hash1).ToNot(gomega.Equal(hash2))
	})

	ginkgo.It("should fail closed on a malformed hash", func() {
		gomega.Expect(VerifyPassword("not-a-bcrypt-hash", "anything")).To(gomega.BeFalse())
	})

	ginkgo.It("should reject the wrong plaintext", func() {
		hash, err := HashPassword("right", bcrypt.MinCost)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(VerifyPassword(hash, "wrong")).To(gomega.BeFalse())
	})
})

var _ = ginkgo.Describe("JWTIssuer", func() {
	var issuer *JWTIssuer

	ginkgo.BeforeEach(func() {
		issuer = NewJWTIssuer("test-secret-key-0123456789", time.Hour)
	})

	ginkgo.Describe("Issue", func() {
		ginkgo.It("should mint a token that round-trips its claims", func() {
			// When
			token, err := issuer.Issue(Claims{UserID: "abc", Email: "t@example.com", Role: "user"})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(token).ToNot(gomega.BeEmpty())

			claims, err := issuer.Verify(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.UserID).To(gomega.Equal("abc"))
			gomega.Expect(claims.Email).To(gomega.Equal("t@example.com"))
			gomega.Expect(claims.Role).To(gomega.Equal("user"))
		})

		ginkgo.It("should set expiry from the configured TTL", func() {
			// When
			token, err := issuer.Issue(Claims{UserID: "abc", Email: "t@example.com"})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			claims, err := issuer.Verify(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.ExpiresAt.Time).To(gomega.BeTemporally("~", time.Now().Add(time.Hour), time.Minute))
		})

		ginkgo.It("should default the TTL to one day", func() {
			// Given
			defaulted := NewJWTIssuer("test-secret-key-0123456789", 0)

			// When
			token, err := defaulted.Issue(Claims{UserID: "abc"})

			// Then
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			claims, err := defaulted.Verify(token)
			gomega.Expect(err).ToNot(gomega.HaveOccurred())
			gomega.Expect(claims.ExpiresAt.Time).To(gomega.BeTemporally("~", time.Now().Add(24*time.Hour), time.Minute))
		})
	})

	ginkgo.Describe("Verify", func() {
		ginkgo.It("should reject a malformed token", func() {
			// When
			claims, err := issuer.Verify("invalid.token.here")

			// Then
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
			gomega.Expect(claims).To(gomega.BeNil())
		})

		ginkgo.It("should reject an empty token", func() {
			// When
			claims, err := issuer.Verify("")

			// Then
			gomega.Expect(err).To(gomega.HaveOccurred())
			gomega.Expect(claims).To(gomega.BeNil())
		})

		ginkgo.It("should reject a token signed with a different key", func() {
			// Given
			other := NewJWTIssuer("another-secret-key-xyz", time.Hour)
			token, err := other.Issue(Claims{UserID: "abc"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			claims, err := issuer.Verify(token)

			// Then
			gomega.Expect(err).To(gomega.Equal(ErrInvalidToken))
			gomega.Expect(claims).To(gomega.BeNil())
		})

		ginkgo.It("should surface expiry as ErrTokenExpired", func() {
			// Given
			expired := &JWTIssuer{Secret: []byte("test-secret-key-0123456789"), TTL: -time.Hour}
			token, err := expired.Issue(Claims{UserID: "abc"})
			gomega.Expect(err).ToNot(gomega.HaveOccurred())

			// When
			claims, err := issuer.Verify(token)

			// Then
			gomega.Expect(err).To(gomega.Equal(ErrTokenExpired))
			gomega.Expect(claims).To(gomega.BeNil())
		})
	})
})
