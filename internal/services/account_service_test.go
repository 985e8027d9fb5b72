package services

import (
	"testing"
	"time"

	"expensetracker_backend/internal/auth"
	"expensetracker_backend/internal/models"
	"expensetracker_backend/internal/services/dto"
	"expensetracker_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegisterRequest() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Username:  "janedoe",
		Password:  "Sup3rSecret!",
	}
}

func seedVerifiedUser(users *fakeUserRepo, email, username, password string) *models.User {
	now := time.Now()
	return users.add(&models.User{
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        email,
		Username:     username,
		Password:     mustHash(password),
		Role:         models.UserRoleAdmin,
		IsVerified:   true,
		DateVerified: &now,
	})
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	t.Parallel()

	svc, users, mail := newTestAccountService()

	profile, err := svc.Register(validRegisterRequest())
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", profile.Email)
	assert.Equal(t, models.UserRoleAdmin, profile.Role)
	assert.False(t, profile.IsVerified)

	stored := users.get(profile.ID)
	require.NotNil(t, stored)
	assert.True(t, auth.CheckPasswordHash("Sup3rSecret!", stored.Password))
	require.NotNil(t, stored.AccountVerificationToken)
	require.NotNil(t, stored.AccountVerificationTokenExpires)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), *stored.AccountVerificationTokenExpires, 5*time.Second)

	require.Len(t, mail.verifications, 1)
	assert.Equal(t, "jane@example.com", mail.verifications[0].Email)
}

func TestRegister_DuplicateUsernameReportedBeforeEmail(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")

	// The request conflicts on both fields; the username wins.
	_, err := svc.Register(validRegisterRequest())
	assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	seedVerifiedUser(users, "jane@example.com", "someoneelse", "Sup3rSecret!")

	_, err := svc.Register(validRegisterRequest())
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestRegister_DuplicateCheckRunsBeforeFieldValidation(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	seedVerifiedUser(users, "other@example.com", "janedoe", "Sup3rSecret!")

	req := validRegisterRequest()
	req.FirstName = ""

	// The username conflict is reported even though the payload is incomplete.
	_, err := svc.Register(req)
	assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
}

func TestRegister_FirstMissingFieldReported(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAccountService()

	req := validRegisterRequest()
	req.FirstName = ""
	req.Password = ""

	_, err := svc.Register(req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "FirstName is required. Request is invalid.", appErr.Message)
}

func TestRegister_ComplexityCheckedBeforeAnyPersistence(t *testing.T) {
	t.Parallel()

	svc, users, mail := newTestAccountService()

	req := validRegisterRequest()
	req.Password = "weakpass"

	_, err := svc.Register(req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Message, "Password should contain")

	count, _ := users.CountAll()
	assert.Zero(t, count)
	assert.Empty(t, mail.verifications)
}

func TestRegister_MailFailureDoesNotAbort(t *testing.T) {
	t.Parallel()

	svc, users, mail := newTestAccountService()
	mail.err = assert.AnError

	profile, err := svc.Register(validRegisterRequest())
	require.NoError(t, err)

	stored := users.get(profile.ID)
	require.NotNil(t, stored)
	assert.NotNil(t, stored.AccountVerificationToken)
}

// --- Login ---

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")

	result, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "Sup3rSecret!"})
	require.NoError(t, err)

	assert.Equal(t, user.ID, result.ID)
	assert.Equal(t, models.UserRoleAdmin, result.Role)
	assert.NotEmpty(t, result.Token)
}

func TestLogin_UnverifiedUserCanLogIn(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	users.add(&models.User{
		Email:    "jane@example.com",
		Username: "janedoe",
		Password: mustHash("Sup3rSecret!"),
		Role:     models.UserRoleAdmin,
	})

	_, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "Sup3rSecret!"})
	assert.NoError(t, err)
}

func TestLogin_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAccountService()

	_, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "Sup3rSecret!"})
	assert.ErrorIs(t, err, apperrors.ErrEmailNotRegistered)
}

func TestLogin_WrongPassword(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")

	_, err := svc.Login(&dto.LoginRequest{Email: "jane@example.com", Password: "WrongPass1!"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAccountService()

	_, err := svc.Login(&dto.LoginRequest{Password: "Sup3rSecret!"})
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Email is required. Request is invalid.", appErr.Message)
}

// --- VerifyAccount ---

func seedUnverifiedUser(users *fakeUserRepo, token string, expires time.Time) *models.User {
	return users.add(&models.User{
		FirstName:                       "Jane",
		LastName:                        "Doe",
		Email:                           "jane@example.com",
		Username:                        "janedoe",
		Password:                        mustHash("Sup3rSecret!"),
		Role:                            models.UserRoleAdmin,
		AccountVerificationToken:        strPtr(token),
		AccountVerificationTokenExpires: timePtr(expires),
	})
}

func TestVerifyAccount_Success(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedUnverifiedUser(users, "valid-token", time.Now().Add(10*time.Minute))

	verified, err := svc.VerifyAccount(user.ID, "valid-token")
	require.NoError(t, err)

	assert.True(t, verified.IsVerified)
	assert.Equal(t, user.Email, verified.Email)

	stored := users.get(user.ID)
	assert.True(t, stored.IsVerified)
	assert.NotNil(t, stored.DateVerified)
	assert.Nil(t, stored.AccountVerificationToken)
	assert.Nil(t, stored.AccountVerificationTokenExpires)
}

func TestVerifyAccount_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAccountService()

	_, err := svc.VerifyAccount("missing", "some-token")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFoundVerification)
}

func TestVerifyAccount_AlreadyVerifiedMutatesNothing(t *testing.T) {
	t.Parallel()

	svc, users, mail := newTestAccountService()
	user := seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")
	before := *users.get(user.ID)

	_, err := svc.VerifyAccount(user.ID, "whatever")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyVerified)

	after := users.get(user.ID)
	assert.Equal(t, before.UpdatedAt, after.UpdatedAt)
	assert.Empty(t, mail.resends)
}

func TestVerifyAccount_InvalidToken(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedUnverifiedUser(users, "valid-token", time.Now().Add(10*time.Minute))

	_, err := svc.VerifyAccount(user.ID, "nonsense")
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationToken)

	assert.False(t, users.get(user.ID).IsVerified)
}

func TestVerifyAccount_ExpiredTokenReissued(t *testing.T) {
	t.Parallel()

	svc, users, mail := newTestAccountService()
	user := seedUnverifiedUser(users, "old-token", time.Now().Add(-time.Minute))

	_, err := svc.VerifyAccount(user.ID, "old-token")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Account verification token has expired. New token has been sent to your email.", appErr.Message)

	reissued, ok := appErr.Details.(*dto.ReissuedVerificationToken)
	require.True(t, ok)
	assert.Equal(t, user.ID, reissued.ID)
	assert.NotEqual(t, "old-token", reissued.AccountVerificationToken)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), reissued.AccountVerificationTokenExpires, 5*time.Second)

	stored := users.get(user.ID)
	assert.Equal(t, reissued.AccountVerificationToken, *stored.AccountVerificationToken)
	assert.False(t, stored.IsVerified)

	require.Len(t, mail.resends, 1)

	// The replaced token never verifies anyone again.
	_, err = svc.VerifyAccount(user.ID, "old-token")
	assert.ErrorIs(t, err, apperrors.ErrInvalidVerificationToken)

	// The fresh one does.
	verified, err := svc.VerifyAccount(user.ID, reissued.AccountVerificationToken)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
}

// The token lookup spans the whole table and the path id is never matched
// against the token's owner: presenting another user's live token verifies
// the user named in the path. Carried behavior, kept deliberately.
func TestVerifyAccount_TokenOwnedByOtherUser(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	target := users.add(&models.User{
		Email:    "target@example.com",
		Username: "target",
		Password: mustHash("Sup3rSecret!"),
		Role:     models.UserRoleAdmin,
	})
	users.add(&models.User{
		Email:                           "owner@example.com",
		Username:                        "owner",
		Password:                        mustHash("Sup3rSecret!"),
		Role:                            models.UserRoleAdmin,
		AccountVerificationToken:        strPtr("owner-token"),
		AccountVerificationTokenExpires: timePtr(time.Now().Add(10 * time.Minute)),
	})

	verified, err := svc.VerifyAccount(target.ID, "owner-token")
	require.NoError(t, err)
	assert.Equal(t, target.ID, verified.ID)
	assert.True(t, users.get(target.ID).IsVerified)
}

// --- ForgotPassword ---

func TestForgotPassword_Success(t *testing.T) {
	t.Parallel()

	svc, users, mail := newTestAccountService()
	user := seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")

	email, err := svc.ForgotPassword("jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)

	stored := users.get(user.ID)
	require.NotNil(t, stored.ResetPasswordToken)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), *stored.ResetPasswordExpires, 5*time.Second)

	require.Len(t, mail.forgots, 1)
	assert.Equal(t, "jane@example.com", mail.forgots[0].Email)
}

func TestForgotPassword_AlwaysIssuesFreshToken(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")

	_, err := svc.ForgotPassword("jane@example.com")
	require.NoError(t, err)
	first := *users.get(user.ID).ResetPasswordToken

	_, err = svc.ForgotPassword("jane@example.com")
	require.NoError(t, err)
	second := *users.get(user.ID).ResetPasswordToken

	assert.NotEqual(t, first, second)
}

func TestForgotPassword_UnknownEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAccountService()

	_, err := svc.ForgotPassword("nobody@example.com")
	assert.ErrorIs(t, err, apperrors.ErrNoUserFound)
}

func TestForgotPassword_MissingEmail(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAccountService()

	_, err := svc.ForgotPassword("")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Email is required. Request is invalid.", appErr.Message)
}

// --- ResetPassword ---

func seedUserWithResetToken(users *fakeUserRepo, token string, expires time.Time) *models.User {
	now := time.Now()
	return users.add(&models.User{
		FirstName:            "Jane",
		LastName:             "Doe",
		Email:                "jane@example.com",
		Username:             "janedoe",
		Password:             mustHash("Sup3rSecret!"),
		Role:                 models.UserRoleAdmin,
		IsVerified:           true,
		DateVerified:         &now,
		ResetPasswordToken:   strPtr(token),
		ResetPasswordExpires: timePtr(expires),
	})
}

func TestResetPassword_Success(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedUserWithResetToken(users, "reset-token", time.Now().Add(10*time.Minute))

	result, err := svc.ResetPassword(user.ID, "reset-token", "N3wSecret!!")
	require.NoError(t, err)

	assert.Equal(t, "jane@example.com", result.Email)

	stored := users.get(user.ID)
	assert.True(t, auth.CheckPasswordHash("N3wSecret!!", stored.Password))
	assert.Nil(t, stored.ResetPasswordToken)
	assert.Nil(t, stored.ResetPasswordExpires)
}

// The success payload carries the stored bcrypt hash. Clients depend on the
// field being present, so it stays.
func TestResetPassword_ResponseExposesHash(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedUserWithResetToken(users, "reset-token", time.Now().Add(10*time.Minute))

	result, err := svc.ResetPassword(user.ID, "reset-token", "N3wSecret!!")
	require.NoError(t, err)

	assert.Equal(t, users.get(user.ID).Password, result.Password)
	assert.True(t, auth.CheckPasswordHash("N3wSecret!!", result.Password))
}

func TestResetPassword_PayloadValidatedBeforeExistence(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAccountService()

	// Unknown user AND missing password: the payload message wins.
	_, err := svc.ResetPassword("missing", "whatever", "")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Password is required. Request is invalid.", appErr.Message)
}

func TestResetPassword_UnknownUser(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAccountService()

	_, err := svc.ResetPassword("missing", "whatever", "N3wSecret!!")
	assert.ErrorIs(t, err, apperrors.ErrNoUserFound)
}

func TestResetPassword_EmptyToken(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedUserWithResetToken(users, "reset-token", time.Now().Add(10*time.Minute))

	_, err := svc.ResetPassword(user.ID, "", "N3wSecret!!")
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestResetPassword_ExpiredTokenReissued(t *testing.T) {
	t.Parallel()

	svc, users, mail := newTestAccountService()
	user := seedUserWithResetToken(users, "old-token", time.Now().Add(-time.Minute))

	_, err := svc.ResetPassword(user.ID, "old-token", "N3wSecret!!")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Reset password token has expired. Please request a new one.", appErr.Message)

	reissued, ok := appErr.Details.(*dto.ReissuedResetToken)
	require.True(t, ok)
	assert.Equal(t, user.ID, reissued.ID)
	assert.NotEqual(t, "old-token", reissued.ResetPasswordToken)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), reissued.ResetPasswordExpires, 5*time.Second)

	require.Len(t, mail.forgots, 1)

	// Password unchanged.
	assert.True(t, auth.CheckPasswordHash("Sup3rSecret!", users.get(user.ID).Password))
}

func TestResetPassword_InvalidToken(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedUserWithResetToken(users, "reset-token", time.Now().Add(10*time.Minute))

	_, err := svc.ResetPassword(user.ID, "nonsense", "N3wSecret!!")
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestResetPassword_WeakPassword(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedUserWithResetToken(users, "reset-token", time.Now().Add(10*time.Minute))

	_, err := svc.ResetPassword(user.ID, "reset-token", "weakpass")
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Contains(t, appErr.Message, "Password should contain")
}

func TestResetPassword_SameAsOldRejected(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedUserWithResetToken(users, "reset-token", time.Now().Add(10*time.Minute))

	_, err := svc.ResetPassword(user.ID, "reset-token", "Sup3rSecret!")
	assert.ErrorIs(t, err, apperrors.ErrPasswordSame)

	// Token pair untouched on rejection.
	stored := users.get(user.ID)
	assert.NotNil(t, stored.ResetPasswordToken)
}

// --- UpdateProfile ---

func updateRequestFor(user *models.User) *dto.UpdateProfileRequest {
	return &dto.UpdateProfileRequest{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Username:  user.Username,
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")

	req := updateRequestFor(user)
	req.FirstName = "Janet"

	profile, err := svc.UpdateProfile(user.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "Janet", profile.FirstName)
	assert.Equal(t, "Janet", users.get(user.ID).FirstName)
}

func TestUpdateProfile_UnknownUserReportedFirst(t *testing.T) {
	t.Parallel()

	svc, _, _ := newTestAccountService()

	// Incomplete payload on a missing user: the 404 wins.
	_, err := svc.UpdateProfile("missing", &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrNoUserFound)
}

func TestUpdateProfile_MissingField(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")

	req := updateRequestFor(user)
	req.LastName = ""

	_, err := svc.UpdateProfile(user.ID, req)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "LastName is required. Request is invalid.", appErr.Message)
}

func TestUpdateProfile_EmailTakenByOtherUser(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")
	users.add(&models.User{Email: "taken@example.com", Username: "other", Password: mustHash("Sup3rSecret!")})

	req := updateRequestFor(user)
	req.Email = "taken@example.com"

	_, err := svc.UpdateProfile(user.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrUserExists)
}

func TestUpdateProfile_UsernameTakenByOtherUser(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")
	users.add(&models.User{Email: "other@example.com", Username: "taken", Password: mustHash("Sup3rSecret!")})

	req := updateRequestFor(user)
	req.Username = "taken"

	_, err := svc.UpdateProfile(user.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrUsernameExists)
}

func TestUpdateProfile_UnverifiedRejected(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := users.add(&models.User{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Username:  "janedoe",
		Password:  mustHash("Sup3rSecret!"),
	})

	req := updateRequestFor(user)
	req.FirstName = "Janet"

	_, err := svc.UpdateProfile(user.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrAccountNotVerified)
}

func TestUpdateProfile_NoOpRejected(t *testing.T) {
	t.Parallel()

	svc, users, _ := newTestAccountService()
	user := seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")

	_, err := svc.UpdateProfile(user.ID, updateRequestFor(user))
	assert.ErrorIs(t, err, apperrors.ErrNoUpdateMade)
}

// An email change triggers a verification mail to the new address but neither
// resets IsVerified nor issues a token. Carried behavior, kept deliberately.
func TestUpdateProfile_EmailChangeDoesNotResetVerification(t *testing.T) {
	t.Parallel()

	svc, users, mail := newTestAccountService()
	user := seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")

	req := updateRequestFor(user)
	req.Email = "new@example.com"

	_, err := svc.UpdateProfile(user.ID, req)
	require.NoError(t, err)

	stored := users.get(user.ID)
	assert.Equal(t, "new@example.com", stored.Email)
	assert.True(t, stored.IsVerified)
	assert.Nil(t, stored.AccountVerificationToken)

	require.Len(t, mail.verifications, 1)
	assert.Equal(t, "new@example.com", mail.verifications[0].Email)
}

func TestUpdateProfile_NoMailWhenEmailUnchanged(t *testing.T) {
	t.Parallel()

	svc, users, mail := newTestAccountService()
	user := seedVerifiedUser(users, "jane@example.com", "janedoe", "Sup3rSecret!")

	req := updateRequestFor(user)
	req.Username = "janet"

	_, err := svc.UpdateProfile(user.ID, req)
	require.NoError(t, err)
	assert.Empty(t, mail.verifications)
}
