package services

import (
	"fmt"
	"time"

	"expensetracker_backend/internal/auth"
	"expensetracker_backend/internal/config"
	"expensetracker_backend/internal/models"
	"expensetracker_backend/internal/repositories"
)

// The fakes below back every service test: in-memory repositories with the
// same lookup and not-found semantics as the gorm implementations, and a mail
// sender that records instead of dialing SMTP. Reads return copies so that a
// mutation only becomes visible after Update, like a real round trip.

type fakeUserRepo struct {
	users []*models.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{}
}

// add seeds a user directly, bypassing the service layer.
func (r *fakeUserRepo) add(user *models.User) *models.User {
	if err := r.Create(user); err != nil {
		panic(err)
	}
	return user
}

func (r *fakeUserRepo) get(id string) *models.User {
	for _, u := range r.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (r *fakeUserRepo) findOne(match func(*models.User) bool) (*models.User, error) {
	for _, u := range r.users {
		if match(u) {
			return copyUser(u), nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	return r.findOne(func(u *models.User) bool { return u.ID == id })
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	return r.findOne(func(u *models.User) bool { return u.Email == email })
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	return r.findOne(func(u *models.User) bool { return u.Username == username })
}

func (r *fakeUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	return r.findOne(func(u *models.User) bool {
		return u.AccountVerificationToken != nil && *u.AccountVerificationToken == token
	})
}

func (r *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	return r.findOne(func(u *models.User) bool {
		return u.ResetPasswordToken != nil && *u.ResetPasswordToken == token
	})
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.seq++
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	user.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	user.UpdatedAt = user.CreatedAt
	r.users = append(r.users, copyUser(user))
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			updated := copyUser(user)
			updated.UpdatedAt = time.Now()
			r.users[i] = updated
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(id string) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindAll(limit, offset int) ([]models.User, error) {
	var out []models.User
	// Newest first.
	for i := len(r.users) - 1; i >= 0; i-- {
		out = append(out, *copyUser(r.users[i]))
	}
	return paginate(out, limit, offset), nil
}

func (r *fakeUserRepo) CountAll() (int64, error) {
	return int64(len(r.users)), nil
}

func copyUser(u *models.User) *models.User {
	c := *u
	return &c
}

type fakeCategoryRepo struct {
	categories []*models.Category
	seq        int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{}
}

func (r *fakeCategoryRepo) add(category *models.Category) *models.Category {
	if err := r.Create(category); err != nil {
		panic(err)
	}
	return category
}

func (r *fakeCategoryRepo) FindByID(id string) (*models.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindByName(name string) (*models.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repositories.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) Create(category *models.Category) error {
	r.seq++
	if category.ID == "" {
		category.ID = fmt.Sprintf("category-%d", r.seq)
	}
	category.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	category.UpdatedAt = category.CreatedAt
	copied := *category
	r.categories = append(r.categories, &copied)
	return nil
}

func (r *fakeCategoryRepo) Update(category *models.Category) error {
	for i, c := range r.categories {
		if c.ID == category.ID {
			copied := *category
			copied.UpdatedAt = time.Now()
			r.categories[i] = &copied
			return nil
		}
	}
	return repositories.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) Delete(id string) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return repositories.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(limit, offset int) ([]models.Category, error) {
	var out []models.Category
	for i := len(r.categories) - 1; i >= 0; i-- {
		out = append(out, *r.categories[i])
	}
	return paginate(out, limit, offset), nil
}

func (r *fakeCategoryRepo) CountAll() (int64, error) {
	return int64(len(r.categories)), nil
}

type fakeExpenseRepo struct {
	expenses []*models.Expense
	seq      int
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{}
}

func (r *fakeExpenseRepo) add(expense *models.Expense) *models.Expense {
	if err := r.Create(expense); err != nil {
		panic(err)
	}
	return expense
}

func (r *fakeExpenseRepo) FindByID(id string) (*models.Expense, error) {
	for _, e := range r.expenses {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, repositories.ErrExpenseNotFound
}

func (r *fakeExpenseRepo) Create(expense *models.Expense) error {
	r.seq++
	if expense.ID == "" {
		expense.ID = fmt.Sprintf("expense-%d", r.seq)
	}
	expense.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Millisecond)
	expense.UpdatedAt = expense.CreatedAt
	copied := *expense
	r.expenses = append(r.expenses, &copied)
	return nil
}

func (r *fakeExpenseRepo) Update(expense *models.Expense) error {
	for i, e := range r.expenses {
		if e.ID == expense.ID {
			copied := *expense
			copied.UpdatedAt = time.Now()
			r.expenses[i] = &copied
			return nil
		}
	}
	return repositories.ErrExpenseNotFound
}

func (r *fakeExpenseRepo) Delete(id string) error {
	for i, e := range r.expenses {
		if e.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return nil
		}
	}
	return repositories.ErrExpenseNotFound
}

func (r *fakeExpenseRepo) FindAll(limit, offset int) ([]models.Expense, error) {
	var out []models.Expense
	for i := len(r.expenses) - 1; i >= 0; i-- {
		out = append(out, *r.expenses[i])
	}
	return paginate(out, limit, offset), nil
}

func (r *fakeExpenseRepo) CountAll() (int64, error) {
	return int64(len(r.expenses)), nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

// recordingSender captures each mail as a snapshot of the user at send time.
type recordingSender struct {
	verifications []models.User
	resends       []models.User
	forgots       []models.User
	err           error
}

func (s *recordingSender) SendAccountVerification(user *models.User) error {
	if s.err != nil {
		return s.err
	}
	s.verifications = append(s.verifications, *user)
	return nil
}

func (s *recordingSender) SendResendTokenVerification(user *models.User) error {
	if s.err != nil {
		return s.err
	}
	s.resends = append(s.resends, *user)
	return nil
}

func (s *recordingSender) SendForgotPassword(user *models.User) error {
	if s.err != nil {
		return s.err
	}
	s.forgots = append(s.forgots, *user)
	return nil
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTLMinutes = 60
	cfg.App.BaseURL = "http://localhost:4000/api/v1"
	cfg.App.VerificationTokenTTLMinutes = 30
	cfg.App.ResetPasswordTokenTTLMinutes = 30
	return cfg
}

func newTestAccountService() (AccountService, *fakeUserRepo, *recordingSender) {
	users := newFakeUserRepo()
	mail := &recordingSender{}
	cfg := newTestConfig()
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWTTTL())
	return NewAccountService(users, mail, jwtManager, cfg), users, mail
}

func mustHash(password string) string {
	hash, err := auth.HashPassword(password)
	if err != nil {
		panic(err)
	}
	return hash
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }
