package user

import (
	"context"
	"strings"
)

type UserService struct {
	repo *UserRepo
}

func NewUserService(repo *UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Upsert(ctx context.Context, req *UpsertUserRequest) (*User, error) {
	return s.repo.Upsert(ctx, &User{
		ID:       req.ID,
		Email:    req.Email,
		Name:     DisplayName(req.FirstName, req.LastName),
		ImageURL: req.ImageURL,
	})
}

func (s *UserService) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DisplayName joins the provider's name fields, skipping the ones it left empty.
func DisplayName(first, last string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{first, last} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
