package history

import "context"

type Service interface {
	List(ctx context.Context, filter Filter) ([]*Record, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Record, error) {
	return s.repo.List(ctx, filter)
}
