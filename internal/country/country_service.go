package country

import (
	"context"

	"github.com/marvik-ai/success-orchestry-api/internal/validation"

	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateCountryRequest) (CountryResponse, error)
	List(ctx context.Context) ([]CountryResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("country.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("country.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateCountryRequest) (CountryResponse, error) {
	name, err := validation.Name("name", req.Name)
	if err != nil {
		return CountryResponse{}, err
	}

	c := &Country{Name: name}
	if err := s.repo.Create(ctx, c); err != nil {
		s.logger.Warn("create country failed", zap.String("name", name), zap.Error(err))
		return CountryResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("country created", zap.Int64("country_id", c.ID), zap.String("name", name))
	return toResponse(*c), nil
}

func (s *service) List(ctx context.Context) ([]CountryResponse, error) {
	countries, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list countries failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]CountryResponse, 0, len(countries))
	for _, c := range countries {
		res = append(res, toResponse(c))
	}
	return res, nil
}
