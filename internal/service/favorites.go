package service

import (
	"context"
	"slices"

	"github.com/Dan9191/calc-service/internal/catalog"
)

const favoritesKey = "favoriteCalculators"

// ListFavorites returns the routes a device marked as favorite
func (s *Service) ListFavorites(ctx context.Context, deviceID string) ([]string, error) {
	return readList[string](ctx, s, s.scope(deviceID), favoritesKey)
}

// ToggleFavorite adds or removes a route and reports whether it is now a favorite
func (s *Service) ToggleFavorite(ctx context.Context, deviceID, route string) (bool, error) {
	calc, err := catalog.ByRoute(route)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	favorites, err := s.ListFavorites(ctx, deviceID)
	if err != nil {
		return false, err
	}

	var now bool
	if i := slices.Index(favorites, calc.Route); i >= 0 {
		favorites = slices.Delete(favorites, i, i+1)
	} else {
		favorites = append(favorites, calc.Route)
		now = true
	}
	if err := writeList(ctx, s.scope(deviceID), favoritesKey, favorites); err != nil {
		return false, err
	}
	return now, nil
}

// IsFavorite reports whether a route is marked as favorite
func (s *Service) IsFavorite(ctx context.Context, deviceID, route string) (bool, error) {
	calc, err := catalog.ByRoute(route)
	if err != nil {
		return false, err
	}
	favorites, err := s.ListFavorites(ctx, deviceID)
	if err != nil {
		return false, err
	}
	return slices.Contains(favorites, calc.Route), nil
}
