package service

import (
	"context"
	"sort"

	"github.com/faisal5177/bistro-boss-restaurant-server/internal/dto"
	"github.com/faisal5177/bistro-boss-restaurant-server/internal/repository"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StatsService interface {
	AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error)
	OrderStats(ctx context.Context) ([]dto.OrderStat, error)
}

type statsService struct {
	users    repository.UserRepository
	menu     repository.MenuRepository
	payments repository.PaymentRepository
}

func NewStatsService(
	users repository.UserRepository,
	menu repository.MenuRepository,
	payments repository.PaymentRepository,
) StatsService {
	return &statsService{users: users, menu: menu, payments: payments}
}

// AdminStats returns fast cardinality estimates plus total revenue
// summed over every payment document. None of the numbers are
// transactionally exact with respect to each other.
func (s *statsService) AdminStats(ctx context.Context) (*dto.AdminStatsResponse, error) {
	userCount, err := s.users.EstimatedCount(ctx)
	if err != nil {
		return nil, err
	}
	menuCount, err := s.menu.EstimatedCount(ctx)
	if err != nil {
		return nil, err
	}
	orderCount, err := s.payments.EstimatedCount(ctx)
	if err != nil {
		return nil, err
	}

	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	revenue := decimal.Zero
	for _, p := range payments {
		revenue = revenue.Add(decimal.NewFromFloat(p.Price))
	}

	return &dto.AdminStatsResponse{
		Users:     userCount,
		MenuItems: menuCount,
		Orders:    orderCount,
		Revenue:   revenue.InexactFloat64(),
	}, nil
}

// OrderStats expands every payment's menu item references (one unit
// per reference), joins them against the current menu collection, and
// groups by category. Revenue uses the menu item's price at query
// time, not the historical transaction price; items deleted from the
// menu since the payment drop out (inner-join semantics).
func (s *statsService) OrderStats(ctx context.Context) ([]dto.OrderStat, error) {
	payments, err := s.payments.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var refs []primitive.ObjectID
	seen := map[primitive.ObjectID]struct{}{}
	for _, p := range payments {
		for _, id := range p.MenuItemIDs {
			refs = append(refs, id)
			seen[id] = struct{}{}
		}
	}
	if len(refs) == 0 {
		return []dto.OrderStat{}, nil
	}

	distinct := make([]primitive.ObjectID, 0, len(seen))
	for id := range seen {
		distinct = append(distinct, id)
	}
	items, err := s.menu.FindByIDs(ctx, distinct)
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]int, len(items))
	for i := range items {
		byID[items[i].ID] = i
	}

	type bucket struct {
		quantity int64
		revenue  decimal.Decimal
	}
	buckets := map[string]*bucket{}
	for _, ref := range refs {
		idx, ok := byID[ref]
		if !ok {
			continue // referenced item no longer on the menu
		}
		item := items[idx]
		b, ok := buckets[item.Category]
		if !ok {
			b = &bucket{revenue: decimal.Zero}
			buckets[item.Category] = b
		}
		b.quantity++
		b.revenue = b.revenue.Add(decimal.NewFromFloat(item.Price))
	}

	stats := make([]dto.OrderStat, 0, len(buckets))
	for category, b := range buckets {
		stats = append(stats, dto.OrderStat{
			Category: category,
			Quantity: b.quantity,
			Revenue:  b.revenue.InexactFloat64(),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Category < stats[j].Category })
	return stats, nil
}
