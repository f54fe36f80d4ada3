package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/labcel/storefront/internal/core/domain"
)

// StatsRepository runs dashboard aggregates over orders and users.
type StatsRepository struct {
	orders *mongo.Collection
	users  *mongo.Collection
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{
		orders: db.Collection(collectionOrders),
		users:  db.Collection(collectionUsers),
	}
}

func (r *StatsRepository) count(ctx context.Context, col *mongo.Collection, filter bson.M) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", col.Name(), err)
	}
	return n, nil
}

func (r *StatsRepository) CountOrders(ctx context.Context) (int64, error) {
	return r.count(ctx, r.orders, bson.M{})
}

func (r *StatsRepository) CountOrdersSince(ctx context.Context, since time.Time) (int64, error) {
	return r.count(ctx, r.orders, bson.M{"created_at": bson.M{"$gte": since.UTC()}})
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, r.users, bson.M{})
}

type statusCount struct {
	Status string `bson:"_id"`
	Count  int64  `bson:"count"`
}

func (r *StatsRepository) CountOrdersByStatus(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("orders by status: %w", err)
	}
	var rows []statusCount
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode orders by status: %w", err)
	}

	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *StatsRepository) RevenueExcluding(ctx context.Context, status domain.OrderStatus) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "status", Value: bson.D{{Key: "$ne", Value: string(status)}}}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: "$total"}}},
		}}},
	}
	cur, err := r.orders.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("revenue: %w", err)
	}
	var rows []struct {
		Total float64 `bson:"total"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("decode revenue: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Total, nil
}
