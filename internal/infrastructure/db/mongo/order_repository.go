package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/labcel/storefront/internal/core/domain"
	"github.com/labcel/storefront/internal/core/ports"
)

type OrderRepository struct {
	col *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{col: db.Collection(collectionOrders)}
}

// Create inserts a new order document.
func (r *OrderRepository) Create(ctx context.Context, o *domain.Order) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, orderID string) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var o domain.Order
	if err := r.col.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	return &o, nil
}

// trackingProjection keeps customer data out of the public tracking read.
var trackingProjection = bson.M{
	"_id":            0,
	"order_id":       1,
	"status":         1,
	"status_history": 1,
	"created_at":     1,
}

func (r *OrderRepository) FindTracking(ctx context.Context, orderID string) (*domain.OrderTracking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var t domain.OrderTracking
	err := r.col.FindOne(ctx,
		bson.M{"order_id": orderID},
		options.FindOne().SetProjection(trackingProjection),
	).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, fmt.Errorf("find order tracking: %w", err)
	}
	return &t, nil
}

// List returns orders newest first, optionally scoped to an owner and status.
func (r *OrderRepository) List(ctx context.Context, f ports.ListOrdersFilter) ([]*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if f.UserID != "" {
		filter["user_id"] = f.UserID
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	orders := make([]*domain.Order, 0)
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

// AppendStatus atomically sets the status and appends a history entry in a
// single update, so status always equals the last history entry.
func (r *OrderRepository) AppendStatus(ctx context.Context, orderID string, entry domain.StatusHistoryEntry) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	ts := entry.Timestamp.UTC()
	update := bson.M{
		"$set": bson.M{"status": string(entry.Status), "updated_at": ts},
		"$push": bson.M{"status_history": bson.M{
			"status":    string(entry.Status),
			"timestamp": ts,
			"notes":     entry.Notes,
		}},
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"order_id": orderID}, update)
	if err != nil {
		return fmt.Errorf("append order status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) setFlags(ctx context.Context, orderID string, set bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"order_id": orderID}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) MarkDesignProposalSent(ctx context.Context, orderID, imageRef string, now time.Time) error {
	return r.setFlags(ctx, orderID, bson.M{
		"design_proposal_sent":  true,
		"design_proposal_image": imageRef,
		"updated_at":            now.UTC(),
	})
}

func (r *OrderRepository) MarkDesignApproved(ctx context.Context, orderID string, now time.Time) error {
	return r.setFlags(ctx, orderID, bson.M{
		"design_approved": true,
		"updated_at":      now.UTC(),
	})
}
