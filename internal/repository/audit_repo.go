package repository

import (
	"context"
	"time"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/database"
	"github.com/SnehSutariya72/Vehicle-Vault-backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AuditRepository records and lists security-relevant events.
type AuditRepository interface {
	Log(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context, skip, limit int64) ([]model.AuditLog, int64, error)
}

type auditRepository struct {
	coll *mongo.Collection
}

// NewAuditRepository returns a new instance of AuditRepository
func NewAuditRepository(db *mongo.Database) AuditRepository {
	return &auditRepository{coll: db.Collection(database.CollectionAuditLogs)}
}

func (r *auditRepository) Log(ctx context.Context, entry *model.AuditLog) error {
	entry.CreatedAt = time.Now().UTC()
	res, err := r.coll.InsertOne(ctx, entry)
	if err != nil {
		return wrapErr(err)
	}
	entry.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (r *auditRepository) List(ctx context.Context, skip, limit int64) ([]model.AuditLog, int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, wrapErr(err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetSkip(skip).SetLimit(limit)
	}

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, wrapErr(err)
	}

	var logs []model.AuditLog
	if err := cur.All(ctx, &logs); err != nil {
		return nil, 0, wrapErr(err)
	}
	return logs, total, nil
}
