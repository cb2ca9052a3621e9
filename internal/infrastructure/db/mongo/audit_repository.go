package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dealerhub/dealer-portal/internal/core/domain"
)

const auditCollection = "auth_audit"

// AuditRepository persists the authentication audit trail.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(auditCollection)}
}

type auditDoc struct {
	SessionID string `bson:"session_id"`
	Username  string `bson:"username,omitempty"`
	Role      string `bson:"role,omitempty"`
	Action    string `bson:"action"`
	Path      string `bson:"path,omitempty"`
	At        int64  `bson:"at"`
}

func (r *AuditRepository) Insert(ctx context.Context, ev domain.AuditEvent) error {
	doc := auditDoc{
		SessionID: ev.SessionID,
		Username:  ev.Username,
		Role:      string(ev.Role),
		Action:    string(ev.Action),
		Path:      ev.Path,
		At:        ev.At.Unix(),
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert audit event: %w", err)
	}
	return nil
}

// RecentBySession returns the newest events for one session, newest first.
// Used by operators chasing a suspicious trail; not exposed on the portal.
func (r *AuditRepository) RecentBySession(ctx context.Context, sid string, limit int64) ([]domain.AuditEvent, error) {
	opts := options.Find().SetSort(bson.D{{Key: "at", Value: -1}}).SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{"session_id": sid}, opts)
	if err != nil {
		return nil, fmt.Errorf("find audit events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.AuditEvent
	for cur.Next(ctx) {
		var doc auditDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		events = append(events, domain.AuditEvent{
			SessionID: doc.SessionID,
			Username:  doc.Username,
			Role:      domain.ParseRole(doc.Role),
			Action:    domain.AuditAction(doc.Action),
			Path:      doc.Path,
			At:        time.Unix(doc.At, 0).UTC(),
		})
	}
	return events, cur.Err()
}
