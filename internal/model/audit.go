package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audited actions.
const (
	ActionPasswordUpgrade = "PASSWORD_HASH_UPGRADE"
	ActionAssignRole      = "ASSIGN_ROLE"
	ActionAgentAddCar     = "AGENT_ADD_CAR"
	ActionAgentUpdateCar  = "AGENT_UPDATE_CAR"
	ActionAgentDeleteCar  = "AGENT_DELETE_CAR"
	ActionDeleteUser      = "DELETE_USER"
)

// AuditLog tracks who did what and when for security-relevant changes.
type AuditLog struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID    *primitive.ObjectID `bson:"user_id,omitempty" json:"user_id,omitempty"`
	Action    string              `bson:"action" json:"action"`
	EntityID  string              `bson:"entity_id,omitempty" json:"entity_id,omitempty"`
	Details   string              `bson:"details,omitempty" json:"details,omitempty"`
	CreatedAt time.Time           `bson:"created_at" json:"created_at"`
}
