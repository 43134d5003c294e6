package models

// Account event types published to Kafka.
const (
	EventUserSignedUp      = "user.signed_up"
	EventUserDeleted       = "user.deleted"
	EventUserFollowed      = "user.followed"
	EventUserUnfollowed    = "user.unfollowed"
	EventModeratorSignedUp = "moderator.signed_up"
)

// AccountEvent describes a change to an account or to the follow graph.
type AccountEvent struct {
	EventID   string `json:"event_id"`            // EventID is a unique identifier for the event.
	Type      string `json:"type"`                // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"`           // Timestamp is the Unix time (seconds) of the change.
	ActorID   string `json:"actor_id"`            // ActorID is the account that performed the change.
	TargetID  string `json:"target_id,omitempty"` // TargetID is the other side of a follow edge, if any.
}
