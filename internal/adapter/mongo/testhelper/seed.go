package testhelper

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lumohq/lumo-backend/internal/domain"
)

// SeedUser inserts a user and returns its ID.
func SeedUser(t *testing.T, db *mongo.Database, name, email string) primitive.ObjectID {
	t.Helper()

	u := domain.User{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	insert(t, db, "users", u)
	return u.ID
}

// SeedInstitution inserts an institution owned by ownerID and returns its ID.
func SeedInstitution(t *testing.T, db *mongo.Database, name string, ownerID primitive.ObjectID) primitive.ObjectID {
	t.Helper()

	inst := domain.Institution{
		ID:                 primitive.NewObjectID(),
		Name:               name,
		Owner:              ownerID,
		Admins:             []primitive.ObjectID{ownerID},
		Members:            []primitive.ObjectID{},
		PortalKey:          primitive.NewObjectID().Hex(),
		SubscriptionStatus: domain.SubscriptionActive,
		CreatedAt:          time.Now().UTC(),
		UpdatedAt:          time.Now().UTC(),
	}
	insert(t, db, "institutions", inst)
	return inst.ID
}

// SeedMember inserts a membership row and returns its ID.
func SeedMember(t *testing.T, db *mongo.Database, institutionID, userID primitive.ObjectID, status domain.MemberStatus, registeredAt time.Time) primitive.ObjectID {
	t.Helper()

	m := domain.InstitutionMember{
		ID:            primitive.NewObjectID(),
		UserID:        userID,
		InstitutionID: institutionID,
		Status:        status,
		CreatedAt:     registeredAt,
	}
	insert(t, db, "institution_members", m)
	return m.ID
}

// SeedContent inserts a content item and returns its ID.
func SeedContent(t *testing.T, db *mongo.Database, institutionID, createdBy primitive.ObjectID, title string, order int, isDraft, isTrash bool) primitive.ObjectID {
	t.Helper()

	c := domain.Content{
		ID:            primitive.NewObjectID(),
		Title:         title,
		Tags:          []string{},
		IsDraft:       isDraft,
		IsTrash:       isTrash,
		Order:         order,
		InstitutionID: institutionID,
		CreatedBy:     createdBy,
		CreatedAt:     time.Now().UTC(),
	}
	insert(t, db, "contents", c)
	return c.ID
}

// SeedPerformance inserts a performance row and returns its ID.
func SeedPerformance(t *testing.T, db *mongo.Database, userID, contentID primitive.ObjectID, score float64, level domain.UnderstandingLevel, timeSeconds int64) primitive.ObjectID {
	t.Helper()

	p := domain.Performance{
		ID:                 primitive.NewObjectID(),
		UserID:             userID,
		ContentID:          contentID,
		UnderstandingScore: score,
		UnderstandingLevel: level,
		TotalTimeSeconds:   timeSeconds,
		UpdatedAt:          time.Now().UTC(),
	}
	insert(t, db, "performances", p)
	return p.ID
}

// SeedInteraction inserts an interaction event and returns its ID.
func SeedInteraction(t *testing.T, db *mongo.Database, userID, contentID primitive.ObjectID, event domain.EventType, ts time.Time) primitive.ObjectID {
	t.Helper()

	i := domain.Interaction{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		ContentID: contentID,
		EventType: event,
		Timestamp: ts,
	}
	insert(t, db, "interactions", i)
	return i.ID
}

func insert(t *testing.T, db *mongo.Database, coll string, doc any) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.Collection(coll).InsertOne(ctx, doc); err != nil {
		t.Fatalf("testhelper: seed %s: %v", coll, err)
	}
}
