package interaction_test

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lumohq/lumo-backend/internal/adapter/mongo/interaction"
	"github.com/lumohq/lumo-backend/internal/adapter/mongo/testhelper"
	"github.com/lumohq/lumo-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + database handle.
func newRepo(t *testing.T) (*interaction.Repo, *mongo.Database) {
	t.Helper()
	db := testhelper.SetupTestDB(t)
	return interaction.New(db), db
}

func TestRepo_ListRecentByUsers_NewestFirst(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	instID := primitive.NewObjectID()
	userID := testhelper.SeedUser(t, db, "Bola Ade", "bola@acme.edu")
	contentID := testhelper.SeedContent(t, db, instID, userID, "Module", 0, false, false)

	now := time.Now().UTC().Truncate(time.Millisecond)
	testhelper.SeedInteraction(t, db, userID, contentID, domain.EventStart, now.Add(-2*time.Hour))
	testhelper.SeedInteraction(t, db, userID, contentID, domain.EventEnd, now)
	testhelper.SeedInteraction(t, db, userID, contentID, domain.EventUpdate, now.Add(-time.Hour))

	rows, err := repo.ListRecentByUsers(ctx, []primitive.ObjectID{userID}, 2)
	if err != nil {
		t.Fatalf("ListRecentByUsers: unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected limit to cap at 2 rows, got %d", len(rows))
	}
	if rows[0].EventType != domain.EventEnd {
		t.Errorf("expected newest event first, got %q", rows[0].EventType)
	}
	if rows[1].EventType != domain.EventUpdate {
		t.Errorf("expected second-newest event, got %q", rows[1].EventType)
	}
	if rows[0].User.Name != "Bola Ade" {
		t.Errorf("joined user name: got %q", rows[0].User.Name)
	}
	if rows[0].Content.Title != "Module" {
		t.Errorf("joined content title: got %q", rows[0].Content.Title)
	}
}

func TestRepo_ListRecentByUsers_DropsDanglingJoins(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	instID := primitive.NewObjectID()
	userID := testhelper.SeedUser(t, db, "Bola Ade", "bola@acme.edu")
	contentID := testhelper.SeedContent(t, db, instID, userID, "Module", 0, false, false)
	ghostContent := primitive.NewObjectID()
	ghostUser := primitive.NewObjectID()

	now := time.Now().UTC()
	testhelper.SeedInteraction(t, db, userID, contentID, domain.EventStart, now)
	testhelper.SeedInteraction(t, db, userID, ghostContent, domain.EventStart, now)
	testhelper.SeedInteraction(t, db, ghostUser, contentID, domain.EventStart, now)

	rows, err := repo.ListRecentByUsers(ctx, []primitive.ObjectID{userID, ghostUser}, 10)
	if err != nil {
		t.Fatalf("ListRecentByUsers: unexpected error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected dangling rows dropped, got %d rows", len(rows))
	}
}

func TestRepo_ListRecentByUsers_NoUsers(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	rows, err := repo.ListRecentByUsers(context.Background(), nil, 10)
	if err != nil {
		t.Fatalf("ListRecentByUsers: unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected empty result, got %d rows", len(rows))
	}
}

func TestRepo_ListRecentByUser_KeepsDeletedContentWithNilTitle(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	instID := primitive.NewObjectID()
	userID := testhelper.SeedUser(t, db, "Bola Ade", "bola@acme.edu")
	contentID := testhelper.SeedContent(t, db, instID, userID, "Module", 0, false, false)
	ghostContent := primitive.NewObjectID()

	now := time.Now().UTC()
	testhelper.SeedInteraction(t, db, userID, contentID, domain.EventStart, now)
	testhelper.SeedInteraction(t, db, userID, ghostContent, domain.EventEnd, now.Add(time.Minute))

	rows, err := repo.ListRecentByUser(ctx, userID, 10)
	if err != nil {
		t.Fatalf("ListRecentByUser: unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Title != nil {
		t.Errorf("expected nil title for deleted content, got %q", *rows[0].Title)
	}
	if rows[1].Title == nil || *rows[1].Title != "Module" {
		t.Errorf("expected joined title, got %v", rows[1].Title)
	}
}

func TestRepo_CountActiveSince(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	instID := primitive.NewObjectID()
	active := testhelper.SeedUser(t, db, "Active", "active@acme.edu")
	stale := testhelper.SeedUser(t, db, "Stale", "stale@acme.edu")
	contentID := testhelper.SeedContent(t, db, instID, active, "Module", 0, false, false)

	cutoff := time.Now().UTC().Add(-30 * 24 * time.Hour)
	// Two recent events for the same user count once.
	testhelper.SeedInteraction(t, db, active, contentID, domain.EventStart, cutoff.Add(time.Hour))
	testhelper.SeedInteraction(t, db, active, contentID, domain.EventEnd, cutoff.Add(2*time.Hour))
	testhelper.SeedInteraction(t, db, stale, contentID, domain.EventStart, cutoff.Add(-time.Hour))

	n, err := repo.CountActiveSince(ctx, []primitive.ObjectID{active, stale}, cutoff)
	if err != nil {
		t.Fatalf("CountActiveSince: unexpected error: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 distinct active user, got %d", n)
	}

	zero, err := repo.CountActiveSince(ctx, nil, cutoff)
	if err != nil {
		t.Fatalf("CountActiveSince: unexpected error: %v", err)
	}
	if zero != 0 {
		t.Errorf("expected 0 for empty user list, got %d", zero)
	}
}
