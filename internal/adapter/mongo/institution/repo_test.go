package institution_test

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/lumohq/lumo-backend/internal/adapter/mongo/institution"
	"github.com/lumohq/lumo-backend/internal/adapter/mongo/testhelper"
	"github.com/lumohq/lumo-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + database handle.
func newRepo(t *testing.T) (*institution.Repo, *mongo.Database) {
	t.Helper()
	db := testhelper.SetupTestDB(t)
	return institution.New(db), db
}

func strPtr(s string) *string { return &s }

func TestRepo_GetByID(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, db, "Owner", "owner@acme.edu")
	id := testhelper.SeedInstitution(t, db, "Acme Academy", owner)

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.Name != "Acme Academy" {
		t.Errorf("Name mismatch: got %q", got.Name)
	}
	if got.Owner != owner {
		t.Errorf("Owner mismatch: got %s", got.Owner.Hex())
	}
}

func TestRepo_GetForAdmin(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, db, "Owner", "owner@acme.edu")
	id := testhelper.SeedInstitution(t, db, "Acme Academy", owner)

	// Matches via owner and via admins (the seed adds the owner to both).
	got, err := repo.GetForAdmin(ctx, owner)
	if err != nil {
		t.Fatalf("GetForAdmin: unexpected error: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID mismatch: got %s, want %s", got.ID.Hex(), id.Hex())
	}

	stranger := testhelper.SeedUser(t, db, "Stranger", "stranger@acme.edu")
	if _, err := repo.GetForAdmin(ctx, stranger); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for non-admin, got %v", err)
	}
}

func TestRepo_GetForAdmin_MatchesAdminsList(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, db, "Owner", "owner@acme.edu")
	admin := testhelper.SeedUser(t, db, "Admin", "admin@acme.edu")
	id := testhelper.SeedInstitution(t, db, "Acme Academy", owner)

	_, err := db.Collection("institutions").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"admins": admin}},
	)
	if err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	got, err := repo.GetForAdmin(ctx, admin)
	if err != nil {
		t.Fatalf("GetForAdmin: unexpected error: %v", err)
	}
	if got.ID != id {
		t.Errorf("ID mismatch: got %s, want %s", got.ID.Hex(), id.Hex())
	}
}

// ---------------------------------------------------------------------------
// UpdateSettings tests
// ---------------------------------------------------------------------------

func TestRepo_UpdateSettings_PatchSemantics(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, db, "Owner", "owner@acme.edu")
	id := testhelper.SeedInstitution(t, db, "Acme Academy", owner)

	// Establish a description and a color, then patch selectively.
	_, err := repo.UpdateSettings(ctx, id, domain.SettingsPatch{
		Description:  strPtr("A fine school"),
		PrimaryColor: strPtr("#1a2b3c"),
		ContactEmail: strPtr("hello@acme.edu"),
	})
	if err != nil {
		t.Fatalf("UpdateSettings: unexpected error: %v", err)
	}

	updated, err := repo.UpdateSettings(ctx, id, domain.SettingsPatch{
		Name:        strPtr("Acme University"),
		Description: strPtr(""), // clear
		// ContactEmail nil: unchanged
	})
	if err != nil {
		t.Fatalf("UpdateSettings: unexpected error: %v", err)
	}

	if updated.Name != "Acme University" {
		t.Errorf("Name: got %q, want %q", updated.Name, "Acme University")
	}
	if updated.Description != nil {
		t.Errorf("Description should be cleared, got %v", *updated.Description)
	}
	if updated.ContactEmail == nil || *updated.ContactEmail != "hello@acme.edu" {
		t.Errorf("ContactEmail should be unchanged, got %v", updated.ContactEmail)
	}
	if updated.Branding.PrimaryColor == nil || *updated.Branding.PrimaryColor != "#1a2b3c" {
		t.Errorf("PrimaryColor should be unchanged, got %v", updated.Branding.PrimaryColor)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Error("UpdatedAt should advance on update")
	}
}

func TestRepo_UpdateSettings_EmptyNameIgnored(t *testing.T) {
	t.Parallel()
	repo, db := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, db, "Owner", "owner@acme.edu")
	id := testhelper.SeedInstitution(t, db, "Acme Academy", owner)

	updated, err := repo.UpdateSettings(ctx, id, domain.SettingsPatch{Name: strPtr("")})
	if err != nil {
		t.Fatalf("UpdateSettings: unexpected error: %v", err)
	}
	if updated.Name != "Acme Academy" {
		t.Errorf("Name should be unchanged, got %q", updated.Name)
	}
}

func TestRepo_UpdateSettings_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.UpdateSettings(context.Background(), primitive.NewObjectID(), domain.SettingsPatch{
		Description: strPtr("x"),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
