package repositories_test

import (
	"context"
	"errors"
	"testing"

	"github.com/anonto42/foodgram/backend/internal/models"
	"github.com/anonto42/foodgram/backend/internal/repositories"
	"github.com/anonto42/foodgram/backend/internal/testutil"
	"gorm.io/gorm"
)

func TestPostgresFollowRepository(t *testing.T) {
	db := testutil.NewDB(t)
	ctx := context.Background()
	repo := repositories.NewPostgresFollowRepository(db)

	reader := testutil.CreateUser(t, db, "reader")
	zoe := testutil.CreateUser(t, db, "zoe")
	adam := testutil.CreateUser(t, db, "adam")
	nobody := testutil.CreateUser(t, db, "nobody")

	for _, author := range []*models.User{zoe, adam} {
		if err := repo.CreateFollow(ctx, &models.Follow{FollowerID: reader.ID, FollowingID: author.ID}); err != nil {
			t.Fatalf("CreateFollow() error = %v", err)
		}
	}

	following, err := repo.GetFollowing(ctx, reader.ID)
	if err != nil {
		t.Fatalf("GetFollowing() error = %v", err)
	}
	if len(following) != 2 || following[0].Username != "adam" || following[1].Username != "zoe" {
		t.Errorf("GetFollowing() = %+v, want adam, zoe", following)
	}

	ids, err := repo.GetFollowingIDs(ctx, reader.ID, []uint{zoe.ID, nobody.ID})
	if err != nil {
		t.Fatalf("GetFollowingIDs() error = %v", err)
	}
	if !ids[zoe.ID] || ids[nobody.ID] {
		t.Errorf("GetFollowingIDs() = %v, want only zoe", ids)
	}

	if err := repo.DeleteFollow(ctx, reader.ID, zoe.ID); err != nil {
		t.Fatalf("DeleteFollow() error = %v", err)
	}
	if ok, _ := repo.IsFollowing(ctx, reader.ID, zoe.ID); ok {
		t.Errorf("IsFollowing() = true after delete")
	}
	if err := repo.DeleteFollow(ctx, reader.ID, zoe.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("DeleteFollow(absent) error = %v, want ErrRecordNotFound", err)
	}
}
