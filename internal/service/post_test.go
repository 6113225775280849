package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"social-media-backend/internal/models"
	"social-media-backend/internal/testdb"
	"social-media-backend/internal/types"
)

func TestCreatePost(t *testing.T) {
	db := testdb.Open(t)
	svc := NewPostService(db)
	ctx := context.Background()

	author := testdb.CreateProfile(t, db, "author")

	post, err := svc.Create(ctx, author.ID, &types.CreatePostRequest{
		Name:    "first-post",
		Content: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, author.ID, post.ProfileID)

	// Post names are globally unique.
	_, err = svc.Create(ctx, author.ID, &types.CreatePostRequest{Name: "first-post"})
	assert.ErrorIs(t, err, ErrPostNameTaken)
}

func TestListFiltersNameCaseInsensitive(t *testing.T) {
	db := testdb.Open(t)
	svc := NewPostService(db)
	ctx := context.Background()

	author := testdb.CreateProfile(t, db, "author")
	testdb.CreatePost(t, db, author.ID, "Morning Coffee")
	testdb.CreatePost(t, db, author.ID, "coffee break")
	testdb.CreatePost(t, db, author.ID, "lunch")

	matched, err := svc.List(ctx, "COFFEE")
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestLikeTwiceKeepsSingleRow(t *testing.T) {
	db := testdb.Open(t)
	svc := NewPostService(db)
	ctx := context.Background()

	author := testdb.CreateProfile(t, db, "author")
	fan := testdb.CreateProfile(t, db, "fan")
	post := testdb.CreatePost(t, db, author.ID, "popular-post")

	detail, err := svc.Like(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "You have liked popular-post.", detail)

	detail, err = svc.Like(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "You have already liked this post.", detail)

	var count int64
	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	detail, err = svc.Unlike(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "You have unliked popular-post.", detail)

	detail, err = svc.Unlike(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "You have not liked this post.", detail)

	require.NoError(t, db.Model(&models.Like{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestLikeUnknownPost(t *testing.T) {
	db := testdb.Open(t)
	svc := NewPostService(db)

	fan := testdb.CreateProfile(t, db, "fan")

	_, err := svc.Like(context.Background(), fan.ID, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateAndDeletePostOwnership(t *testing.T) {
	db := testdb.Open(t)
	svc := NewPostService(db)
	ctx := context.Background()

	author := testdb.CreateProfile(t, db, "author")
	intruder := testdb.CreateProfile(t, db, "intruder")
	post := testdb.CreatePost(t, db, author.ID, "my-post")

	content := "edited"
	_, err := svc.Update(ctx, post.ID, intruder.ID, &types.UpdatePostRequest{Content: &content})
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, post.ID, intruder.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(ctx, post.ID, author.ID, &types.UpdatePostRequest{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Content)

	// Renaming onto an existing post name is rejected.
	testdb.CreatePost(t, db, author.ID, "other-post")
	taken := "other-post"
	_, err = svc.Update(ctx, post.ID, author.ID, &types.UpdatePostRequest{Name: &taken})
	assert.ErrorIs(t, err, ErrPostNameTaken)

	require.NoError(t, svc.Delete(ctx, post.ID, author.ID))
	_, err = svc.Get(ctx, post.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletePostCascades(t *testing.T) {
	db := testdb.Open(t)
	svc := NewPostService(db)
	ctx := context.Background()

	author := testdb.CreateProfile(t, db, "author")
	fan := testdb.CreateProfile(t, db, "fan")
	post := testdb.CreatePost(t, db, author.ID, "doomed-post")

	_, err := svc.Like(ctx, fan.ID, post.ID)
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, post.ID, fan.ID, "first!")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, post.ID, author.ID))

	var likes, comments int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likes).Error)
	require.NoError(t, db.Model(&models.Comment{}).Count(&comments).Error)
	assert.Equal(t, int64(0), likes)
	assert.Equal(t, int64(0), comments)
}

func TestCommentLifecycle(t *testing.T) {
	db := testdb.Open(t)
	svc := NewPostService(db)
	ctx := context.Background()

	author := testdb.CreateProfile(t, db, "author")
	commenter := testdb.CreateProfile(t, db, "commenter")
	other := testdb.CreateProfile(t, db, "other")
	post := testdb.CreatePost(t, db, author.ID, "discussed-post")

	first, err := svc.AddComment(ctx, post.ID, commenter.ID, "first comment")
	require.NoError(t, err)
	_, err = svc.AddComment(ctx, post.ID, other.ID, "second comment")
	require.NoError(t, err)

	comments, err := svc.Comments(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "first comment", comments[0].Text)

	// Only the comment's author may mutate it.
	_, err = svc.UpdateComment(ctx, first.ID, other.ID, "hijacked")
	assert.ErrorIs(t, err, ErrForbidden)
	err = svc.DeleteComment(ctx, first.ID, other.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.UpdateComment(ctx, first.ID, commenter.ID, "edited comment")
	require.NoError(t, err)
	assert.Equal(t, "edited comment", updated.Text)

	require.NoError(t, svc.DeleteComment(ctx, first.ID, commenter.ID))

	comments, err = svc.Comments(ctx, post.ID)
	require.NoError(t, err)
	assert.Len(t, comments, 1)
}

func TestCommentOnUnknownPost(t *testing.T) {
	db := testdb.Open(t)
	svc := NewPostService(db)

	commenter := testdb.CreateProfile(t, db, "commenter")

	_, err := svc.AddComment(context.Background(), uuid.New(), commenter.ID, "hello")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeletePostFreesName(t *testing.T) {
	db := testdb.Open(t)
	svc := NewPostService(db)
	ctx := context.Background()

	author := testdb.CreateProfile(t, db, "author")
	post := testdb.CreatePost(t, db, author.ID, "reusable-name")

	require.NoError(t, svc.Delete(ctx, post.ID, author.ID))

	// The name is free again once the post is gone.
	recreated, err := svc.Create(ctx, author.ID, &types.CreatePostRequest{
		Name:    "reusable-name",
		Content: "second take",
	})
	require.NoError(t, err)
	assert.Equal(t, "reusable-name", recreated.Name)
	assert.NotEqual(t, post.ID, recreated.ID)
}
