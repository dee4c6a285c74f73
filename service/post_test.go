package service

import (
	"Pulse/types"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostIncrementsCounter(t *testing.T) {
	e := newEnv()
	e.addUser(1, "alice")
	ctx := context.Background()

	postID, err := e.post.CreatePost(ctx, 1, &types.CreatePostRequest{Caption: "hello world"})
	require.NoError(t, err)
	assert.NotZero(t, postID)

	stats, err := e.store.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), stats.PostCount)

	detail, err := e.post.GetPost(ctx, postID)
	require.NoError(t, err)
	assert.Equal(t, "hello world", detail.Post.Caption)
	assert.Equal(t, int64(0), detail.LikeCount)
	assert.Equal(t, int64(0), detail.CommentCount)
}

func TestCreatePostValidation(t *testing.T) {
	e := newEnv()
	e.addUser(1, "alice")
	ctx := context.Background()

	_, err := e.post.CreatePost(ctx, 1, &types.CreatePostRequest{Caption: "  "})
	require.Error(t, err)

	_, err = e.post.CreatePost(ctx, 404, &types.CreatePostRequest{Caption: "hi"})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeletePostOnlyOwner(t *testing.T) {
	e := newEnv()
	e.addUser(1, "alice")
	e.addUser(2, "bob")
	ctx := context.Background()

	postID, err := e.post.CreatePost(ctx, 1, &types.CreatePostRequest{Caption: "hi"})
	require.NoError(t, err)

	require.ErrorIs(t, e.post.DeletePost(ctx, 2, postID), ErrNotPostOwner)

	require.NoError(t, e.post.DeletePost(ctx, 1, postID))
	stats, err := e.store.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), stats.PostCount)

	// 删除后不可见
	_, err = e.post.GetPost(ctx, postID)
	require.ErrorIs(t, err, ErrPostNotFound)

	// 二次删除不再减计数
	require.ErrorIs(t, e.post.DeletePost(ctx, 1, postID), ErrPostNotFound)
	stats, err = e.store.GetByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), stats.PostCount)
}

func TestGetPostWithCounters(t *testing.T) {
	e := newEnv()
	e.addUser(1, "alice")
	e.addUser(2, "bob")
	e.addPost(101, 1, time.Now())
	ctx := context.Background()

	require.NoError(t, e.like.Like(ctx, 2, 101))
	_, err := e.comment.AddComment(ctx, 2, &types.CreateCommentRequest{PostID: 101, Content: "nice"})
	require.NoError(t, err)

	detail, err := e.post.GetPost(ctx, 101)
	require.NoError(t, err)
	assert.Equal(t, int64(1), detail.LikeCount)
	assert.Equal(t, int64(1), detail.CommentCount)

	_, err = e.post.GetPost(ctx, 404)
	require.ErrorIs(t, err, ErrPostNotFound)
}
