package db

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func comment(parent *uuid.UUID) *Comment {
	return &Comment{ID: uuid.New(), ParentID: parent}
}

func TestBuildCommentTree_NestsReplies(t *testing.T) {
	root := comment(nil)
	reply := comment(&root.ID)
	nested := comment(&reply.ID)
	other := comment(nil)

	tree := BuildCommentTree([]*Comment{root, reply, nested, other})

	require.Len(t, tree, 2)
	assert.Equal(t, root.ID, tree[0].ID)
	require.Len(t, tree[0].Replies, 1)
	assert.Equal(t, reply.ID, tree[0].Replies[0].ID)
	require.Len(t, tree[0].Replies[0].Replies, 1)
	assert.Equal(t, nested.ID, tree[0].Replies[0].Replies[0].ID)
	assert.Empty(t, tree[1].Replies)
}

func TestBuildCommentTree_OrphanPromotedToTopLevel(t *testing.T) {
	missing := uuid.New()
	orphan := comment(&missing)

	tree := BuildCommentTree([]*Comment{orphan})

	require.Len(t, tree, 1)
	assert.Equal(t, orphan.ID, tree[0].ID)
}

func TestBuildCommentTree_PreservesOrder(t *testing.T) {
	root := comment(nil)
	first := comment(&root.ID)
	second := comment(&root.ID)

	tree := BuildCommentTree([]*Comment{root, first, second})

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Replies, 2)
	assert.Equal(t, first.ID, tree[0].Replies[0].ID)
	assert.Equal(t, second.ID, tree[0].Replies[1].ID)
}

func TestBuildCommentTree_Empty(t *testing.T) {
	assert.Empty(t, BuildCommentTree(nil))
}
