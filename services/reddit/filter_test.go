package reddit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func interestingPost() Post {
	return Post{
		ID:          "abc123",
		Title:       "Which electives should I take next year?",
		SelfText:    "Looking for recommendations, preferably bird courses.",
		Score:       5,
		NumComments: 3,
		IsSelf:      true,
	}
}

func TestPostOfInterest(t *testing.T) {
	require.True(t, PostOfInterest(interestingPost()))

	t.Run("link post", func(t *testing.T) {
		p := interestingPost()
		p.IsSelf = false
		require.False(t, PostOfInterest(p))
	})
	t.Run("nsfw", func(t *testing.T) {
		p := interestingPost()
		p.Over18 = true
		require.False(t, PostOfInterest(p))
	})
	t.Run("locked", func(t *testing.T) {
		p := interestingPost()
		p.Locked = true
		require.False(t, PostOfInterest(p))
	})
	t.Run("empty body", func(t *testing.T) {
		p := interestingPost()
		p.SelfText = "   "
		require.False(t, PostOfInterest(p))
	})
	t.Run("low score", func(t *testing.T) {
		p := interestingPost()
		p.Score = 1
		require.False(t, PostOfInterest(p))
	})
	t.Run("no comments", func(t *testing.T) {
		p := interestingPost()
		p.NumComments = 0
		require.False(t, PostOfInterest(p))
	})
	t.Run("off topic", func(t *testing.T) {
		p := interestingPost()
		p.Title = "Best food on campus?"
		p.SelfText = "Where do you all eat between lectures?"
		require.False(t, PostOfInterest(p))
	})
	t.Run("course code counts as on topic", func(t *testing.T) {
		p := interestingPost()
		p.Title = "CISC 124 midterm"
		p.SelfText = "How did everyone find it?"
		require.True(t, PostOfInterest(p))
	})
}

func TestCommentOfInterest(t *testing.T) {
	require.True(t, CommentOfInterest(Comment{
		Body:  "Take it with Smith, the assignments are manageable.",
		Score: 2,
	}))

	testCases := []struct {
		name    string
		comment Comment
	}{
		{"empty", Comment{Body: "", Score: 5}},
		{"deleted", Comment{Body: "[deleted]", Score: 5}},
		{"removed", Comment{Body: "[removed]", Score: 5}},
		{"downvoted", Comment{Body: "Take it with Smith, great course.", Score: 0}},
		{"too short", Comment{Body: "agreed", Score: 5}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.False(t, CommentOfInterest(tc.comment))
		})
	}
}
