package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPost_AddLike(t *testing.T) {
	p := &Post{}
	assert.True(t, p.AddLike(Like{ID: "l1", UserID: "ann"}))
	assert.True(t, p.AddLike(Like{ID: "l2", UserID: "bob"}))
	assert.False(t, p.AddLike(Like{ID: "l3", UserID: "ann"}))

	assert.Len(t, p.Likes, 2)
	assert.Equal(t, "bob", p.Likes[0].UserID, "newest like first")
}

func TestPost_RemoveLike(t *testing.T) {
	p := &Post{Likes: []Like{{ID: "l2", UserID: "bob"}, {ID: "l1", UserID: "ann"}}}
	before := append([]Like(nil), p.Likes...)

	assert.False(t, p.RemoveLike("carl"))
	assert.Equal(t, before, p.Likes)

	assert.True(t, p.AddLike(Like{ID: "l3", UserID: "carl"}))
	assert.True(t, p.RemoveLike("carl"))
	assert.ElementsMatch(t, before, p.Likes)
}

func TestPost_RemoveCommentByID(t *testing.T) {
	p := &Post{}
	p.AddComment(Comment{ID: "c1", UserID: "ann", Text: "first"})
	p.AddComment(Comment{ID: "c2", UserID: "ann", Text: "second"})
	p.AddComment(Comment{ID: "c3", UserID: "bob", Text: "third"})

	c, ok := p.Comment("c1")
	assert.True(t, ok)
	assert.Equal(t, "first", c.Text)

	assert.True(t, p.RemoveComment("c1"))
	ids := []string{}
	for _, c := range p.Comments {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"c3", "c2"}, ids)

	_, ok = p.Comment("c1")
	assert.False(t, ok)
	assert.False(t, p.RemoveComment("c1"))
}
