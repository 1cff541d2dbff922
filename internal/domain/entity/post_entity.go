package entity

import "time"

type Like struct {
	ID     string `json:"id"`
	UserID string `json:"user"`
}

// Comment is a snapshot of the author's display fields at comment time.
type Comment struct {
	ID     string    `json:"id"`
	UserID string    `json:"user"`
	Text   string    `json:"text"`
	Name   string    `json:"name"`
	Avatar string    `json:"avatar"`
	Date   time.Time `json:"date"`
}

// Post keeps the author's name and avatar as copied at creation.
// A user appears at most once in Likes; Likes and Comments are newest-first.
type Post struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user"`
	Text      string    `json:"text"`
	Image     string    `json:"image"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	Likes     []Like    `json:"likes"`
	Comments  []Comment `json:"comments"`
	Version   int64     `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// AddLike inserts at the head unless the user already liked the post.
func (p *Post) AddLike(l Like) bool {
	if p.LikedBy(l.UserID) {
		return false
	}
	p.Likes = append([]Like{l}, p.Likes...)
	return true
}

// RemoveLike drops the like owned by userID.
func (p *Post) RemoveLike(userID string) bool {
	for i := range p.Likes {
		if p.Likes[i].UserID == userID {
			p.Likes = append(p.Likes[:i:i], p.Likes[i+1:]...)
			return true
		}
	}
	return false
}

func (p *Post) AddComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}

func (p *Post) Comment(id string) (Comment, bool) {
	for _, c := range p.Comments {
		if c.ID == id {
			return c, true
		}
	}
	return Comment{}, false
}

// RemoveComment drops exactly the comment with the given id.
func (p *Post) RemoveComment(id string) bool {
	for i := range p.Comments {
		if p.Comments[i].ID == id {
			p.Comments = append(p.Comments[:i:i], p.Comments[i+1:]...)
			return true
		}
	}
	return false
}
