package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/go-social-network/internal/domain/entity"
)

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	Avatar    string             `bson:"avatar"`
	IsAdmin   bool               `bson:"isAdmin"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Password:  d.Password,
		Avatar:    d.Avatar,
		IsAdmin:   d.IsAdmin,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func newUserDoc(u *entity.User) userDoc {
	d := userDoc{
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		Avatar:    u.Avatar,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
	if oid, ok := objectID(u.ID); ok {
		d.ID = oid
	}
	return d
}

type experienceDoc struct {
	ID          string `bson:"id"`
	Title       string `bson:"title"`
	Company     string `bson:"company"`
	Location    string `bson:"location,omitempty"`
	From        string `bson:"from"`
	To          string `bson:"to"`
	Current     bool   `bson:"current"`
	Description string `bson:"description,omitempty"`
}

type educationDoc struct {
	ID           string `bson:"id"`
	School       string `bson:"school"`
	Degree       string `bson:"degree"`
	FieldOfStudy string `bson:"fieldofstudy"`
	From         string `bson:"from"`
	To           string `bson:"to"`
	Current      bool   `bson:"current"`
	Description  string `bson:"description,omitempty"`
}

type socialDoc struct {
	Youtube   *string `bson:"youtube,omitempty"`
	Twitter   *string `bson:"twitter,omitempty"`
	Facebook  *string `bson:"facebook,omitempty"`
	Linkedin  *string `bson:"linkedin,omitempty"`
	Instagram *string `bson:"instagram,omitempty"`
}

type profileDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	User           primitive.ObjectID `bson:"user"`
	Company        string             `bson:"company,omitempty"`
	Website        string             `bson:"website,omitempty"`
	Location       string             `bson:"location,omitempty"`
	Designation    string             `bson:"designation"`
	Skills         []string           `bson:"skills"`
	Bio            string             `bson:"bio"`
	GithubUsername string             `bson:"githubusername"`
	Experience     []experienceDoc    `bson:"experience"`
	Education      []educationDoc     `bson:"education"`
	Social         socialDoc          `bson:"social"`
	Version        int64              `bson:"version"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func newProfileDoc(p *entity.Profile, user primitive.ObjectID) profileDoc {
	d := profileDoc{
		User:           user,
		Company:        p.Company,
		Website:        p.Website,
		Location:       p.Location,
		Designation:    p.Designation,
		Skills:         p.Skills,
		Bio:            p.Bio,
		GithubUsername: p.GithubUsername,
		Experience:     make([]experienceDoc, 0, len(p.Experience)),
		Education:      make([]educationDoc, 0, len(p.Education)),
		Social: socialDoc{
			Youtube:   p.Social.Youtube,
			Twitter:   p.Social.Twitter,
			Facebook:  p.Social.Facebook,
			Linkedin:  p.Social.Linkedin,
			Instagram: p.Social.Instagram,
		},
		Version:   p.Version,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if d.Skills == nil {
		d.Skills = []string{}
	}
	if oid, ok := objectID(p.ID); ok {
		d.ID = oid
	}
	for _, e := range p.Experience {
		d.Experience = append(d.Experience, experienceDoc(e))
	}
	for _, e := range p.Education {
		d.Education = append(d.Education, educationDoc(e))
	}
	return d
}

func (d *profileDoc) toEntity() *entity.Profile {
	p := &entity.Profile{
		ID:             d.ID.Hex(),
		UserID:         d.User.Hex(),
		Company:        d.Company,
		Website:        d.Website,
		Location:       d.Location,
		Designation:    d.Designation,
		Skills:         d.Skills,
		Bio:            d.Bio,
		GithubUsername: d.GithubUsername,
		Experience:     make([]entity.Experience, 0, len(d.Experience)),
		Education:      make([]entity.Education, 0, len(d.Education)),
		Social: entity.Social{
			Youtube:   d.Social.Youtube,
			Twitter:   d.Social.Twitter,
			Facebook:  d.Social.Facebook,
			Linkedin:  d.Social.Linkedin,
			Instagram: d.Social.Instagram,
		},
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	for _, e := range d.Experience {
		p.Experience = append(p.Experience, entity.Experience(e))
	}
	for _, e := range d.Education {
		p.Education = append(p.Education, entity.Education(e))
	}
	return p
}

type likeDoc struct {
	ID   string             `bson:"id"`
	User primitive.ObjectID `bson:"user"`
}

type commentDoc struct {
	ID     string             `bson:"id"`
	User   primitive.ObjectID `bson:"user"`
	Text   string             `bson:"text"`
	Name   string             `bson:"name"`
	Avatar string             `bson:"avatar"`
	Date   time.Time          `bson:"date"`
}

type postDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	User      primitive.ObjectID `bson:"user"`
	Text      string             `bson:"text"`
	Image     string             `bson:"image,omitempty"`
	Name      string             `bson:"name"`
	Avatar    string             `bson:"avatar"`
	Likes     []likeDoc          `bson:"likes"`
	Comments  []commentDoc       `bson:"comments"`
	Version   int64              `bson:"version"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// newPostDoc fails when a referenced user id is not an ObjectID hex.
func newPostDoc(p *entity.Post) (postDoc, bool) {
	user, ok := objectID(p.UserID)
	if !ok {
		return postDoc{}, false
	}
	d := postDoc{
		User:      user,
		Text:      p.Text,
		Image:     p.Image,
		Name:      p.Name,
		Avatar:    p.Avatar,
		Likes:     make([]likeDoc, 0, len(p.Likes)),
		Comments:  make([]commentDoc, 0, len(p.Comments)),
		Version:   p.Version,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if oid, ok := objectID(p.ID); ok {
		d.ID = oid
	}
	for _, l := range p.Likes {
		uid, ok := objectID(l.UserID)
		if !ok {
			return postDoc{}, false
		}
		d.Likes = append(d.Likes, likeDoc{ID: l.ID, User: uid})
	}
	for _, c := range p.Comments {
		uid, ok := objectID(c.UserID)
		if !ok {
			return postDoc{}, false
		}
		d.Comments = append(d.Comments, commentDoc{
			ID:     c.ID,
			User:   uid,
			Text:   c.Text,
			Name:   c.Name,
			Avatar: c.Avatar,
			Date:   c.Date,
		})
	}
	return d, true
}

func (d *postDoc) toEntity() *entity.Post {
	p := &entity.Post{
		ID:        d.ID.Hex(),
		UserID:    d.User.Hex(),
		Text:      d.Text,
		Image:     d.Image,
		Name:      d.Name,
		Avatar:    d.Avatar,
		Likes:     make([]entity.Like, 0, len(d.Likes)),
		Comments:  make([]entity.Comment, 0, len(d.Comments)),
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	for _, l := range d.Likes {
		p.Likes = append(p.Likes, entity.Like{ID: l.ID, UserID: l.User.Hex()})
	}
	for _, c := range d.Comments {
		p.Comments = append(p.Comments, entity.Comment{
			ID:     c.ID,
			UserID: c.User.Hex(),
			Text:   c.Text,
			Name:   c.Name,
			Avatar: c.Avatar,
			Date:   c.Date,
		})
	}
	return p
}
