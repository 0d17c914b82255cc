package domain

import "time"

// Comment is owned by exactly one post and embedded in its document.
type Comment struct {
	ID         string    `json:"id" bson:"id"`
	Text       string    `json:"text" bson:"text"`
	AuthorID   string    `json:"authorId" bson:"author_id"`
	AuthorName string    `json:"authorName" bson:"author_name"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at"`
}

// BlogPost is the authored content aggregate. Likes holds the ids of
// users who liked the post; Comments is an ordered embedded list.
type BlogPost struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	ImageURL    string    `json:"imageUrl" bson:"image_url"`
	Description string    `json:"description" bson:"description"`
	Content     string    `json:"content" bson:"content"`
	AuthorID    string    `json:"authorId" bson:"author_id"`
	AuthorName  string    `json:"authorName" bson:"author_name"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
	Likes       []string  `json:"likes" bson:"likes"`
	Comments    []Comment `json:"comments" bson:"comments"`
}

// FindComment returns the embedded comment with the given id, or nil.
func (p *BlogPost) FindComment(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}

// PostUpdate is a partial update of mutable post fields. ImageURL
// distinguishes "unset" (nil) from "clear" (pointer to empty string).
type PostUpdate struct {
	Title       *string
	ImageURL    *string
	Description *string
	Content     *string
}

// Empty reports whether the update carries no changes.
func (u PostUpdate) Empty() bool {
	return u.Title == nil && u.ImageURL == nil && u.Description == nil && u.Content == nil
}
